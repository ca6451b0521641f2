package engine

// synchronize re-derives every preset-backed target datapoint from the
// current presets, basis accounts and selected period.
//
// Raw datapoints are kept unchanged in place. For each distinct preset an
// allocation references, one datapoint per current preset row is regenerated
// in row order at the position the preset first appears. Exclusion state is
// preserved by matching the previous datapoint with the same basis account id
// within the same preset. Datapoints whose preset or basis account no longer
// exists are dropped.
func (s State) synchronize() State {
	if len(s.Allocations) == 0 {
		return s
	}

	presets := make(map[string]Preset, len(s.Presets))
	for _, preset := range s.Presets {
		presets[preset.ID] = preset
	}

	basisAccounts := make(map[string]BasisAccount, len(s.BasisAccounts))
	for _, account := range s.BasisAccounts {
		basisAccounts[account.ID] = account
	}

	allocations := make([]RatioAllocation, len(s.Allocations))
	for i, allocation := range s.Allocations {
		allocation.Targets = s.synchronizeTargets(allocation.Targets, presets, basisAccounts)
		allocations[i] = allocation
	}

	s.Allocations = allocations
	return s
}

func (s State) synchronizeTargets(targets []TargetDatapoint, presets map[string]Preset, basisAccounts map[string]BasisAccount) []TargetDatapoint {
	synchronized := make([]TargetDatapoint, 0, len(targets))
	seenPresets := make(map[string]bool)

	for _, target := range targets {
		if target.Kind == DatapointRaw {
			synchronized = append(synchronized, target)
			continue
		}

		if seenPresets[target.PresetID] {
			continue
		}
		seenPresets[target.PresetID] = true

		preset, ok := presets[target.PresetID]
		if !ok {
			// The preset was removed, all its datapoints are dropped
			continue
		}

		// Exclusion state carries over by basis account id
		excluded := make(map[string]bool)
		for _, previous := range targets {
			if previous.Kind == DatapointDerived && previous.PresetID == target.PresetID && previous.IsExclusion {
				excluded[previous.RatioMetric.ID] = true
			}
		}

		for _, row := range preset.Rows {
			account, ok := basisAccounts[row.BasisAccountID]
			if !ok {
				continue
			}

			name := row.TargetAccountID
			if targetAccount, ok := s.targetAccount(row.TargetAccountID); ok {
				name = targetAccount.Name
			}

			synchronized = append(synchronized, TargetDatapoint{
				DatapointID: row.TargetAccountID,
				Name:        name,
				Kind:        DatapointDerived,
				PresetID:    preset.ID,
				RatioMetric: RatioMetric{
					ID:    account.ID,
					Name:  account.Name,
					Value: Resolve(account, s.SelectedPeriod),
				},
				IsExclusion: excluded[account.ID],
			})
		}
	}

	return synchronized
}
