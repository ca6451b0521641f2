package models

import (
	"github.com/google/uuid"
	"github.com/ratioflow/backend/internal/engine"
	"github.com/ratioflow/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Load reads the full provider dataset and converts it into the engine's
// hydration input. All reads used by one hydration come from the same
// database connection, the engine then works on the snapshot alone.
func Load() (engine.HydrateInput, error) {
	var in engine.HydrateInput

	var sourceAccounts []SourceAccount
	err := DB.Preload("Values").Order("number ASC").Find(&sourceAccounts).Error
	if err != nil {
		return in, err
	}

	in.SourceAccounts = make([]engine.SourceAccount, 0, len(sourceAccounts))
	for _, account := range sourceAccounts {
		values := make(map[types.Period]decimal.Decimal, len(account.Values))
		for _, value := range account.Values {
			values[value.Period] = value.Value
		}

		in.SourceAccounts = append(in.SourceAccounts, engine.SourceAccount{
			ID:           account.ID.String(),
			Number:       account.Number,
			Description:  account.Description,
			DefaultValue: account.DefaultValue,
			PeriodValues: values,
		})
	}

	var basisAccounts []BasisAccount
	err = DB.Preload("Values").Order("name ASC").Find(&basisAccounts).Error
	if err != nil {
		return in, err
	}

	in.BasisAccounts = make([]engine.BasisAccount, 0, len(basisAccounts))
	for _, account := range basisAccounts {
		values := make(map[types.Period]decimal.Decimal, len(account.Values))
		for _, value := range account.Values {
			values[value.Period] = value.Value
		}

		mappedTarget := ""
		if account.MappedTargetID != uuid.Nil {
			mappedTarget = account.MappedTargetID.String()
		}

		in.BasisAccounts = append(in.BasisAccounts, engine.BasisAccount{
			ID:             account.ID.String(),
			Name:           account.Name,
			Description:    account.Description,
			DefaultValue:   account.DefaultValue,
			PeriodValues:   values,
			MappedTargetID: mappedTarget,
		})
	}

	var targetAccounts []TargetAccount
	err = DB.Order("number ASC").Find(&targetAccounts).Error
	if err != nil {
		return in, err
	}

	in.TargetAccounts = make([]engine.TargetAccount, 0, len(targetAccounts))
	for _, account := range targetAccounts {
		in.TargetAccounts = append(in.TargetAccounts, engine.TargetAccount{
			ID:     account.ID.String(),
			Number: account.Number,
			Name:   account.Name,
		})
	}

	var presets []Preset
	err = DB.Preload("Rows", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).Order("name ASC").Find(&presets).Error
	if err != nil {
		return in, err
	}

	in.Presets = make([]engine.Preset, 0, len(presets))
	for _, preset := range presets {
		rows := make([]engine.PresetRow, 0, len(preset.Rows))
		for _, row := range preset.Rows {
			rows = append(rows, engine.PresetRow{
				BasisAccountID:  row.BasisAccountID.String(),
				TargetAccountID: row.TargetAccountID.String(),
			})
		}

		in.Presets = append(in.Presets, engine.Preset{
			ID:    preset.ID.String(),
			Name:  preset.Name,
			Notes: preset.Notes,
			Rows:  rows,
		})
	}

	var allocations []RatioAllocation
	err = DB.Preload("Targets", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).Order("source_account_number ASC").Find(&allocations).Error
	if err != nil {
		return in, err
	}

	in.Allocations = make([]engine.RatioAllocation, 0, len(allocations))
	for _, allocation := range allocations {
		targets := make([]engine.TargetDatapoint, 0, len(allocation.Targets))
		for _, target := range allocation.Targets {
			presetID := ""
			if target.PresetID != uuid.Nil {
				presetID = target.PresetID.String()
			}

			targets = append(targets, engine.TargetDatapoint{
				DatapointID: target.DatapointID,
				Name:        target.Name,
				Kind:        engine.DatapointKind(target.Kind),
				PresetID:    presetID,
				RatioMetric: engine.RatioMetric{
					ID:    target.MetricID,
					Name:  target.MetricName,
					Value: target.MetricValue,
				},
				IsExclusion: target.IsExclusion,
			})
		}

		in.Allocations = append(in.Allocations, engine.RatioAllocation{
			ID:                       allocation.ID.String(),
			Name:                     allocation.Name,
			SourceAccountID:          allocation.SourceAccountID.String(),
			SourceAccountNumber:      allocation.SourceAccountNumber,
			SourceAccountDescription: allocation.SourceAccountDescription,
			EffectiveDate:            allocation.EffectiveDate,
			Status:                   engine.AllocationStatus(allocation.Status),
			Targets:                  targets,
		})
	}

	var periods []ReportingPeriod
	err = DB.Order("period ASC").Find(&periods).Error
	if err != nil {
		return in, err
	}

	in.AvailablePeriods = make([]types.Period, 0, len(periods))
	selected := types.Period("")
	for _, period := range periods {
		in.AvailablePeriods = append(in.AvailablePeriods, period.Period)
		if period.Selected {
			selected = period.Period
		}
	}
	in.SelectedPeriod = &selected

	return in, nil
}
