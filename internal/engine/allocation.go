package engine

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

// DatapointKind discriminates independently configured target datapoints from
// datapoints derived from a preset row. Keeping this an explicit variant means
// the synchronizer can never silently treat a derived datapoint as raw.
type DatapointKind string

const (
	DatapointRaw     DatapointKind = "RAW"
	DatapointDerived DatapointKind = "DERIVED"
)

// RatioMetric is the weighting measurement behind one target datapoint.
// For derived datapoints the ID is always the underlying basis account id.
type RatioMetric struct {
	ID    string          `json:"id" example:"c9b0d3b4-5be1-4367-a13b-6d0427b4f207"`
	Name  string          `json:"name" example:"Headcount Engineering"`
	Value decimal.Decimal `json:"value" example:"42"`
}

// TargetDatapoint is one line of an allocation's distribution.
type TargetDatapoint struct {
	// The canonical target account receiving a share. For derived datapoints
	// this equals the preset row's target account id.
	DatapointID string        `json:"datapointId" example:"f81566d9-af4d-4f13-9830-c62c4b5e4c7e"`
	Name        string        `json:"name" example:"Facilities"`
	Kind        DatapointKind `json:"kind" example:"DERIVED"`

	// The preset the datapoint is derived from. Empty for raw datapoints.
	PresetID string `json:"presetId" example:"9a5e55e5-5a51-4b59-a24f-60ee8a8cf3d8"`

	RatioMetric RatioMetric `json:"ratioMetric"`

	// Excluded datapoints contribute neither weight nor share.
	IsExclusion bool `json:"isExclusion" example:"false"`
}

// AllocationStatus is the lifecycle status of a ratio allocation.
type AllocationStatus string

const (
	AllocationActive   AllocationStatus = "active"
	AllocationInactive AllocationStatus = "inactive"
)

// RatioAllocation distributes the balance of exactly one source account
// across a list of target datapoints.
type RatioAllocation struct {
	ID   string `json:"id" example:"ec1b842a-76e8-4c3e-98a6-18f4d26e1f06"`
	Name string `json:"name" example:"Allocation 4010"`

	SourceAccountID          string `json:"sourceAccountId" example:"1e777d24-3f5b-4c43-8ded-c5fcf48bcc06"`
	SourceAccountNumber      string `json:"sourceAccountNumber" example:"4010"`
	SourceAccountDescription string `json:"sourceAccountDescription" example:"Payroll expense"`

	EffectiveDate time.Time         `json:"effectiveDate" example:"2026-04-01T00:00:00Z"`
	Status        AllocationStatus  `json:"status" example:"active"`
	Targets       []TargetDatapoint `json:"targets"`
}

var (
	ErrAllocationNotFound    = errors.New("there is no allocation matching the ID you specified")
	ErrSourceAccountNotFound = errors.New("there is no source account matching the ID you specified")
	ErrDatapointNotFound     = errors.New("there is no target datapoint matching the ID you specified")
)

// AllocationUpdate contains the fields of an allocation that can be modified
// after creation. Target datapoints are managed through the toggle operations
// and the synchronizer.
type AllocationUpdate struct {
	Name          *string
	Status        *AllocationStatus
	EffectiveDate *time.Time
}

func (s State) allocationIndex(id string) int {
	return slices.IndexFunc(s.Allocations, func(a RatioAllocation) bool { return a.ID == id })
}

// GetOrCreateAllocation returns the allocation for a source account, creating
// an empty one on first reference.
func (s State) GetOrCreateAllocation(sourceAccountID string) (State, RatioAllocation, error) {
	for _, allocation := range s.Allocations {
		if allocation.SourceAccountID == sourceAccountID {
			return s, allocation, nil
		}
	}

	account, ok := s.sourceAccount(sourceAccountID)
	if !ok {
		return s, RatioAllocation{}, ErrSourceAccountNotFound
	}

	allocation := RatioAllocation{
		ID:                       uuid.NewString(),
		Name:                     fmt.Sprintf("Allocation %s", account.Number),
		SourceAccountID:          account.ID,
		SourceAccountNumber:      account.Number,
		SourceAccountDescription: account.Description,
		EffectiveDate:            time.Now().In(time.UTC),
		Status:                   AllocationActive,
	}

	s.Allocations = append(slices.Clone(s.Allocations), allocation)
	return s, allocation, nil
}

// UpdateAllocation modifies the editable fields of an allocation.
func (s State) UpdateAllocation(id string, update AllocationUpdate) (State, error) {
	i := s.allocationIndex(id)
	if i < 0 {
		return s, ErrAllocationNotFound
	}

	allocations := slices.Clone(s.Allocations)
	if update.Name != nil {
		allocations[i].Name = strings.TrimSpace(*update.Name)
	}
	if update.Status != nil {
		allocations[i].Status = *update.Status
	}
	if update.EffectiveDate != nil {
		allocations[i].EffectiveDate = *update.EffectiveDate
	}

	s.Allocations = allocations
	return s, nil
}

// DeleteAllocation removes an allocation. Results and audit records that were
// already produced for it are kept.
func (s State) DeleteAllocation(id string) (State, error) {
	i := s.allocationIndex(id)
	if i < 0 {
		return s, ErrAllocationNotFound
	}

	s.Allocations = slices.Delete(slices.Clone(s.Allocations), i, i+1)
	return s, nil
}

// ToggleAllocationPresetTargets adds all of a preset's rows as derived target
// datapoints if none of them are present, and removes all of them otherwise.
// Applying the toggle twice returns the target list to its original contents.
func (s State) ToggleAllocationPresetTargets(allocationID, presetID string) (State, error) {
	i := s.allocationIndex(allocationID)
	if i < 0 {
		return s, ErrAllocationNotFound
	}

	preset, ok := s.preset(presetID)
	if !ok {
		return s, ErrPresetNotFound
	}

	allocation := s.Allocations[i]
	present := slices.ContainsFunc(allocation.Targets, func(t TargetDatapoint) bool {
		return t.Kind == DatapointDerived && t.PresetID == presetID
	})

	var targets []TargetDatapoint
	if present {
		for _, target := range allocation.Targets {
			if target.Kind == DatapointDerived && target.PresetID == presetID {
				continue
			}
			targets = append(targets, target)
		}
	} else {
		targets = slices.Clone(allocation.Targets)
		for _, row := range preset.Rows {
			targets = append(targets, TargetDatapoint{
				DatapointID: row.TargetAccountID,
				Kind:        DatapointDerived,
				PresetID:    preset.ID,
				RatioMetric: RatioMetric{ID: row.BasisAccountID},
			})
		}
	}

	allocations := slices.Clone(s.Allocations)
	allocations[i].Targets = targets
	s.Allocations = allocations

	// Fills in names, values and exclusion state for the added datapoints
	return s.synchronize(), nil
}

// ToggleTargetExclusion flips the exclusion flag of a single raw target when
// presetID is empty, and of every datapoint derived from the preset that
// matches the datapoint id otherwise. Presets that map to the same canonical
// target are not affected by each other's exclusions.
func (s State) ToggleTargetExclusion(allocationID, datapointID, presetID string) (State, error) {
	i := s.allocationIndex(allocationID)
	if i < 0 {
		return s, ErrAllocationNotFound
	}

	allocation := s.Allocations[i]
	targets := slices.Clone(allocation.Targets)

	found := false
	for j, target := range targets {
		if target.DatapointID != datapointID {
			continue
		}

		if presetID == "" && target.Kind != DatapointRaw {
			continue
		}

		if presetID != "" && (target.Kind != DatapointDerived || target.PresetID != presetID) {
			continue
		}

		targets[j].IsExclusion = !target.IsExclusion
		found = true
	}

	if !found {
		return s, ErrDatapointNotFound
	}

	allocations := slices.Clone(s.Allocations)
	allocations[i].Targets = targets
	s.Allocations = allocations
	return s, nil
}
