// Package engine implements the dynamic ratio allocation engine: it binds
// basis measurements to canonical target accounts through presets, keeps the
// derived target datapoints of every allocation consistent when presets,
// basis data or the reporting period change, and distributes source balances
// proportionally with exact rounding reconciliation.
//
// The engine holds no ambient state and performs no I/O. All data lives in a
// State snapshot, every mutator is a pure State to State function, and the
// Store serializes their application.
package engine

import (
	"time"

	"github.com/google/uuid"
	"github.com/ratioflow/backend/internal/types"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

// State is one immutable snapshot of the engine.
type State struct {
	SourceAccounts []SourceAccount
	BasisAccounts  []BasisAccount
	TargetAccounts []TargetAccount
	Presets        []Preset
	Allocations    []RatioAllocation

	AvailablePeriods []types.Period
	SelectedPeriod   types.Period

	Results  []AllocationResult
	Issues   []ValidationIssue
	AuditLog []AuditRecord

	// A calculation run is in progress. There is no parallel calculation,
	// a single flag is all the resolution needed.
	Calculating bool
}

// HydrateInput is a bulk (re)initialization of the engine. Nil slices leave
// the corresponding section of the state unchanged.
type HydrateInput struct {
	SourceAccounts   []SourceAccount
	BasisAccounts    []BasisAccount
	TargetAccounts   []TargetAccount
	Presets          []Preset
	Allocations      []RatioAllocation
	AvailablePeriods []types.Period
	SelectedPeriod   *types.Period
}

// Hydrate replaces the supplied sections of the state and resynchronizes all
// allocations against the new presets, basis accounts and period.
func (s State) Hydrate(in HydrateInput) State {
	if in.SourceAccounts != nil {
		s.SourceAccounts = in.SourceAccounts
	}
	if in.BasisAccounts != nil {
		s.BasisAccounts = in.BasisAccounts
	}
	if in.TargetAccounts != nil {
		s.TargetAccounts = in.TargetAccounts
	}
	if in.Presets != nil {
		s.Presets = in.Presets
	}
	if in.Allocations != nil {
		s.Allocations = in.Allocations
	}
	if in.AvailablePeriods != nil {
		s.AvailablePeriods = in.AvailablePeriods
	}
	if in.SelectedPeriod != nil {
		s.SelectedPeriod = *in.SelectedPeriod
	}

	return s.synchronize()
}

// SetSelectedPeriod switches the active reporting period, resynchronizes all
// derived datapoints and recalculates every allocation for that period.
func (s State) SetSelectedPeriod(period types.Period) State {
	s.SelectedPeriod = period

	if !slices.Contains(s.AvailablePeriods, period) && !period.IsZero() {
		s.AvailablePeriods = append(slices.Clone(s.AvailablePeriods), period)
	}

	return s.synchronize().CalculateAllocations(period)
}

// CalculateAllocations validates and calculates every allocation for the
// period. Prior results and issues for the period are replaced, runs for
// other periods are unaffected. One audit record is appended per successful
// calculation. Nothing escapes as an error: every failure mode becomes a
// ValidationIssue.
func (s State) CalculateAllocations(period types.Period) State {
	now := time.Now().In(time.UTC)

	results := make([]AllocationResult, 0, len(s.Results))
	for _, result := range s.Results {
		if result.PeriodID != period {
			results = append(results, result)
		}
	}

	issues := make([]ValidationIssue, 0, len(s.Issues))
	for _, issue := range s.Issues {
		if issue.PeriodID != period {
			issues = append(issues, issue)
		}
	}

	audit := slices.Clone(s.AuditLog)

	for _, allocation := range s.Allocations {
		input, allocationIssues := s.validateAllocation(allocation, period)
		if len(allocationIssues) > 0 {
			issues = append(issues, allocationIssues...)
			continue
		}

		distribution, err := Distribute(input.sourceValue, input.weights)
		if err != nil {
			issues = append(issues, newIssue(allocation, period, err.Error()))
			continue
		}

		result, record := buildRun(allocation, period, input, distribution, now)
		results = append(results, result)
		audit = append(audit, record)
	}

	s.Results = results
	s.Issues = issues
	s.AuditLog = audit
	return s
}

// buildRun assembles the result and the audit record of one successful
// calculation.
func buildRun(allocation RatioAllocation, period types.Period, input calculationInput, distribution Distribution, runAt time.Time) (AllocationResult, AuditRecord) {
	rawPercentages := make([]decimal.Decimal, len(input.weights))
	for i, weight := range input.weights {
		rawPercentages[i] = weight.Div(input.basisTotal).Mul(decimal.NewFromInt(100))
	}
	percentages := NormalizePercentages(rawPercentages)

	var adjustment *Adjustment
	if distribution.AdjustmentIndex >= 0 {
		adjustment = &Adjustment{
			TargetID: input.targets[distribution.AdjustmentIndex].DatapointID,
			Amount:   distribution.AdjustmentAmount,
		}
	}

	result := AllocationResult{
		AllocationID: allocation.ID,
		PeriodID:     period,
		SourceValue:  input.sourceValue,
		BasisTotal:   input.basisTotal,
		Adjustment:   adjustment,
		RunAt:        runAt,
	}

	record := AuditRecord{
		ID:              uuid.NewString(),
		AllocationID:    allocation.ID,
		AllocationName:  allocation.Name,
		SourceAccountID: allocation.SourceAccountID,
		PeriodID:        period,
		RunAt:           runAt,
		SourceAmount:    input.sourceValue,
		BasisTotal:      input.basisTotal,
		Adjustment:      adjustment,
	}

	for i, target := range input.targets {
		result.Targets = append(result.Targets, ResultTarget{
			TargetID:   target.DatapointID,
			Value:      distribution.Allocations[i],
			Percentage: percentages[i],
		})

		record.Targets = append(record.Targets, AuditTarget{
			TargetID:       target.DatapointID,
			BasisAccountID: target.RatioMetric.ID,
			BasisValue:     target.RatioMetric.Value,
			Value:          distribution.Allocations[i],
			Percentage:     percentages[i],
		})
	}

	return result, record
}

// ResultsForPeriod returns the results of the most recent calculation run
// for a period.
func (s State) ResultsForPeriod(period types.Period) []AllocationResult {
	var results []AllocationResult
	for _, result := range s.Results {
		if result.PeriodID == period {
			results = append(results, result)
		}
	}

	return results
}

// IssuesForPeriod returns the validation issues of the most recent
// calculation run for a period.
func (s State) IssuesForPeriod(period types.Period) []ValidationIssue {
	var issues []ValidationIssue
	for _, issue := range s.Issues {
		if issue.PeriodID == period {
			issues = append(issues, issue)
		}
	}

	return issues
}
