package engine

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/ratioflow/backend/internal/types"
	"github.com/shopspring/decimal"
)

// ValidationIssue describes why an allocation could not be calculated for a
// period. Issues are data, not errors: one allocation's issues never block
// the calculation of its siblings.
type ValidationIssue struct {
	ID              string       `json:"id" example:"0dd7d0c5-21ea-4d5a-ba51-d31f1b1309bb"`
	AllocationID    string       `json:"allocationId" example:"ec1b842a-76e8-4c3e-98a6-18f4d26e1f06"`
	PeriodID        types.Period `json:"periodId" example:"2026-03"`
	SourceAccountID string       `json:"sourceAccountId" example:"1e777d24-3f5b-4c43-8ded-c5fcf48bcc06"`
	Message         string       `json:"message" example:"the basis total is zero"`

	// The target datapoints the issue refers to, if any
	TargetIDs []string `json:"targetIds"`
}

// calculationInput is a validated allocation, ready for distribution.
type calculationInput struct {
	sourceValue decimal.Decimal
	basisTotal  decimal.Decimal

	// Non-excluded datapoints and their resolved weights, same order
	targets []TargetDatapoint
	weights []decimal.Decimal
}

func newIssue(allocation RatioAllocation, period types.Period, message string, targetIDs ...string) ValidationIssue {
	return ValidationIssue{
		ID:              uuid.NewString(),
		AllocationID:    allocation.ID,
		PeriodID:        period,
		SourceAccountID: allocation.SourceAccountID,
		Message:         message,
		TargetIDs:       targetIDs,
	}
}

// validateAllocation screens one allocation before calculation. It returns
// the calculation input when the allocation is valid, and the list of issues
// otherwise. Checks run in a fixed order and any issue aborts the
// calculation of this allocation only.
func (s State) validateAllocation(allocation RatioAllocation, period types.Period) (calculationInput, []ValidationIssue) {
	source, ok := s.sourceAccount(allocation.SourceAccountID)
	if !ok {
		return calculationInput{}, []ValidationIssue{
			newIssue(allocation, period, fmt.Sprintf("the source account %s no longer exists", allocation.SourceAccountID)),
		}
	}

	if len(allocation.Targets) < 2 {
		return calculationInput{}, []ValidationIssue{
			newIssue(allocation, period, "an allocation needs at least two target datapoints"),
		}
	}

	var issues []ValidationIssue
	for _, target := range allocation.Targets {
		if target.Kind == DatapointDerived {
			preset, ok := s.preset(target.PresetID)
			if !ok {
				issues = append(issues, newIssue(allocation, period, fmt.Sprintf("the preset %s no longer exists", target.PresetID), target.DatapointID))
				continue
			}

			if !presetHasRow(preset, target) {
				issues = append(issues, newIssue(allocation, period, fmt.Sprintf("the preset %s no longer contains a row for target %s", preset.Name, target.DatapointID), target.DatapointID))
				continue
			}

			if _, ok := s.basisAccount(target.RatioMetric.ID); !ok {
				issues = append(issues, newIssue(allocation, period, fmt.Sprintf("the basis account %s no longer exists", target.RatioMetric.ID), target.DatapointID))
				continue
			}
		}

		if target.RatioMetric.Value.IsNegative() {
			issues = append(issues, newIssue(allocation, period, fmt.Sprintf("the basis value for target %s is negative", target.DatapointID), target.DatapointID))
		}
	}

	if len(issues) > 0 {
		return calculationInput{}, issues
	}

	input := calculationInput{
		sourceValue: ResolveSource(source, period),
		basisTotal:  decimal.Zero,
	}

	for _, target := range allocation.Targets {
		if target.IsExclusion {
			continue
		}

		input.targets = append(input.targets, target)
		input.weights = append(input.weights, target.RatioMetric.Value)
		input.basisTotal = input.basisTotal.Add(target.RatioMetric.Value)
	}

	if input.basisTotal.LessThanOrEqual(decimal.Zero) {
		return calculationInput{}, []ValidationIssue{
			newIssue(allocation, period, "the basis total is zero"),
		}
	}

	var circular []string
	for _, target := range input.targets {
		if target.RatioMetric.ID == allocation.SourceAccountID {
			circular = append(circular, target.DatapointID)
		}
	}

	if len(circular) > 0 {
		return calculationInput{}, []ValidationIssue{
			newIssue(allocation, period, "the allocation uses its own source account as a basis", circular...),
		}
	}

	// Cannot happen while the basis total is positive, kept as a safety net
	if len(input.targets) == 0 {
		return calculationInput{}, []ValidationIssue{
			newIssue(allocation, period, "no target datapoints are left to allocate to"),
		}
	}

	return input, nil
}

func presetHasRow(preset Preset, target TargetDatapoint) bool {
	for _, row := range preset.Rows {
		if row.BasisAccountID == target.RatioMetric.ID && row.TargetAccountID == target.DatapointID {
			return true
		}
	}

	return false
}
