package engine

import (
	"errors"
	"sort"

	"github.com/shopspring/decimal"
)

// Money amounts are rounded to cents.
const workingPrecision = 2

var (
	ErrNoWeights             = errors.New("a distribution needs at least one weight")
	ErrBasisTotalNotPositive = errors.New("the total of all basis values must be positive")
)

// Distribution is the result of proportionally distributing a source value
// across a list of weights.
type Distribution struct {
	Allocations []decimal.Decimal

	// Index of the entry that received the rounding adjustment, -1 if the
	// rounded shares already added up exactly.
	AdjustmentIndex  int
	AdjustmentAmount decimal.Decimal
}

// Distribute splits sourceValue across weights proportionally. Each share is
// rounded to the working precision and the rounding drift is added to the
// share with the largest absolute weight, first occurrence on ties, so the
// shares always sum to sourceValue exactly.
func Distribute(sourceValue decimal.Decimal, weights []decimal.Decimal) (Distribution, error) {
	if len(weights) == 0 {
		return Distribution{}, ErrNoWeights
	}

	total := decimal.Zero
	for _, weight := range weights {
		total = total.Add(weight)
	}

	if total.LessThanOrEqual(decimal.Zero) {
		return Distribution{}, ErrBasisTotalNotPositive
	}

	allocations := make([]decimal.Decimal, len(weights))
	allocated := decimal.Zero
	for i, weight := range weights {
		share := sourceValue.Mul(weight).Div(total).Round(workingPrecision)
		allocations[i] = share
		allocated = allocated.Add(share)
	}

	drift := sourceValue.Sub(allocated)
	if drift.IsZero() {
		return Distribution{Allocations: allocations, AdjustmentIndex: -1, AdjustmentAmount: decimal.Zero}, nil
	}

	adjusted := 0
	for i, weight := range weights {
		if weight.Abs().GreaterThan(weights[adjusted].Abs()) {
			adjusted = i
		}
	}
	allocations[adjusted] = allocations[adjusted].Add(drift)

	return Distribution{
		Allocations:      allocations,
		AdjustmentIndex:  adjusted,
		AdjustmentAmount: drift,
	}, nil
}

// NormalizePercentages corrects floating point drift on a list of raw
// percentages that should sum to 100.00 using the largest-remainder method:
// each percentage is truncated to basis points and the shortfall is handed
// out one basis point at a time to the entries with the largest truncation
// remainder. The returned percentages always sum to exactly 100.00.
func NormalizePercentages(ratios []decimal.Decimal) []decimal.Decimal {
	if len(ratios) == 0 {
		return nil
	}

	const targetBasisPoints = int64(10000)

	basisPoints := make([]int64, len(ratios))
	remainders := make([]struct {
		index     int
		remainder decimal.Decimal
	}, len(ratios))

	truncated := int64(0)
	for i, ratio := range ratios {
		exact := ratio.Mul(decimal.NewFromInt(100))
		whole := exact.Truncate(0)
		basisPoints[i] = whole.IntPart()
		truncated += basisPoints[i]

		remainders[i].index = i
		remainders[i].remainder = exact.Sub(whole)
	}

	// Largest remainder first. Ties go to the later entry, so that equal
	// weights read 33.33, 33.33, 33.34 instead of 33.34, 33.33, 33.33.
	sort.SliceStable(remainders, func(i, j int) bool {
		switch remainders[i].remainder.Cmp(remainders[j].remainder) {
		case 1:
			return true
		case -1:
			return false
		default:
			return remainders[i].index > remainders[j].index
		}
	})

	shortfall := targetBasisPoints - truncated
	for i := int64(0); i < shortfall; i++ {
		basisPoints[remainders[i%int64(len(ratios))].index]++
	}

	percentages := make([]decimal.Decimal, len(ratios))
	for i, points := range basisPoints {
		percentages[i] = decimal.New(points, -2)
	}

	return percentages
}
