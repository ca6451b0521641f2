package engine

import (
	"time"

	"github.com/ratioflow/backend/internal/types"
	"github.com/shopspring/decimal"
)

// Adjustment is the single rounding correction of a calculation run.
type Adjustment struct {
	TargetID string          `json:"targetId" example:"f81566d9-af4d-4f13-9830-c62c4b5e4c7e"`
	Amount   decimal.Decimal `json:"amount" example:"0.01"`
}

// ResultTarget is one target's share of a calculated distribution.
type ResultTarget struct {
	TargetID   string          `json:"targetId" example:"f81566d9-af4d-4f13-9830-c62c4b5e4c7e"`
	Value      decimal.Decimal `json:"value" example:"720"`
	Percentage decimal.Decimal `json:"percentage" example:"60"`
}

// AllocationResult is the outcome of calculating one allocation for one
// period. Recalculation replaces the result for the same allocation and
// period, results for other periods are unaffected.
type AllocationResult struct {
	AllocationID string          `json:"allocationId" example:"ec1b842a-76e8-4c3e-98a6-18f4d26e1f06"`
	PeriodID     types.Period    `json:"periodId" example:"2026-03"`
	SourceValue  decimal.Decimal `json:"sourceValue" example:"1200"`
	BasisTotal   decimal.Decimal `json:"basisTotal" example:"50"`
	Targets      []ResultTarget  `json:"targets"`
	Adjustment   *Adjustment     `json:"adjustment"`
	RunAt        time.Time       `json:"runAt" example:"2026-04-01T09:00:00Z"`
}

// AuditTarget records the resolved basis value that contributed to one
// target's share.
type AuditTarget struct {
	TargetID       string          `json:"targetId" example:"f81566d9-af4d-4f13-9830-c62c4b5e4c7e"`
	BasisAccountID string          `json:"basisAccountId" example:"c9b0d3b4-5be1-4367-a13b-6d0427b4f207"`
	BasisValue     decimal.Decimal `json:"basisValue" example:"30"`
	Value          decimal.Decimal `json:"value" example:"720"`
	Percentage     decimal.Decimal `json:"percentage" example:"60"`
}

// AuditRecord is the immutable record of one successful calculation run.
// Records are appended and never mutated or removed, recalculating the same
// allocation and period appends a new record.
type AuditRecord struct {
	ID              string          `json:"id" example:"5b95e1a9-522d-4a36-9074-32f7c2ff0513"`
	AllocationID    string          `json:"allocationId" example:"ec1b842a-76e8-4c3e-98a6-18f4d26e1f06"`
	AllocationName  string          `json:"allocationName" example:"Allocation 4010"`
	SourceAccountID string          `json:"sourceAccountId" example:"1e777d24-3f5b-4c43-8ded-c5fcf48bcc06"`
	PeriodID        types.Period    `json:"periodId" example:"2026-03"`
	RunAt           time.Time       `json:"runAt" example:"2026-04-01T09:00:00Z"`
	SourceAmount    decimal.Decimal `json:"sourceAmount" example:"1200"`
	BasisTotal      decimal.Decimal `json:"basisTotal" example:"50"`
	Adjustment      *Adjustment     `json:"adjustment"`
	Targets         []AuditTarget   `json:"targets"`
}
