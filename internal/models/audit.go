package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/ratioflow/backend/internal/types"
	"github.com/shopspring/decimal"
)

// AuditRecord is the stored record of one successful calculation run.
// Records are append-only: they are inserted once and there is no API that
// updates or deletes them.
type AuditRecord struct {
	DefaultModel
	AllocationID     uuid.UUID           `json:"allocationId" gorm:"index" example:"ec1b842a-76e8-4c3e-98a6-18f4d26e1f06"`
	AllocationName   string              `json:"allocationName" example:"Allocation 4010"`
	SourceAccountID  uuid.UUID           `json:"sourceAccountId" example:"1e777d24-3f5b-4c43-8ded-c5fcf48bcc06"`
	PeriodID         types.Period        `json:"periodId" gorm:"index" example:"2026-03"`
	RunAt            time.Time           `json:"runAt" example:"2026-04-01T09:00:00Z"`
	SourceAmount     decimal.Decimal     `json:"sourceAmount" gorm:"type:DECIMAL(20,8)" example:"1200"`
	BasisTotal       decimal.Decimal     `json:"basisTotal" gorm:"type:DECIMAL(20,8)" example:"50"`
	AdjustmentTarget string              `json:"adjustmentTarget" example:"f81566d9-af4d-4f13-9830-c62c4b5e4c7e"`
	AdjustmentAmount decimal.NullDecimal `json:"adjustmentAmount" gorm:"type:DECIMAL(20,8)" swaggertype:"number"`
	Targets          []AuditTarget       `json:"targets" gorm:"constraint:OnDelete:CASCADE"`
}

// AuditTarget is the per-target detail of an audit record, including the
// resolved basis value that contributed to the target's ratio.
type AuditTarget struct {
	Timestamps
	AuditRecordID  uuid.UUID       `json:"-" gorm:"primaryKey"`
	Position       int             `json:"position" gorm:"primaryKey" example:"0"`
	TargetID       string          `json:"targetId" example:"f81566d9-af4d-4f13-9830-c62c4b5e4c7e"`
	BasisAccountID string          `json:"basisAccountId" example:"c9b0d3b4-5be1-4367-a13b-6d0427b4f207"`
	BasisValue     decimal.Decimal `json:"basisValue" gorm:"type:DECIMAL(20,8)" example:"30"`
	Value          decimal.Decimal `json:"value" gorm:"type:DECIMAL(20,8)" example:"720"`
	Percentage     decimal.Decimal `json:"percentage" gorm:"type:DECIMAL(7,4)" example:"60"`
}
