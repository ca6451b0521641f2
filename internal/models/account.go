package models

import (
	"strings"

	"github.com/google/uuid"
	"github.com/ratioflow/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// SourceAccount is a general-ledger account whose balance gets allocated.
type SourceAccount struct {
	DefaultModel
	Number       string `gorm:"uniqueIndex"`
	Description  string
	DefaultValue decimal.Decimal      `gorm:"type:DECIMAL(20,8)"`
	Values       []SourceAccountValue `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Archived     bool
}

// SourceAccountValue is the balance of a source account in one reporting
// period.
type SourceAccountValue struct {
	Timestamps
	SourceAccountID uuid.UUID       `gorm:"primaryKey"`
	Period          types.Period    `gorm:"primaryKey"`
	Value           decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
}

// BeforeSave trims whitespace from all strings.
func (a *SourceAccount) BeforeSave(_ *gorm.DB) error {
	a.Number = strings.TrimSpace(a.Number)
	a.Description = strings.TrimSpace(a.Description)
	return nil
}

// BasisAccount is a measurement account that drives allocation ratios.
type BasisAccount struct {
	DefaultModel
	Name         string `gorm:"uniqueIndex"`
	Description  string
	DefaultValue decimal.Decimal     `gorm:"type:DECIMAL(20,8)"`
	Values       []BasisAccountValue `json:"-" gorm:"constraint:OnDelete:CASCADE"`

	// The canonical target this measurement nominally maps to. Used to
	// suggest a target when the account is added to a preset row.
	MappedTargetID uuid.UUID `gorm:"default:null"`
	Archived       bool
}

// BasisAccountValue is the value of a basis account in one reporting period.
type BasisAccountValue struct {
	Timestamps
	BasisAccountID uuid.UUID       `gorm:"primaryKey"`
	Period         types.Period    `gorm:"primaryKey"`
	Value          decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
}

// BeforeSave trims whitespace from all strings.
func (a *BasisAccount) BeforeSave(_ *gorm.DB) error {
	a.Name = strings.TrimSpace(a.Name)
	a.Description = strings.TrimSpace(a.Description)
	return nil
}

// TargetAccount is one account of the canonical chart of accounts.
type TargetAccount struct {
	DefaultModel
	Number string `gorm:"uniqueIndex"`
	Name   string
}

// BeforeSave trims whitespace from all strings.
func (a *TargetAccount) BeforeSave(_ *gorm.DB) error {
	a.Number = strings.TrimSpace(a.Number)
	a.Name = strings.TrimSpace(a.Name)
	return nil
}

// ReportingPeriod is one of the periods the system of record has values for.
type ReportingPeriod struct {
	Timestamps
	Period types.Period `gorm:"primaryKey"`

	// The period the engine currently works with. At most one row is
	// selected at a time.
	Selected bool
}
