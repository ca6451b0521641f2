package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// RatioAllocation distributes the balance of one source account across its
// target datapoints. One allocation exists per source account.
type RatioAllocation struct {
	DefaultModel
	Name            string
	SourceAccountID uuid.UUID `gorm:"uniqueIndex"`

	// Cached from the source account so the allocation stays displayable
	// when the account vanishes
	SourceAccountNumber      string
	SourceAccountDescription string

	EffectiveDate time.Time
	Status        string
	Targets       []TargetDatapoint `json:"-" gorm:"constraint:OnDelete:CASCADE"`
}

// TargetDatapoint is one stored line of an allocation's distribution.
// Kind is RAW for independently supplied ratio metrics and DERIVED for
// datapoints regenerated from a preset row.
type TargetDatapoint struct {
	Timestamps
	RatioAllocationID uuid.UUID `gorm:"primaryKey"`
	Position          int       `gorm:"primaryKey"`
	DatapointID       string
	Name              string
	Kind              string    `gorm:"check:kind IN ('RAW', 'DERIVED')"`
	PresetID          uuid.UUID `gorm:"default:null"`
	MetricID          string
	MetricName        string
	MetricValue       decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	IsExclusion       bool
}

// BeforeSave trims whitespace from all strings.
func (a *RatioAllocation) BeforeSave(_ *gorm.DB) error {
	a.Name = strings.TrimSpace(a.Name)
	return nil
}
