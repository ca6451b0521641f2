package models

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Preset is a stored preset definition. Row order is the Position column.
type Preset struct {
	DefaultModel
	Name  string
	Notes string
	Rows  []PresetRow `json:"-" gorm:"constraint:OnDelete:CASCADE"`
}

// PresetRow pairs one basis account with one canonical target account.
//
// Uniqueness of the basis and target references within one preset is enforced
// by the engine before rows are stored, the unique indexes are the backstop.
type PresetRow struct {
	Timestamps
	PresetID        uuid.UUID `gorm:"primaryKey;uniqueIndex:preset_row_basis;uniqueIndex:preset_row_target"`
	Position        int       `gorm:"primaryKey"`
	BasisAccountID  uuid.UUID `gorm:"uniqueIndex:preset_row_basis"`
	TargetAccountID uuid.UUID `gorm:"uniqueIndex:preset_row_target"`
}

// BeforeSave trims whitespace from all strings.
func (p *Preset) BeforeSave(_ *gorm.DB) error {
	p.Name = strings.TrimSpace(p.Name)
	p.Notes = strings.TrimSpace(p.Notes)
	return nil
}
