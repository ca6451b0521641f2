package v1

import (
	"github.com/ratioflow/backend/internal/engine"
)

// PresetRowEditable pairs one basis account with one canonical target
// account.
type PresetRowEditable struct {
	BasisAccountID  string `json:"basisAccountId" example:"7e6ed4a4-ac7c-43b6-bd9f-6bcd9c3f8b92"`  // The measurement driving the row
	TargetAccountID string `json:"targetAccountId" example:"f81566d9-af4d-4f13-9830-c62c4b5e4c7e"` // The canonical account receiving the row's share
}

func (editable PresetRowEditable) row() engine.PresetRow {
	return engine.PresetRow{
		BasisAccountID:  editable.BasisAccountID,
		TargetAccountID: editable.TargetAccountID,
	}
}

type PresetEditable struct {
	Name  string              `json:"name" example:"Headcount split" binding:"required"` // Name of the preset
	Notes string              `json:"notes" example:"Used for overhead" default:""`      // Notes about the preset
	Rows  []PresetRowEditable `json:"rows"`                                              // The initial rows
}

func (editable PresetEditable) rows() []engine.PresetRow {
	rows := make([]engine.PresetRow, 0, len(editable.Rows))
	for _, row := range editable.Rows {
		rows = append(rows, row.row())
	}

	return rows
}

// PresetUpdateRequest contains the fields of a preset that can be patched.
// Fields that are not set stay untouched.
type PresetUpdateRequest struct {
	Name  *string `json:"name" example:"Headcount split"` // Name of the preset
	Notes *string `json:"notes" example:"Q2 review"`      // Notes about the preset
}

// PresetRowQuery carries the optional position for row inserts. A negative
// index appends.
type PresetRowQuery struct {
	Index int `form:"index,default=-1"` // Position the row is inserted at
}

// AvailableAccountsQuery optionally excludes one row from the conflict
// check, so that editing a row can offer the row's own current account.
type AvailableAccountsQuery struct {
	ExcludeRow int `form:"excludeRow,default=-1"` // Row index whose accounts stay selectable
}

// URIRowIndex is used for routes that address one row of a preset.
type URIRowIndex struct {
	ID    string `uri:"id"`
	Index int    `uri:"index"`
}
