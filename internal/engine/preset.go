package engine

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/exp/slices"
)

// PresetRow pairs one basis account with one canonical target account.
type PresetRow struct {
	BasisAccountID  string `json:"basisAccountId" example:"c9b0d3b4-5be1-4367-a13b-6d0427b4f207"`
	TargetAccountID string `json:"targetAccountId" example:"f81566d9-af4d-4f13-9830-c62c4b5e4c7e"`
}

// Preset is a reusable, named set of basis-to-target pairings.
//
// Invariant: within one preset, no basis account id and no target account id
// appears twice.
type Preset struct {
	ID    string      `json:"id" example:"9a5e55e5-5a51-4b59-a24f-60ee8a8cf3d8"`
	Name  string      `json:"name" example:"Headcount split"`
	Notes string      `json:"notes" example:"Used for shared overhead"`
	Rows  []PresetRow `json:"rows"`
}

var (
	ErrPresetNotFound      = errors.New("there is no preset matching the ID you specified")
	ErrPresetRowNotFound   = errors.New("there is no preset row at the index you specified")
	ErrPresetRowDuplicate  = errors.New("the preset already uses the basis or target account in another row")
	ErrPresetRowIncomplete = errors.New("a preset row needs both a basis account and a target account")
)

// PresetUpdate contains the fields of a preset that can be modified after
// creation. Rows are managed through the row operations.
type PresetUpdate struct {
	Name  *string
	Notes *string
}

// sanitizeRows drops rows that are missing either account reference and rows
// that reuse a basis or target account id of an earlier row. First occurrence
// order is preserved.
func sanitizeRows(rows []PresetRow) []PresetRow {
	sanitized := make([]PresetRow, 0, len(rows))
	usedBasis := make(map[string]bool)
	usedTarget := make(map[string]bool)

	for _, row := range rows {
		if row.BasisAccountID == "" || row.TargetAccountID == "" {
			continue
		}

		if usedBasis[row.BasisAccountID] || usedTarget[row.TargetAccountID] {
			continue
		}

		usedBasis[row.BasisAccountID] = true
		usedTarget[row.TargetAccountID] = true
		sanitized = append(sanitized, row)
	}

	return sanitized
}

// conflictsWith reports whether a row would reuse a basis or target account
// that another row of the preset already uses. The row at excludeIndex does
// not count its own selections against itself, which enables in-place edits.
func (p Preset) conflictsWith(row PresetRow, excludeIndex int) bool {
	for i, existing := range p.Rows {
		if i == excludeIndex {
			continue
		}

		if existing.BasisAccountID == row.BasisAccountID || existing.TargetAccountID == row.TargetAccountID {
			return true
		}
	}

	return false
}

func (s State) preset(id string) (Preset, bool) {
	for _, preset := range s.Presets {
		if preset.ID == id {
			return preset, true
		}
	}

	return Preset{}, false
}

func (s State) presetIndex(id string) int {
	return slices.IndexFunc(s.Presets, func(p Preset) bool { return p.ID == id })
}

// CreatePreset stores a new preset with sanitized rows and a fresh identifier.
func (s State) CreatePreset(name string, rows []PresetRow, notes string) (State, Preset) {
	preset := Preset{
		ID:    uuid.NewString(),
		Name:  strings.TrimSpace(name),
		Notes: strings.TrimSpace(notes),
		Rows:  sanitizeRows(rows),
	}

	s.Presets = append(slices.Clone(s.Presets), preset)
	return s.synchronize(), preset
}

// UpdatePreset renames or annotates a preset. Rows are not touched.
func (s State) UpdatePreset(id string, update PresetUpdate) (State, error) {
	i := s.presetIndex(id)
	if i < 0 {
		return s, ErrPresetNotFound
	}

	presets := slices.Clone(s.Presets)
	if update.Name != nil {
		presets[i].Name = strings.TrimSpace(*update.Name)
	}
	if update.Notes != nil {
		presets[i].Notes = strings.TrimSpace(*update.Notes)
	}

	s.Presets = presets
	return s, nil
}

// DeletePreset removes a preset. Datapoints derived from it are dropped on
// the synchronization that follows.
func (s State) DeletePreset(id string) (State, error) {
	i := s.presetIndex(id)
	if i < 0 {
		return s, ErrPresetNotFound
	}

	s.Presets = slices.Delete(slices.Clone(s.Presets), i, i+1)
	return s.synchronize(), nil
}

// AddPresetRow inserts a row at index, or appends it when index is negative
// or past the end of the row list.
func (s State) AddPresetRow(id string, row PresetRow, index int) (State, error) {
	i := s.presetIndex(id)
	if i < 0 {
		return s, ErrPresetNotFound
	}

	if row.BasisAccountID == "" || row.TargetAccountID == "" {
		return s, ErrPresetRowIncomplete
	}

	preset := s.Presets[i]
	if preset.conflictsWith(row, -1) {
		return s, ErrPresetRowDuplicate
	}

	rows := slices.Clone(preset.Rows)
	if index < 0 || index > len(rows) {
		index = len(rows)
	}
	rows = slices.Insert(rows, index, row)

	presets := slices.Clone(s.Presets)
	presets[i].Rows = rows
	s.Presets = presets
	return s.synchronize(), nil
}

// UpdatePresetRow replaces the row at rowIndex. The update is rejected if it
// would duplicate a basis or target account used by another row.
func (s State) UpdatePresetRow(id string, rowIndex int, row PresetRow) (State, error) {
	i := s.presetIndex(id)
	if i < 0 {
		return s, ErrPresetNotFound
	}

	preset := s.Presets[i]
	if rowIndex < 0 || rowIndex >= len(preset.Rows) {
		return s, ErrPresetRowNotFound
	}

	if row.BasisAccountID == "" || row.TargetAccountID == "" {
		return s, ErrPresetRowIncomplete
	}

	if preset.conflictsWith(row, rowIndex) {
		return s, ErrPresetRowDuplicate
	}

	rows := slices.Clone(preset.Rows)
	rows[rowIndex] = row

	presets := slices.Clone(s.Presets)
	presets[i].Rows = rows
	s.Presets = presets
	return s.synchronize(), nil
}

// RemovePresetRow removes the row at rowIndex.
func (s State) RemovePresetRow(id string, rowIndex int) (State, error) {
	i := s.presetIndex(id)
	if i < 0 {
		return s, ErrPresetNotFound
	}

	preset := s.Presets[i]
	if rowIndex < 0 || rowIndex >= len(preset.Rows) {
		return s, ErrPresetRowNotFound
	}

	presets := slices.Clone(s.Presets)
	presets[i].Rows = slices.Delete(slices.Clone(preset.Rows), rowIndex, rowIndex+1)
	s.Presets = presets
	return s.synchronize(), nil
}

// AvailableBasisAccounts returns the basis accounts that are not yet used by
// other rows of the preset. The row at excludeRowIndex keeps its own current
// selection available, pass a negative index when creating a new row.
func (s State) AvailableBasisAccounts(presetID string, excludeRowIndex int) ([]BasisAccount, error) {
	preset, ok := s.preset(presetID)
	if !ok {
		return nil, ErrPresetNotFound
	}

	used := make(map[string]bool)
	for i, row := range preset.Rows {
		if i == excludeRowIndex {
			continue
		}
		used[row.BasisAccountID] = true
	}

	available := make([]BasisAccount, 0, len(s.BasisAccounts))
	for _, account := range s.BasisAccounts {
		if !used[account.ID] {
			available = append(available, account)
		}
	}

	return available, nil
}

// AvailableTargetAccounts returns the canonical accounts that are not yet
// used by other rows of the preset, with the same excludeRowIndex semantics
// as AvailableBasisAccounts.
func (s State) AvailableTargetAccounts(presetID string, excludeRowIndex int) ([]TargetAccount, error) {
	preset, ok := s.preset(presetID)
	if !ok {
		return nil, ErrPresetNotFound
	}

	used := make(map[string]bool)
	for i, row := range preset.Rows {
		if i == excludeRowIndex {
			continue
		}
		used[row.TargetAccountID] = true
	}

	available := make([]TargetAccount, 0, len(s.TargetAccounts))
	for _, account := range s.TargetAccounts {
		if !used[account.ID] {
			available = append(available, account)
		}
	}

	return available, nil
}
