package v1

import (
	"github.com/google/uuid"
	"github.com/ratioflow/backend/internal/models"
	"github.com/ratioflow/backend/internal/types"
	"github.com/shopspring/decimal"
)

type SourceAccountEditable struct {
	Number       string          `json:"number" example:"4010" binding:"required"`              // Ledger number of the account
	Description  string          `json:"description" example:"Payroll expense" default:""`      // Description of the account
	DefaultValue decimal.Decimal `json:"defaultValue" example:"150000" default:"0"`             // Balance used for periods without a delivered value
	Archived     bool            `json:"archived" example:"false" default:"false"`              // Is the account still delivered by the system of record?
}

func (editable SourceAccountEditable) model() models.SourceAccount {
	return models.SourceAccount{
		Number:       editable.Number,
		Description:  editable.Description,
		DefaultValue: editable.DefaultValue,
		Archived:     editable.Archived,
	}
}

type BasisAccountEditable struct {
	Name         string          `json:"name" example:"Headcount Engineering" binding:"required"`   // Name of the measurement
	Description  string          `json:"description" example:"FTE per cost center" default:""`      // Description of the measurement
	DefaultValue decimal.Decimal `json:"defaultValue" example:"42" default:"0"`                     // Value used for periods without a delivered value
	MappedTarget uuid.UUID       `json:"mappedTargetId" example:"f81566d9-af4d-4f13-9830-c62c4b5e4c7e"` // Canonical target suggested for this measurement
	Archived     bool            `json:"archived" example:"false" default:"false"`                  // Is the measurement still delivered?
}

func (editable BasisAccountEditable) model() models.BasisAccount {
	return models.BasisAccount{
		Name:           editable.Name,
		Description:    editable.Description,
		DefaultValue:   editable.DefaultValue,
		MappedTargetID: editable.MappedTarget,
		Archived:       editable.Archived,
	}
}

type TargetAccountEditable struct {
	Number string `json:"number" example:"6200" binding:"required"` // Number in the canonical chart of accounts
	Name   string `json:"name" example:"Facilities" default:""`     // Name of the canonical account
}

func (editable TargetAccountEditable) model() models.TargetAccount {
	return models.TargetAccount{
		Number: editable.Number,
		Name:   editable.Name,
	}
}

// AccountValueEditable is one per-period value of an account.
type AccountValueEditable struct {
	Period types.Period    `json:"period" example:"2026-03" binding:"required"` // The reporting period the value belongs to
	Value  decimal.Decimal `json:"value" example:"1337.42"`                     // The value for the period
}

type AccountQueryFilter struct {
	Search   string `form:"search"`   // Glob pattern matched against number, name and description
	Archived bool   `form:"archived"` // Include archived accounts
}
