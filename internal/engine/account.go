package engine

import (
	"github.com/ratioflow/backend/internal/types"
	"github.com/shopspring/decimal"
)

// SourceAccount is a general-ledger account whose balance gets distributed.
// It is owned by the account-data provider and read-only to the engine.
type SourceAccount struct {
	ID           string                           `json:"id" example:"1e777d24-3f5b-4c43-8ded-c5fcf48bcc06"`
	Number       string                           `json:"number" example:"4010"`
	Description  string                           `json:"description" example:"Payroll expense"`
	DefaultValue decimal.Decimal                  `json:"defaultValue" example:"150000"`
	PeriodValues map[types.Period]decimal.Decimal `json:"periodValues"`
}

// BasisAccount is an operational or financial measurement used as the
// weighting driver for allocation. Read-only to the engine.
type BasisAccount struct {
	ID           string                           `json:"id" example:"c9b0d3b4-5be1-4367-a13b-6d0427b4f207"`
	Name         string                           `json:"name" example:"Headcount Engineering"`
	Description  string                           `json:"description" example:"FTE per cost center"`
	DefaultValue decimal.Decimal                  `json:"defaultValue" example:"42"`
	PeriodValues map[types.Period]decimal.Decimal `json:"periodValues"`

	// The canonical target this measurement is nominally mapped to.
	// Used for default target suggestions when building preset rows.
	MappedTargetID string `json:"mappedTargetId" example:"f81566d9-af4d-4f13-9830-c62c4b5e4c7e"`
}

// TargetAccount is one account of the canonical chart of accounts that
// allocations distribute to.
type TargetAccount struct {
	ID     string `json:"id" example:"f81566d9-af4d-4f13-9830-c62c4b5e4c7e"`
	Number string `json:"number" example:"6000"`
	Name   string `json:"name" example:"Facilities"`
}

// Resolve returns the value of a basis account for a reporting period.
// If the account carries a value for the period, that value is used,
// otherwise the account's default value.
func Resolve(account BasisAccount, period types.Period) decimal.Decimal {
	if !period.IsZero() {
		if value, ok := account.PeriodValues[period]; ok {
			return value
		}
	}

	return account.DefaultValue
}

// ResolveSource returns the balance of a source account for a reporting
// period, falling back to the account's default value.
func ResolveSource(account SourceAccount, period types.Period) decimal.Decimal {
	if !period.IsZero() {
		if value, ok := account.PeriodValues[period]; ok {
			return value
		}
	}

	return account.DefaultValue
}

func (s State) sourceAccount(id string) (SourceAccount, bool) {
	for _, account := range s.SourceAccounts {
		if account.ID == id {
			return account, true
		}
	}

	return SourceAccount{}, false
}

func (s State) basisAccount(id string) (BasisAccount, bool) {
	for _, account := range s.BasisAccounts {
		if account.ID == id {
			return account, true
		}
	}

	return BasisAccount{}, false
}

func (s State) targetAccount(id string) (TargetAccount, bool) {
	for _, account := range s.TargetAccounts {
		if account.ID == id {
			return account, true
		}
	}

	return TargetAccount{}, false
}
