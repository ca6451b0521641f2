// Package types implements special types for the ratioflow backend.
package types

import (
	"database/sql/driver"
	"errors"
	"strings"
)

// Period is the identifier of a reporting period, e.g. "2026-03" or "FY26-Q1".
// Periods are opaque to the backend: they are supplied by the system of record
// together with the account values and are only ever compared for equality.
type Period string

var ErrPeriodEmpty = errors.New("a period identifier must not be empty")

// ParsePeriod normalizes a string into a Period.
func ParsePeriod(s string) (Period, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", ErrPeriodEmpty
	}

	return Period(s), nil
}

func (p Period) String() string {
	return string(p)
}

// IsZero reports if the period is unset.
func (p Period) IsZero() bool {
	return p == ""
}

// Scan reads the value from the database.
func (p *Period) Scan(value any) error {
	switch v := value.(type) {
	case string:
		*p = Period(v)
	case []byte:
		*p = Period(v)
	case nil:
		*p = ""
	default:
		return errors.New("unsupported database type for a period")
	}

	return nil
}

// Value returns the value for the SQL driver to write to the database.
func (p Period) Value() (driver.Value, error) {
	return string(p), nil
}

// GormDataType defines the data type used by gorm for the type.
func (Period) GormDataType() string {
	return "text"
}
