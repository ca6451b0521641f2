package engine_test

import (
	"github.com/ratioflow/backend/internal/engine"
	"github.com/ratioflow/backend/internal/types"
	"github.com/shopspring/decimal"
)

// testState builds a snapshot with one source account, three basis accounts,
// three canonical targets and one preset pairing the first two up.
func testState() (engine.State, engine.Preset) {
	s := engine.State{}.Hydrate(engine.HydrateInput{
		SourceAccounts: []engine.SourceAccount{
			{
				ID:           "s1",
				Number:       "4010",
				Description:  "Payroll expense",
				DefaultValue: decimal.NewFromInt(1000),
				PeriodValues: map[types.Period]decimal.Decimal{
					"2026-03": decimal.NewFromInt(1200),
				},
			},
		},
		BasisAccounts: []engine.BasisAccount{
			{
				ID:           "b1",
				Name:         "Headcount Engineering",
				DefaultValue: decimal.NewFromInt(10),
				PeriodValues: map[types.Period]decimal.Decimal{
					"2026-03": decimal.NewFromInt(30),
				},
			},
			{
				ID:           "b2",
				Name:         "Headcount Sales",
				DefaultValue: decimal.NewFromInt(20),
			},
			{
				ID:           "b3",
				Name:         "Square meters",
				DefaultValue: decimal.NewFromInt(70),
			},
		},
		TargetAccounts: []engine.TargetAccount{
			{ID: "t1", Number: "6000", Name: "Facilities"},
			{ID: "t2", Number: "6100", Name: "IT"},
			{ID: "t3", Number: "6200", Name: "Marketing"},
		},
		AvailablePeriods: []types.Period{"2026-02", "2026-03"},
	})

	var preset engine.Preset
	s, preset = s.CreatePreset("Headcount split", []engine.PresetRow{
		{BasisAccountID: "b1", TargetAccountID: "t1"},
		{BasisAccountID: "b2", TargetAccountID: "t2"},
	}, "")

	return s, preset
}
