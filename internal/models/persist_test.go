package models_test

import (
	"time"

	"github.com/google/uuid"
	"github.com/ratioflow/backend/internal/engine"
	"github.com/ratioflow/backend/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestReplacePresetsRoundTrip() {
	basisID := uuid.NewString()
	targetID := uuid.NewString()

	preset := engine.Preset{
		ID:    uuid.NewString(),
		Name:  "Headcount split",
		Notes: "Used for overhead",
		Rows: []engine.PresetRow{
			{BasisAccountID: basisID, TargetAccountID: targetID},
		},
	}

	require.Nil(suite.T(), models.ReplacePresets([]engine.Preset{preset}))

	in, err := models.Load()
	require.Nil(suite.T(), err)
	require.Len(suite.T(), in.Presets, 1)
	assert.Equal(suite.T(), preset, in.Presets[0])

	// A second replace swaps the catalog wholesale
	require.Nil(suite.T(), models.ReplacePresets(nil))

	in, err = models.Load()
	require.Nil(suite.T(), err)
	assert.Empty(suite.T(), in.Presets)
}

func (suite *TestSuiteStandard) TestReplaceAllocationsRoundTrip() {
	presetID := uuid.NewString()

	allocation := engine.RatioAllocation{
		ID:                  uuid.NewString(),
		Name:                "Allocation 4010",
		SourceAccountID:     uuid.NewString(),
		SourceAccountNumber: "4010",
		EffectiveDate:       time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		Status:              engine.AllocationActive,
		Targets: []engine.TargetDatapoint{
			{
				DatapointID: uuid.NewString(),
				Name:        "Facilities",
				Kind:        engine.DatapointDerived,
				PresetID:    presetID,
				RatioMetric: engine.RatioMetric{
					ID:    uuid.NewString(),
					Name:  "Headcount Engineering",
					Value: decimal.NewFromInt(30),
				},
				IsExclusion: true,
			},
			{
				DatapointID: uuid.NewString(),
				Name:        "IT",
				Kind:        engine.DatapointRaw,
				RatioMetric: engine.RatioMetric{
					ID:    uuid.NewString(),
					Name:  "Headcount Sales",
					Value: decimal.NewFromInt(20),
				},
			},
		},
	}

	require.Nil(suite.T(), models.ReplaceAllocations([]engine.RatioAllocation{allocation}))

	in, err := models.Load()
	require.Nil(suite.T(), err)
	require.Len(suite.T(), in.Allocations, 1)

	loaded := in.Allocations[0]
	assert.Equal(suite.T(), allocation.ID, loaded.ID)
	assert.Equal(suite.T(), allocation.Name, loaded.Name)
	assert.True(suite.T(), allocation.EffectiveDate.Equal(loaded.EffectiveDate))
	require.Len(suite.T(), loaded.Targets, 2)

	// Raw datapoints come back with an empty preset reference
	assert.Equal(suite.T(), presetID, loaded.Targets[0].PresetID)
	assert.Empty(suite.T(), loaded.Targets[1].PresetID)
	assert.True(suite.T(), loaded.Targets[0].IsExclusion)
	assert.True(suite.T(), loaded.Targets[0].RatioMetric.Value.Equal(decimal.NewFromInt(30)))
}

func (suite *TestSuiteStandard) TestAppendAuditRecords() {
	record := engine.AuditRecord{
		ID:              uuid.NewString(),
		AllocationID:    uuid.NewString(),
		AllocationName:  "Allocation 4010",
		SourceAccountID: uuid.NewString(),
		PeriodID:        "2026-03",
		RunAt:           time.Now().In(time.UTC),
		SourceAmount:    decimal.NewFromInt(1200),
		BasisTotal:      decimal.NewFromInt(50),
		Adjustment: &engine.Adjustment{
			TargetID: uuid.NewString(),
			Amount:   decimal.RequireFromString("0.01"),
		},
		Targets: []engine.AuditTarget{
			{
				TargetID:       uuid.NewString(),
				BasisAccountID: uuid.NewString(),
				BasisValue:     decimal.NewFromInt(30),
				Value:          decimal.NewFromInt(720),
				Percentage:     decimal.NewFromInt(60),
			},
		},
	}

	require.Nil(suite.T(), models.AppendAuditRecords([]engine.AuditRecord{record}))
	require.Nil(suite.T(), models.AppendAuditRecords([]engine.AuditRecord{
		{
			ID:              uuid.NewString(),
			AllocationID:    record.AllocationID,
			AllocationName:  record.AllocationName,
			SourceAccountID: record.SourceAccountID,
			PeriodID:        "2026-04",
			RunAt:           time.Now().In(time.UTC),
			SourceAmount:    decimal.NewFromInt(1000),
			BasisTotal:      decimal.NewFromInt(50),
		},
	}))

	// Appending never touches earlier records
	var records []models.AuditRecord
	require.Nil(suite.T(), models.DB.Preload("Targets").Order("period_id ASC").Find(&records).Error)
	require.Len(suite.T(), records, 2)

	assert.Equal(suite.T(), "Allocation 4010", records[0].AllocationName)
	assert.True(suite.T(), records[0].AdjustmentAmount.Valid)
	assert.True(suite.T(), records[0].AdjustmentAmount.Decimal.Equal(decimal.RequireFromString("0.01")))
	require.Len(suite.T(), records[0].Targets, 1)
	assert.True(suite.T(), records[0].Targets[0].Percentage.Equal(decimal.NewFromInt(60)))

	assert.False(suite.T(), records[1].AdjustmentAmount.Valid)
}

func (suite *TestSuiteStandard) TestLoadBuildsPeriodValues() {
	account := models.SourceAccount{Number: "4010", DefaultValue: decimal.NewFromInt(1000)}
	require.Nil(suite.T(), models.DB.Create(&account).Error)
	require.Nil(suite.T(), models.DB.Create(&models.SourceAccountValue{
		SourceAccountID: account.ID,
		Period:          "2026-03",
		Value:           decimal.NewFromInt(1200),
	}).Error)

	require.Nil(suite.T(), models.SelectPeriod("2026-03"))

	in, err := models.Load()
	require.Nil(suite.T(), err)

	require.Len(suite.T(), in.SourceAccounts, 1)
	assert.True(suite.T(), in.SourceAccounts[0].DefaultValue.Equal(decimal.NewFromInt(1000)))
	assert.True(suite.T(), in.SourceAccounts[0].PeriodValues["2026-03"].Equal(decimal.NewFromInt(1200)))

	require.NotNil(suite.T(), in.SelectedPeriod)
	assert.Equal(suite.T(), "2026-03", in.SelectedPeriod.String())
	assert.Len(suite.T(), in.AvailablePeriods, 1)
}
