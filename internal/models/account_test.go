package models_test

import (
	"github.com/google/uuid"
	"github.com/ratioflow/backend/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestConnectMigrates() {
	for _, table := range []string{
		"source_accounts", "source_account_values",
		"basis_accounts", "basis_account_values",
		"target_accounts", "presets", "preset_rows",
		"ratio_allocations", "target_datapoints",
		"audit_records", "audit_targets", "reporting_periods",
	} {
		assert.True(suite.T(), models.DB.Migrator().HasTable(table), "table %s is missing", table)
	}
}

func (suite *TestSuiteStandard) TestAccountIDGenerated() {
	account := models.SourceAccount{Number: "4010"}
	require.Nil(suite.T(), models.DB.Create(&account).Error)
	assert.NotEqual(suite.T(), uuid.Nil, account.ID)

	// An ID the caller brings is kept
	id := uuid.New()
	other := models.SourceAccount{DefaultModel: models.DefaultModel{ID: id}, Number: "4020"}
	require.Nil(suite.T(), models.DB.Create(&other).Error)
	assert.Equal(suite.T(), id, other.ID)
}

func (suite *TestSuiteStandard) TestAccountTrimsWhitespace() {
	account := models.SourceAccount{Number: " 4010 ", Description: " Payroll expense "}
	require.Nil(suite.T(), models.DB.Create(&account).Error)

	assert.Equal(suite.T(), "4010", account.Number)
	assert.Equal(suite.T(), "Payroll expense", account.Description)
}

func (suite *TestSuiteStandard) TestSourceAccountNumberUnique() {
	require.Nil(suite.T(), models.DB.Create(&models.SourceAccount{Number: "4010"}).Error)

	err := models.DB.Create(&models.SourceAccount{Number: "4010"}).Error
	require.NotNil(suite.T(), err)
	assert.Contains(suite.T(), err.Error(), "UNIQUE constraint failed: source_accounts.number")
}

func (suite *TestSuiteStandard) TestBasisAccountNameUnique() {
	require.Nil(suite.T(), models.DB.Create(&models.BasisAccount{Name: "Headcount"}).Error)

	err := models.DB.Create(&models.BasisAccount{Name: "Headcount"}).Error
	require.NotNil(suite.T(), err)
	assert.Contains(suite.T(), err.Error(), "UNIQUE constraint failed: basis_accounts.name")
}

func (suite *TestSuiteStandard) TestAccountValuesCascade() {
	account := models.SourceAccount{Number: "4010"}
	require.Nil(suite.T(), models.DB.Create(&account).Error)

	value := models.SourceAccountValue{
		SourceAccountID: account.ID,
		Period:          "2026-03",
		Value:           decimal.NewFromInt(1200),
	}
	require.Nil(suite.T(), models.DB.Create(&value).Error)

	require.Nil(suite.T(), models.DB.Delete(&account).Error)

	var count int64
	models.DB.Model(&models.SourceAccountValue{}).Count(&count)
	assert.Equal(suite.T(), int64(0), count)
}

func (suite *TestSuiteStandard) TestSelectPeriod() {
	require.Nil(suite.T(), models.SelectPeriod("2026-02"))
	require.Nil(suite.T(), models.SelectPeriod("2026-03"))

	var periods []models.ReportingPeriod
	require.Nil(suite.T(), models.DB.Order("period ASC").Find(&periods).Error)
	require.Len(suite.T(), periods, 2)

	assert.False(suite.T(), periods[0].Selected)
	assert.True(suite.T(), periods[1].Selected)
}
