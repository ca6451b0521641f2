package v1_test

import (
	"fmt"
	"net/http"

	v1 "github.com/ratioflow/backend/internal/controllers/v1"
	"github.com/ratioflow/backend/internal/engine"
	"github.com/ratioflow/backend/internal/models"
	"github.com/ratioflow/backend/internal/types"
	"github.com/ratioflow/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// calculationFixture builds a complete scenario: a source account with a
// period value, a preset weighting two basis accounts 30:20 and an allocation
// using the preset's targets.
func (suite *TestSuiteStandard) calculationFixture() (engine.RatioAllocation, []models.TargetAccount) {
	source := suite.createSourceAccount(v1.SourceAccountEditable{Number: "4010", Description: "Payroll expense", DefaultValue: decimal.NewFromInt(1000)})
	suite.setAccountValues(fmt.Sprintf("/v1/source-accounts/%s/values", source.ID), []v1.AccountValueEditable{
		{Period: types.Period("2026-03"), Value: decimal.NewFromInt(1200)},
	})

	basis := []models.BasisAccount{
		suite.createBasisAccount(v1.BasisAccountEditable{Name: "Headcount Engineering", DefaultValue: decimal.NewFromInt(10)}),
		suite.createBasisAccount(v1.BasisAccountEditable{Name: "Headcount Sales", DefaultValue: decimal.NewFromInt(20)}),
	}
	suite.setAccountValues(fmt.Sprintf("/v1/basis-accounts/%s/values", basis[0].ID), []v1.AccountValueEditable{
		{Period: types.Period("2026-03"), Value: decimal.NewFromInt(30)},
	})

	targets := []models.TargetAccount{
		suite.createTargetAccount(v1.TargetAccountEditable{Number: "6000", Name: "Facilities"}),
		suite.createTargetAccount(v1.TargetAccountEditable{Number: "6100", Name: "IT"}),
	}

	preset := suite.createPreset(v1.PresetEditable{
		Name: "Headcount split",
		Rows: []v1.PresetRowEditable{
			{BasisAccountID: basis[0].ID.String(), TargetAccountID: targets[0].ID.String()},
			{BasisAccountID: basis[1].ID.String(), TargetAccountID: targets[1].ID.String()},
		},
	})

	allocation := suite.createAllocation(source.ID.String())
	r := test.Request(suite.controller, suite.T(), http.MethodPost, fmt.Sprintf("/v1/allocations/%s/preset-targets", allocation.ID), v1.PresetTargetsRequest{PresetID: preset.ID})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	return allocation, targets
}

func (suite *TestSuiteStandard) TestGetPeriodsEmpty() {
	var response struct {
		Data v1.PeriodsResponse `json:"data"`
	}
	r := test.Request(suite.controller, suite.T(), http.MethodGet, "/v1/periods", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	suite.decodeResponse(&r, &response)

	assert.Empty(suite.T(), response.Data.Periods)
	assert.True(suite.T(), response.Data.SelectedPeriod.IsZero())
	assert.False(suite.T(), response.Data.Calculating)
}

func (suite *TestSuiteStandard) TestSelectPeriodCalculates() {
	allocation, targets := suite.calculationFixture()

	r := test.Request(suite.controller, suite.T(), http.MethodPut, "/v1/periods/selected", v1.PeriodSelectRequest{Period: types.Period("2026-03")})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response struct {
		Data v1.CalculationResponse `json:"data"`
	}
	suite.decodeResponse(&r, &response)
	suite.requireNoIssues(response.Data)
	require.Len(suite.T(), response.Data.Results, 1)

	// 1200 split 30:20 between Facilities and IT
	result := response.Data.Results[0]
	assert.Equal(suite.T(), allocation.ID, result.AllocationID)
	assert.True(suite.T(), result.SourceValue.Equal(decimal.NewFromInt(1200)), result.SourceValue.String())
	assert.True(suite.T(), result.BasisTotal.Equal(decimal.NewFromInt(50)), result.BasisTotal.String())

	require.Len(suite.T(), result.Targets, 2)
	assert.Equal(suite.T(), targets[0].ID.String(), result.Targets[0].TargetID)
	assert.True(suite.T(), result.Targets[0].Value.Equal(decimal.NewFromInt(720)), result.Targets[0].Value.String())
	assert.True(suite.T(), result.Targets[1].Value.Equal(decimal.NewFromInt(480)), result.Targets[1].Value.String())
	assert.True(suite.T(), result.Targets[0].Percentage.Equal(decimal.NewFromInt(60)), result.Targets[0].Percentage.String())
	assert.True(suite.T(), result.Targets[1].Percentage.Equal(decimal.NewFromInt(40)), result.Targets[1].Percentage.String())
	assert.Nil(suite.T(), result.Adjustment)

	// The selection is visible on the period list
	var periods struct {
		Data v1.PeriodsResponse `json:"data"`
	}
	r = test.Request(suite.controller, suite.T(), http.MethodGet, "/v1/periods", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	suite.decodeResponse(&r, &periods)
	assert.Equal(suite.T(), types.Period("2026-03"), periods.Data.SelectedPeriod)
	assert.Contains(suite.T(), periods.Data.Periods, types.Period("2026-03"))
}

func (suite *TestSuiteStandard) TestGetSelectedPeriod() {
	var response struct {
		Data v1.PeriodSelectRequest `json:"data"`
	}
	r := test.Request(suite.controller, suite.T(), http.MethodGet, "/v1/periods/selected", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	suite.decodeResponse(&r, &response)
	assert.True(suite.T(), response.Data.Period.IsZero())

	suite.calculationFixture()
	r = test.Request(suite.controller, suite.T(), http.MethodPut, "/v1/periods/selected", v1.PeriodSelectRequest{Period: types.Period("2026-03")})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	r = test.Request(suite.controller, suite.T(), http.MethodGet, "/v1/periods/selected", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	suite.decodeResponse(&r, &response)
	assert.Equal(suite.T(), types.Period("2026-03"), response.Data.Period)
}

func (suite *TestSuiteStandard) TestSelectPeriodFails() {
	r := test.Request(suite.controller, suite.T(), http.MethodPut, "/v1/periods/selected", `{ "broken`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	// Period identifiers are opaque, but not blank
	r = test.Request(suite.controller, suite.T(), http.MethodPut, "/v1/periods/selected", `{"period": "  "}`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestCalculateForExplicitPeriod() {
	suite.calculationFixture()

	// 2026-04 has no delivered values, the defaults 1000 and 10:20 apply
	r := test.Request(suite.controller, suite.T(), http.MethodPost, "/v1/calculations?period=2026-04", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response struct {
		Data v1.CalculationResponse `json:"data"`
	}
	suite.decodeResponse(&r, &response)
	suite.requireNoIssues(response.Data)
	require.Len(suite.T(), response.Data.Results, 1)

	result := response.Data.Results[0]
	assert.True(suite.T(), result.SourceValue.Equal(decimal.NewFromInt(1000)), result.SourceValue.String())
	assert.True(suite.T(), result.Targets[0].Value.Equal(decimal.RequireFromString("333.33")), result.Targets[0].Value.String())
	assert.True(suite.T(), result.Targets[1].Value.Equal(decimal.RequireFromString("666.67")), result.Targets[1].Value.String())
	assert.Nil(suite.T(), result.Adjustment, "rounding the shares already conserves the source value")
}

func (suite *TestSuiteStandard) TestGetResultsAndIssues() {
	allocation, _ := suite.calculationFixture()

	// Before any run there is nothing to report
	var results struct {
		Data []engine.AllocationResult `json:"data"`
	}
	r := test.Request(suite.controller, suite.T(), http.MethodGet, "/v1/results", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	suite.decodeResponse(&r, &results)
	assert.Empty(suite.T(), results.Data)

	r = test.Request(suite.controller, suite.T(), http.MethodPut, "/v1/periods/selected", v1.PeriodSelectRequest{Period: types.Period("2026-03")})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	r = test.Request(suite.controller, suite.T(), http.MethodGet, "/v1/results", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	suite.decodeResponse(&r, &results)
	require.Len(suite.T(), results.Data, 1)
	assert.Equal(suite.T(), allocation.ID, results.Data[0].AllocationID)

	var issues struct {
		Data []engine.ValidationIssue `json:"data"`
	}
	r = test.Request(suite.controller, suite.T(), http.MethodGet, "/v1/issues", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	suite.decodeResponse(&r, &issues)
	assert.Empty(suite.T(), issues.Data)
}

func (suite *TestSuiteStandard) TestCalculationReportsIssues() {
	// An allocation without target datapoints cannot be calculated
	source := suite.createSourceAccount(v1.SourceAccountEditable{Number: "4020", DefaultValue: decimal.NewFromInt(500)})
	allocation := suite.createAllocation(source.ID.String())

	r := test.Request(suite.controller, suite.T(), http.MethodPut, "/v1/periods/selected", v1.PeriodSelectRequest{Period: types.Period("2026-03")})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response struct {
		Data v1.CalculationResponse `json:"data"`
	}
	suite.decodeResponse(&r, &response)
	assert.Empty(suite.T(), response.Data.Results)
	require.Len(suite.T(), response.Data.Issues, 1)
	assert.Equal(suite.T(), allocation.ID, response.Data.Issues[0].AllocationID)
	assert.Contains(suite.T(), response.Data.Issues[0].Message, "at least two target datapoints")
}

func (suite *TestSuiteStandard) TestAuditRecordsPersisted() {
	allocation, _ := suite.calculationFixture()

	r := test.Request(suite.controller, suite.T(), http.MethodPut, "/v1/periods/selected", v1.PeriodSelectRequest{Period: types.Period("2026-03")})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	// Recalculating appends a second record for the same period
	r = test.Request(suite.controller, suite.T(), http.MethodPost, "/v1/calculations", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var records struct {
		Data []models.AuditRecord `json:"data"`
	}
	r = test.Request(suite.controller, suite.T(), http.MethodGet, "/v1/audit", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	suite.decodeResponse(&r, &records)
	require.Len(suite.T(), records.Data, 2)
	assert.Equal(suite.T(), allocation.ID, records.Data[0].AllocationID.String())
	require.Len(suite.T(), records.Data[0].Targets, 2)
	assert.True(suite.T(), records.Data[0].Targets[0].BasisValue.Equal(decimal.NewFromInt(30)), records.Data[0].Targets[0].BasisValue.String())

	// Filters
	r = test.Request(suite.controller, suite.T(), http.MethodGet, fmt.Sprintf("/v1/audit?allocation=%s&period=2026-03", allocation.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	suite.decodeResponse(&r, &records)
	assert.Len(suite.T(), records.Data, 2)

	r = test.Request(suite.controller, suite.T(), http.MethodGet, "/v1/audit?period=2026-04", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	suite.decodeResponse(&r, &records)
	assert.Empty(suite.T(), records.Data)
}

func (suite *TestSuiteStandard) TestGetAuditRecord() {
	suite.calculationFixture()

	r := test.Request(suite.controller, suite.T(), http.MethodPut, "/v1/periods/selected", v1.PeriodSelectRequest{Period: types.Period("2026-03")})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var records struct {
		Data []models.AuditRecord `json:"data"`
	}
	r = test.Request(suite.controller, suite.T(), http.MethodGet, "/v1/audit", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	suite.decodeResponse(&r, &records)
	require.Len(suite.T(), records.Data, 1)

	var record struct {
		Data models.AuditRecord `json:"data"`
	}
	r = test.Request(suite.controller, suite.T(), http.MethodGet, fmt.Sprintf("/v1/audit/%s", records.Data[0].ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	suite.decodeResponse(&r, &record)
	assert.Equal(suite.T(), records.Data[0].ID, record.Data.ID)
	assert.Len(suite.T(), record.Data.Targets, 2)

	r = test.Request(suite.controller, suite.T(), http.MethodGet, "/v1/audit/not-a-uuid", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	r = test.Request(suite.controller, suite.T(), http.MethodGet, "/v1/audit/5b95e1a9-522d-4a36-9074-32f7c2ff0513", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestAuditSurvivesRestart() {
	suite.calculationFixture()

	r := test.Request(suite.controller, suite.T(), http.MethodPut, "/v1/periods/selected", v1.PeriodSelectRequest{Period: types.Period("2026-03")})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	// A fresh controller on the same database sees the selection and the
	// allocation, results are recalculated on demand rather than stored.
	controller := v1.NewController(engine.NewStore())
	require.NoError(suite.T(), controller.Rehydrate())

	var periods struct {
		Data v1.PeriodsResponse `json:"data"`
	}
	r = test.Request(controller, suite.T(), http.MethodGet, "/v1/periods", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	suite.decodeResponse(&r, &periods)
	assert.Equal(suite.T(), types.Period("2026-03"), periods.Data.SelectedPeriod)

	var records struct {
		Data []models.AuditRecord `json:"data"`
	}
	r = test.Request(controller, suite.T(), http.MethodGet, "/v1/audit", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	suite.decodeResponse(&r, &records)
	assert.Len(suite.T(), records.Data, 1)
}
