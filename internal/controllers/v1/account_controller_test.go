package v1_test

import (
	"fmt"
	"net/http"

	v1 "github.com/ratioflow/backend/internal/controllers/v1"
	"github.com/ratioflow/backend/internal/models"
	"github.com/ratioflow/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestOptionsSourceAccounts() {
	r := test.Request(suite.controller, suite.T(), http.MethodOptions, "/v1/source-accounts", "")
	assert.Equal(suite.T(), http.StatusNoContent, r.Code)
	assert.Equal(suite.T(), "OPTIONS, GET, POST", r.Header().Get("allow"))

	account := suite.createSourceAccount(v1.SourceAccountEditable{Number: "4010"})
	r = test.Request(suite.controller, suite.T(), http.MethodOptions, fmt.Sprintf("/v1/source-accounts/%s", account.ID), "")
	assert.Equal(suite.T(), http.StatusNoContent, r.Code)
	assert.Equal(suite.T(), "OPTIONS, GET, PATCH, DELETE", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestCreateSourceAccount() {
	account := suite.createSourceAccount(v1.SourceAccountEditable{
		Number:       "4010",
		Description:  "Payroll expense",
		DefaultValue: decimal.NewFromInt(1000),
	})

	assert.Equal(suite.T(), "4010", account.Number)
	assert.Equal(suite.T(), "Payroll expense", account.Description)

	// Duplicate numbers are rejected with a helpful message
	r := test.Request(suite.controller, suite.T(), http.MethodPost, "/v1/source-accounts", v1.SourceAccountEditable{Number: "4010"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
	assert.Contains(suite.T(), r.Body.String(), "must be unique")
}

func (suite *TestSuiteStandard) TestGetSourceAccounts() {
	suite.createSourceAccount(v1.SourceAccountEditable{Number: "4020", Description: "Office rent"})
	suite.createSourceAccount(v1.SourceAccountEditable{Number: "4010", Description: "Payroll expense"})
	suite.createSourceAccount(v1.SourceAccountEditable{Number: "9999", Archived: true})

	var response struct {
		Data []models.SourceAccount `json:"data"`
	}

	// Archived accounts are hidden by default and the list is sorted
	r := test.Request(suite.controller, suite.T(), http.MethodGet, "/v1/source-accounts", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	suite.decodeResponse(&r, &response)
	require.Len(suite.T(), response.Data, 2)
	assert.Equal(suite.T(), "4010", response.Data[0].Number)
	assert.Equal(suite.T(), "4020", response.Data[1].Number)

	r = test.Request(suite.controller, suite.T(), http.MethodGet, "/v1/source-accounts?archived=true", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	suite.decodeResponse(&r, &response)
	assert.Len(suite.T(), response.Data, 3)

	// Glob search matches number and description, ignoring case
	r = test.Request(suite.controller, suite.T(), http.MethodGet, "/v1/source-accounts?search=*payroll*", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	suite.decodeResponse(&r, &response)
	require.Len(suite.T(), response.Data, 1)
	assert.Equal(suite.T(), "4010", response.Data[0].Number)
}

func (suite *TestSuiteStandard) TestGetSourceAccountErrors() {
	r := test.Request(suite.controller, suite.T(), http.MethodGet, "/v1/source-accounts/NotParseableAsUUID", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	r = test.Request(suite.controller, suite.T(), http.MethodGet, "/v1/source-accounts/5b95e1a9-522d-4a36-9074-32f7c2ff0513", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestUpdateSourceAccount() {
	account := suite.createSourceAccount(v1.SourceAccountEditable{Number: "4010"})

	r := test.Request(suite.controller, suite.T(), http.MethodPatch, fmt.Sprintf("/v1/source-accounts/%s", account.ID), v1.SourceAccountEditable{
		Number:      "4011",
		Description: "Payroll expense",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var check models.SourceAccount
	require.Nil(suite.T(), models.DB.First(&check, "id = ?", account.ID).Error)
	assert.Equal(suite.T(), "4011", check.Number)
	assert.Equal(suite.T(), "Payroll expense", check.Description)
}

func (suite *TestSuiteStandard) TestDeleteSourceAccount() {
	account := suite.createSourceAccount(v1.SourceAccountEditable{Number: "4010"})

	r := test.Request(suite.controller, suite.T(), http.MethodDelete, fmt.Sprintf("/v1/source-accounts/%s", account.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.controller, suite.T(), http.MethodGet, fmt.Sprintf("/v1/source-accounts/%s", account.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestSetAccountValuesCreatesPeriods() {
	account := suite.createSourceAccount(v1.SourceAccountEditable{Number: "4010", DefaultValue: decimal.NewFromInt(1000)})

	suite.setAccountValues(fmt.Sprintf("/v1/source-accounts/%s/values", account.ID), []v1.AccountValueEditable{
		{Period: "2026-02", Value: decimal.NewFromInt(1100)},
		{Period: "2026-03", Value: decimal.NewFromInt(1200)},
	})

	var response struct {
		Data v1.PeriodsResponse `json:"data"`
	}
	r := test.Request(suite.controller, suite.T(), http.MethodGet, "/v1/periods", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	suite.decodeResponse(&r, &response)

	assert.Len(suite.T(), response.Data.Periods, 2)
	assert.True(suite.T(), response.Data.SelectedPeriod.IsZero())
}

func (suite *TestSuiteStandard) TestBasisAccountCRUD() {
	target := suite.createTargetAccount(v1.TargetAccountEditable{Number: "6000", Name: "Facilities"})

	account := suite.createBasisAccount(v1.BasisAccountEditable{
		Name:         "Headcount Engineering",
		DefaultValue: decimal.NewFromInt(10),
		MappedTarget: target.ID,
	})
	assert.Equal(suite.T(), target.ID, account.MappedTargetID)

	var response struct {
		Data []models.BasisAccount `json:"data"`
	}
	r := test.Request(suite.controller, suite.T(), http.MethodGet, "/v1/basis-accounts", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	suite.decodeResponse(&r, &response)
	require.Len(suite.T(), response.Data, 1)

	r = test.Request(suite.controller, suite.T(), http.MethodDelete, fmt.Sprintf("/v1/basis-accounts/%s", account.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
}

func (suite *TestSuiteStandard) TestTargetAccountCRUD() {
	account := suite.createTargetAccount(v1.TargetAccountEditable{Number: "6000", Name: "Facilities"})

	r := test.Request(suite.controller, suite.T(), http.MethodPatch, fmt.Sprintf("/v1/target-accounts/%s", account.ID), v1.TargetAccountEditable{Number: "6001", Name: "Buildings"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var check models.TargetAccount
	require.Nil(suite.T(), models.DB.First(&check, "id = ?", account.ID).Error)
	assert.Equal(suite.T(), "Buildings", check.Name)

	r = test.Request(suite.controller, suite.T(), http.MethodDelete, fmt.Sprintf("/v1/target-accounts/%s", account.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
}
