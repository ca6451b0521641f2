package v1_test

import (
	"net/http"

	v1 "github.com/ratioflow/backend/internal/controllers/v1"
	"github.com/ratioflow/backend/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestGetRoot() {
	r := test.Request(suite.controller, suite.T(), http.MethodGet, "/v1", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.RootResponse
	suite.decodeResponse(&r, &response)
	assert.Equal(suite.T(), "/v1/source-accounts", response.Links.SourceAccounts)
	assert.Equal(suite.T(), "/v1/audit", response.Links.Audit)
}

func (suite *TestSuiteStandard) TestOptionsRoot() {
	r := test.Request(suite.controller, suite.T(), http.MethodOptions, "/v1", "")
	assert.Equal(suite.T(), http.StatusNoContent, r.Code)
	assert.Equal(suite.T(), "OPTIONS, GET", r.Header().Get("allow"))
}
