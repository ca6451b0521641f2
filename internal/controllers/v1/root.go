package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ratioflow/backend/internal/httputil"
)

type RootResponse struct {
	Links RootLinks `json:"links"`
}

type RootLinks struct {
	SourceAccounts string `json:"sourceAccounts" example:"https://example.com/api/v1/source-accounts"`
	BasisAccounts  string `json:"basisAccounts" example:"https://example.com/api/v1/basis-accounts"`
	TargetAccounts string `json:"targetAccounts" example:"https://example.com/api/v1/target-accounts"`
	Presets        string `json:"presets" example:"https://example.com/api/v1/presets"`
	Allocations    string `json:"allocations" example:"https://example.com/api/v1/allocations"`
	Periods        string `json:"periods" example:"https://example.com/api/v1/periods"`
	Calculations   string `json:"calculations" example:"https://example.com/api/v1/calculations"`
	Results        string `json:"results" example:"https://example.com/api/v1/results"`
	Issues         string `json:"issues" example:"https://example.com/api/v1/issues"`
	Audit          string `json:"audit" example:"https://example.com/api/v1/audit"`
}

// @Summary		v1 API
// @Description	Returns general information about the v1 API
// @Tags			v1
// @Success		200	{object}	RootResponse
// @Router			/v1 [get]
func (co *Controller) GetRoot(c *gin.Context) {
	c.JSON(http.StatusOK, RootResponse{
		Links: RootLinks{
			SourceAccounts: "/v1/source-accounts",
			BasisAccounts:  "/v1/basis-accounts",
			TargetAccounts: "/v1/target-accounts",
			Presets:        "/v1/presets",
			Allocations:    "/v1/allocations",
			Periods:        "/v1/periods",
			Calculations:   "/v1/calculations",
			Results:        "/v1/results",
			Issues:         "/v1/issues",
			Audit:          "/v1/audit",
		},
	})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			v1
// @Success		204
// @Router			/v1 [options]
func OptionsRoot(c *gin.Context) {
	httputil.OptionsGet(c)
}
