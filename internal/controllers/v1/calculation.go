package v1

import (
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/ratioflow/backend/internal/engine"
	"github.com/ratioflow/backend/internal/httputil"
	"github.com/ratioflow/backend/internal/models"
	"github.com/ratioflow/backend/internal/types"
)

var (
	calculationRuns = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ratioflow_calculation_runs_total",
		Help: "The number of calculation runs performed",
	})

	validationIssuesFound = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ratioflow_validation_issues_total",
		Help: "The number of validation issues reported by calculation runs",
	})
)

func (co *Controller) registerPeriodRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsPeriodList)
	r.GET("", co.GetPeriods)
	r.OPTIONS("/selected", OptionsPeriodSelected)
	r.GET("/selected", co.GetSelectedPeriod)
	r.PUT("/selected", co.SelectPeriod)
}

func (co *Controller) registerCalculationRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/calculations", OptionsCalculations)
	r.POST("/calculations", co.Calculate)

	r.OPTIONS("/results", OptionsResults)
	r.GET("/results", co.GetResults)

	r.OPTIONS("/issues", OptionsResults)
	r.GET("/issues", co.GetIssues)
}

// PeriodSelectRequest references the reporting period to make active.
type PeriodSelectRequest struct {
	Period types.Period `json:"period" example:"2026-03" binding:"required"`
}

// PeriodsResponse lists the known reporting periods and which one the engine
// currently works with.
type PeriodsResponse struct {
	Periods        []types.Period `json:"periods"`
	SelectedPeriod types.Period   `json:"selectedPeriod"`
	Calculating    bool           `json:"calculating"`
}

// CalculationQuery optionally addresses a period other than the selected one.
type CalculationQuery struct {
	Period types.Period `form:"period"`
}

// CalculationResponse carries the outcome of one calculation run.
type CalculationResponse struct {
	Results []engine.AllocationResult `json:"results"`
	Issues  []engine.ValidationIssue  `json:"issues"`
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Calculations
// @Success		204
// @Router			/v1/periods [options]
func OptionsPeriodList(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Calculations
// @Success		204
// @Router			/v1/periods/selected [options]
func OptionsPeriodSelected(c *gin.Context) {
	httputil.OptionsGetPut(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Calculations
// @Success		204
// @Router			/v1/calculations [options]
func OptionsCalculations(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Calculations
// @Success		204
// @Router			/v1/results [options]
func OptionsResults(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		List reporting periods
// @Tags			Calculations
// @Produce		json
// @Success		200	{object}	map[string]PeriodsResponse
// @Router			/v1/periods [get]
func (co *Controller) GetPeriods(c *gin.Context) {
	state := co.store.View()

	periods := append([]types.Period(nil), state.AvailablePeriods...)
	sort.Slice(periods, func(i, j int) bool { return periods[i] < periods[j] })

	c.JSON(http.StatusOK, gin.H{"data": PeriodsResponse{
		Periods:        periods,
		SelectedPeriod: state.SelectedPeriod,
		Calculating:    state.Calculating,
	}})
}

// @Summary		Get selected reporting period
// @Tags			Calculations
// @Produce		json
// @Success		200	{object}	map[string]PeriodSelectRequest
// @Router			/v1/periods/selected [get]
func (co *Controller) GetSelectedPeriod(c *gin.Context) {
	state := co.store.View()

	c.JSON(http.StatusOK, gin.H{"data": PeriodSelectRequest{Period: state.SelectedPeriod}})
}

// @Summary		Select reporting period
// @Description	Switches the active period and recalculates every allocation for it
// @Tags			Calculations
// @Accept			json
// @Produce		json
// @Success		200		{object}	map[string]CalculationResponse
// @Failure		400		{object}	httputil.HTTPError
// @Failure		500		{object}	httputil.HTTPError
// @Param			period	body		PeriodSelectRequest	true	"The period"
// @Router			/v1/periods/selected [put]
func (co *Controller) SelectPeriod(c *gin.Context) {
	var request PeriodSelectRequest
	if err := httputil.BindData(c, &request); err != nil {
		return
	}

	period, err := types.ParsePeriod(string(request.Period))
	if err != nil {
		httputil.NewError(c, http.StatusBadRequest, err)
		return
	}

	co.store.BeginCalculation()
	defer co.store.EndCalculation()

	var auditBefore int
	state := co.store.Update(func(s engine.State) engine.State {
		auditBefore = len(s.AuditLog)
		return s.SetSelectedPeriod(period)
	})

	calculationRuns.Inc()
	validationIssuesFound.Add(float64(len(state.IssuesForPeriod(period))))

	if err := models.SelectPeriod(period); err != nil {
		httputil.ErrorHandler(c, err)
		return
	}

	if err := models.ReplaceAllocations(state.Allocations); err != nil {
		httputil.ErrorHandler(c, err)
		return
	}

	if err := models.AppendAuditRecords(state.AuditLog[auditBefore:]); err != nil {
		httputil.ErrorHandler(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": CalculationResponse{
		Results: state.ResultsForPeriod(period),
		Issues:  state.IssuesForPeriod(period),
	}})
}

// @Summary		Run calculation
// @Description	Recalculates every allocation for the period, defaulting to the selected one
// @Tags			Calculations
// @Produce		json
// @Success		200		{object}	map[string]CalculationResponse
// @Failure		500		{object}	httputil.HTTPError
// @Param			period	query		string	false	"Period to calculate, defaults to the selected one"
// @Router			/v1/calculations [post]
func (co *Controller) Calculate(c *gin.Context) {
	var query CalculationQuery
	_ = c.ShouldBindQuery(&query)

	co.store.BeginCalculation()
	defer co.store.EndCalculation()

	period := query.Period
	var auditBefore int
	state := co.store.Update(func(s engine.State) engine.State {
		if period.IsZero() {
			period = s.SelectedPeriod
		}

		auditBefore = len(s.AuditLog)
		return s.CalculateAllocations(period)
	})

	calculationRuns.Inc()
	validationIssuesFound.Add(float64(len(state.IssuesForPeriod(period))))

	if err := models.AppendAuditRecords(state.AuditLog[auditBefore:]); err != nil {
		httputil.ErrorHandler(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": CalculationResponse{
		Results: state.ResultsForPeriod(period),
		Issues:  state.IssuesForPeriod(period),
	}})
}

// @Summary		List calculation results
// @Tags			Calculations
// @Produce		json
// @Success		200		{object}	map[string][]engine.AllocationResult
// @Param			period	query		string	false	"Period to list results for, defaults to the selected one"
// @Router			/v1/results [get]
func (co *Controller) GetResults(c *gin.Context) {
	var query CalculationQuery
	_ = c.Bind(&query)

	state := co.store.View()
	period := query.Period
	if period.IsZero() {
		period = state.SelectedPeriod
	}

	c.JSON(http.StatusOK, gin.H{"data": state.ResultsForPeriod(period)})
}

// @Summary		List validation issues
// @Tags			Calculations
// @Produce		json
// @Success		200		{object}	map[string][]engine.ValidationIssue
// @Param			period	query		string	false	"Period to list issues for, defaults to the selected one"
// @Router			/v1/issues [get]
func (co *Controller) GetIssues(c *gin.Context) {
	var query CalculationQuery
	_ = c.Bind(&query)

	state := co.store.View()
	period := query.Period
	if period.IsZero() {
		period = state.SelectedPeriod
	}

	c.JSON(http.StatusOK, gin.H{"data": state.IssuesForPeriod(period)})
}
