package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ratioflow/backend/internal/engine"
	"github.com/ratioflow/backend/internal/httputil"
	"github.com/ratioflow/backend/internal/models"
)

func (co *Controller) registerAllocationRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsAllocationList)
	r.GET("", co.GetAllocations)
	r.POST("", co.CreateAllocation)

	r.OPTIONS("/:id", OptionsAllocationDetail)
	r.GET("/:id", co.GetAllocation)
	r.PATCH("/:id", co.UpdateAllocation)
	r.DELETE("/:id", co.DeleteAllocation)

	r.POST("/:id/preset-targets", co.TogglePresetTargets)
	r.POST("/:id/exclusions", co.ToggleExclusion)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Allocations
// @Success		204
// @Router			/v1/allocations [options]
func OptionsAllocationList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Allocations
// @Success		204
// @Param			id	path	string	true	"ID of the allocation"
// @Router			/v1/allocations/{id} [options]
func OptionsAllocationDetail(c *gin.Context) {
	httputil.OptionsGetPatchDelete(c)
}

// @Summary		List allocations
// @Tags			Allocations
// @Produce		json
// @Success		200	{object}	map[string][]engine.RatioAllocation
// @Router			/v1/allocations [get]
func (co *Controller) GetAllocations(c *gin.Context) {
	state := co.store.View()
	c.JSON(http.StatusOK, gin.H{"data": state.Allocations})
}

// @Summary		Get allocation
// @Tags			Allocations
// @Produce		json
// @Success		200	{object}	map[string]engine.RatioAllocation
// @Failure		404	{object}	httputil.HTTPError
// @Param			id	path		string	true	"ID of the allocation"
// @Router			/v1/allocations/{id} [get]
func (co *Controller) GetAllocation(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		httputil.NewError(c, http.StatusBadRequest, err)
		return
	}

	state := co.store.View()
	for _, allocation := range state.Allocations {
		if allocation.ID == uri.ID {
			c.JSON(http.StatusOK, gin.H{"data": allocation})
			return
		}
	}

	httputil.NewError(c, http.StatusNotFound, engine.ErrAllocationNotFound)
}

// @Summary		Create allocation
// @Description	Creates the allocation for a source account or returns the existing one
// @Tags			Allocations
// @Accept			json
// @Produce		json
// @Success		201			{object}	map[string]engine.RatioAllocation
// @Failure		400			{object}	httputil.HTTPError
// @Failure		404			{object}	httputil.HTTPError
// @Param			allocation	body		AllocationCreateRequest	true	"The source account reference"
// @Router			/v1/allocations [post]
func (co *Controller) CreateAllocation(c *gin.Context) {
	var request AllocationCreateRequest
	if err := httputil.BindData(c, &request); err != nil {
		return
	}

	var created engine.RatioAllocation
	state, err := co.store.UpdateErr(func(s engine.State) (engine.State, error) {
		next, allocation, err := s.GetOrCreateAllocation(request.SourceAccountID)
		created = allocation
		return next, err
	})
	if err != nil {
		httputil.NewError(c, status(err), err)
		return
	}

	if err := models.ReplaceAllocations(state.Allocations); err != nil {
		httputil.ErrorHandler(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": created})
}

// @Summary		Update allocation
// @Tags			Allocations
// @Accept			json
// @Produce		json
// @Success		200			{object}	map[string]engine.RatioAllocation
// @Failure		400			{object}	httputil.HTTPError
// @Failure		404			{object}	httputil.HTTPError
// @Param			id			path		string					true	"ID of the allocation"
// @Param			allocation	body		AllocationUpdateRequest	true	"The fields to update"
// @Router			/v1/allocations/{id} [patch]
func (co *Controller) UpdateAllocation(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		httputil.NewError(c, http.StatusBadRequest, err)
		return
	}

	var update AllocationUpdateRequest
	if err := httputil.BindData(c, &update); err != nil {
		return
	}

	state, err := co.store.UpdateErr(func(s engine.State) (engine.State, error) {
		return s.UpdateAllocation(uri.ID, engine.AllocationUpdate{
			Name:          update.Name,
			Status:        update.Status,
			EffectiveDate: update.EffectiveDate,
		})
	})
	if err != nil {
		httputil.NewError(c, status(err), err)
		return
	}

	if err := models.ReplaceAllocations(state.Allocations); err != nil {
		httputil.ErrorHandler(c, err)
		return
	}

	co.respondWithAllocation(c, state, uri.ID)
}

// @Summary		Delete allocation
// @Tags			Allocations
// @Success		204
// @Failure		404	{object}	httputil.HTTPError
// @Param			id	path		string	true	"ID of the allocation"
// @Router			/v1/allocations/{id} [delete]
func (co *Controller) DeleteAllocation(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		httputil.NewError(c, http.StatusBadRequest, err)
		return
	}

	state, err := co.store.UpdateErr(func(s engine.State) (engine.State, error) {
		return s.DeleteAllocation(uri.ID)
	})
	if err != nil {
		httputil.NewError(c, status(err), err)
		return
	}

	if err := models.ReplaceAllocations(state.Allocations); err != nil {
		httputil.ErrorHandler(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary		Toggle preset targets
// @Description	Adds the preset's derived datapoints to the allocation, or removes them if any are present
// @Tags			Allocations
// @Accept			json
// @Produce		json
// @Success		200		{object}	map[string]engine.RatioAllocation
// @Failure		400		{object}	httputil.HTTPError
// @Failure		404		{object}	httputil.HTTPError
// @Param			id		path		string					true	"ID of the allocation"
// @Param			preset	body		PresetTargetsRequest	true	"The preset reference"
// @Router			/v1/allocations/{id}/preset-targets [post]
func (co *Controller) TogglePresetTargets(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		httputil.NewError(c, http.StatusBadRequest, err)
		return
	}

	var request PresetTargetsRequest
	if err := httputil.BindData(c, &request); err != nil {
		return
	}

	state, err := co.store.UpdateErr(func(s engine.State) (engine.State, error) {
		return s.ToggleAllocationPresetTargets(uri.ID, request.PresetID)
	})
	if err != nil {
		httputil.NewError(c, status(err), err)
		return
	}

	if err := models.ReplaceAllocations(state.Allocations); err != nil {
		httputil.ErrorHandler(c, err)
		return
	}

	co.respondWithAllocation(c, state, uri.ID)
}

// @Summary		Toggle target exclusion
// @Description	Flips the exclusion flag of one target datapoint
// @Tags			Allocations
// @Accept			json
// @Produce		json
// @Success		200			{object}	map[string]engine.RatioAllocation
// @Failure		400			{object}	httputil.HTTPError
// @Failure		404			{object}	httputil.HTTPError
// @Param			id			path		string				true	"ID of the allocation"
// @Param			datapoint	body		ExclusionRequest	true	"The datapoint reference"
// @Router			/v1/allocations/{id}/exclusions [post]
func (co *Controller) ToggleExclusion(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		httputil.NewError(c, http.StatusBadRequest, err)
		return
	}

	var request ExclusionRequest
	if err := httputil.BindData(c, &request); err != nil {
		return
	}

	state, err := co.store.UpdateErr(func(s engine.State) (engine.State, error) {
		return s.ToggleTargetExclusion(uri.ID, request.DatapointID, request.PresetID)
	})
	if err != nil {
		httputil.NewError(c, status(err), err)
		return
	}

	if err := models.ReplaceAllocations(state.Allocations); err != nil {
		httputil.ErrorHandler(c, err)
		return
	}

	co.respondWithAllocation(c, state, uri.ID)
}

func (co *Controller) respondWithAllocation(c *gin.Context, state engine.State, id string) {
	for _, allocation := range state.Allocations {
		if allocation.ID == id {
			c.JSON(http.StatusOK, gin.H{"data": allocation})
			return
		}
	}

	httputil.NewError(c, http.StatusNotFound, engine.ErrAllocationNotFound)
}
