package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ratioflow/backend/internal/engine"
	"github.com/ratioflow/backend/internal/httputil"
	"github.com/ratioflow/backend/internal/models"
)

func (co *Controller) registerPresetRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsPresetList)
	r.GET("", co.GetPresets)
	r.POST("", co.CreatePreset)

	r.OPTIONS("/:id", OptionsPresetDetail)
	r.GET("/:id", co.GetPreset)
	r.PATCH("/:id", co.UpdatePreset)
	r.DELETE("/:id", co.DeletePreset)

	r.POST("/:id/rows", co.AddPresetRow)
	r.PATCH("/:id/rows/:index", co.UpdatePresetRow)
	r.DELETE("/:id/rows/:index", co.RemovePresetRow)

	r.GET("/:id/available-basis-accounts", co.GetAvailableBasisAccounts)
	r.GET("/:id/available-target-accounts", co.GetAvailableTargetAccounts)
}

// persistStructures writes the presets and allocations of the snapshot back
// to the database. Allocations are included because preset changes propagate
// into their derived datapoints.
func persistStructures(state engine.State) error {
	if err := models.ReplacePresets(state.Presets); err != nil {
		return err
	}

	return models.ReplaceAllocations(state.Allocations)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Presets
// @Success		204
// @Router			/v1/presets [options]
func OptionsPresetList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Presets
// @Success		204
// @Param			id	path	string	true	"ID of the preset"
// @Router			/v1/presets/{id} [options]
func OptionsPresetDetail(c *gin.Context) {
	httputil.OptionsGetPatchDelete(c)
}

// @Summary		List presets
// @Tags			Presets
// @Produce		json
// @Success		200	{object}	map[string][]engine.Preset
// @Router			/v1/presets [get]
func (co *Controller) GetPresets(c *gin.Context) {
	state := co.store.View()
	c.JSON(http.StatusOK, gin.H{"data": state.Presets})
}

// @Summary		Get preset
// @Tags			Presets
// @Produce		json
// @Success		200	{object}	map[string]engine.Preset
// @Failure		404	{object}	httputil.HTTPError
// @Param			id	path		string	true	"ID of the preset"
// @Router			/v1/presets/{id} [get]
func (co *Controller) GetPreset(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		httputil.NewError(c, http.StatusBadRequest, err)
		return
	}

	state := co.store.View()
	for _, preset := range state.Presets {
		if preset.ID == uri.ID {
			c.JSON(http.StatusOK, gin.H{"data": preset})
			return
		}
	}

	httputil.NewError(c, http.StatusNotFound, engine.ErrPresetNotFound)
}

// @Summary		Create preset
// @Description	Creates a preset. Rows missing an account or reusing one are dropped.
// @Tags			Presets
// @Accept			json
// @Produce		json
// @Success		201		{object}	map[string]engine.Preset
// @Failure		400		{object}	httputil.HTTPError
// @Failure		500		{object}	httputil.HTTPError
// @Param			preset	body		PresetEditable	true	"The preset"
// @Router			/v1/presets [post]
func (co *Controller) CreatePreset(c *gin.Context) {
	var editable PresetEditable
	if err := httputil.BindData(c, &editable); err != nil {
		return
	}

	var created engine.Preset
	state := co.store.Update(func(s engine.State) engine.State {
		next, preset := s.CreatePreset(editable.Name, editable.rows(), editable.Notes)
		created = preset
		return next
	})

	if err := persistStructures(state); err != nil {
		httputil.ErrorHandler(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": created})
}

// @Summary		Update preset
// @Tags			Presets
// @Accept			json
// @Produce		json
// @Success		200		{object}	map[string]engine.Preset
// @Failure		400		{object}	httputil.HTTPError
// @Failure		404		{object}	httputil.HTTPError
// @Param			id		path		string				true	"ID of the preset"
// @Param			preset	body		PresetUpdateRequest	true	"The fields to update"
// @Router			/v1/presets/{id} [patch]
func (co *Controller) UpdatePreset(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		httputil.NewError(c, http.StatusBadRequest, err)
		return
	}

	var update PresetUpdateRequest
	if err := httputil.BindData(c, &update); err != nil {
		return
	}

	state, err := co.store.UpdateErr(func(s engine.State) (engine.State, error) {
		return s.UpdatePreset(uri.ID, engine.PresetUpdate{Name: update.Name, Notes: update.Notes})
	})
	if err != nil {
		httputil.NewError(c, status(err), err)
		return
	}

	if err := persistStructures(state); err != nil {
		httputil.ErrorHandler(c, err)
		return
	}

	co.respondWithPreset(c, state, uri.ID)
}

// @Summary		Delete preset
// @Description	Deletes the preset and removes its derived datapoints from all allocations
// @Tags			Presets
// @Success		204
// @Failure		404	{object}	httputil.HTTPError
// @Param			id	path		string	true	"ID of the preset"
// @Router			/v1/presets/{id} [delete]
func (co *Controller) DeletePreset(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		httputil.NewError(c, http.StatusBadRequest, err)
		return
	}

	state, err := co.store.UpdateErr(func(s engine.State) (engine.State, error) {
		return s.DeletePreset(uri.ID)
	})
	if err != nil {
		httputil.NewError(c, status(err), err)
		return
	}

	if err := persistStructures(state); err != nil {
		httputil.ErrorHandler(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary		Add preset row
// @Tags			Presets
// @Accept			json
// @Produce		json
// @Success		201		{object}	map[string]engine.Preset
// @Failure		400		{object}	httputil.HTTPError
// @Failure		404		{object}	httputil.HTTPError
// @Param			id		path		string				true	"ID of the preset"
// @Param			index	query		int					false	"Position the row is inserted at, appends if unset"
// @Param			row		body		PresetRowEditable	true	"The row"
// @Router			/v1/presets/{id}/rows [post]
func (co *Controller) AddPresetRow(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		httputil.NewError(c, http.StatusBadRequest, err)
		return
	}

	var query PresetRowQuery
	_ = c.ShouldBindQuery(&query)

	var editable PresetRowEditable
	if err := httputil.BindData(c, &editable); err != nil {
		return
	}

	state, err := co.store.UpdateErr(func(s engine.State) (engine.State, error) {
		return s.AddPresetRow(uri.ID, editable.row(), query.Index)
	})
	if err != nil {
		httputil.NewError(c, status(err), err)
		return
	}

	if err := persistStructures(state); err != nil {
		httputil.ErrorHandler(c, err)
		return
	}

	co.respondWithPreset(c, state, uri.ID)
}

// @Summary		Update preset row
// @Tags			Presets
// @Accept			json
// @Produce		json
// @Success		200		{object}	map[string]engine.Preset
// @Failure		400		{object}	httputil.HTTPError
// @Failure		404		{object}	httputil.HTTPError
// @Param			id		path		string				true	"ID of the preset"
// @Param			index	path		int					true	"Index of the row"
// @Param			row		body		PresetRowEditable	true	"The row"
// @Router			/v1/presets/{id}/rows/{index} [patch]
func (co *Controller) UpdatePresetRow(c *gin.Context) {
	var uri URIRowIndex
	if err := c.ShouldBindUri(&uri); err != nil {
		httputil.NewError(c, http.StatusBadRequest, err)
		return
	}

	var editable PresetRowEditable
	if err := httputil.BindData(c, &editable); err != nil {
		return
	}

	state, err := co.store.UpdateErr(func(s engine.State) (engine.State, error) {
		return s.UpdatePresetRow(uri.ID, uri.Index, editable.row())
	})
	if err != nil {
		httputil.NewError(c, status(err), err)
		return
	}

	if err := persistStructures(state); err != nil {
		httputil.ErrorHandler(c, err)
		return
	}

	co.respondWithPreset(c, state, uri.ID)
}

// @Summary		Remove preset row
// @Tags			Presets
// @Produce		json
// @Success		200		{object}	map[string]engine.Preset
// @Failure		400		{object}	httputil.HTTPError
// @Failure		404		{object}	httputil.HTTPError
// @Param			id		path		string	true	"ID of the preset"
// @Param			index	path		int		true	"Index of the row"
// @Router			/v1/presets/{id}/rows/{index} [delete]
func (co *Controller) RemovePresetRow(c *gin.Context) {
	var uri URIRowIndex
	if err := c.ShouldBindUri(&uri); err != nil {
		httputil.NewError(c, http.StatusBadRequest, err)
		return
	}

	state, err := co.store.UpdateErr(func(s engine.State) (engine.State, error) {
		return s.RemovePresetRow(uri.ID, uri.Index)
	})
	if err != nil {
		httputil.NewError(c, status(err), err)
		return
	}

	if err := persistStructures(state); err != nil {
		httputil.ErrorHandler(c, err)
		return
	}

	co.respondWithPreset(c, state, uri.ID)
}

// @Summary		List available basis accounts
// @Description	Returns the basis accounts not yet used by another row of the preset
// @Tags			Presets
// @Produce		json
// @Success		200			{object}	map[string][]engine.BasisAccount
// @Failure		404			{object}	httputil.HTTPError
// @Param			id			path		string	true	"ID of the preset"
// @Param			excludeRow	query		int		false	"Row index whose accounts stay selectable"
// @Router			/v1/presets/{id}/available-basis-accounts [get]
func (co *Controller) GetAvailableBasisAccounts(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		httputil.NewError(c, http.StatusBadRequest, err)
		return
	}

	var query AvailableAccountsQuery
	_ = c.Bind(&query)

	accounts, err := co.store.View().AvailableBasisAccounts(uri.ID, query.ExcludeRow)
	if err != nil {
		httputil.NewError(c, status(err), err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": accounts})
}

// @Summary		List available target accounts
// @Description	Returns the target accounts not yet used by another row of the preset
// @Tags			Presets
// @Produce		json
// @Success		200			{object}	map[string][]engine.TargetAccount
// @Failure		404			{object}	httputil.HTTPError
// @Param			id			path		string	true	"ID of the preset"
// @Param			excludeRow	query		int		false	"Row index whose accounts stay selectable"
// @Router			/v1/presets/{id}/available-target-accounts [get]
func (co *Controller) GetAvailableTargetAccounts(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		httputil.NewError(c, http.StatusBadRequest, err)
		return
	}

	var query AvailableAccountsQuery
	_ = c.Bind(&query)

	accounts, err := co.store.View().AvailableTargetAccounts(uri.ID, query.ExcludeRow)
	if err != nil {
		httputil.NewError(c, status(err), err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": accounts})
}

func (co *Controller) respondWithPreset(c *gin.Context, state engine.State, id string) {
	for _, preset := range state.Presets {
		if preset.ID == id {
			c.JSON(http.StatusOK, gin.H{"data": preset})
			return
		}
	}

	httputil.NewError(c, http.StatusNotFound, engine.ErrPresetNotFound)
}
