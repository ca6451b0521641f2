// Package v1 implements the v1 API of the allocation backend.
package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/ratioflow/backend/internal/engine"
	"github.com/ratioflow/backend/internal/models"
)

// Controller binds the HTTP surface to the engine store it operates on.
type Controller struct {
	store *engine.Store
}

// NewController returns a controller operating on the store.
func NewController(store *engine.Store) *Controller {
	return &Controller{store: store}
}

// RegisterRoutes registers all v1 routes with the RouterGroup that is passed.
func (co *Controller) RegisterRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsRoot)
		r.GET("", co.GetRoot)
	}

	co.registerAccountRoutes(r)
	co.registerPresetRoutes(r.Group("/presets"))
	co.registerAllocationRoutes(r.Group("/allocations"))
	co.registerPeriodRoutes(r.Group("/periods"))
	co.registerCalculationRoutes(r)
	co.registerAuditRoutes(r.Group("/audit"))
}

// Rehydrate loads the provider dataset and replaces the engine snapshot with
// it. It is called at startup and after every mutation of provider-owned
// data, so the engine always works on fully synchronized datapoints.
func (co *Controller) Rehydrate() error {
	in, err := models.Load()
	if err != nil {
		return err
	}

	co.store.Update(func(s engine.State) engine.State {
		return s.Hydrate(in)
	})

	return nil
}

type URIID struct {
	ID string `uri:"id" binding:"required" format:"UUID"` // ID of the resource
}
