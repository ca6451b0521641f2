package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/ratioflow/backend/internal/httputil"
	"github.com/ratioflow/backend/internal/models"
	"github.com/ratioflow/backend/internal/types"
)

func (co *Controller) registerAuditRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsAuditList)
	r.GET("", co.GetAuditRecords)

	r.OPTIONS("/:id", OptionsAuditDetail)
	r.GET("/:id", co.GetAuditRecord)
}

// AuditQueryFilter narrows the audit trail down to one allocation or period.
type AuditQueryFilter struct {
	AllocationID string       `form:"allocation"` // Only runs of this allocation
	Period       types.Period `form:"period"`     // Only runs for this period
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Audit
// @Success		204
// @Router			/v1/audit [options]
func OptionsAuditList(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Audit
// @Success		204
// @Param			id	path	string	true	"ID of the audit record"
// @Router			/v1/audit/{id} [options]
func OptionsAuditDetail(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		List audit records
// @Description	Returns the persisted calculation runs, newest first
// @Tags			Audit
// @Produce		json
// @Success		200			{object}	map[string][]models.AuditRecord
// @Failure		500			{object}	httputil.HTTPError
// @Param			allocation	query		string	false	"Only runs of this allocation"
// @Param			period		query		string	false	"Only runs for this period"
// @Router			/v1/audit [get]
func (co *Controller) GetAuditRecords(c *gin.Context) {
	var filter AuditQueryFilter
	_ = c.Bind(&filter)

	query := models.DB.Preload("Targets").Order("run_at DESC")
	if filter.AllocationID != "" {
		query = query.Where("allocation_id = ?", filter.AllocationID)
	}

	if !filter.Period.IsZero() {
		query = query.Where("period_id = ?", filter.Period)
	}

	var records []models.AuditRecord
	if err := query.Find(&records).Error; err != nil {
		httputil.ErrorHandler(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": records})
}

// @Summary		Get audit record
// @Tags			Audit
// @Produce		json
// @Success		200	{object}	map[string]models.AuditRecord
// @Failure		400	{object}	httputil.HTTPError
// @Failure		404	{object}	httputil.HTTPError
// @Param			id	path		string	true	"ID of the audit record"
// @Router			/v1/audit/{id} [get]
func (co *Controller) GetAuditRecord(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		httputil.NewError(c, http.StatusBadRequest, errNotAValidUUID)
		return
	}

	id, err := uuid.Parse(uri.ID)
	if err != nil {
		httputil.NewError(c, http.StatusBadRequest, errNotAValidUUID)
		return
	}

	var record models.AuditRecord
	err = models.DB.Preload("Targets").First(&record, "id = ?", id).Error
	if err != nil {
		httputil.ErrorHandler(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": record})
}
