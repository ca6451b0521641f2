package v1

import (
	"time"

	"github.com/ratioflow/backend/internal/engine"
)

// AllocationCreateRequest references the source account an allocation is
// requested for. Each source account has at most one allocation, so the
// request returns the existing one when it is repeated.
type AllocationCreateRequest struct {
	SourceAccountID string `json:"sourceAccountId" example:"17fe2d23-fbf9-4fc9-a4a1-cd71f31fb713" binding:"required"` // The account whose balance gets distributed
}

// AllocationUpdateRequest contains the fields of an allocation that can be
// patched. Fields that are not set stay untouched.
type AllocationUpdateRequest struct {
	Name          *string                  `json:"name" example:"Allocation 4010"`          // Name of the allocation
	Status        *engine.AllocationStatus `json:"status" example:"inactive"`               // Lifecycle status
	EffectiveDate *time.Time               `json:"effectiveDate" example:"2026-03-01T00:00:00Z"` // Date the allocation takes effect
}

// PresetTargetsRequest references the preset whose derived datapoints are
// toggled on the allocation.
type PresetTargetsRequest struct {
	PresetID string `json:"presetId" example:"22a2dd2b-1a97-4f1f-bf3e-d09514f2b93c" binding:"required"`
}

// ExclusionRequest addresses one target datapoint of an allocation. The
// preset id disambiguates derived datapoints that share a target account with
// a raw one.
type ExclusionRequest struct {
	DatapointID string `json:"datapointId" example:"f81566d9-af4d-4f13-9830-c62c4b5e4c7e" binding:"required"` // The target account of the datapoint
	PresetID    string `json:"presetId" example:"22a2dd2b-1a97-4f1f-bf3e-d09514f2b93c"`                       // Empty addresses the raw datapoint
}
