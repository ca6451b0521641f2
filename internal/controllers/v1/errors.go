package v1

import (
	"errors"
	"net/http"

	"github.com/ratioflow/backend/internal/engine"
)

// status returns the appropriate HTTP status for an engine error.
func status(err error) int {
	switch {
	case errors.Is(err, engine.ErrPresetNotFound),
		errors.Is(err, engine.ErrPresetRowNotFound),
		errors.Is(err, engine.ErrAllocationNotFound),
		errors.Is(err, engine.ErrSourceAccountNotFound),
		errors.Is(err, engine.ErrDatapointNotFound):
		return http.StatusNotFound

	case errors.Is(err, engine.ErrPresetRowDuplicate),
		errors.Is(err, engine.ErrPresetRowIncomplete):
		return http.StatusBadRequest
	}

	return http.StatusInternalServerError
}
