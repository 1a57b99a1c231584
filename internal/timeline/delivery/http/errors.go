package http

import (
	"errors"
	"net/http"

	"wedding-timeline/internal/timeline"
	pkgErrors "wedding-timeline/pkg/errors"
)

var errPhaseIDRequired = pkgErrors.NewHTTPError(http.StatusBadRequest, "phase id is required")

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
// Unknown errors are reported as 500 without leaking their message.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, timeline.ErrInvalidWeddingDate):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, timeline.ErrEmptyTodoText):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, timeline.ErrPhaseNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
