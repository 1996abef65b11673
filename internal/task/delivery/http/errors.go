package http

import (
	"errors"
	"net/http"

	"assistente-gestao/internal/task"
	pkgErrors "assistente-gestao/pkg/errors"
)

// mapError translates use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	var rejected *task.RejectedError
	switch {
	case errors.As(err, &rejected):
		return pkgErrors.NewHTTPError(http.StatusUnprocessableEntity, rejected.Error())
	case errors.Is(err, task.ErrTaskNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, task.ErrTaskNotFound.Error())
	case errors.Is(err, task.ErrInvalidPayload), errors.Is(err, task.ErrInvalidExport):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
