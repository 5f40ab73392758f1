package http

import (
	"errors"
	"net/http"

	"ecoavobot/internal/intent"
	"ecoavobot/internal/intent/repository"
	pkgErrors "ecoavobot/pkg/errors"
)

// mapError translates use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, intent.ErrComputationFailed):
		return pkgErrors.NewHTTPError(http.StatusInternalServerError, h.messages.InternalError)
	case errors.Is(err, intent.ErrInvalidCatalog),
		errors.Is(err, repository.ErrCatalogMalformed),
		errors.Is(err, repository.ErrUnsupportedFormat):
		return pkgErrors.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, repository.ErrCatalogMissing):
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
