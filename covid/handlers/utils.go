package handlers

import (
	"errors"
	"net/http"

	"github.com/covidboard/api/covid/domain"
	"github.com/covidboard/api/framework/web"
)

func translateServiceError(err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidIndicator):
		return web.NewRequestError(err, http.StatusBadRequest)
	case errors.Is(err, domain.ErrDatasetNotLoaded),
		errors.Is(err, domain.ErrDataSourceUnavailable):
		return web.NewRequestError(err, http.StatusServiceUnavailable)
	case errors.Is(err, domain.ErrSchemaMismatch):
		return web.NewRequestError(err, http.StatusBadGateway)
	default:
		// Anything outside the domain taxonomy is unexpected; respond
		// with the sanitized sentinel instead of the raw error.
		return web.TranslateError(web.ErrInternalServerError)
	}
}
