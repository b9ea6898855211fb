// Package controllers holds the HTTP handlers. Controllers bind and validate
// request bodies, call the service layer, and translate service errors into
// HTTP statuses; nothing in here touches the database directly.
package controllers

import (
	"errors"
	"net/http"

	"github.com/printfarmlabs/stockpile/app/services"
	"github.com/printfarmlabs/stockpile/pkg/logger"
	"github.com/printfarmlabs/stockpile/pkg/response"
)

// writeServiceError maps service sentinels onto HTTP statuses. Anything
// unrecognised is a 500, logged with request context.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		response.NotFound(w, err.Error())
	case errors.Is(err, services.ErrInvalidCategory),
		errors.Is(err, services.ErrInvalidQuantity),
		errors.Is(err, services.ErrUnknownSKU):
		response.Error(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, services.ErrBadCredentials):
		response.Unauthorized(w)
	default:
		logger.WithCtx(r.Context()).Error("request failed", "error", err)
		response.Error(w, http.StatusInternalServerError, "internal server error")
	}
}
