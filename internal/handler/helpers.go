package handler

import (
	"errors"
	"net/http"

	"atrium/internal/domain"
	"atrium/internal/httputil"
)

// handleError converts domain errors to HTTP responses
func handleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		httputil.RespondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrStore):
		// Store failures keep their detail string verbatim for diagnosis.
		httputil.RespondErrorDetails(w, http.StatusInternalServerError, "store operation failed", err.Error())
	default:
		httputil.RespondError(w, http.StatusInternalServerError, "internal server error")
	}
}
