// Package handlers implements the REST endpoint handlers. Each handler
// depends on a small interface satisfied by the corresponding application
// service, so tests can substitute fakes.
package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MauGud/amanda-project/pkg/common"
	apperrors "github.com/MauGud/amanda-project/pkg/errors"
)

// parseID extracts a positive numeric identifier from the route.
func parseID(r *http.Request, param string) (int64, error) {
	raw := chi.URLParam(r, param)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.NewValidationError("invalid identifier")
	}
	return id, nil
}

// respondServiceError writes a failed envelope with the status and message
// carried by the service error.
func respondServiceError(w http.ResponseWriter, err error) {
	common.RespondError(w, apperrors.HTTPStatusOf(err), apperrors.UserMessageOf(err))
}
