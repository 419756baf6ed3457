package handlers

import (
	"context"
	"net/http"

	"store-api/internal/logger"
)

// SchemaEnsurer defines the maintenance operation behind the one-time
// index bootstrap endpoint.
type SchemaEnsurer interface {
	EnsureIndexes(ctx context.Context) error
}

// NewAdminInitialHandler returns the passphrase-gated handler that creates
// the tables and unique indexes.
// @Summary Ensure schema
// @Description Creates tables and unique indexes. Requires the administrative setup passphrase as ?pass=.
// @Tags admin
// @Produce json
// @Param pass query string true "Setup passphrase"
// @Success 200 {object} handlers.MessageResponse "Indexes ensured"
// @Failure 400 {object} handlers.UserErrorResponse "Missing or incorrect passphrase"
// @Failure 500 {object} handlers.UserErrorResponse "Internal error"
// @Router /admin/initial [get]
func NewAdminInitialHandler(svc SchemaEnsurer, adminPass string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		challenge := r.URL.Query().Get("pass")
		if challenge == "" {
			userError(w, http.StatusBadRequest, "Invalid usage")
			return
		}
		if challenge != adminPass {
			userError(w, http.StatusBadRequest, "Admin password incorrect")
			return
		}

		if err := svc.EnsureIndexes(r.Context()); err != nil {
			logger.Log.Errorw("failed to ensure indexes", "err", err)
			userError(w, http.StatusInternalServerError, "Failed to ensure indexes")
			return
		}

		writeJSON(w, http.StatusOK, MessageResponse{Message: "Indexes ensured"})
	}
}
