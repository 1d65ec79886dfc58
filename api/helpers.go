package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"log/slog"

	"github.com/harborworks/fleetdeck/pkg/models"
	"github.com/harborworks/fleetdeck/pkg/repository"
)

func writeJSON(w http.ResponseWriter, v any, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("encode response", slog.Any("err", err))
	}
}

// respondError maps repository errors onto HTTP statuses: validation failures
// are 400 with the reasons, missing records are 404, anything else is 500.
func respondError(w http.ResponseWriter, err error) {
	var verr *repository.ValidationError
	if errors.As(err, &verr) {
		writeJSON(w, map[string]any{"error": "validation failed", "reasons": verr.Reasons}, http.StatusBadRequest)
		return
	}
	if errors.Is(err, repository.ErrNotFound) {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}

	logger.Error("request failed", slog.Any("err", err))
	http.Error(w, "Internal Server Error", http.StatusInternalServerError)
}

// requireRole gates a mutating endpoint on the current user's role. Writes
// the error response itself and reports whether the request may proceed.
func requireRole(w http.ResponseWriter, r *http.Request, sessions repository.SessionRepo, roles ...models.UserRole) bool {
	ok, err := sessions.HasPermission(r.Context(), roles...)
	if err != nil {
		respondError(w, err)
		return false
	}
	if !ok {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return false
	}
	return true
}
