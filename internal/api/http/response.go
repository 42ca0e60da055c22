package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"volunteer-portal-backend/internal/domain"
	"volunteer-portal-backend/internal/logger"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error("Failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// writeServiceError maps service errors onto HTTP statuses.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, domain.ErrInvalidTeamKey):
		writeError(w, http.StatusBadRequest, "invalid team")
	case errors.Is(err, domain.ErrForbidden):
		writeError(w, http.StatusForbidden, "insufficient permissions")
	default:
		logger.ErrorContext(r.Context(), "Request failed",
			"path", r.URL.Path,
			"request_id", RequestIDFromContext(r.Context()),
			"error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}
