package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"diary/internal/common"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func errorJSON(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// writeServiceError maps service sentinels to statuses with generic
// messages. Internal error detail never reaches the response body.
func (s *Server) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, common.ErrEmailTaken):
		errorJSON(w, http.StatusBadRequest, "email already registered")
	case errors.Is(err, common.ErrUnauthorized), errors.Is(err, common.ErrInvalidToken):
		errorJSON(w, http.StatusUnauthorized, "unauthenticated")
	case errors.Is(err, common.ErrNotFound):
		errorJSON(w, http.StatusNotFound, "not found")
	default:
		s.logger.Error(r.Context(), "internal error", "error", err.Error())
		errorJSON(w, http.StatusInternalServerError, "internal error")
	}
}
