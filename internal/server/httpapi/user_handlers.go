package httpapi

import (
	"encoding/json"
	"net/http"

	"diary/internal/server/models"
)

// The /users/me handlers operate strictly on the guard-resolved id, so one
// account can never read or modify another through this surface.

func (s *Server) handleUserGet(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		errorJSON(w, http.StatusUnauthorized, "unauthenticated")
		return
	}

	user, err := s.users.Get(r.Context(), userID)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, user.Public())
}

func (s *Server) handleUserUpdate(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		errorJSON(w, http.StatusUnauthorized, "unauthenticated")
		return
	}

	var upd models.UserUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		errorJSON(w, http.StatusBadRequest, "invalid json")
		return
	}

	user, err := s.users.Update(r.Context(), userID, &upd)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, user.Public())
}

func (s *Server) handleUserDelete(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		errorJSON(w, http.StatusUnauthorized, "unauthenticated")
		return
	}

	if err := s.users.Delete(r.Context(), userID); err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
