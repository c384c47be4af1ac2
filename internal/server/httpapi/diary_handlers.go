package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"diary/internal/server/models"
)

type diaryCreateRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

func (s *Server) handleDiaryCreate(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		errorJSON(w, http.StatusUnauthorized, "unauthenticated")
		return
	}

	var in diaryCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		errorJSON(w, http.StatusBadRequest, "invalid json")
		return
	}
	if in.Title == "" {
		errorJSON(w, http.StatusBadRequest, "title required")
		return
	}

	diary, err := s.diaries.Create(r.Context(), userID, in.Title, in.Content)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, diary)
}

func (s *Server) handleDiaryList(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		errorJSON(w, http.StatusUnauthorized, "unauthenticated")
		return
	}

	page, limit := pagingParams(r)
	result, err := s.diaries.List(r.Context(), userID, page, limit)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleDiarySearch(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		errorJSON(w, http.StatusUnauthorized, "unauthenticated")
		return
	}

	keyword := r.URL.Query().Get("keyword")
	page, limit := pagingParams(r)
	result, err := s.diaries.Search(r.Context(), userID, keyword, page, limit)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleDiaryGet(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		errorJSON(w, http.StatusUnauthorized, "unauthenticated")
		return
	}

	diary, err := s.diaries.Get(r.Context(), pathID(r), userID)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, diary)
}

func (s *Server) handleDiaryUpdate(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		errorJSON(w, http.StatusUnauthorized, "unauthenticated")
		return
	}

	var upd models.DiaryUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		errorJSON(w, http.StatusBadRequest, "invalid json")
		return
	}

	diary, err := s.diaries.Update(r.Context(), pathID(r), userID, &upd)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, diary)
}

func (s *Server) handleDiaryDelete(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		errorJSON(w, http.StatusUnauthorized, "unauthenticated")
		return
	}

	if err := s.diaries.Delete(r.Context(), pathID(r), userID); err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// pathID reads the {id} route variable. The route pattern restricts it to
// digits, so a parse failure cannot happen for matched requests.
func pathID(r *http.Request) int64 {
	id, _ := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	return id
}

func pagingParams(r *http.Request) (page, limit int) {
	q := r.URL.Query()
	page, _ = strconv.Atoi(q.Get("page"))
	limit, _ = strconv.Atoi(q.Get("limit"))
	return page, limit
}
