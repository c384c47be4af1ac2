package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"diary/internal/common"
	"diary/internal/server/models"
)

func TestUserMe_Get(t *testing.T) {
	us := &fakeUsers{
		getFn: func(ctx context.Context, id int64) (*models.User, error) {
			require.Equal(t, int64(9), id)
			return &models.User{ID: id, Email: "a@b.c", PasswordHash: "secret-digest"}, nil
		},
	}
	s := newTestServer(us, &fakeDiaries{})

	token := mintToken(t, 9, time.Hour)
	w := doRequest(t, s, http.MethodGet, "/users/me", "", token)

	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.EqualValues(t, 9, body["id"])
	require.Equal(t, "a@b.c", body["email"])
	require.NotContains(t, w.Body.String(), "secret-digest")
}

func TestUserMe_Update(t *testing.T) {
	us := &fakeUsers{
		updateFn: func(ctx context.Context, id int64, upd *models.UserUpdate) (*models.User, error) {
			require.Equal(t, int64(9), id)
			require.NotNil(t, upd.Email)
			require.Nil(t, upd.Password)
			return &models.User{ID: id, Email: *upd.Email}, nil
		},
	}
	s := newTestServer(us, &fakeDiaries{})

	token := mintToken(t, 9, time.Hour)
	w := doRequest(t, s, http.MethodPut, "/users/me", `{"email":"new@b.c"}`, token)

	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, "new@b.c", body["email"])
}

func TestUserMe_UpdateEmailTaken(t *testing.T) {
	us := &fakeUsers{
		updateFn: func(ctx context.Context, id int64, upd *models.UserUpdate) (*models.User, error) {
			return nil, common.ErrEmailTaken
		},
	}
	s := newTestServer(us, &fakeDiaries{})

	token := mintToken(t, 9, time.Hour)
	w := doRequest(t, s, http.MethodPut, "/users/me", `{"email":"taken@b.c"}`, token)

	require.Equal(t, http.StatusBadRequest, w.Code)
	require.JSONEq(t, `{"error":"email already registered"}`, w.Body.String())
}

func TestUserMe_Delete(t *testing.T) {
	var deletedID int64
	us := &fakeUsers{
		deleteFn: func(ctx context.Context, id int64) error {
			deletedID = id
			return nil
		},
	}
	s := newTestServer(us, &fakeDiaries{})

	token := mintToken(t, 9, time.Hour)
	w := doRequest(t, s, http.MethodDelete, "/users/me", "", token)

	require.Equal(t, http.StatusNoContent, w.Code)
	require.Equal(t, int64(9), deletedID)
}
