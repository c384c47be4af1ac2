package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"diary/internal/common"
	"diary/internal/server/models"
	"diary/internal/server/services"
)

func TestRegister_Created(t *testing.T) {
	var gotEmail, gotPassword string
	us := &fakeUsers{
		registerFn: func(ctx context.Context, email, password string) (*models.User, error) {
			gotEmail, gotPassword = email, password
			return &models.User{ID: 1, Email: email, PasswordHash: "secret-digest"}, nil
		},
	}
	s := newTestServer(us, &fakeDiaries{})

	w := doRequest(t, s, http.MethodPost, "/auth/register",
		`{"email":"a@b.c","password":"pw"}`, "")

	require.Equal(t, http.StatusCreated, w.Code)
	require.Equal(t, "a@b.c", gotEmail)
	require.Equal(t, "pw", gotPassword)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.EqualValues(t, 1, body["id"])
	require.Equal(t, "a@b.c", body["email"])
	require.NotContains(t, w.Body.String(), "secret-digest")
}

func TestRegister_BadInput(t *testing.T) {
	s := newTestServer(&fakeUsers{}, &fakeDiaries{})

	tests := []struct {
		name string
		body string
	}{
		{"invalid json", `{"email":`},
		{"missing email", `{"password":"pw"}`},
		{"missing password", `{"email":"a@b.c"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(t, s, http.MethodPost, "/auth/register", tt.body, "")
			require.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	us := &fakeUsers{
		registerFn: func(ctx context.Context, email, password string) (*models.User, error) {
			return nil, common.ErrEmailTaken
		},
	}
	s := newTestServer(us, &fakeDiaries{})

	w := doRequest(t, s, http.MethodPost, "/auth/register",
		`{"email":"a@b.c","password":"pw"}`, "")

	require.Equal(t, http.StatusBadRequest, w.Code)
	require.JSONEq(t, `{"error":"email already registered"}`, w.Body.String())
}

func TestLogin_OK(t *testing.T) {
	us := &fakeUsers{
		loginFn: func(ctx context.Context, email, password string) (*services.AuthResult, error) {
			return &services.AuthResult{
				AccessToken: "signed.token.value",
				User:        &models.User{ID: 5, Email: email},
			}, nil
		},
	}
	s := newTestServer(us, &fakeDiaries{})

	w := doRequest(t, s, http.MethodPost, "/auth/login",
		`{"email":"a@b.c","password":"pw"}`, "")

	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t,
		`{"access_token":"signed.token.value","user":{"id":5,"email":"a@b.c"}}`,
		w.Body.String())
}

func TestLogin_BadCredentials(t *testing.T) {
	us := &fakeUsers{
		loginFn: func(ctx context.Context, email, password string) (*services.AuthResult, error) {
			return nil, common.ErrUnauthorized
		},
	}
	s := newTestServer(us, &fakeDiaries{})

	w := doRequest(t, s, http.MethodPost, "/auth/login",
		`{"email":"a@b.c","password":"wrong"}`, "")

	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.JSONEq(t, `{"error":"invalid email or password"}`, w.Body.String())
}

func TestLogin_InternalError(t *testing.T) {
	us := &fakeUsers{
		loginFn: func(ctx context.Context, email, password string) (*services.AuthResult, error) {
			return nil, common.ErrInternal
		},
	}
	s := newTestServer(us, &fakeDiaries{})

	w := doRequest(t, s, http.MethodPost, "/auth/login",
		`{"email":"a@b.c","password":"pw"}`, "")

	require.Equal(t, http.StatusInternalServerError, w.Code)
	require.JSONEq(t, `{"error":"internal error"}`, w.Body.String())
}
