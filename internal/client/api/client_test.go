package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/auth/register", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var in map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		assert.Equal(t, "a@b.c", in["email"])

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]any{"id": 1, "email": in["email"]})
	}))
	defer srv.Close()

	c := New(srv.URL)
	u, err := c.Register(context.Background(), "a@b.c", "pw")

	require.NoError(t, err)
	assert.Equal(t, int64(1), u.ID)
	assert.Equal(t, "a@b.c", u.Email)
	assert.False(t, c.LoggedIn())
}

func TestLogin_StoresTokenAndSendsBearer(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/login":
			json.NewEncoder(w).Encode(map[string]any{
				"access_token": "tok123",
				"user":         map[string]any{"id": 5, "email": "a@b.c"},
			})
		case "/diaries":
			gotAuth = r.Header.Get("Authorization")
			json.NewEncoder(w).Encode(map[string]any{"data": []any{}, "total": 0})
		default:
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
	}))
	defer srv.Close()

	c := New(srv.URL)
	ctx := context.Background()

	u, err := c.Login(ctx, "a@b.c", "pw")
	require.NoError(t, err)
	assert.Equal(t, int64(5), u.ID)
	assert.True(t, c.LoggedIn())

	_, err = c.ListDiaries(ctx, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok123", gotAuth)

	c.Logout()
	assert.False(t, c.LoggedIn())
}

func TestListDiaries_PagingQuery(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		assert.Equal(t, "5", r.URL.Query().Get("limit"))
		json.NewEncoder(w).Encode(map[string]any{
			"data": []any{map[string]any{"id": 7, "title": "T"}}, "total": 6,
		})
	}))
	defer srv.Close()

	c := New(srv.URL)
	page, err := c.ListDiaries(context.Background(), 2, 5)

	require.NoError(t, err)
	require.Len(t, page.Data, 1)
	assert.Equal(t, int64(7), page.Data[0].ID)
	assert.Equal(t, int64(6), page.Total)
}

func TestSearchDiaries_KeywordQuery(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/diaries/search", r.URL.Path)
		assert.Equal(t, "rain", r.URL.Query().Get("keyword"))
		json.NewEncoder(w).Encode(map[string]any{"data": []any{}, "total": 0})
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.SearchDiaries(context.Background(), "rain", 1, 10)

	require.NoError(t, err)
}

func TestGetDiary(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/diaries/12", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]any{"id": 12, "title": "T", "content": "C"})
	}))
	defer srv.Close()

	c := New(srv.URL)
	d, err := c.GetDiary(context.Background(), 12)

	require.NoError(t, err)
	assert.Equal(t, "T", d.Title)
}

func TestDeleteDiary(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/diaries/12", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := New(srv.URL)
	require.NoError(t, c.DeleteDiary(context.Background(), 12))
}

func TestServerErrorMessageSurfaced(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"error": "invalid email or password"})
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.Login(context.Background(), "a@b.c", "wrong")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid email or password")
	assert.False(t, c.LoggedIn())
}

func TestServerErrorWithoutBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.GetDiary(context.Background(), 1)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}
