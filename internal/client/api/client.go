// Package api is a thin REST client for the diary server, used by the CLI.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// User is the public user projection returned by the server.
type User struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
}

// Diary mirrors the server's diary JSON shape.
type Diary struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DiaryPage is one page of diaries plus the total match count.
type DiaryPage struct {
	Data  []*Diary `json:"data"`
	Total int64    `json:"total"`
}

type loginResponse struct {
	AccessToken string `json:"access_token"`
	User        User   `json:"user"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Client calls the diary REST API. After Login it sends the access token as
// a Bearer header on every request.
type Client struct {
	base  string
	http  *http.Client
	token string
}

func New(base string) *Client {
	return &Client{
		base: base,
		http: &http.Client{Timeout: 10 * time.Second},
	}
}

// LoggedIn reports whether a login token is held.
func (c *Client) LoggedIn() bool { return c.token != "" }

// Logout drops the held token.
func (c *Client) Logout() { c.token = "" }

// Register creates an account on the server.
func (c *Client) Register(ctx context.Context, email, password string) (*User, error) {
	var out User
	err := c.do(ctx, http.MethodPost, "/auth/register", map[string]string{
		"email": email, "password": password,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Login authenticates and stores the returned access token in the client.
func (c *Client) Login(ctx context.Context, email, password string) (*User, error) {
	var out loginResponse
	err := c.do(ctx, http.MethodPost, "/auth/login", map[string]string{
		"email": email, "password": password,
	}, &out)
	if err != nil {
		return nil, err
	}
	c.token = out.AccessToken
	return &out.User, nil
}

// CreateDiary stores a new diary entry.
func (c *Client) CreateDiary(ctx context.Context, title, content string) (*Diary, error) {
	var out Diary
	err := c.do(ctx, http.MethodPost, "/diaries", map[string]string{
		"title": title, "content": content,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// ListDiaries fetches one page of diaries.
func (c *Client) ListDiaries(ctx context.Context, page, limit int) (*DiaryPage, error) {
	var out DiaryPage
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("limit", strconv.Itoa(limit))
	if err := c.do(ctx, http.MethodGet, "/diaries?"+q.Encode(), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SearchDiaries fetches one page of diaries whose content matches keyword.
func (c *Client) SearchDiaries(ctx context.Context, keyword string, page, limit int) (*DiaryPage, error) {
	var out DiaryPage
	q := url.Values{}
	q.Set("keyword", keyword)
	q.Set("page", strconv.Itoa(page))
	q.Set("limit", strconv.Itoa(limit))
	if err := c.do(ctx, http.MethodGet, "/diaries/search?"+q.Encode(), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetDiary fetches a single diary by id.
func (c *Client) GetDiary(ctx context.Context, id int64) (*Diary, error) {
	var out Diary
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/diaries/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteDiary removes a diary by id.
func (c *Client) DeleteDiary(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/diaries/%d", id), nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	var reqBody io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, reqBody)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var e errorResponse
		if err := json.NewDecoder(resp.Body).Decode(&e); err == nil && e.Error != "" {
			return fmt.Errorf("server: %s", e.Error)
		}
		return fmt.Errorf("server: %s", resp.Status)
	}

	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}
