package models

import "time"

// Diary is a single diary entry. UserID is always the id resolved by the
// access guard, never one supplied by the client.
type Diary struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DiaryUpdate carries an optional-field update. Only non-nil fields
// overwrite the stored values.
type DiaryUpdate struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}
