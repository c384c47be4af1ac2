package models

import "time"

// User is the stored identity record. PasswordHash never leaves the
// repository/service boundary; JSON output uses the Public projection.
type User struct {
	ID           int64
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// PublicUser is the externally visible projection of a User.
type PublicUser struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Public strips the credential material from the record.
func (u *User) Public() *PublicUser {
	return &PublicUser{
		ID:        u.ID,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// UserUpdate carries an optional-field profile update. Only non-nil fields
// overwrite the stored values.
type UserUpdate struct {
	Email    *string `json:"email"`
	Password *string `json:"password"`
}
