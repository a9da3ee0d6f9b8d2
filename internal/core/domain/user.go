package domain

import "time"

// MaxAboutMeLen bounds the free-text bio on a profile.
const MaxAboutMeLen = 140

// User models a registered account. PasswordHash holds the bcrypt
// credential and is never serialized.
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	AboutMe      string    `json:"about_me,omitempty"`
	LastSeen     time.Time `json:"last_seen"`
	CreatedAt    time.Time `json:"created_at"`
}
