package ports

import (
	"context"
	"time"
)

// Profile is the public view of a user, enriched with graph counts.
type Profile struct {
	ID             int64
	Username       string
	AboutMe        string
	LastSeen       time.Time
	PostCount      int64
	FollowerCount  int64
	FollowingCount int64
}

// UserService defines profile use-cases.
type UserService interface {
	Profile(ctx context.Context, username string) (*Profile, error)
	UpdateAboutMe(ctx context.Context, userID int64, aboutMe string) (*Profile, error)
	// TouchLastSeen records activity for the user. Best effort; callers may
	// ignore the error.
	TouchLastSeen(ctx context.Context, userID int64) error
}
