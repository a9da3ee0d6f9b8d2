package ports

import (
	"context"
	"time"

	"github.com/willsblog/microblog-api/internal/core/domain"
)

// UserRepository defines persistence operations for the user directory.
// Username and email are unique, case-sensitive keys; Create fails with
// domain.ErrUserExists when either collides, lookups fail with
// domain.ErrUserNotFound on misses.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	// FindByIDs returns the users matching ids; missing ids are skipped,
	// not an error.
	FindByIDs(ctx context.Context, ids []int64) ([]*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	UpdateAboutMe(ctx context.Context, id int64, aboutMe string) error
	UpdateLastSeen(ctx context.Context, id int64, at time.Time) error
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
}
