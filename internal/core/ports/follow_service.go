package ports

import (
	"context"

	"github.com/willsblog/microblog-api/internal/core/domain"
)

// FollowService defines follow-graph use-cases. The followee is addressed
// by username at this layer; the repository works on ids.
type FollowService interface {
	// Follow creates the edge follower → followee. Following yourself fails
	// with domain.ErrSelfFollow; following someone you already follow is a
	// no-op.
	Follow(ctx context.Context, followerID int64, followeeUsername string) error
	// Unfollow removes the edge if present; absent edges are a no-op.
	Unfollow(ctx context.Context, followerID int64, followeeUsername string) error
	IsFollowing(ctx context.Context, followerID, followeeID int64) (bool, error)
	// Following returns the users followerID follows.
	Following(ctx context.Context, followerID int64) ([]*domain.User, error)
}
