package ports

import (
	"context"

	"github.com/willsblog/microblog-api/internal/core/domain"
)

// FollowRepository defines persistence operations for the follow graph.
// The edge pair (follower, followee) carries a uniqueness constraint, so
// two concurrent Create calls on the same pair leave exactly one edge.
type FollowRepository interface {
	// Create inserts the edge. Inserting an edge that already exists is a
	// no-op, not an error.
	Create(ctx context.Context, edge *domain.FollowEdge) error
	// Delete removes the edge if present; removing an absent edge is a no-op.
	Delete(ctx context.Context, followerID, followeeID int64) error
	Exists(ctx context.Context, followerID, followeeID int64) (bool, error)
	// FollowedIDs returns the ids of every user followerID follows.
	FollowedIDs(ctx context.Context, followerID int64) ([]int64, error)
	CountFollowers(ctx context.Context, userID int64) (int64, error)
	CountFollowing(ctx context.Context, userID int64) (int64, error)
}
