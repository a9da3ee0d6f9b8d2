package domain

import "time"

// FollowEdge is a directed edge meaning the follower receives the
// followee's posts in their feed. At most one edge exists per ordered
// pair, and an edge is independent of any reciprocal edge.
type FollowEdge struct {
	FollowerID int64     `json:"follower_id"`
	FolloweeID int64     `json:"followee_id"`
	CreatedAt  time.Time `json:"created_at"`
}
