package handler

import (
	"time"

	"github.com/willsblog/microblog-api/internal/core/ports"
)

type updateProfileRequest struct {
	AboutMe string `json:"about_me" validate:"max=140"`
}

type profileResponse struct {
	ID             int64     `json:"id"`
	Username       string    `json:"username"`
	AboutMe        string    `json:"about_me,omitempty"`
	LastSeen       time.Time `json:"last_seen"`
	PostCount      int64     `json:"post_count"`
	FollowerCount  int64     `json:"follower_count"`
	FollowingCount int64     `json:"following_count"`
}

type followedUserResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

type followingResponse struct {
	Data []followedUserResponse `json:"data"`
}

func toProfileResponse(p *ports.Profile) profileResponse {
	return profileResponse{
		ID:             p.ID,
		Username:       p.Username,
		AboutMe:        p.AboutMe,
		LastSeen:       p.LastSeen.UTC(),
		PostCount:      p.PostCount,
		FollowerCount:  p.FollowerCount,
		FollowingCount: p.FollowingCount,
	}
}
