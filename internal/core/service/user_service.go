package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/willsblog/microblog-api/internal/core/domain"
	"github.com/willsblog/microblog-api/internal/core/ports"
)

// UserService implements profile use-cases over the user directory, post
// store and follow graph.
type UserService struct {
	users   ports.UserRepository
	posts   ports.PostRepository
	follows ports.FollowRepository
	log     zerolog.Logger
}

func NewUserService(users ports.UserRepository, posts ports.PostRepository, follows ports.FollowRepository, log zerolog.Logger) *UserService {
	return &UserService{users: users, posts: posts, follows: follows, log: log}
}

func (s *UserService) Profile(ctx context.Context, username string) (*ports.Profile, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	return s.profileFor(ctx, user)
}

func (s *UserService) UpdateAboutMe(ctx context.Context, userID int64, aboutMe string) (*ports.Profile, error) {
	if len([]rune(aboutMe)) > domain.MaxAboutMeLen {
		return nil, fmt.Errorf("about me exceeds %d characters: %w", domain.MaxAboutMeLen, domain.ErrInvalidArgument)
	}

	if err := s.users.UpdateAboutMe(ctx, userID, aboutMe); err != nil {
		return nil, err
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	s.log.Info().Int64("user_id", userID).Msg("profile updated")
	return s.profileFor(ctx, user)
}

func (s *UserService) TouchLastSeen(ctx context.Context, userID int64) error {
	return s.users.UpdateLastSeen(ctx, userID, time.Now().UTC())
}

func (s *UserService) profileFor(ctx context.Context, user *domain.User) (*ports.Profile, error) {
	postCount, err := s.posts.CountByAuthor(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	followers, err := s.follows.CountFollowers(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	following, err := s.follows.CountFollowing(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	return &ports.Profile{
		ID:             user.ID,
		Username:       user.Username,
		AboutMe:        user.AboutMe,
		LastSeen:       user.LastSeen,
		PostCount:      postCount,
		FollowerCount:  followers,
		FollowingCount: following,
	}, nil
}
