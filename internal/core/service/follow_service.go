package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/willsblog/microblog-api/internal/core/domain"
	"github.com/willsblog/microblog-api/internal/core/ports"
)

// FollowService implements follow-graph use-cases. Edge creation and
// removal are idempotent; uniqueness of the (follower, followee) pair is
// enforced by the repository's constraint, so concurrent duplicate
// follows leave a single edge.
type FollowService struct {
	follows ports.FollowRepository
	users   ports.UserRepository
	log     zerolog.Logger
}

func NewFollowService(follows ports.FollowRepository, users ports.UserRepository, log zerolog.Logger) *FollowService {
	return &FollowService{follows: follows, users: users, log: log}
}

func (s *FollowService) Follow(ctx context.Context, followerID int64, followeeUsername string) error {
	followee, err := s.users.FindByUsername(ctx, followeeUsername)
	if err != nil {
		return err
	}
	if followee.ID == followerID {
		return domain.ErrSelfFollow
	}

	edge := &domain.FollowEdge{
		FollowerID: followerID,
		FolloweeID: followee.ID,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.follows.Create(ctx, edge); err != nil {
		return err
	}

	s.log.Info().Int64("follower_id", followerID).Int64("followee_id", followee.ID).Msg("follow edge created")
	return nil
}

func (s *FollowService) Unfollow(ctx context.Context, followerID int64, followeeUsername string) error {
	followee, err := s.users.FindByUsername(ctx, followeeUsername)
	if err != nil {
		return err
	}
	if followee.ID == followerID {
		return domain.ErrSelfFollow
	}

	if err := s.follows.Delete(ctx, followerID, followee.ID); err != nil {
		return err
	}

	s.log.Info().Int64("follower_id", followerID).Int64("followee_id", followee.ID).Msg("follow edge removed")
	return nil
}

func (s *FollowService) IsFollowing(ctx context.Context, followerID, followeeID int64) (bool, error) {
	if followerID == followeeID {
		// Self-follow edges cannot exist.
		return false, nil
	}
	return s.follows.Exists(ctx, followerID, followeeID)
}

func (s *FollowService) Following(ctx context.Context, followerID int64) ([]*domain.User, error) {
	ids, err := s.follows.FollowedIDs(ctx, followerID)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []*domain.User{}, nil
	}
	return s.users.FindByIDs(ctx, ids)
}
