package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/willsblog/microblog-api/internal/core/domain"
	"github.com/willsblog/microblog-api/internal/core/ports"
)

// FeedService composes the merged feed. It owns no state of its own: it
// is a read path over the follow graph, the post store and the user
// directory.
type FeedService struct {
	posts   ports.PostRepository
	follows ports.FollowRepository
	users   ports.UserRepository
	log     zerolog.Logger
}

func NewFeedService(posts ports.PostRepository, follows ports.FollowRepository, users ports.UserRepository, log zerolog.Logger) *FeedService {
	return &FeedService{posts: posts, follows: follows, users: users, log: log}
}

// Feed returns the 1-indexed page of posts authored by the user or anyone
// they follow, newest first with post id as the tie-break. The page is
// produced by a single repository query over the author set, so one
// result never contains a duplicated or skipped post; a follow change
// racing the read may or may not be reflected.
func (s *FeedService) Feed(ctx context.Context, userID int64, page, pageSize int) (*ports.FeedPage, error) {
	offset, limit, err := normalizePage(page, pageSize)
	if err != nil {
		return nil, err
	}

	followed, err := s.follows.FollowedIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	authorIDs := append(followed, userID)

	posts, hasNext, err := s.posts.ListByAuthors(ctx, authorIDs, offset, limit)
	if err != nil {
		return nil, err
	}

	usernames, err := s.usernamesFor(ctx, posts)
	if err != nil {
		return nil, err
	}

	items := make([]ports.FeedItem, len(posts))
	for i, p := range posts {
		items[i] = ports.FeedItem{
			ID:             p.ID,
			AuthorID:       p.AuthorID,
			AuthorUsername: usernames[p.AuthorID],
			Body:           p.Body,
			CreatedAt:      p.CreatedAt,
		}
	}

	return &ports.FeedPage{
		Items:    items,
		Page:     page,
		PageSize: limit,
		HasNext:  hasNext,
		HasPrev:  page > 1,
	}, nil
}

// usernamesFor resolves the author usernames for one page of posts with a
// single batched lookup.
func (s *FeedService) usernamesFor(ctx context.Context, posts []*domain.Post) (map[int64]string, error) {
	if len(posts) == 0 {
		return nil, nil
	}

	seen := make(map[int64]struct{}, len(posts))
	ids := make([]int64, 0, len(posts))
	for _, p := range posts {
		if _, ok := seen[p.AuthorID]; ok {
			continue
		}
		seen[p.AuthorID] = struct{}{}
		ids = append(ids, p.AuthorID)
	}

	authors, err := s.users.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	usernames := make(map[int64]string, len(authors))
	for _, u := range authors {
		usernames[u.ID] = u.Username
	}
	return usernames, nil
}
