package service

import (
	"context"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"github.com/willsblog/microblog-api/internal/core/domain"
	"github.com/willsblog/microblog-api/internal/core/ports"
)

// PostService implements post creation and per-author listing.
type PostService struct {
	posts ports.PostRepository
	users ports.UserRepository
	ids   ports.IDGenerator
	log   zerolog.Logger
}

func NewPostService(posts ports.PostRepository, users ports.UserRepository, ids ports.IDGenerator, log zerolog.Logger) *PostService {
	return &PostService{posts: posts, users: users, ids: ids, log: log}
}

func (s *PostService) CreatePost(ctx context.Context, authorID int64, body string) (*domain.Post, error) {
	if body == "" {
		return nil, fmt.Errorf("post body is required: %w", domain.ErrInvalidArgument)
	}
	if utf8.RuneCountInString(body) > domain.MaxPostLen {
		return nil, fmt.Errorf("post body exceeds %d characters: %w", domain.MaxPostLen, domain.ErrInvalidArgument)
	}

	post := &domain.Post{
		ID:        s.ids.NextID(),
		AuthorID:  authorID,
		Body:      body,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.posts.Create(ctx, post); err != nil {
		return nil, err
	}

	s.log.Info().Int64("post_id", post.ID).Int64("author_id", authorID).Msg("post created")
	return post, nil
}

func (s *PostService) UserPosts(ctx context.Context, username string, page, pageSize int) (*ports.FeedPage, error) {
	offset, limit, err := normalizePage(page, pageSize)
	if err != nil {
		return nil, err
	}

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	posts, hasNext, err := s.posts.ListByAuthors(ctx, []int64{user.ID}, offset, limit)
	if err != nil {
		return nil, err
	}

	items := make([]ports.FeedItem, len(posts))
	for i, p := range posts {
		items[i] = ports.FeedItem{
			ID:             p.ID,
			AuthorID:       p.AuthorID,
			AuthorUsername: user.Username,
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
