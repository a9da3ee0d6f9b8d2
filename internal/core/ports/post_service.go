package ports

import (
	"context"

	"github.com/willsblog/microblog-api/internal/core/domain"
)

// PostService defines post use-cases.
type PostService interface {
	// CreatePost stores a new post for authorID. The body is bounded to
	// domain.MaxPostLen runes and must not be empty.
	CreatePost(ctx context.Context, authorID int64, body string) (*domain.Post, error)
	// UserPosts returns one page of a single user's posts, newest first.
	UserPosts(ctx context.Context, username string, page, pageSize int) (*FeedPage, error)
}
