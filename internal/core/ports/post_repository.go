package ports

import (
	"context"

	"github.com/willsblog/microblog-api/internal/core/domain"
)

// PostRepository defines persistence operations for posts.
type PostRepository interface {
	Create(ctx context.Context, post *domain.Post) error
	// ListByAuthors returns one page of posts authored by any of authorIDs,
	// ordered by creation time descending with post id descending as the
	// tie-break. The page is read in a single query, so a result never
	// contains a duplicated or skipped post. The boolean reports whether
	// more posts exist beyond offset+limit.
	ListByAuthors(ctx context.Context, authorIDs []int64, offset, limit int) ([]*domain.Post, bool, error)
	CountByAuthor(ctx context.Context, authorID int64) (int64, error)
}
