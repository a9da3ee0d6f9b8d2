package ports

import (
	"context"
	"time"
)

// FeedItem is a post hydrated with its author's username.
type FeedItem struct {
	ID             int64
	AuthorID       int64
	AuthorUsername string
	Body           string
	CreatedAt      time.Time
}

// FeedPage is one page of a time-ordered post listing. HasNext and HasPrev
// are computed without a total count.
type FeedPage struct {
	Items    []FeedItem
	Page     int
	PageSize int
	HasNext  bool
	HasPrev  bool
}

// FeedService composes the merged feed: a user's own posts plus the posts
// of everyone they follow, ordered by creation time descending with post
// id descending as the tie-break.
type FeedService interface {
	// Feed returns the 1-indexed page of the merged feed. A page beyond the
	// available range yields an empty page with HasNext false. page <= 0 or
	// pageSize <= 0 fail with domain.ErrInvalidArgument.
	Feed(ctx context.Context, userID int64, page, pageSize int) (*FeedPage, error)
}
