package handler

import (
	"time"

	"github.com/willsblog/microblog-api/internal/core/domain"
	"github.com/willsblog/microblog-api/internal/core/ports"
)

type createPostRequest struct {
	Body string `json:"body" validate:"required,max=140"`
}

type postResponse struct {
	ID             int64     `json:"id"`
	AuthorID       int64     `json:"author_id"`
	AuthorUsername string    `json:"author_username,omitempty"`
	Body           string    `json:"body"`
	CreatedAt      time.Time `json:"created_at"`
}

// feedResponse is one page of posts. HasNext and HasPrev are computed
// without a total count, so no total or page-count field exists.
type feedResponse struct {
	Data     []postResponse `json:"data"`
	Page     int            `json:"page"`
	PageSize int            `json:"page_size"`
	HasNext  bool           `json:"has_next"`
	HasPrev  bool           `json:"has_prev"`
}

func toPostResponse(p *domain.Post) postResponse {
	return postResponse{
		ID:        p.ID,
		AuthorID:  p.AuthorID,
		Body:      p.Body,
		CreatedAt: p.CreatedAt.UTC(),
	}
}

func toFeedResponse(page *ports.FeedPage) feedResponse {
	data := make([]postResponse, len(page.Items))
	for i, item := range page.Items {
		data[i] = postResponse{
			ID:             item.ID,
			AuthorID:       item.AuthorID,
			AuthorUsername: item.AuthorUsername,
			Body:           item.Body,
			CreatedAt:      item.CreatedAt.UTC(),
		}
	}
	return feedResponse{
		Data:     data,
		Page:     page.Page,
		PageSize: page.PageSize,
		HasNext:  page.HasNext,
		HasPrev:  page.HasPrev,
	}
}
