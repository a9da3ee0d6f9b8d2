package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/willsblog/microblog-api/internal/api/metrics"
	"github.com/willsblog/microblog-api/internal/core/ports"
)

// FeedHandler serves the merged home feed.
type FeedHandler struct {
	feedService ports.FeedService
}

func NewFeedHandler(feedService ports.FeedService) *FeedHandler {
	return &FeedHandler{feedService: feedService}
}

// Feed handles GET /v1/feed — the caller's own posts merged with the
// posts of everyone they follow, newest first.
//
// @Summary      Get the home feed
// @Tags         feed
// @Produce      json
// @Security     BearerAuth
// @Param        page       query     int  false  "Page number (1-indexed)"
// @Param        page_size  query     int  false  "Posts per page (max 100)"
// @Success      200        {object}  feedResponse
// @Failure      400        {object}  errorResponse
// @Failure      401        {object}  errorResponse
// @Router       /v1/feed [get]
func (h *FeedHandler) Feed(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	page, pageSize, err := pageParams(c)
	if err != nil {
		return err
	}

	start := time.Now()
	result, err := h.feedService.Feed(c.Request().Context(), userID, page, pageSize)
	if err != nil {
		return err
	}
	metrics.FeedRequestsTotal.Inc()
	metrics.FeedQueryDuration.Observe(time.Since(start).Seconds())

	return c.JSON(http.StatusOK, toFeedResponse(result))
}
