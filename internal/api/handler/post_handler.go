package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/willsblog/microblog-api/internal/api/metrics"
	"github.com/willsblog/microblog-api/internal/core/ports"
)

// PostHandler handles post creation and per-user listings.
type PostHandler struct {
	postService ports.PostService
}

func NewPostHandler(postService ports.PostService) *PostHandler {
	return &PostHandler{postService: postService}
}

// Create handles POST /v1/posts.
//
// @Summary      Create a post
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createPostRequest  true  "Post body (max 140 characters)"
// @Success      201   {object}  postResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/posts [post]
func (h *PostHandler) Create(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req createPostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	post, err := h.postService.CreatePost(c.Request().Context(), userID, req.Body)
	if err != nil {
		return err
	}
	metrics.PostsCreatedTotal.Inc()

	return c.JSON(http.StatusCreated, toPostResponse(post))
}

// UserPosts handles GET /v1/users/:username/posts.
//
// @Summary      List a user's posts
// @Tags         posts
// @Produce      json
// @Param        username   path      string  true   "Author username"
// @Param        page       query     int     false  "Page number (1-indexed)"
// @Param        page_size  query     int     false  "Posts per page (max 100)"
// @Success      200        {object}  feedResponse
// @Failure      400        {object}  errorResponse
// @Failure      404        {object}  errorResponse
// @Router       /v1/users/{username}/posts [get]
func (h *PostHandler) UserPosts(c echo.Context) error {
	page, pageSize, err := pageParams(c)
	if err != nil {
		return err
	}

	result, err := h.postService.UserPosts(c.Request().Context(), c.Param("username"), page, pageSize)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toFeedResponse(result))
}
