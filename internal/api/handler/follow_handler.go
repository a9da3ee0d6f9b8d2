package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/willsblog/microblog-api/internal/api/metrics"
	"github.com/willsblog/microblog-api/internal/core/ports"
)

// FollowHandler handles follow-graph mutations and listings.
type FollowHandler struct {
	followService ports.FollowService
}

func NewFollowHandler(followService ports.FollowService) *FollowHandler {
	return &FollowHandler{followService: followService}
}

// Follow handles POST /v1/users/:username/follow. Following a user you
// already follow succeeds without effect.
//
// @Summary      Follow a user
// @Tags         follows
// @Security     BearerAuth
// @Param        username  path  string  true  "User to follow"
// @Success      204       "edge created or already present"
// @Failure      401       {object}  errorResponse
// @Failure      404       {object}  errorResponse
// @Failure      422       {object}  errorResponse
// @Router       /v1/users/{username}/follow [post]
func (h *FollowHandler) Follow(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	if err := h.followService.Follow(c.Request().Context(), userID, c.Param("username")); err != nil {
		return err
	}
	metrics.FollowChangesTotal.WithLabelValues("follow").Inc()

	return c.NoContent(http.StatusNoContent)
}

// Unfollow handles DELETE /v1/users/:username/follow. Removing an absent
// edge succeeds without effect.
//
// @Summary      Unfollow a user
// @Tags         follows
// @Security     BearerAuth
// @Param        username  path  string  true  "User to unfollow"
// @Success      204       "edge removed or already absent"
// @Failure      401       {object}  errorResponse
// @Failure      404       {object}  errorResponse
// @Failure      422       {object}  errorResponse
// @Router       /v1/users/{username}/follow [delete]
func (h *FollowHandler) Unfollow(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	if err := h.followService.Unfollow(c.Request().Context(), userID, c.Param("username")); err != nil {
		return err
	}
	metrics.FollowChangesTotal.WithLabelValues("unfollow").Inc()

	return c.NoContent(http.StatusNoContent)
}

// Following handles GET /v1/users/me/following.
//
// @Summary      List users the caller follows
// @Tags         follows
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  followingResponse
// @Failure      401  {object}  errorResponse
// @Router       /v1/users/me/following [get]
func (h *FollowHandler) Following(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	users, err := h.followService.Following(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	data := make([]followedUserResponse, len(users))
	for i, u := range users {
		data[i] = followedUserResponse{ID: u.ID, Username: u.Username}
	}
	return c.JSON(http.StatusOK, followingResponse{Data: data})
}
