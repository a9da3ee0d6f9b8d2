package handler

import (
	"context"
	"net/http/httptest"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/willsblog/microblog-api/internal/core/domain"
	"github.com/willsblog/microblog-api/internal/core/ports"
)

// Function-field stubs for the service ports. Each test assigns only the
// functions it expects the handler to call.

type stubAuthService struct {
	register             func(ctx context.Context, username, email, password string) (*domain.User, error)
	login                func(ctx context.Context, username, password string) (string, *domain.User, error)
	requestPasswordReset func(ctx context.Context, email string) error
	resetPassword        func(ctx context.Context, token, newPassword string) error
}

func (s *stubAuthService) Register(ctx context.Context, username, email, password string) (*domain.User, error) {
	return s.register(ctx, username, email, password)
}

func (s *stubAuthService) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	return s.login(ctx, username, password)
}

func (s *stubAuthService) RequestPasswordReset(ctx context.Context, email string) error {
	return s.requestPasswordReset(ctx, email)
}

func (s *stubAuthService) ResetPassword(ctx context.Context, token, newPassword string) error {
	return s.resetPassword(ctx, token, newPassword)
}

type stubPostService struct {
	createPost func(ctx context.Context, authorID int64, body string) (*domain.Post, error)
	userPosts  func(ctx context.Context, username string, page, pageSize int) (*ports.FeedPage, error)
}

func (s *stubPostService) CreatePost(ctx context.Context, authorID int64, body string) (*domain.Post, error) {
	return s.createPost(ctx, authorID, body)
}

func (s *stubPostService) UserPosts(ctx context.Context, username string, page, pageSize int) (*ports.FeedPage, error) {
	return s.userPosts(ctx, username, page, pageSize)
}

type stubFeedService struct {
	feed func(ctx context.Context, userID int64, page, pageSize int) (*ports.FeedPage, error)
}

func (s *stubFeedService) Feed(ctx context.Context, userID int64, page, pageSize int) (*ports.FeedPage, error) {
	return s.feed(ctx, userID, page, pageSize)
}

type stubFollowService struct {
	follow      func(ctx context.Context, followerID int64, followeeUsername string) error
	unfollow    func(ctx context.Context, followerID int64, followeeUsername string) error
	isFollowing func(ctx context.Context, followerID, followeeID int64) (bool, error)
	following   func(ctx context.Context, followerID int64) ([]*domain.User, error)
}

func (s *stubFollowService) Follow(ctx context.Context, followerID int64, followeeUsername string) error {
	return s.follow(ctx, followerID, followeeUsername)
}

func (s *stubFollowService) Unfollow(ctx context.Context, followerID int64, followeeUsername string) error {
	return s.unfollow(ctx, followerID, followeeUsername)
}

func (s *stubFollowService) IsFollowing(ctx context.Context, followerID, followeeID int64) (bool, error) {
	return s.isFollowing(ctx, followerID, followeeID)
}

func (s *stubFollowService) Following(ctx context.Context, followerID int64) ([]*domain.User, error) {
	return s.following(ctx, followerID)
}

type stubUserService struct {
	profile       func(ctx context.Context, username string) (*ports.Profile, error)
	updateAboutMe func(ctx context.Context, userID int64, aboutMe string) (*ports.Profile, error)
	touchLastSeen func(ctx context.Context, userID int64) error
}

func (s *stubUserService) Profile(ctx context.Context, username string) (*ports.Profile, error) {
	return s.profile(ctx, username)
}

func (s *stubUserService) UpdateAboutMe(ctx context.Context, userID int64, aboutMe string) (*ports.Profile, error) {
	return s.updateAboutMe(ctx, userID, aboutMe)
}

func (s *stubUserService) TouchLastSeen(ctx context.Context, userID int64) error {
	return s.touchLastSeen(ctx, userID)
}

// newTestContext builds an Echo context around a recorded request. The
// body, when non-empty, is sent as JSON.
func newTestContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()

	var req = httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

// asAuthenticated marks the context as carrying a verified identity, the
// way the Auth middleware does.
func asAuthenticated(c echo.Context, userID int64, username string) {
	c.Set("user_id", userID)
	c.Set("username", username)
}
