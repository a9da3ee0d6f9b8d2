package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/willsblog/microblog-api/internal/core/domain"
)

func TestRegisterHandler(t *testing.T) {
	svc := &stubAuthService{
		register: func(_ context.Context, username, email, password string) (*domain.User, error) {
			if username != "susan" || email != "susan@example.com" || password != "cat-password" {
				t.Fatalf("unexpected register args: %s %s %s", username, email, password)
			}
			return &domain.User{
				ID:        42,
				Username:  username,
				Email:     email,
				CreatedAt: time.Now().UTC(),
			}, nil
		},
	}
	h := NewAuthHandler(svc)

	c, rec := newTestContext(http.MethodPost, "/v1/auth/register",
		`{"username":"susan","email":"susan@example.com","password":"cat-password"}`)

	if err := h.Register(c); err != nil {
		t.Fatal(err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201", rec.Code)
	}

	var resp authResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.User == nil || resp.User.ID != 42 || resp.User.Username != "susan" {
		t.Fatalf("response user = %+v", resp.User)
	}
	if resp.Token != "" {
		t.Fatal("registration must not hand out a session token")
	}
}

func TestRegisterHandlerValidation(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})

	cases := []struct {
		name string
		body string
	}{
		{"short password", `{"username":"susan","email":"susan@example.com","password":"short"}`},
		{"bad email", `{"username":"susan","email":"not-an-email","password":"cat-password"}`},
		{"username with spaces", `{"username":"su san","email":"susan@example.com","password":"cat-password"}`},
		{"missing username", `{"email":"susan@example.com","password":"cat-password"}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, _ := newTestContext(http.MethodPost, "/v1/auth/register", tc.body)

			err := h.Register(c)
			var he *echo.HTTPError
			if !errors.As(err, &he) || he.Code != http.StatusUnprocessableEntity {
				t.Fatalf("error = %v, want 422", err)
			}
		})
	}
}

func TestRegisterHandlerDuplicate(t *testing.T) {
	svc := &stubAuthService{
		register: func(context.Context, string, string, string) (*domain.User, error) {
			return nil, domain.ErrUserExists
		},
	}
	h := NewAuthHandler(svc)

	c, _ := newTestContext(http.MethodPost, "/v1/auth/register",
		`{"username":"susan","email":"susan@example.com","password":"cat-password"}`)

	if err := h.Register(c); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("error = %v, want ErrUserExists passed through", err)
	}
}

func TestLoginHandler(t *testing.T) {
	svc := &stubAuthService{
		login: func(_ context.Context, username, password string) (string, *domain.User, error) {
			return "signed-token", &domain.User{ID: 42, Username: username}, nil
		},
	}
	h := NewAuthHandler(svc)

	c, rec := newTestContext(http.MethodPost, "/v1/auth/login",
		`{"username":"susan","password":"cat-password"}`)

	if err := h.Login(c); err != nil {
		t.Fatal(err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp authResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Token != "signed-token" {
		t.Fatalf("token = %q, want signed-token", resp.Token)
	}
}

func TestLoginHandlerBadCredentials(t *testing.T) {
	svc := &stubAuthService{
		login: func(context.Context, string, string) (string, *domain.User, error) {
			return "", nil, domain.ErrInvalidCredentials
		},
	}
	h := NewAuthHandler(svc)

	c, _ := newTestContext(http.MethodPost, "/v1/auth/login",
		`{"username":"susan","password":"wrong"}`)

	if err := h.Login(c); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("error = %v, want ErrInvalidCredentials passed through", err)
	}
}

func TestRequestPasswordResetAlwaysAccepted(t *testing.T) {
	svc := &stubAuthService{
		requestPasswordReset: func(_ context.Context, email string) error {
			// Unknown emails come back nil from the service too.
			return nil
		},
	}
	h := NewAuthHandler(svc)

	c, rec := newTestContext(http.MethodPost, "/v1/auth/password-reset/request",
		`{"email":"whoever@example.com"}`)

	if err := h.RequestPasswordReset(c); err != nil {
		t.Fatal(err)
	}
	if rec.Code != http.StatusAccepted {
		t.Fatalf("status = %d, want 202", rec.Code)
	}
}

func TestResetPasswordHandler(t *testing.T) {
	var gotToken, gotPassword string
	svc := &stubAuthService{
		resetPassword: func(_ context.Context, token, newPassword string) error {
			gotToken, gotPassword = token, newPassword
			return nil
		},
	}
	h := NewAuthHandler(svc)

	c, rec := newTestContext(http.MethodPost, "/v1/auth/password-reset/confirm",
		`{"token":"reset-token","password":"new-password"}`)

	if err := h.ResetPassword(c); err != nil {
		t.Fatal(err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", rec.Code)
	}
	if gotToken != "reset-token" || gotPassword != "new-password" {
		t.Fatalf("service called with %q, %q", gotToken, gotPassword)
	}
}

func TestResetPasswordHandlerMasksVanishedAccount(t *testing.T) {
	svc := &stubAuthService{
		resetPassword: func(context.Context, string, string) error {
			return domain.ErrUserNotFound
		},
	}
	h := NewAuthHandler(svc)

	c, _ := newTestContext(http.MethodPost, "/v1/auth/password-reset/confirm",
		`{"token":"reset-token","password":"new-password"}`)

	err := h.ResetPassword(c)
	if !errors.Is(err, domain.ErrInvalidResetToken) {
		t.Fatalf("error = %v, want ErrInvalidResetToken", err)
	}
}
