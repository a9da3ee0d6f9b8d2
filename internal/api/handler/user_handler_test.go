package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/willsblog/microblog-api/internal/core/domain"
	"github.com/willsblog/microblog-api/internal/core/ports"
)

func TestProfileHandler(t *testing.T) {
	svc := &stubUserService{
		profile: func(_ context.Context, username string) (*ports.Profile, error) {
			return &ports.Profile{
				ID:             42,
				Username:       username,
				AboutMe:        "I like cats",
				PostCount:      3,
				FollowerCount:  2,
				FollowingCount: 1,
			}, nil
		},
	}
	h := NewUserHandler(svc)

	c, rec := newTestContext(http.MethodGet, "/v1/users/susan", "")
	c.SetParamNames("username")
	c.SetParamValues("susan")

	if err := h.Profile(c); err != nil {
		t.Fatal(err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp profileResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Username != "susan" || resp.PostCount != 3 || resp.FollowerCount != 2 {
		t.Fatalf("response = %+v", resp)
	}
}

func TestProfileHandlerNotFound(t *testing.T) {
	svc := &stubUserService{
		profile: func(context.Context, string) (*ports.Profile, error) {
			return nil, domain.ErrUserNotFound
		},
	}
	h := NewUserHandler(svc)

	c, _ := newTestContext(http.MethodGet, "/v1/users/nobody", "")
	c.SetParamNames("username")
	c.SetParamValues("nobody")

	if err := h.Profile(c); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("error = %v, want ErrUserNotFound passed through", err)
	}
}

func TestUpdateProfileHandler(t *testing.T) {
	svc := &stubUserService{
		updateAboutMe: func(_ context.Context, userID int64, aboutMe string) (*ports.Profile, error) {
			if userID != 42 {
				t.Fatalf("userID = %d, want 42", userID)
			}
			return &ports.Profile{ID: userID, Username: "susan", AboutMe: aboutMe}, nil
		},
	}
	h := NewUserHandler(svc)

	c, rec := newTestContext(http.MethodPut, "/v1/users/me", `{"about_me":"I like cats"}`)
	asAuthenticated(c, 42, "susan")

	if err := h.UpdateProfile(c); err != nil {
		t.Fatal(err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp profileResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.AboutMe != "I like cats" {
		t.Fatalf("about_me = %q", resp.AboutMe)
	}
}

func TestUpdateProfileHandlerTooLong(t *testing.T) {
	h := NewUserHandler(&stubUserService{})

	long := make([]byte, 141)
	for i := range long {
		long[i] = 'a'
	}
	body, _ := json.Marshal(map[string]string{"about_me": string(long)})

	c, _ := newTestContext(http.MethodPut, "/v1/users/me", string(body))
	asAuthenticated(c, 42, "susan")

	err := h.UpdateProfile(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnprocessableEntity {
		t.Fatalf("error = %v, want 422", err)
	}
}

func TestUpdateProfileHandlerUnauthenticated(t *testing.T) {
	h := NewUserHandler(&stubUserService{})

	c, _ := newTestContext(http.MethodPut, "/v1/users/me", `{"about_me":"hi"}`)

	err := h.UpdateProfile(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("error = %v, want 401", err)
	}
}
