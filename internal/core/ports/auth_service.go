package ports

import (
	"context"

	"github.com/willsblog/microblog-api/internal/core/domain"
)

// AuthService implements registration, login and password reset.
type AuthService interface {
	Register(ctx context.Context, username, email, password string) (*domain.User, error)
	// Login verifies the credential and returns a signed bearer token
	// alongside the user.
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
	// RequestPasswordReset mints a single-use, time-bounded reset token for
	// the account matching email and hands it to the mail dispatcher. An
	// unknown email is not an error, so callers cannot probe for accounts.
	RequestPasswordReset(ctx context.Context, email string) error
	// ResetPassword redeems a reset token and replaces the credential.
	ResetPassword(ctx context.Context, token, newPassword string) error
}
