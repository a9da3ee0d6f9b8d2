package mail

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/willsblog/microblog-api/internal/core/ports"
)

// LogMailer is a Mailer that records the dispatch in the structured log
// instead of sending anything. Actual delivery belongs to an external
// collaborator; this implementation keeps development and tests
// self-contained.
type LogMailer struct {
	log zerolog.Logger
}

func NewLogMailer(log zerolog.Logger) *LogMailer {
	return &LogMailer{log: log}
}

func (m *LogMailer) SendPasswordReset(ctx context.Context, mail ports.PasswordResetMail) error {
	m.log.Info().
		Str("email", mail.Email).
		Str("username", mail.Username).
		Time("expires_at", mail.ExpiresAt).
		Msg("password reset email dispatched")

	// The token itself only surfaces at debug level so development setups
	// can complete the flow without an inbox.
	m.log.Debug().Str("token", mail.Token).Msg("password reset token")
	return nil
}
