package ports

import (
	"context"
	"time"
)

// PasswordResetMail carries everything a mailer needs to deliver a reset
// token to its owner.
type PasswordResetMail struct {
	Email     string
	Username  string
	Token     string
	ExpiresAt time.Time
}

// Mailer delivers outbound mail. Transport (SMTP, provider API) is an
// external collaborator concern.
type Mailer interface {
	SendPasswordReset(ctx context.Context, mail PasswordResetMail) error
}

// MailDispatcher is the interface services use to hand off mail for
// asynchronous delivery.
type MailDispatcher interface {
	Enqueue(mail PasswordResetMail)
}
