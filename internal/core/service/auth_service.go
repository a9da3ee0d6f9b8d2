package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/willsblog/microblog-api/internal/core/domain"
	"github.com/willsblog/microblog-api/internal/core/ports"
)

const resetPurpose = "password_reset"

// ResetTokenStore enforces single use of reset tokens. Claim atomically
// marks a token id as redeemed and reports whether this caller won the
// claim.
type ResetTokenStore interface {
	Claim(ctx context.Context, tokenID string, ttl time.Duration) (bool, error)
}

// AuthService implements registration, login and password reset.
type AuthService struct {
	users     ports.UserRepository
	ids       ports.IDGenerator
	tokens    ResetTokenStore
	mail      ports.MailDispatcher
	jwtSecret string
	tokenTTL  time.Duration
	resetTTL  time.Duration
	log       zerolog.Logger
}

func NewAuthService(
	users ports.UserRepository,
	ids ports.IDGenerator,
	tokens ResetTokenStore,
	mail ports.MailDispatcher,
	jwtSecret string,
	tokenTTL, resetTTL time.Duration,
	log zerolog.Logger,
) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	if resetTTL <= 0 {
		resetTTL = 15 * time.Minute
	}
	return &AuthService{
		users:     users,
		ids:       ids,
		tokens:    tokens,
		mail:      mail,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
		resetTTL:  resetTTL,
		log:       log,
	}
}

func (s *AuthService) Register(ctx context.Context, username, email, password string) (*domain.User, error) {
	if username == "" || email == "" || password == "" {
		return nil, fmt.Errorf("username, email and password are required: %w", domain.ErrInvalidArgument)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		ID:           s.ids.NextID(),
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		LastSeen:     now,
		CreatedAt:    now,
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	s.log.Info().Int64("user_id", user.ID).Str("username", username).Msg("user registered")
	return user, nil
}

func (s *AuthService) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	if username == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.sessionToken(user)
	if err != nil {
		return "", nil, err
	}

	return token, user, nil
}

func (s *AuthService) RequestPasswordReset(ctx context.Context, email string) error {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			// Unknown email is not reported to the caller.
			s.log.Debug().Str("email", email).Msg("password reset requested for unknown email")
			return nil
		}
		return err
	}

	expiresAt := time.Now().Add(s.resetTTL)
	token, err := s.resetToken(user.ID, expiresAt)
	if err != nil {
		return err
	}

	s.mail.Enqueue(ports.PasswordResetMail{
		Email:     user.Email,
		Username:  user.Username,
		Token:     token,
		ExpiresAt: expiresAt,
	})

	s.log.Info().Int64("user_id", user.ID).Msg("password reset token issued")
	return nil
}

func (s *AuthService) ResetPassword(ctx context.Context, token, newPassword string) error {
	if newPassword == "" {
		return fmt.Errorf("password is required: %w", domain.ErrInvalidArgument)
	}

	userID, tokenID, expiresAt, err := s.parseResetToken(token)
	if err != nil {
		return domain.ErrInvalidResetToken
	}

	// Claim TTL only needs to outlive the token itself.
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		return domain.ErrInvalidResetToken
	}
	claimed, err := s.tokens.Claim(ctx, tokenID, ttl)
	if err != nil {
		return err
	}
	if !claimed {
		return domain.ErrInvalidResetToken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	if err := s.users.UpdatePassword(ctx, userID, string(hash)); err != nil {
		return err
	}

	s.log.Info().Int64("user_id", userID).Msg("password reset completed")
	return nil
}

// sessionToken signs the bearer token handed out on login.
func (s *AuthService) sessionToken(user *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":      strconv.FormatInt(user.ID, 10),
		"username": user.Username,
		"exp":      time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}

// resetToken signs an expiring capability carrying the user id and a
// random token id. Verification needs no store round trip; single use is
// enforced by the token store at redemption time.
func (s *AuthService) resetToken(userID int64, expiresAt time.Time) (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}

	claims := jwt.MapClaims{
		"sub":     strconv.FormatInt(userID, 10),
		"jti":     hex.EncodeToString(b),
		"purpose": resetPurpose,
		"exp":     expiresAt.Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}

func (s *AuthService) parseResetToken(token string) (userID int64, tokenID string, expiresAt time.Time, err error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil || !tkn.Valid {
		return 0, "", time.Time{}, domain.ErrInvalidResetToken
	}

	if purpose, _ := claims["purpose"].(string); purpose != resetPurpose {
		return 0, "", time.Time{}, domain.ErrInvalidResetToken
	}

	sub, _ := claims["sub"].(string)
	userID, err = strconv.ParseInt(sub, 10, 64)
	if err != nil {
		return 0, "", time.Time{}, domain.ErrInvalidResetToken
	}

	tokenID, _ = claims["jti"].(string)
	if tokenID == "" {
		return 0, "", time.Time{}, domain.ErrInvalidResetToken
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return 0, "", time.Time{}, domain.ErrInvalidResetToken
	}

	return userID, tokenID, exp.Time, nil
}
