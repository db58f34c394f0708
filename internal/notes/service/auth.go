package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/mail"
	"strings"
	"time"

	"github.com/aussiebroadwan/notes/internal/notes/domain"
	"github.com/aussiebroadwan/notes/internal/notes/store"
	"github.com/aussiebroadwan/notes/pkg/cryptox"
	"github.com/aussiebroadwan/notes/pkg/idx"
	"github.com/aussiebroadwan/notes/pkg/jwtx"
	"github.com/aussiebroadwan/notes/pkg/slogx"
)

const MinPasswordLen = 6

type SignupInput struct {
	Username string
	Email    string
	Password string
}

// Session is a signed-in user and the token that proves it.
type Session struct {
	User      domain.User
	Token     string
	ExpiresAt time.Time
}

type AuthService struct {
	Store      store.Store
	KeyManager *jwtx.KeyManager
	Issuer     string
	SessionTTL time.Duration
}

func (s *AuthService) Signup(ctx context.Context, in SignupInput) (Session, error) {
	in.Username = strings.TrimSpace(in.Username)
	in.Email = strings.TrimSpace(in.Email)
	if in.Username == "" || in.Email == "" || in.Password == "" {
		return Session{}, ErrMissingFields
	}
	if _, err := mail.ParseAddress(in.Email); err != nil {
		return Session{}, ErrInvalidEmail
	}
	if len(in.Password) < MinPasswordLen {
		return Session{}, ErrPasswordTooShort
	}

	users := s.Store.Users()
	if _, err := users.GetUserByEmail(ctx, in.Email); err == nil {
		return Session{}, ErrEmailTaken
	} else if !errors.Is(err, store.ErrNotFound) {
		return Session{}, fmt.Errorf("lookup email: %w", err)
	}
	if _, err := users.GetUserByUsername(ctx, in.Username); err == nil {
		return Session{}, ErrUsernameTaken
	} else if !errors.Is(err, store.ErrNotFound) {
		return Session{}, fmt.Errorf("lookup username: %w", err)
	}

	hash, err := cryptox.HashPassword(in.Password)
	if err != nil {
		return Session{}, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now().UTC()
	user := domain.User{
		ID:           idx.NewAt(now).String(),
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := users.CreateUser(ctx, user); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return Session{}, userConflict(ctx, s.Store, user.ID, user.Username)
		}
		return Session{}, fmt.Errorf("create user: %w", err)
	}

	slogx.FromContext(ctx).Info("user signed up", slog.String("user_id", user.ID))
	return s.issue(user, now)
}

func (s *AuthService) Login(ctx context.Context, email, password string) (Session, error) {
	l := slogx.FromContext(ctx)

	user, err := s.Store.Users().GetUserByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return Session{}, ErrInvalidCredentials
		}
		return Session{}, fmt.Errorf("lookup user: %w", err)
	}

	if err := cryptox.VerifyPassword(password, user.PasswordHash); err != nil {
		if !errors.Is(err, cryptox.ErrPasswordMismatch) {
			l.Error("stored password hash unusable", slog.String("user_id", user.ID), slog.Any("error", err))
		}
		return Session{}, ErrInvalidCredentials
	}

	l.Info("user logged in", slog.String("user_id", user.ID))
	return s.issue(user, time.Now().UTC())
}

// Authenticate checks a session token and returns the user id it belongs
// to. Tokens of deleted users are rejected.
func (s *AuthService) Authenticate(ctx context.Context, token string) (string, error) {
	claims, err := s.KeyManager.Verifier.Verify(token)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidSession, err)
	}
	if claims.Subject == "" {
		return "", ErrInvalidSession
	}

	if _, err := s.Store.Users().GetUserByID(ctx, claims.Subject); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", ErrInvalidSession
		}
		return "", err
	}
	return claims.Subject, nil
}

func (s *AuthService) ttl() time.Duration {
	if s.SessionTTL > 0 {
		return s.SessionTTL
	}
	return jwtx.DefaultSessionTTL
}

func (s *AuthService) issue(user domain.User, now time.Time) (Session, error) {
	signer := s.KeyManager.GetSigner()
	if signer == nil {
		return Session{}, errors.New("no signing key available")
	}

	claims := jwtx.NewSessionClaims(user.ID, user.Username, s.ttl(), s.Issuer, now)
	token, err := signer.Sign(claims)
	if err != nil {
		return Session{}, fmt.Errorf("sign session: %w", err)
	}
	return Session{User: user, Token: token, ExpiresAt: claims.ExpiresAt.Time}, nil
}
