package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/pagebound/pagebound/internal/catalog/domain"
	"github.com/pagebound/pagebound/internal/catalog/store"
	"github.com/pagebound/pagebound/pkg/cryptox"
	"github.com/pagebound/pagebound/pkg/idx"
	"github.com/pagebound/pagebound/pkg/jwtx"
	"github.com/pagebound/pagebound/pkg/slogx"
)

var (
	// ErrInvalidCredentials covers both unknown email and wrong password so
	// the two are indistinguishable to the caller.
	ErrInvalidCredentials = errors.New("invalid_credentials")

	// ErrEmailTaken reports a signup against an existing email.
	ErrEmailTaken = errors.New("email_taken")
)

// AccountService implements signup and login on top of the credential hasher
// and the token signer.
type AccountService struct {
	Store    store.Store
	Signer   jwtx.Signer
	Issuer   string
	TokenTTL time.Duration
}

// Signup derives a fresh salt and digest for the password and persists the
// new user. The plaintext never leaves this function.
func (s *AccountService) Signup(ctx context.Context, name, email, password string) (domain.User, error) {
	salt, err := cryptox.NewSalt()
	if err != nil {
		// Entropy failure is not recoverable; bubble it up untouched.
		return domain.User{}, fmt.Errorf("signup: %w", err)
	}

	user := domain.User{
		ID:           idx.New().String(),
		Name:         name,
		Email:        email,
		Salt:         salt,
		PasswordHash: cryptox.Hash(password, salt),
	}

	if err := s.Store.Users().CreateUser(ctx, user); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.User{}, ErrEmailTaken
		}
		return domain.User{}, fmt.Errorf("signup: %w", err)
	}

	// Re-read so the caller sees the persisted timestamps.
	created, err := s.Store.Users().GetUserByID(ctx, user.ID)
	if err != nil {
		return domain.User{}, fmt.Errorf("signup: %w", err)
	}
	return created, nil
}

// Login re-derives the digest from the supplied password and the stored salt
// and, on a match, mints a signed session token. No token is ever issued
// before the password verifies.
func (s *AccountService) Login(ctx context.Context, email, password string) (domain.User, string, error) {
	log := slogx.FromContext(ctx)

	user, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Info("login rejected", "reason", "unknown_email")
			return domain.User{}, "", ErrInvalidCredentials
		}
		return domain.User{}, "", fmt.Errorf("login: %w", err)
	}

	if !cryptox.Verify(password, user.Salt, user.PasswordHash) {
		log.Info("login rejected", "reason", "bad_password", "user_id", user.ID)
		return domain.User{}, "", ErrInvalidCredentials
	}

	ttl := s.TokenTTL
	if ttl <= 0 {
		ttl = jwtx.DefaultTokenTTL
	}

	claims := jwtx.NewClaims(user.ID, user.Name, user.Email, ttl, s.Issuer, time.Now().UTC())
	token, err := s.Signer.Sign(claims)
	if err != nil {
		return domain.User{}, "", fmt.Errorf("login: sign token: %w", err)
	}

	return user, token, nil
}
