package service_test

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/pagebound/pagebound/internal/catalog/service"
	"github.com/pagebound/pagebound/internal/catalog/store/drivers/sqlite"
	"github.com/pagebound/pagebound/pkg/jwtx"
)

const (
	testSecret = "service-test-secret"
	testIssuer = "pagebound-test"
)

func newTestStore(t *testing.T) *sqlite.Store {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?_busy_timeout=5000", filepath.Join(t.TempDir(), "test.db"))
	s, err := sqlite.NewStore(dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	require.NoError(t, s.ApplyMigrations())
	return s
}

func newAccountService(t *testing.T) *service.AccountService {
	t.Helper()

	signer, err := jwtx.NewSignerHS256(testSecret)
	require.NoError(t, err)

	return &service.AccountService{
		Store:    newTestStore(t),
		Signer:   signer,
		Issuer:   testIssuer,
		TokenTTL: time.Hour,
	}
}

func TestSignup(t *testing.T) {
	svc := newAccountService(t)
	ctx := context.Background()

	user, err := svc.Signup(ctx, "Ada", "a@x.com", "longenough1")
	require.NoError(t, err)
	require.NotEmpty(t, user.ID)
	require.Equal(t, "a@x.com", user.Email)
	require.NotEmpty(t, user.Salt)
	require.NotEmpty(t, user.PasswordHash)
	require.NotEqual(t, "longenough1", user.PasswordHash, "plaintext must never be stored")
	require.False(t, user.CreatedAt.IsZero())
}

func TestSignup_DuplicateEmail(t *testing.T) {
	svc := newAccountService(t)
	ctx := context.Background()

	_, err := svc.Signup(ctx, "Ada", "a@x.com", "longenough1")
	require.NoError(t, err)

	_, err = svc.Signup(ctx, "Eve", "a@x.com", "otherpassword")
	require.ErrorIs(t, err, service.ErrEmailTaken)
}

func TestSignup_SaltsDiffer(t *testing.T) {
	svc := newAccountService(t)
	ctx := context.Background()

	u1, err := svc.Signup(ctx, "", "one@x.com", "samepassword")
	require.NoError(t, err)
	u2, err := svc.Signup(ctx, "", "two@x.com", "samepassword")
	require.NoError(t, err)

	require.NotEqual(t, u1.Salt, u2.Salt)
	require.NotEqual(t, u1.PasswordHash, u2.PasswordHash,
		"same password with different salts must produce different digests")
}

func TestLogin(t *testing.T) {
	svc := newAccountService(t)
	ctx := context.Background()

	created, err := svc.Signup(ctx, "Ada", "a@x.com", "longenough1")
	require.NoError(t, err)

	user, token, err := svc.Login(ctx, "a@x.com", "longenough1")
	require.NoError(t, err)
	require.Equal(t, created.ID, user.ID)
	require.NotEmpty(t, token)

	// The minted token carries the user's identity and verifies against the
	// same secret.
	verifier, err := jwtx.NewVerifierHS256(testSecret, jwtx.VerifyOptions{Issuer: testIssuer})
	require.NoError(t, err)

	claims, err := verifier.Verify(token)
	require.NoError(t, err)
	require.Equal(t, created.ID, claims.Subject)
	require.Equal(t, "Ada", claims.Name)
	require.Equal(t, "a@x.com", claims.Email)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc := newAccountService(t)
	ctx := context.Background()

	_, err := svc.Signup(ctx, "Ada", "a@x.com", "longenough1")
	require.NoError(t, err)

	_, token, err := svc.Login(ctx, "a@x.com", "wrongpassword")
	require.ErrorIs(t, err, service.ErrInvalidCredentials)
	require.Empty(t, token, "no token may be issued before the password verifies")
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc := newAccountService(t)
	ctx := context.Background()

	_, _, wrongEmail := svc.Login(ctx, "nobody@x.com", "whatever123")
	require.ErrorIs(t, wrongEmail, service.ErrInvalidCredentials)

	// Unknown email and wrong password collapse to the same rejection kind.
	_, err := svc.Signup(ctx, "", "a@x.com", "longenough1")
	require.NoError(t, err)
	_, _, wrongPassword := svc.Login(ctx, "a@x.com", "wrongpassword")
	require.Equal(t, wrongEmail, wrongPassword)
}
