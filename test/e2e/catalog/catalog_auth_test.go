package catalog_test

import (
	"net/http"
	"testing"

	"github.com/pagebound/pagebound/pkg/catalogsdk"
	"github.com/stretchr/testify/require"
)

// TestSignupAndLogin covers the full account lifecycle: create an account,
// exchange credentials for a token, and use that token against a
// protected route whose response identifies the same user.
func TestSignupAndLogin(t *testing.T) {
	baseURL, cleanup := setupCatalogContainer(t)
	defer cleanup()

	client := catalogsdk.NewClient(baseURL)

	created := signupUser(t, client, "Alice Author", "alice@example.com")
	session := loginUser(t, client, "alice@example.com")
	require.Equal(t, created.ID, session.User().ID)
	require.Equal(t, created.Email, session.User().Email)

	book := publishBook(t, session, "My First Book")
	require.Equal(t, created.ID, book.PublisherID, "Token subject should own the listing")
}

func TestSignup_DuplicateEmail(t *testing.T) {
	baseURL, cleanup := setupCatalogContainer(t)
	defer cleanup()

	client := catalogsdk.NewClient(baseURL)

	signupUser(t, client, "Alice Author", "alice@example.com")

	_, err := client.Signup(t.Context(), catalogsdk.SignupRequest{
		Name:     "Impostor",
		Email:    "alice@example.com",
		Password: testPassword,
	})
	assertAPIError(t, err, http.StatusConflict, "Duplicate email should be rejected")
}

func TestLogin_BadCredentials(t *testing.T) {
	baseURL, cleanup := setupCatalogContainer(t)
	defer cleanup()

	client := catalogsdk.NewClient(baseURL)

	signupUser(t, client, "Alice Author", "alice@example.com")

	// Wrong password never yields a token.
	_, err := client.Login(t.Context(), "alice@example.com", "WrongPassword1")
	wrongPass := assertAPIError(t, err, http.StatusUnauthorized, "Wrong password should be rejected")

	// Unknown email is externally indistinguishable from a wrong password.
	_, err = client.Login(t.Context(), "nobody@example.com", testPassword)
	unknown := assertAPIError(t, err, http.StatusUnauthorized, "Unknown email should be rejected")

	require.Equal(t, wrongPass.Message, unknown.Message)
}
