package catalog_test

import (
	"net/http"
	"testing"

	"github.com/pagebound/pagebound/pkg/catalogsdk"
	"github.com/stretchr/testify/require"
)

func TestPublishAndListings(t *testing.T) {
	baseURL, cleanup := setupCatalogContainer(t)
	defer cleanup()

	client := catalogsdk.NewClient(baseURL)

	signupUser(t, client, "Alice Author", "alice@example.com")
	signupUser(t, client, "Bob Browser", "bob@example.com")

	alice := loginUser(t, client, "alice@example.com")
	bob := loginUser(t, client, "bob@example.com")

	publishBook(t, alice, "Distributed Systems")
	publishBook(t, alice, "Systems Performance")
	publishBook(t, bob, "Cooking for Gophers")

	// Per-user listing only contains the caller's books.
	mine, err := alice.MyBooks(t.Context())
	require.NoError(t, err)
	require.Len(t, mine, 2)
	require.Equal(t, "Systems Performance", mine[0].Title, "Listings are newest first")

	// The published listing spans all users.
	published, err := bob.PublishedBooks(t.Context())
	require.NoError(t, err)
	require.Len(t, published, 3)
}

func TestUnpublish_Ownership(t *testing.T) {
	baseURL, cleanup := setupCatalogContainer(t)
	defer cleanup()

	client := catalogsdk.NewClient(baseURL)

	signupUser(t, client, "Alice Author", "alice@example.com")
	signupUser(t, client, "Mallory", "mallory@example.com")

	alice := loginUser(t, client, "alice@example.com")
	mallory := loginUser(t, client, "mallory@example.com")

	book := publishBook(t, alice, "Keep Off")

	// A valid token for a different user is not enough.
	_, err := mallory.UnpublishBook(t.Context(), book.ID)
	assertAPIError(t, err, http.StatusForbidden, "Non-owner unpublish should be forbidden")

	// Still published after the rejected attempt.
	published, err := alice.PublishedBooks(t.Context())
	require.NoError(t, err)
	require.Len(t, published, 1)

	got, err := alice.UnpublishBook(t.Context(), book.ID)
	require.NoError(t, err)
	require.False(t, got.Published)

	// Unpublished books drop out of the public listing.
	published, err = alice.PublishedBooks(t.Context())
	require.NoError(t, err)
	require.Empty(t, published)
}

func TestSearch_Public(t *testing.T) {
	baseURL, cleanup := setupCatalogContainer(t)
	defer cleanup()

	client := catalogsdk.NewClient(baseURL)

	signupUser(t, client, "Alice Author", "alice@example.com")
	alice := loginUser(t, client, "alice@example.com")

	publishBook(t, alice, "The Go Programming Language")
	publishBook(t, alice, "Learning Go")
	book := publishBook(t, alice, "Unrelated Title")

	// Search requires no token at all.
	found, err := client.SearchBooks(t.Context(), "Go")
	require.NoError(t, err)
	require.Len(t, found, 2)

	// Unpublished books are invisible to search.
	_, err = alice.UnpublishBook(t.Context(), book.ID)
	require.NoError(t, err)
	found, err = client.SearchBooks(t.Context(), "Unrelated")
	require.NoError(t, err)
	require.Empty(t, found)
}
