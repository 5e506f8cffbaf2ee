package sqlite

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pagebound/pagebound/internal/catalog/domain"
	"github.com/pagebound/pagebound/internal/catalog/store"
	"github.com/pagebound/pagebound/pkg/idx"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?_busy_timeout=5000", filepath.Join(t.TempDir(), "test.db"))
	s, err := NewStore(dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.ApplyMigrations())
	return s
}

func testUser(email string) domain.User {
	return domain.User{
		ID:           idx.New().String(),
		Name:         "Test User",
		Email:        email,
		Salt:         "aabb",
		PasswordHash: "ccdd",
	}
}

func TestUsers_CreateAndGet(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	u := testUser("a@x.com")
	require.NoError(t, s.Users().CreateUser(ctx, u))

	byID, err := s.Users().GetUserByID(ctx, u.ID)
	require.NoError(t, err)
	require.Equal(t, u.Email, byID.Email)
	require.Equal(t, u.Salt, byID.Salt)
	require.Equal(t, u.PasswordHash, byID.PasswordHash)
	require.False(t, byID.CreatedAt.IsZero())

	byEmail, err := s.Users().GetUserByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	require.Equal(t, u.ID, byEmail.ID)
}

func TestUsers_DuplicateEmail(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Users().CreateUser(ctx, testUser("dup@x.com")))

	err := s.Users().CreateUser(ctx, testUser("dup@x.com"))
	require.ErrorIs(t, err, store.ErrAlreadyExists)
}

func TestUsers_NotFound(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.Users().GetUserByEmail(ctx, "nobody@x.com")
	require.ErrorIs(t, err, store.ErrNotFound)

	_, err = s.Users().GetUserByID(ctx, idx.New().String())
	require.ErrorIs(t, err, store.ErrNotFound)
}

func createBook(t *testing.T, s *Store, publisherID, title string, published bool) domain.Book {
	t.Helper()
	b := domain.Book{
		ID:              idx.New().String(),
		Title:           title,
		ISBN:            "978-3-16-1484",
		PublicationYear: 2020,
		Genre:           "fiction",
		Price:           9.99,
		Description:     "a book",
		Picture:         "https://example.com/cover.jpg",
		PublisherID:     publisherID,
		Published:       published,
	}
	require.NoError(t, s.Books().CreateBook(context.Background(), b))
	return b
}

func TestBooks_CreateAndGet(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	u := testUser("author@x.com")
	require.NoError(t, s.Users().CreateUser(ctx, u))

	b := createBook(t, s, u.ID, "The Go Programming Language", true)

	got, err := s.Books().GetBookByID(ctx, b.ID)
	require.NoError(t, err)
	require.Equal(t, b.Title, got.Title)
	require.Equal(t, u.ID, got.PublisherID)
	require.True(t, got.Published)
	require.InDelta(t, 9.99, got.Price, 0.001)
}

func TestBooks_SetPublished(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	u := testUser("author@x.com")
	require.NoError(t, s.Users().CreateUser(ctx, u))
	b := createBook(t, s, u.ID, "Unpublish Me", true)

	require.NoError(t, s.Books().SetPublished(ctx, b.ID, false))

	got, err := s.Books().GetBookByID(ctx, b.ID)
	require.NoError(t, err)
	require.False(t, got.Published)

	err = s.Books().SetPublished(ctx, idx.New().String(), false)
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestBooks_Listings(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	alice := testUser("alice@x.com")
	bob := testUser("bob@x.com")
	require.NoError(t, s.Users().CreateUser(ctx, alice))
	require.NoError(t, s.Users().CreateUser(ctx, bob))

	first := createBook(t, s, alice.ID, "First", true)
	second := createBook(t, s, alice.ID, "Second", false)
	other := createBook(t, s, bob.ID, "Other", true)

	mine, err := s.Books().ListByPublisher(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, mine, 2)
	// Newest first.
	require.Equal(t, second.ID, mine[0].ID)
	require.Equal(t, first.ID, mine[1].ID)

	published, err := s.Books().ListPublished(ctx)
	require.NoError(t, err)
	require.Len(t, published, 2)
	for _, b := range published {
		require.True(t, b.Published)
		require.NotEqual(t, second.ID, b.ID)
	}
	_ = other
}

func TestBooks_SearchByTitle(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	u := testUser("author@x.com")
	require.NoError(t, s.Users().CreateUser(ctx, u))

	createBook(t, s, u.ID, "Effective Go", true)
	createBook(t, s, u.ID, "Go in Action", false)
	createBook(t, s, u.ID, "100% Rustacean", true)

	got, err := s.Books().SearchByTitle(ctx, "Go")
	require.NoError(t, err)
	require.Len(t, got, 2)

	// Search spans published and unpublished listings.
	got, err = s.Books().SearchByTitle(ctx, "Action")
	require.NoError(t, err)
	require.Len(t, got, 1)

	// LIKE metacharacters are literals, not wildcards.
	got, err = s.Books().SearchByTitle(ctx, "100%")
	require.NoError(t, err)
	require.Len(t, got, 1)
	got, err = s.Books().SearchByTitle(ctx, "%")
	require.NoError(t, err)
	require.Len(t, got, 1)

	got, err = s.Books().SearchByTitle(ctx, "nomatch")
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestWithTx(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	u := testUser("tx@x.com")
	err := s.WithTx(ctx, func(tx store.Tx) error {
		return tx.Users().CreateUser(ctx, u)
	})
	require.NoError(t, err)

	_, err = s.Users().GetUserByID(ctx, u.ID)
	require.NoError(t, err)

	// A failing fn rolls everything back.
	boom := fmt.Errorf("boom")
	other := testUser("rollback@x.com")
	err = s.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Users().CreateUser(ctx, other); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	_, err = s.Users().GetUserByEmail(ctx, "rollback@x.com")
	require.ErrorIs(t, err, store.ErrNotFound)
}
