package store

import (
	"context"
	"errors"

	"github.com/pagebound/pagebound/internal/catalog/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite for now)
// implement this. It exposes sub-repositories to keep concerns tidy and
// testable.
type Store interface {
	Users() Users
	Books() Books

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes a function within a transaction.
	// If fn returns an error, the transaction is rolled back, otherwise
	// it is committed. This is the recommended way to handle transactions.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// CreateUser inserts a new user (id is provided by app via ULID).
	// Returns ErrAlreadyExists if the email is taken.
	CreateUser(ctx context.Context, u domain.User) error

	// GetUserByID returns a user by id.
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByEmail is used during login; the returned record carries the
	// stored salt and digest.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)
}

type Books interface {
	// CreateBook inserts a new book listing (id is provided by app via ULID).
	CreateBook(ctx context.Context, b domain.Book) error

	// GetBookByID returns a book by id.
	GetBookByID(ctx context.Context, id string) (domain.Book, error)

	// SetPublished flips the published flag and bumps updated_at.
	SetPublished(ctx context.Context, bookID string, published bool) error

	// ListByPublisher returns every book owned by publisherID, newest first.
	ListByPublisher(ctx context.Context, publisherID string) ([]domain.Book, error)

	// ListPublished returns every published book, newest first.
	ListPublished(ctx context.Context) ([]domain.Book, error)

	// SearchByTitle returns books whose title contains the substring,
	// newest first. Matches regardless of published state, like the
	// public search endpoint expects.
	SearchByTitle(ctx context.Context, title string) ([]domain.Book, error)
}
