package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/pagebound/pagebound/internal/catalog/domain"
	"github.com/pagebound/pagebound/internal/catalog/store"
)

type booksRepo struct {
	db dbtx
}

const bookColumns = `id, title, isbn, publication_year, genre, price, description,
	picture, publisher_id, published, created_at, updated_at`

func (r *booksRepo) CreateBook(ctx context.Context, b domain.Book) error {
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO books (id, title, isbn, publication_year, genre, price,
			description, picture, publisher_id, published, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		b.ID, b.Title, b.ISBN, b.PublicationYear, b.Genre, b.Price,
		b.Description, b.Picture, b.PublisherID, b.Published, now, now,
	)
	return mapConstraint(err)
}

func (r *booksRepo) GetBookByID(ctx context.Context, id string) (domain.Book, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+bookColumns+` FROM books WHERE id = ?`, id)

	var b domain.Book
	err := row.Scan(&b.ID, &b.Title, &b.ISBN, &b.PublicationYear, &b.Genre,
		&b.Price, &b.Description, &b.Picture, &b.PublisherID, &b.Published,
		&b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return domain.Book{}, mapNotFound(err)
	}
	return b, nil
}

func (r *booksRepo) SetPublished(ctx context.Context, bookID string, published bool) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE books SET published = ?, updated_at = ? WHERE id = ?`,
		published, time.Now().UTC(), bookID,
	)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *booksRepo) ListByPublisher(ctx context.Context, publisherID string) ([]domain.Book, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+bookColumns+` FROM books WHERE publisher_id = ? ORDER BY created_at DESC, id DESC`,
		publisherID)
	if err != nil {
		return nil, err
	}
	return collectBooks(rows)
}

func (r *booksRepo) ListPublished(ctx context.Context) ([]domain.Book, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+bookColumns+` FROM books WHERE published = 1 ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	return collectBooks(rows)
}

func (r *booksRepo) SearchByTitle(ctx context.Context, title string) ([]domain.Book, error) {
	// ESCAPE so a literal % or _ in the query doesn't act as a wildcard.
	pattern := "%" + escapeLike(title) + "%"
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+bookColumns+` FROM books WHERE title LIKE ? ESCAPE '\'
		 ORDER BY created_at DESC, id DESC`, pattern)
	if err != nil {
		return nil, err
	}
	return collectBooks(rows)
}

func collectBooks(rows *sql.Rows) ([]domain.Book, error) {
	defer rows.Close()

	books := make([]domain.Book, 0)
	for rows.Next() {
		var b domain.Book
		err := rows.Scan(&b.ID, &b.Title, &b.ISBN, &b.PublicationYear, &b.Genre,
			&b.Price, &b.Description, &b.Picture, &b.PublisherID, &b.Published,
			&b.CreatedAt, &b.UpdatedAt)
		if err != nil {
			return nil, err
		}
		books = append(books, b)
	}
	return books, rows.Err()
}

func escapeLike(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '%', '_', '\\':
			out = append(out, '\\')
		}
		out = append(out, s[i])
	}
	return string(out)
}
