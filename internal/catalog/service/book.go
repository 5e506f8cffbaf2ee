package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/pagebound/pagebound/internal/catalog/domain"
	"github.com/pagebound/pagebound/internal/catalog/store"
	"github.com/pagebound/pagebound/pkg/idx"
)

var (
	ErrBookNotFound = errors.New("book_not_found")

	// ErrNotOwner is an authorization rejection, distinct from the
	// authentication rejections: the caller is who they say they are, they
	// just don't own the resource.
	ErrNotOwner = errors.New("not_owner")
)

// PublishInput carries the validated fields for a new listing. Publisher and
// picture are decided server-side.
type PublishInput struct {
	Title           string
	ISBN            string
	PublicationYear int
	Genre           string
	Price           float64
	Description     string
}

type BookService struct {
	Store store.Store
}

// Publish creates a published listing owned by publisherID.
func (s *BookService) Publish(ctx context.Context, publisherID string, in PublishInput) (domain.Book, error) {
	id := idx.New().String()
	book := domain.Book{
		ID:              id,
		Title:           in.Title,
		ISBN:            in.ISBN,
		PublicationYear: in.PublicationYear,
		Genre:           in.Genre,
		Price:           in.Price,
		Description:     in.Description,
		Picture:         "https://picsum.photos/450/600?random=" + id,
		PublisherID:     publisherID,
		Published:       true,
	}

	if err := s.Store.Books().CreateBook(ctx, book); err != nil {
		return domain.Book{}, fmt.Errorf("publish: %w", err)
	}

	created, err := s.Store.Books().GetBookByID(ctx, id)
	if err != nil {
		return domain.Book{}, fmt.Errorf("publish: %w", err)
	}
	return created, nil
}

// Unpublish withdraws a listing. Only the publisher may do this; the check
// happens regardless of how the caller authenticated.
func (s *BookService) Unpublish(ctx context.Context, callerID, bookID string) (domain.Book, error) {
	book, err := s.Store.Books().GetBookByID(ctx, bookID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Book{}, ErrBookNotFound
		}
		return domain.Book{}, fmt.Errorf("unpublish: %w", err)
	}

	if !book.OwnedBy(callerID) {
		return domain.Book{}, ErrNotOwner
	}

	if err := s.Store.Books().SetPublished(ctx, bookID, false); err != nil {
		return domain.Book{}, fmt.Errorf("unpublish: %w", err)
	}

	book.Published = false
	return book, nil
}

// ListMine returns the caller's own listings, newest first.
func (s *BookService) ListMine(ctx context.Context, publisherID string) ([]domain.Book, error) {
	return s.Store.Books().ListByPublisher(ctx, publisherID)
}

// ListPublished returns every published listing, newest first.
func (s *BookService) ListPublished(ctx context.Context) ([]domain.Book, error) {
	return s.Store.Books().ListPublished(ctx)
}

// Search returns listings whose title contains the query, newest first.
func (s *BookService) Search(ctx context.Context, title string) ([]domain.Book, error) {
	return s.Store.Books().SearchByTitle(ctx, title)
}
