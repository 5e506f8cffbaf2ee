package http

import (
	"github.com/pagebound/pagebound/internal/catalog/domain"
	"github.com/pagebound/pagebound/pkg/catalogsdk"
)

func userPayload(u domain.User) catalogsdk.UserPayload {
	return catalogsdk.UserPayload{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func bookPayload(b domain.Book) catalogsdk.BookPayload {
	return catalogsdk.BookPayload{
		ID:              b.ID,
		Title:           b.Title,
		ISBN:            b.ISBN,
		PublicationYear: b.PublicationYear,
		Genre:           b.Genre,
		Price:           b.Price,
		Description:     b.Description,
		Picture:         b.Picture,
		PublisherID:     b.PublisherID,
		Published:       b.Published,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}

func bookPayloads(books []domain.Book) []catalogsdk.BookPayload {
	out := make([]catalogsdk.BookPayload, 0, len(books))
	for _, b := range books {
		out = append(out, bookPayload(b))
	}
	return out
}
