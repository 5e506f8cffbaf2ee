package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/pagebound/pagebound/internal/catalog/domain"
	"github.com/pagebound/pagebound/internal/catalog/service"
	"github.com/pagebound/pagebound/pkg/catalogsdk"
	"github.com/pagebound/pagebound/pkg/httpx"
	"github.com/pagebound/pagebound/pkg/slogx"
)

type BooksHandler struct {
	BookService *service.BookService
}

type publishBookRequest struct {
	Title           string  `json:"title"            validate:"required,min=1,max=100"`
	ISBN            string  `json:"isbn"             validate:"required,max=14"`
	PublicationYear int     `json:"publication_year" validate:"required,gte=1900"`
	Genre           string  `json:"genre"            validate:"required,max=100"`
	Price           float64 `json:"price"            validate:"gte=0"`
	Description     string  `json:"description"      validate:"max=10000"`
}

// HandlePublish godoc
//
//	@Summary		Publish Book Endpoint
//	@Description	Create a new published listing owned by the authenticated user.
//	@Tags			Books
//	@Accept			json
//	@Produce		json
//	@Param			request	body		catalogsdk.PublishBookRequest	true	"book fields"
//	@Success		201		{object}	catalogsdk.BookResponse			"created listing"
//	@Failure		400		{object}	catalogsdk.ErrorResponse		"validation failed"
//	@Failure		401		{object}	catalogsdk.ErrorResponse		"authentication required"
//	@Security		BearerAuth
//	@Router			/api/books/publish [post].
func (h *BooksHandler) HandlePublish(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req publishBookRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	// Upper bound is the current year, which validator tags can't express.
	if req.PublicationYear > time.Now().Year() {
		writeError(w, http.StatusBadRequest, "validation failed")
		return
	}

	book, err := h.BookService.Publish(ctx, httpx.UserIDFromCtx(ctx), service.PublishInput{
		Title:           req.Title,
		ISBN:            req.ISBN,
		PublicationYear: req.PublicationYear,
		Genre:           req.Genre,
		Price:           req.Price,
		Description:     req.Description,
	})
	if err != nil {
		log.Error("publish failed", "err", err)
		writeError(w, http.StatusInternalServerError, "something went wrong while publishing book")
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, catalogsdk.BookResponse{
		Status:  catalogsdk.StatusSuccess,
		Message: "Book published successfully",
		Data:    bookPayload(book),
	})
}

// HandleUnpublish godoc
//
//	@Summary		Unpublish Book Endpoint
//	@Description	Withdraw a listing. Only the publisher of the book may do this;
//	@Description	any other authenticated caller gets a 403.
//	@Tags			Books
//	@Produce		json
//	@Param			bookID	path		string						true	"book id"
//	@Success		200		{object}	catalogsdk.BookResponse		"withdrawn listing"
//	@Failure		401		{object}	catalogsdk.ErrorResponse	"authentication required"
//	@Failure		403		{object}	catalogsdk.ErrorResponse	"not the publisher"
//	@Failure		404		{object}	catalogsdk.ErrorResponse	"book not found"
//	@Security		BearerAuth
//	@Router			/api/books/unpublish/{bookID} [put].
func (h *BooksHandler) HandleUnpublish(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	callerID := httpx.UserIDFromCtx(ctx)
	bookID := r.PathValue("bookID")

	book, err := h.BookService.Unpublish(ctx, callerID, bookID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrBookNotFound):
			writeError(w, http.StatusNotFound, "book not found")
		case errors.Is(err, service.ErrNotOwner):
			log.Warn("unpublish forbidden", "caller_id", callerID, "book_id", bookID)
			writeError(w, http.StatusForbidden, "only the publisher can unpublish a book")
		default:
			log.Error("unpublish failed", "err", err)
			writeError(w, http.StatusInternalServerError, "something went wrong while unpublishing book")
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, catalogsdk.BookResponse{
		Status:  catalogsdk.StatusSuccess,
		Message: "Book unpublished successfully",
		Data:    bookPayload(book),
	})
}

// HandleMine godoc
//
//	@Summary		Own Listings Endpoint
//	@Description	List the authenticated user's books, newest first, published or not.
//	@Tags			Books
//	@Produce		json
//	@Success		200	{object}	catalogsdk.BooksResponse	"own listings"
//	@Failure		401	{object}	catalogsdk.ErrorResponse	"authentication required"
//	@Security		BearerAuth
//	@Router			/api/books/user [get].
func (h *BooksHandler) HandleMine(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	books, err := h.BookService.ListMine(ctx, httpx.UserIDFromCtx(ctx))
	if err != nil {
		slogx.FromContext(ctx).Error("list own books failed", "err", err)
		writeError(w, http.StatusInternalServerError, "something went wrong while fetching books")
		return
	}

	writeBooks(w, books)
}

// HandlePublished godoc
//
//	@Summary		Published Listings Endpoint
//	@Description	List every published book, newest first.
//	@Tags			Books
//	@Produce		json
//	@Success		200	{object}	catalogsdk.BooksResponse	"published listings"
//	@Failure		401	{object}	catalogsdk.ErrorResponse	"authentication required"
//	@Security		BearerAuth
//	@Router			/api/books/published [get].
func (h *BooksHandler) HandlePublished(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	books, err := h.BookService.ListPublished(ctx)
	if err != nil {
		slogx.FromContext(ctx).Error("list published books failed", "err", err)
		writeError(w, http.StatusInternalServerError, "something went wrong while fetching books")
		return
	}

	writeBooks(w, books)
}

// HandleSearch godoc
//
//	@Summary		Search Endpoint
//	@Description	Search listings by title substring. Public, no token required.
//	@Tags			Books
//	@Produce		json
//	@Param			title	query		string						true	"title substring"
//	@Success		200		{object}	catalogsdk.BooksResponse	"matching listings"
//	@Failure		400		{object}	catalogsdk.ErrorResponse	"missing title parameter"
//	@Router			/api/books/search [get].
func (h *BooksHandler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if !r.URL.Query().Has("title") {
		writeError(w, http.StatusBadRequest, "title query parameter is required")
		return
	}

	books, err := h.BookService.Search(ctx, r.URL.Query().Get("title"))
	if err != nil {
		slogx.FromContext(ctx).Error("search books failed", "err", err)
		writeError(w, http.StatusInternalServerError, "something went wrong while fetching books")
		return
	}

	writeBooks(w, books)
}

func writeBooks(w http.ResponseWriter, books []domain.Book) {
	httpx.WriteJSON(w, http.StatusOK, catalogsdk.BooksResponse{
		Status:  catalogsdk.StatusSuccess,
		Message: "Books fetched successfully",
		Data:    bookPayloads(books),
	})
}
