// Package catalogsdk is a typed HTTP client for the Pagebound catalog
// service. The end-to-end tests are its first consumer, but it is written
// for anyone integrating against the API.
package catalogsdk

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client talks to the catalog service. It handles the unauthenticated
// endpoints and creates authenticated Sessions via Login.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient creates a catalog service client.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Signup creates a new account and returns the created user.
func (c *Client) Signup(ctx context.Context, req SignupRequest) (UserPayload, error) {
	var resp UserResponse
	err := c.doJSON(ctx, http.MethodPost, "/api/auth/signup", req, &resp, "")
	if err != nil {
		return UserPayload{}, err
	}
	return resp.Data, nil
}

// Login exchanges credentials for an authenticated Session.
func (c *Client) Login(ctx context.Context, email, password string) (*Session, error) {
	var resp LoginResponse
	err := c.doJSON(ctx, http.MethodPost, "/api/auth/login", LoginRequest{
		Email:    email,
		Password: password,
	}, &resp, "")
	if err != nil {
		return nil, err
	}

	return &Session{
		client: c,
		user:   resp.Data.UserPayload,
		token:  resp.Data.AccessToken,
	}, nil
}

// SearchBooks queries listings by title substring. Public, no session
// required.
func (c *Client) SearchBooks(ctx context.Context, title string) ([]BookPayload, error) {
	var resp BooksResponse
	path := "/api/books/search?title=" + url.QueryEscape(title)
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &resp, ""); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// Session is an authenticated client bound to one user's bearer token.
type Session struct {
	client *Client
	user   UserPayload
	token  string
}

// User returns the identity this session was minted for.
func (s *Session) User() UserPayload { return s.user }

// Token returns the raw bearer token, e.g. for storing across restarts.
func (s *Session) Token() string { return s.token }

// PublishBook creates a new published listing owned by the session user.
func (s *Session) PublishBook(ctx context.Context, req PublishBookRequest) (BookPayload, error) {
	var resp BookResponse
	err := s.client.doJSON(ctx, http.MethodPost, "/api/books/publish", req, &resp, s.token)
	if err != nil {
		return BookPayload{}, err
	}
	return resp.Data, nil
}

// UnpublishBook withdraws one of the session user's listings.
func (s *Session) UnpublishBook(ctx context.Context, bookID string) (BookPayload, error) {
	var resp BookResponse
	err := s.client.doJSON(ctx, http.MethodPut, "/api/books/unpublish/"+url.PathEscape(bookID), nil, &resp, s.token)
	if err != nil {
		return BookPayload{}, err
	}
	return resp.Data, nil
}

// MyBooks returns the session user's listings, newest first.
func (s *Session) MyBooks(ctx context.Context) ([]BookPayload, error) {
	var resp BooksResponse
	if err := s.client.doJSON(ctx, http.MethodGet, "/api/books/user", nil, &resp, s.token); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// PublishedBooks returns every published listing, newest first.
func (s *Session) PublishedBooks(ctx context.Context) ([]BookPayload, error) {
	var resp BooksResponse
	if err := s.client.doJSON(ctx, http.MethodGet, "/api/books/published", nil, &resp, s.token); err != nil {
		return nil, err
	}
	return resp.Data, nil
}
