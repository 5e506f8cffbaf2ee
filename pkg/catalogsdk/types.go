package catalogsdk

import "time"

// Envelope statuses used by every endpoint.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// ============================================================================
// Request Types
// ============================================================================

// SignupRequest creates a new user account.
type SignupRequest struct {
	// Name is the optional display name (3-255 chars when present).
	Name string `json:"name,omitempty"`

	// Email is the unique login identifier.
	Email string `json:"email"`

	// Password is the plaintext password (8-255 chars). It is hashed
	// server-side and never stored.
	Password string `json:"password"`
}

// LoginRequest exchanges credentials for a bearer token.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// PublishBookRequest creates a new published listing. The publisher is taken
// from the bearer token, never from the body.
type PublishBookRequest struct {
	Title           string  `json:"title"`
	ISBN            string  `json:"isbn"`
	PublicationYear int     `json:"publication_year"`
	Genre           string  `json:"genre"`
	Price           float64 `json:"price"`
	Description     string  `json:"description"`
}

// ============================================================================
// Payload Types
// ============================================================================

// UserPayload is the public view of a user. Salt and digest never appear
// here.
type UserPayload struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LoginPayload is UserPayload plus the minted session token.
type LoginPayload struct {
	UserPayload

	// AccessToken is the compact signed token to present as
	// "Authorization: Bearer <token>" on protected routes.
	AccessToken string `json:"access_token"`
}

// BookPayload is the public view of a listing.
type BookPayload struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	ISBN            string    `json:"isbn"`
	PublicationYear int       `json:"publication_year"`
	Genre           string    `json:"genre"`
	Price           float64   `json:"price"`
	Description     string    `json:"description"`
	Picture         string    `json:"picture"`
	PublisherID     string    `json:"publisher_id"`
	Published       bool      `json:"published"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// ============================================================================
// Response Envelopes
// ============================================================================

type UserResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message"`
	Data    UserPayload `json:"data"`
}

type LoginResponse struct {
	Status  string       `json:"status"`
	Message string       `json:"message"`
	Data    LoginPayload `json:"data"`
}

type BookResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message"`
	Data    BookPayload `json:"data"`
}

type BooksResponse struct {
	Status  string        `json:"status"`
	Message string        `json:"message"`
	Data    []BookPayload `json:"data"`
}

// ErrorResponse is the uniform failure envelope. Data is always null.
type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

// ============================================================================
// Health Types
// ============================================================================

// HealthChecks reports the state of each critical dependency.
type HealthChecks struct {
	Database string `json:"database"`
}

// HealthResponse is returned by the /livez and /readyz probes.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}
