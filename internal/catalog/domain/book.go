package domain

import "time"

type Book struct {
	ID              string
	Title           string
	ISBN            string
	PublicationYear int
	Genre           string
	Price           float64
	Description     string
	Picture         string
	PublisherID     string // user ID of whoever published the listing
	Published       bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// OwnedBy reports whether subjectID is the publisher of this book. Pure
// comparison, no I/O; owner-scoped mutations gate on this.
func (b Book) OwnedBy(subjectID string) bool {
	return subjectID != "" && b.PublisherID == subjectID
}
