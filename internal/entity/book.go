package entity

import "time"

// Book statuses derived from the quantity on hand.
const (
	BookStatusAvailable = "available"
	BookStatusBorrowed  = "borrowed"
)

// Book is a catalog record. Quantity is the number of copies currently
// available for lending; it is decremented by borrows, incremented by
// returns, and overwritten by admin edits.
type Book struct {
	ID            string    `json:"book_id"`
	Title         string    `json:"title"`
	Author        string    `json:"author"`
	Genre         string    `json:"genre,omitempty"`
	PublishedYear int       `json:"published_year,omitempty"`
	Quantity      int       `json:"quantity"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Status reports "available" while at least one copy is on the shelf.
func (b Book) Status() string {
	if b.Quantity > 0 {
		return BookStatusAvailable
	}
	return BookStatusBorrowed
}
