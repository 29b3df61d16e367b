package entity

import "time"

// BorrowTransaction is one entry in the lending ledger. Entries are
// append-only: a transaction is created by a successful borrow and mutated
// exactly once, by the matching return. BookTitle is denormalized at borrow
// time so the audit trail survives catalog deletes.
type BorrowTransaction struct {
	ID         string     `json:"borrow_id"`
	Username   string     `json:"username"`
	BookID     string     `json:"book_id"`
	BookTitle  string     `json:"title"`
	Quantity   int        `json:"quantity"`
	BorrowDate time.Time  `json:"borrow_date"`
	DueDate    time.Time  `json:"return_date"`
	Returned   bool       `json:"is_returned"`
	ReturnedAt *time.Time `json:"returned_at,omitempty"`
}

// Overdue reports whether the loan is still open past its due date.
// Computed on read against the caller's clock, never persisted.
func (t BorrowTransaction) Overdue(now time.Time) bool {
	return !t.Returned && now.After(t.DueDate)
}
