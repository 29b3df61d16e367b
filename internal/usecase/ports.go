package usecase

import (
	"context"
	"time"

	"lendingapi/internal/entity"
)

// InventoryStore holds catalog records and their available quantity.
type InventoryStore interface {
	GetBook(ctx context.Context, id string) (entity.Book, error)
	ListBooks(ctx context.Context) ([]entity.Book, error)
	CreateBook(ctx context.Context, b entity.Book) (entity.Book, error)
	// UpdateBook overwrites title, author, genre, published year and quantity.
	// An admin edit to quantity while loans are outstanding redefines
	// availability; the edit is taken at face value.
	UpdateBook(ctx context.Context, b entity.Book) (entity.Book, error)
	// DeleteBook fails with ErrOutstandingLoans while any open loan still
	// references the book.
	DeleteBook(ctx context.Context, id string) error
	// AdjustQuantity applies delta atomically with respect to concurrent
	// callers on the same book. ErrInsufficientStock if the result would
	// go negative.
	AdjustQuantity(ctx context.Context, id string, delta int) (entity.Book, error)
}

// LedgerStore holds the append-only borrow transaction records.
type LedgerStore interface {
	// Append stores tx, assigning an ID when none is set.
	Append(ctx context.Context, tx entity.BorrowTransaction) (entity.BorrowTransaction, error)
	Get(ctx context.Context, id string) (entity.BorrowTransaction, error)
	// ListByUser returns the user's transactions ordered by borrow date ascending.
	ListByUser(ctx context.Context, username string) ([]entity.BorrowTransaction, error)
	ListAll(ctx context.Context) ([]entity.BorrowTransaction, error)
	// CountOutstanding counts the user's transactions with Returned == false.
	CountOutstanding(ctx context.Context, username string) (int, error)
	// MarkReturned flips the returned flag and stamps the return time.
	// ErrAlreadyReturned if the flag is already set; a return is never
	// applied twice.
	MarkReturned(ctx context.Context, id string, at time.Time) (entity.BorrowTransaction, error)
}

// LendingStore is the transactional store the lending service operates on.
// Borrow and Return pair the two mutations of a lending event so that both
// commit or neither does, and serialize per book: concurrent calls against
// the same book observe each other's post-state, while different books
// proceed in parallel.
type LendingStore interface {
	InventoryStore
	LedgerStore

	// Borrow decrements the book's quantity by tx.Quantity and appends tx
	// in one atomic unit. ErrNotFound if the book is absent,
	// ErrInsufficientStock if fewer copies are available than requested.
	// The stored transaction carries the book title as of borrow time.
	Borrow(ctx context.Context, tx entity.BorrowTransaction) (entity.BorrowTransaction, error)

	// Return marks the transaction returned at the given time and restores
	// the book's quantity by the borrowed amount in one atomic unit.
	Return(ctx context.Context, id string, at time.Time) (entity.BorrowTransaction, error)
}
