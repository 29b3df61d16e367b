package usecase

import "errors"

// The five recoverable failure kinds of the lending core, plus the catalog
// delete guard. Handlers translate each into a distinct HTTP response;
// nothing here is ever a fatal abort.
var (
	ErrNotFound          = errors.New("not found")
	ErrInvalidRequest    = errors.New("invalid request")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrBorrowerLocked    = errors.New("borrower locked")
	ErrAlreadyReturned   = errors.New("transaction already returned")
	ErrOutstandingLoans  = errors.New("book has outstanding loans")
)
