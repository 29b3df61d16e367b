package http

import (
	"errors"
	"log"
	"net/http"

	"lendingapi/internal/usecase"
)

// writeCoreError maps the core's failure kinds onto distinct HTTP responses.
// Every kind gets its own code and message; nothing falls through to a
// generic failure except genuine internal errors.
func writeCoreError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, usecase.ErrInvalidRequest):
		JSONError(w, http.StatusBadRequest, "INVALID_REQUEST", "Quantity or return date is invalid", nil)
	case errors.Is(err, usecase.ErrNotFound):
		JSONError(w, http.StatusNotFound, "NOT_FOUND", "Book or transaction not found", nil)
	case errors.Is(err, usecase.ErrInsufficientStock):
		JSONError(w, http.StatusConflict, "INSUFFICIENT_STOCK", "Requested quantity exceeds the available copies", nil)
	case errors.Is(err, usecase.ErrBorrowerLocked):
		JSONError(w, http.StatusLocked, "BORROWER_LOCKED", "Account is locked due to unreturned books. Please return books to unlock.", nil)
	case errors.Is(err, usecase.ErrAlreadyReturned):
		JSONError(w, http.StatusConflict, "ALREADY_RETURNED", "This transaction has already been returned", nil)
	case errors.Is(err, usecase.ErrOutstandingLoans):
		JSONError(w, http.StatusConflict, "OUTSTANDING_LOANS", "Book still has unreturned loans and cannot be deleted", nil)
	default:
		log.Printf("internal error: %v", err)
		JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "An internal error occurred", nil)
	}
}
