package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"lendingapi/internal/entity"
	"lendingapi/internal/usecase"
)

// Borrow decrements the book's stock and appends the ledger entry in one
// database transaction. The FOR UPDATE on the book row serializes borrows
// per book: the second of two racers for the last copy blocks until the
// first commits, then sees zero stock and fails.
func (s *Postgres) Borrow(ctx context.Context, t entity.BorrowTransaction) (entity.BorrowTransaction, error) {
	var stored entity.BorrowTransaction
	err := s.withTx(ctx, func(tx pgx.Tx) error {
		var title string
		var available int
		err := tx.QueryRow(ctx, `SELECT title, quantity FROM books WHERE id = $1 FOR UPDATE`, t.BookID).
			Scan(&title, &available)
		if isNoRows(err) {
			return usecase.ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("lock book: %w", err)
		}
		if t.Quantity > available {
			return usecase.ErrInsufficientStock
		}

		if _, err := tx.Exec(ctx,
			`UPDATE books SET quantity = quantity - $2, updated_at = NOW() WHERE id = $1`,
			t.BookID, t.Quantity); err != nil {
			return fmt.Errorf("decrement stock: %w", err)
		}

		t.ID = uuid.New().String()
		t.BookTitle = title
		t.Returned = false
		t.ReturnedAt = nil
		stored, err = scanTransaction(tx.QueryRow(ctx, `
		INSERT INTO transactions (id, username, book_id, book_title, quantity, borrow_date, due_date, returned, returned_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, FALSE, NULL)
		RETURNING id, username, book_id, book_title, quantity, borrow_date, due_date, returned, returned_at`,
			t.ID, t.Username, t.BookID, t.BookTitle, t.Quantity, t.BorrowDate, t.DueDate))
		if err != nil {
			return fmt.Errorf("append transaction: %w", err)
		}
		return nil
	})
	if err != nil {
		return entity.BorrowTransaction{}, err
	}
	return stored, nil
}

// Return closes the transaction and restores the book's stock in one
// database transaction, locking the book row the same way Borrow does.
func (s *Postgres) Return(ctx context.Context, id string, at time.Time) (entity.BorrowTransaction, error) {
	var closed entity.BorrowTransaction
	err := s.withTx(ctx, func(tx pgx.Tx) error {
		var bookID string
		var quantity int
		var returned bool
		err := tx.QueryRow(ctx,
			`SELECT book_id, quantity, returned FROM transactions WHERE id = $1 FOR UPDATE`, id).
			Scan(&bookID, &quantity, &returned)
		if isNoRows(err) {
			return usecase.ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("lock transaction: %w", err)
		}
		if returned {
			return usecase.ErrAlreadyReturned
		}

		// Lock the book row before touching stock, same order as Borrow.
		var available int
		err = tx.QueryRow(ctx, `SELECT quantity FROM books WHERE id = $1 FOR UPDATE`, bookID).Scan(&available)
		if err != nil && !isNoRows(err) {
			return fmt.Errorf("lock book: %w", err)
		}

		closed, err = scanTransaction(tx.QueryRow(ctx, `
		UPDATE transactions SET returned = TRUE, returned_at = $2
		WHERE id = $1
		RETURNING id, username, book_id, book_title, quantity, borrow_date, due_date, returned, returned_at`,
			id, at))
		if err != nil {
			return fmt.Errorf("mark returned: %w", err)
		}

		if _, err := tx.Exec(ctx,
			`UPDATE books SET quantity = quantity + $2, updated_at = NOW() WHERE id = $1`,
			bookID, quantity); err != nil {
			return fmt.Errorf("restore stock: %w", err)
		}
		return nil
	})
	if err != nil {
		return entity.BorrowTransaction{}, err
	}
	return closed, nil
}
