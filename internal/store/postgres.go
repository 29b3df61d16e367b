package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"lendingapi/internal/entity"
)

const dialectPostgres = "postgres"

// Postgres implements the lending store over a pgx pool. Per-book
// serialization comes from row locking: Borrow and Return run inside a
// transaction that takes `SELECT ... FOR UPDATE` on the book row, so two
// racing borrows of the last copy commit in some total order and the loser
// sees the decremented quantity. List and get calls read outside any
// transaction.
type Postgres struct {
	db *pgxpool.Pool
}

func NewPostgres(db *pgxpool.Pool) *Postgres {
	return &Postgres{db: db}
}

// withTx runs fn inside a transaction, rolling back on error.
func (s *Postgres) withTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

func scanBook(row pgx.Row) (entity.Book, error) {
	var b entity.Book
	err := row.Scan(&b.ID, &b.Title, &b.Author, &b.Genre, &b.PublishedYear, &b.Quantity, &b.CreatedAt, &b.UpdatedAt)
	return b, err
}

func scanTransaction(row pgx.Row) (entity.BorrowTransaction, error) {
	var t entity.BorrowTransaction
	err := row.Scan(&t.ID, &t.Username, &t.BookID, &t.BookTitle, &t.Quantity, &t.BorrowDate, &t.DueDate, &t.Returned, &t.ReturnedAt)
	return t, err
}

func isNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}
