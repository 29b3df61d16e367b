package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"lendingapi/internal/entity"
	"lendingapi/internal/usecase"
)

const bookColumns = "id, title, author, genre, published_year, quantity, created_at, updated_at"

func (s *Postgres) GetBook(ctx context.Context, id string) (entity.Book, error) {
	query := `SELECT ` + bookColumns + ` FROM books WHERE id = $1`
	b, err := scanBook(s.db.QueryRow(ctx, query, id))
	if isNoRows(err) {
		return entity.Book{}, usecase.ErrNotFound
	}
	if err != nil {
		return entity.Book{}, fmt.Errorf("get book: %w", err)
	}
	return b, nil
}

func (s *Postgres) ListBooks(ctx context.Context) ([]entity.Book, error) {
	query := `SELECT ` + bookColumns + ` FROM books ORDER BY title`
	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}
	defer rows.Close()

	var books []entity.Book
	for rows.Next() {
		b, err := scanBook(rows)
		if err != nil {
			return nil, fmt.Errorf("scan book: %w", err)
		}
		books = append(books, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}
	return books, nil
}

func (s *Postgres) CreateBook(ctx context.Context, b entity.Book) (entity.Book, error) {
	if b.Quantity < 0 {
		return entity.Book{}, usecase.ErrInvalidRequest
	}
	if b.ID == "" {
		b.ID = uuid.New().String()
	}
	query := `
	INSERT INTO books (id, title, author, genre, published_year, quantity, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
	RETURNING ` + bookColumns
	created, err := scanBook(s.db.QueryRow(ctx, query, b.ID, b.Title, b.Author, b.Genre, b.PublishedYear, b.Quantity))
	if err != nil {
		return entity.Book{}, fmt.Errorf("create book: %w", err)
	}
	return created, nil
}

func (s *Postgres) UpdateBook(ctx context.Context, b entity.Book) (entity.Book, error) {
	if b.Quantity < 0 {
		return entity.Book{}, usecase.ErrInvalidRequest
	}
	query := `
	UPDATE books
	SET title = $2, author = $3, genre = $4, published_year = $5, quantity = $6, updated_at = NOW()
	WHERE id = $1
	RETURNING ` + bookColumns
	updated, err := scanBook(s.db.QueryRow(ctx, query, b.ID, b.Title, b.Author, b.Genre, b.PublishedYear, b.Quantity))
	if isNoRows(err) {
		return entity.Book{}, usecase.ErrNotFound
	}
	if err != nil {
		return entity.Book{}, fmt.Errorf("update book: %w", err)
	}
	return updated, nil
}

// DeleteBook refuses to remove a book that open loans still reference.
// The guard and the delete share one transaction so a concurrent borrow
// cannot slip in between.
func (s *Postgres) DeleteBook(ctx context.Context, id string) error {
	return s.withTx(ctx, func(tx pgx.Tx) error {
		var bookID string
		err := tx.QueryRow(ctx, `SELECT id FROM books WHERE id = $1 FOR UPDATE`, id).Scan(&bookID)
		if isNoRows(err) {
			return usecase.ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("delete book: %w", err)
		}

		var outstanding bool
		err = tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM transactions WHERE book_id = $1 AND NOT returned)`, id).Scan(&outstanding)
		if err != nil {
			return fmt.Errorf("delete book: %w", err)
		}
		if outstanding {
			return usecase.ErrOutstandingLoans
		}

		_, err = tx.Exec(ctx, `DELETE FROM books WHERE id = $1`, id)
		if err != nil {
			return fmt.Errorf("delete book: %w", err)
		}
		return nil
	})
}

// AdjustQuantity applies the delta in a single guarded statement, so a
// concurrent adjustment can never drive the quantity negative.
func (s *Postgres) AdjustQuantity(ctx context.Context, id string, delta int) (entity.Book, error) {
	query := `
	UPDATE books
	SET quantity = quantity + $2, updated_at = NOW()
	WHERE id = $1 AND quantity + $2 >= 0
	RETURNING ` + bookColumns
	b, err := scanBook(s.db.QueryRow(ctx, query, id, delta))
	if isNoRows(err) {
		// Either the book is missing or the guard rejected the delta.
		var exists bool
		if checkErr := s.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM books WHERE id = $1)`, id).Scan(&exists); checkErr != nil {
			return entity.Book{}, fmt.Errorf("adjust quantity: %w", checkErr)
		}
		if !exists {
			return entity.Book{}, usecase.ErrNotFound
		}
		return entity.Book{}, usecase.ErrInsufficientStock
	}
	if err != nil {
		return entity.Book{}, fmt.Errorf("adjust quantity: %w", err)
	}
	return b, nil
}
