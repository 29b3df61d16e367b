package store

import (
	"context"
	"fmt"
	"time"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // dialect registration
	"github.com/google/uuid"

	"lendingapi/internal/entity"
	"lendingapi/internal/usecase"
)

const (
	transactionsTable = "transactions"

	colTxID       = "id"
	colUsername   = "username"
	colBookID     = "book_id"
	colBookTitle  = "book_title"
	colTxQuantity = "quantity"
	colBorrowDate = "borrow_date"
	colDueDate    = "due_date"
	colReturned   = "returned"
	colReturnedAt = "returned_at"
)

var transactionColumns = []any{
	colTxID, colUsername, colBookID, colBookTitle, colTxQuantity,
	colBorrowDate, colDueDate, colReturned, colReturnedAt,
}

func (s *Postgres) Append(ctx context.Context, t entity.BorrowTransaction) (entity.BorrowTransaction, error) {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	query := `
	INSERT INTO transactions (id, username, book_id, book_title, quantity, borrow_date, due_date, returned, returned_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	RETURNING id, username, book_id, book_title, quantity, borrow_date, due_date, returned, returned_at`
	stored, err := scanTransaction(s.db.QueryRow(ctx, query,
		t.ID, t.Username, t.BookID, t.BookTitle, t.Quantity, t.BorrowDate, t.DueDate, t.Returned, t.ReturnedAt))
	if err != nil {
		return entity.BorrowTransaction{}, fmt.Errorf("append transaction: %w", err)
	}
	return stored, nil
}

func (s *Postgres) Get(ctx context.Context, id string) (entity.BorrowTransaction, error) {
	query := `
	SELECT id, username, book_id, book_title, quantity, borrow_date, due_date, returned, returned_at
	FROM transactions WHERE id = $1`
	t, err := scanTransaction(s.db.QueryRow(ctx, query, id))
	if isNoRows(err) {
		return entity.BorrowTransaction{}, usecase.ErrNotFound
	}
	if err != nil {
		return entity.BorrowTransaction{}, fmt.Errorf("get transaction: %w", err)
	}
	return t, nil
}

func (s *Postgres) ListByUser(ctx context.Context, username string) ([]entity.BorrowTransaction, error) {
	sqlQuery, err := s.buildTransactionQuery(goqu.Ex{colUsername: username})
	if err != nil {
		return nil, err
	}
	return s.queryTransactions(ctx, sqlQuery)
}

func (s *Postgres) ListAll(ctx context.Context) ([]entity.BorrowTransaction, error) {
	sqlQuery, err := s.buildTransactionQuery(nil)
	if err != nil {
		return nil, err
	}
	return s.queryTransactions(ctx, sqlQuery)
}

func (s *Postgres) CountOutstanding(ctx context.Context, username string) (int, error) {
	countStmt := goqu.Dialect(dialectPostgres).
		From(transactionsTable).
		Select(goqu.COUNT(goqu.Star())).
		Where(goqu.Ex{colUsername: username, colReturned: false})

	sqlQuery, _, err := countStmt.ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build count query: %w", err)
	}
	var count int
	if err := s.db.QueryRow(ctx, sqlQuery).Scan(&count); err != nil {
		return 0, fmt.Errorf("count outstanding: %w", err)
	}
	return count, nil
}

func (s *Postgres) MarkReturned(ctx context.Context, id string, at time.Time) (entity.BorrowTransaction, error) {
	// The returned guard lives in the WHERE clause, so a double return can
	// never be applied regardless of interleaving.
	query := `
	UPDATE transactions
	SET returned = TRUE, returned_at = $2
	WHERE id = $1 AND NOT returned
	RETURNING id, username, book_id, book_title, quantity, borrow_date, due_date, returned, returned_at`
	t, err := scanTransaction(s.db.QueryRow(ctx, query, id, at))
	if isNoRows(err) {
		var returned bool
		if checkErr := s.db.QueryRow(ctx, `SELECT returned FROM transactions WHERE id = $1`, id).Scan(&returned); checkErr != nil {
			if isNoRows(checkErr) {
				return entity.BorrowTransaction{}, usecase.ErrNotFound
			}
			return entity.BorrowTransaction{}, fmt.Errorf("mark returned: %w", checkErr)
		}
		return entity.BorrowTransaction{}, usecase.ErrAlreadyReturned
	}
	if err != nil {
		return entity.BorrowTransaction{}, fmt.Errorf("mark returned: %w", err)
	}
	return t, nil
}

// buildTransactionQuery assembles the ledger select ordered by borrow date
// ascending, optionally filtered.
func (s *Postgres) buildTransactionQuery(where goqu.Ex) (string, error) {
	selectStmt := goqu.Dialect(dialectPostgres).
		From(transactionsTable).
		Select(transactionColumns...).
		Order(goqu.I(colBorrowDate).Asc())
	if where != nil {
		selectStmt = selectStmt.Where(where)
	}
	sqlQuery, _, err := selectStmt.ToSQL()
	if err != nil {
		return "", fmt.Errorf("build transaction query: %w", err)
	}
	return sqlQuery, nil
}

func (s *Postgres) queryTransactions(ctx context.Context, sqlQuery string) ([]entity.BorrowTransaction, error) {
	rows, err := s.db.Query(ctx, sqlQuery)
	if err != nil {
		return nil, fmt.Errorf("query transactions: %w", err)
	}
	defer rows.Close()

	var txs []entity.BorrowTransaction
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		txs = append(txs, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("query transactions: %w", err)
	}
	return txs, nil
}
