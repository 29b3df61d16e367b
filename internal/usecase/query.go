package usecase

import (
	"context"
	"sort"
	"time"

	"lendingapi/internal/entity"
)

// Audit trail actions.
const (
	ActionBorrow = "borrow"
	ActionReturn = "return"
)

// TransactionView is a ledger entry enriched for display: the denormalized
// book title plus the overdue flag computed at read time.
type TransactionView struct {
	entity.BorrowTransaction
	Overdue bool `json:"overdue"`
}

// BookStatus is the availability snapshot for one book.
type BookStatus struct {
	Available   int  `json:"available"`
	IsAvailable bool `json:"is_available"`
}

// AuditRecord is one row of the flattened administrative audit view. Every
// transaction contributes a borrow record; returned transactions contribute
// a second record stamped with the return time.
type AuditRecord struct {
	TransactionID string    `json:"transaction_id"`
	Username      string    `json:"username"`
	BookTitle     string    `json:"book_title"`
	Quantity      int       `json:"quantity"`
	Action        string    `json:"action"`
	BorrowDate    time.Time `json:"borrow_date"`
	DueDate       time.Time `json:"return_date"`
	Timestamp     time.Time `json:"timestamp"`
}

// QueryService derives read-only projections over the two stores. Pull-based
// snapshots only: callers invoke these on their own schedule, nothing here
// runs timers or holds locks.
type QueryService struct {
	inventory InventoryStore
	ledger    LedgerStore
	now       func() time.Time
}

func NewQueryService(inventory InventoryStore, ledger LedgerStore) *QueryService {
	return &QueryService{inventory: inventory, ledger: ledger, now: time.Now}
}

// WithClock overrides the clock used for overdue computation. Test hook.
func (q *QueryService) WithClock(now func() time.Time) *QueryService {
	q.now = now
	return q
}

// HistoryForUser returns the user's transactions ordered by borrow date,
// optionally filtered down to open loans.
func (q *QueryService) HistoryForUser(ctx context.Context, username string, includeReturned bool) ([]TransactionView, error) {
	txs, err := q.ledger.ListByUser(ctx, username)
	if err != nil {
		return nil, err
	}
	now := q.now()
	views := make([]TransactionView, 0, len(txs))
	for _, tx := range txs {
		if !includeReturned && tx.Returned {
			continue
		}
		views = append(views, TransactionView{BorrowTransaction: tx, Overdue: tx.Overdue(now)})
	}
	return views, nil
}

// StatusForBook reports current availability for one book.
func (q *QueryService) StatusForBook(ctx context.Context, bookID string) (BookStatus, error) {
	book, err := q.inventory.GetBook(ctx, bookID)
	if err != nil {
		return BookStatus{}, err
	}
	return BookStatus{Available: book.Quantity, IsAvailable: book.Quantity > 0}, nil
}

// TransactionsGroupedByUser maps each username to their transactions,
// ordered by borrow date within each user. Used for administrative browsing.
func (q *QueryService) TransactionsGroupedByUser(ctx context.Context) (map[string][]TransactionView, error) {
	txs, err := q.ledger.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	now := q.now()
	grouped := make(map[string][]TransactionView)
	for _, tx := range txs {
		grouped[tx.Username] = append(grouped[tx.Username], TransactionView{BorrowTransaction: tx, Overdue: tx.Overdue(now)})
	}
	return grouped, nil
}

// AuditTrail flattens the ledger into borrow/return event rows ordered by
// event time, oldest first.
func (q *QueryService) AuditTrail(ctx context.Context) ([]AuditRecord, error) {
	txs, err := q.ledger.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	records := make([]AuditRecord, 0, len(txs))
	for _, tx := range txs {
		records = append(records, AuditRecord{
			TransactionID: tx.ID,
			Username:      tx.Username,
			BookTitle:     tx.BookTitle,
			Quantity:      tx.Quantity,
			Action:        ActionBorrow,
			BorrowDate:    tx.BorrowDate,
			DueDate:       tx.DueDate,
			Timestamp:     tx.BorrowDate,
		})
		if tx.Returned && tx.ReturnedAt != nil {
			records = append(records, AuditRecord{
				TransactionID: tx.ID,
				Username:      tx.Username,
				BookTitle:     tx.BookTitle,
				Quantity:      tx.Quantity,
				Action:        ActionReturn,
				BorrowDate:    tx.BorrowDate,
				DueDate:       tx.DueDate,
				Timestamp:     *tx.ReturnedAt,
			})
		}
	}
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Timestamp.Before(records[j].Timestamp)
	})
	return records, nil
}
