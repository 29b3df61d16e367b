package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lendingapi/internal/entity"
	"lendingapi/internal/store"
	"lendingapi/internal/usecase"
)

func seedLedger(t *testing.T) (*usecase.QueryService, *store.Memory, entity.Book) {
	t.Helper()
	ctx := context.Background()
	mem := store.NewMemory()

	book, err := mem.CreateBook(ctx, entity.Book{Title: "Dune", Author: "Frank Herbert", Quantity: 4})
	require.NoError(t, err)

	returnedAt := testClock().AddDate(0, 0, -1)
	fixtures := []entity.BorrowTransaction{
		{
			ID: "tx-overdue", Username: "alice", BookID: book.ID, BookTitle: book.Title,
			Quantity: 1, BorrowDate: testClock().AddDate(0, 0, -10), DueDate: testClock().AddDate(0, 0, -3),
		},
		{
			ID: "tx-closed", Username: "alice", BookID: book.ID, BookTitle: book.Title,
			Quantity: 2, BorrowDate: testClock().AddDate(0, 0, -20), DueDate: testClock().AddDate(0, 0, -15),
			Returned: true, ReturnedAt: &returnedAt,
		},
		{
			ID: "tx-open", Username: "bob", BookID: book.ID, BookTitle: book.Title,
			Quantity: 1, BorrowDate: testClock().AddDate(0, 0, -5), DueDate: testClock().AddDate(0, 0, 5),
		},
	}
	for _, tx := range fixtures {
		_, err := mem.Append(ctx, tx)
		require.NoError(t, err)
	}

	q := usecase.NewQueryService(mem, mem).WithClock(testClock)
	return q, mem, book
}

func TestQueryService_HistoryForUser(t *testing.T) {
	ctx := context.Background()
	q, _, _ := seedLedger(t)

	t.Run("full history ordered by borrow date", func(t *testing.T) {
		views, err := q.HistoryForUser(ctx, "alice", true)
		require.NoError(t, err)
		require.Len(t, views, 2)
		assert.Equal(t, "tx-closed", views[0].ID)
		assert.Equal(t, "tx-overdue", views[1].ID)
	})

	t.Run("open loans only", func(t *testing.T) {
		views, err := q.HistoryForUser(ctx, "alice", false)
		require.NoError(t, err)
		require.Len(t, views, 1)
		assert.Equal(t, "tx-overdue", views[0].ID)
	})

	t.Run("overdue computed at read time", func(t *testing.T) {
		views, err := q.HistoryForUser(ctx, "alice", true)
		require.NoError(t, err)
		for _, v := range views {
			switch v.ID {
			case "tx-overdue":
				assert.True(t, v.Overdue)
			case "tx-closed":
				// Once returned the loan is historical; overdue no longer applies.
				assert.False(t, v.Overdue)
			}
		}
	})

	t.Run("unknown user has empty history", func(t *testing.T) {
		views, err := q.HistoryForUser(ctx, "nobody", true)
		require.NoError(t, err)
		assert.Empty(t, views)
	})
}

func TestQueryService_StatusForBook(t *testing.T) {
	ctx := context.Background()
	q, mem, book := seedLedger(t)

	status, err := q.StatusForBook(ctx, book.ID)
	require.NoError(t, err)
	assert.Equal(t, 4, status.Available)
	assert.True(t, status.IsAvailable)

	_, err = mem.AdjustQuantity(ctx, book.ID, -4)
	require.NoError(t, err)

	status, err = q.StatusForBook(ctx, book.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, status.Available)
	assert.False(t, status.IsAvailable)

	_, err = q.StatusForBook(ctx, "no-such-book")
	assert.ErrorIs(t, err, usecase.ErrNotFound)
}

func TestQueryService_TransactionsGroupedByUser(t *testing.T) {
	ctx := context.Background()
	q, _, _ := seedLedger(t)

	grouped, err := q.TransactionsGroupedByUser(ctx)
	require.NoError(t, err)
	require.Len(t, grouped, 2)
	assert.Len(t, grouped["alice"], 2)
	assert.Len(t, grouped["bob"], 1)
	// Within a user, oldest borrow first.
	assert.Equal(t, "tx-closed", grouped["alice"][0].ID)
}

func TestQueryService_AuditTrail(t *testing.T) {
	ctx := context.Background()
	q, _, _ := seedLedger(t)

	records, err := q.AuditTrail(ctx)
	require.NoError(t, err)
	// Three borrows plus one return event.
	require.Len(t, records, 4)

	var actions []string
	for _, rec := range records {
		actions = append(actions, rec.Action)
		assert.Equal(t, "Dune", rec.BookTitle)
		assert.False(t, rec.Timestamp.IsZero())
	}
	assert.Equal(t, []string{
		usecase.ActionBorrow, // tx-closed, 20 days ago
		usecase.ActionBorrow, // tx-overdue, 10 days ago
		usecase.ActionBorrow, // tx-open, 5 days ago
		usecase.ActionReturn, // tx-closed, yesterday
	}, actions)

	last := records[len(records)-1]
	assert.Equal(t, "tx-closed", last.TransactionID)
	assert.Equal(t, usecase.ActionReturn, last.Action)
}
