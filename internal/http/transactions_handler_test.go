package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lendingapi/internal/store"
	"lendingapi/internal/testutil"
	"lendingapi/internal/usecase"
)

func newTransactionsFixture(t *testing.T) *TransactionsHandler {
	t.Helper()
	ctx := context.Background()
	mem := store.NewMemory()

	book, err := mem.CreateBook(ctx, testutil.TestBook)
	require.NoError(t, err)

	_, err = mem.Borrow(ctx, entityTransaction("alice", book.ID, 1))
	require.NoError(t, err)
	closed, err := mem.Borrow(ctx, entityTransaction("bob", book.ID, 1))
	require.NoError(t, err)
	_, err = mem.Return(ctx, closed.ID, time.Now().Add(time.Hour))
	require.NoError(t, err)

	return NewTransactionsHandler(usecase.NewQueryService(mem, mem))
}

func TestTransactionsHandler_List(t *testing.T) {
	handler := newTransactionsFixture(t)

	w := httptest.NewRecorder()
	handler.List(w, httptest.NewRequest(http.MethodGet, "/transactions", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	var records []usecase.AuditRecord
	testutil.DecodeJSON(t, w, &records)
	require.Len(t, records, 3)

	// Two borrows followed by bob's return; every row carries the title.
	actions := []string{records[0].Action, records[1].Action, records[2].Action}
	assert.Equal(t, []string{"borrow", "borrow", "return"}, actions)
	for _, rec := range records {
		assert.Equal(t, testutil.TestBook.Title, rec.BookTitle)
	}
	assert.Equal(t, "bob", records[2].Username)
}

func TestTransactionsHandler_Grouped(t *testing.T) {
	handler := newTransactionsFixture(t)

	w := httptest.NewRecorder()
	handler.Grouped(w, httptest.NewRequest(http.MethodGet, "/transactions/grouped", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Success bool                                 `json:"success"`
		Data    map[string][]usecase.TransactionView `json:"data"`
	}
	testutil.DecodeJSON(t, w, &resp)
	assert.True(t, resp.Success)
	require.Len(t, resp.Data, 2)
	assert.Len(t, resp.Data["alice"], 1)
	assert.Len(t, resp.Data["bob"], 1)
	assert.True(t, resp.Data["bob"][0].Returned)
}
