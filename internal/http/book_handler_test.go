package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lendingapi/internal/store"
	"lendingapi/internal/testutil"
	"lendingapi/internal/usecase"
)

func newBookFixture(t *testing.T) (*BookHandler, *store.Memory) {
	t.Helper()
	mem := store.NewMemory()
	queries := usecase.NewQueryService(mem, mem)
	return NewBookHandler(mem, queries), mem
}

func TestBookHandler_List(t *testing.T) {
	handler, mem := newBookFixture(t)
	ctx := context.Background()

	_, err := mem.CreateBook(ctx, testutil.TestBook)
	require.NoError(t, err)
	empty := testutil.TestBook
	empty.ID = "test-book-id-0"
	empty.Title = "A Wizard of Earthsea"
	empty.Quantity = 0
	_, err = mem.CreateBook(ctx, empty)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	handler.List(w, httptest.NewRequest(http.MethodGet, "/books", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	var views []bookView
	testutil.DecodeJSON(t, w, &views)
	require.Len(t, views, 2)
	// Sorted by title; status is derived from the remaining quantity.
	assert.Equal(t, "A Wizard of Earthsea", views[0].Title)
	assert.Equal(t, "borrowed", views[0].Status)
	assert.Equal(t, "available", views[1].Status)
}

func TestBookHandler_Get(t *testing.T) {
	handler, mem := newBookFixture(t)
	book, err := mem.CreateBook(context.Background(), testutil.TestBook)
	require.NoError(t, err)

	t.Run("found", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.Get(w, httptest.NewRequest(http.MethodGet, "/books/"+book.ID, nil))

		assert.Equal(t, http.StatusOK, w.Code)
		var resp struct {
			Success bool `json:"success"`
			Data    struct {
				Book   bookView `json:"book"`
				Status struct {
					Available   int  `json:"available"`
					IsAvailable bool `json:"is_available"`
				} `json:"status"`
			} `json:"data"`
		}
		testutil.DecodeJSON(t, w, &resp)
		assert.True(t, resp.Success)
		assert.Equal(t, book.ID, resp.Data.Book.BookID)
		assert.Equal(t, 3, resp.Data.Status.Available)
		assert.True(t, resp.Data.Status.IsAvailable)
	})

	t.Run("unknown id", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.Get(w, httptest.NewRequest(http.MethodGet, "/books/missing", nil))
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("empty id", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.Get(w, httptest.NewRequest(http.MethodGet, "/books/", nil))
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestBookHandler_Add(t *testing.T) {
	handler, _ := newBookFixture(t)

	t.Run("created", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := testutil.JSONRequest(t, http.MethodPost, "/add-book", AddBookRequest{
			Title: "Dune", Author: "Frank Herbert", Genre: "Science Fiction",
			PublishedYear: 1965, Quantity: 4,
		})

		handler.Add(w, r)

		assert.Equal(t, http.StatusCreated, w.Code)
		var resp struct {
			Success bool     `json:"success"`
			Data    bookView `json:"data"`
		}
		testutil.DecodeJSON(t, w, &resp)
		assert.True(t, resp.Success)
		assert.NotEmpty(t, resp.Data.BookID)
		assert.Equal(t, "Dune", resp.Data.Title)
		assert.Equal(t, "available", resp.Data.Status)
	})

	t.Run("missing title", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := testutil.JSONRequest(t, http.MethodPost, "/add-book", AddBookRequest{Author: "Frank Herbert"})

		handler.Add(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		var resp ErrorResponse
		testutil.DecodeJSON(t, w, &resp)
		assert.Equal(t, "VALIDATION_ERROR", resp.Error.Code)
	})

	t.Run("bad json", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/add-book", nil)

		handler.Add(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestBookHandler_Update(t *testing.T) {
	handler, mem := newBookFixture(t)
	book, err := mem.CreateBook(context.Background(), testutil.TestBook)
	require.NoError(t, err)

	t.Run("updated", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := testutil.JSONRequest(t, http.MethodPost, "/update-book", UpdateBookRequest{
			BookID: book.ID, Title: book.Title, Author: book.Author,
			Genre: book.Genre, PublishedYear: book.PublishedYear, Quantity: 10,
		})

		handler.Update(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		var resp struct {
			Data bookView `json:"data"`
		}
		testutil.DecodeJSON(t, w, &resp)
		assert.Equal(t, 10, resp.Data.Quantity)
	})

	t.Run("unknown book", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := testutil.JSONRequest(t, http.MethodPost, "/update-book", UpdateBookRequest{
			BookID: "missing", Title: "x", Author: "y",
		})

		handler.Update(w, r)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestBookHandler_Delete(t *testing.T) {
	handler, mem := newBookFixture(t)
	ctx := context.Background()
	book, err := mem.CreateBook(ctx, testutil.TestBook)
	require.NoError(t, err)

	t.Run("refused while loans are open", func(t *testing.T) {
		tx, err := mem.Borrow(ctx, entityTransaction("alice", book.ID, 1))
		require.NoError(t, err)
		t.Cleanup(func() {
			_, err := mem.Return(ctx, tx.ID, testutil.FixedTime)
			require.NoError(t, err)
		})

		w := httptest.NewRecorder()
		r := testutil.JSONRequest(t, http.MethodPost, "/delete-book", DeleteBookRequest{BookID: book.ID})

		handler.Delete(w, r)

		assert.Equal(t, http.StatusConflict, w.Code)
		var resp ErrorResponse
		testutil.DecodeJSON(t, w, &resp)
		assert.Equal(t, "OUTSTANDING_LOANS", resp.Error.Code)
	})

	t.Run("deleted once settled", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := testutil.JSONRequest(t, http.MethodPost, "/delete-book", DeleteBookRequest{BookID: book.ID})

		handler.Delete(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		_, err := mem.GetBook(ctx, book.ID)
		assert.ErrorIs(t, err, usecase.ErrNotFound)
	})
}
