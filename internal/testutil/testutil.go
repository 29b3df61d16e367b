package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"lendingapi/internal/entity"
)

// FixedTime is the reference instant the fixtures are anchored to.
var FixedTime = time.Date(2025, 1, 2, 10, 0, 0, 0, time.UTC)

// FixedClock is a deterministic clock for services under test.
func FixedClock() time.Time { return FixedTime }

// TestBook is a catalog fixture with stock to lend.
var TestBook = entity.Book{
	ID:            "test-book-id-7",
	Title:         "The Left Hand of Darkness",
	Author:        "Ursula K. Le Guin",
	Genre:         "Science Fiction",
	PublishedYear: 1969,
	Quantity:      3,
	CreatedAt:     FixedTime,
	UpdatedAt:     FixedTime,
}

// TestTransaction is an open loan against TestBook.
var TestTransaction = entity.BorrowTransaction{
	ID:         "test-tx-id-1",
	Username:   "alice",
	BookID:     TestBook.ID,
	BookTitle:  TestBook.Title,
	Quantity:   1,
	BorrowDate: FixedTime,
	DueDate:    FixedTime.AddDate(0, 0, 8),
}

// JSONRequest builds an httptest request with a JSON body.
func JSONRequest(t *testing.T, method, target string, body interface{}) *http.Request {
	t.Helper()
	if body == nil {
		return httptest.NewRequest(method, target, nil)
	}
	raw, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal request body: %v", err)
	}
	r := httptest.NewRequest(method, target, bytes.NewReader(raw))
	r.Header.Set("Content-Type", "application/json")
	return r
}

// DecodeJSON decodes a recorded response body into out.
func DecodeJSON(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(out); err != nil {
		t.Fatalf("decode response body: %v", err)
	}
}
