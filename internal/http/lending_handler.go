package http

import (
	"net/http"
	"strings"
	"time"

	"lendingapi/internal/push"
	"lendingapi/internal/usecase"
)

// LendingHandler serves the borrow/return endpoints and the per-user
// history view.
type LendingHandler struct {
	lending *usecase.LendingService
	queries *usecase.QueryService
	hub     *push.Hub
}

func NewLendingHandler(lending *usecase.LendingService, queries *usecase.QueryService, hub *push.Hub) *LendingHandler {
	return &LendingHandler{lending: lending, queries: queries, hub: hub}
}

type BorrowRequest struct {
	Username   string `json:"username" validate:"required"`
	BookID     string `json:"book_id" validate:"required"`
	ReturnDate string `json:"return_date" validate:"required,lendingdate"`
	Quantity   int    `json:"quantity" validate:"required,min=1"`
}

type BorrowResponse struct {
	Success       bool        `json:"success"`
	Transaction   interface{} `json:"transaction"`
	AccountLocked bool        `json:"accountLocked"`
}

type ReturnRequest struct {
	BorrowID string `json:"borrow_id" validate:"required"`
}

type ReturnResponse struct {
	Success     bool        `json:"success"`
	Transaction interface{} `json:"transaction"`
}

type BorrowedBooksResponse struct {
	Success       bool        `json:"success"`
	BorrowedBooks interface{} `json:"borrowedBooks"`
}

// BorrowBook handles POST /borrow-book. The response carries the created
// transaction plus accountLocked, set when the borrower is one unreturned
// loan away from the lock.
func (h *LendingHandler) BorrowBook(w http.ResponseWriter, r *http.Request) {
	var req BorrowRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		JSONError(w, http.StatusBadRequest, "INVALID_PAYLOAD", "Request body is not valid JSON", nil)
		return
	}
	if errs := ValidateStruct(req); errs != nil {
		JSONError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid borrow request", toErrorDetails(errs))
		return
	}
	dueDate, err := time.Parse(dateLayout, req.ReturnDate)
	if err != nil {
		JSONError(w, http.StatusBadRequest, "INVALID_REQUEST", "Quantity or return date is invalid", nil)
		return
	}

	res, err := h.lending.Borrow(r.Context(), usecase.BorrowParams{
		Username: req.Username,
		BookID:   req.BookID,
		Quantity: req.Quantity,
		DueDate:  dueDate,
	})
	if err != nil {
		writeCoreError(w, err)
		return
	}

	h.notify(req.Username, "borrow", res.Transaction)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(BorrowResponse{
		Success:       true,
		Transaction:   res.Transaction,
		AccountLocked: res.Verdict == usecase.VerdictWarned,
	})
}

// ReturnBook handles POST /return-book.
func (h *LendingHandler) ReturnBook(w http.ResponseWriter, r *http.Request) {
	var req ReturnRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		JSONError(w, http.StatusBadRequest, "INVALID_PAYLOAD", "Request body is not valid JSON", nil)
		return
	}
	if errs := ValidateStruct(req); errs != nil {
		JSONError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid return request", toErrorDetails(errs))
		return
	}

	tx, err := h.lending.Return(r.Context(), req.BorrowID)
	if err != nil {
		writeCoreError(w, err)
		return
	}

	h.notify(tx.Username, "return", tx)

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(ReturnResponse{Success: true, Transaction: tx})
}

// BorrowedBooks handles GET /borrowed-books/{username}. Returned loans are
// included unless include_returned=false.
func (h *LendingHandler) BorrowedBooks(w http.ResponseWriter, r *http.Request) {
	const prefix = "/borrowed-books/"
	username := strings.TrimPrefix(r.URL.Path, prefix)
	if username == "" || strings.Contains(username, "/") {
		http.NotFound(w, r)
		return
	}

	includeReturned := r.URL.Query().Get("include_returned") != "false"
	views, err := h.queries.HistoryForUser(r.Context(), username, includeReturned)
	if err != nil {
		writeCoreError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(BorrowedBooksResponse{Success: true, BorrowedBooks: views})
}

type transactionEvent struct {
	Type        string      `json:"type"`
	Transaction interface{} `json:"transaction"`
}

func (h *LendingHandler) notify(username, eventType string, tx interface{}) {
	payload, err := json.Marshal(transactionEvent{Type: eventType, Transaction: tx})
	if err != nil {
		return
	}
	h.hub.Notify(username, payload)
}
