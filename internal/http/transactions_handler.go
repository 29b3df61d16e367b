package http

import (
	"net/http"

	"lendingapi/internal/usecase"
)

// TransactionsHandler serves the administrative audit views over the ledger.
type TransactionsHandler struct {
	queries *usecase.QueryService
}

func NewTransactionsHandler(queries *usecase.QueryService) *TransactionsHandler {
	return &TransactionsHandler{queries: queries}
}

// List handles GET /transactions: the flattened audit trail, one row per
// borrow or return event, oldest first.
func (h *TransactionsHandler) List(w http.ResponseWriter, r *http.Request) {
	records, err := h.queries.AuditTrail(r.Context())
	if err != nil {
		writeCoreError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(records)
}

// Grouped handles GET /transactions/grouped, mapping usernames to their
// transaction history for the admin browser.
func (h *TransactionsHandler) Grouped(w http.ResponseWriter, r *http.Request) {
	grouped, err := h.queries.TransactionsGroupedByUser(r.Context())
	if err != nil {
		writeCoreError(w, err)
		return
	}
	JSONSuccess(w, grouped, nil)
}
