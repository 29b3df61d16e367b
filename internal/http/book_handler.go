package http

import (
	"net/http"
	"strings"

	"lendingapi/internal/entity"
	"lendingapi/internal/usecase"
)

// BookHandler serves the catalog: the public list plus the admin CRUD
// endpoints. Stock here only changes through admin edits; lending traffic
// goes through LendingHandler.
type BookHandler struct {
	inventory usecase.InventoryStore
	queries   *usecase.QueryService
}

func NewBookHandler(inventory usecase.InventoryStore, queries *usecase.QueryService) *BookHandler {
	return &BookHandler{inventory: inventory, queries: queries}
}

// bookView is the catalog row shape the original clients consume: status is
// derived from the quantity, never stored.
type bookView struct {
	BookID        string `json:"book_id"`
	Title         string `json:"title"`
	Author        string `json:"author"`
	Genre         string `json:"genre"`
	PublishedYear int    `json:"published_year"`
	Status        string `json:"status"`
	Quantity      int    `json:"quantity"`
}

func toBookView(b entity.Book) bookView {
	return bookView{
		BookID:        b.ID,
		Title:         b.Title,
		Author:        b.Author,
		Genre:         b.Genre,
		PublishedYear: b.PublishedYear,
		Status:        b.Status(),
		Quantity:      b.Quantity,
	}
}

type AddBookRequest struct {
	Title         string `json:"title" validate:"required"`
	Author        string `json:"author" validate:"required"`
	Genre         string `json:"genre"`
	PublishedYear int    `json:"published_year"`
	Quantity      int    `json:"quantity" validate:"min=0"`
}

type UpdateBookRequest struct {
	BookID        string `json:"book_id" validate:"required"`
	Title         string `json:"title" validate:"required"`
	Author        string `json:"author" validate:"required"`
	Genre         string `json:"genre"`
	PublishedYear int    `json:"published_year"`
	Quantity      int    `json:"quantity" validate:"min=0"`
}

type DeleteBookRequest struct {
	BookID string `json:"book_id" validate:"required"`
}

// List handles GET /books, returning the bare catalog sequence.
func (h *BookHandler) List(w http.ResponseWriter, r *http.Request) {
	books, err := h.inventory.ListBooks(r.Context())
	if err != nil {
		writeCoreError(w, err)
		return
	}
	views := make([]bookView, 0, len(books))
	for _, b := range books {
		views = append(views, toBookView(b))
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(views)
}

// Get handles GET /books/{id}, joining the catalog record with its
// availability snapshot.
func (h *BookHandler) Get(w http.ResponseWriter, r *http.Request) {
	const prefix = "/books/"
	id := strings.TrimPrefix(r.URL.Path, prefix)
	if id == "" || strings.Contains(id, "/") {
		http.NotFound(w, r)
		return
	}

	book, err := h.inventory.GetBook(r.Context(), id)
	if err != nil {
		writeCoreError(w, err)
		return
	}
	status, err := h.queries.StatusForBook(r.Context(), id)
	if err != nil {
		writeCoreError(w, err)
		return
	}
	JSONSuccess(w, map[string]interface{}{
		"book":   toBookView(book),
		"status": status,
	}, nil)
}

// Add handles POST /add-book.
func (h *BookHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req AddBookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		JSONError(w, http.StatusBadRequest, "INVALID_PAYLOAD", "Request body is not valid JSON", nil)
		return
	}
	if errs := ValidateStruct(req); errs != nil {
		JSONError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid book", toErrorDetails(errs))
		return
	}

	book, err := h.inventory.CreateBook(r.Context(), entity.Book{
		Title:         req.Title,
		Author:        req.Author,
		Genre:         req.Genre,
		PublishedYear: req.PublishedYear,
		Quantity:      req.Quantity,
	})
	if err != nil {
		writeCoreError(w, err)
		return
	}
	JSONSuccessCreated(w, toBookView(book))
}

// Update handles POST /update-book. The quantity overwrite is taken as an
// administrative correction.
func (h *BookHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req UpdateBookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		JSONError(w, http.StatusBadRequest, "INVALID_PAYLOAD", "Request body is not valid JSON", nil)
		return
	}
	if errs := ValidateStruct(req); errs != nil {
		JSONError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid book", toErrorDetails(errs))
		return
	}

	book, err := h.inventory.UpdateBook(r.Context(), entity.Book{
		ID:            req.BookID,
		Title:         req.Title,
		Author:        req.Author,
		Genre:         req.Genre,
		PublishedYear: req.PublishedYear,
		Quantity:      req.Quantity,
	})
	if err != nil {
		writeCoreError(w, err)
		return
	}
	JSONSuccess(w, toBookView(book), nil)
}

// Delete handles POST /delete-book. Deletion is refused while open loans
// still reference the book.
func (h *BookHandler) Delete(w http.ResponseWriter, r *http.Request) {
	var req DeleteBookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		JSONError(w, http.StatusBadRequest, "INVALID_PAYLOAD", "Request body is not valid JSON", nil)
		return
	}
	if errs := ValidateStruct(req); errs != nil {
		JSONError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request", toErrorDetails(errs))
		return
	}

	if err := h.inventory.DeleteBook(r.Context(), req.BookID); err != nil {
		writeCoreError(w, err)
		return
	}
	JSONSuccess(w, map[string]string{"book_id": req.BookID}, nil)
}
