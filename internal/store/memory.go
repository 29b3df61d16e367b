package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"lendingapi/internal/entity"
	"lendingapi/internal/usecase"
)

// Memory is an in-process LendingStore. It backs the test suite and the
// server's dev mode (no DB_DSN configured).
//
// Concurrency model: state lives behind an RWMutex so list/get calls are
// plain snapshot reads, while every quantity-mutating operation first takes
// a per-book lock from a keyed mutex map. Two borrows racing for the same
// book therefore serialize; borrows against different books do not contend.
type Memory struct {
	mu    sync.RWMutex
	books map[string]entity.Book
	txs   map[string]entity.BorrowTransaction
	order []string // transaction ids in append order

	locksMu sync.Mutex
	locks   map[string]*sync.Mutex // book id -> lock
}

func NewMemory() *Memory {
	return &Memory{
		books: make(map[string]entity.Book),
		txs:   make(map[string]entity.BorrowTransaction),
		locks: make(map[string]*sync.Mutex),
	}
}

func (m *Memory) bookLock(id string) *sync.Mutex {
	m.locksMu.Lock()
	defer m.locksMu.Unlock()
	l, ok := m.locks[id]
	if !ok {
		l = &sync.Mutex{}
		m.locks[id] = l
	}
	return l
}

// ---- InventoryStore ----

func (m *Memory) GetBook(_ context.Context, id string) (entity.Book, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	b, ok := m.books[id]
	if !ok {
		return entity.Book{}, usecase.ErrNotFound
	}
	return b, nil
}

func (m *Memory) ListBooks(_ context.Context) ([]entity.Book, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	books := make([]entity.Book, 0, len(m.books))
	for _, b := range m.books {
		books = append(books, b)
	}
	sort.Slice(books, func(i, j int) bool { return books[i].Title < books[j].Title })
	return books, nil
}

func (m *Memory) CreateBook(_ context.Context, b entity.Book) (entity.Book, error) {
	if b.Quantity < 0 {
		return entity.Book{}, usecase.ErrInvalidRequest
	}
	if b.ID == "" {
		b.ID = uuid.New().String()
	}
	now := time.Now()
	b.CreatedAt = now
	b.UpdatedAt = now

	m.mu.Lock()
	defer m.mu.Unlock()
	m.books[b.ID] = b
	return b, nil
}

func (m *Memory) UpdateBook(_ context.Context, b entity.Book) (entity.Book, error) {
	if b.Quantity < 0 {
		return entity.Book{}, usecase.ErrInvalidRequest
	}
	lock := m.bookLock(b.ID)
	lock.Lock()
	defer lock.Unlock()

	m.mu.Lock()
	defer m.mu.Unlock()
	current, ok := m.books[b.ID]
	if !ok {
		return entity.Book{}, usecase.ErrNotFound
	}
	current.Title = b.Title
	current.Author = b.Author
	current.Genre = b.Genre
	current.PublishedYear = b.PublishedYear
	current.Quantity = b.Quantity
	current.UpdatedAt = time.Now()
	m.books[current.ID] = current
	return current, nil
}

func (m *Memory) DeleteBook(_ context.Context, id string) error {
	lock := m.bookLock(id)
	lock.Lock()
	defer lock.Unlock()

	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.books[id]; !ok {
		return usecase.ErrNotFound
	}
	for _, tx := range m.txs {
		if tx.BookID == id && !tx.Returned {
			return usecase.ErrOutstandingLoans
		}
	}
	delete(m.books, id)
	return nil
}

func (m *Memory) AdjustQuantity(_ context.Context, id string, delta int) (entity.Book, error) {
	lock := m.bookLock(id)
	lock.Lock()
	defer lock.Unlock()
	return m.adjustLocked(id, delta)
}

// adjustLocked requires the caller to hold the per-book lock.
func (m *Memory) adjustLocked(id string, delta int) (entity.Book, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.books[id]
	if !ok {
		return entity.Book{}, usecase.ErrNotFound
	}
	if b.Quantity+delta < 0 {
		return entity.Book{}, usecase.ErrInsufficientStock
	}
	b.Quantity += delta
	b.UpdatedAt = time.Now()
	m.books[id] = b
	return b, nil
}

// ---- LedgerStore ----

func (m *Memory) Append(_ context.Context, tx entity.BorrowTransaction) (entity.BorrowTransaction, error) {
	if tx.ID == "" {
		tx.ID = uuid.New().String()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.txs[tx.ID] = tx
	m.order = append(m.order, tx.ID)
	return tx, nil
}

func (m *Memory) Get(_ context.Context, id string) (entity.BorrowTransaction, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	tx, ok := m.txs[id]
	if !ok {
		return entity.BorrowTransaction{}, usecase.ErrNotFound
	}
	return tx, nil
}

func (m *Memory) ListByUser(_ context.Context, username string) ([]entity.BorrowTransaction, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var txs []entity.BorrowTransaction
	for _, id := range m.order {
		if tx := m.txs[id]; tx.Username == username {
			txs = append(txs, tx)
		}
	}
	sortByBorrowDate(txs)
	return txs, nil
}

func (m *Memory) ListAll(_ context.Context) ([]entity.BorrowTransaction, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	txs := make([]entity.BorrowTransaction, 0, len(m.order))
	for _, id := range m.order {
		txs = append(txs, m.txs[id])
	}
	sortByBorrowDate(txs)
	return txs, nil
}

func (m *Memory) CountOutstanding(_ context.Context, username string) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	count := 0
	for _, tx := range m.txs {
		if tx.Username == username && !tx.Returned {
			count++
		}
	}
	return count, nil
}

func (m *Memory) MarkReturned(_ context.Context, id string, at time.Time) (entity.BorrowTransaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.markReturnedLocked(id, at)
}

func (m *Memory) markReturnedLocked(id string, at time.Time) (entity.BorrowTransaction, error) {
	tx, ok := m.txs[id]
	if !ok {
		return entity.BorrowTransaction{}, usecase.ErrNotFound
	}
	if tx.Returned {
		return entity.BorrowTransaction{}, usecase.ErrAlreadyReturned
	}
	tx.Returned = true
	tx.ReturnedAt = &at
	m.txs[id] = tx
	return tx, nil
}

// ---- LendingStore ----

// Borrow decrements stock and appends the ledger entry under the book's
// lock, so a concurrent borrow of the same book sees the post-state.
func (m *Memory) Borrow(_ context.Context, tx entity.BorrowTransaction) (entity.BorrowTransaction, error) {
	lock := m.bookLock(tx.BookID)
	lock.Lock()
	defer lock.Unlock()

	m.mu.Lock()
	defer m.mu.Unlock()
	book, ok := m.books[tx.BookID]
	if !ok {
		return entity.BorrowTransaction{}, usecase.ErrNotFound
	}
	if tx.Quantity > book.Quantity {
		return entity.BorrowTransaction{}, usecase.ErrInsufficientStock
	}

	book.Quantity -= tx.Quantity
	book.UpdatedAt = time.Now()
	m.books[book.ID] = book

	tx.ID = uuid.New().String()
	tx.BookTitle = book.Title
	tx.Returned = false
	tx.ReturnedAt = nil
	m.txs[tx.ID] = tx
	m.order = append(m.order, tx.ID)
	return tx, nil
}

// Return closes the transaction and restores stock under the book's lock.
func (m *Memory) Return(_ context.Context, id string, at time.Time) (entity.BorrowTransaction, error) {
	m.mu.RLock()
	tx, ok := m.txs[id]
	m.mu.RUnlock()
	if !ok {
		return entity.BorrowTransaction{}, usecase.ErrNotFound
	}

	lock := m.bookLock(tx.BookID)
	lock.Lock()
	defer lock.Unlock()

	m.mu.Lock()
	defer m.mu.Unlock()
	tx, err := m.markReturnedLocked(id, at)
	if err != nil {
		return entity.BorrowTransaction{}, err
	}
	// Open loans block catalog deletes, so the book is present here.
	if book, ok := m.books[tx.BookID]; ok {
		book.Quantity += tx.Quantity
		book.UpdatedAt = time.Now()
		m.books[book.ID] = book
	}
	return tx, nil
}

func sortByBorrowDate(txs []entity.BorrowTransaction) {
	sort.SliceStable(txs, func(i, j int) bool {
		return txs[i].BorrowDate.Before(txs[j].BorrowDate)
	})
}
