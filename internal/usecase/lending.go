package usecase

import (
	"context"
	"time"

	"lendingapi/internal/entity"
)

// BorrowParams carries one borrow request. Identity is explicit; the core
// never reads ambient session state.
type BorrowParams struct {
	Username string
	BookID   string
	Quantity int
	DueDate  time.Time
}

// BorrowResult is the created transaction plus the policy verdict, so the
// caller can surface a warning without a second round trip.
type BorrowResult struct {
	Transaction entity.BorrowTransaction
	Verdict     Verdict
}

// LendingService orchestrates borrow and return operations, gating borrows
// through the eligibility policy and delegating the paired stock/ledger
// mutations to the transactional store.
type LendingService struct {
	store  LendingStore
	policy Policy
	now    func() time.Time
}

func NewLendingService(store LendingStore, policy Policy) *LendingService {
	return &LendingService{store: store, policy: policy, now: time.Now}
}

// WithClock overrides the service clock. Test hook.
func (s *LendingService) WithClock(now func() time.Time) *LendingService {
	s.now = now
	return s
}

// Borrow runs the full borrow flow: validate, eligibility gate, then the
// atomic decrement-and-append. A locked borrower is rejected before any
// inventory is touched.
func (s *LendingService) Borrow(ctx context.Context, p BorrowParams) (BorrowResult, error) {
	if err := s.validateBorrow(p); err != nil {
		return BorrowResult{}, err
	}

	outstanding, err := s.store.CountOutstanding(ctx, p.Username)
	if err != nil {
		return BorrowResult{}, err
	}
	verdict := s.policy.Evaluate(outstanding)
	if verdict == VerdictLocked {
		return BorrowResult{Verdict: verdict}, ErrBorrowerLocked
	}

	tx, err := s.store.Borrow(ctx, entity.BorrowTransaction{
		Username:   p.Username,
		BookID:     p.BookID,
		Quantity:   p.Quantity,
		BorrowDate: s.now(),
		DueDate:    p.DueDate,
	})
	if err != nil {
		return BorrowResult{}, err
	}
	return BorrowResult{Transaction: tx, Verdict: verdict}, nil
}

// Return closes an open transaction and restores the borrowed copies.
// A second return of the same transaction fails with ErrAlreadyReturned
// and changes nothing.
func (s *LendingService) Return(ctx context.Context, transactionID string) (entity.BorrowTransaction, error) {
	if transactionID == "" {
		return entity.BorrowTransaction{}, ErrInvalidRequest
	}
	return s.store.Return(ctx, transactionID, s.now())
}

func (s *LendingService) validateBorrow(p BorrowParams) error {
	if p.Username == "" || p.BookID == "" {
		return ErrInvalidRequest
	}
	if p.Quantity < 1 {
		return ErrInvalidRequest
	}
	if p.DueDate.IsZero() {
		return ErrInvalidRequest
	}
	// Due dates have day precision; today is acceptable, yesterday is not.
	today := s.now().Truncate(24 * time.Hour)
	if p.DueDate.Before(today) {
		return ErrInvalidRequest
	}
	return nil
}
