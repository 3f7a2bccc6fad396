package usecase

import (
	"context"
	"time"

	"libraryapi/internal/entity"
)

// BorrowRepository defines the storage contract for borrow records.
type BorrowRepository interface {
	// Create persists a borrow record and decrements the book's copy count
	// as one atomic operation. It returns ErrNotFound when the book does not
	// exist and ErrInsufficientStock when quantity exceeds current copies;
	// in both cases nothing is written.
	Create(ctx context.Context, br *entity.Borrow) error

	// Summary returns the total quantity borrowed per book, one row per
	// book that has at least one borrow record.
	Summary(ctx context.Context) ([]entity.BorrowSummary, error)
}

// BorrowInput is a validated borrow request.
type BorrowInput struct {
	BookID   string
	Quantity int
	DueDate  time.Time
}

// BorrowUsecase runs the borrow workflow: due-date rule, stock check,
// atomic decrement and record creation.
type BorrowUsecase struct {
	borrows BorrowRepository
	now     func() time.Time
}

func NewBorrowUsecase(borrows BorrowRepository) *BorrowUsecase {
	return &BorrowUsecase{
		borrows: borrows,
		now:     time.Now,
	}
}

// Borrow creates a borrow record for the given book. The stock check and the
// copies decrement happen inside the repository as a single atomic operation,
// so two racing requests can never oversell the last copies.
func (u *BorrowUsecase) Borrow(ctx context.Context, in BorrowInput) (entity.Borrow, error) {
	if !in.DueDate.After(u.now()) {
		return entity.Borrow{}, ErrDueDatePast
	}

	br := entity.Borrow{
		BookID:   in.BookID,
		Quantity: in.Quantity,
		DueDate:  in.DueDate,
	}
	if err := u.borrows.Create(ctx, &br); err != nil {
		return entity.Borrow{}, err
	}
	return br, nil
}

// Summary returns the aggregated borrow report.
func (u *BorrowUsecase) Summary(ctx context.Context) ([]entity.BorrowSummary, error) {
	return u.borrows.Summary(ctx)
}
