package usecase

import "errors"

var (
	// ErrNotFound is returned when a referenced book does not exist.
	ErrNotFound = errors.New("book not found")

	// ErrInsufficientStock is returned when a borrow request asks for more
	// copies than the book currently has.
	ErrInsufficientStock = errors.New("not enough copies available")

	// ErrDueDatePast is returned when a borrow due date is not in the future.
	ErrDueDatePast = errors.New("due date must be in the future")
)
