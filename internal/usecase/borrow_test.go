package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"libraryapi/internal/entity"
	"libraryapi/internal/usecase"
	"libraryapi/internal/usecase/mocks"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

func TestBorrowUsecase_Borrow(t *testing.T) {
	ctx := context.Background()
	bookID := "2f0a9d4e-9a76-4c0c-8f64-04b2c8f6f3f1"

	t.Run("creates borrow record", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		mockBorrows := mocks.NewMockBorrowRepository(ctrl)
		u := usecase.NewBorrowUsecase(mockBorrows)

		due := time.Now().Add(14 * 24 * time.Hour)
		mockBorrows.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, br *entity.Borrow) error {
				assert.Equal(t, bookID, br.BookID)
				assert.Equal(t, 2, br.Quantity)
				br.ID = "borrow-id-1"
				br.CreatedAt = time.Now()
				return nil
			})

		br, err := u.Borrow(ctx, usecase.BorrowInput{BookID: bookID, Quantity: 2, DueDate: due})
		assert.NoError(t, err)
		assert.Equal(t, "borrow-id-1", br.ID)
	})

	t.Run("due date in the past", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		mockBorrows := mocks.NewMockBorrowRepository(ctrl)
		u := usecase.NewBorrowUsecase(mockBorrows)

		// no Create expectation: the repository must not be touched
		_, err := u.Borrow(ctx, usecase.BorrowInput{
			BookID:   bookID,
			Quantity: 1,
			DueDate:  time.Now().Add(-time.Hour),
		})
		assert.True(t, errors.Is(err, usecase.ErrDueDatePast))
	})

	t.Run("insufficient stock propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		mockBorrows := mocks.NewMockBorrowRepository(ctrl)
		u := usecase.NewBorrowUsecase(mockBorrows)

		mockBorrows.EXPECT().
			Create(ctx, gomock.Any()).
			Return(usecase.ErrInsufficientStock)

		_, err := u.Borrow(ctx, usecase.BorrowInput{
			BookID:   bookID,
			Quantity: 10,
			DueDate:  time.Now().Add(time.Hour),
		})
		assert.True(t, errors.Is(err, usecase.ErrInsufficientStock))
	})

	t.Run("unknown book propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		mockBorrows := mocks.NewMockBorrowRepository(ctrl)
		u := usecase.NewBorrowUsecase(mockBorrows)

		mockBorrows.EXPECT().
			Create(ctx, gomock.Any()).
			Return(usecase.ErrNotFound)

		_, err := u.Borrow(ctx, usecase.BorrowInput{
			BookID:   bookID,
			Quantity: 1,
			DueDate:  time.Now().Add(time.Hour),
		})
		assert.True(t, errors.Is(err, usecase.ErrNotFound))
	})
}

func TestNewPagination(t *testing.T) {
	tests := []struct {
		name  string
		page  int
		limit int
		total int
		want  usecase.Pagination
	}{
		{
			name: "first of three pages", page: 1, limit: 10, total: 25,
			want: usecase.Pagination{CurrentPage: 1, TotalPages: 3, TotalBooks: 25, Limit: 10, HasNextPage: true, HasPrevPage: false},
		},
		{
			name: "middle page", page: 2, limit: 10, total: 25,
			want: usecase.Pagination{CurrentPage: 2, TotalPages: 3, TotalBooks: 25, Limit: 10, HasNextPage: true, HasPrevPage: true},
		},
		{
			name: "last page", page: 3, limit: 10, total: 25,
			want: usecase.Pagination{CurrentPage: 3, TotalPages: 3, TotalBooks: 25, Limit: 10, HasNextPage: false, HasPrevPage: true},
		},
		{
			name: "no results", page: 1, limit: 10, total: 0,
			want: usecase.Pagination{CurrentPage: 1, TotalPages: 0, TotalBooks: 0, Limit: 10, HasNextPage: false, HasPrevPage: false},
		},
		{
			name: "exact multiple", page: 2, limit: 5, total: 10,
			want: usecase.Pagination{CurrentPage: 2, TotalPages: 2, TotalBooks: 10, Limit: 5, HasNextPage: false, HasPrevPage: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := usecase.NewPagination(usecase.ListParams{Page: tt.page, Limit: tt.limit}, tt.total)
			assert.Equal(t, tt.want, got)
		})
	}
}
