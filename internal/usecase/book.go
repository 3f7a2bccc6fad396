package usecase

import (
	"context"

	"libraryapi/internal/entity"
)

// ListParams carries the validated filter, sort and pagination inputs for
// listing books.
type ListParams struct {
	Genre  string // normalized uppercase genre, empty means no filter
	SortBy string // whitelisted book column
	Desc   bool
	Limit  int
	Page   int
}

// Offset converts the 1-based page into a row offset.
func (p ListParams) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Pagination is the metadata returned alongside a book listing. It is
// computed from the total count of matching records before pagination.
type Pagination struct {
	CurrentPage int  `json:"currentPage"`
	TotalPages  int  `json:"totalPages"`
	TotalBooks  int  `json:"totalBooks"`
	Limit       int  `json:"limit"`
	HasNextPage bool `json:"hasNextPage"`
	HasPrevPage bool `json:"hasPrevPage"`
}

// NewPagination computes pagination metadata for a listing result.
func NewPagination(p ListParams, total int) Pagination {
	totalPages := (total + p.Limit - 1) / p.Limit
	return Pagination{
		CurrentPage: p.Page,
		TotalPages:  totalPages,
		TotalBooks:  total,
		Limit:       p.Limit,
		HasNextPage: p.Page < totalPages,
		HasPrevPage: p.Page > 1 && total > 0,
	}
}

// BookUpdate is a partial update: nil fields are left untouched. A non-nil
// Copies goes through the entity invariant, so Available is recomputed on
// every path that changes the copy count.
type BookUpdate struct {
	Title       *string
	Author      *string
	Genre       *string
	ISBN        *string
	Description *string
	Copies      *int
}

// BookRepository defines the storage contract for books.
type BookRepository interface {
	Create(ctx context.Context, b *entity.Book) error
	List(ctx context.Context, p ListParams) ([]entity.Book, int, error)
	GetByID(ctx context.Context, id string) (entity.Book, error)
	Update(ctx context.Context, id string, upd BookUpdate) (entity.Book, error)
	// Delete removes the book and all borrow records referencing it in one
	// transaction, returning the deleted book.
	Delete(ctx context.Context, id string) (entity.Book, error)
}
