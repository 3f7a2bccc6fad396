package store

import (
	"context"
	"fmt"

	"libraryapi/internal/entity"
	"libraryapi/internal/usecase"

	"github.com/jackc/pgx/v5/pgxpool"
)

type BorrowPG struct {
	db *pgxpool.Pool
}

func NewBorrowPG(db *pgxpool.Pool) *BorrowPG {
	return &BorrowPG{db: db}
}

// Create decrements the book's copy count and inserts the borrow record in
// one transaction. The decrement is conditional on sufficient stock, so two
// racing requests can never drive copies below zero: the second UPDATE
// matches no row and the whole transaction rolls back.
func (r *BorrowPG) Create(ctx context.Context, br *entity.Borrow) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	const decrementSQL = `
		UPDATE books
		SET copies = copies - $2,
		    available = (copies - $2) > 0,
		    updated_at = now()
		WHERE id = $1 AND copies >= $2`

	tag, err := tx.Exec(ctx, decrementSQL, br.BookID, br.Quantity)
	if err != nil {
		return fmt.Errorf("decrement copies: %w", err)
	}
	if tag.RowsAffected() == 0 {
		var exists bool
		if err := tx.QueryRow(ctx,
			`SELECT EXISTS (SELECT 1 FROM books WHERE id = $1)`, br.BookID,
		).Scan(&exists); err != nil {
			return fmt.Errorf("check book: %w", err)
		}
		if !exists {
			return usecase.ErrNotFound
		}
		return usecase.ErrInsufficientStock
	}

	const insertSQL = `
		INSERT INTO borrows (id, book_id, quantity, due_date)
		VALUES (gen_random_uuid(), $1, $2, $3)
		RETURNING id, created_at`

	err = tx.QueryRow(ctx, insertSQL, br.BookID, br.Quantity, br.DueDate).
		Scan(&br.ID, &br.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert borrow: %w", err)
	}

	return tx.Commit(ctx)
}

// Summary sums borrowed quantities per book. The inner join excludes books
// that have never been borrowed.
func (r *BorrowPG) Summary(ctx context.Context) ([]entity.BorrowSummary, error) {
	const query = `
		SELECT b.title, b.isbn, SUM(br.quantity)::int AS total
		FROM borrows br
		JOIN books b ON b.id = br.book_id
		GROUP BY b.id, b.title, b.isbn
		ORDER BY total DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("borrow summary: %w", err)
	}
	defer rows.Close()

	var out []entity.BorrowSummary
	for rows.Next() {
		var s entity.BorrowSummary
		if err := rows.Scan(&s.BookTitle, &s.ISBN, &s.TotalQuantity); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
