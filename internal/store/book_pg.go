package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"libraryapi/internal/entity"
	"libraryapi/internal/usecase"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// sortColumns maps API field names to the columns they are allowed to sort
// by. Anything else falls back to created_at, so user input never reaches
// the ORDER BY clause directly.
var sortColumns = map[string]string{
	"title":     "title",
	"author":    "author",
	"genre":     "genre",
	"isbn":      "isbn",
	"copies":    "copies",
	"available": "available",
	"createdAt": "created_at",
	"updatedAt": "updated_at",
}

type BookPG struct {
	db *pgxpool.Pool
}

func NewBookPG(db *pgxpool.Pool) *BookPG {
	return &BookPG{db: db}
}

func (r *BookPG) Create(ctx context.Context, b *entity.Book) error {
	const query = `
		INSERT INTO books (id, title, author, genre, isbn, description, copies, available)
		VALUES (gen_random_uuid(), $1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at`

	err := r.db.QueryRow(ctx, query,
		b.Title, b.Author, b.Genre, b.ISBN, b.Description, b.Copies, b.Available,
	).Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert book: %w", err)
	}
	return nil
}

func (r *BookPG) GetByID(ctx context.Context, id string) (entity.Book, error) {
	const query = `
		SELECT id, title, author, genre, isbn, description, copies, available, created_at, updated_at
		FROM books
		WHERE id = $1`

	b, err := scanBook(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Book{}, usecase.ErrNotFound
		}
		return entity.Book{}, fmt.Errorf("get book: %w", err)
	}
	return b, nil
}

func (r *BookPG) List(ctx context.Context, p usecase.ListParams) ([]entity.Book, int, error) {
	clauses := []string{"1=1"}
	args := []any{}
	argn := 1

	if p.Genre != "" {
		clauses = append(clauses, fmt.Sprintf("genre = $%d", argn))
		args = append(args, p.Genre)
		argn++
	}

	where := "WHERE " + strings.Join(clauses, " AND ")

	countSQL := fmt.Sprintf("SELECT COUNT(*) FROM books %s", where)
	var total int
	if err := r.db.QueryRow(ctx, countSQL, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count books: %w", err)
	}

	column, ok := sortColumns[p.SortBy]
	if !ok {
		column = "created_at"
	}
	direction := "ASC"
	if p.Desc {
		direction = "DESC"
	}

	dataSQL := fmt.Sprintf(`
		SELECT id, title, author, genre, isbn, description, copies, available, created_at, updated_at
		FROM books
		%s
		ORDER BY %s %s
		LIMIT $%d OFFSET $%d`,
		where, column, direction, argn, argn+1)

	args = append(args, p.Limit, p.Offset())
	rows, err := r.db.Query(ctx, dataSQL, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list books: %w", err)
	}
	defer rows.Close()

	var out []entity.Book
	for rows.Next() {
		b, err := scanBook(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, b)
	}
	return out, total, rows.Err()
}

// Update applies a partial update inside a transaction. The row is locked,
// loaded into the entity, mutated through entity methods and written back,
// so the copies/available invariant holds on this path too.
func (r *BookPG) Update(ctx context.Context, id string, upd usecase.BookUpdate) (entity.Book, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return entity.Book{}, err
	}
	defer tx.Rollback(ctx)

	const selectSQL = `
		SELECT id, title, author, genre, isbn, description, copies, available, created_at, updated_at
		FROM books
		WHERE id = $1
		FOR UPDATE`

	b, err := scanBook(tx.QueryRow(ctx, selectSQL, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Book{}, usecase.ErrNotFound
		}
		return entity.Book{}, fmt.Errorf("lock book: %w", err)
	}

	if upd.Title != nil {
		b.Title = *upd.Title
	}
	if upd.Author != nil {
		b.Author = *upd.Author
	}
	if upd.Genre != nil {
		b.Genre = *upd.Genre
	}
	if upd.ISBN != nil {
		b.ISBN = *upd.ISBN
	}
	if upd.Description != nil {
		b.Description = *upd.Description
	}
	if upd.Copies != nil {
		if err := b.SetCopies(*upd.Copies); err != nil {
			return entity.Book{}, err
		}
	}

	const updateSQL = `
		UPDATE books
		SET title = $2, author = $3, genre = $4, isbn = $5, description = $6,
		    copies = $7, available = $8, updated_at = now()
		WHERE id = $1
		RETURNING updated_at`

	err = tx.QueryRow(ctx, updateSQL,
		b.ID, b.Title, b.Author, b.Genre, b.ISBN, b.Description, b.Copies, b.Available,
	).Scan(&b.UpdatedAt)
	if err != nil {
		return entity.Book{}, fmt.Errorf("update book: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return entity.Book{}, err
	}
	return b, nil
}

// Delete removes a book and every borrow record referencing it. Both deletes
// run in one transaction: either the book and its borrows are gone, or
// nothing changed. Borrows go first so the FK never dangles.
func (r *BookPG) Delete(ctx context.Context, id string) (entity.Book, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return entity.Book{}, err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM borrows WHERE book_id = $1`, id); err != nil {
		return entity.Book{}, fmt.Errorf("delete borrows: %w", err)
	}

	const deleteSQL = `
		DELETE FROM books
		WHERE id = $1
		RETURNING id, title, author, genre, isbn, description, copies, available, created_at, updated_at`

	b, err := scanBook(tx.QueryRow(ctx, deleteSQL, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Book{}, usecase.ErrNotFound
		}
		return entity.Book{}, fmt.Errorf("delete book: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return entity.Book{}, err
	}
	return b, nil
}

func scanBook(row pgx.Row) (entity.Book, error) {
	var b entity.Book
	err := row.Scan(
		&b.ID, &b.Title, &b.Author, &b.Genre, &b.ISBN, &b.Description,
		&b.Copies, &b.Available, &b.CreatedAt, &b.UpdatedAt,
	)
	return b, err
}
