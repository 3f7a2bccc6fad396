package http

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValidateStruct_CreateBookRequest(t *testing.T) {
	valid := CreateBookRequest{
		Title:  "A Valid Book",
		Author: "An Author",
		Genre:  "fiction",
		ISBN:   "9780756404741",
		Copies: 2,
	}

	t.Run("valid request", func(t *testing.T) {
		assert.Nil(t, ValidateStruct(valid))
	})

	t.Run("errors keyed by json field name", func(t *testing.T) {
		req := valid
		req.Genre = "COOKING"
		req.Copies = -1

		errs := ValidateStruct(req)
		assert.Len(t, errs, 2)

		genreErr, ok := errs["genre"]
		assert.True(t, ok)
		assert.Equal(t, "bookgenre", genreErr.Kind)
		assert.Equal(t, "COOKING", genreErr.Value)

		copiesErr, ok := errs["copies"]
		assert.True(t, ok)
		assert.Equal(t, "gte", copiesErr.Kind)
		assert.Equal(t, -1, copiesErr.Value)
	})

	t.Run("missing required fields", func(t *testing.T) {
		errs := ValidateStruct(CreateBookRequest{})
		for _, field := range []string{"title", "author", "genre", "isbn"} {
			fe, ok := errs[field]
			assert.True(t, ok, "expected error for %s", field)
			assert.Equal(t, "required", fe.Kind)
		}
	})
}

func TestValidateStruct_ISBN(t *testing.T) {
	tests := []struct {
		isbn string
		ok   bool
	}{
		{"9780756404741", true},
		{"978-0-7564-0474-1", true},
		{"0306406152", true},
		{"030640615X", true},
		{"12345", false},
		{"97807564047410", false},
		{"abcdefghij", false},
	}

	for _, tt := range tests {
		req := CreateBookRequest{
			Title:  "ISBN Probe",
			Author: "Author",
			Genre:  "SCIENCE",
			ISBN:   tt.isbn,
		}
		errs := ValidateStruct(req)
		if tt.ok {
			assert.NotContains(t, errs, "isbn", "isbn %q should be accepted", tt.isbn)
		} else {
			assert.Contains(t, errs, "isbn", "isbn %q should be rejected", tt.isbn)
		}
	}
}

func TestValidateStruct_BorrowRequest(t *testing.T) {
	bookID := "7e4a9f8e-1b7d-4a7e-9a54-2f4c0a4f9be2"

	t.Run("valid", func(t *testing.T) {
		errs := ValidateStruct(BorrowRequest{
			Book:     bookID,
			Quantity: 1,
			DueDate:  time.Now().Add(time.Hour),
		})
		assert.Nil(t, errs)
	})

	t.Run("past due date", func(t *testing.T) {
		errs := ValidateStruct(BorrowRequest{
			Book:     bookID,
			Quantity: 1,
			DueDate:  time.Now().Add(-time.Minute),
		})
		fe, ok := errs["dueDate"]
		assert.True(t, ok)
		assert.Equal(t, "future", fe.Kind)
	})

	t.Run("malformed book reference", func(t *testing.T) {
		errs := ValidateStruct(BorrowRequest{
			Book:     "not-an-id",
			Quantity: 1,
			DueDate:  time.Now().Add(time.Hour),
		})
		assert.Contains(t, errs, "book")
	})
}

func TestValidateStruct_UpdateBookRequest(t *testing.T) {
	t.Run("empty update is valid", func(t *testing.T) {
		assert.Nil(t, ValidateStruct(UpdateBookRequest{}))
	})

	t.Run("bad genre pointer", func(t *testing.T) {
		genre := "ROMANCE"
		errs := ValidateStruct(UpdateBookRequest{Genre: &genre})
		assert.Contains(t, errs, "genre")
	})
}
