package entity

import "time"

// Borrow is a lending transaction: a quantity of one book lent out until a
// due date. Borrow rows are created by the borrow workflow and removed only
// when their book is deleted; they are never updated in place.
type Borrow struct {
	ID        string    `json:"id"`
	BookID    string    `json:"book"`
	Quantity  int       `json:"quantity"`
	DueDate   time.Time `json:"dueDate"`
	CreatedAt time.Time `json:"createdAt"`
}

// BorrowSummary is one row of the aggregated report: total quantity ever
// borrowed for a single book.
type BorrowSummary struct {
	BookTitle     string `json:"bookTitle"`
	ISBN          string `json:"isbn"`
	TotalQuantity int    `json:"totalQuantityBorrowed"`
}
