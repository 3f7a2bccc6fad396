package entity

import (
	"errors"
	"strings"
	"time"
)

// ErrNegativeCopies is returned when a copy count would go below zero.
var ErrNegativeCopies = errors.New("copies must be a non-negative integer")

// Genres is the closed set of accepted book genres.
var Genres = []string{
	"FICTION",
	"NON_FICTION",
	"SCIENCE",
	"HISTORY",
	"BIOGRAPHY",
	"FANTASY",
}

// NormalizeGenre maps case-insensitive input onto the closed genre set.
// The second return value is false when the input is not a known genre.
func NormalizeGenre(s string) (string, bool) {
	upper := strings.ToUpper(strings.TrimSpace(s))
	for _, g := range Genres {
		if g == upper {
			return g, true
		}
	}
	return "", false
}

// Book represents a book tracked by the library.
type Book struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Author      string    `json:"author"`
	Genre       string    `json:"genre"`
	ISBN        string    `json:"isbn"`
	Description string    `json:"description,omitempty"`
	Copies      int       `json:"copies"`
	Available   bool      `json:"available"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// SetCopies is the single mutation point for the copy count. It rejects
// negative values and keeps Available consistent with Copies, so a caller
// cannot leave copies == 0 still flagged available.
func (b *Book) SetCopies(n int) error {
	if n < 0 {
		return ErrNegativeCopies
	}
	b.Copies = n
	b.Available = n > 0
	return nil
}
