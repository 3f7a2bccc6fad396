package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBook_SetCopies(t *testing.T) {
	b := Book{Title: "The Test Book", Copies: 4, Available: true}

	tests := []struct {
		name          string
		copies        int
		wantErr       error
		wantAvailable bool
	}{
		{name: "positive copies", copies: 3, wantAvailable: true},
		{name: "down to zero", copies: 0, wantAvailable: false},
		{name: "back up from zero", copies: 7, wantAvailable: true},
		{name: "negative rejected", copies: -1, wantErr: ErrNegativeCopies, wantAvailable: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := b.Copies
			err := b.SetCopies(tt.copies)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				// failed update must not mutate
				assert.Equal(t, before, b.Copies)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.copies, b.Copies)
			}
			assert.Equal(t, tt.wantAvailable, b.Available)
		})
	}
}

func TestNormalizeGenre(t *testing.T) {
	tests := []struct {
		in    string
		want  string
		known bool
	}{
		{"FANTASY", "FANTASY", true},
		{"fantasy", "FANTASY", true},
		{"  non_fiction ", "NON_FICTION", true},
		{"Science", "SCIENCE", true},
		{"COOKING", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, ok := NormalizeGenre(tt.in)
		assert.Equal(t, tt.known, ok, "input %q", tt.in)
		assert.Equal(t, tt.want, got, "input %q", tt.in)
	}
}
