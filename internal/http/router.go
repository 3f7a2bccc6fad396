package http

import (
	"context"
	"net/http"
	"time"

	"libraryapi/internal/httpx"
)

// NewRouter wires the API routes. The ready func is probed by /readyz and
// usually pings the database pool.
func NewRouter(books *BookHandler, borrows *BorrowHandler, ready func(ctx context.Context) error) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	mux.HandleFunc("GET /readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 500*time.Millisecond)
		defer cancel()
		if err := ready(ctx); err != nil {
			http.Error(w, "db not ready", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	mux.HandleFunc("POST /api/books", books.Create)
	mux.HandleFunc("GET /api/books", books.List)
	mux.HandleFunc("GET /api/books/{bookId}", books.GetByID)
	mux.HandleFunc("PUT /api/books/{bookId}", books.Update)
	mux.HandleFunc("DELETE /api/books/{bookId}", books.Delete)

	mux.HandleFunc("POST /api/borrow", borrows.Create)
	mux.HandleFunc("GET /api/borrow", borrows.Summary)

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		httpx.JSONError(w, http.StatusNotFound, "Route not found")
	})

	return mux
}
