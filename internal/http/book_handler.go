package http

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"libraryapi/internal/entity"
	"libraryapi/internal/httpx"
	"libraryapi/internal/usecase"
)

type BookHandler struct {
	repo usecase.BookRepository
}

func NewBookHandler(repo usecase.BookRepository) *BookHandler {
	return &BookHandler{repo: repo}
}

type CreateBookRequest struct {
	Title       string `json:"title" validate:"required,max=200"`
	Author      string `json:"author" validate:"required,max=120"`
	Genre       string `json:"genre" validate:"required,bookgenre"`
	ISBN        string `json:"isbn" validate:"required,isbn"`
	Description string `json:"description" validate:"max=2000"`
	Copies      int    `json:"copies" validate:"gte=0"`
}

type UpdateBookRequest struct {
	Title       *string `json:"title" validate:"omitempty,max=200"`
	Author      *string `json:"author" validate:"omitempty,max=120"`
	Genre       *string `json:"genre" validate:"omitempty,bookgenre"`
	ISBN        *string `json:"isbn" validate:"omitempty,isbn"`
	Description *string `json:"description" validate:"omitempty,max=2000"`
	Copies      *int    `json:"copies" validate:"omitempty,gte=0"`
}

func (h *BookHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateBookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if errs := ValidateStruct(req); errs != nil {
		httpx.JSONValidationError(w, errs)
		return
	}

	genre, _ := entity.NormalizeGenre(req.Genre)
	b := entity.Book{
		Title:       req.Title,
		Author:      req.Author,
		Genre:       genre,
		ISBN:        req.ISBN,
		Description: req.Description,
	}
	if err := b.SetCopies(req.Copies); err != nil {
		httpx.JSONValidationError(w, map[string]httpx.FieldError{
			"copies": {Message: err.Error(), Kind: "gte", Value: req.Copies},
		})
		return
	}

	if err := h.repo.Create(r.Context(), &b); err != nil {
		log.Printf("create book: request_id=%s error=%v", httpx.RequestIDFrom(r), err)
		httpx.JSONError(w, http.StatusInternalServerError, "Failed to create book")
		return
	}
	httpx.JSONSuccessCreated(w, b)
}

func (h *BookHandler) List(w http.ResponseWriter, r *http.Request) {
	params, errs := parseListParams(r)
	if errs != nil {
		httpx.JSONValidationError(w, errs)
		return
	}

	books, total, err := h.repo.List(r.Context(), params)
	if err != nil {
		log.Printf("list books: request_id=%s error=%v", httpx.RequestIDFrom(r), err)
		httpx.JSONError(w, http.StatusInternalServerError, "Failed to list books")
		return
	}
	if books == nil {
		books = []entity.Book{}
	}
	httpx.JSONSuccessPage(w, books, usecase.NewPagination(params, total))
}

func (h *BookHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := bookID(w, r)
	if !ok {
		return
	}

	b, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		h.writeBookError(w, r, err, "get book")
		return
	}
	httpx.JSONSuccess(w, b)
}

func (h *BookHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := bookID(w, r)
	if !ok {
		return
	}

	var req UpdateBookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if errs := ValidateStruct(req); errs != nil {
		httpx.JSONValidationError(w, errs)
		return
	}

	upd := usecase.BookUpdate{
		Title:       req.Title,
		Author:      req.Author,
		ISBN:        req.ISBN,
		Description: req.Description,
		Copies:      req.Copies,
	}
	if req.Genre != nil {
		genre, _ := entity.NormalizeGenre(*req.Genre)
		upd.Genre = &genre
	}

	b, err := h.repo.Update(r.Context(), id, upd)
	if err != nil {
		if errors.Is(err, entity.ErrNegativeCopies) {
			httpx.JSONValidationError(w, map[string]httpx.FieldError{
				"copies": {Message: err.Error(), Kind: "gte", Value: req.Copies},
			})
			return
		}
		h.writeBookError(w, r, err, "update book")
		return
	}
	httpx.JSONSuccess(w, b)
}

func (h *BookHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := bookID(w, r)
	if !ok {
		return
	}

	b, err := h.repo.Delete(r.Context(), id)
	if err != nil {
		h.writeBookError(w, r, err, "delete book")
		return
	}
	httpx.JSONSuccess(w, b)
}

func (h *BookHandler) writeBookError(w http.ResponseWriter, r *http.Request, err error, op string) {
	if errors.Is(err, usecase.ErrNotFound) {
		httpx.JSONError(w, http.StatusNotFound, "Book not found")
		return
	}
	log.Printf("%s: request_id=%s error=%v", op, httpx.RequestIDFrom(r), err)
	httpx.JSONError(w, http.StatusInternalServerError, "Something went wrong")
}

// bookID extracts and checks the {bookId} path parameter. A malformed id is
// a 400, not a 404: the route matched, the identifier didn't.
func bookID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := r.PathValue("bookId")
	if _, err := uuid.Parse(id); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "Invalid book id")
		return "", false
	}
	return id, true
}

func parseListParams(r *http.Request) (usecase.ListParams, map[string]httpx.FieldError) {
	q := r.URL.Query()
	errs := make(map[string]httpx.FieldError)

	params := usecase.ListParams{
		SortBy: "createdAt",
		Limit:  10,
		Page:   1,
	}

	if v := q.Get("filter"); v != "" {
		genre, ok := entity.NormalizeGenre(v)
		if !ok {
			errs["filter"] = httpx.FieldError{
				Message: "filter must be a known genre",
				Kind:    "bookgenre",
				Value:   v,
			}
		}
		params.Genre = genre
	}

	if v := q.Get("sortBy"); v != "" {
		if !sortableFields[v] {
			errs["sortBy"] = httpx.FieldError{
				Message: "sortBy must be a book field",
				Kind:    "oneof",
				Value:   v,
			}
		}
		params.SortBy = v
	}

	switch v := q.Get("sort"); v {
	case "", "asc":
	case "desc":
		params.Desc = true
	default:
		errs["sort"] = httpx.FieldError{
			Message: "sort must be asc or desc",
			Kind:    "oneof",
			Value:   v,
		}
	}

	if v := q.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			errs["limit"] = httpx.FieldError{
				Message: "limit must be a positive integer",
				Kind:    "gte",
				Value:   v,
			}
		} else {
			params.Limit = n
		}
	}

	if v := q.Get("page"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			errs["page"] = httpx.FieldError{
				Message: "page must be a positive integer",
				Kind:    "gte",
				Value:   v,
			}
		} else {
			params.Page = n
		}
	}

	if len(errs) > 0 {
		return usecase.ListParams{}, errs
	}
	return params, nil
}

var sortableFields = map[string]bool{
	"title":     true,
	"author":    true,
	"genre":     true,
	"isbn":      true,
	"copies":    true,
	"available": true,
	"createdAt": true,
	"updatedAt": true,
}
