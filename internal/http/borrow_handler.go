package http

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"libraryapi/internal/entity"
	"libraryapi/internal/httpx"
	"libraryapi/internal/usecase"
)

type BorrowHandler struct {
	borrows *usecase.BorrowUsecase
}

func NewBorrowHandler(borrows *usecase.BorrowUsecase) *BorrowHandler {
	return &BorrowHandler{borrows: borrows}
}

type BorrowRequest struct {
	Book     string    `json:"book" validate:"required,uuid"`
	Quantity int       `json:"quantity" validate:"required,gte=1"`
	DueDate  time.Time `json:"dueDate" validate:"required,future"`
}

func (h *BorrowHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req BorrowRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if errs := ValidateStruct(req); errs != nil {
		httpx.JSONValidationError(w, errs)
		return
	}

	br, err := h.borrows.Borrow(r.Context(), usecase.BorrowInput{
		BookID:   req.Book,
		Quantity: req.Quantity,
		DueDate:  req.DueDate,
	})
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrNotFound):
			httpx.JSONError(w, http.StatusNotFound, "Book not found")
		case errors.Is(err, usecase.ErrInsufficientStock):
			httpx.JSONError(w, http.StatusBadRequest, "Not enough copies available")
		case errors.Is(err, usecase.ErrDueDatePast):
			httpx.JSONValidationError(w, map[string]httpx.FieldError{
				"dueDate": {Message: "dueDate must be in the future", Kind: "future", Value: req.DueDate},
			})
		default:
			log.Printf("create borrow: request_id=%s error=%v", httpx.RequestIDFrom(r), err)
			httpx.JSONError(w, http.StatusInternalServerError, "Failed to borrow book")
		}
		return
	}
	httpx.JSONSuccessCreated(w, br)
}

func (h *BorrowHandler) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.borrows.Summary(r.Context())
	if err != nil {
		log.Printf("borrow summary: request_id=%s error=%v", httpx.RequestIDFrom(r), err)
		httpx.JSONError(w, http.StatusInternalServerError, "Failed to build borrow summary")
		return
	}
	if summary == nil {
		summary = []entity.BorrowSummary{}
	}
	httpx.JSONSuccess(w, summary)
}
