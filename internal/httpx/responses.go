package httpx

import (
	"encoding/json"
	"net/http"
)

// SuccessResponse is the envelope for every 2xx JSON body.
type SuccessResponse struct {
	Success    bool        `json:"success"`
	Data       interface{} `json:"data"`
	Pagination interface{} `json:"pagination,omitempty"`
}

// ErrorResponse is the envelope for every error JSON body. Errors carries
// the per-field validation map when the failure is a validation failure.
type ErrorResponse struct {
	Success bool                  `json:"success"`
	Message string                `json:"message"`
	Errors  map[string]FieldError `json:"errors,omitempty"`
}

// FieldError describes why a single request field was rejected.
type FieldError struct {
	Message string      `json:"message"`
	Kind    string      `json:"kind"`
	Value   interface{} `json:"value"`
}

func JSONSuccess(w http.ResponseWriter, data interface{}) {
	writeJSON(w, http.StatusOK, SuccessResponse{Success: true, Data: data})
}

func JSONSuccessPage(w http.ResponseWriter, data interface{}, pagination interface{}) {
	writeJSON(w, http.StatusOK, SuccessResponse{Success: true, Data: data, Pagination: pagination})
}

func JSONSuccessCreated(w http.ResponseWriter, data interface{}) {
	writeJSON(w, http.StatusCreated, SuccessResponse{Success: true, Data: data})
}

func JSONError(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, ErrorResponse{Success: false, Message: message})
}

func JSONValidationError(w http.ResponseWriter, errs map[string]FieldError) {
	writeJSON(w, http.StatusBadRequest, ErrorResponse{
		Success: false,
		Message: "Validation failed",
		Errors:  errs,
	})
}

func writeJSON(w http.ResponseWriter, statusCode int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(body)
}
