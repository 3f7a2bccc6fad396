package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"time"

	"libraryapi/internal/entity"
)

// TestBook is a canned book for tests.
var TestBook = entity.Book{
	ID:          "7e4a9f8e-1b7d-4a7e-9a54-2f4c0a4f9be2",
	Title:       "The Name of the Wind",
	Author:      "Patrick Rothfuss",
	Genre:       "FANTASY",
	ISBN:        "9780756404741",
	Description: "A test book",
	Copies:      3,
	Available:   true,
	CreatedAt:   time.Now(),
	UpdatedAt:   time.Now(),
}

// TestBorrow is a canned borrow record for tests.
var TestBorrow = entity.Borrow{
	ID:        "c1a7cbb7-55c4-4e1f-8f58-0a40f6cf34bb",
	BookID:    TestBook.ID,
	Quantity:  2,
	DueDate:   time.Now().Add(14 * 24 * time.Hour),
	CreatedAt: time.Now(),
}

// NewRequest creates a JSON HTTP request for testing.
func NewRequest(method, path string, body interface{}) *http.Request {
	var bodyBytes []byte
	if body != nil {
		bodyBytes, _ = json.Marshal(body)
	}
	var r *http.Request
	if bodyBytes != nil {
		r = httptest.NewRequest(method, path, bytes.NewReader(bodyBytes))
		r.Header.Set("Content-Type", "application/json")
	} else {
		r = httptest.NewRequest(method, path, nil)
	}
	return r
}

// RecordResponse holds a decoded test response.
type RecordResponse struct {
	Code   int
	Header http.Header
	Body   map[string]interface{}
}

// RecordHTTPResponse decodes the recorded response body as JSON.
func RecordHTTPResponse(w *httptest.ResponseRecorder) RecordResponse {
	result := w.Result()
	defer result.Body.Close()

	bodyBytes, _ := io.ReadAll(result.Body)

	var bodyMap map[string]interface{}
	if len(bodyBytes) > 0 {
		_ = json.NewDecoder(bytes.NewReader(bodyBytes)).Decode(&bodyMap)
	}

	return RecordResponse{
		Code:   result.StatusCode,
		Header: result.Header,
		Body:   bodyMap,
	}
}
