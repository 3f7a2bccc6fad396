package http

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"libraryapi/internal/entity"
	"libraryapi/internal/httpx"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	// report errors under the json field name, not the Go field name
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	validate.RegisterValidation("bookgenre", validateGenre)
	validate.RegisterValidation("isbn", validateISBN)
	validate.RegisterValidation("future", validateFuture)
}

func validateGenre(fl validator.FieldLevel) bool {
	_, ok := entity.NormalizeGenre(fl.Field().String())
	return ok
}

func validateISBN(fl validator.FieldLevel) bool {
	isbn := fl.Field().String()
	isbn = strings.ReplaceAll(isbn, "-", "")
	isbn = strings.ReplaceAll(isbn, " ", "")

	if len(isbn) == 10 {
		matched, _ := regexp.MatchString(`^\d{9}[\dX]$`, isbn)
		return matched
	}
	if len(isbn) == 13 {
		matched, _ := regexp.MatchString(`^\d{13}$`, isbn)
		return matched
	}
	return false
}

func validateFuture(fl validator.FieldLevel) bool {
	t, ok := fl.Field().Interface().(time.Time)
	if !ok {
		return false
	}
	return t.After(time.Now())
}

// ValidateStruct validates a request struct and returns the per-field error
// map for the 400 response body, or nil when the struct is valid.
func ValidateStruct(s interface{}) map[string]httpx.FieldError {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	out := make(map[string]httpx.FieldError)
	for _, fe := range err.(validator.ValidationErrors) {
		out[fe.Field()] = httpx.FieldError{
			Message: messageFor(fe),
			Kind:    fe.Tag(),
			Value:   fe.Value(),
		}
	}
	return out
}

func messageFor(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "uuid":
		return fmt.Sprintf("%s must be a valid identifier", field)
	case "bookgenre":
		return fmt.Sprintf("%s must be one of %s", field, strings.Join(entity.Genres, ", "))
	case "isbn":
		return fmt.Sprintf("%s must be a valid ISBN (10 or 13 digits)", field)
	case "future":
		return fmt.Sprintf("%s must be in the future", field)
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
