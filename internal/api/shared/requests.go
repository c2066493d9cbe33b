package shared

import (
	"encoding/json"
	"errors"
	"mime"
	"net/http"

	"github.com/go-playground/validator/v10"
)

// ErrUnsupportedMediaType indicates the request did not declare a JSON body.
var ErrUnsupportedMediaType = errors.New("content type must be application/json")

// Global validator instance for reuse.
var validate = validator.New()

// DecodeJSON checks the declared content type and decodes the request body
// into the given struct. A missing or non-JSON content type returns
// ErrUnsupportedMediaType so handlers can answer 415 rather than 400.
func DecodeJSON(r *http.Request, v interface{}) error {
	contentType := r.Header.Get("Content-Type")
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil || mediaType != "application/json" {
		return ErrUnsupportedMediaType
	}

	return json.NewDecoder(r.Body).Decode(v)
}

// ValidateRequest validates the given struct using its validate tags.
func ValidateRequest(v interface{}) error {
	return validate.Struct(v)
}
