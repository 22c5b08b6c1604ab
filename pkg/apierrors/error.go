package apierrors

import (
	"fmt"
	"time"

	"taskdesk/pkg/translator"
)

// JsonErr represents the JSON structure for apierrors.
type JsonErr struct {
	ErrDetails Err `json:"error"`
}

// Err carries the translated message plus the HTTP status it travels with.
type Err struct {
	Message    string       `json:"message"`
	StatusCode int          `json:"statusCode"`
	Timestamp  string       `json:"timestamp"`
	Details    []FieldError `json:"details,omitempty"`
}

// FieldError points at a single offending request field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error implements the error interface for JsonErr.
func (e JsonErr) Error() string {
	return fmt.Sprintf("Code: %d, Message: %s", e.ErrDetails.StatusCode, e.ErrDetails.Message)
}

// CreateError generates a JsonErr with a translated message.
func CreateError(code int, msgKey string, lang string) JsonErr {
	return JsonErr{ErrDetails: Err{
		Message:    GetTransErrorMsg(msgKey, lang),
		StatusCode: code,
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
	}}
}

// CreateErrorWithDetails attaches per-field diagnostics to the error body.
func CreateErrorWithDetails(code int, msgKey string, lang string, details []FieldError) JsonErr {
	err := CreateError(code, msgKey, lang)
	err.ErrDetails.Details = details
	return err
}

// GetTransErrorMsg retrieves the translated error message.
func GetTransErrorMsg(msgKey string, lang string) string {
	return translator.Localize(msgKey, lang)
}
