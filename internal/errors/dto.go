package errors

import (
	"encoding/json"
	"strings"

	"github.com/cockroachdb/errors"
)

// ErrorResponse represents the standard error response structure
type ErrorResponse struct {
	Success bool        `json:"success"`
	Error   ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Display       string         `json:"message"`
	InternalError string         `json:"internal_error,omitempty"`
	Details       map[string]any `json:"details,omitempty"`
}

// NewErrorResponse builds the wire representation of an error using the
// hints and safe details attached by the builder.
func NewErrorResponse(err error) *ErrorResponse {
	if err == nil {
		return nil
	}

	resp := &ErrorResponse{
		Success: false,
		Error: ErrorDetail{
			Display:       displayMessage(err),
			InternalError: err.Error(),
		},
	}

	for _, detail := range errors.GetSafeDetails(err).SafeDetails {
		if !strings.HasPrefix(detail, "__json__:") {
			continue
		}
		parsed := map[string]any{}
		if jsonErr := json.Unmarshal([]byte(strings.TrimPrefix(detail, "__json__:")), &parsed); jsonErr == nil {
			resp.Error.Details = parsed
			break
		}
	}

	return resp
}

func displayMessage(err error) string {
	hints := errors.GetAllHints(err)
	if len(hints) > 0 {
		return hints[0]
	}
	return "An unexpected error occurred"
}
