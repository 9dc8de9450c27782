package errors

import "fmt"

// FetchError is the single error shape crossing the fetcher boundary. Every
// failure talking to an external source is converted into one of these so the
// refresh job can apply the fallback policy in one place.
type FetchError struct {
	Code    string `json:"code"`
	Source  string `json:"source"`
	Message string `json:"message"`
	Cause   error  `json:"-"`
}

// Error implements the error interface
func (e *FetchError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s [%s]: %s (caused by: %v)", e.Code, e.Source, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s [%s]: %s", e.Code, e.Source, e.Message)
}

// Unwrap returns the underlying error
func (e *FetchError) Unwrap() error {
	return e.Cause
}

// Error codes for external-source failures
const (
	ErrCodeNetwork     = "NETWORK_ERROR"
	ErrCodeBadResponse = "BAD_RESPONSE"
	ErrCodeParse       = "PARSE_ERROR"
)

// Network wraps a transport-level failure (DNS, refused, timeout)
func Network(source, message string, cause error) *FetchError {
	return &FetchError{Code: ErrCodeNetwork, Source: source, Message: message, Cause: cause}
}

// BadResponse wraps an unexpected status or structurally broken payload
func BadResponse(source, message string, cause error) *FetchError {
	return &FetchError{Code: ErrCodeBadResponse, Source: source, Message: message, Cause: cause}
}

// Parse wraps a failure to extract records from an otherwise-delivered body
func Parse(source, message string, cause error) *FetchError {
	return &FetchError{Code: ErrCodeParse, Source: source, Message: message, Cause: cause}
}
