package stackexchange

import "fmt"

// ErrorType represents different types of errors that can occur
type ErrorType string

const (
	ErrorTypeNetwork     ErrorType = "network"
	ErrorTypeRateLimit   ErrorType = "rate_limit"
	ErrorTypeAuth        ErrorType = "auth"
	ErrorTypeParsing     ErrorType = "parsing"
	ErrorTypeNotFound    ErrorType = "not_found"
	ErrorTypeServerError ErrorType = "server_error"
	ErrorTypeUnknown     ErrorType = "unknown"
)

// Error represents a Stack Exchange API error
type Error struct {
	Type    ErrorType
	Message string
	Code    int
}

func (e *Error) Error() string {
	return fmt.Sprintf("stackexchange %s error (code %d): %s", e.Type, e.Code, e.Message)
}

// classifyStatus maps an HTTP status code to an error type
func classifyStatus(statusCode int) ErrorType {
	switch {
	case statusCode == 400:
		return ErrorTypeParsing
	case statusCode == 401 || statusCode == 403:
		return ErrorTypeAuth
	case statusCode == 404:
		return ErrorTypeNotFound
	case statusCode == 429:
		return ErrorTypeRateLimit
	case statusCode >= 500:
		return ErrorTypeServerError
	default:
		return ErrorTypeUnknown
	}
}

// apiError builds an Error from the API's JSON error envelope. The Stack
// Exchange API reports throttling as error_id 502 with a 400 status.
func apiError(errorID int, name, message string) *Error {
	errType := ErrorTypeUnknown
	switch errorID {
	case 400:
		errType = ErrorTypeParsing
	case 401, 402, 403, 405, 406:
		errType = ErrorTypeAuth
	case 404:
		errType = ErrorTypeNotFound
	case 502:
		errType = ErrorTypeRateLimit
	case 500:
		errType = ErrorTypeServerError
	}
	return &Error{
		Type:    errType,
		Message: fmt.Sprintf("%s: %s", name, message),
		Code:    errorID,
	}
}
