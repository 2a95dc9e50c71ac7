// Package error defines domain-specific errors for the Finance Advisor application.
package error

import "errors"

// Chat/advisor errors.
var (
	// ErrEmptyQuestion is returned when the chat question is empty.
	ErrEmptyQuestion = errors.New("question must not be empty")

	// ErrAdvisorUnavailable is returned when the advisor service is not configured or unreachable.
	ErrAdvisorUnavailable = errors.New("advisor service is unavailable")
)

// ChatErrorCode defines error codes for chat errors.
// Format: CHAT-XXYYYY where XX is category and YYYY is specific error.
type ChatErrorCode string

const (
	ErrCodeEmptyQuestion      ChatErrorCode = "CHAT-010001"
	ErrCodeAdvisorUnavailable ChatErrorCode = "CHAT-020001"
)

// ChatError represents a chat error with code and message.
type ChatError struct {
	Code    ChatErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ChatError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ChatError) Unwrap() error {
	return e.Err
}

// NewChatError creates a new ChatError with the given code and message.
func NewChatError(code ChatErrorCode, message string, err error) *ChatError {
	return &ChatError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
