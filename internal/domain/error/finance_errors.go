// Package error defines domain-specific errors for the Finance Advisor application.
package error

import "errors"

// Finance record errors.
var (
	// ErrRecordNotFound is returned when a financial record is not found.
	ErrRecordNotFound = errors.New("record not found")

	// ErrNegativeAmount is returned when a record amount is negative.
	ErrNegativeAmount = errors.New("amount must not be negative")

	// ErrMissingCategory is returned when a record category is empty.
	ErrMissingCategory = errors.New("category is required")

	// ErrMissingDate is returned when a record date is missing.
	ErrMissingDate = errors.New("date is required")

	// ErrUnauthorizedRecordAccess is returned when a record belongs to another user.
	ErrUnauthorizedRecordAccess = errors.New("unauthorized access to record")

	// ErrBudgetAlreadyExists is returned when a category already has a budget.
	ErrBudgetAlreadyExists = errors.New("budget already exists for this category")
)

// FinanceErrorCode defines error codes for finance record errors.
// Format: FIN-XXYYYY where XX is category and YYYY is specific error.
type FinanceErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeNegativeAmount      FinanceErrorCode = "FIN-010001"
	ErrCodeMissingCategory     FinanceErrorCode = "FIN-010002"
	ErrCodeMissingDate         FinanceErrorCode = "FIN-010003"
	ErrCodeMissingRecordFields FinanceErrorCode = "FIN-010004"

	// Access errors (02XXXX)
	ErrCodeRecordNotFound           FinanceErrorCode = "FIN-020001"
	ErrCodeUnauthorizedRecordAccess FinanceErrorCode = "FIN-020002"

	// Conflict errors (03XXXX)
	ErrCodeBudgetAlreadyExists FinanceErrorCode = "FIN-030001"
)

// FinanceError represents a finance record error with code and message.
type FinanceError struct {
	Code    FinanceErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *FinanceError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *FinanceError) Unwrap() error {
	return e.Err
}

// NewFinanceError creates a new FinanceError with the given code and message.
func NewFinanceError(code FinanceErrorCode, message string, err error) *FinanceError {
	return &FinanceError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
