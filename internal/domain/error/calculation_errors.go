// Package error defines domain-specific errors for the Finance Advisor application.
package error

import "errors"

// Calculation engine errors. A calculation error means a numeric precondition
// was violated; the same input always fails the same way, so these are never
// retried.
var (
	// ErrNegativePrincipal is returned when a principal amount is negative.
	ErrNegativePrincipal = errors.New("principal must not be negative")

	// ErrNonPositivePrincipal is returned when a principal must be strictly positive.
	ErrNonPositivePrincipal = errors.New("principal must be greater than zero")

	// ErrNegativeRate is returned when an interest rate is negative.
	ErrNegativeRate = errors.New("interest rate must not be negative")

	// ErrNonPositiveTerm is returned when a loan term is zero or negative.
	ErrNonPositiveTerm = errors.New("term in months must be greater than zero")

	// ErrNonPositivePeriods is returned when a compounding frequency is zero or negative.
	ErrNonPositivePeriods = errors.New("compounding periods per year must be greater than zero")

	// ErrNegativeYears is returned when a duration in years is negative.
	ErrNegativeYears = errors.New("years must not be negative")

	// ErrNonPositiveYears is returned when a duration in years must be strictly positive.
	ErrNonPositiveYears = errors.New("years must be greater than zero")

	// ErrNonPositiveInitialValue is returned when CAGR is requested for a non-positive starting value.
	ErrNonPositiveInitialValue = errors.New("initial value must be greater than zero")

	// ErrNegativeFinalValue is returned when a final value is negative.
	ErrNegativeFinalValue = errors.New("final value must not be negative")

	// ErrNegativeContribution is returned when a recurring contribution is negative.
	ErrNegativeContribution = errors.New("contribution must not be negative")

	// ErrNegativeMonths is returned when a duration in months is negative.
	ErrNegativeMonths = errors.New("months must not be negative")

	// ErrNegativeLumpSum is returned when a prepayment lump sum is negative.
	ErrNegativeLumpSum = errors.New("lump sum must not be negative")

	// ErrInvalidPrepaymentMonth is returned when a prepayment month falls outside the schedule.
	ErrInvalidPrepaymentMonth = errors.New("prepayment month must fall within the loan term")

	// ErrNonPositiveTarget is returned when a goal target amount is zero or negative.
	ErrNonPositiveTarget = errors.New("target amount must be greater than zero")

	// ErrNegativeCurrentAmount is returned when a goal's saved amount is negative.
	ErrNegativeCurrentAmount = errors.New("current amount must not be negative")
)

// CalculationErrorCode defines error codes for calculation errors.
// Format: CALC-XXYYYY where XX is the engine component and YYYY the specific error.
type CalculationErrorCode string

const (
	// Numeric primitive errors (01XXXX)
	ErrCodeNegativePrincipal    CalculationErrorCode = "CALC-010001"
	ErrCodeNegativeRate         CalculationErrorCode = "CALC-010002"
	ErrCodeNonPositivePeriods   CalculationErrorCode = "CALC-010003"
	ErrCodeNegativeYears        CalculationErrorCode = "CALC-010004"
	ErrCodeNegativeContribution CalculationErrorCode = "CALC-010005"
	ErrCodeNegativeMonths       CalculationErrorCode = "CALC-010006"

	// Loan analytics errors (02XXXX)
	ErrCodeNonPositivePrincipal   CalculationErrorCode = "CALC-020001"
	ErrCodeNonPositiveTerm        CalculationErrorCode = "CALC-020002"
	ErrCodeNegativeLumpSum        CalculationErrorCode = "CALC-020003"
	ErrCodeInvalidPrepaymentMonth CalculationErrorCode = "CALC-020004"

	// Investment analytics errors (03XXXX)
	ErrCodeNonPositiveInitialValue CalculationErrorCode = "CALC-030001"
	ErrCodeNegativeFinalValue      CalculationErrorCode = "CALC-030002"
	ErrCodeNonPositiveYears        CalculationErrorCode = "CALC-030003"

	// Goal planner errors (04XXXX)
	ErrCodeNonPositiveTarget     CalculationErrorCode = "CALC-040001"
	ErrCodeNegativeCurrentAmount CalculationErrorCode = "CALC-040002"
)

// CalculationError represents an invalid-input error from the calculation
// engine with a stable code and human-readable message.
type CalculationError struct {
	Code    CalculationErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *CalculationError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *CalculationError) Unwrap() error {
	return e.Err
}

// NewCalculationError creates a new CalculationError with the given code and message.
func NewCalculationError(code CalculationErrorCode, message string, err error) *CalculationError {
	return &CalculationError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
