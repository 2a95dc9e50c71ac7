package finance

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-advisor/backend/internal/application/adapter"
	calcloan "github.com/finance-advisor/backend/internal/domain/calc/loan"
	"github.com/finance-advisor/backend/internal/domain/entity"
	domainerror "github.com/finance-advisor/backend/internal/domain/error"
)

// CreateLoanInput represents the input for loan creation.
type CreateLoanInput struct {
	UserID                    uuid.UUID
	Principal                 decimal.Decimal
	AnnualInterestRatePercent decimal.Decimal
	TermMonths                int
	StartDate                 time.Time
}

// CreateLoanOutput represents the output of loan creation.
type CreateLoanOutput struct {
	Loan *entity.Loan
}

// CreateLoanUseCase handles loan creation. The monthly EMI is computed once
// at creation from principal, rate and term, and stored with the loan.
type CreateLoanUseCase struct {
	loanRepo adapter.LoanRepository
	cache    adapter.MetricsCache
}

// NewCreateLoanUseCase creates a new CreateLoanUseCase instance.
func NewCreateLoanUseCase(loanRepo adapter.LoanRepository, cache adapter.MetricsCache) *CreateLoanUseCase {
	return &CreateLoanUseCase{
		loanRepo: loanRepo,
		cache:    cache,
	}
}

// Execute performs the loan creation.
func (uc *CreateLoanUseCase) Execute(ctx context.Context, input CreateLoanInput) (*CreateLoanOutput, error) {
	if input.StartDate.IsZero() {
		return nil, domainerror.NewFinanceError(
			domainerror.ErrCodeMissingDate,
			"start date is required",
			domainerror.ErrMissingDate,
		)
	}

	// CalculateEMI also validates principal, rate and term.
	emi, err := calcloan.CalculateEMI(input.Principal, input.AnnualInterestRatePercent, input.TermMonths)
	if err != nil {
		return nil, err
	}

	loan := entity.NewLoan(
		input.UserID,
		input.Principal,
		input.AnnualInterestRatePercent,
		input.TermMonths,
		emi.MonthlyEMI,
		input.StartDate,
	)

	if err := uc.loanRepo.Create(ctx, loan); err != nil {
		return nil, fmt.Errorf("failed to create loan: %w", err)
	}

	invalidateDashboard(ctx, uc.cache, input.UserID)

	return &CreateLoanOutput{Loan: loan}, nil
}

// ListLoansInput represents the input for listing loans.
type ListLoansInput struct {
	UserID uuid.UUID
}

// ListLoansOutput represents the output of listing loans.
type ListLoansOutput struct {
	Loans []entity.Loan
}

// ListLoansUseCase handles listing loans.
type ListLoansUseCase struct {
	loanRepo adapter.LoanRepository
}

// NewListLoansUseCase creates a new ListLoansUseCase instance.
func NewListLoansUseCase(loanRepo adapter.LoanRepository) *ListLoansUseCase {
	return &ListLoansUseCase{loanRepo: loanRepo}
}

// Execute performs the loan listing.
func (uc *ListLoansUseCase) Execute(ctx context.Context, input ListLoansInput) (*ListLoansOutput, error) {
	loans, err := uc.loanRepo.FindByUserID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list loans: %w", err)
	}
	return &ListLoansOutput{Loans: loans}, nil
}

// UpdateLoanBalanceInput represents the input for an outstanding balance update.
type UpdateLoanBalanceInput struct {
	UserID               uuid.UUID
	ID                   uuid.UUID
	OutstandingPrincipal decimal.Decimal
}

// UpdateLoanBalanceUseCase handles outstanding balance updates after repayments.
type UpdateLoanBalanceUseCase struct {
	loanRepo adapter.LoanRepository
	cache    adapter.MetricsCache
}

// NewUpdateLoanBalanceUseCase creates a new UpdateLoanBalanceUseCase instance.
func NewUpdateLoanBalanceUseCase(loanRepo adapter.LoanRepository, cache adapter.MetricsCache) *UpdateLoanBalanceUseCase {
	return &UpdateLoanBalanceUseCase{
		loanRepo: loanRepo,
		cache:    cache,
	}
}

// Execute updates the outstanding balance of a loan. The balance must stay
// within [0, principal].
func (uc *UpdateLoanBalanceUseCase) Execute(ctx context.Context, input UpdateLoanBalanceInput) error {
	loan, err := uc.loanRepo.FindByID(ctx, input.ID)
	if err != nil {
		return err
	}
	if loan.UserID != input.UserID {
		return domainerror.NewFinanceError(
			domainerror.ErrCodeUnauthorizedRecordAccess,
			"record does not belong to user",
			domainerror.ErrUnauthorizedRecordAccess,
		)
	}

	if input.OutstandingPrincipal.IsNegative() || input.OutstandingPrincipal.GreaterThan(loan.Principal) {
		return domainerror.NewFinanceError(
			domainerror.ErrCodeNegativeAmount,
			"outstanding balance must be between zero and the principal",
			domainerror.ErrNegativeAmount,
		)
	}

	loan.OutstandingPrincipal = input.OutstandingPrincipal
	loan.UpdatedAt = time.Now().UTC()

	if err := uc.loanRepo.Update(ctx, loan); err != nil {
		return fmt.Errorf("failed to update loan balance: %w", err)
	}

	invalidateDashboard(ctx, uc.cache, input.UserID)
	return nil
}

// DeleteLoanInput represents the input for loan deletion.
type DeleteLoanInput struct {
	UserID uuid.UUID
	ID     uuid.UUID
}

// DeleteLoanUseCase handles loan deletion.
type DeleteLoanUseCase struct {
	loanRepo adapter.LoanRepository
	cache    adapter.MetricsCache
}

// NewDeleteLoanUseCase creates a new DeleteLoanUseCase instance.
func NewDeleteLoanUseCase(loanRepo adapter.LoanRepository, cache adapter.MetricsCache) *DeleteLoanUseCase {
	return &DeleteLoanUseCase{
		loanRepo: loanRepo,
		cache:    cache,
	}
}

// Execute performs the loan deletion.
func (uc *DeleteLoanUseCase) Execute(ctx context.Context, input DeleteLoanInput) error {
	loan, err := uc.loanRepo.FindByID(ctx, input.ID)
	if err != nil {
		return err
	}
	if loan.UserID != input.UserID {
		return domainerror.NewFinanceError(
			domainerror.ErrCodeUnauthorizedRecordAccess,
			"record does not belong to user",
			domainerror.ErrUnauthorizedRecordAccess,
		)
	}

	if err := uc.loanRepo.Delete(ctx, input.ID); err != nil {
		return fmt.Errorf("failed to delete loan: %w", err)
	}

	invalidateDashboard(ctx, uc.cache, input.UserID)
	return nil
}
