package analytics

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/finance-advisor/backend/internal/domain/calc/investment"
	"github.com/finance-advisor/backend/internal/domain/calc/numeric"
)

// ProjectSIPInput represents the input for a systematic-investment projection.
type ProjectSIPInput struct {
	MonthlyContribution decimal.Decimal
	AnnualRatePercent   decimal.Decimal
	Months              int
}

// ProjectSIPOutput represents the output of a systematic-investment projection.
type ProjectSIPOutput struct {
	SIP *investment.SIPResult
}

// ProjectSIPUseCase is a stateless projection calculator; it reads nothing
// and writes nothing.
type ProjectSIPUseCase struct{}

// NewProjectSIPUseCase creates a new ProjectSIPUseCase instance.
func NewProjectSIPUseCase() *ProjectSIPUseCase {
	return &ProjectSIPUseCase{}
}

// Execute performs the projection.
func (uc *ProjectSIPUseCase) Execute(_ context.Context, input ProjectSIPInput) (*ProjectSIPOutput, error) {
	result, err := investment.SIPFutureValue(input.MonthlyContribution, input.AnnualRatePercent, input.Months)
	if err != nil {
		return nil, err
	}
	return &ProjectSIPOutput{SIP: result}, nil
}

// CompoundInterestInput represents the input for a lump-sum growth projection.
type CompoundInterestInput struct {
	Principal         decimal.Decimal
	AnnualRatePercent decimal.Decimal
	Years             decimal.Decimal
	CompoundsPerYear  int
}

// CompoundInterestOutput represents the output of a lump-sum growth projection.
type CompoundInterestOutput struct {
	FutureValue decimal.Decimal
	Growth      decimal.Decimal
}

// CompoundInterestUseCase is a stateless compound-growth calculator.
type CompoundInterestUseCase struct{}

// NewCompoundInterestUseCase creates a new CompoundInterestUseCase instance.
func NewCompoundInterestUseCase() *CompoundInterestUseCase {
	return &CompoundInterestUseCase{}
}

// Execute performs the projection. CompoundsPerYear defaults to annual
// compounding when zero.
func (uc *CompoundInterestUseCase) Execute(_ context.Context, input CompoundInterestInput) (*CompoundInterestOutput, error) {
	compounds := input.CompoundsPerYear
	if compounds <= 0 {
		compounds = 1
	}

	future, err := numeric.CompoundInterest(input.Principal, input.AnnualRatePercent, compounds, input.Years)
	if err != nil {
		return nil, err
	}

	return &CompoundInterestOutput{
		FutureValue: future,
		Growth:      future.Sub(input.Principal),
	}, nil
}
