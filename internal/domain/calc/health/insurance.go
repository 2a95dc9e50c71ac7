package health

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-advisor/backend/internal/domain/calc/numeric"
	"github.com/finance-advisor/backend/internal/domain/entity"
)

// RecommendedCoverageMultiple is the rule-of-thumb coverage target expressed
// as a multiple of annual income.
var RecommendedCoverageMultiple = decimal.NewFromInt(10)

var hundredPercent = decimal.NewFromInt(100)

// InsuranceAdequacyResult compares active coverage against the recommended
// target. CoverageRatioPercent is undefined when annual income is zero.
type InsuranceAdequacyResult struct {
	ActiveCoverage       decimal.Decimal
	AnnualPremium        decimal.Decimal
	RecommendedCoverage  decimal.Decimal
	CoverageGap          decimal.Decimal
	CoverageRatioPercent decimal.NullDecimal
	IsAdequate           bool
	ActivePolicies       int
}

// InsuranceAdequacy sums coverage and premiums across policies active at the
// as-of date and measures them against a target of ten times annual income.
// The gap is floored at zero; over-coverage is not reported as negative.
func InsuranceAdequacy(policies []entity.InsurancePolicy, annualIncome decimal.Decimal, asOf time.Time) InsuranceAdequacyResult {
	var coverage, premium decimal.Decimal
	active := 0
	for _, policy := range policies {
		if !policy.IsActive(asOf) {
			continue
		}
		coverage = coverage.Add(policy.Coverage)
		premium = premium.Add(policy.Premium)
		active++
	}

	recommended := annualIncome.Mul(RecommendedCoverageMultiple)
	gap := recommended.Sub(coverage)
	if gap.IsNegative() {
		gap = decimal.Zero
	}

	result := InsuranceAdequacyResult{
		ActiveCoverage:      numeric.RoundCurrency(coverage),
		AnnualPremium:       numeric.RoundCurrency(premium),
		RecommendedCoverage: numeric.RoundCurrency(recommended),
		CoverageGap:         numeric.RoundCurrency(gap),
		IsAdequate:          coverage.GreaterThanOrEqual(recommended) && recommended.IsPositive(),
		ActivePolicies:      active,
	}
	if recommended.IsPositive() {
		result.CoverageRatioPercent = decimal.NullDecimal{
			Decimal: numeric.RoundPercent(coverage.Div(recommended).Mul(hundredPercent)),
			Valid:   true,
		}
	}
	return result
}
