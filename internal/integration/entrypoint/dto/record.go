// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-advisor/backend/internal/domain/entity"
)

// CreateIncomeRequest represents the request body for income creation.
type CreateIncomeRequest struct {
	Amount   decimal.Decimal `json:"amount" binding:"required"`
	Date     string          `json:"date" binding:"required"`
	Category string          `json:"category" binding:"required"`
	Source   string          `json:"source,omitempty"`
}

// IncomeResponse represents a single income entry in API responses.
type IncomeResponse struct {
	ID        string    `json:"id"`
	Amount    string    `json:"amount"`
	Date      string    `json:"date"`
	Category  string    `json:"category"`
	Source    string    `json:"source,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// IncomeListResponse represents the response for listing income entries.
type IncomeListResponse struct {
	Incomes []IncomeResponse `json:"incomes"`
}

// ToIncomeResponse converts a domain IncomeEntry entity to an IncomeResponse DTO.
func ToIncomeResponse(income *entity.IncomeEntry) IncomeResponse {
	return IncomeResponse{
		ID:        income.ID.String(),
		Amount:    income.Amount.String(),
		Date:      FormatDate(income.Date),
		Category:  income.Category,
		Source:    income.Source,
		CreatedAt: income.CreatedAt,
	}
}

// ToIncomeListResponse converts income entries to an IncomeListResponse DTO.
func ToIncomeListResponse(incomes []entity.IncomeEntry) IncomeListResponse {
	responses := make([]IncomeResponse, 0, len(incomes))
	for i := range incomes {
		responses = append(responses, ToIncomeResponse(&incomes[i]))
	}
	return IncomeListResponse{Incomes: responses}
}

// CreateExpenseRequest represents the request body for expense creation.
type CreateExpenseRequest struct {
	Amount   decimal.Decimal `json:"amount" binding:"required"`
	Date     string          `json:"date" binding:"required"`
	Category string          `json:"category" binding:"required"`
}

// ExpenseResponse represents a single expense entry in API responses.
type ExpenseResponse struct {
	ID        string    `json:"id"`
	Amount    string    `json:"amount"`
	Date      string    `json:"date"`
	Category  string    `json:"category"`
	CreatedAt time.Time `json:"created_at"`
}

// ExpenseListResponse represents the response for listing expense entries.
type ExpenseListResponse struct {
	Expenses []ExpenseResponse `json:"expenses"`
}

// ToExpenseResponse converts a domain ExpenseEntry entity to an ExpenseResponse DTO.
func ToExpenseResponse(expense *entity.ExpenseEntry) ExpenseResponse {
	return ExpenseResponse{
		ID:        expense.ID.String(),
		Amount:    expense.Amount.String(),
		Date:      FormatDate(expense.Date),
		Category:  expense.Category,
		CreatedAt: expense.CreatedAt,
	}
}

// ToExpenseListResponse converts expense entries to an ExpenseListResponse DTO.
func ToExpenseListResponse(expenses []entity.ExpenseEntry) ExpenseListResponse {
	responses := make([]ExpenseResponse, 0, len(expenses))
	for i := range expenses {
		responses = append(responses, ToExpenseResponse(&expenses[i]))
	}
	return ExpenseListResponse{Expenses: responses}
}

// CreateInvestmentRequest represents the request body for investment creation.
type CreateInvestmentRequest struct {
	Principal    decimal.Decimal `json:"principal" binding:"required"`
	CurrentValue decimal.Decimal `json:"current_value" binding:"required"`
	PurchaseDate string          `json:"purchase_date" binding:"required"`
	Type         string          `json:"type" binding:"required,oneof=stock mutual_fund fixed_income gold real_estate other"`
}

// UpdateInvestmentValueRequest represents the request body for a market value update.
type UpdateInvestmentValueRequest struct {
	CurrentValue decimal.Decimal `json:"current_value" binding:"required"`
}

// InvestmentResponse represents a single investment in API responses.
type InvestmentResponse struct {
	ID           string    `json:"id"`
	Principal    string    `json:"principal"`
	CurrentValue string    `json:"current_value"`
	PurchaseDate string    `json:"purchase_date"`
	Type         string    `json:"type"`
	CreatedAt    time.Time `json:"created_at"`
}

// InvestmentListResponse represents the response for listing investments.
type InvestmentListResponse struct {
	Investments []InvestmentResponse `json:"investments"`
}

// ToInvestmentResponse converts a domain Investment entity to an InvestmentResponse DTO.
func ToInvestmentResponse(investment *entity.Investment) InvestmentResponse {
	return InvestmentResponse{
		ID:           investment.ID.String(),
		Principal:    investment.Principal.String(),
		CurrentValue: investment.CurrentValue.String(),
		PurchaseDate: FormatDate(investment.PurchaseDate),
		Type:         string(investment.Type),
		CreatedAt:    investment.CreatedAt,
	}
}

// ToInvestmentListResponse converts investments to an InvestmentListResponse DTO.
func ToInvestmentListResponse(investments []entity.Investment) InvestmentListResponse {
	responses := make([]InvestmentResponse, 0, len(investments))
	for i := range investments {
		responses = append(responses, ToInvestmentResponse(&investments[i]))
	}
	return InvestmentListResponse{Investments: responses}
}

// CreateLoanRequest represents the request body for loan creation.
type CreateLoanRequest struct {
	Principal                 decimal.Decimal `json:"principal" binding:"required"`
	AnnualInterestRatePercent decimal.Decimal `json:"annual_interest_rate_percent" binding:"required"`
	TermMonths                int             `json:"term_months" binding:"required,gt=0"`
	StartDate                 string          `json:"start_date" binding:"required"`
}

// UpdateLoanBalanceRequest represents the request body for an outstanding balance update.
type UpdateLoanBalanceRequest struct {
	OutstandingPrincipal decimal.Decimal `json:"outstanding_principal"`
}

// LoanResponse represents a single loan in API responses.
type LoanResponse struct {
	ID                        string    `json:"id"`
	Principal                 string    `json:"principal"`
	AnnualInterestRatePercent string    `json:"annual_interest_rate_percent"`
	TermMonths                int       `json:"term_months"`
	OutstandingPrincipal      string    `json:"outstanding_principal"`
	MonthlyEMI                string    `json:"monthly_emi"`
	StartDate                 string    `json:"start_date"`
	CreatedAt                 time.Time `json:"created_at"`
}

// LoanListResponse represents the response for listing loans.
type LoanListResponse struct {
	Loans []LoanResponse `json:"loans"`
}

// ToLoanResponse converts a domain Loan entity to a LoanResponse DTO.
func ToLoanResponse(loan *entity.Loan) LoanResponse {
	return LoanResponse{
		ID:                        loan.ID.String(),
		Principal:                 loan.Principal.String(),
		AnnualInterestRatePercent: loan.AnnualInterestRatePercent.String(),
		TermMonths:                loan.TermMonths,
		OutstandingPrincipal:      loan.OutstandingPrincipal.String(),
		MonthlyEMI:                loan.MonthlyEMI.String(),
		StartDate:                 FormatDate(loan.StartDate),
		CreatedAt:                 loan.CreatedAt,
	}
}

// ToLoanListResponse converts loans to a LoanListResponse DTO.
func ToLoanListResponse(loans []entity.Loan) LoanListResponse {
	responses := make([]LoanResponse, 0, len(loans))
	for i := range loans {
		responses = append(responses, ToLoanResponse(&loans[i]))
	}
	return LoanListResponse{Loans: responses}
}

// CreateInsuranceRequest represents the request body for insurance policy creation.
type CreateInsuranceRequest struct {
	Premium   decimal.Decimal `json:"premium" binding:"required"`
	Coverage  decimal.Decimal `json:"coverage" binding:"required"`
	StartDate string          `json:"start_date" binding:"required"`
	EndDate   string          `json:"end_date" binding:"required"`
}

// InsuranceResponse represents a single insurance policy in API responses.
type InsuranceResponse struct {
	ID        string    `json:"id"`
	Premium   string    `json:"premium"`
	Coverage  string    `json:"coverage"`
	StartDate string    `json:"start_date"`
	EndDate   string    `json:"end_date"`
	CreatedAt time.Time `json:"created_at"`
}

// InsuranceListResponse represents the response for listing insurance policies.
type InsuranceListResponse struct {
	Policies []InsuranceResponse `json:"policies"`
}

// ToInsuranceResponse converts a domain InsurancePolicy entity to an InsuranceResponse DTO.
func ToInsuranceResponse(policy *entity.InsurancePolicy) InsuranceResponse {
	return InsuranceResponse{
		ID:        policy.ID.String(),
		Premium:   policy.Premium.String(),
		Coverage:  policy.Coverage.String(),
		StartDate: FormatDate(policy.StartDate),
		EndDate:   FormatDate(policy.EndDate),
		CreatedAt: policy.CreatedAt,
	}
}

// ToInsuranceListResponse converts policies to an InsuranceListResponse DTO.
func ToInsuranceListResponse(policies []entity.InsurancePolicy) InsuranceListResponse {
	responses := make([]InsuranceResponse, 0, len(policies))
	for i := range policies {
		responses = append(responses, ToInsuranceResponse(&policies[i]))
	}
	return InsuranceListResponse{Policies: responses}
}

// CreateBudgetRequest represents the request body for budget creation.
type CreateBudgetRequest struct {
	Category    string          `json:"category" binding:"required"`
	LimitAmount decimal.Decimal `json:"limit_amount" binding:"required"`
}

// UpdateBudgetRequest represents the request body for a budget limit update.
type UpdateBudgetRequest struct {
	LimitAmount decimal.Decimal `json:"limit_amount" binding:"required"`
}

// BudgetResponse represents a single budget in API responses.
type BudgetResponse struct {
	ID          string    `json:"id"`
	Category    string    `json:"category"`
	LimitAmount string    `json:"limit_amount"`
	CreatedAt   time.Time `json:"created_at"`
}

// BudgetListResponse represents the response for listing budgets.
type BudgetListResponse struct {
	Budgets []BudgetResponse `json:"budgets"`
}

// ToBudgetResponse converts a domain Budget entity to a BudgetResponse DTO.
func ToBudgetResponse(budget *entity.Budget) BudgetResponse {
	return BudgetResponse{
		ID:          budget.ID.String(),
		Category:    budget.Category,
		LimitAmount: budget.LimitAmount.String(),
		CreatedAt:   budget.CreatedAt,
	}
}

// ToBudgetListResponse converts budgets to a BudgetListResponse DTO.
func ToBudgetListResponse(budgets []entity.Budget) BudgetListResponse {
	responses := make([]BudgetResponse, 0, len(budgets))
	for i := range budgets {
		responses = append(responses, ToBudgetResponse(&budgets[i]))
	}
	return BudgetListResponse{Budgets: responses}
}
