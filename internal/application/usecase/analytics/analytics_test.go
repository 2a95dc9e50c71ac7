package analytics

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-advisor/backend/internal/domain/calc/cashflow"
	"github.com/finance-advisor/backend/internal/domain/calc/goalplan"
	"github.com/finance-advisor/backend/internal/domain/entity"
	domainerror "github.com/finance-advisor/backend/internal/domain/error"
)

type fakeLoanRepo struct {
	loans map[uuid.UUID]*entity.Loan
}

func newFakeLoanRepo() *fakeLoanRepo {
	return &fakeLoanRepo{loans: make(map[uuid.UUID]*entity.Loan)}
}

func (r *fakeLoanRepo) Create(_ context.Context, loan *entity.Loan) error {
	r.loans[loan.ID] = loan
	return nil
}

func (r *fakeLoanRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Loan, error) {
	l, ok := r.loans[id]
	if !ok {
		return nil, domainerror.ErrRecordNotFound
	}
	return l, nil
}

func (r *fakeLoanRepo) FindByUserID(_ context.Context, userID uuid.UUID) ([]entity.Loan, error) {
	var out []entity.Loan
	for _, l := range r.loans {
		if l.UserID == userID {
			out = append(out, *l)
		}
	}
	return out, nil
}

func (r *fakeLoanRepo) Update(_ context.Context, loan *entity.Loan) error {
	r.loans[loan.ID] = loan
	return nil
}

func (r *fakeLoanRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.loans, id)
	return nil
}

type fakeIncomeRepo struct {
	incomes []entity.IncomeEntry
}

func (r *fakeIncomeRepo) Create(_ context.Context, income *entity.IncomeEntry) error {
	r.incomes = append(r.incomes, *income)
	return nil
}

func (r *fakeIncomeRepo) FindByID(_ context.Context, _ uuid.UUID) (*entity.IncomeEntry, error) {
	return nil, domainerror.ErrRecordNotFound
}

func (r *fakeIncomeRepo) FindByUserID(_ context.Context, userID uuid.UUID) ([]entity.IncomeEntry, error) {
	var out []entity.IncomeEntry
	for _, e := range r.incomes {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *fakeIncomeRepo) FindByUserSince(_ context.Context, userID uuid.UUID, since, until time.Time) ([]entity.IncomeEntry, error) {
	var out []entity.IncomeEntry
	for _, e := range r.incomes {
		if e.UserID == userID && !e.Date.Before(since) && !e.Date.After(until) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *fakeIncomeRepo) Delete(_ context.Context, _ uuid.UUID) error { return nil }

func d(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

func TestGetLoanAnalyticsUseCase(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	asOf := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	setup := func() (*fakeLoanRepo, *fakeIncomeRepo, *entity.Loan) {
		loanRepo := newFakeLoanRepo()
		loan := entity.NewLoan(userID, d("500000"), d("8.5"), 240, d("4339.12"), start)
		loanRepo.loans[loan.ID] = loan

		incomeRepo := &fakeIncomeRepo{incomes: []entity.IncomeEntry{
			*entity.NewIncomeEntry(userID, d("50000"), time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), "salary", ""),
		}}
		return loanRepo, incomeRepo, loan
	}

	t.Run("computes EMI, affordability and a schedule prefix", func(t *testing.T) {
		loanRepo, incomeRepo, loan := setup()
		uc := NewGetLoanAnalyticsUseCase(loanRepo, incomeRepo)

		output, err := uc.Execute(ctx, GetLoanAnalyticsInput{
			UserID: userID,
			LoanID: loan.ID,
			AsOf:   asOf,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.EMI.MonthlyEMI.Cmp(d("4339.12")) != 0 {
			t.Errorf("expected EMI 4339.12, got %s", output.EMI.MonthlyEMI)
		}
		if output.EMI.TotalPayment.Cmp(d("1041387.88")) != 0 {
			t.Errorf("expected total payment 1041387.88, got %s", output.EMI.TotalPayment)
		}
		if !output.Affordability.EMIToIncomeRatio.Valid {
			t.Fatal("expected a defined affordability ratio")
		}
		if output.Affordability.EMIToIncomeRatio.Decimal.Cmp(d("8.68")) != 0 {
			t.Errorf("expected ratio 8.68, got %s", output.Affordability.EMIToIncomeRatio.Decimal)
		}
		if len(output.Schedule) != 12 {
			t.Errorf("expected the default 12 schedule rows, got %d", len(output.Schedule))
		}
		if output.Prepayment != nil {
			t.Error("expected no prepayment simulation without a query")
		}
	})

	t.Run("caps the schedule at the requested months", func(t *testing.T) {
		loanRepo, incomeRepo, loan := setup()
		uc := NewGetLoanAnalyticsUseCase(loanRepo, incomeRepo)

		output, err := uc.Execute(ctx, GetLoanAnalyticsInput{
			UserID:         userID,
			LoanID:         loan.ID,
			AsOf:           asOf,
			ScheduleMonths: 3,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.Schedule) != 3 {
			t.Errorf("expected 3 schedule rows, got %d", len(output.Schedule))
		}
	})

	t.Run("simulates a lump-sum prepayment", func(t *testing.T) {
		loanRepo, incomeRepo, loan := setup()
		uc := NewGetLoanAnalyticsUseCase(loanRepo, incomeRepo)

		output, err := uc.Execute(ctx, GetLoanAnalyticsInput{
			UserID: userID,
			LoanID: loan.ID,
			AsOf:   asOf,
			Prepayment: &PrepaymentQuery{
				LumpSum: d("100000"),
				Month:   12,
			},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Prepayment == nil {
			t.Fatal("expected a prepayment simulation")
		}
		if output.Prepayment.InterestSaved.Cmp(d("266815.02")) != 0 {
			t.Errorf("expected interest saved 266815.02, got %s", output.Prepayment.InterestSaved)
		}
	})

	t.Run("refuses another user's loan", func(t *testing.T) {
		loanRepo, incomeRepo, loan := setup()
		uc := NewGetLoanAnalyticsUseCase(loanRepo, incomeRepo)

		_, err := uc.Execute(ctx, GetLoanAnalyticsInput{
			UserID: uuid.New(),
			LoanID: loan.ID,
			AsOf:   asOf,
		})

		var finErr *domainerror.FinanceError
		if !errors.As(err, &finErr) || finErr.Code != domainerror.ErrCodeUnauthorizedRecordAccess {
			t.Fatalf("expected unauthorized access error, got %v", err)
		}
	})

	t.Run("returns not found for an unknown loan", func(t *testing.T) {
		_, incomeRepo, _ := setup()
		uc := NewGetLoanAnalyticsUseCase(newFakeLoanRepo(), incomeRepo)

		_, err := uc.Execute(ctx, GetLoanAnalyticsInput{
			UserID: userID,
			LoanID: uuid.New(),
			AsOf:   asOf,
		})
		if !errors.Is(err, domainerror.ErrRecordNotFound) {
			t.Fatalf("expected record not found, got %v", err)
		}
	})
}

func TestProjectSIPUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("projects a monthly contribution", func(t *testing.T) {
		uc := NewProjectSIPUseCase()

		output, err := uc.Execute(ctx, ProjectSIPInput{
			MonthlyContribution: d("5000"),
			AnnualRatePercent:   d("12"),
			Months:              120,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.SIP.FutureValue.Cmp(d("1150193.45")) != 0 {
			t.Errorf("expected future value 1150193.45, got %s", output.SIP.FutureValue)
		}
		if output.SIP.TotalInvested.Cmp(d("600000")) != 0 {
			t.Errorf("expected total invested 600000, got %s", output.SIP.TotalInvested)
		}
	})

	t.Run("rejects a negative horizon", func(t *testing.T) {
		uc := NewProjectSIPUseCase()

		_, err := uc.Execute(ctx, ProjectSIPInput{
			MonthlyContribution: d("5000"),
			AnnualRatePercent:   d("12"),
			Months:              -1,
		})
		if !errors.Is(err, domainerror.ErrNegativeMonths) {
			t.Fatalf("expected negative months error, got %v", err)
		}
	})
}

func TestCompoundInterestUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("compounds a lump sum monthly", func(t *testing.T) {
		uc := NewCompoundInterestUseCase()

		output, err := uc.Execute(ctx, CompoundInterestInput{
			Principal:         d("100000"),
			AnnualRatePercent: d("12"),
			Years:             d("5"),
			CompoundsPerYear:  12,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.FutureValue.Round(2).Cmp(d("181669.67")) != 0 {
			t.Errorf("expected future value 181669.67, got %s", output.FutureValue.Round(2))
		}
		if output.Growth.Round(2).Cmp(d("81669.67")) != 0 {
			t.Errorf("expected growth 81669.67, got %s", output.Growth.Round(2))
		}
	})

	t.Run("defaults to annual compounding", func(t *testing.T) {
		uc := NewCompoundInterestUseCase()

		output, err := uc.Execute(ctx, CompoundInterestInput{
			Principal:         d("1000"),
			AnnualRatePercent: d("10"),
			Years:             d("2"),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.FutureValue.Round(2).Cmp(d("1210")) != 0 {
			t.Errorf("expected future value 1210, got %s", output.FutureValue.Round(2))
		}
	})
}

type fakeInvestmentRepo struct {
	investments []entity.Investment
}

func (r *fakeInvestmentRepo) Create(_ context.Context, inv *entity.Investment) error {
	r.investments = append(r.investments, *inv)
	return nil
}

func (r *fakeInvestmentRepo) FindByID(_ context.Context, _ uuid.UUID) (*entity.Investment, error) {
	return nil, domainerror.ErrRecordNotFound
}

func (r *fakeInvestmentRepo) FindByUserID(_ context.Context, userID uuid.UUID) ([]entity.Investment, error) {
	var out []entity.Investment
	for _, inv := range r.investments {
		if inv.UserID == userID {
			out = append(out, inv)
		}
	}
	return out, nil
}

func (r *fakeInvestmentRepo) UpdateCurrentValue(_ context.Context, _ uuid.UUID, _ decimal.Decimal) error {
	return nil
}

func (r *fakeInvestmentRepo) Delete(_ context.Context, _ uuid.UUID) error { return nil }

type fakeExpenseRepo struct {
	expenses []entity.ExpenseEntry
}

func (r *fakeExpenseRepo) Create(_ context.Context, expense *entity.ExpenseEntry) error {
	r.expenses = append(r.expenses, *expense)
	return nil
}

func (r *fakeExpenseRepo) FindByID(_ context.Context, _ uuid.UUID) (*entity.ExpenseEntry, error) {
	return nil, domainerror.ErrRecordNotFound
}

func (r *fakeExpenseRepo) FindByUserID(_ context.Context, userID uuid.UUID) ([]entity.ExpenseEntry, error) {
	var out []entity.ExpenseEntry
	for _, e := range r.expenses {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *fakeExpenseRepo) FindByUserSince(_ context.Context, userID uuid.UUID, since, until time.Time) ([]entity.ExpenseEntry, error) {
	var out []entity.ExpenseEntry
	for _, e := range r.expenses {
		if e.UserID == userID && !e.Date.Before(since) && !e.Date.After(until) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *fakeExpenseRepo) Delete(_ context.Context, _ uuid.UUID) error { return nil }

type fakeBudgetRepo struct {
	budgets []entity.Budget
}

func (r *fakeBudgetRepo) Create(_ context.Context, budget *entity.Budget) error {
	r.budgets = append(r.budgets, *budget)
	return nil
}

func (r *fakeBudgetRepo) FindByUserID(_ context.Context, userID uuid.UUID) ([]entity.Budget, error) {
	var out []entity.Budget
	for _, b := range r.budgets {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *fakeBudgetRepo) FindByUserAndCategory(_ context.Context, _ uuid.UUID, _ string) (*entity.Budget, error) {
	return nil, nil
}

func (r *fakeBudgetRepo) Update(_ context.Context, _ *entity.Budget) error { return nil }

func (r *fakeBudgetRepo) Delete(_ context.Context, _ uuid.UUID) error { return nil }

type fakeGoalRepo struct {
	goals []entity.Goal
}

func (r *fakeGoalRepo) Create(_ context.Context, goal *entity.Goal) error {
	r.goals = append(r.goals, *goal)
	return nil
}

func (r *fakeGoalRepo) FindByID(_ context.Context, _ uuid.UUID) (*entity.Goal, error) {
	return nil, domainerror.ErrRecordNotFound
}

func (r *fakeGoalRepo) FindByUserID(_ context.Context, userID uuid.UUID) ([]entity.Goal, error) {
	var out []entity.Goal
	for _, g := range r.goals {
		if g.UserID == userID {
			out = append(out, g)
		}
	}
	return out, nil
}

func (r *fakeGoalRepo) Update(_ context.Context, _ *entity.Goal) error { return nil }

func (r *fakeGoalRepo) Delete(_ context.Context, _ uuid.UUID) error { return nil }

func TestGetInvestmentAnalyticsUseCase(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	asOf := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

	// Exactly five 365-day years and a holding too young to annualize.
	fiveYearsAgo := asOf.Add(-1825 * 24 * time.Hour)
	hundredDaysAgo := asOf.Add(-100 * 24 * time.Hour)

	repo := &fakeInvestmentRepo{investments: []entity.Investment{
		*entity.NewInvestment(userID, d("100000"), d("180000"), fiveYearsAgo, entity.InvestmentTypeMutualFund),
		*entity.NewInvestment(userID, d("50000"), d("52000"), hundredDaysAgo, entity.InvestmentTypeStock),
	}}
	uc := NewGetInvestmentAnalyticsUseCase(repo)

	t.Run("aggregates the portfolio and annualizes mature holdings", func(t *testing.T) {
		output, err := uc.Execute(ctx, GetInvestmentAnalyticsInput{UserID: userID, AsOf: asOf})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Portfolio.TotalInvested.Cmp(d("150000")) != 0 {
			t.Errorf("expected invested 150000, got %s", output.Portfolio.TotalInvested)
		}
		if output.Portfolio.TotalCurrentValue.Cmp(d("232000")) != 0 {
			t.Errorf("expected current value 232000, got %s", output.Portfolio.TotalCurrentValue)
		}
		if output.Portfolio.Holdings != 2 {
			t.Errorf("expected 2 holdings, got %d", output.Portfolio.Holdings)
		}
		if len(output.Holdings) != 2 {
			t.Fatalf("expected 2 holding returns, got %d", len(output.Holdings))
		}

		var mature, young *HoldingReturn
		for i := range output.Holdings {
			if output.Holdings[i].Investment.PurchaseDate.Equal(fiveYearsAgo) {
				mature = &output.Holdings[i]
			} else {
				young = &output.Holdings[i]
			}
		}
		if mature == nil || young == nil {
			t.Fatal("expected both holdings in the output")
		}
		if !mature.AnnualizedReturnPercent.Valid {
			t.Fatal("expected an annualized return for the mature holding")
		}
		if mature.AnnualizedReturnPercent.Decimal.Cmp(d("12.47")) != 0 {
			t.Errorf("expected annualized return 12.47, got %s", mature.AnnualizedReturnPercent.Decimal)
		}
		if young.AnnualizedReturnPercent.Valid {
			t.Error("expected no annualized return for a holding under a year old")
		}
	})

	t.Run("returns an empty portfolio for a user with no holdings", func(t *testing.T) {
		output, err := uc.Execute(ctx, GetInvestmentAnalyticsInput{UserID: uuid.New(), AsOf: asOf})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Portfolio.Holdings != 0 || len(output.Holdings) != 0 {
			t.Errorf("expected empty portfolio, got %d holdings", output.Portfolio.Holdings)
		}
	})
}

func TestGetIncomeAnalyticsUseCase(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	asOf := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

	incomeRepo := &fakeIncomeRepo{}
	for m := 0; m < 3; m++ {
		date := time.Date(2024, time.Month(4+m), 1, 0, 0, 0, 0, time.UTC)
		incomeRepo.incomes = append(incomeRepo.incomes,
			*entity.NewIncomeEntry(userID, d("50000"), date, "salary", ""))
	}
	expenseRepo := &fakeExpenseRepo{expenses: []entity.ExpenseEntry{
		*entity.NewExpenseEntry(userID, d("6000"), time.Date(2024, 6, 5, 0, 0, 0, 0, time.UTC), "groceries"),
		*entity.NewExpenseEntry(userID, d("2000"), time.Date(2024, 6, 8, 0, 0, 0, 0, time.UTC), "dining"),
	}}
	budgetRepo := &fakeBudgetRepo{budgets: []entity.Budget{
		*entity.NewBudget(userID, "groceries", d("5000")),
	}}
	uc := NewGetIncomeAnalyticsUseCase(incomeRepo, expenseRepo, budgetRepo)

	t.Run("scores steady income at 100", func(t *testing.T) {
		output, err := uc.Execute(ctx, GetIncomeAnalyticsInput{UserID: userID, AsOf: asOf})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Stability.Score.Cmp(d("100")) != 0 {
			t.Errorf("expected stability score 100, got %s", output.Stability.Score)
		}
		if output.Stability.MeanMonthlyIncome.Cmp(d("50000")) != 0 {
			t.Errorf("expected mean income 50000, got %s", output.Stability.MeanMonthlyIncome)
		}
		if output.Stability.MonthsObserved != 3 {
			t.Errorf("expected 3 observed months, got %d", output.Stability.MonthsObserved)
		}
	})

	t.Run("reports trend totals for the as-of month", func(t *testing.T) {
		output, err := uc.Execute(ctx, GetIncomeAnalyticsInput{UserID: userID, AsOf: asOf})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := cashflow.MonthTotalFor(output.IncomeTrend, asOf); got.Cmp(d("50000")) != 0 {
			t.Errorf("expected income trend 50000 for the as-of month, got %s", got)
		}
		if got := cashflow.MonthTotalFor(output.ExpenseTrend, asOf); got.Cmp(d("8000")) != 0 {
			t.Errorf("expected expense trend 8000 for the as-of month, got %s", got)
		}
	})

	t.Run("classifies category budget health", func(t *testing.T) {
		output, err := uc.Execute(ctx, GetIncomeAnalyticsInput{UserID: userID, AsOf: asOf})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		groceries, ok := output.CategoryHealth["groceries"]
		if !ok {
			t.Fatal("expected groceries in the category health report")
		}
		if groceries.Status != cashflow.CategoryStatusCritical {
			t.Errorf("expected critical status for overspent groceries, got %s", groceries.Status)
		}
		dining, ok := output.CategoryHealth["dining"]
		if !ok {
			t.Fatal("expected dining in the category health report")
		}
		if dining.Status != cashflow.CategoryStatusUnbudgeted {
			t.Errorf("expected unbudgeted status for dining, got %s", dining.Status)
		}
	})

	t.Run("handles a user with no records", func(t *testing.T) {
		output, err := uc.Execute(ctx, GetIncomeAnalyticsInput{UserID: uuid.New(), AsOf: asOf})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !output.Stability.Score.IsZero() {
			t.Errorf("expected stability score 0 without income, got %s", output.Stability.Score)
		}
		if output.Stability.CoefficientOfVariation.Valid {
			t.Error("expected an undefined coefficient of variation without income")
		}
	})
}

func TestGetGoalFeasibilityUseCase(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	asOf := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

	incomeRepo := &fakeIncomeRepo{incomes: []entity.IncomeEntry{
		*entity.NewIncomeEntry(userID, d("90000"), time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), "salary", ""),
	}}
	expenseRepo := &fakeExpenseRepo{expenses: []entity.ExpenseEntry{
		*entity.NewExpenseEntry(userID, d("54000"), time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC), "rent"),
	}}

	t.Run("judges goals against monthly savings capacity", func(t *testing.T) {
		goalRepo := &fakeGoalRepo{goals: []entity.Goal{
			*entity.NewGoal(userID, "car", d("400000"), d("100000"),
				time.Date(2025, 4, 15, 0, 0, 0, 0, time.UTC), entity.GoalPriorityHigh),
			*entity.NewGoal(userID, "house", d("10000000"), decimal.Zero,
				time.Date(2025, 4, 15, 0, 0, 0, 0, time.UTC), entity.GoalPriorityLow),
		}}
		uc := NewGetGoalFeasibilityUseCase(goalRepo, incomeRepo, expenseRepo)

		output, err := uc.Execute(ctx, GetGoalFeasibilityInput{UserID: userID, AsOf: asOf})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.MonthlyCapacity.Cmp(d("36000")) != 0 {
			t.Errorf("expected capacity 36000, got %s", output.MonthlyCapacity)
		}
		if len(output.Goals) != 2 {
			t.Fatalf("expected 2 feasibility results, got %d", len(output.Goals))
		}

		byTarget := make(map[string]goalplan.FeasibilityResult, len(output.Goals))
		for _, g := range output.Goals {
			byTarget[g.TargetAmount.String()] = g
		}
		car := byTarget["400000"]
		if car.MonthsRemaining != 10 {
			t.Errorf("expected 10 months remaining, got %d", car.MonthsRemaining)
		}
		if car.RequiredMonthlyContribution.Cmp(d("30000")) != 0 {
			t.Errorf("expected required contribution 30000, got %s", car.RequiredMonthlyContribution)
		}
		if !car.IsFeasible {
			t.Error("expected the car goal to be feasible")
		}
		house := byTarget["10000000"]
		if house.IsFeasible {
			t.Error("expected the house goal to be infeasible")
		}
		if !house.ProjectedShortfall.IsPositive() {
			t.Errorf("expected a positive shortfall, got %s", house.ProjectedShortfall)
		}
	})

	t.Run("floors capacity at zero in a deficit month", func(t *testing.T) {
		deficitExpenses := &fakeExpenseRepo{expenses: []entity.ExpenseEntry{
			*entity.NewExpenseEntry(userID, d("120000"), time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC), "rent"),
		}}
		goalRepo := &fakeGoalRepo{goals: []entity.Goal{
			*entity.NewGoal(userID, "car", d("400000"), decimal.Zero,
				time.Date(2025, 4, 15, 0, 0, 0, 0, time.UTC), entity.GoalPriorityMedium),
		}}
		uc := NewGetGoalFeasibilityUseCase(goalRepo, incomeRepo, deficitExpenses)

		output, err := uc.Execute(ctx, GetGoalFeasibilityInput{UserID: userID, AsOf: asOf})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !output.MonthlyCapacity.IsZero() {
			t.Errorf("expected zero capacity, got %s", output.MonthlyCapacity)
		}
		if len(output.Goals) != 1 || output.Goals[0].IsFeasible {
			t.Error("expected the goal to be infeasible with no capacity")
		}
	})

	t.Run("ranks nearer underfunded goals first", func(t *testing.T) {
		goalRepo := &fakeGoalRepo{goals: []entity.Goal{
			*entity.NewGoal(userID, "retirement", d("5000000"), d("4000000"),
				time.Date(2040, 6, 15, 0, 0, 0, 0, time.UTC), entity.GoalPriorityLow),
			*entity.NewGoal(userID, "emergency fund", d("300000"), decimal.Zero,
				time.Date(2024, 12, 15, 0, 0, 0, 0, time.UTC), entity.GoalPriorityHigh),
		}}
		uc := NewGetGoalFeasibilityUseCase(goalRepo, incomeRepo, expenseRepo)

		output, err := uc.Execute(ctx, GetGoalFeasibilityInput{UserID: userID, AsOf: asOf})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.Prioritized) != 2 {
			t.Fatalf("expected 2 prioritized goals, got %d", len(output.Prioritized))
		}
		if output.Prioritized[0].Goal.Name != "emergency fund" {
			t.Errorf("expected the emergency fund ranked first, got %s", output.Prioritized[0].Goal.Name)
		}
	})
}
