package persistence

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/finance-advisor/backend/internal/domain/entity"
	domainerror "github.com/finance-advisor/backend/internal/domain/error"
	"github.com/finance-advisor/backend/internal/integration/persistence/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	err = db.AutoMigrate(
		&model.UserModel{},
		&model.RefreshTokenModel{},
		&model.IncomeModel{},
		&model.ExpenseModel{},
		&model.InvestmentModel{},
		&model.LoanModel{},
		&model.InsuranceModel{},
		&model.GoalModel{},
		&model.BudgetModel{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestUserRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(newTestDB(t))

	user := entity.NewUser("ana@example.com", "Ana", "hashed-password")

	t.Run("Create and FindByID", func(t *testing.T) {
		if err := repo.Create(ctx, user); err != nil {
			t.Fatalf("unexpected error creating user: %v", err)
		}

		found, err := repo.FindByID(ctx, user.ID)
		if err != nil {
			t.Fatalf("unexpected error finding user: %v", err)
		}
		if found.Email != user.Email {
			t.Errorf("expected email %s, got %s", user.Email, found.Email)
		}
		if found.Currency != user.Currency {
			t.Errorf("expected currency %s, got %s", user.Currency, found.Currency)
		}
	})

	t.Run("FindByEmail", func(t *testing.T) {
		found, err := repo.FindByEmail(ctx, "ana@example.com")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if found.ID != user.ID {
			t.Errorf("expected ID %s, got %s", user.ID, found.ID)
		}
	})

	t.Run("FindByID not found", func(t *testing.T) {
		_, err := repo.FindByID(ctx, uuid.New())
		if !errors.Is(err, domainerror.ErrUserNotFound) {
			t.Errorf("expected ErrUserNotFound, got %v", err)
		}
	})

	t.Run("ExistsByEmail", func(t *testing.T) {
		exists, err := repo.ExistsByEmail(ctx, "ana@example.com")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !exists {
			t.Error("expected existing email to be reported")
		}

		exists, err = repo.ExistsByEmail(ctx, "nobody@example.com")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if exists {
			t.Error("expected unknown email to be absent")
		}
	})

	t.Run("Update", func(t *testing.T) {
		user.Name = "Ana Maria"
		if err := repo.Update(ctx, user); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		found, err := repo.FindByID(ctx, user.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if found.Name != "Ana Maria" {
			t.Errorf("expected updated name, got %s", found.Name)
		}
	})
}

func TestTokenRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewTokenRepository(newTestDB(t))
	userID := uuid.New()

	t.Run("saved token is valid", func(t *testing.T) {
		err := repo.SaveRefreshToken(ctx, "token-a", userID, time.Now().UTC().Add(time.Hour))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		valid, err := repo.IsRefreshTokenValid(ctx, "token-a")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !valid {
			t.Error("expected freshly saved token to be valid")
		}
	})

	t.Run("unknown token is invalid", func(t *testing.T) {
		valid, err := repo.IsRefreshTokenValid(ctx, "never-issued")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if valid {
			t.Error("expected unknown token to be invalid")
		}
	})

	t.Run("expired token is invalid", func(t *testing.T) {
		err := repo.SaveRefreshToken(ctx, "token-expired", userID, time.Now().UTC().Add(-time.Hour))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		valid, err := repo.IsRefreshTokenValid(ctx, "token-expired")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if valid {
			t.Error("expected expired token to be invalid")
		}
	})

	t.Run("invalidated token is invalid", func(t *testing.T) {
		if err := repo.InvalidateRefreshToken(ctx, "token-a"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		valid, err := repo.IsRefreshTokenValid(ctx, "token-a")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if valid {
			t.Error("expected invalidated token to be invalid")
		}
	})

	t.Run("invalidate all user tokens", func(t *testing.T) {
		err := repo.SaveRefreshToken(ctx, "token-b", userID, time.Now().UTC().Add(time.Hour))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		err = repo.SaveRefreshToken(ctx, "token-c", userID, time.Now().UTC().Add(time.Hour))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if err := repo.InvalidateAllUserRefreshTokens(ctx, userID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		for _, token := range []string{"token-b", "token-c"} {
			valid, err := repo.IsRefreshTokenValid(ctx, token)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if valid {
				t.Errorf("expected token %s to be invalidated", token)
			}
		}
	})
}

func TestIncomeRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewIncomeRepository(newTestDB(t))
	userID := uuid.New()

	entries := []*entity.IncomeEntry{
		entity.NewIncomeEntry(userID, decimal.NewFromInt(50000), date(2025, time.March, 1), "salary", "employer"),
		entity.NewIncomeEntry(userID, decimal.NewFromInt(52000), date(2025, time.April, 1), "salary", "employer"),
		entity.NewIncomeEntry(userID, decimal.NewFromInt(8000), date(2025, time.May, 10), "freelance", "client"),
	}
	for _, e := range entries {
		if err := repo.Create(ctx, e); err != nil {
			t.Fatalf("unexpected error creating income: %v", err)
		}
	}

	t.Run("FindByUserID orders newest first", func(t *testing.T) {
		found, err := repo.FindByUserID(ctx, userID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(found) != 3 {
			t.Fatalf("expected 3 entries, got %d", len(found))
		}
		if found[0].Category != "freelance" {
			t.Errorf("expected newest entry first, got category %s", found[0].Category)
		}
	})

	t.Run("FindByUserSince filters date range", func(t *testing.T) {
		found, err := repo.FindByUserSince(ctx, userID, date(2025, time.April, 1), date(2025, time.April, 30))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(found) != 1 {
			t.Fatalf("expected 1 entry, got %d", len(found))
		}
		if !found[0].Amount.Equal(decimal.NewFromInt(52000)) {
			t.Errorf("expected amount 52000, got %s", found[0].Amount)
		}
	})

	t.Run("FindByUserID for other user is empty", func(t *testing.T) {
		found, err := repo.FindByUserID(ctx, uuid.New())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(found) != 0 {
			t.Errorf("expected no entries, got %d", len(found))
		}
	})

	t.Run("Delete removes entry", func(t *testing.T) {
		if err := repo.Delete(ctx, entries[0].ID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		_, err := repo.FindByID(ctx, entries[0].ID)
		if !errors.Is(err, domainerror.ErrRecordNotFound) {
			t.Errorf("expected ErrRecordNotFound, got %v", err)
		}
	})
}

func TestInvestmentRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewInvestmentRepository(newTestDB(t))
	userID := uuid.New()

	investment := entity.NewInvestment(
		userID,
		decimal.NewFromInt(100000),
		decimal.NewFromInt(100000),
		date(2024, time.January, 15),
		entity.InvestmentTypeMutualFund,
	)
	if err := repo.Create(ctx, investment); err != nil {
		t.Fatalf("unexpected error creating investment: %v", err)
	}

	t.Run("UpdateCurrentValue persists", func(t *testing.T) {
		newValue := decimal.NewFromInt(112000)
		if err := repo.UpdateCurrentValue(ctx, investment.ID, newValue); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		found, err := repo.FindByID(ctx, investment.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !found.CurrentValue.Equal(newValue) {
			t.Errorf("expected current value %s, got %s", newValue, found.CurrentValue)
		}
		if !found.Principal.Equal(decimal.NewFromInt(100000)) {
			t.Errorf("expected principal untouched, got %s", found.Principal)
		}
	})

	t.Run("UpdateCurrentValue unknown ID", func(t *testing.T) {
		err := repo.UpdateCurrentValue(ctx, uuid.New(), decimal.NewFromInt(1))
		if !errors.Is(err, domainerror.ErrRecordNotFound) {
			t.Errorf("expected ErrRecordNotFound, got %v", err)
		}
	})

	t.Run("Delete removes holding", func(t *testing.T) {
		if err := repo.Delete(ctx, investment.ID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		found, err := repo.FindByUserID(ctx, userID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(found) != 0 {
			t.Errorf("expected no holdings, got %d", len(found))
		}
	})
}

func TestGoalRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewGoalRepository(newTestDB(t))
	userID := uuid.New()

	near := entity.NewGoal(userID, "Vacation", decimal.NewFromInt(200000), decimal.Zero, date(2026, time.June, 1), entity.GoalPriorityLow)
	far := entity.NewGoal(userID, "House", decimal.NewFromInt(2000000), decimal.NewFromInt(500000), date(2030, time.January, 1), entity.GoalPriorityHigh)
	for _, g := range []*entity.Goal{far, near} {
		if err := repo.Create(ctx, g); err != nil {
			t.Fatalf("unexpected error creating goal: %v", err)
		}
	}

	t.Run("FindByUserID orders by target date", func(t *testing.T) {
		goals, err := repo.FindByUserID(ctx, userID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(goals) != 2 {
			t.Fatalf("expected 2 goals, got %d", len(goals))
		}
		if goals[0].Name != "Vacation" {
			t.Errorf("expected nearest target date first, got %s", goals[0].Name)
		}
	})

	t.Run("Update persists progress", func(t *testing.T) {
		near.CurrentAmount = decimal.NewFromInt(75000)
		if err := repo.Update(ctx, near); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		found, err := repo.FindByID(ctx, near.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !found.CurrentAmount.Equal(decimal.NewFromInt(75000)) {
			t.Errorf("expected current amount 75000, got %s", found.CurrentAmount)
		}
		if found.Priority != entity.GoalPriorityLow {
			t.Errorf("expected priority preserved, got %s", found.Priority)
		}
	})
}

func TestBudgetRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewBudgetRepository(newTestDB(t))
	userID := uuid.New()

	budget := entity.NewBudget(userID, "groceries", decimal.NewFromInt(15000))
	if err := repo.Create(ctx, budget); err != nil {
		t.Fatalf("unexpected error creating budget: %v", err)
	}

	t.Run("FindByUserAndCategory", func(t *testing.T) {
		found, err := repo.FindByUserAndCategory(ctx, userID, "groceries")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if found == nil {
			t.Fatal("expected budget to be found")
		}
		if !found.LimitAmount.Equal(decimal.NewFromInt(15000)) {
			t.Errorf("expected limit 15000, got %s", found.LimitAmount)
		}
	})

	t.Run("FindByUserAndCategory absent returns nil", func(t *testing.T) {
		found, err := repo.FindByUserAndCategory(ctx, userID, "travel")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if found != nil {
			t.Errorf("expected nil for absent category, got %+v", found)
		}
	})

	t.Run("Update changes limit", func(t *testing.T) {
		budget.LimitAmount = decimal.NewFromInt(18000)
		if err := repo.Update(ctx, budget); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		found, err := repo.FindByUserAndCategory(ctx, userID, "groceries")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !found.LimitAmount.Equal(decimal.NewFromInt(18000)) {
			t.Errorf("expected limit 18000, got %s", found.LimitAmount)
		}
	})

	t.Run("Delete removes budget", func(t *testing.T) {
		if err := repo.Delete(ctx, budget.ID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		budgets, err := repo.FindByUserID(ctx, userID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(budgets) != 0 {
			t.Errorf("expected no budgets, got %d", len(budgets))
		}
	})
}

func TestInsuranceRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewInsuranceRepository(newTestDB(t))
	userID := uuid.New()

	policy := entity.NewInsurancePolicy(
		userID,
		decimal.NewFromInt(24000),
		decimal.NewFromInt(5000000),
		date(2024, time.January, 1),
		date(2034, time.January, 1),
	)
	if err := repo.Create(ctx, policy); err != nil {
		t.Fatalf("unexpected error creating policy: %v", err)
	}

	t.Run("FindByUserID", func(t *testing.T) {
		policies, err := repo.FindByUserID(ctx, userID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(policies) != 1 {
			t.Fatalf("expected 1 policy, got %d", len(policies))
		}
		if !policies[0].Coverage.Equal(decimal.NewFromInt(5000000)) {
			t.Errorf("expected coverage 5000000, got %s", policies[0].Coverage)
		}
	})

	t.Run("Delete removes policy", func(t *testing.T) {
		if err := repo.Delete(ctx, policy.ID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		_, err := repo.FindByID(ctx, policy.ID)
		if !errors.Is(err, domainerror.ErrRecordNotFound) {
			t.Errorf("expected ErrRecordNotFound, got %v", err)
		}
	})
}
