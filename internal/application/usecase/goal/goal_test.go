// Package goal contains savings-goal use cases.
package goal

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-advisor/backend/internal/domain/entity"
	domainerror "github.com/finance-advisor/backend/internal/domain/error"
)

type fakeGoalRepo struct {
	goals map[uuid.UUID]*entity.Goal
}

func newFakeGoalRepo() *fakeGoalRepo {
	return &fakeGoalRepo{goals: make(map[uuid.UUID]*entity.Goal)}
}

func (r *fakeGoalRepo) Create(_ context.Context, goal *entity.Goal) error {
	r.goals[goal.ID] = goal
	return nil
}

func (r *fakeGoalRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Goal, error) {
	g, ok := r.goals[id]
	if !ok {
		return nil, domainerror.ErrRecordNotFound
	}
	return g, nil
}

func (r *fakeGoalRepo) FindByUserID(_ context.Context, userID uuid.UUID) ([]entity.Goal, error) {
	var out []entity.Goal
	for _, g := range r.goals {
		if g.UserID == userID {
			out = append(out, *g)
		}
	}
	return out, nil
}

func (r *fakeGoalRepo) Update(_ context.Context, goal *entity.Goal) error {
	r.goals[goal.ID] = goal
	return nil
}

func (r *fakeGoalRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.goals, id)
	return nil
}

func d(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

func TestCreateGoalUseCase(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	targetDate := time.Date(2027, 6, 1, 0, 0, 0, 0, time.UTC)

	t.Run("defaults priority to medium", func(t *testing.T) {
		uc := NewCreateGoalUseCase(newFakeGoalRepo())

		output, err := uc.Execute(ctx, CreateGoalInput{
			UserID:        userID,
			Name:          "Emergency fund",
			TargetAmount:  d("300000"),
			CurrentAmount: d("50000"),
			TargetDate:    targetDate,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Goal.Priority != entity.GoalPriorityMedium {
			t.Errorf("expected medium priority, got %s", output.Goal.Priority)
		}
	})

	t.Run("honors an explicit priority", func(t *testing.T) {
		uc := NewCreateGoalUseCase(newFakeGoalRepo())

		priority := entity.GoalPriorityHigh
		output, err := uc.Execute(ctx, CreateGoalInput{
			UserID:        userID,
			Name:          "House deposit",
			TargetAmount:  d("2000000"),
			CurrentAmount: decimal.Zero,
			TargetDate:    targetDate,
			Priority:      &priority,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Goal.Priority != entity.GoalPriorityHigh {
			t.Errorf("expected high priority, got %s", output.Goal.Priority)
		}
	})

	t.Run("rejects a non-positive target", func(t *testing.T) {
		uc := NewCreateGoalUseCase(newFakeGoalRepo())

		_, err := uc.Execute(ctx, CreateGoalInput{
			UserID:        userID,
			Name:          "Broken goal",
			TargetAmount:  decimal.Zero,
			CurrentAmount: decimal.Zero,
			TargetDate:    targetDate,
		})

		var calcErr *domainerror.CalculationError
		if !errors.As(err, &calcErr) || calcErr.Code != domainerror.ErrCodeNonPositiveTarget {
			t.Fatalf("expected non-positive target error, got %v", err)
		}
	})

	t.Run("rejects an unknown priority", func(t *testing.T) {
		uc := NewCreateGoalUseCase(newFakeGoalRepo())

		priority := entity.GoalPriority("urgent")
		_, err := uc.Execute(ctx, CreateGoalInput{
			UserID:        userID,
			Name:          "Typo goal",
			TargetAmount:  d("1000"),
			CurrentAmount: decimal.Zero,
			TargetDate:    targetDate,
			Priority:      &priority,
		})
		if err == nil {
			t.Fatal("expected error for invalid priority")
		}
	})

	t.Run("rejects a blank name", func(t *testing.T) {
		uc := NewCreateGoalUseCase(newFakeGoalRepo())

		_, err := uc.Execute(ctx, CreateGoalInput{
			UserID:        userID,
			Name:          "   ",
			TargetAmount:  d("1000"),
			CurrentAmount: decimal.Zero,
			TargetDate:    targetDate,
		})
		if err == nil {
			t.Fatal("expected error for blank name")
		}
	})
}

func TestListGoalsUseCase(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	targetDate := time.Date(2027, 6, 1, 0, 0, 0, 0, time.UTC)

	t.Run("computes completion percent against the target", func(t *testing.T) {
		repo := newFakeGoalRepo()
		goal := entity.NewGoal(userID, "Car", d("400000"), d("100000"), targetDate, entity.GoalPriorityLow)
		repo.goals[goal.ID] = goal
		uc := NewListGoalsUseCase(repo)

		output, err := uc.Execute(ctx, ListGoalsInput{UserID: userID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.Goals) != 1 {
			t.Fatalf("expected 1 goal, got %d", len(output.Goals))
		}
		completion := output.Goals[0].CompletionPercent
		if !completion.Valid {
			t.Fatal("expected completion percent to be defined")
		}
		if completion.Decimal.Cmp(d("25")) != 0 {
			t.Errorf("expected completion 25, got %s", completion.Decimal)
		}
	})

	t.Run("overfunded goals exceed one hundred percent", func(t *testing.T) {
		repo := newFakeGoalRepo()
		goal := entity.NewGoal(userID, "Bike", d("50000"), d("60000"), targetDate, entity.GoalPriorityLow)
		repo.goals[goal.ID] = goal
		uc := NewListGoalsUseCase(repo)

		output, err := uc.Execute(ctx, ListGoalsInput{UserID: userID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		completion := output.Goals[0].CompletionPercent
		if !completion.Valid || completion.Decimal.Cmp(d("120")) != 0 {
			t.Errorf("expected completion 120, got %+v", completion)
		}
	})
}

func TestUpdateGoalProgressUseCase(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	targetDate := time.Date(2027, 6, 1, 0, 0, 0, 0, time.UTC)

	setup := func() (*fakeGoalRepo, *entity.Goal) {
		repo := newFakeGoalRepo()
		goal := entity.NewGoal(userID, "Trip", d("100000"), d("10000"), targetDate, entity.GoalPriorityMedium)
		repo.goals[goal.ID] = goal
		return repo, goal
	}

	t.Run("updates the saved amount", func(t *testing.T) {
		repo, goal := setup()
		uc := NewUpdateGoalProgressUseCase(repo)

		if err := uc.Execute(ctx, UpdateGoalProgressInput{
			UserID:        userID,
			ID:            goal.ID,
			CurrentAmount: d("25000"),
		}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if repo.goals[goal.ID].CurrentAmount.Cmp(d("25000")) != 0 {
			t.Errorf("expected current amount 25000, got %s", repo.goals[goal.ID].CurrentAmount)
		}
	})

	t.Run("allows overfunding past the target", func(t *testing.T) {
		repo, goal := setup()
		uc := NewUpdateGoalProgressUseCase(repo)

		if err := uc.Execute(ctx, UpdateGoalProgressInput{
			UserID:        userID,
			ID:            goal.ID,
			CurrentAmount: d("150000"),
		}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("rejects a negative amount", func(t *testing.T) {
		repo, goal := setup()
		uc := NewUpdateGoalProgressUseCase(repo)

		err := uc.Execute(ctx, UpdateGoalProgressInput{
			UserID:        userID,
			ID:            goal.ID,
			CurrentAmount: d("-1"),
		})

		var calcErr *domainerror.CalculationError
		if !errors.As(err, &calcErr) || calcErr.Code != domainerror.ErrCodeNegativeCurrentAmount {
			t.Fatalf("expected negative amount error, got %v", err)
		}
	})

	t.Run("refuses another user's goal", func(t *testing.T) {
		repo, goal := setup()
		uc := NewUpdateGoalProgressUseCase(repo)

		err := uc.Execute(ctx, UpdateGoalProgressInput{
			UserID:        uuid.New(),
			ID:            goal.ID,
			CurrentAmount: d("25000"),
		})

		var finErr *domainerror.FinanceError
		if !errors.As(err, &finErr) || finErr.Code != domainerror.ErrCodeUnauthorizedRecordAccess {
			t.Fatalf("expected unauthorized access error, got %v", err)
		}
	})
}

func TestDeleteGoalUseCase(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	targetDate := time.Date(2027, 6, 1, 0, 0, 0, 0, time.UTC)

	t.Run("deletes an owned goal", func(t *testing.T) {
		repo := newFakeGoalRepo()
		goal := entity.NewGoal(userID, "Old goal", d("1000"), decimal.Zero, targetDate, entity.GoalPriorityLow)
		repo.goals[goal.ID] = goal
		uc := NewDeleteGoalUseCase(repo)

		if err := uc.Execute(ctx, DeleteGoalInput{UserID: userID, ID: goal.ID}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(repo.goals) != 0 {
			t.Error("expected goal to be removed")
		}
	})

	t.Run("returns not found for an unknown ID", func(t *testing.T) {
		uc := NewDeleteGoalUseCase(newFakeGoalRepo())

		err := uc.Execute(ctx, DeleteGoalInput{UserID: userID, ID: uuid.New()})
		if !errors.Is(err, domainerror.ErrRecordNotFound) {
			t.Fatalf("expected record not found, got %v", err)
		}
	})
}
