// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/finance-advisor/backend/internal/application/adapter"
	"github.com/finance-advisor/backend/internal/domain/entity"
	domainerror "github.com/finance-advisor/backend/internal/domain/error"
	"github.com/finance-advisor/backend/internal/integration/persistence/model"
)

// expenseRepository implements the adapter.ExpenseRepository interface.
type expenseRepository struct {
	db *gorm.DB
}

// NewExpenseRepository creates a new expense repository instance.
func NewExpenseRepository(db *gorm.DB) adapter.ExpenseRepository {
	return &expenseRepository{
		db: db,
	}
}

// Create creates a new expense entry in the database.
func (r *expenseRepository) Create(ctx context.Context, expense *entity.ExpenseEntry) error {
	expenseModel := model.ExpenseFromEntity(expense)
	result := r.db.WithContext(ctx).Create(expenseModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves an expense entry by its ID.
func (r *expenseRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.ExpenseEntry, error) {
	var expenseModel model.ExpenseModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&expenseModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrRecordNotFound
		}
		return nil, result.Error
	}
	return expenseModel.ToEntity(), nil
}

// FindByUserID retrieves all expense entries for a user, newest first.
func (r *expenseRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]entity.ExpenseEntry, error) {
	var expenseModels []model.ExpenseModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC, created_at DESC").
		Find(&expenseModels)
	if result.Error != nil {
		return nil, result.Error
	}

	entries := make([]entity.ExpenseEntry, 0, len(expenseModels))
	for i := range expenseModels {
		entries = append(entries, *expenseModels[i].ToEntity())
	}
	return entries, nil
}

// FindByUserSince retrieves expense entries within the given date range.
func (r *expenseRepository) FindByUserSince(ctx context.Context, userID uuid.UUID, since, until time.Time) ([]entity.ExpenseEntry, error) {
	var expenseModels []model.ExpenseModel
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND date >= ? AND date <= ?", userID, since, until).
		Order("date DESC, created_at DESC").
		Find(&expenseModels)
	if result.Error != nil {
		return nil, result.Error
	}

	entries := make([]entity.ExpenseEntry, 0, len(expenseModels))
	for i := range expenseModels {
		entries = append(entries, *expenseModels[i].ToEntity())
	}
	return entries, nil
}

// Delete removes an expense entry from the database.
func (r *expenseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.ExpenseModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	return nil
}
