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

// incomeRepository implements the adapter.IncomeRepository interface.
type incomeRepository struct {
	db *gorm.DB
}

// NewIncomeRepository creates a new income repository instance.
func NewIncomeRepository(db *gorm.DB) adapter.IncomeRepository {
	return &incomeRepository{
		db: db,
	}
}

// Create creates a new income entry in the database.
func (r *incomeRepository) Create(ctx context.Context, income *entity.IncomeEntry) error {
	incomeModel := model.IncomeFromEntity(income)
	result := r.db.WithContext(ctx).Create(incomeModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves an income entry by its ID.
func (r *incomeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.IncomeEntry, error) {
	var incomeModel model.IncomeModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&incomeModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrRecordNotFound
		}
		return nil, result.Error
	}
	return incomeModel.ToEntity(), nil
}

// FindByUserID retrieves all income entries for a user, newest first.
func (r *incomeRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]entity.IncomeEntry, error) {
	var incomeModels []model.IncomeModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC, created_at DESC").
		Find(&incomeModels)
	if result.Error != nil {
		return nil, result.Error
	}

	entries := make([]entity.IncomeEntry, 0, len(incomeModels))
	for i := range incomeModels {
		entries = append(entries, *incomeModels[i].ToEntity())
	}
	return entries, nil
}

// FindByUserSince retrieves income entries within the given date range.
func (r *incomeRepository) FindByUserSince(ctx context.Context, userID uuid.UUID, since, until time.Time) ([]entity.IncomeEntry, error) {
	var incomeModels []model.IncomeModel
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND date >= ? AND date <= ?", userID, since, until).
		Order("date DESC, created_at DESC").
		Find(&incomeModels)
	if result.Error != nil {
		return nil, result.Error
	}

	entries := make([]entity.IncomeEntry, 0, len(incomeModels))
	for i := range incomeModels {
		entries = append(entries, *incomeModels[i].ToEntity())
	}
	return entries, nil
}

// Delete removes an income entry from the database.
func (r *incomeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.IncomeModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	return nil
}
