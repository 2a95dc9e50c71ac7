// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/finance-advisor/backend/internal/application/adapter"
	"github.com/finance-advisor/backend/internal/domain/entity"
	domainerror "github.com/finance-advisor/backend/internal/domain/error"
	"github.com/finance-advisor/backend/internal/integration/persistence/model"
)

// insuranceRepository implements the adapter.InsuranceRepository interface.
type insuranceRepository struct {
	db *gorm.DB
}

// NewInsuranceRepository creates a new insurance repository instance.
func NewInsuranceRepository(db *gorm.DB) adapter.InsuranceRepository {
	return &insuranceRepository{
		db: db,
	}
}

// Create creates a new insurance policy in the database.
func (r *insuranceRepository) Create(ctx context.Context, policy *entity.InsurancePolicy) error {
	policyModel := model.InsuranceFromEntity(policy)
	result := r.db.WithContext(ctx).Create(policyModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a policy by its ID.
func (r *insuranceRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.InsurancePolicy, error) {
	var policyModel model.InsuranceModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&policyModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrRecordNotFound
		}
		return nil, result.Error
	}
	return policyModel.ToEntity(), nil
}

// FindByUserID retrieves all policies for a user.
func (r *insuranceRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]entity.InsurancePolicy, error) {
	var policyModels []model.InsuranceModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("end_date DESC, created_at DESC").
		Find(&policyModels)
	if result.Error != nil {
		return nil, result.Error
	}

	policies := make([]entity.InsurancePolicy, 0, len(policyModels))
	for i := range policyModels {
		policies = append(policies, *policyModels[i].ToEntity())
	}
	return policies, nil
}

// Delete removes a policy from the database.
func (r *insuranceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.InsuranceModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	return nil
}
