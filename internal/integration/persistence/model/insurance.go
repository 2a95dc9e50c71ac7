package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-advisor/backend/internal/domain/entity"
)

// InsuranceModel represents the insurance_policies table in the database.
type InsuranceModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	Premium   decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Coverage  decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	StartDate time.Time       `gorm:"type:date;not null"`
	EndDate   time.Time       `gorm:"type:date;not null"`
	CreatedAt time.Time       `gorm:"not null"`
	UpdatedAt time.Time       `gorm:"not null"`
}

// TableName returns the table name for the InsuranceModel.
func (InsuranceModel) TableName() string {
	return "insurance_policies"
}

// ToEntity converts an InsuranceModel to a domain InsurancePolicy entity.
func (m *InsuranceModel) ToEntity() *entity.InsurancePolicy {
	return &entity.InsurancePolicy{
		ID:        m.ID,
		UserID:    m.UserID,
		Premium:   m.Premium,
		Coverage:  m.Coverage,
		StartDate: m.StartDate,
		EndDate:   m.EndDate,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// InsuranceFromEntity creates an InsuranceModel from a domain InsurancePolicy entity.
func InsuranceFromEntity(policy *entity.InsurancePolicy) *InsuranceModel {
	return &InsuranceModel{
		ID:        policy.ID,
		UserID:    policy.UserID,
		Premium:   policy.Premium,
		Coverage:  policy.Coverage,
		StartDate: policy.StartDate,
		EndDate:   policy.EndDate,
		CreatedAt: policy.CreatedAt,
		UpdatedAt: policy.UpdatedAt,
	}
}
