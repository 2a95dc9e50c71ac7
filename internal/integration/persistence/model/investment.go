package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-advisor/backend/internal/domain/entity"
)

// InvestmentModel represents the investments table in the database.
type InvestmentModel struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	Principal    decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	CurrentValue decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	PurchaseDate time.Time       `gorm:"type:date;not null"`
	Type         string          `gorm:"type:varchar(20);not null"`
	CreatedAt    time.Time       `gorm:"not null"`
	UpdatedAt    time.Time       `gorm:"not null"`
}

// TableName returns the table name for the InvestmentModel.
func (InvestmentModel) TableName() string {
	return "investments"
}

// ToEntity converts an InvestmentModel to a domain Investment entity.
func (m *InvestmentModel) ToEntity() *entity.Investment {
	return &entity.Investment{
		ID:           m.ID,
		UserID:       m.UserID,
		Principal:    m.Principal,
		CurrentValue: m.CurrentValue,
		PurchaseDate: m.PurchaseDate,
		Type:         entity.InvestmentType(m.Type),
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// InvestmentFromEntity creates an InvestmentModel from a domain Investment entity.
func InvestmentFromEntity(investment *entity.Investment) *InvestmentModel {
	return &InvestmentModel{
		ID:           investment.ID,
		UserID:       investment.UserID,
		Principal:    investment.Principal,
		CurrentValue: investment.CurrentValue,
		PurchaseDate: investment.PurchaseDate,
		Type:         string(investment.Type),
		CreatedAt:    investment.CreatedAt,
		UpdatedAt:    investment.UpdatedAt,
	}
}
