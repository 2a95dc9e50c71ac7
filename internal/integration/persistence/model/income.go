package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-advisor/backend/internal/domain/entity"
)

// IncomeModel represents the incomes table in the database.
type IncomeModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	Amount    decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Date      time.Time       `gorm:"type:date;not null;index"`
	Category  string          `gorm:"type:varchar(100);not null"`
	Source    string          `gorm:"type:varchar(255)"`
	CreatedAt time.Time       `gorm:"not null"`
	UpdatedAt time.Time       `gorm:"not null"`
}

// TableName returns the table name for the IncomeModel.
func (IncomeModel) TableName() string {
	return "incomes"
}

// ToEntity converts an IncomeModel to a domain IncomeEntry entity.
func (m *IncomeModel) ToEntity() *entity.IncomeEntry {
	return &entity.IncomeEntry{
		ID:        m.ID,
		UserID:    m.UserID,
		Amount:    m.Amount,
		Date:      m.Date,
		Category:  m.Category,
		Source:    m.Source,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// IncomeFromEntity creates an IncomeModel from a domain IncomeEntry entity.
func IncomeFromEntity(income *entity.IncomeEntry) *IncomeModel {
	return &IncomeModel{
		ID:        income.ID,
		UserID:    income.UserID,
		Amount:    income.Amount,
		Date:      income.Date,
		Category:  income.Category,
		Source:    income.Source,
		CreatedAt: income.CreatedAt,
		UpdatedAt: income.UpdatedAt,
	}
}
