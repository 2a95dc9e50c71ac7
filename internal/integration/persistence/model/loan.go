package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-advisor/backend/internal/domain/entity"
)

// LoanModel represents the loans table in the database.
type LoanModel struct {
	ID                        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID                    uuid.UUID       `gorm:"type:uuid;not null;index"`
	Principal                 decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	AnnualInterestRatePercent decimal.Decimal `gorm:"type:decimal(7,4);not null"`
	TermMonths                int             `gorm:"not null"`
	OutstandingPrincipal      decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	MonthlyEMI                decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	StartDate                 time.Time       `gorm:"type:date;not null"`
	CreatedAt                 time.Time       `gorm:"not null"`
	UpdatedAt                 time.Time       `gorm:"not null"`
}

// TableName returns the table name for the LoanModel.
func (LoanModel) TableName() string {
	return "loans"
}

// ToEntity converts a LoanModel to a domain Loan entity.
func (m *LoanModel) ToEntity() *entity.Loan {
	return &entity.Loan{
		ID:                        m.ID,
		UserID:                    m.UserID,
		Principal:                 m.Principal,
		AnnualInterestRatePercent: m.AnnualInterestRatePercent,
		TermMonths:                m.TermMonths,
		OutstandingPrincipal:      m.OutstandingPrincipal,
		MonthlyEMI:                m.MonthlyEMI,
		StartDate:                 m.StartDate,
		CreatedAt:                 m.CreatedAt,
		UpdatedAt:                 m.UpdatedAt,
	}
}

// LoanFromEntity creates a LoanModel from a domain Loan entity.
func LoanFromEntity(loan *entity.Loan) *LoanModel {
	return &LoanModel{
		ID:                        loan.ID,
		UserID:                    loan.UserID,
		Principal:                 loan.Principal,
		AnnualInterestRatePercent: loan.AnnualInterestRatePercent,
		TermMonths:                loan.TermMonths,
		OutstandingPrincipal:      loan.OutstandingPrincipal,
		MonthlyEMI:                loan.MonthlyEMI,
		StartDate:                 loan.StartDate,
		CreatedAt:                 loan.CreatedAt,
		UpdatedAt:                 loan.UpdatedAt,
	}
}
