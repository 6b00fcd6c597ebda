package models

import (
	"strings"

	"github.com/fintrack/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// swagger:enum FixedExpenseStatus
type FixedExpenseStatus string

const (
	FixedExpensePaid   FixedExpenseStatus = "paid"
	FixedExpenseUnpaid FixedExpenseStatus = "unpaid"
)

var FixedExpenseStatuses = []FixedExpenseStatus{
	FixedExpensePaid,
	FixedExpenseUnpaid,
}

func (s FixedExpenseStatus) Valid() bool {
	return slices.Contains(FixedExpenseStatuses, s)
}

// FixedExpense is the template for an expense that recurs every month,
// e.g. rent or a streaming subscription.
type FixedExpense struct {
	DefaultModel
	Name       string          `json:"name" example:"Aluguel"`
	Amount     decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)" example:"1800"` // Default amount for new monthly instances
	DueDay     int             `json:"dueDay" example:"5"`
	CategoryID *uuid.UUID      `json:"categoryId" example:"2649c965-7999-4873-ae16-89d5d5fa972e"`
	Active     bool            `json:"active" example:"true"` // Only active templates generate monthly instances
}

func (f *FixedExpense) BeforeSave(_ *gorm.DB) error {
	f.Name = strings.TrimSpace(f.Name)

	if f.CategoryID != nil && *f.CategoryID == uuid.Nil {
		f.CategoryID = nil
	}

	if f.Name == "" {
		return ErrNameEmpty
	}

	if f.DueDay < 1 || f.DueDay > 31 {
		return ErrInvalidDueDay
	}

	if !f.Amount.IsPositive() {
		return ErrAmountNotPositive
	}

	return nil
}

// MonthlyFixedExpense is the instance of a FixedExpense for one month.
type MonthlyFixedExpense struct {
	DefaultModel
	FixedExpenseID uuid.UUID          `json:"fixedExpenseId" gorm:"index" example:"3b1ae6a3-b3a5-4e74-a530-6c0aa4a7f4b6"`
	Month          types.Month        `json:"month" swaggertype:"string" example:"2024-03"`
	Amount         decimal.Decimal    `json:"amount" gorm:"type:DECIMAL(20,8)" example:"1800"`
	Status         FixedExpenseStatus `json:"status" example:"unpaid"`
	DueDate        types.Date         `json:"dueDate" swaggertype:"string" example:"2024-03-05"`
	TransactionID  *uuid.UUID         `json:"transactionId" example:"8e16b456-a719-48ce-9fec-e115cfa7cbcc"` // The transaction that realized the payment
}

func (m *MonthlyFixedExpense) BeforeSave(_ *gorm.DB) error {
	if m.Status == "" {
		m.Status = FixedExpenseUnpaid
	}

	if !m.Status.Valid() {
		return ErrInvalidStatus
	}

	if m.DueDate.IsZero() {
		return ErrDateEmpty
	}

	return nil
}
