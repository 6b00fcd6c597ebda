package models

import (
	"strings"

	"github.com/fintrack/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// swagger:enum TransactionType
type TransactionType string

const (
	TransactionExpense TransactionType = "expense"
	TransactionIncome  TransactionType = "income"
)

var TransactionTypes = []TransactionType{
	TransactionExpense,
	TransactionIncome,
}

func (t TransactionType) Valid() bool {
	return slices.Contains(TransactionTypes, t)
}

// swagger:enum TransactionStatus
type TransactionStatus string

const (
	StatusPending    TransactionStatus = "pending"
	StatusCleared    TransactionStatus = "cleared"
	StatusReconciled TransactionStatus = "reconciled"
)

var TransactionStatuses = []TransactionStatus{
	StatusPending,
	StatusCleared,
	StatusReconciled,
}

func (s TransactionStatus) Valid() bool {
	return slices.Contains(TransactionStatuses, s)
}

// Transaction is money coming into or going out of an account.
//
// Amount is always positive, the direction is given by Type.
//
// Purchases split into installments are stored as one transaction per
// installment. All of them share the same ParentTransactionID and
// InstallmentCount, CurrentInstallment runs from 1 to InstallmentCount.
type Transaction struct {
	DefaultModel
	Description         string            `json:"description" example:"Supermercado"`
	Amount              decimal.Decimal   `json:"amount" gorm:"type:DECIMAL(20,8)" example:"149.90"`
	Date                types.Date        `json:"date" swaggertype:"string" example:"2024-03-15"`
	Type                TransactionType   `json:"type" example:"expense"`
	CategoryID          *uuid.UUID        `json:"categoryId" gorm:"index" example:"2649c965-7999-4873-ae16-89d5d5fa972e"`
	AccountID           uuid.UUID         `json:"accountId" gorm:"index" example:"fd81dc45-a3a2-468e-a6fa-b2618f30aa45"`
	Status              TransactionStatus `json:"status" example:"cleared"`
	InstallmentCount    int               `json:"installmentCount,omitempty" example:"3"`
	CurrentInstallment  int               `json:"currentInstallment,omitempty" example:"1"`
	ParentTransactionID *uuid.UUID        `json:"parentTransactionId,omitempty" gorm:"index" example:"8e16b456-a719-48ce-9fec-e115cfa7cbcc"`
}

// IsInstallment reports whether the transaction is one leg of a purchase
// split into more than one installment.
func (t Transaction) IsInstallment() bool {
	return t.InstallmentCount > 1 && t.ParentTransactionID != nil
}

// SignedAmount returns the amount with a positive sign for income and a
// negative sign for expenses.
func (t Transaction) SignedAmount() decimal.Decimal {
	if t.Type == TransactionIncome {
		return t.Amount
	}
	return t.Amount.Neg()
}

// BeforeSave
//   - trims whitespace from the description
//   - defaults the status to cleared
//   - verifies amount, type, status and installment information
func (t *Transaction) BeforeSave(_ *gorm.DB) error {
	t.Description = strings.TrimSpace(t.Description)

	// Ensure that the category ID is nil and not a pointer to a nil UUID
	if t.CategoryID != nil && *t.CategoryID == uuid.Nil {
		t.CategoryID = nil
	}

	if t.Status == "" {
		t.Status = StatusCleared
	}

	if t.Date.IsZero() {
		return ErrDateEmpty
	}

	if t.AccountID == uuid.Nil {
		return ErrAccountEmpty
	}

	if !t.Amount.IsPositive() {
		return ErrAmountNotPositive
	}

	if !t.Type.Valid() {
		return ErrInvalidTransactionType
	}

	if !t.Status.Valid() {
		return ErrInvalidStatus
	}

	if t.InstallmentCount < 0 || t.CurrentInstallment < 0 || t.CurrentInstallment > t.InstallmentCount {
		return ErrInvalidInstallments
	}

	if t.InstallmentCount > 1 && (t.CurrentInstallment < 1 || t.ParentTransactionID == nil) {
		return ErrInvalidInstallments
	}

	return nil
}
