package models

import (
	"strings"

	"github.com/fintrack/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// swagger:enum InvoiceStatus
type InvoiceStatus string

const (
	InvoiceOpen   InvoiceStatus = "Aberta"
	InvoiceClosed InvoiceStatus = "Fechada"
	InvoicePaid   InvoiceStatus = "Paga"
)

var InvoiceStatuses = []InvoiceStatus{
	InvoiceOpen,
	InvoiceClosed,
	InvoicePaid,
}

func (s InvoiceStatus) Valid() bool {
	return slices.Contains(InvoiceStatuses, s)
}

// CreditInvoice is the monthly bill of a credit card.
//
// At most one invoice per card is open at a time. Purchases on the card
// are added to the amount of that invoice.
type CreditInvoice struct {
	DefaultModel
	AccountID uuid.UUID       `json:"accountId" gorm:"index" example:"fd81dc45-a3a2-468e-a6fa-b2618f30aa45"` // The credit card
	Month     string          `json:"month" example:"Março/2024"`                                            // Human readable label of the billing month
	Status    InvoiceStatus   `json:"status" example:"Aberta"`
	Amount    decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)" example:"1290.40"`
	DueDate   types.Date      `json:"dueDate" swaggertype:"string" example:"2024-04-10"`
}

// IsPayable reports whether the invoice still has to be paid.
func (i CreditInvoice) IsPayable() bool {
	return i.Status == InvoiceOpen || i.Status == InvoiceClosed
}

func (i *CreditInvoice) BeforeSave(_ *gorm.DB) error {
	i.Month = strings.TrimSpace(i.Month)

	if i.Status == "" {
		i.Status = InvoiceOpen
	}

	if !i.Status.Valid() {
		return ErrInvalidStatus
	}

	if i.AccountID == uuid.Nil {
		return ErrAccountEmpty
	}

	if i.DueDate.IsZero() {
		return ErrDateEmpty
	}

	return nil
}
