package dashboard

import (
	"github.com/fintrack/backend/internal/models"
	"github.com/fintrack/backend/internal/types"
	"github.com/shopspring/decimal"
)

// OverdueFixedExpenses returns the unpaid monthly fixed expenses that were
// due before today.
func OverdueFixedExpenses(instances []models.MonthlyFixedExpense, today types.Date) []models.MonthlyFixedExpense {
	overdue := make([]models.MonthlyFixedExpense, 0)
	for _, i := range instances {
		if i.Status == models.FixedExpenseUnpaid && i.DueDate.Before(today) {
			overdue = append(overdue, i)
		}
	}
	return overdue
}

// OverdueInvoices returns the invoices that are not paid and were due
// before today.
func OverdueInvoices(invoices []models.CreditInvoice, today types.Date) []models.CreditInvoice {
	overdue := make([]models.CreditInvoice, 0)
	for _, i := range invoices {
		if i.Status != models.InvoicePaid && i.DueDate.Before(today) {
			overdue = append(overdue, i)
		}
	}
	return overdue
}

// OverdueSummary is the content of the overdue alert.
type OverdueSummary struct {
	FixedExpenseCount  int             `json:"fixedExpenseCount" example:"1"`
	FixedExpenseAmount decimal.Decimal `json:"fixedExpenseAmount" example:"1800"`
	InvoiceCount       int             `json:"invoiceCount" example:"0"`
	InvoiceAmount      decimal.Decimal `json:"invoiceAmount" example:"0"`
	Any                bool            `json:"any" example:"true"` // The alert is only shown if this is true
}

// SummarizeOverdue counts and sums already filtered overdue fixed expenses
// and invoices.
func SummarizeOverdue(fixed []models.MonthlyFixedExpense, invoices []models.CreditInvoice) OverdueSummary {
	s := OverdueSummary{
		FixedExpenseCount:  len(fixed),
		FixedExpenseAmount: decimal.Zero,
		InvoiceCount:       len(invoices),
		InvoiceAmount:      decimal.Zero,
	}

	for _, f := range fixed {
		s.FixedExpenseAmount = s.FixedExpenseAmount.Add(f.Amount)
	}

	for _, i := range invoices {
		s.InvoiceAmount = s.InvoiceAmount.Add(i.Amount)
	}

	s.Any = s.FixedExpenseCount > 0 || s.InvoiceCount > 0
	return s
}
