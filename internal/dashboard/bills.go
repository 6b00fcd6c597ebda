package dashboard

import (
	"github.com/fintrack/backend/internal/models"
	"github.com/fintrack/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

// Bill is a credit card invoice that still has to be paid.
type Bill struct {
	InvoiceID uuid.UUID            `json:"invoiceId" example:"5c8e2b1a-7d3f-4e9a-b6c2-1f0e9d8c7b6a"`
	AccountID uuid.UUID            `json:"accountId" example:"fd81dc45-a3a2-468e-a6fa-b2618f30aa45"`
	CardName  string               `json:"cardName" example:"Nubank"`
	Month     string               `json:"month" example:"Março/2024"`
	Status    models.InvoiceStatus `json:"status" example:"Aberta"`
	Amount    decimal.Decimal      `json:"amount" example:"1290.40"`
	DueDate   types.Date           `json:"dueDate" swaggertype:"string" example:"2024-04-10"`
}

// UpcomingBills returns the open and closed invoices with an amount above
// zero, sorted by due date. Invoices due on the same day keep their order.
func UpcomingBills(invoices []models.CreditInvoice, accounts []models.Account) []Bill {
	names := make(map[uuid.UUID]string, len(accounts))
	for _, a := range accounts {
		names[a.ID] = a.Name
	}

	bills := make([]Bill, 0)
	for _, i := range invoices {
		if !i.IsPayable() || !i.Amount.IsPositive() {
			continue
		}

		bills = append(bills, Bill{
			InvoiceID: i.ID,
			AccountID: i.AccountID,
			CardName:  names[i.AccountID],
			Month:     i.Month,
			Status:    i.Status,
			Amount:    i.Amount,
			DueDate:   i.DueDate,
		})
	}

	slices.SortStableFunc(bills, func(a, b Bill) int {
		return a.DueDate.Compare(b.DueDate)
	})

	return bills
}
