package mutations

import (
	"context"
	"errors"
	"strings"

	"github.com/fintrack/backend/internal/models"
	"github.com/fintrack/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InvoiceInput holds the fields of a new invoice.
type InvoiceInput struct {
	AccountID uuid.UUID  `json:"accountId" example:"fd81dc45-a3a2-468e-a6fa-b2618f30aa45"`
	Month     string     `json:"month" example:"Março/2024"` // Defaults to the month of the due date as YYYY-MM
	DueDate   types.Date `json:"dueDate" swaggertype:"string" example:"2024-04-10"`
}

// OpenInvoice opens a new invoice for a credit card. A card can only have
// one open invoice at a time.
func (h *Handler) OpenInvoice(ctx context.Context, in InvoiceInput) (models.CreditInvoice, error) {
	const title = "Erro ao abrir fatura"

	if in.AccountID == uuid.Nil {
		return models.CreditInvoice{}, invalid("accountId", "is required")
	}

	if in.DueDate.IsZero() {
		return models.CreditInvoice{}, invalid("dueDate", "is required")
	}

	account, err := h.data.Accounts.Get(ctx, in.AccountID)
	if err != nil {
		return models.CreditInvoice{}, h.fail(title, "resolve account", err)
	}

	if !account.IsCreditCard() {
		return models.CreditInvoice{}, invalid("accountId", "must be a credit card")
	}

	_, err = h.openInvoice(ctx, account.ID)
	if err == nil {
		return models.CreditInvoice{}, h.fail(title, "check open invoices", ErrInvoiceAlreadyOpen)
	} else if !errors.Is(err, ErrNoOpenInvoice) {
		return models.CreditInvoice{}, h.fail(title, "check open invoices", err)
	}

	month := strings.TrimSpace(in.Month)
	if month == "" {
		month = types.MonthOf(in.DueDate.Time()).String()
	}

	invoice, err := h.data.CreditInvoices.Insert(ctx, models.CreditInvoice{
		AccountID: account.ID,
		Month:     month,
		Status:    models.InvoiceOpen,
		Amount:    decimal.Zero,
		DueDate:   in.DueDate,
	})
	if err != nil {
		return models.CreditInvoice{}, h.fail(title, "insert invoice", err)
	}

	h.succeed(ctx, "Fatura aberta", "Fatura "+invoice.Month+" de "+account.Name+" foi aberta.")
	return invoice, nil
}

// CloseInvoice closes an open invoice. New purchases are not added to it
// anymore.
func (h *Handler) CloseInvoice(ctx context.Context, id uuid.UUID) (models.CreditInvoice, error) {
	return h.transition(ctx, id, models.InvoiceOpen, models.InvoiceClosed, "Erro ao fechar fatura", "Fatura fechada")
}

// PayInvoice marks an open or closed invoice as paid.
func (h *Handler) PayInvoice(ctx context.Context, id uuid.UUID) (models.CreditInvoice, error) {
	invoice, err := h.data.CreditInvoices.Get(ctx, id)
	if err != nil {
		return models.CreditInvoice{}, h.fail("Erro ao pagar fatura", "resolve invoice", err)
	}

	return h.transition(ctx, id, invoice.Status, models.InvoicePaid, "Erro ao pagar fatura", "Fatura paga")
}

func (h *Handler) transition(ctx context.Context, id uuid.UUID, from, to models.InvoiceStatus, failed, succeeded string) (models.CreditInvoice, error) {
	invoice, err := h.data.CreditInvoices.Get(ctx, id)
	if err != nil {
		return models.CreditInvoice{}, h.fail(failed, "resolve invoice", err)
	}

	if invoice.Status != from || invoice.Status == models.InvoicePaid {
		return models.CreditInvoice{}, h.fail(failed, "check invoice status", ErrInvalidTransition)
	}

	invoice, err = h.data.CreditInvoices.Update(ctx, id, func(i *models.CreditInvoice) {
		i.Status = to
	})
	if err != nil {
		return models.CreditInvoice{}, h.fail(failed, "update invoice", err)
	}

	h.succeed(ctx, succeeded, "Fatura "+invoice.Month+" está "+strings.ToLower(string(to))+".")
	return invoice, nil
}
