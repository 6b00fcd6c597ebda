package mutations

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/fintrack/backend/internal/models"
	"github.com/fintrack/backend/internal/store"
	"github.com/fintrack/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MaxInstallments is the highest number of installments a credit card
// purchase can be split into.
const MaxInstallments = 48

// TransactionInput is what a user enters to record a transaction.
type TransactionInput struct {
	Description  string                   `json:"description" example:"Supermercado"`
	Amount       decimal.Decimal          `json:"amount" example:"149.90"`
	Date         types.Date               `json:"date" swaggertype:"string" example:"2024-03-15"`
	Type         models.TransactionType   `json:"type" example:"expense"`
	CategoryID   *uuid.UUID               `json:"categoryId" example:"2649c965-7999-4873-ae16-89d5d5fa972e"`
	AccountID    uuid.UUID                `json:"accountId" example:"fd81dc45-a3a2-468e-a6fa-b2618f30aa45"`
	Status       models.TransactionStatus `json:"status" example:"cleared"`
	Installments int                      `json:"installments" example:"3"` // Only used for credit card purchases. 0 and 1 both mean no installments.
}

// TransactionInputFrom returns the editable fields of an existing
// transaction.
func TransactionInputFrom(t models.Transaction) TransactionInput {
	return TransactionInput{
		Description: t.Description,
		Amount:      t.Amount,
		Date:        t.Date,
		Type:        t.Type,
		CategoryID:  t.CategoryID,
		AccountID:   t.AccountID,
		Status:      t.Status,
	}
}

func (in TransactionInput) validate() error {
	if strings.TrimSpace(in.Description) == "" {
		return invalid("description", "is required")
	}

	if !in.Amount.IsPositive() {
		return invalid("amount", "must be greater than zero")
	}

	if in.Date.IsZero() {
		return invalid("date", "is required")
	}

	if !in.Type.Valid() {
		return invalid("type", "must be expense or income")
	}

	if in.AccountID == uuid.Nil {
		return invalid("accountId", "is required")
	}

	if in.Status != "" && !in.Status.Valid() {
		return invalid("status", "must be pending, cleared or reconciled")
	}

	if in.Installments < 0 {
		return invalid("installments", "must not be negative")
	}

	if in.Installments > MaxInstallments {
		return invalid("installments", fmt.Sprintf("must not be more than %d", MaxInstallments))
	}

	return nil
}

func (in TransactionInput) transaction() models.Transaction {
	categoryID := in.CategoryID
	if categoryID != nil && *categoryID == uuid.Nil {
		categoryID = nil
	}

	return models.Transaction{
		Description: strings.TrimSpace(in.Description),
		Amount:      in.Amount,
		Date:        in.Date,
		Type:        in.Type,
		CategoryID:  categoryID,
		AccountID:   in.AccountID,
		Status:      in.Status,
	}
}

// checkCategory verifies that the category exists and accepts transactions
// of type t.
func (h *Handler) checkCategory(ctx context.Context, id *uuid.UUID, t models.TransactionType) error {
	if id == nil || *id == uuid.Nil {
		return nil
	}

	category, err := h.data.Categories.Get(ctx, *id)
	if err != nil {
		return err
	}

	if !category.Accepts(t) {
		return invalid("categoryId", "must be a category of the same type as the transaction")
	}

	return nil
}

// openInvoice returns the single open invoice of the credit card.
func (h *Handler) openInvoice(ctx context.Context, card uuid.UUID) (models.CreditInvoice, error) {
	invoices, err := h.data.CreditInvoices.ListWhere(ctx, store.Eq{"account_id": card, "status": models.InvoiceOpen})
	if err != nil {
		return models.CreditInvoice{}, err
	}

	if len(invoices) == 0 {
		return models.CreditInvoice{}, ErrNoOpenInvoice
	}

	return invoices[0], nil
}

// post books an amount on an account. For credit cards, the amount of the
// open invoice grows with expenses. For all other accounts, the balance
// grows with income.
func (h *Handler) post(ctx context.Context, account models.Account, t models.TransactionType, amount decimal.Decimal) (string, error) {
	if account.IsCreditCard() {
		invoice, err := h.openInvoice(ctx, account.ID)
		if err != nil {
			return "find open invoice", err
		}

		return "update invoice amount", h.postInvoice(ctx, invoice, t, amount)
	}

	return "update account balance", h.postBalance(ctx, account, t, amount)
}

func (h *Handler) postInvoice(ctx context.Context, invoice models.CreditInvoice, t models.TransactionType, amount decimal.Decimal) error {
	if t == models.TransactionIncome {
		amount = amount.Neg()
	}

	_, err := h.data.CreditInvoices.Update(ctx, invoice.ID, func(i *models.CreditInvoice) {
		i.Amount = i.Amount.Add(amount)
	})
	return err
}

func (h *Handler) postBalance(ctx context.Context, account models.Account, t models.TransactionType, amount decimal.Decimal) error {
	if t == models.TransactionExpense {
		amount = amount.Neg()
	}

	_, err := h.data.Accounts.Update(ctx, account.ID, func(a *models.Account) {
		a.Balance = a.Balance.Add(amount)
	})
	return err
}

// Installments splits a purchase into count transactions, each one month
// after the previous one and each with the amount divided by count. A
// purchase on the 31st falls on the last day of shorter months.
//
// The amounts are rounded to cents. The rounding difference is not
// distributed, the installments may add up to slightly more or less than
// the amount of the purchase.
func Installments(in TransactionInput, count int) []models.Transaction {
	parent := uuid.New()
	share := in.Amount.Div(decimal.NewFromInt(int64(count))).Round(2)
	start := types.MonthOf(in.Date.Time())

	transactions := make([]models.Transaction, 0, count)
	for i := range count {
		t := in.transaction()
		t.Amount = share
		t.Date = start.AddDate(0, i).Day(in.Date.Day())
		t.Status = models.StatusPending
		t.InstallmentCount = count
		t.CurrentInstallment = i + 1
		t.ParentTransactionID = &parent

		transactions = append(transactions, t)
	}

	return transactions
}

// SaveTransaction records a new transaction and books it on its account.
//
// Credit card purchases with more than one installment are stored as one
// transaction per installment. Only the share of a single installment is
// added to the open invoice of the card.
func (h *Handler) SaveTransaction(ctx context.Context, in TransactionInput) ([]models.Transaction, error) {
	created, err := h.saveTransaction(ctx, in)
	if err != nil {
		return nil, err
	}

	message := in.Description + " foi salva."
	if len(created) > 1 {
		message = in.Description + " foi salva em " + plural(len(created), "parcela", "parcelas") + "."
	}
	h.succeed(ctx, "Transação salva", message)

	return created, nil
}

const saveTransactionFailed = "Erro ao salvar transação"

func (h *Handler) saveTransaction(ctx context.Context, in TransactionInput) ([]models.Transaction, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	account, err := h.data.Accounts.Get(ctx, in.AccountID)
	if err != nil {
		return nil, h.fail(saveTransactionFailed, "resolve account", err)
	}

	if err := h.checkCategory(ctx, in.CategoryID, in.Type); err != nil {
		if isValidation(err) {
			return nil, err
		}
		return nil, h.fail(saveTransactionFailed, "resolve category", err)
	}

	if account.IsCreditCard() && in.Installments > 1 {
		created, err := h.data.Transactions.InsertMany(ctx, Installments(in, in.Installments))
		if err != nil {
			return nil, h.fail(saveTransactionFailed, "insert installments", err)
		}

		if step, err := h.post(ctx, account, in.Type, created[0].Amount); err != nil {
			return nil, h.fail(saveTransactionFailed, step, err)
		}

		return created, nil
	}

	transaction, err := h.data.Transactions.Insert(ctx, in.transaction())
	if err != nil {
		return nil, h.fail(saveTransactionFailed, "insert transaction", err)
	}

	if step, err := h.post(ctx, account, transaction.Type, transaction.Amount); err != nil {
		return nil, h.fail(saveTransactionFailed, step, err)
	}

	return []models.Transaction{transaction}, nil
}

// UpdateTransaction replaces the editable fields of a transaction.
//
// Balances and invoices are not adjusted. Installment information is kept
// as it is.
func (h *Handler) UpdateTransaction(ctx context.Context, id uuid.UUID, in TransactionInput) (models.Transaction, error) {
	const title = "Erro ao atualizar transação"

	if err := in.validate(); err != nil {
		return models.Transaction{}, err
	}

	if err := h.checkCategory(ctx, in.CategoryID, in.Type); err != nil {
		if isValidation(err) {
			return models.Transaction{}, err
		}
		return models.Transaction{}, h.fail(title, "resolve category", err)
	}

	if _, err := h.data.Accounts.Get(ctx, in.AccountID); err != nil {
		return models.Transaction{}, h.fail(title, "resolve account", err)
	}

	updated, err := h.data.Transactions.Update(ctx, id, func(t *models.Transaction) {
		patch := in.transaction()
		t.Description = patch.Description
		t.Amount = patch.Amount
		t.Date = patch.Date
		t.Type = patch.Type
		t.CategoryID = patch.CategoryID
		t.AccountID = patch.AccountID
		if patch.Status != "" {
			t.Status = patch.Status
		}
	})
	if err != nil {
		return models.Transaction{}, h.fail(title, "update transaction", err)
	}

	h.succeed(ctx, "Transação atualizada", updated.Description+" foi atualizada.")
	return updated, nil
}

// DeleteTransaction deletes a transaction and reverts what it booked on its
// account. For installments, all installments of the purchase are deleted
// and the share of one installment is taken off the open invoice, which is
// what saving them added.
//
// If the card has no open invoice, the invoice the purchase was booked on is
// already closed and is left as it is. Monthly fixed expenses paid by the
// transaction become unpaid again.
func (h *Handler) DeleteTransaction(ctx context.Context, id uuid.UUID) error {
	const title = "Erro ao excluir transação"

	transaction, err := h.data.Transactions.Get(ctx, id)
	if err != nil {
		return h.fail(title, "resolve transaction", err)
	}

	group := []models.Transaction{transaction}
	if transaction.ParentTransactionID != nil {
		group, err = h.data.Transactions.ListWhere(ctx, store.Eq{"parent_transaction_id": *transaction.ParentTransactionID})
		if err != nil {
			return h.fail(title, "resolve installments", err)
		}
	}

	account, err := h.data.Accounts.Get(ctx, transaction.AccountID)
	if err != nil {
		return h.fail(title, "resolve account", err)
	}

	confirmation := Confirmation{
		Title:   "Excluir transação",
		Message: "Excluir a transação " + transaction.Description + "?",
	}
	if len(group) > 1 {
		confirmation.Cascade = append(confirmation.Cascade, "todas as "+plural(len(group), "parcela", "parcelas")+" desta compra serão excluídas")
	}

	var invoice *models.CreditInvoice
	if account.IsCreditCard() {
		open, err := h.openInvoice(ctx, account.ID)
		switch {
		case errors.Is(err, ErrNoOpenInvoice):
			confirmation.Cascade = append(confirmation.Cascade, "a fatura do cartão já está fechada e não será alterada")
		case err != nil:
			return h.fail(title, "find open invoice", err)
		default:
			invoice = &open
		}
	}

	paid, err := h.paidBy(ctx, group)
	if err != nil {
		return h.fail(title, "resolve fixed expense payments", err)
	}
	if len(paid) > 0 {
		confirmation.Cascade = append(confirmation.Cascade, plural(len(paid), "despesa fixa voltará a ficar pendente", "despesas fixas voltarão a ficar pendentes"))
	}

	if err := h.confirmed(ctx, confirmation); err != nil {
		return err
	}

	if err := h.unpay(ctx, paid); err != nil {
		return h.fail(title, "reset fixed expense payments", err)
	}

	if len(group) > 1 {
		_, err = h.data.Transactions.DeleteWhere(ctx, store.Eq{"parent_transaction_id": *transaction.ParentTransactionID})
	} else {
		err = h.data.Transactions.Delete(ctx, transaction.ID)
	}
	if err != nil {
		return h.fail(title, "delete transaction", err)
	}

	// Reverting means posting the opposite type
	reverse := models.TransactionIncome
	if transaction.Type == models.TransactionIncome {
		reverse = models.TransactionExpense
	}

	switch {
	case invoice != nil:
		if err := h.postInvoice(ctx, *invoice, reverse, transaction.Amount); err != nil {
			return h.fail(title, "update invoice amount", err)
		}
	case !account.IsCreditCard():
		if err := h.postBalance(ctx, account, reverse, transaction.Amount); err != nil {
			return h.fail(title, "update account balance", err)
		}
	}

	h.succeed(ctx, "Transação excluída", transaction.Description+" foi excluída.")
	return nil
}
