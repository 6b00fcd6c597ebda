package mutations

import (
	"context"
	"strings"

	"github.com/fintrack/backend/internal/models"
	"github.com/fintrack/backend/internal/store"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AccountInput holds the editable fields of an account.
type AccountInput struct {
	Name        string              `json:"name" example:"Nubank"`
	Type        models.AccountType  `json:"type" example:"credit_card"`
	Balance     decimal.Decimal     `json:"balance" example:"0"`
	CreditLimit decimal.NullDecimal `json:"creditLimit" swaggertype:"string" example:"5000"`
	DueDay      *int                `json:"dueDay" example:"10"`
	Currency    string              `json:"currency" example:"BRL"`
}

// AccountInputFrom returns the editable fields of an existing account.
func AccountInputFrom(a models.Account) AccountInput {
	return AccountInput{
		Name:        a.Name,
		Type:        a.Type,
		Balance:     a.Balance,
		CreditLimit: a.CreditLimit,
		DueDay:      a.DueDay,
		Currency:    a.Currency,
	}
}

func (in AccountInput) validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return invalid("name", "is required")
	}

	if !in.Type.Valid() {
		return invalid("type", "must be one of wallet, checking, savings, investment, credit_card, loan")
	}

	if in.DueDay != nil && (*in.DueDay < 1 || *in.DueDay > 31) {
		return invalid("dueDay", "must be between 1 and 31")
	}

	if in.CreditLimit.Valid && in.CreditLimit.Decimal.IsNegative() {
		return invalid("creditLimit", "must not be negative")
	}

	return nil
}

func (in AccountInput) apply(a *models.Account) {
	a.Name = in.Name
	a.Type = in.Type
	a.Balance = in.Balance
	a.CreditLimit = in.CreditLimit
	a.DueDay = in.DueDay
	a.Currency = in.Currency
}

func (h *Handler) CreateAccount(ctx context.Context, in AccountInput) (models.Account, error) {
	if err := in.validate(); err != nil {
		return models.Account{}, err
	}

	var account models.Account
	in.apply(&account)

	account, err := h.data.Accounts.Insert(ctx, account)
	if err != nil {
		return models.Account{}, h.fail("Erro ao criar conta", "insert account", err)
	}

	h.succeed(ctx, "Conta criada", account.Name+" foi criada.")
	return account, nil
}

func (h *Handler) UpdateAccount(ctx context.Context, id uuid.UUID, in AccountInput) (models.Account, error) {
	if err := in.validate(); err != nil {
		return models.Account{}, err
	}

	account, err := h.data.Accounts.Update(ctx, id, in.apply)
	if err != nil {
		return models.Account{}, h.fail("Erro ao atualizar conta", "update account", err)
	}

	h.succeed(ctx, "Conta atualizada", account.Name+" foi atualizada.")
	return account, nil
}

// DeleteAccount deletes an account with all its transactions and invoices.
func (h *Handler) DeleteAccount(ctx context.Context, id uuid.UUID) error {
	const title = "Erro ao excluir conta"

	account, err := h.data.Accounts.Get(ctx, id)
	if err != nil {
		return h.fail(title, "resolve account", err)
	}

	transactions, err := h.data.Transactions.ListWhere(ctx, store.Eq{"account_id": id})
	if err != nil {
		return h.fail(title, "resolve transactions", err)
	}

	invoices, err := h.data.CreditInvoices.ListWhere(ctx, store.Eq{"account_id": id})
	if err != nil {
		return h.fail(title, "resolve invoices", err)
	}

	paid, err := h.paidBy(ctx, transactions)
	if err != nil {
		return h.fail(title, "resolve fixed expense payments", err)
	}

	confirmation := Confirmation{
		Title:   "Excluir conta",
		Message: "Excluir a conta " + account.Name + "?",
	}
	if len(transactions) > 0 {
		confirmation.Cascade = append(confirmation.Cascade, plural(len(transactions), "transação será excluída", "transações serão excluídas"))
	}
	if len(invoices) > 0 {
		confirmation.Cascade = append(confirmation.Cascade, plural(len(invoices), "fatura será excluída", "faturas serão excluídas"))
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

	if len(transactions) > 0 {
		if _, err := h.data.Transactions.DeleteWhere(ctx, store.Eq{"account_id": id}); err != nil {
			return h.fail(title, "delete transactions", err)
		}
	}

	if len(invoices) > 0 {
		if _, err := h.data.CreditInvoices.DeleteWhere(ctx, store.Eq{"account_id": id}); err != nil {
			return h.fail(title, "delete invoices", err)
		}
	}

	if err := h.data.Accounts.Delete(ctx, id); err != nil {
		return h.fail(title, "delete account", err)
	}

	h.succeed(ctx, "Conta excluída", account.Name+" foi excluída.")
	return nil
}
