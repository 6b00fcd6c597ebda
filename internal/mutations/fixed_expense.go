package mutations

import (
	"context"
	"fmt"
	"strings"

	"github.com/fintrack/backend/internal/models"
	"github.com/fintrack/backend/internal/store"
	"github.com/fintrack/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// FixedExpenseInput holds the editable fields of a fixed expense.
type FixedExpenseInput struct {
	Name       string          `json:"name" example:"Aluguel"`
	Amount     decimal.Decimal `json:"amount" example:"1800"`
	DueDay     int             `json:"dueDay" example:"5"`
	CategoryID *uuid.UUID      `json:"categoryId" example:"2649c965-7999-4873-ae16-89d5d5fa972e"`
	Active     bool            `json:"active" example:"true"`
}

// FixedExpenseInputFrom returns the editable fields of an existing fixed
// expense.
func FixedExpenseInputFrom(f models.FixedExpense) FixedExpenseInput {
	return FixedExpenseInput{Name: f.Name, Amount: f.Amount, DueDay: f.DueDay, CategoryID: f.CategoryID, Active: f.Active}
}

func (in FixedExpenseInput) validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return invalid("name", "is required")
	}

	if !in.Amount.IsPositive() {
		return invalid("amount", "must be greater than zero")
	}

	if in.DueDay < 1 || in.DueDay > 31 {
		return invalid("dueDay", "must be between 1 and 31")
	}

	return nil
}

func (in FixedExpenseInput) apply(f *models.FixedExpense) {
	f.Name = in.Name
	f.Amount = in.Amount
	f.DueDay = in.DueDay
	f.CategoryID = in.CategoryID
	f.Active = in.Active
}

func (h *Handler) CreateFixedExpense(ctx context.Context, in FixedExpenseInput) (models.FixedExpense, error) {
	const title = "Erro ao criar despesa fixa"

	if err := in.validate(); err != nil {
		return models.FixedExpense{}, err
	}

	if err := h.checkCategory(ctx, in.CategoryID, models.TransactionExpense); err != nil {
		if isValidation(err) {
			return models.FixedExpense{}, err
		}
		return models.FixedExpense{}, h.fail(title, "resolve category", err)
	}

	var fixed models.FixedExpense
	in.apply(&fixed)

	fixed, err := h.data.FixedExpenses.Insert(ctx, fixed)
	if err != nil {
		return models.FixedExpense{}, h.fail(title, "insert fixed expense", err)
	}

	h.succeed(ctx, "Despesa fixa criada", fixed.Name+" foi criada.")
	return fixed, nil
}

func (h *Handler) UpdateFixedExpense(ctx context.Context, id uuid.UUID, in FixedExpenseInput) (models.FixedExpense, error) {
	const title = "Erro ao atualizar despesa fixa"

	if err := in.validate(); err != nil {
		return models.FixedExpense{}, err
	}

	if err := h.checkCategory(ctx, in.CategoryID, models.TransactionExpense); err != nil {
		if isValidation(err) {
			return models.FixedExpense{}, err
		}
		return models.FixedExpense{}, h.fail(title, "resolve category", err)
	}

	fixed, err := h.data.FixedExpenses.Update(ctx, id, in.apply)
	if err != nil {
		return models.FixedExpense{}, h.fail(title, "update fixed expense", err)
	}

	h.succeed(ctx, "Despesa fixa atualizada", fixed.Name+" foi atualizada.")
	return fixed, nil
}

// DeleteFixedExpense deletes a fixed expense with all its monthly
// instances. Transactions created by paying them are kept.
func (h *Handler) DeleteFixedExpense(ctx context.Context, id uuid.UUID) error {
	const title = "Erro ao excluir despesa fixa"

	fixed, err := h.data.FixedExpenses.Get(ctx, id)
	if err != nil {
		return h.fail(title, "resolve fixed expense", err)
	}

	instances, err := h.data.MonthlyFixedExpenses.ListWhere(ctx, store.Eq{"fixed_expense_id": id})
	if err != nil {
		return h.fail(title, "resolve monthly instances", err)
	}

	confirmation := Confirmation{
		Title:   "Excluir despesa fixa",
		Message: "Excluir a despesa fixa " + fixed.Name + "?",
	}
	if len(instances) > 0 {
		confirmation.Cascade = append(confirmation.Cascade, plural(len(instances), "lançamento mensal será excluído", "lançamentos mensais serão excluídos"))
	}

	if err := h.confirmed(ctx, confirmation); err != nil {
		return err
	}

	if len(instances) > 0 {
		if _, err := h.data.MonthlyFixedExpenses.DeleteWhere(ctx, store.Eq{"fixed_expense_id": id}); err != nil {
			return h.fail(title, "delete monthly instances", err)
		}
	}

	if err := h.data.FixedExpenses.Delete(ctx, id); err != nil {
		return h.fail(title, "delete fixed expense", err)
	}

	h.succeed(ctx, "Despesa fixa excluída", fixed.Name+" foi excluída.")
	return nil
}

// GenerateMonthlyInstances creates the unpaid instance of every active
// fixed expense for the month, unless it already exists. The due day is
// clamped to the length of the month.
func (h *Handler) GenerateMonthlyInstances(ctx context.Context, month types.Month) ([]models.MonthlyFixedExpense, error) {
	const title = "Erro ao gerar despesas fixas"

	if month.IsZero() {
		return nil, invalid("month", "is required")
	}

	templates, err := h.data.FixedExpenses.List(ctx)
	if err != nil {
		return nil, h.fail(title, "resolve fixed expenses", err)
	}

	existing, err := h.data.MonthlyFixedExpenses.List(ctx)
	if err != nil {
		return nil, h.fail(title, "resolve monthly instances", err)
	}

	generated := make(map[uuid.UUID]bool)
	for _, e := range existing {
		if e.Month.Equal(month) {
			generated[e.FixedExpenseID] = true
		}
	}

	instances := make([]models.MonthlyFixedExpense, 0)
	for _, t := range templates {
		if !t.Active || generated[t.ID] {
			continue
		}

		instances = append(instances, models.MonthlyFixedExpense{
			FixedExpenseID: t.ID,
			Month:          month,
			Amount:         t.Amount,
			Status:         models.FixedExpenseUnpaid,
			DueDate:        month.Day(t.DueDay),
		})
	}

	instances, err = h.data.MonthlyFixedExpenses.InsertMany(ctx, instances)
	if err != nil {
		return nil, h.fail(title, "insert monthly instances", err)
	}

	h.succeed(ctx, "Despesas fixas geradas", fmt.Sprintf("%s para %s.", plural(len(instances), "despesa fixa gerada", "despesas fixas geradas"), month))
	return instances, nil
}

// PayMonthlyFixedExpense records the payment of a monthly instance as an
// expense on the account and links the transaction to the instance.
func (h *Handler) PayMonthlyFixedExpense(ctx context.Context, id, accountID uuid.UUID) (models.MonthlyFixedExpense, error) {
	const title = "Erro ao pagar despesa fixa"

	if accountID == uuid.Nil {
		return models.MonthlyFixedExpense{}, invalid("accountId", "is required")
	}

	instance, err := h.data.MonthlyFixedExpenses.Get(ctx, id)
	if err != nil {
		return models.MonthlyFixedExpense{}, h.fail(title, "resolve monthly instance", err)
	}

	if instance.Status == models.FixedExpensePaid {
		return models.MonthlyFixedExpense{}, h.fail(title, "check status", ErrAlreadyPaid)
	}

	fixed, err := h.data.FixedExpenses.Get(ctx, instance.FixedExpenseID)
	if err != nil {
		return models.MonthlyFixedExpense{}, h.fail(title, "resolve fixed expense", err)
	}

	created, err := h.saveTransaction(ctx, TransactionInput{
		Description: fixed.Name,
		Amount:      instance.Amount,
		Date:        types.DateOf(h.now()),
		Type:        models.TransactionExpense,
		CategoryID:  fixed.CategoryID,
		AccountID:   accountID,
	})
	if err != nil {
		return models.MonthlyFixedExpense{}, err
	}

	instance, err = h.data.MonthlyFixedExpenses.Update(ctx, id, func(m *models.MonthlyFixedExpense) {
		m.Status = models.FixedExpensePaid
		m.TransactionID = &created[0].ID
	})
	if err != nil {
		return models.MonthlyFixedExpense{}, h.fail(title, "update monthly instance", err)
	}

	h.succeed(ctx, "Despesa fixa paga", fixed.Name+" foi paga.")
	return instance, nil
}

// paidBy returns the monthly instances whose payment is one of the
// transactions.
func (h *Handler) paidBy(ctx context.Context, transactions []models.Transaction) ([]models.MonthlyFixedExpense, error) {
	if len(transactions) == 0 {
		return nil, nil
	}

	ids := make([]uuid.UUID, 0, len(transactions))
	for _, t := range transactions {
		ids = append(ids, t.ID)
	}

	return h.data.MonthlyFixedExpenses.ListWhere(ctx, store.Eq{"transaction_id": ids})
}

// unpay marks the instances as unpaid and unlinks their payment.
func (h *Handler) unpay(ctx context.Context, instances []models.MonthlyFixedExpense) error {
	if len(instances) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, 0, len(instances))
	for _, i := range instances {
		ids = append(ids, i.ID)
	}

	_, err := h.data.MonthlyFixedExpenses.UpdateWhere(ctx, store.Eq{"id": ids}, map[string]any{
		"status":         models.FixedExpenseUnpaid,
		"transaction_id": nil,
	})
	return err
}
