package mutations

import (
	"context"

	"github.com/fintrack/backend/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BudgetInput holds the editable fields of a budget.
type BudgetInput struct {
	CategoryID uuid.UUID       `json:"categoryId" example:"2649c965-7999-4873-ae16-89d5d5fa972e"`
	Amount     decimal.Decimal `json:"amount" example:"500"`
}

// BudgetInputFrom returns the editable fields of an existing budget.
func BudgetInputFrom(b models.Budget) BudgetInput {
	return BudgetInput{CategoryID: b.CategoryID, Amount: b.Amount}
}

func (in BudgetInput) validate() error {
	if in.CategoryID == uuid.Nil {
		return invalid("categoryId", "is required")
	}

	if !in.Amount.IsPositive() {
		return invalid("amount", "must be greater than zero")
	}

	return nil
}

func (h *Handler) CreateBudget(ctx context.Context, in BudgetInput) (models.Budget, error) {
	const title = "Erro ao criar orçamento"

	if err := in.validate(); err != nil {
		return models.Budget{}, err
	}

	category, err := h.data.Categories.Get(ctx, in.CategoryID)
	if err != nil {
		return models.Budget{}, h.fail(title, "resolve category", err)
	}

	budget, err := h.data.Budgets.Insert(ctx, models.Budget{CategoryID: in.CategoryID, Amount: in.Amount})
	if err != nil {
		return models.Budget{}, h.fail(title, "insert budget", err)
	}

	h.succeed(ctx, "Orçamento criado", "Orçamento para "+category.Name+" foi criado.")
	return budget, nil
}

func (h *Handler) UpdateBudget(ctx context.Context, id uuid.UUID, in BudgetInput) (models.Budget, error) {
	const title = "Erro ao atualizar orçamento"

	if err := in.validate(); err != nil {
		return models.Budget{}, err
	}

	category, err := h.data.Categories.Get(ctx, in.CategoryID)
	if err != nil {
		return models.Budget{}, h.fail(title, "resolve category", err)
	}

	budget, err := h.data.Budgets.Update(ctx, id, func(b *models.Budget) {
		b.CategoryID = in.CategoryID
		b.Amount = in.Amount
	})
	if err != nil {
		return models.Budget{}, h.fail(title, "update budget", err)
	}

	h.succeed(ctx, "Orçamento atualizado", "Orçamento para "+category.Name+" foi atualizado.")
	return budget, nil
}

func (h *Handler) DeleteBudget(ctx context.Context, id uuid.UUID) error {
	if err := h.data.Budgets.Delete(ctx, id); err != nil {
		return h.fail("Erro ao excluir orçamento", "delete budget", err)
	}

	h.succeed(ctx, "Orçamento excluído", "O orçamento foi excluído.")
	return nil
}
