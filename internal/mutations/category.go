package mutations

import (
	"context"
	"strings"

	"github.com/fintrack/backend/internal/models"
	"github.com/fintrack/backend/internal/store"
	"github.com/google/uuid"
)

// CategoryInput holds the editable fields of a category.
type CategoryInput struct {
	Name  string              `json:"name" example:"Mercado"`
	Type  models.CategoryType `json:"type" example:"expense"`
	Color string              `json:"color" example:"#22c55e"`
	Icon  string              `json:"icon" example:"shopping-cart"`
}

// CategoryInputFrom returns the editable fields of an existing category.
func CategoryInputFrom(c models.Category) CategoryInput {
	return CategoryInput{Name: c.Name, Type: c.Type, Color: c.Color, Icon: c.Icon}
}

func (in CategoryInput) validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return invalid("name", "is required")
	}

	if !in.Type.Valid() {
		return invalid("type", "must be expense, income or transfer")
	}

	return nil
}

func (in CategoryInput) apply(c *models.Category) {
	c.Name = in.Name
	c.Type = in.Type
	c.Color = in.Color
	c.Icon = in.Icon
}

func (h *Handler) CreateCategory(ctx context.Context, in CategoryInput) (models.Category, error) {
	if err := in.validate(); err != nil {
		return models.Category{}, err
	}

	var category models.Category
	in.apply(&category)

	category, err := h.data.Categories.Insert(ctx, category)
	if err != nil {
		return models.Category{}, h.fail("Erro ao criar categoria", "insert category", err)
	}

	h.succeed(ctx, "Categoria criada", category.Name+" foi criada.")
	return category, nil
}

func (h *Handler) UpdateCategory(ctx context.Context, id uuid.UUID, in CategoryInput) (models.Category, error) {
	if err := in.validate(); err != nil {
		return models.Category{}, err
	}

	category, err := h.data.Categories.Update(ctx, id, in.apply)
	if err != nil {
		return models.Category{}, h.fail("Erro ao atualizar categoria", "update category", err)
	}

	h.succeed(ctx, "Categoria atualizada", category.Name+" foi atualizada.")
	return category, nil
}

// DeleteCategory deletes a category. Its budgets are deleted, its
// transactions and fixed expenses are kept without a category.
func (h *Handler) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	const title = "Erro ao excluir categoria"

	category, err := h.data.Categories.Get(ctx, id)
	if err != nil {
		return h.fail(title, "resolve category", err)
	}

	transactions, err := h.data.Transactions.ListWhere(ctx, store.Eq{"category_id": id})
	if err != nil {
		return h.fail(title, "resolve transactions", err)
	}

	budgets, err := h.data.Budgets.ListWhere(ctx, store.Eq{"category_id": id})
	if err != nil {
		return h.fail(title, "resolve budgets", err)
	}

	confirmation := Confirmation{
		Title:   "Excluir categoria",
		Message: "Excluir a categoria " + category.Name + "?",
	}
	if len(transactions) > 0 {
		confirmation.Cascade = append(confirmation.Cascade, plural(len(transactions), "transação ficará sem categoria", "transações ficarão sem categoria"))
	}
	if len(budgets) > 0 {
		confirmation.Cascade = append(confirmation.Cascade, plural(len(budgets), "orçamento será excluído", "orçamentos serão excluídos"))
	}

	if err := h.confirmed(ctx, confirmation); err != nil {
		return err
	}

	if len(budgets) > 0 {
		if _, err := h.data.Budgets.DeleteWhere(ctx, store.Eq{"category_id": id}); err != nil {
			return h.fail(title, "delete budgets", err)
		}
	}

	if len(transactions) > 0 {
		if _, err := h.data.Transactions.UpdateWhere(ctx, store.Eq{"category_id": id}, map[string]any{"category_id": nil}); err != nil {
			return h.fail(title, "unlink transactions", err)
		}
	}

	if _, err := h.data.FixedExpenses.UpdateWhere(ctx, store.Eq{"category_id": id}, map[string]any{"category_id": nil}); err != nil {
		return h.fail(title, "unlink fixed expenses", err)
	}

	if err := h.data.Categories.Delete(ctx, id); err != nil {
		return h.fail(title, "delete category", err)
	}

	h.succeed(ctx, "Categoria excluída", category.Name+" foi excluída.")
	return nil
}
