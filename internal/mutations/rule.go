package mutations

import (
	"context"
	"strings"

	"github.com/fintrack/backend/internal/models"
	"github.com/google/uuid"
)

// RuleInput holds the fields of a new rule. The condition is stored as
// entered, it is never evaluated.
type RuleInput struct {
	Name      string `json:"name" example:"Uber"`
	Condition string `json:"condition" example:"descrição contém UBER"`
	Enabled   bool   `json:"enabled" example:"true"`
}

func (h *Handler) CreateRule(ctx context.Context, in RuleInput) (models.Rule, error) {
	if strings.TrimSpace(in.Name) == "" {
		return models.Rule{}, invalid("name", "is required")
	}

	rule, err := h.data.Rules.Insert(ctx, models.Rule{Name: in.Name, Condition: in.Condition, Enabled: in.Enabled})
	if err != nil {
		return models.Rule{}, h.fail("Erro ao criar regra", "insert rule", err)
	}

	h.succeed(ctx, "Regra criada", rule.Name+" foi criada.")
	return rule, nil
}

// ToggleRule enables a disabled rule and disables an enabled one.
func (h *Handler) ToggleRule(ctx context.Context, id uuid.UUID) (models.Rule, error) {
	rule, err := h.data.Rules.Update(ctx, id, func(r *models.Rule) {
		r.Enabled = !r.Enabled
	})
	if err != nil {
		return models.Rule{}, h.fail("Erro ao alterar regra", "toggle rule", err)
	}

	state := "desativada"
	if rule.Enabled {
		state = "ativada"
	}

	h.succeed(ctx, "Regra alterada", rule.Name+" foi "+state+".")
	return rule, nil
}

func (h *Handler) DeleteRule(ctx context.Context, id uuid.UUID) error {
	if err := h.data.Rules.Delete(ctx, id); err != nil {
		return h.fail("Erro ao excluir regra", "delete rule", err)
	}

	h.succeed(ctx, "Regra excluída", "A regra foi excluída.")
	return nil
}
