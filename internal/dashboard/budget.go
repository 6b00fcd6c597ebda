package dashboard

import (
	"github.com/fintrack/backend/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// BudgetUsage is how much of a budget the expenses of the period consume.
type BudgetUsage struct {
	BudgetID     uuid.UUID       `json:"budgetId" example:"9a1b0c3e-0f2d-4e5a-8b7c-6d5e4f3a2b1c"`
	CategoryID   uuid.UUID       `json:"categoryId" example:"2649c965-7999-4873-ae16-89d5d5fa972e"`
	CategoryName string          `json:"categoryName" example:"Mercado"`
	Color        string          `json:"color" example:"#22c55e"`
	Spent        decimal.Decimal `json:"spent" example:"620"`
	Total        decimal.Decimal `json:"total" example:"500"`
	Ratio        decimal.Decimal `json:"ratio" example:"1.24"`     // Spent divided by Total, not capped
	Percentage   decimal.Decimal `json:"percentage" example:"100"` // Ratio in percent, clamped to 0 to 100 for display
	OverBudget   bool            `json:"overBudget" example:"true"`
}

// BudgetConsumption computes the usage of every budget from the expenses
// in the period filtered transactions. Budgets keep their order.
func BudgetConsumption(budgets []models.Budget, categories []models.Category, filtered []models.Transaction) []BudgetUsage {
	byID := make(map[uuid.UUID]models.Category, len(categories))
	for _, c := range categories {
		byID[c.ID] = c
	}

	usages := make([]BudgetUsage, 0, len(budgets))
	for _, b := range budgets {
		spent := decimal.Zero
		for _, t := range filtered {
			if t.Type == models.TransactionExpense && t.CategoryID != nil && *t.CategoryID == b.CategoryID {
				spent = spent.Add(t.Amount)
			}
		}

		ratio := decimal.Zero
		if b.Amount.IsPositive() {
			ratio = spent.Div(b.Amount)
		}

		percentage := ratio.Mul(hundred).Round(2)
		if percentage.GreaterThan(hundred) {
			percentage = hundred
		}
		if percentage.IsNegative() {
			percentage = decimal.Zero
		}

		category := byID[b.CategoryID]
		usages = append(usages, BudgetUsage{
			BudgetID:     b.ID,
			CategoryID:   b.CategoryID,
			CategoryName: category.Name,
			Color:        category.Color,
			Spent:        spent,
			Total:        b.Amount,
			Ratio:        ratio,
			Percentage:   percentage,
			OverBudget:   spent.GreaterThan(b.Amount),
		})
	}

	return usages
}
