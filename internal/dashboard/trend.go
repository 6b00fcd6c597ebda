package dashboard

import (
	"time"

	"github.com/fintrack/backend/internal/models"
	"github.com/fintrack/backend/internal/types"
	"github.com/shopspring/decimal"
)

// TrendMonths is the number of months in the trend.
const TrendMonths = 6

// monthAbbreviations are the pt-BR abbreviations of the months.
var monthAbbreviations = [12]string{"jan", "fev", "mar", "abr", "mai", "jun", "jul", "ago", "set", "out", "nov", "dez"}

// MonthLabel returns the pt-BR abbreviation of the month.
func MonthLabel(m time.Month) string {
	return monthAbbreviations[m-1]
}

// MonthSummary is income and expenses of one calendar month.
type MonthSummary struct {
	Month   types.Month     `json:"month" swaggertype:"string" example:"2024-03"`
	Label   string          `json:"label" example:"mar"`
	Income  decimal.Decimal `json:"income" example:"5200"`
	Expense decimal.Decimal `json:"expense" example:"3150.75"`
}

// SixMonthTrend sums income and expenses for the current month of now and
// the five months before it, oldest first.
//
// It is computed over all transactions, the selected period has no
// influence on it.
func SixMonthTrend(transactions []models.Transaction, now time.Time) []MonthSummary {
	current := types.MonthOf(now)
	trend := make([]MonthSummary, 0, TrendMonths)

	for i := TrendMonths - 1; i >= 0; i-- {
		month := current.AddDate(0, -i)
		summary := MonthSummary{
			Month:   month,
			Label:   MonthLabel(month.Month()),
			Income:  decimal.Zero,
			Expense: decimal.Zero,
		}

		for _, t := range transactions {
			if !month.Contains(t.Date) {
				continue
			}

			switch t.Type {
			case models.TransactionIncome:
				summary.Income = summary.Income.Add(t.Amount)
			case models.TransactionExpense:
				summary.Expense = summary.Expense.Add(t.Amount)
			}
		}

		trend = append(trend, summary)
	}

	return trend
}
