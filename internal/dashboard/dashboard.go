// Package dashboard derives the dashboard from a snapshot of a user's data.
//
// Everything in here is a pure function of its input. Nothing is cached,
// the dashboard is built again from the latest snapshot on every request.
package dashboard

import (
	"time"

	"github.com/fintrack/backend/internal/models"
	"github.com/fintrack/backend/internal/snapshot"
	"github.com/fintrack/backend/internal/types"
	"golang.org/x/text/language"
)

// Locale is the language amounts are formatted in.
var Locale = language.BrazilianPortuguese

type Dashboard struct {
	Period        Period         `json:"period" example:"thisMonth"`
	Window        Window         `json:"window"`
	DisplayName   string         `json:"displayName" example:"Maria"`
	KPIs          KPIs           `json:"kpis"`
	Formatted     FormattedKPIs  `json:"formatted"`
	Trend         []MonthSummary `json:"trend"`
	Budgets       []BudgetUsage  `json:"budgets"`
	UpcomingBills []Bill         `json:"upcomingBills"`
	Overdue       OverdueSummary `json:"overdue"`
	FetchedAt     time.Time      `json:"fetchedAt" example:"2024-03-15T12:00:00Z"`
}

// Build computes the dashboard for the period on the day of now.
func Build(s snapshot.Snapshot, p Period, now time.Time) (Dashboard, error) {
	window, err := Resolve(p, now)
	if err != nil {
		return Dashboard{}, err
	}

	filtered := FilterTransactions(window, s.Transactions)
	kpis := ComputeKPIs(filtered, s.Accounts)
	today := types.DateOf(now)

	d := Dashboard{
		Period:        p,
		Window:        window,
		KPIs:          kpis,
		Formatted:     kpis.Formatted(Locale, models.DefaultCurrency),
		Trend:         SixMonthTrend(s.Transactions, now),
		Budgets:       BudgetConsumption(s.Budgets, s.Categories, filtered),
		UpcomingBills: UpcomingBills(s.CreditInvoices, s.Accounts),
		Overdue:       SummarizeOverdue(OverdueFixedExpenses(s.MonthlyFixedExpenses, today), OverdueInvoices(s.CreditInvoices, today)),
		FetchedAt:     s.FetchedAt,
	}

	if s.Profile != nil {
		d.DisplayName = s.Profile.DisplayName
	}

	return d, nil
}
