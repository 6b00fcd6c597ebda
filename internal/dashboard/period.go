package dashboard

import (
	"errors"
	"fmt"
	"time"

	"github.com/fintrack/backend/internal/models"
	"github.com/fintrack/backend/internal/types"
	"golang.org/x/exp/slices"
)

var ErrUnknownPeriod = errors.New("unknown period")

// Period selects the date window of the dashboard.
//
// swagger:enum Period
type Period string

const (
	Today      Period = "today"
	Last7Days  Period = "last7days"
	Last30Days Period = "last30days"
	ThisMonth  Period = "thisMonth"
	ThisYear   Period = "thisYear"
)

var Periods = []Period{
	Today,
	Last7Days,
	Last30Days,
	ThisMonth,
	ThisYear,
}

// DefaultPeriod is used when no period is selected.
const DefaultPeriod = ThisMonth

func (p Period) Valid() bool {
	return slices.Contains(Periods, p)
}

// Window is a range of calendar days. Both From and Until are included.
type Window struct {
	From  types.Date `json:"from" swaggertype:"string" example:"2024-03-01"`
	Until types.Date `json:"until" swaggertype:"string" example:"2024-03-15"`
}

// Contains reports whether d lies within the window.
func (w Window) Contains(d types.Date) bool {
	return !d.Before(w.From) && !d.After(w.Until)
}

// Resolve returns the window of the period on the day of now. The day is
// determined in the location of now.
func Resolve(p Period, now time.Time) (Window, error) {
	today := types.DateOf(now)

	switch p {
	case Today:
		return Window{From: today, Until: today}, nil
	case Last7Days:
		return Window{From: today.AddDate(0, 0, -6), Until: today}, nil
	case Last30Days:
		return Window{From: today.AddDate(0, 0, -29), Until: today}, nil
	case ThisMonth:
		return Window{From: types.MonthOf(now).FirstDay(), Until: today}, nil
	case ThisYear:
		return Window{From: types.NewDate(today.Year(), time.January, 1), Until: today}, nil
	}

	return Window{}, fmt.Errorf("%w: %q, use one of %v", ErrUnknownPeriod, p, Periods)
}

// FilterTransactions returns the transactions dated within the window, in
// their original order.
func FilterTransactions(w Window, transactions []models.Transaction) []models.Transaction {
	filtered := make([]models.Transaction, 0, len(transactions))
	for _, t := range transactions {
		if w.Contains(t.Date) {
			filtered = append(filtered, t)
		}
	}
	return filtered
}
