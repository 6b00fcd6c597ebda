// Package snapshot loads every collection of a user at once. All derived
// data is computed from the latest snapshot, mutations never patch it.
package snapshot

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/fintrack/backend/internal/models"
	"github.com/fintrack/backend/internal/store"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"
)

// Snapshot is the state of all collections of a user at FetchedAt.
type Snapshot struct {
	FetchedAt            time.Time
	Profile              *models.Profile
	Accounts             []models.Account
	Categories           []models.Category
	Transactions         []models.Transaction
	CreditInvoices       []models.CreditInvoice
	Budgets              []models.Budget
	Rules                []models.Rule
	FixedExpenses        []models.FixedExpense
	MonthlyFixedExpenses []models.MonthlyFixedExpense
}

// Load fetches every collection, one after the other. The first failure
// aborts the load.
func Load(ctx context.Context, data store.DataAccess, now time.Time) (Snapshot, error) {
	s := Snapshot{FetchedAt: now}

	var err error
	steps := []struct {
		name string
		load func() error
	}{
		{"accounts", func() (err error) { s.Accounts, err = data.Accounts.List(ctx); return }},
		{"categories", func() (err error) { s.Categories, err = data.Categories.List(ctx); return }},
		{"transactions", func() (err error) { s.Transactions, err = data.Transactions.List(ctx); return }},
		{"credit invoices", func() (err error) { s.CreditInvoices, err = data.CreditInvoices.List(ctx); return }},
		{"budgets", func() (err error) { s.Budgets, err = data.Budgets.List(ctx); return }},
		{"rules", func() (err error) { s.Rules, err = data.Rules.List(ctx); return }},
		{"fixed expenses", func() (err error) { s.FixedExpenses, err = data.FixedExpenses.List(ctx); return }},
		{"monthly fixed expenses", func() (err error) { s.MonthlyFixedExpenses, err = data.MonthlyFixedExpenses.List(ctx); return }},
		{"profile", func() error {
			profiles, err := data.Profiles.List(ctx)
			if err == nil && len(profiles) > 0 {
				s.Profile = &profiles[0]
			}
			return err
		}},
	}

	for _, step := range steps {
		if err = step.load(); err != nil {
			return Snapshot{}, fmt.Errorf("loading %s: %w", step.name, err)
		}
	}

	return s, nil
}

// Refresher reloads the snapshot of one user.
type Refresher struct {
	data store.DataAccess
	now  func() time.Time

	// inFlight allows a single refresh at a time
	inFlight *semaphore.Weighted

	mu     sync.RWMutex
	latest *Snapshot
}

func NewRefresher(data store.DataAccess) *Refresher {
	return &Refresher{
		data:     data,
		now:      time.Now,
		inFlight: semaphore.NewWeighted(1),
	}
}

// Refresh reloads all collections and replaces the latest snapshot.
//
// If another refresh is running, the request is dropped and Refresh
// returns false without error. Requests are not queued.
func (r *Refresher) Refresh(ctx context.Context) (bool, error) {
	if !r.inFlight.TryAcquire(1) {
		log.Debug().Str("user", r.data.UserID.String()).Msg("refresh already running, dropping request")
		return false, nil
	}
	defer r.inFlight.Release(1)

	s, err := Load(ctx, r.data, r.now())
	if err != nil {
		return true, err
	}

	r.mu.Lock()
	r.latest = &s
	r.mu.Unlock()

	return true, nil
}

// Latest returns the last loaded snapshot. ok is false if no refresh has
// succeeded yet.
func (r *Refresher) Latest() (s Snapshot, ok bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.latest == nil {
		return Snapshot{}, false
	}
	return *r.latest, true
}

// Registry keeps one Refresher per user.
type Registry struct {
	store store.Store

	mu         sync.Mutex
	refreshers map[uuid.UUID]*Refresher
}

func NewRegistry(s store.Store) *Registry {
	return &Registry{
		store:      s,
		refreshers: make(map[uuid.UUID]*Refresher),
	}
}

// For returns the Refresher of the user, creating it on first use.
func (r *Registry) For(user uuid.UUID) *Refresher {
	r.mu.Lock()
	defer r.mu.Unlock()

	refresher, ok := r.refreshers[user]
	if !ok {
		refresher = NewRefresher(r.store.For(user))
		r.refreshers[user] = refresher
	}
	return refresher
}

// Forget drops the Refresher of a user, e.g. after signing out.
func (r *Registry) Forget(user uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.refreshers, user)
}
