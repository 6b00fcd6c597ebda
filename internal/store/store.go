// Package store is the data access layer. Every resource it hands out is
// scoped to a single user, rows of other users can neither be read nor
// written through it.
package store

import (
	"context"
	"errors"

	"github.com/fintrack/backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrEmptyFilter = errors.New("a filter is required for bulk operations")

// Eq is a filter of columns that must equal the given values. A nil value
// matches NULL, a slice matches any of its elements.
type Eq map[string]any

// Resource is the data access interface for one table.
type Resource[R any] interface {
	// List returns all rows of the user.
	List(ctx context.Context) ([]R, error)

	// ListWhere returns the rows of the user matching the filter.
	ListWhere(ctx context.Context, filter Eq) ([]R, error)

	// Get returns a single row.
	Get(ctx context.Context, id uuid.UUID) (R, error)

	// Insert creates a row and returns it with its ID and timestamps set.
	Insert(ctx context.Context, row R) (R, error)

	// InsertMany creates all rows in one database transaction. Either all
	// rows are created or none.
	InsertMany(ctx context.Context, rows []R) ([]R, error)

	// Update loads a row, applies patch to it and writes it back.
	Update(ctx context.Context, id uuid.UUID, patch func(*R)) (R, error)

	// UpdateWhere sets columns on all rows matching the filter and returns
	// the number of updated rows. Model hooks are not run.
	UpdateWhere(ctx context.Context, filter Eq, values map[string]any) (int64, error)

	// Delete deletes a single row.
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteWhere deletes all rows matching the filter and returns the
	// number of deleted rows.
	DeleteWhere(ctx context.Context, filter Eq) (int64, error)
}

// DataAccess bundles the resources of one user.
type DataAccess struct {
	UserID               uuid.UUID
	Accounts             Resource[models.Account]
	Categories           Resource[models.Category]
	Transactions         Resource[models.Transaction]
	CreditInvoices       Resource[models.CreditInvoice]
	Budgets              Resource[models.Budget]
	Rules                Resource[models.Rule]
	FixedExpenses        Resource[models.FixedExpense]
	MonthlyFixedExpenses Resource[models.MonthlyFixedExpense]
	Profiles             Resource[models.Profile]
}

// Store hands out user scoped DataAccess.
type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) Store {
	return Store{db: db}
}

// DB returns the underlying database handle.
func (s Store) DB() *gorm.DB {
	return s.db
}

// For returns the DataAccess for the user with the given ID.
func (s Store) For(userID uuid.UUID) DataAccess {
	return DataAccess{
		UserID:               userID,
		Accounts:             newTable[models.Account](s.db, userID, "created_at ASC"),
		Categories:           newTable[models.Category](s.db, userID, "name ASC, created_at ASC"),
		Transactions:         newTable[models.Transaction](s.db, userID, "date DESC, created_at DESC"),
		CreditInvoices:       newTable[models.CreditInvoice](s.db, userID, "due_date ASC, created_at ASC"),
		Budgets:              newTable[models.Budget](s.db, userID, "created_at ASC"),
		Rules:                newTable[models.Rule](s.db, userID, "created_at ASC"),
		FixedExpenses:        newTable[models.FixedExpense](s.db, userID, "due_day ASC, created_at ASC"),
		MonthlyFixedExpenses: newTable[models.MonthlyFixedExpense](s.db, userID, "due_date ASC, created_at ASC"),
		Profiles:             newTable[models.Profile](s.db, userID, "created_at ASC"),
	}
}

// owned is implemented by every model embedding models.DefaultModel.
type owned[R any] interface {
	*R
	SetOwner(uuid.UUID)
}

// table implements Resource on top of gorm.
type table[R any, P owned[R]] struct {
	db    *gorm.DB
	user  uuid.UUID
	order string
}

func newTable[R any, P owned[R]](db *gorm.DB, user uuid.UUID, order string) *table[R, P] {
	return &table[R, P]{db: db, user: user, order: order}
}

// scoped returns a session that only sees rows of the user.
func (t *table[R, P]) scoped(ctx context.Context) *gorm.DB {
	return t.db.WithContext(ctx).Model(new(R)).Where("user_id = ?", t.user)
}

func (t *table[R, P]) List(ctx context.Context) ([]R, error) {
	return t.ListWhere(ctx, nil)
}

func (t *table[R, P]) ListWhere(ctx context.Context, filter Eq) ([]R, error) {
	query := t.scoped(ctx)
	if len(filter) > 0 {
		query = query.Where(map[string]any(filter))
	}

	rows := []R{}
	err := query.Order(t.order).Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (t *table[R, P]) Get(ctx context.Context, id uuid.UUID) (R, error) {
	var row R
	err := t.scoped(ctx).Where("id = ?", id).First(&row).Error
	return row, err
}

func (t *table[R, P]) Insert(ctx context.Context, row R) (R, error) {
	P(&row).SetOwner(t.user)

	err := t.db.WithContext(ctx).Create(&row).Error
	return row, err
}

func (t *table[R, P]) InsertMany(ctx context.Context, rows []R) ([]R, error) {
	if len(rows) == 0 {
		return rows, nil
	}

	for i := range rows {
		P(&rows[i]).SetOwner(t.user)
	}

	err := t.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&rows).Error
	})
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (t *table[R, P]) Update(ctx context.Context, id uuid.UUID, patch func(*R)) (R, error) {
	row, err := t.Get(ctx, id)
	if err != nil {
		return row, err
	}

	patch(&row)

	// The patch must neither move the row to another user nor change its ID
	P(&row).SetOwner(t.user)

	tx := t.db.WithContext(ctx).Where("user_id = ? AND id = ?", t.user, id).Select("*").Updates(&row)
	if tx.Error != nil {
		return row, tx.Error
	}

	if tx.RowsAffected == 0 {
		return row, t.notFound()
	}

	return row, nil
}

func (t *table[R, P]) UpdateWhere(ctx context.Context, filter Eq, values map[string]any) (int64, error) {
	if len(filter) == 0 {
		return 0, ErrEmptyFilter
	}

	tx := t.scoped(ctx).Session(&gorm.Session{SkipHooks: true}).Where(map[string]any(filter)).Updates(values)
	return tx.RowsAffected, tx.Error
}

func (t *table[R, P]) Delete(ctx context.Context, id uuid.UUID) error {
	tx := t.db.WithContext(ctx).Where("user_id = ? AND id = ?", t.user, id).Delete(new(R))
	if tx.Error != nil {
		return tx.Error
	}

	if tx.RowsAffected == 0 {
		return t.notFound()
	}

	return nil
}

func (t *table[R, P]) DeleteWhere(ctx context.Context, filter Eq) (int64, error) {
	if len(filter) == 0 {
		return 0, ErrEmptyFilter
	}

	tx := t.db.WithContext(ctx).Where("user_id = ?", t.user).Where(map[string]any(filter)).Delete(new(R))
	return tx.RowsAffected, tx.Error
}

// notFound returns the error the query callback returns for a missing row.
func (t *table[R, P]) notFound() error {
	stmt := &gorm.Statement{DB: t.db}
	if err := stmt.Parse(new(R)); err != nil {
		return models.ErrResourceNotFound
	}
	return models.NotFound(stmt.Schema.Table)
}
