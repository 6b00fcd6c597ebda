package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DefaultModel is the base model for all resources owned by a user.
type DefaultModel struct {
	ID     uuid.UUID `json:"id" example:"65392deb-5e92-4268-b114-297faad6cdce"`                  // UUID for the resource
	UserID uuid.UUID `json:"userId" gorm:"index" example:"0f12e0c5-03a6-4b4c-9f3c-06c1f2b3d7a1"` // Owner of the resource
	Timestamps
}

// Timestamps only contains the timestamps that gorm sets automatically.
type Timestamps struct {
	CreatedAt time.Time `json:"createdAt" example:"2022-04-02T19:28:44.491514Z"` // Time the resource was created
	UpdatedAt time.Time `json:"updatedAt" example:"2022-04-17T20:14:01.048145Z"` // Last time the resource was updated
}

// AfterFind updates the timestamps to use UTC as
// timezone, not +0000. Yes, this is different.
//
// We already store them in UTC, but somehow reading
// them from the database returns them as +0000.
func (m *DefaultModel) AfterFind(_ *gorm.DB) (err error) {
	m.CreatedAt = m.CreatedAt.In(time.UTC)
	m.UpdatedAt = m.UpdatedAt.In(time.UTC)
	return nil
}

// BeforeCreate generates a UUID for the resource unless one is preset.
// Profiles are the only resources that bring their own ID.
func (m *DefaultModel) BeforeCreate(_ *gorm.DB) (err error) {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// SetOwner sets the user owning the resource.
func (m *DefaultModel) SetOwner(id uuid.UUID) {
	m.UserID = id
}

// Owner returns the ID of the user owning the resource.
func (m DefaultModel) Owner() uuid.UUID {
	return m.UserID
}

// Registry lists every model with its own table, ordered so that
// resources are migrated after the ones they reference.
var Registry = []any{
	User{},
	Profile{},
	Preference{},
	Account{},
	Category{},
	Transaction{},
	CreditInvoice{},
	Budget{},
	Rule{},
	FixedExpense{},
	MonthlyFixedExpense{},
}
