package models

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/slices"
)

// Theme is the color scheme of the user interface.
//
// swagger:enum Theme
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

var Themes = []Theme{
	ThemeLight,
	ThemeDark,
}

func (t Theme) Valid() bool {
	return slices.Contains(Themes, t)
}

// Preference is a single key value pair of client preferences for a user.
type Preference struct {
	UserID    uuid.UUID `gorm:"primaryKey"`
	Key       string    `gorm:"primaryKey"`
	Value     string
	UpdatedAt time.Time
}
