// Package preferences stores client preferences per user.
package preferences

import (
	"context"
	"errors"

	"github.com/fintrack/backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrInvalidTheme = errors.New("the theme must be light or dark")

const themeKey = "theme"

// DefaultTheme is used until a user picks a theme.
const DefaultTheme = models.ThemeLight

type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) Store {
	return Store{db: db}
}

// Theme returns the theme of the user.
func (s Store) Theme(ctx context.Context, user uuid.UUID) (models.Theme, error) {
	var preference models.Preference
	err := s.db.WithContext(ctx).Where(&models.Preference{UserID: user, Key: themeKey}).First(&preference).Error

	if errors.Is(err, models.ErrResourceNotFound) {
		return DefaultTheme, nil
	} else if err != nil {
		return "", err
	}

	theme := models.Theme(preference.Value)
	if !theme.Valid() {
		return DefaultTheme, nil
	}
	return theme, nil
}

// SetTheme saves the theme of the user.
func (s Store) SetTheme(ctx context.Context, user uuid.UUID, theme models.Theme) error {
	if !theme.Valid() {
		return ErrInvalidTheme
	}

	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&models.Preference{UserID: user, Key: themeKey, Value: string(theme)}).Error
}
