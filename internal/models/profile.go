package models

import (
	"strings"

	"gorm.io/gorm"
)

// Profile holds the display data of a user. Its ID is the ID of the user.
type Profile struct {
	DefaultModel
	DisplayName string `json:"displayName" example:"Maria Silva"`
}

func (p *Profile) BeforeSave(_ *gorm.DB) error {
	p.DisplayName = strings.TrimSpace(p.DisplayName)

	// The profile is always the user's own
	if p.ID != p.UserID {
		p.ID = p.UserID
	}

	return nil
}
