package models

import (
	"strings"

	"gorm.io/gorm"
)

// Rule is a categorization rule. The condition is free text and only
// displayed, it is not evaluated against transactions.
type Rule struct {
	DefaultModel
	Name      string `json:"name" example:"Uber"`
	Condition string `json:"condition" example:"descrição contém UBER"`
	Enabled   bool   `json:"enabled" example:"true"`
}

func (r *Rule) BeforeSave(_ *gorm.DB) error {
	r.Name = strings.TrimSpace(r.Name)
	r.Condition = strings.TrimSpace(r.Condition)

	if r.Name == "" {
		return ErrNameEmpty
	}

	return nil
}
