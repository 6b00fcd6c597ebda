package models

import (
	"strings"

	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// swagger:enum CategoryType
type CategoryType string

const (
	CategoryExpense  CategoryType = "expense"
	CategoryIncome   CategoryType = "income"
	CategoryTransfer CategoryType = "transfer"
)

var CategoryTypes = []CategoryType{
	CategoryExpense,
	CategoryIncome,
	CategoryTransfer,
}

func (t CategoryType) Valid() bool {
	return slices.Contains(CategoryTypes, t)
}

// Category groups transactions. Only transactions of the same type may
// reference a category.
type Category struct {
	DefaultModel
	Name  string       `json:"name" example:"Mercado"`
	Type  CategoryType `json:"type" example:"expense"`
	Color string       `json:"color" example:"#22c55e"`
	Icon  string       `json:"icon" example:"shopping-cart"`
}

// Accepts reports whether a transaction of type t may reference the category.
func (c Category) Accepts(t TransactionType) bool {
	return string(c.Type) == string(t)
}

func (c *Category) BeforeSave(_ *gorm.DB) error {
	c.Name = strings.TrimSpace(c.Name)
	c.Color = strings.TrimSpace(c.Color)
	c.Icon = strings.TrimSpace(c.Icon)

	if c.Name == "" {
		return ErrNameEmpty
	}

	if !c.Type.Valid() {
		return ErrInvalidCategoryType
	}

	return nil
}
