package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Budget is a spending ceiling for a category.
type Budget struct {
	DefaultModel
	CategoryID uuid.UUID       `json:"categoryId" gorm:"index" example:"2649c965-7999-4873-ae16-89d5d5fa972e"`
	Amount     decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)" example:"500"`
}

func (b *Budget) BeforeSave(_ *gorm.DB) error {
	if b.CategoryID == uuid.Nil {
		return ErrCategoryEmpty
	}

	if !b.Amount.IsPositive() {
		return ErrAmountNotPositive
	}

	return nil
}
