package models

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// swagger:enum AccountType
type AccountType string

const (
	AccountWallet     AccountType = "wallet"
	AccountChecking   AccountType = "checking"
	AccountSavings    AccountType = "savings"
	AccountInvestment AccountType = "investment"
	AccountCreditCard AccountType = "credit_card"
	AccountLoan       AccountType = "loan"
)

// AccountTypes lists every account type.
var AccountTypes = []AccountType{
	AccountWallet,
	AccountChecking,
	AccountSavings,
	AccountInvestment,
	AccountCreditCard,
	AccountLoan,
}

func (t AccountType) Valid() bool {
	return slices.Contains(AccountTypes, t)
}

// DefaultCurrency is used for accounts created without a currency.
const DefaultCurrency = "BRL"

// Account is a place money is kept in or owed to: a wallet, a bank
// account, a credit card.
//
// For credit cards, Balance is not maintained. Their exposure is tracked
// through their CreditInvoices.
type Account struct {
	DefaultModel
	Name        string              `json:"name" example:"Nubank"`
	Type        AccountType         `json:"type" example:"checking"`
	Balance     decimal.Decimal     `json:"balance" gorm:"type:DECIMAL(20,8)" example:"1520.35"`
	CreditLimit decimal.NullDecimal `json:"creditLimit" gorm:"type:DECIMAL(20,8)" swaggertype:"string" example:"5000"`
	DueDay      *int                `json:"dueDay" example:"10"`
	Currency    string              `json:"currency" example:"BRL"`
}

// IsCreditCard reports whether the account is a credit card.
func (a Account) IsCreditCard() bool {
	return a.Type == AccountCreditCard
}

// BeforeSave trims the name, defaults the currency and verifies the type
// and due day.
func (a *Account) BeforeSave(_ *gorm.DB) error {
	a.Name = strings.TrimSpace(a.Name)
	a.Currency = strings.ToUpper(strings.TrimSpace(a.Currency))

	if a.Currency == "" {
		a.Currency = DefaultCurrency
	}

	if a.Name == "" {
		return ErrNameEmpty
	}

	if !a.Type.Valid() {
		return ErrInvalidAccountType
	}

	if a.DueDay != nil && (*a.DueDay < 1 || *a.DueDay > 31) {
		return ErrInvalidDueDay
	}

	return nil
}
