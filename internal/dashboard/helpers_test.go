package dashboard_test

import (
	"github.com/fintrack/backend/internal/models"
	"github.com/fintrack/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func transaction(date string, amount int64, t models.TransactionType, category *uuid.UUID) models.Transaction {
	return models.Transaction{
		Description: date,
		Amount:      decimal.NewFromInt(amount),
		Date:        types.MustParseDate(date),
		Type:        t,
		CategoryID:  category,
		AccountID:   uuid.New(),
	}
}

func account(name string, t models.AccountType, balance string) models.Account {
	a := models.Account{Name: name, Type: t, Balance: decimal.RequireFromString(balance)}
	a.ID = uuid.New()
	return a
}
