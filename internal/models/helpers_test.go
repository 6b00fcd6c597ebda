package models_test

import (
	"testing"

	"github.com/fintrack/backend/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func decimalFromString(t *testing.T, s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	require.Nil(t, err)
	return d
}

func mustDate(s string) types.Date {
	return types.MustParseDate(s)
}
