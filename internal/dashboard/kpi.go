package dashboard

import (
	"strings"

	"github.com/fintrack/backend/internal/models"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// KPIs are the headline numbers of the dashboard.
type KPIs struct {
	Receitas      decimal.Decimal `json:"receitas" example:"5200"`         // Income in the period
	Despesas      decimal.Decimal `json:"despesas" example:"3150.75"`      // Expenses in the period
	Movimentacoes decimal.Decimal `json:"movimentacoes" example:"2049.25"` // Receitas minus Despesas
	BalancoTotal  decimal.Decimal `json:"balancoTotal" example:"12840.10"` // Sum of all balances except credit cards
}

// ComputeKPIs sums up the period filtered transactions and the balances of
// all accounts that are not credit cards. Credit card exposure lives in
// their invoices.
func ComputeKPIs(filtered []models.Transaction, accounts []models.Account) KPIs {
	k := KPIs{
		Receitas:     decimal.Zero,
		Despesas:     decimal.Zero,
		BalancoTotal: decimal.Zero,
	}

	for _, t := range filtered {
		switch t.Type {
		case models.TransactionIncome:
			k.Receitas = k.Receitas.Add(t.Amount)
		case models.TransactionExpense:
			k.Despesas = k.Despesas.Add(t.Amount)
		}
	}
	k.Movimentacoes = k.Receitas.Sub(k.Despesas)

	for _, a := range accounts {
		if !a.IsCreditCard() {
			k.BalancoTotal = k.BalancoTotal.Add(a.Balance)
		}
	}

	return k
}

// FormattedKPIs are the KPIs formatted as currency for display.
type FormattedKPIs struct {
	Receitas      string `json:"receitas" example:"R$ 5.200,00"`
	Despesas      string `json:"despesas" example:"R$ 3.150,75"`
	Movimentacoes string `json:"movimentacoes" example:"R$ 2.049,25"`
	BalancoTotal  string `json:"balancoTotal" example:"R$ 12.840,10"`
}

// Formatted formats all KPIs as amounts of the currency with the ISO code
// in the conventions of the language. Unknown currency codes fall back to
// DefaultCurrency.
func (k KPIs) Formatted(tag language.Tag, code string) FormattedKPIs {
	return FormattedKPIs{
		Receitas:      FormatMoney(tag, code, k.Receitas),
		Despesas:      FormatMoney(tag, code, k.Despesas),
		Movimentacoes: FormatMoney(tag, code, k.Movimentacoes),
		BalancoTotal:  FormatMoney(tag, code, k.BalancoTotal),
	}
}

// FormatMoney formats an amount, e.g. "R$ 1.234,56" for BRL in pt-BR and
// "-R$ 1.234,56" for negative amounts. The amount is not converted to a
// float, all digits are kept.
func FormatMoney(tag language.Tag, code string, amount decimal.Decimal) string {
	unit, err := currency.ParseISO(code)
	if err != nil {
		unit = currency.MustParseISO(models.DefaultCurrency)
	}

	scale, _ := currency.Standard.Rounding(unit)
	p := message.NewPrinter(tag)

	amount = amount.Round(int32(scale))
	sign := ""
	if amount.IsNegative() {
		sign = "-"
		amount = amount.Neg()
	}

	formatted := p.Sprintf("%v", number.Decimal(amount.IntPart()))
	if scale > 0 {
		// "0.25" for an amount of 1234.25
		fraction := amount.Sub(amount.Truncate(0)).StringFixed(int32(scale))
		formatted += decimalSeparator(p) + strings.TrimPrefix(fraction, "0.")
	}

	return sign + p.Sprintf("%v", currency.Symbol(unit)) + " " + formatted
}

// decimalSeparator returns the decimal separator of the printer's language.
func decimalSeparator(p *message.Printer) string {
	return strings.Trim(p.Sprintf("%v", number.Decimal(0.5, number.MinFractionDigits(1))), "05")
}
