package models

// TypeDisplay is what the front end needs to render a type discriminant.
type TypeDisplay struct {
	Label string `json:"label" example:"Conta corrente"`
	Icon  string `json:"icon" example:"landmark"`
}

var accountTypeDisplay = map[AccountType]TypeDisplay{
	AccountWallet:     {"Carteira", "wallet"},
	AccountChecking:   {"Conta corrente", "landmark"},
	AccountSavings:    {"Poupança", "piggy-bank"},
	AccountInvestment: {"Investimento", "trending-up"},
	AccountCreditCard: {"Cartão de crédito", "credit-card"},
	AccountLoan:       {"Empréstimo", "hand-coins"},
}

var categoryTypeDisplay = map[CategoryType]TypeDisplay{
	CategoryExpense:  {"Despesa", "arrow-down"},
	CategoryIncome:   {"Receita", "arrow-up"},
	CategoryTransfer: {"Transferência", "arrow-left-right"},
}

// Display returns the label and icon for the account type. Every type in
// AccountTypes has an entry, this is verified by the tests.
func (t AccountType) Display() TypeDisplay {
	return accountTypeDisplay[t]
}

// Display returns the label and icon for the category type.
func (t CategoryType) Display() TypeDisplay {
	return categoryTypeDisplay[t]
}
