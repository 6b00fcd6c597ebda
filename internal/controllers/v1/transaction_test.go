package v1_test

import (
	"net/http"

	"github.com/fintrack/backend/internal/models"
	"github.com/fintrack/backend/test"
)

func (suite *TestSuiteStandard) TestTransactionBooksOnAccount() {
	account := suite.createAccount("Conta corrente", models.AccountChecking, "1000")

	created := suite.createTransaction(map[string]any{
		"description": "Salário",
		"amount":      "5200",
		"date":        "2024-03-05",
		"type":        "income",
		"accountId":   account.ID,
	})
	suite.Require().Len(created, 1)
	suite.assertDecimal("6200", suite.getAccount(account.ID.String()).Balance)

	r := suite.request(http.MethodDelete, "/v1/transactions/"+created[0].ID.String()+"?confirm=true", nil)
	test.AssertHTTPStatus(suite.T(), http.StatusNoContent, &r)
	suite.assertDecimal("1000", suite.getAccount(account.ID.String()).Balance)
}

func (suite *TestSuiteStandard) TestTransactionUpdate() {
	account := suite.createAccount("Conta corrente", models.AccountChecking, "1000")
	created := suite.createTransaction(map[string]any{
		"description": "Mercado",
		"amount":      "200",
		"date":        "2024-03-05",
		"type":        "expense",
		"accountId":   account.ID,
	})

	r := suite.request(http.MethodPatch, "/v1/transactions/"+created[0].ID.String(), map[string]any{"description": "Supermercado"})
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)

	updated := decode[models.Transaction](suite, &r)
	suite.Assert().Equal("Supermercado", updated.Description)
	suite.assertDecimal("200", updated.Amount)
	suite.Assert().Equal("2024-03-05", updated.Date.String())

	r = suite.request(http.MethodGet, "/v1/transactions/"+created[0].ID.String(), nil)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)
	suite.Assert().Equal("Supermercado", decode[models.Transaction](suite, &r).Description)
}

func (suite *TestSuiteStandard) TestTransactionFilters() {
	checking := suite.createAccount("Conta corrente", models.AccountChecking, "1000")
	wallet := suite.createAccount("Carteira", models.AccountWallet, "100")
	food := suite.createCategory("Alimentação", models.CategoryExpense)

	suite.createTransaction(map[string]any{"description": "UBER *TRIP", "amount": "25", "date": "2024-03-01", "type": "expense", "accountId": checking.ID})
	suite.createTransaction(map[string]any{"description": "Uber Eats", "amount": "40", "date": "2024-03-10", "type": "expense", "accountId": checking.ID, "categoryId": food.ID})
	suite.createTransaction(map[string]any{"description": "Padaria", "amount": "10", "date": "2024-03-12", "type": "expense", "accountId": wallet.ID, "categoryId": food.ID})
	suite.createTransaction(map[string]any{"description": "Salário", "amount": "5200", "date": "2024-02-28", "type": "income", "accountId": checking.ID})

	tests := []struct {
		name     string
		query    string
		expected []string
	}{
		{"All, newest first", "", []string{"Padaria", "Uber Eats", "UBER *TRIP", "Salário"}},
		{"Description pattern", "?description=uber*", []string{"Uber Eats", "UBER *TRIP"}},
		{"Pattern in the middle", "?description=*ada*", []string{"Padaria"}},
		{"Type", "?type=income", []string{"Salário"}},
		{"Account", "?account=" + wallet.ID.String(), []string{"Padaria"}},
		{"Category", "?category=" + food.ID.String(), []string{"Padaria", "Uber Eats"}},
		{"Without category", "?category=", []string{"UBER *TRIP", "Salário"}},
		{"Date range", "?from=2024-03-01&until=2024-03-10", []string{"Uber Eats", "UBER *TRIP"}},
		{"Combined", "?account=" + checking.ID.String() + "&type=expense&until=2024-03-05", []string{"UBER *TRIP"}},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			r := suite.request(http.MethodGet, "/v1/transactions"+tt.query, nil)
			test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)

			var descriptions []string
			for _, t := range decode[[]models.Transaction](suite, &r) {
				descriptions = append(descriptions, t.Description)
			}
			suite.Assert().Equal(tt.expected, descriptions)
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionFilterErrors() {
	for _, query := range []string{"?type=transfer", "?status=lost", "?account=17", "?from=yesterday", "?until=2024-13-01"} {
		r := suite.request(http.MethodGet, "/v1/transactions"+query, nil)
		test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &r)
	}
}

func (suite *TestSuiteStandard) TestTransactionTooManyInstallments() {
	account := suite.createAccount("Conta corrente", models.AccountChecking, "1000")

	r := suite.request(http.MethodPost, "/v1/transactions", map[string]any{
		"description":  "Notebook",
		"amount":       "4800",
		"date":         "2024-03-05",
		"type":         "expense",
		"accountId":    account.ID,
		"installments": 1000000,
	})
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &r)
	suite.Assert().Contains(suite.decodeError(&r).Error, "installments must not be more than 48")

	r = suite.request(http.MethodGet, "/v1/transactions", nil)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)
	suite.Assert().Empty(decode[[]models.Transaction](suite, &r))
	suite.assertDecimal("1000", suite.getAccount(account.ID.String()).Balance)
}

func (suite *TestSuiteStandard) TestTransactionUnknownAccount() {
	r := suite.request(http.MethodPost, "/v1/transactions", map[string]any{
		"description": "Mercado",
		"amount":      "200",
		"date":        "2024-03-05",
		"type":        "expense",
		"accountId":   "fd81dc45-a3a2-468e-a6fa-b2618f30aa45",
	})
	test.AssertHTTPStatus(suite.T(), http.StatusNotFound, &r)
}
