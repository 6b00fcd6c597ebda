package v1_test

import (
	"net/http"

	"github.com/fintrack/backend/internal/models"
	"github.com/fintrack/backend/test"
)

func (suite *TestSuiteStandard) TestCategoryDeleteUnlinksTransactions() {
	account := suite.createAccount("Carteira", models.AccountWallet, "100")
	market := suite.createCategory("Mercado", models.CategoryExpense)
	created := suite.createTransaction(map[string]any{
		"description": "Feira",
		"amount":      "30",
		"date":        "2024-03-10",
		"type":        "expense",
		"accountId":   account.ID,
		"categoryId":  market.ID,
	})

	r := suite.request(http.MethodDelete, "/v1/categories/"+market.ID.String(), nil)
	test.AssertHTTPStatus(suite.T(), http.StatusConflict, &r)
	suite.Assert().Equal([]string{"1 transação ficará sem categoria"}, suite.decodeError(&r).Confirmation.Cascade)

	r = suite.request(http.MethodDelete, "/v1/categories/"+market.ID.String()+"?confirm=true", nil)
	test.AssertHTTPStatus(suite.T(), http.StatusNoContent, &r)

	r = suite.request(http.MethodGet, "/v1/transactions/"+created[0].ID.String(), nil)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)
	suite.Assert().Nil(decode[models.Transaction](suite, &r).CategoryID)
}

func (suite *TestSuiteStandard) TestBudgets() {
	market := suite.createCategory("Mercado", models.CategoryExpense)

	r := suite.request(http.MethodPost, "/v1/budgets", map[string]any{"categoryId": market.ID, "amount": "500"})
	test.AssertHTTPStatus(suite.T(), http.StatusCreated, &r)
	budget := decode[models.Budget](suite, &r)

	r = suite.request(http.MethodPatch, "/v1/budgets/"+budget.ID.String(), map[string]any{"amount": "650"})
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)
	suite.assertDecimal("650", decode[models.Budget](suite, &r).Amount)

	r = suite.request(http.MethodGet, "/v1/budgets", nil)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)
	suite.Assert().Len(decode[[]models.Budget](suite, &r), 1)

	r = suite.request(http.MethodDelete, "/v1/budgets/"+budget.ID.String(), nil)
	test.AssertHTTPStatus(suite.T(), http.StatusNoContent, &r)
}

func (suite *TestSuiteStandard) TestRules() {
	r := suite.request(http.MethodPost, "/v1/rules", map[string]any{"name": "Uber", "condition": "descrição contém UBER", "enabled": true})
	test.AssertHTTPStatus(suite.T(), http.StatusCreated, &r)
	rule := decode[models.Rule](suite, &r)

	r = suite.request(http.MethodPost, "/v1/rules/"+rule.ID.String()+"/toggle", nil)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)
	suite.Assert().False(decode[models.Rule](suite, &r).Enabled)

	r = suite.request(http.MethodDelete, "/v1/rules/"+rule.ID.String(), nil)
	test.AssertHTTPStatus(suite.T(), http.StatusNoContent, &r)

	r = suite.request(http.MethodGet, "/v1/rules", nil)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)
	suite.Assert().Len(decode[[]models.Rule](suite, &r), 0)
}

func (suite *TestSuiteStandard) TestProfile() {
	r := suite.request(http.MethodGet, "/v1/profile", nil)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)
	suite.Assert().Equal("Maria", decode[models.Profile](suite, &r).DisplayName)

	r = suite.request(http.MethodPatch, "/v1/profile", map[string]any{"displayName": "Maria Silva"})
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)
	suite.Assert().Equal("Maria Silva", decode[models.Profile](suite, &r).DisplayName)

	r = suite.request(http.MethodPatch, "/v1/profile", map[string]any{"displayName": "  "})
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &r)
}

func (suite *TestSuiteStandard) TestThemePreference() {
	r := suite.request(http.MethodGet, "/v1/preferences/theme", nil)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)
	suite.Assert().Equal(models.ThemeLight, decode[struct {
		Theme models.Theme `json:"theme"`
	}](suite, &r).Theme)

	r = suite.request(http.MethodPut, "/v1/preferences/theme", map[string]any{"theme": "dark"})
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)

	r = suite.request(http.MethodGet, "/v1/preferences/theme", nil)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)
	suite.Assert().Equal(models.ThemeDark, decode[struct {
		Theme models.Theme `json:"theme"`
	}](suite, &r).Theme)

	r = suite.request(http.MethodPut, "/v1/preferences/theme", map[string]any{"theme": "solarized"})
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &r)
}

func (suite *TestSuiteStandard) TestOptions() {
	tests := []struct {
		path  string
		allow string
	}{
		{"/v1/accounts", "OPTIONS, GET, POST"},
		{"/v1/accounts/3b1ae6a3-b3a5-4e74-a530-6c0aa4a7f4b6", "OPTIONS, GET, PATCH, DELETE"},
		{"/v1/budgets/3b1ae6a3-b3a5-4e74-a530-6c0aa4a7f4b6", "OPTIONS, PATCH, DELETE"},
		{"/v1/profile", "OPTIONS, GET, PATCH"},
		{"/v1/preferences/theme", "OPTIONS, GET, PUT"},
		{"/v1/notifications", "OPTIONS, GET, DELETE"},
		{"/v1/fixed-expenses/generate", "OPTIONS, POST"},
		{"/v1/dashboard", "OPTIONS, GET"},
	}

	for _, tt := range tests {
		r := suite.request(http.MethodOptions, tt.path, nil)
		test.AssertHTTPStatus(suite.T(), http.StatusNoContent, &r)
		suite.Assert().Equal(tt.allow, r.Header().Get("allow"), tt.path)
	}
}
