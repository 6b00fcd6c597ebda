package v1_test

import (
	"net/http"
	"testing"

	"github.com/fintrack/backend/internal/models"
	"github.com/fintrack/backend/test"
)

func (suite *TestSuiteStandard) TestAccountsCRUD() {
	account := suite.createAccount("Carteira", models.AccountWallet, "150.50")
	suite.Assert().Equal("BRL", account.Currency)
	suite.assertDecimal("150.50", account.Balance)

	r := suite.request(http.MethodPatch, "/v1/accounts/"+account.ID.String(), map[string]any{"name": "Carteira de casa"})
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)
	updated := decode[models.Account](suite, &r)
	suite.Assert().Equal("Carteira de casa", updated.Name)
	suite.Assert().Equal(models.AccountWallet, updated.Type, "PATCH must keep fields missing in the body")
	suite.assertDecimal("150.50", updated.Balance)

	r = suite.request(http.MethodGet, "/v1/accounts", nil)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)
	suite.Assert().Len(decode[[]models.Account](suite, &r), 1)

	r = suite.request(http.MethodDelete, "/v1/accounts/"+account.ID.String()+"?confirm=true", nil)
	test.AssertHTTPStatus(suite.T(), http.StatusNoContent, &r)

	r = suite.request(http.MethodGet, "/v1/accounts/"+account.ID.String(), nil)
	test.AssertHTTPStatus(suite.T(), http.StatusNotFound, &r)
	suite.Assert().Equal("there is no account matching your query", suite.decodeError(&r).Error)
}

func (suite *TestSuiteStandard) TestAccountValidation() {
	tests := []struct {
		name string
		body any
	}{
		{"No name", map[string]any{"type": "wallet"}},
		{"Unknown type", map[string]any{"name": "Carteira", "type": "piggy_bank"}},
		{"Due day out of range", map[string]any{"name": "Nubank", "type": "credit_card", "dueDay": 32}},
		{"Broken JSON", `{ "name": "Nubank`},
		{"Empty body", ""},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := suite.request(http.MethodPost, "/v1/accounts", tt.body)
			test.AssertHTTPStatus(t, http.StatusBadRequest, &r)
		})
	}
}

func (suite *TestSuiteStandard) TestAccountDeleteNeedsConfirmation() {
	account := suite.createAccount("Carteira", models.AccountWallet, "100")
	suite.createTransaction(map[string]any{
		"description": "Padaria",
		"amount":      "12.50",
		"date":        "2024-03-10",
		"type":        "expense",
		"accountId":   account.ID,
	})

	r := suite.request(http.MethodDelete, "/v1/accounts/"+account.ID.String(), nil)
	test.AssertHTTPStatus(suite.T(), http.StatusConflict, &r)

	response := suite.decodeError(&r)
	suite.Require().NotNil(response.Confirmation)
	suite.Assert().Equal("Excluir a conta Carteira?", response.Confirmation.Message)
	suite.Assert().Equal([]string{"1 transação será excluída"}, response.Confirmation.Cascade)

	// Nothing was deleted
	suite.getAccount(account.ID.String())
	r = suite.request(http.MethodGet, "/v1/transactions", nil)
	suite.Assert().Len(decode[[]models.Transaction](suite, &r), 1)

	r = suite.request(http.MethodDelete, "/v1/accounts/"+account.ID.String()+"?confirm=true", nil)
	test.AssertHTTPStatus(suite.T(), http.StatusNoContent, &r)

	r = suite.request(http.MethodGet, "/v1/transactions", nil)
	suite.Assert().Len(decode[[]models.Transaction](suite, &r), 0)
}

func (suite *TestSuiteStandard) TestAccountsAreIsolated() {
	account := suite.createAccount("Carteira", models.AccountWallet, "100")

	other := suite.signUp("joao@example.com", "João")
	r := test.Request(suite.T(), suite.engine, http.MethodGet, "/v1/accounts/"+account.ID.String(), nil, test.Bearer(other.Token))
	test.AssertHTTPStatus(suite.T(), http.StatusNotFound, &r)

	r = test.Request(suite.T(), suite.engine, http.MethodGet, "/v1/accounts", nil, test.Bearer(other.Token))
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)
	suite.Assert().Len(decode[[]models.Account](suite, &r), 0)
}

func (suite *TestSuiteStandard) TestInvalidUUID() {
	r := suite.request(http.MethodGet, "/v1/accounts/not-a-uuid", nil)
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &r)
	suite.Assert().Equal("the specified resource ID is not a valid UUID", suite.decodeError(&r).Error)
}
