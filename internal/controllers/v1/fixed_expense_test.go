package v1_test

import (
	"net/http"

	"github.com/fintrack/backend/internal/models"
	"github.com/fintrack/backend/test"
)

func (suite *TestSuiteStandard) createFixedExpense(name, amount string, dueDay int, active bool) models.FixedExpense {
	r := suite.request(http.MethodPost, "/v1/fixed-expenses", map[string]any{
		"name":   name,
		"amount": amount,
		"dueDay": dueDay,
		"active": active,
	})
	test.AssertHTTPStatus(suite.T(), http.StatusCreated, &r)

	return decode[models.FixedExpense](suite, &r)
}

func (suite *TestSuiteStandard) TestFixedExpenseMonth() {
	rent := suite.createFixedExpense("Aluguel", "1800", 5, true)
	suite.createFixedExpense("Academia", "120", 31, true)
	suite.createFixedExpense("Streaming antigo", "30", 10, false)

	r := suite.request(http.MethodPost, "/v1/fixed-expenses/generate?month=2024-02", nil)
	test.AssertHTTPStatus(suite.T(), http.StatusCreated, &r)
	instances := decode[[]models.MonthlyFixedExpense](suite, &r)
	suite.Require().Len(instances, 2, "Inactive templates are skipped")
	suite.Assert().Equal("2024-02-05", instances[0].DueDate.String())
	suite.Assert().Equal("2024-02-29", instances[1].DueDate.String(), "Due days are clamped to the end of the month")

	// Generating again does not create duplicates
	r = suite.request(http.MethodPost, "/v1/fixed-expenses/generate?month=2024-02", nil)
	test.AssertHTTPStatus(suite.T(), http.StatusCreated, &r)
	suite.Assert().Len(decode[[]models.MonthlyFixedExpense](suite, &r), 0)

	// Without a month, the current month of the clock is used
	r = suite.request(http.MethodPost, "/v1/fixed-expenses/generate", nil)
	test.AssertHTTPStatus(suite.T(), http.StatusCreated, &r)
	march := decode[[]models.MonthlyFixedExpense](suite, &r)
	suite.Require().Len(march, 2)
	suite.Assert().Equal("2024-03", march[0].Month.String())

	r = suite.request(http.MethodGet, "/v1/monthly-fixed-expenses?month=2024-02", nil)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)
	suite.Assert().Len(decode[[]models.MonthlyFixedExpense](suite, &r), 2)

	r = suite.request(http.MethodGet, "/v1/monthly-fixed-expenses", nil)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)
	suite.Assert().Len(decode[[]models.MonthlyFixedExpense](suite, &r), 4)

	// Deleting the template cascades to its instances
	r = suite.request(http.MethodDelete, "/v1/fixed-expenses/"+rent.ID.String(), nil)
	test.AssertHTTPStatus(suite.T(), http.StatusConflict, &r)
	suite.Assert().NotNil(suite.decodeError(&r).Confirmation)

	r = suite.request(http.MethodDelete, "/v1/fixed-expenses/"+rent.ID.String()+"?confirm=true", nil)
	test.AssertHTTPStatus(suite.T(), http.StatusNoContent, &r)

	r = suite.request(http.MethodGet, "/v1/monthly-fixed-expenses", nil)
	suite.Assert().Len(decode[[]models.MonthlyFixedExpense](suite, &r), 2)
}

func (suite *TestSuiteStandard) TestFixedExpenseBadMonth() {
	r := suite.request(http.MethodPost, "/v1/fixed-expenses/generate?month=march", nil)
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &r)

	r = suite.request(http.MethodGet, "/v1/monthly-fixed-expenses?month=2024-3-1", nil)
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &r)
}

func (suite *TestSuiteStandard) TestFixedExpenseDueDayValidation() {
	r := suite.request(http.MethodPost, "/v1/fixed-expenses", map[string]any{"name": "Aluguel", "amount": "1800", "dueDay": 0})
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &r)
}

func (suite *TestSuiteStandard) TestFixedExpenseUpdate() {
	rent := suite.createFixedExpense("Aluguel", "1800", 5, true)

	r := suite.request(http.MethodPatch, "/v1/fixed-expenses/"+rent.ID.String(), map[string]any{"amount": "1950"})
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)

	updated := decode[models.FixedExpense](suite, &r)
	suite.assertDecimal("1950", updated.Amount)
	suite.Assert().Equal("Aluguel", updated.Name)
	suite.Assert().Equal(5, updated.DueDay)
}

func (suite *TestSuiteStandard) TestPayMonthlyFixedExpense() {
	account := suite.createAccount("Conta corrente", models.AccountChecking, "3000")
	suite.createFixedExpense("Aluguel", "1800", 5, true)

	r := suite.request(http.MethodPost, "/v1/fixed-expenses/generate?month=2024-03", nil)
	test.AssertHTTPStatus(suite.T(), http.StatusCreated, &r)
	instance := decode[[]models.MonthlyFixedExpense](suite, &r)[0]

	r = suite.request(http.MethodPost, "/v1/monthly-fixed-expenses/"+instance.ID.String()+"/pay", map[string]any{"accountId": account.ID})
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)
	paid := decode[models.MonthlyFixedExpense](suite, &r)
	suite.Assert().Equal(models.FixedExpensePaid, paid.Status)
	suite.Require().NotNil(paid.TransactionID)

	suite.assertDecimal("1200", suite.getAccount(account.ID.String()).Balance)

	r = suite.request(http.MethodGet, "/v1/transactions/"+paid.TransactionID.String(), nil)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)
	suite.Assert().Equal("Aluguel", decode[models.Transaction](suite, &r).Description)

	r = suite.request(http.MethodPost, "/v1/monthly-fixed-expenses/"+instance.ID.String()+"/pay", map[string]any{"accountId": account.ID})
	test.AssertHTTPStatus(suite.T(), http.StatusConflict, &r)

	r = suite.request(http.MethodPost, "/v1/monthly-fixed-expenses/"+instance.ID.String()+"/pay", map[string]any{})
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &r)
}
