package v1_test

import (
	"net/http"

	"github.com/fintrack/backend/internal/dashboard"
	"github.com/fintrack/backend/internal/models"
	"github.com/fintrack/backend/test"
)

func (suite *TestSuiteStandard) TestDashboard() {
	checking := suite.createAccount("Conta corrente", models.AccountChecking, "1000")
	card := suite.createAccount("Nubank", models.AccountCreditCard, "0")
	market := suite.createCategory("Mercado", models.CategoryExpense)
	suite.openInvoice(card, "2024-03-20")

	r := suite.request(http.MethodPost, "/v1/budgets", map[string]any{"categoryId": market.ID, "amount": "500"})
	test.AssertHTTPStatus(suite.T(), http.StatusCreated, &r)

	suite.createTransaction(map[string]any{"description": "Salário", "amount": "5200", "date": "2024-03-05", "type": "income", "accountId": checking.ID})
	suite.createTransaction(map[string]any{"description": "Supermercado", "amount": "200", "date": "2024-03-10", "type": "expense", "accountId": checking.ID, "categoryId": market.ID})
	suite.createTransaction(map[string]any{"description": "Feira", "amount": "50", "date": "2024-03-12", "type": "expense", "accountId": card.ID, "categoryId": market.ID})
	suite.createTransaction(map[string]any{"description": "Mercado antigo", "amount": "90", "date": "2024-02-10", "type": "expense", "accountId": checking.ID, "categoryId": market.ID})

	suite.createFixedExpense("Aluguel", "1800", 5, true)
	r = suite.request(http.MethodPost, "/v1/fixed-expenses/generate", nil)
	test.AssertHTTPStatus(suite.T(), http.StatusCreated, &r)

	r = suite.request(http.MethodGet, "/v1/dashboard", nil)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)
	d := decode[dashboard.Dashboard](suite, &r)

	suite.Assert().Equal(dashboard.ThisMonth, d.Period)
	suite.Assert().Equal("Maria", d.DisplayName)
	suite.assertDecimal("5200", d.KPIs.Receitas)
	suite.assertDecimal("250", d.KPIs.Despesas)
	suite.assertDecimal("4950", d.KPIs.Movimentacoes)
	suite.assertDecimal("5910", d.KPIs.BalancoTotal, "Credit cards do not count towards the balance")

	suite.Require().Len(d.Budgets, 1)
	suite.assertDecimal("250", d.Budgets[0].Spent)

	suite.Assert().True(d.Overdue.Any)
	suite.Assert().Equal(1, d.Overdue.FixedExpenseCount)
	suite.Assert().Equal(0, d.Overdue.InvoiceCount, "Invoices due later this month are not overdue")

	suite.Require().Len(d.UpcomingBills, 1)
	suite.Assert().Len(d.Trend, 6)
}

func (suite *TestSuiteStandard) TestDashboardPeriods() {
	checking := suite.createAccount("Conta corrente", models.AccountChecking, "0")
	suite.createTransaction(map[string]any{"description": "Freela", "amount": "800", "date": "2024-01-20", "type": "income", "accountId": checking.ID})
	suite.createTransaction(map[string]any{"description": "Bônus", "amount": "300", "date": "2024-03-14", "type": "income", "accountId": checking.ID})

	tests := []struct {
		period   string
		receitas string
	}{
		{"today", "0"},
		{"last7days", "300"},
		{"thisMonth", "300"},
		{"thisYear", "1100"},
	}

	for _, tt := range tests {
		suite.Run(tt.period, func() {
			r := suite.request(http.MethodGet, "/v1/dashboard?period="+tt.period, nil)
			test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)
			suite.assertDecimal(tt.receitas, decode[dashboard.Dashboard](suite, &r).KPIs.Receitas)
		})
	}
}

func (suite *TestSuiteStandard) TestDashboardUnknownPeriod() {
	r := suite.request(http.MethodGet, "/v1/dashboard?period=forever", nil)
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &r)
	suite.Assert().Equal(dashboard.ErrUnknownPeriod.Error(), suite.decodeError(&r).Error)
}
