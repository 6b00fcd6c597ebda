package v1_test

import (
	"net/http"

	"github.com/fintrack/backend/internal/models"
	"github.com/fintrack/backend/test"
)

func (suite *TestSuiteStandard) openInvoice(card models.Account, due string) models.CreditInvoice {
	r := suite.request(http.MethodPost, "/v1/credit-invoices", map[string]any{
		"accountId": card.ID,
		"dueDate":   due,
	})
	test.AssertHTTPStatus(suite.T(), http.StatusCreated, &r)

	return decode[models.CreditInvoice](suite, &r)
}

func (suite *TestSuiteStandard) getInvoice(invoice models.CreditInvoice) models.CreditInvoice {
	r := suite.request(http.MethodGet, "/v1/credit-invoices/"+invoice.ID.String(), nil)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)

	return decode[models.CreditInvoice](suite, &r)
}

func (suite *TestSuiteStandard) TestInvoiceLifecycle() {
	card := suite.createAccount("Nubank", models.AccountCreditCard, "0")
	invoice := suite.openInvoice(card, "2024-04-10")
	suite.Assert().Equal(models.InvoiceOpen, invoice.Status)
	suite.Assert().Equal("2024-04", invoice.Month)

	// Only one open invoice per card
	r := suite.request(http.MethodPost, "/v1/credit-invoices", map[string]any{"accountId": card.ID, "dueDate": "2024-05-10"})
	test.AssertHTTPStatus(suite.T(), http.StatusConflict, &r)

	created := suite.createTransaction(map[string]any{
		"description":  "Notebook",
		"amount":       "300",
		"date":         "2024-03-15",
		"type":         "expense",
		"accountId":    card.ID,
		"installments": 3,
	})
	suite.Require().Len(created, 3)
	suite.Assert().Equal("2024-05-15", created[2].Date.String())
	suite.assertDecimal("100", suite.getInvoice(invoice).Amount)

	r = suite.request(http.MethodPost, "/v1/credit-invoices/"+invoice.ID.String()+"/close", nil)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)
	suite.Assert().Equal(models.InvoiceClosed, decode[models.CreditInvoice](suite, &r).Status)

	// Closed invoices can not be closed again
	r = suite.request(http.MethodPost, "/v1/credit-invoices/"+invoice.ID.String()+"/close", nil)
	test.AssertHTTPStatus(suite.T(), http.StatusConflict, &r)

	r = suite.request(http.MethodPost, "/v1/credit-invoices/"+invoice.ID.String()+"/pay", nil)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)
	suite.Assert().Equal(models.InvoicePaid, decode[models.CreditInvoice](suite, &r).Status)

	r = suite.request(http.MethodPost, "/v1/credit-invoices/"+invoice.ID.String()+"/pay", nil)
	test.AssertHTTPStatus(suite.T(), http.StatusConflict, &r)
}

func (suite *TestSuiteStandard) TestCardPurchaseWithoutOpenInvoice() {
	card := suite.createAccount("Nubank", models.AccountCreditCard, "0")

	r := suite.request(http.MethodPost, "/v1/transactions", map[string]any{
		"description": "Farmácia",
		"amount":      "50",
		"date":        "2024-03-15",
		"type":        "expense",
		"accountId":   card.ID,
	})
	test.AssertHTTPStatus(suite.T(), http.StatusConflict, &r)
}

func (suite *TestSuiteStandard) TestInvoiceNeedsCard() {
	wallet := suite.createAccount("Carteira", models.AccountWallet, "0")

	r := suite.request(http.MethodPost, "/v1/credit-invoices", map[string]any{"accountId": wallet.ID, "dueDate": "2024-04-10"})
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &r)
}

func (suite *TestSuiteStandard) TestInvoiceFilter() {
	nubank := suite.createAccount("Nubank", models.AccountCreditCard, "0")
	inter := suite.createAccount("Inter", models.AccountCreditCard, "0")
	first := suite.openInvoice(nubank, "2024-03-10")
	suite.openInvoice(inter, "2024-03-20")

	r := suite.request(http.MethodPost, "/v1/credit-invoices/"+first.ID.String()+"/close", nil)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)

	r = suite.request(http.MethodGet, "/v1/credit-invoices?account="+nubank.ID.String(), nil)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)
	suite.Assert().Len(decode[[]models.CreditInvoice](suite, &r), 1)

	r = suite.request(http.MethodGet, "/v1/credit-invoices?status=Aberta", nil)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)
	invoices := decode[[]models.CreditInvoice](suite, &r)
	suite.Require().Len(invoices, 1)
	suite.Assert().Equal(inter.ID, invoices[0].AccountID)
}
