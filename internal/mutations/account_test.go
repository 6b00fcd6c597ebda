package mutations_test

import (
	"context"

	"github.com/fintrack/backend/internal/models"
	"github.com/fintrack/backend/internal/mutations"
	"github.com/fintrack/backend/internal/notify"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestCreateAndUpdateAccount() {
	h := suite.handler(true)

	account, err := h.CreateAccount(suite.ctx, mutations.AccountInput{Name: "  Itaú ", Type: models.AccountChecking, Balance: decimal.NewFromInt(250)})
	suite.Require().Nil(err)
	suite.Equal("Itaú", account.Name)
	suite.Equal(models.DefaultCurrency, account.Currency)

	in := mutations.AccountInputFrom(account)
	in.Name = "Itaú Personnalité"

	updated, err := h.UpdateAccount(suite.ctx, account.ID, in)
	suite.Require().Nil(err)
	suite.Equal("Itaú Personnalité", updated.Name)
	suite.assertDecimal("250", updated.Balance, "Fields not in the patch are kept")
	suite.Equal(2, suite.refresher.calls)
}

func (suite *TestSuiteStandard) TestCreateAccountValidation() {
	dueDay := 32

	tests := []struct {
		name  string
		field string
		input mutations.AccountInput
	}{
		{"No name", "name", mutations.AccountInput{Type: models.AccountWallet}},
		{"Bad type", "type", mutations.AccountInput{Name: "Carteira", Type: "piggy_bank"}},
		{"Bad due day", "dueDay", mutations.AccountInput{Name: "Nubank", Type: models.AccountCreditCard, DueDay: &dueDay}},
		{"Negative limit", "creditLimit", mutations.AccountInput{Name: "Nubank", Type: models.AccountCreditCard, CreditLimit: decimal.NewNullDecimal(decimal.NewFromInt(-1))}},
	}

	for _, tt := range tests {
		_, err := suite.handler(true).CreateAccount(suite.ctx, tt.input)

		var validation *mutations.ValidationError
		suite.Require().ErrorAs(err, &validation, tt.name)
		suite.Equal(tt.field, validation.Field, tt.name)
	}

	accounts, err := suite.data.Accounts.List(suite.ctx)
	suite.Require().Nil(err)
	suite.Empty(accounts)
}

func (suite *TestSuiteStandard) TestDeleteAccountCascades() {
	card := suite.createAccount("Nubank", models.AccountCreditCard, 0)
	wallet := suite.createAccount("Carteira", models.AccountWallet, 0)
	suite.createInvoice(card, models.InvoiceOpen, 0, "2024-03-10")
	suite.createTransaction("Cinema", 40, card, nil)
	suite.createTransaction("Padaria", 12, card, nil)
	kept := suite.createTransaction("Feira", 30, wallet, nil)

	var asked mutations.Confirmation
	h := mutations.New(suite.data, suite.inbox, mutations.ConfirmFunc(func(_ context.Context, c mutations.Confirmation) bool {
		asked = c
		return true
	}), suite.refresher)

	suite.Require().Nil(h.DeleteAccount(suite.ctx, card.ID))
	suite.Equal([]string{"2 transações serão excluídas", "1 fatura será excluída"}, asked.Cascade)

	transactions, err := suite.data.Transactions.List(suite.ctx)
	suite.Require().Nil(err)
	suite.Require().Len(transactions, 1)
	suite.Equal(kept.ID, transactions[0].ID)

	invoices, err := suite.data.CreditInvoices.List(suite.ctx)
	suite.Require().Nil(err)
	suite.Empty(invoices)

	_, err = suite.data.Accounts.Get(suite.ctx, card.ID)
	suite.ErrorIs(err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestDeleteAccountDeclined() {
	wallet := suite.createAccount("Carteira", models.AccountWallet, 0)
	suite.createTransaction("Feira", 30, wallet, nil)

	err := suite.handler(false).DeleteAccount(suite.ctx, wallet.ID)

	var confirmation *mutations.ConfirmationError
	suite.Require().ErrorAs(err, &confirmation)
	suite.Equal("Excluir a conta Carteira? 1 transação será excluída.", confirmation.Confirmation.Text())

	transactions, err := suite.data.Transactions.List(suite.ctx)
	suite.Require().Nil(err)
	suite.Len(transactions, 1)
	suite.Equal(0, suite.refresher.calls)
}

func (suite *TestSuiteStandard) TestDeleteUnknownAccount() {
	err := suite.handler(true).DeleteAccount(suite.ctx, uuid.New())
	suite.ErrorIs(err, models.ErrResourceNotFound)
	suite.Equal(notify.SeverityWarning, suite.lastNotification().Severity)
}
