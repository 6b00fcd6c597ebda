package mutations_test

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/fintrack/backend/internal/models"
	"github.com/fintrack/backend/internal/mutations"
	"github.com/fintrack/backend/internal/notify"
	"github.com/fintrack/backend/internal/store"
	"github.com/fintrack/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestSaveTransactionBooksOnAccount() {
	wallet := suite.createAccount("Carteira", models.AccountWallet, 100)
	food := suite.createCategory("Mercado", models.CategoryExpense)

	created, err := suite.handler(true).SaveTransaction(suite.ctx, mutations.TransactionInput{
		Description: "Feira",
		Amount:      decimal.NewFromInt(30),
		Date:        types.MustParseDate("2024-03-15"),
		Type:        models.TransactionExpense,
		CategoryID:  &food.ID,
		AccountID:   wallet.ID,
	})
	suite.Require().Nil(err)
	suite.Require().Len(created, 1)
	suite.Equal(models.StatusCleared, created[0].Status, "Status defaults to cleared")

	suite.assertDecimal("70", suite.reload(wallet).Balance)
	suite.Equal(1, suite.refresher.calls)
	suite.Equal(notify.SeveritySuccess, suite.lastNotification().Severity)
}

func (suite *TestSuiteStandard) TestSaveIncomeRaisesBalance() {
	checking := suite.createAccount("Conta", models.AccountChecking, 100)

	_, err := suite.handler(true).SaveTransaction(suite.ctx, mutations.TransactionInput{
		Description: "Salário",
		Amount:      decimal.NewFromInt(2500),
		Date:        types.MustParseDate("2024-03-05"),
		Type:        models.TransactionIncome,
		AccountID:   checking.ID,
	})
	suite.Require().Nil(err)
	suite.assertDecimal("2600", suite.reload(checking).Balance)
}

func (suite *TestSuiteStandard) TestSaveInstallments() {
	card := suite.createAccount("Nubank", models.AccountCreditCard, 0)
	invoice := suite.createInvoice(card, models.InvoiceOpen, 0, "2024-02-10")

	created, err := suite.handler(true).SaveTransaction(suite.ctx, mutations.TransactionInput{
		Description:  "Geladeira",
		Amount:       decimal.NewFromInt(300),
		Date:         types.MustParseDate("2024-01-15"),
		Type:         models.TransactionExpense,
		AccountID:    card.ID,
		Installments: 3,
	})
	suite.Require().Nil(err)
	suite.Require().Len(created, 3)

	dates := []string{"2024-01-15", "2024-02-15", "2024-03-15"}
	for i, transaction := range created {
		suite.assertDecimal("100", transaction.Amount, "installment", i+1)
		suite.Equal(dates[i], transaction.Date.String())
		suite.Equal(3, transaction.InstallmentCount)
		suite.Equal(i+1, transaction.CurrentInstallment)
		suite.Equal(models.StatusPending, transaction.Status)
		suite.Require().NotNil(transaction.ParentTransactionID)
		suite.Equal(*created[0].ParentTransactionID, *transaction.ParentTransactionID, "All installments share the parent")
	}

	invoice, err = suite.data.CreditInvoices.Get(suite.ctx, invoice.ID)
	suite.Require().Nil(err)
	suite.assertDecimal("100", invoice.Amount, "Only one installment is added to the open invoice")
}

func (suite *TestSuiteStandard) TestInstallmentsRoundToCents() {
	transactions := mutations.Installments(mutations.TransactionInput{
		Description: "Curso",
		Amount:      decimal.NewFromInt(100),
		Date:        types.MustParseDate("2024-01-31"),
		Type:        models.TransactionExpense,
	}, 3)

	suite.Require().Len(transactions, 3)
	suite.assertDecimal("33.33", transactions[0].Amount)
	suite.Equal("2024-02-29", transactions[1].Date.String(), "Date is clamped to the end of the month")
}

func (suite *TestSuiteStandard) TestSaveOnCardWithoutOpenInvoice() {
	card := suite.createAccount("Nubank", models.AccountCreditCard, 0)
	suite.createInvoice(card, models.InvoiceClosed, 50, "2024-02-10")

	_, err := suite.handler(true).SaveTransaction(suite.ctx, mutations.TransactionInput{
		Description: "Cinema",
		Amount:      decimal.NewFromInt(40),
		Date:        types.MustParseDate("2024-03-02"),
		Type:        models.TransactionExpense,
		AccountID:   card.ID,
	})
	suite.ErrorIs(err, mutations.ErrNoOpenInvoice)
	suite.Equal(notify.SeverityWarning, suite.lastNotification().Severity)
	suite.Equal(0, suite.refresher.calls, "No refresh after a failed mutation")

	// The transaction itself has already been stored
	transactions, err := suite.data.Transactions.List(suite.ctx)
	suite.Require().Nil(err)
	suite.Len(transactions, 1)
}

func (suite *TestSuiteStandard) TestSaveTransactionValidation() {
	// Every resource is nil. Any store access panics.
	h := mutations.New(store.DataAccess{}, suite.inbox, mutations.Preconfirmed(true), suite.refresher)

	tests := []struct {
		name  string
		field string
		input mutations.TransactionInput
	}{
		{"No description", "description", mutations.TransactionInput{Amount: decimal.NewFromInt(1)}},
		{"Zero amount", "amount", mutations.TransactionInput{Description: "Café"}},
		{"Negative amount", "amount", mutations.TransactionInput{Description: "Café", Amount: decimal.NewFromInt(-5)}},
		{"No date", "date", mutations.TransactionInput{Description: "Café", Amount: decimal.NewFromInt(5)}},
		{"Bad type", "type", mutations.TransactionInput{Description: "Café", Amount: decimal.NewFromInt(5), Date: types.MustParseDate("2024-01-01"), Type: "transfer"}},
		{"No account", "accountId", mutations.TransactionInput{Description: "Café", Amount: decimal.NewFromInt(5), Date: types.MustParseDate("2024-01-01"), Type: models.TransactionExpense}},
		{"Too many installments", "installments", mutations.TransactionInput{Description: "Café", Amount: decimal.NewFromInt(5), Date: types.MustParseDate("2024-01-01"), Type: models.TransactionExpense, AccountID: uuid.New(), Installments: mutations.MaxInstallments + 1}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			_, err := h.SaveTransaction(suite.ctx, tt.input)

			var validation *mutations.ValidationError
			require.ErrorAs(t, err, &validation)
			assert.Equal(t, tt.field, validation.Field)
		})
	}

	suite.Empty(suite.inbox.List(), "Validation errors are not notified")
	suite.Equal(0, suite.refresher.calls)
}

func (suite *TestSuiteStandard) TestSaveTransactionCategoryTypeMismatch() {
	wallet := suite.createAccount("Carteira", models.AccountWallet, 0)
	salary := suite.createCategory("Salário", models.CategoryIncome)

	_, err := suite.handler(true).SaveTransaction(suite.ctx, mutations.TransactionInput{
		Description: "Feira",
		Amount:      decimal.NewFromInt(30),
		Date:        types.MustParseDate("2024-03-15"),
		Type:        models.TransactionExpense,
		CategoryID:  &salary.ID,
		AccountID:   wallet.ID,
	})

	var validation *mutations.ValidationError
	suite.Require().ErrorAs(err, &validation)
	suite.Equal("categoryId", validation.Field)

	transactions, err := suite.data.Transactions.List(suite.ctx)
	suite.Require().Nil(err)
	suite.Empty(transactions)
}

// failingTransactions fails every insert.
type failingTransactions struct {
	store.Resource[models.Transaction]
}

func (failingTransactions) Insert(context.Context, models.Transaction) (models.Transaction, error) {
	return models.Transaction{}, models.ErrGeneral
}

func (suite *TestSuiteStandard) TestSaveTransactionStopsAtFailingStep() {
	wallet := suite.createAccount("Carteira", models.AccountWallet, 100)

	data := suite.data
	data.Transactions = failingTransactions{suite.data.Transactions}

	_, err := mutations.New(data, suite.inbox, mutations.Preconfirmed(true), suite.refresher).SaveTransaction(suite.ctx, mutations.TransactionInput{
		Description: "Feira",
		Amount:      decimal.NewFromInt(30),
		Date:        types.MustParseDate("2024-03-15"),
		Type:        models.TransactionExpense,
		AccountID:   wallet.ID,
	})
	suite.True(errors.Is(err, models.ErrGeneral))
	suite.Contains(err.Error(), "insert transaction")

	notification := suite.lastNotification()
	suite.Equal(notify.SeverityWarning, notification.Severity)
	suite.Equal("Erro ao salvar transação", notification.Title)

	// The balance is only touched after the insert
	suite.assertDecimal("100", suite.reload(wallet).Balance)
	suite.Equal(0, suite.refresher.calls)
}

func (suite *TestSuiteStandard) TestUpdateTransactionKeepsBalance() {
	wallet := suite.createAccount("Carteira", models.AccountWallet, 100)
	transaction := suite.createTransaction("Feira", 30, wallet, nil)

	in := mutations.TransactionInputFrom(transaction)
	in.Description = "Feira livre"
	in.Amount = decimal.NewFromInt(45)

	updated, err := suite.handler(true).UpdateTransaction(suite.ctx, transaction.ID, in)
	suite.Require().Nil(err)
	suite.Equal("Feira livre", updated.Description)
	suite.assertDecimal("45", updated.Amount)
	suite.assertDecimal("100", suite.reload(wallet).Balance)
}

func (suite *TestSuiteStandard) TestDeleteTransactionRevertsBalance() {
	wallet := suite.createAccount("Carteira", models.AccountWallet, 70)
	transaction := suite.createTransaction("Feira", 30, wallet, nil)

	err := suite.handler(true).DeleteTransaction(suite.ctx, transaction.ID)
	suite.Require().Nil(err)
	suite.assertDecimal("100", suite.reload(wallet).Balance)

	_, err = suite.data.Transactions.Get(suite.ctx, transaction.ID)
	suite.ErrorIs(err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestDeleteInstallmentsRevertsInvoice() {
	card := suite.createAccount("Nubank", models.AccountCreditCard, 0)
	invoice := suite.createInvoice(card, models.InvoiceOpen, 0, "2024-02-10")

	h := suite.handler(true)
	created, err := h.SaveTransaction(suite.ctx, mutations.TransactionInput{
		Description:  "Geladeira",
		Amount:       decimal.NewFromInt(300),
		Date:         types.MustParseDate("2024-01-15"),
		Type:         models.TransactionExpense,
		AccountID:    card.ID,
		Installments: 3,
	})
	suite.Require().Nil(err)

	suite.Require().Nil(h.DeleteTransaction(suite.ctx, created[1].ID))

	transactions, err := suite.data.Transactions.List(suite.ctx)
	suite.Require().Nil(err)
	suite.Empty(transactions, "All installments of the purchase are deleted")

	invoice, err = suite.data.CreditInvoices.Get(suite.ctx, invoice.ID)
	suite.Require().Nil(err)
	suite.assertDecimal("0", invoice.Amount)
}

func (suite *TestSuiteStandard) TestDeleteTransactionDeclined() {
	wallet := suite.createAccount("Carteira", models.AccountWallet, 70)
	transaction := suite.createTransaction("Feira", 30, wallet, nil)

	err := suite.handler(false).DeleteTransaction(suite.ctx, transaction.ID)
	suite.ErrorIs(err, mutations.ErrConfirmationRequired)

	_, err = suite.data.Transactions.Get(suite.ctx, transaction.ID)
	suite.Nil(err)
	suite.assertDecimal("70", suite.reload(wallet).Balance)
}

func (suite *TestSuiteStandard) TestSaveInstallmentsLimit() {
	card := suite.createAccount("Nubank", models.AccountCreditCard, 0)
	invoice := suite.createInvoice(card, models.InvoiceOpen, 0, "2024-02-10")

	in := mutations.TransactionInput{
		Description: "Televisão",
		Amount:      decimal.NewFromInt(4800),
		Date:        types.MustParseDate("2024-01-15"),
		Type:        models.TransactionExpense,
		AccountID:   card.ID,
	}

	for _, count := range []int{mutations.MaxInstallments + 1, math.MaxInt} {
		in.Installments = count
		_, err := suite.handler(true).SaveTransaction(suite.ctx, in)

		var validation *mutations.ValidationError
		suite.Require().ErrorAs(err, &validation, "installments: %d", count)
		suite.Equal("installments", validation.Field)
	}

	transactions, err := suite.data.Transactions.List(suite.ctx)
	suite.Require().Nil(err)
	suite.Empty(transactions, "Nothing is written for a rejected purchase")

	in.Installments = mutations.MaxInstallments
	created, err := suite.handler(true).SaveTransaction(suite.ctx, in)
	suite.Require().Nil(err)
	suite.Len(created, mutations.MaxInstallments)

	invoice, err = suite.data.CreditInvoices.Get(suite.ctx, invoice.ID)
	suite.Require().Nil(err)
	suite.assertDecimal("100", invoice.Amount)
}

func (suite *TestSuiteStandard) TestDeleteInstallmentsAfterInvoiceClosed() {
	card := suite.createAccount("Nubank", models.AccountCreditCard, 0)
	invoice := suite.createInvoice(card, models.InvoiceOpen, 0, "2024-02-10")

	h := suite.handler(true)
	created, err := h.SaveTransaction(suite.ctx, mutations.TransactionInput{
		Description:  "Geladeira",
		Amount:       decimal.NewFromInt(300),
		Date:         types.MustParseDate("2024-01-15"),
		Type:         models.TransactionExpense,
		AccountID:    card.ID,
		Installments: 3,
	})
	suite.Require().Nil(err)

	_, err = h.CloseInvoice(suite.ctx, invoice.ID)
	suite.Require().Nil(err)

	var asked mutations.Confirmation
	h = mutations.New(suite.data, suite.inbox, mutations.ConfirmFunc(func(_ context.Context, c mutations.Confirmation) bool {
		asked = c
		return true
	}), suite.refresher)

	suite.Require().Nil(h.DeleteTransaction(suite.ctx, created[0].ID))
	suite.Contains(asked.Cascade, "a fatura do cartão já está fechada e não será alterada")
	suite.Equal(notify.SeveritySuccess, suite.lastNotification().Severity)

	transactions, err := suite.data.Transactions.List(suite.ctx)
	suite.Require().Nil(err)
	suite.Empty(transactions)

	invoice, err = suite.data.CreditInvoices.Get(suite.ctx, invoice.ID)
	suite.Require().Nil(err)
	suite.Equal(models.InvoiceClosed, invoice.Status)
	suite.assertDecimal("100", invoice.Amount, "A closed invoice keeps its amount")
}

func (suite *TestSuiteStandard) TestDeleteTransactionUnknownAccountChangesNothing() {
	wallet := suite.createAccount("Carteira", models.AccountWallet, 70)
	transaction := suite.createTransaction("Feira", 30, wallet, nil)

	// Remove the account behind the handler's back
	suite.Require().Nil(suite.data.Accounts.Delete(suite.ctx, wallet.ID))

	err := suite.handler(true).DeleteTransaction(suite.ctx, transaction.ID)
	suite.ErrorIs(err, models.ErrResourceNotFound)

	_, err = suite.data.Transactions.Get(suite.ctx, transaction.ID)
	suite.Nil(err, "The transaction is kept when its account cannot be resolved")
}
