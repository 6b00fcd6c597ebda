package mutations_test

import (
	"context"
	"time"

	"github.com/fintrack/backend/internal/models"
	"github.com/fintrack/backend/internal/mutations"
	"github.com/fintrack/backend/internal/types"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) createFixedExpense(name string, amount int64, dueDay int, active bool) models.FixedExpense {
	in := mutations.FixedExpenseInput{Name: name, Amount: decimal.NewFromInt(amount), DueDay: dueDay, Active: active}

	fixed, err := suite.handler(true).CreateFixedExpense(suite.ctx, in)
	suite.Require().Nil(err, "Fixed expense could not be saved")
	return fixed
}

func (suite *TestSuiteStandard) TestFixedExpenseValidation() {
	tests := []struct {
		name  string
		field string
		input mutations.FixedExpenseInput
	}{
		{"No name", "name", mutations.FixedExpenseInput{Amount: decimal.NewFromInt(10), DueDay: 5}},
		{"No amount", "amount", mutations.FixedExpenseInput{Name: "Aluguel", DueDay: 5}},
		{"Due day too low", "dueDay", mutations.FixedExpenseInput{Name: "Aluguel", Amount: decimal.NewFromInt(10)}},
		{"Due day too high", "dueDay", mutations.FixedExpenseInput{Name: "Aluguel", Amount: decimal.NewFromInt(10), DueDay: 32}},
	}

	for _, tt := range tests {
		_, err := suite.handler(true).CreateFixedExpense(suite.ctx, tt.input)

		var validation *mutations.ValidationError
		suite.Require().ErrorAs(err, &validation, tt.name)
		suite.Equal(tt.field, validation.Field, tt.name)
	}
}

func (suite *TestSuiteStandard) TestGenerateMonthlyInstances() {
	rent := suite.createFixedExpense("Aluguel", 1800, 5, true)
	gym := suite.createFixedExpense("Academia", 120, 31, true)
	suite.createFixedExpense("Streaming antigo", 30, 10, false)

	h := suite.handler(true)
	february := types.NewMonth(2024, time.February)

	instances, err := h.GenerateMonthlyInstances(suite.ctx, february)
	suite.Require().Nil(err)
	suite.Require().Len(instances, 2, "Inactive fixed expenses are skipped")

	due := map[string]string{}
	for _, instance := range instances {
		suite.Equal(models.FixedExpenseUnpaid, instance.Status)
		suite.True(instance.Month.Equal(february))

		switch instance.FixedExpenseID {
		case rent.ID:
			due["rent"] = instance.DueDate.String()
			suite.assertDecimal("1800", instance.Amount)
		case gym.ID:
			due["gym"] = instance.DueDate.String()
		}
	}
	suite.Equal(map[string]string{"rent": "2024-02-05", "gym": "2024-02-29"}, due)

	again, err := h.GenerateMonthlyInstances(suite.ctx, february)
	suite.Require().Nil(err)
	suite.Empty(again, "Instances are only generated once per month")

	march, err := h.GenerateMonthlyInstances(suite.ctx, types.NewMonth(2024, time.March))
	suite.Require().Nil(err)
	suite.Len(march, 2)
}

func (suite *TestSuiteStandard) TestPayMonthlyFixedExpense() {
	wallet := suite.createAccount("Carteira", models.AccountWallet, 2000)
	housing := suite.createCategory("Moradia", models.CategoryExpense)

	h := suite.handler(true)
	h.SetClock(func() time.Time { return time.Date(2024, 2, 4, 10, 0, 0, 0, time.UTC) })

	rent, err := h.CreateFixedExpense(suite.ctx, mutations.FixedExpenseInput{Name: "Aluguel", Amount: decimal.NewFromInt(1800), DueDay: 5, CategoryID: &housing.ID, Active: true})
	suite.Require().Nil(err)

	instances, err := h.GenerateMonthlyInstances(suite.ctx, types.NewMonth(2024, time.February))
	suite.Require().Nil(err)
	suite.Require().Len(instances, 1)

	paid, err := h.PayMonthlyFixedExpense(suite.ctx, instances[0].ID, wallet.ID)
	suite.Require().Nil(err)
	suite.Equal(models.FixedExpensePaid, paid.Status)
	suite.Require().NotNil(paid.TransactionID)

	transaction, err := suite.data.Transactions.Get(suite.ctx, *paid.TransactionID)
	suite.Require().Nil(err)
	suite.Equal(rent.Name, transaction.Description)
	suite.Equal("2024-02-04", transaction.Date.String())
	suite.Equal(models.TransactionExpense, transaction.Type)
	suite.Require().NotNil(transaction.CategoryID)
	suite.Equal(housing.ID, *transaction.CategoryID)

	suite.assertDecimal("200", suite.reload(wallet).Balance)

	_, err = h.PayMonthlyFixedExpense(suite.ctx, instances[0].ID, wallet.ID)
	suite.ErrorIs(err, mutations.ErrAlreadyPaid)
	suite.assertDecimal("200", suite.reload(wallet).Balance)
}

func (suite *TestSuiteStandard) TestDeleteFixedExpenseCascades() {
	rent := suite.createFixedExpense("Aluguel", 1800, 5, true)
	gym := suite.createFixedExpense("Academia", 120, 10, true)

	h := suite.handler(true)
	_, err := h.GenerateMonthlyInstances(suite.ctx, types.NewMonth(2024, time.February))
	suite.Require().Nil(err)

	err = suite.handler(false).DeleteFixedExpense(suite.ctx, rent.ID)
	suite.ErrorIs(err, mutations.ErrConfirmationRequired)

	suite.Require().Nil(h.DeleteFixedExpense(suite.ctx, rent.ID))

	instances, err := suite.data.MonthlyFixedExpenses.List(suite.ctx)
	suite.Require().Nil(err)
	suite.Require().Len(instances, 1)
	suite.Equal(gym.ID, instances[0].FixedExpenseID)
}

func (suite *TestSuiteStandard) TestUpdateFixedExpenseKeepsInstances() {
	rent := suite.createFixedExpense("Aluguel", 1800, 5, true)
	march := types.NewMonth(2024, time.March)

	h := suite.handler(true)
	_, err := h.GenerateMonthlyInstances(suite.ctx, march)
	suite.Require().Nil(err)

	in := mutations.FixedExpenseInputFrom(rent)
	in.Amount = decimal.NewFromInt(1950)
	in.Active = false

	updated, err := h.UpdateFixedExpense(suite.ctx, rent.ID, in)
	suite.Require().Nil(err)
	suite.True(decimal.NewFromInt(1950).Equal(updated.Amount))
	suite.False(updated.Active)

	instances, err := suite.data.MonthlyFixedExpenses.List(suite.ctx)
	suite.Require().Nil(err)
	suite.Require().Len(instances, 1)
	suite.True(decimal.NewFromInt(1800).Equal(instances[0].Amount), "existing instances keep their amount")
}

// payRent generates and pays the rent of February 2024 from the account.
func (suite *TestSuiteStandard) payRent(account models.Account) models.MonthlyFixedExpense {
	suite.createFixedExpense("Aluguel", 1800, 5, true)

	h := suite.handler(true)
	instances, err := h.GenerateMonthlyInstances(suite.ctx, types.NewMonth(2024, time.February))
	suite.Require().Nil(err)
	suite.Require().Len(instances, 1)

	paid, err := h.PayMonthlyFixedExpense(suite.ctx, instances[0].ID, account.ID)
	suite.Require().Nil(err)
	suite.Require().NotNil(paid.TransactionID)
	return paid
}

func (suite *TestSuiteStandard) TestDeletePaymentUnpaysFixedExpense() {
	wallet := suite.createAccount("Carteira", models.AccountWallet, 2000)
	paid := suite.payRent(wallet)

	var asked mutations.Confirmation
	h := mutations.New(suite.data, suite.inbox, mutations.ConfirmFunc(func(_ context.Context, c mutations.Confirmation) bool {
		asked = c
		return true
	}), suite.refresher)

	suite.Require().Nil(h.DeleteTransaction(suite.ctx, *paid.TransactionID))
	suite.Equal([]string{"1 despesa fixa voltará a ficar pendente"}, asked.Cascade)

	instance, err := suite.data.MonthlyFixedExpenses.Get(suite.ctx, paid.ID)
	suite.Require().Nil(err)
	suite.Equal(models.FixedExpenseUnpaid, instance.Status)
	suite.Nil(instance.TransactionID)
	suite.assertDecimal("2000", suite.reload(wallet).Balance)
}

func (suite *TestSuiteStandard) TestDeleteAccountUnpaysFixedExpense() {
	wallet := suite.createAccount("Carteira", models.AccountWallet, 2000)
	paid := suite.payRent(wallet)

	var asked mutations.Confirmation
	h := mutations.New(suite.data, suite.inbox, mutations.ConfirmFunc(func(_ context.Context, c mutations.Confirmation) bool {
		asked = c
		return true
	}), suite.refresher)

	suite.Require().Nil(h.DeleteAccount(suite.ctx, wallet.ID))
	suite.Equal([]string{"1 transação será excluída", "1 despesa fixa voltará a ficar pendente"}, asked.Cascade)

	instance, err := suite.data.MonthlyFixedExpenses.Get(suite.ctx, paid.ID)
	suite.Require().Nil(err)
	suite.Equal(models.FixedExpenseUnpaid, instance.Status)
	suite.Nil(instance.TransactionID)
}

func (suite *TestSuiteStandard) TestDeclinedPaymentDeleteKeepsFixedExpensePaid() {
	wallet := suite.createAccount("Carteira", models.AccountWallet, 2000)
	paid := suite.payRent(wallet)

	err := suite.handler(false).DeleteTransaction(suite.ctx, *paid.TransactionID)
	suite.ErrorIs(err, mutations.ErrConfirmationRequired)

	instance, err := suite.data.MonthlyFixedExpenses.Get(suite.ctx, paid.ID)
	suite.Require().Nil(err)
	suite.Equal(models.FixedExpensePaid, instance.Status)
	suite.Equal(paid.TransactionID, instance.TransactionID)
}
