package mutations_test

import (
	"context"

	"github.com/fintrack/backend/internal/models"
	"github.com/fintrack/backend/internal/mutations"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestCreateCategoryValidation() {
	_, err := suite.handler(true).CreateCategory(suite.ctx, mutations.CategoryInput{Name: "Mercado", Type: "groceries"})

	var validation *mutations.ValidationError
	suite.Require().ErrorAs(err, &validation)
	suite.Equal("type", validation.Field)
}

func (suite *TestSuiteStandard) TestUpdateCategory() {
	category := suite.createCategory("Mercado", models.CategoryExpense)

	in := mutations.CategoryInputFrom(category)
	in.Color = "#ef4444"

	updated, err := suite.handler(true).UpdateCategory(suite.ctx, category.ID, in)
	suite.Require().Nil(err)
	suite.Equal("Mercado", updated.Name)
	suite.Equal("#ef4444", updated.Color)
}

func (suite *TestSuiteStandard) TestDeleteCategoryCascades() {
	wallet := suite.createAccount("Carteira", models.AccountWallet, 0)
	food := suite.createCategory("Mercado", models.CategoryExpense)
	other := suite.createCategory("Lazer", models.CategoryExpense)

	first := suite.createTransaction("Feira", 30, wallet, &food)
	second := suite.createTransaction("Padaria", 12, wallet, &food)
	untouched := suite.createTransaction("Cinema", 40, wallet, &other)

	_, err := suite.data.Budgets.Insert(suite.ctx, models.Budget{CategoryID: food.ID, Amount: decimal.NewFromInt(500)})
	suite.Require().Nil(err)
	fixed, err := suite.data.FixedExpenses.Insert(suite.ctx, models.FixedExpense{Name: "Cesta", Amount: decimal.NewFromInt(80), DueDay: 5, CategoryID: &food.ID, Active: true})
	suite.Require().Nil(err)

	var asked mutations.Confirmation
	h := mutations.New(suite.data, suite.inbox, mutations.ConfirmFunc(func(_ context.Context, c mutations.Confirmation) bool {
		asked = c
		return true
	}), suite.refresher)

	suite.Require().Nil(h.DeleteCategory(suite.ctx, food.ID))
	suite.Equal("Excluir a categoria Mercado? 2 transações ficarão sem categoria, 1 orçamento será excluído.", asked.Text())

	for _, id := range []uuid.UUID{first.ID, second.ID} {
		transaction, err := suite.data.Transactions.Get(suite.ctx, id)
		suite.Require().Nil(err, "Transactions are kept")
		suite.Nil(transaction.CategoryID, "Transactions are unlinked")
	}

	transaction, err := suite.data.Transactions.Get(suite.ctx, untouched.ID)
	suite.Require().Nil(err)
	suite.Require().NotNil(transaction.CategoryID)
	suite.Equal(other.ID, *transaction.CategoryID)

	budgets, err := suite.data.Budgets.List(suite.ctx)
	suite.Require().Nil(err)
	suite.Empty(budgets)

	fixed, err = suite.data.FixedExpenses.Get(suite.ctx, fixed.ID)
	suite.Require().Nil(err)
	suite.Nil(fixed.CategoryID)

	_, err = suite.data.Categories.Get(suite.ctx, food.ID)
	suite.ErrorIs(err, models.ErrResourceNotFound)
	suite.Equal(1, suite.refresher.calls)
}

func (suite *TestSuiteStandard) TestDeleteCategoryDeclined() {
	wallet := suite.createAccount("Carteira", models.AccountWallet, 0)
	food := suite.createCategory("Mercado", models.CategoryExpense)
	first := suite.createTransaction("Feira", 30, wallet, &food)
	suite.createTransaction("Padaria", 12, wallet, &food)

	_, err := suite.data.Budgets.Insert(suite.ctx, models.Budget{CategoryID: food.ID, Amount: decimal.NewFromInt(500)})
	suite.Require().Nil(err)

	err = suite.handler(false).DeleteCategory(suite.ctx, food.ID)
	suite.ErrorIs(err, mutations.ErrConfirmationRequired)

	transaction, err := suite.data.Transactions.Get(suite.ctx, first.ID)
	suite.Require().Nil(err)
	suite.Require().NotNil(transaction.CategoryID)
	suite.Equal(food.ID, *transaction.CategoryID)

	budgets, err := suite.data.Budgets.List(suite.ctx)
	suite.Require().Nil(err)
	suite.Len(budgets, 1)

	_, err = suite.data.Categories.Get(suite.ctx, food.ID)
	suite.Nil(err)
	suite.Empty(suite.inbox.List(), "Declining is not an error")
}
