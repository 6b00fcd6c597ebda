package mutations_test

import (
	"github.com/fintrack/backend/internal/models"
	"github.com/fintrack/backend/internal/mutations"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestBudgetNeedsExistingCategory() {
	_, err := suite.handler(true).CreateBudget(suite.ctx, mutations.BudgetInput{CategoryID: uuid.New(), Amount: decimal.NewFromInt(100)})
	suite.ErrorIs(err, models.ErrResourceNotFound)

	budgets, err := suite.data.Budgets.List(suite.ctx)
	suite.Require().Nil(err)
	suite.Empty(budgets)
}

func (suite *TestSuiteStandard) TestBudgetLifecycle() {
	food := suite.createCategory("Mercado", models.CategoryExpense)
	h := suite.handler(true)

	budget, err := h.CreateBudget(suite.ctx, mutations.BudgetInput{CategoryID: food.ID, Amount: decimal.NewFromInt(500)})
	suite.Require().Nil(err)

	in := mutations.BudgetInputFrom(budget)
	in.Amount = decimal.NewFromInt(650)

	budget, err = h.UpdateBudget(suite.ctx, budget.ID, in)
	suite.Require().Nil(err)
	suite.assertDecimal("650", budget.Amount)

	suite.Require().Nil(h.DeleteBudget(suite.ctx, budget.ID))

	_, err = suite.data.Budgets.Get(suite.ctx, budget.ID)
	suite.ErrorIs(err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestToggleRule() {
	h := suite.handler(true)

	rule, err := h.CreateRule(suite.ctx, mutations.RuleInput{Name: "Uber", Condition: "descrição contém UBER", Enabled: true})
	suite.Require().Nil(err)

	rule, err = h.ToggleRule(suite.ctx, rule.ID)
	suite.Require().Nil(err)
	suite.False(rule.Enabled)
	suite.Equal("Uber foi desativada.", suite.lastNotification().Message)

	rule, err = h.ToggleRule(suite.ctx, rule.ID)
	suite.Require().Nil(err)
	suite.True(rule.Enabled)

	suite.Require().Nil(h.DeleteRule(suite.ctx, rule.ID))
	rules, err := suite.data.Rules.List(suite.ctx)
	suite.Require().Nil(err)
	suite.Empty(rules)
}

func (suite *TestSuiteStandard) TestUpdateProfile() {
	_, err := suite.data.Profiles.Insert(suite.ctx, models.Profile{DisplayName: "Maria"})
	suite.Require().Nil(err)

	profile, err := suite.handler(true).UpdateProfile(suite.ctx, "Maria Silva")
	suite.Require().Nil(err)
	suite.Equal("Maria Silva", profile.DisplayName)
	suite.Equal(suite.data.UserID, profile.ID)

	_, err = suite.handler(true).UpdateProfile(suite.ctx, "  ")
	var validation *mutations.ValidationError
	suite.ErrorAs(err, &validation)
}
