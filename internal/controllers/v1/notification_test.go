package v1_test

import (
	"net/http"

	v1 "github.com/fintrack/backend/internal/controllers/v1"
	"github.com/fintrack/backend/internal/models"
	"github.com/fintrack/backend/internal/notify"
	"github.com/fintrack/backend/test"
	"github.com/google/uuid"
)

func (suite *TestSuiteStandard) notifications() v1.NotificationList {
	r := suite.request(http.MethodGet, "/v1/notifications", nil)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)

	return decode[v1.NotificationList](suite, &r)
}

func (suite *TestSuiteStandard) TestNotificationsFollowMutations() {
	suite.createAccount("Carteira", models.AccountWallet, "0")
	r := suite.request(http.MethodPost, "/v1/accounts", map[string]any{"type": "wallet"})
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &r)

	list := suite.notifications()
	suite.Require().Len(list.Notifications, 1, "Validation errors are not notified")
	suite.Assert().Equal(notify.SeveritySuccess, list.Notifications[0].Severity)
	suite.Assert().Equal(1, list.Unread)
	suite.Assert().Len(list.Toasts, 1)

	id := list.Notifications[0].ID.String()

	r = suite.request(http.MethodPost, "/v1/notifications/"+id+"/dismiss", nil)
	test.AssertHTTPStatus(suite.T(), http.StatusNoContent, &r)
	suite.Assert().Len(suite.notifications().Toasts, 0)

	r = suite.request(http.MethodPost, "/v1/notifications/"+id+"/read", nil)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)
	suite.Assert().Equal(0, decode[v1.NotificationList](suite, &r).Unread)

	r = suite.request(http.MethodDelete, "/v1/notifications", nil)
	test.AssertHTTPStatus(suite.T(), http.StatusNoContent, &r)
	suite.Assert().Len(suite.notifications().Notifications, 0)
}

func (suite *TestSuiteStandard) TestNotificationErrorIsWarning() {
	r := suite.request(http.MethodDelete, "/v1/accounts/"+uuid.NewString()+"?confirm=true", nil)
	test.AssertHTTPStatus(suite.T(), http.StatusNotFound, &r)

	list := suite.notifications()
	suite.Require().Len(list.Notifications, 1)
	suite.Assert().Equal(notify.SeverityWarning, list.Notifications[0].Severity)
	suite.Assert().Equal("Erro ao excluir conta", list.Notifications[0].Title)
}

func (suite *TestSuiteStandard) TestMarkAllNotificationsRead() {
	suite.createAccount("Carteira", models.AccountWallet, "0")
	suite.createAccount("Poupança", models.AccountSavings, "0")
	suite.Assert().Equal(2, suite.notifications().Unread)

	r := suite.request(http.MethodPost, "/v1/notifications/read", nil)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)
	suite.Assert().Equal(0, decode[v1.NotificationList](suite, &r).Unread)
}

func (suite *TestSuiteStandard) TestMarkUnknownNotificationRead() {
	r := suite.request(http.MethodPost, "/v1/notifications/"+uuid.NewString()+"/read", nil)
	test.AssertHTTPStatus(suite.T(), http.StatusNotFound, &r)
	suite.Assert().Equal("there is no notification matching your query", suite.decodeError(&r).Error)
}

func (suite *TestSuiteStandard) TestNotificationsArePerUser() {
	suite.createAccount("Carteira", models.AccountWallet, "0")

	other := suite.signUp("joao@example.com", "João")
	r := test.Request(suite.T(), suite.engine, http.MethodGet, "/v1/notifications", nil, test.Bearer(other.Token))
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)
	suite.Assert().Len(decode[v1.NotificationList](suite, &r).Notifications, 0)
}
