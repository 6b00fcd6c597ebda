package v1

import (
	"errors"
	"net/http"

	"github.com/fintrack/backend/internal/auth"
	"github.com/fintrack/backend/internal/models"
	"github.com/fintrack/backend/internal/mutations"
	"github.com/gin-gonic/gin"
)

var (
	errNotLoaded  = errors.New("your data could not be loaded yet, please try again")
	errEmptyMonth = errors.New("the month query parameter must be in YYYY-MM format")
)

type httpError struct {
	Error        string                  `json:"error" example:"the specified resource ID is not a valid UUID"`
	Confirmation *mutations.Confirmation `json:"confirmation,omitempty"` // Set when the action needs to be confirmed with confirm=true
}

// status returns the HTTP status for an error.
func status(err error) int {
	switch {
	case errors.Is(err, models.ErrGeneral):
		return http.StatusInternalServerError
	case errors.Is(err, errNotLoaded):
		return http.StatusServiceUnavailable
	case errors.Is(err, models.ErrResourceNotFound):
		return http.StatusNotFound
	case errors.Is(err, mutations.ErrConfirmationRequired):
		return http.StatusConflict
	case errors.Is(err, mutations.ErrInvoiceAlreadyOpen),
		errors.Is(err, mutations.ErrNoOpenInvoice),
		errors.Is(err, mutations.ErrInvalidTransition),
		errors.Is(err, mutations.ErrAlreadyPaid),
		errors.Is(err, models.ErrEmailInUse):
		return http.StatusConflict
	case errors.Is(err, auth.ErrInvalidCredentials),
		errors.Is(err, auth.ErrMissingToken),
		errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrTokenRevoked):
		return http.StatusUnauthorized
	}

	// Validation, binding and parsing errors
	return http.StatusBadRequest
}

func newHTTPError(err error) httpError {
	e := httpError{Error: err.Error()}

	var confirmation *mutations.ConfirmationError
	if errors.As(err, &confirmation) {
		e.Confirmation = &confirmation.Confirmation
	}

	return e
}

// fail writes the error response for err.
func fail(c *gin.Context, err error) {
	c.JSON(status(err), newHTTPError(err))
}

// abort writes the error response for err and stops the handler chain.
func abort(c *gin.Context, err error) {
	c.AbortWithStatusJSON(status(err), newHTTPError(err))
}
