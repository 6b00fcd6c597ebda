package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")
	ErrEmailInUse       = errors.New("this email address is already registered")
	ErrEmailEmpty       = errors.New("the email address must not be empty")
)

// Validation errors raised by the model hooks
var (
	ErrInvalidAccountType     = errors.New("the account type is invalid")
	ErrInvalidCategoryType    = errors.New("the category type is invalid")
	ErrInvalidTransactionType = errors.New("the transaction type is invalid")
	ErrInvalidStatus          = errors.New("the status is invalid")
	ErrInvalidDueDay          = errors.New("the due day must be between 1 and 31")
	ErrAmountNotPositive      = errors.New("the amount must be greater than zero")
	ErrInvalidInstallments    = errors.New("the installment information is inconsistent")
	ErrNameEmpty              = errors.New("the name must not be empty")
	ErrDateEmpty              = errors.New("the date must be set")
	ErrAccountEmpty           = errors.New("the account must be set")
	ErrCategoryEmpty          = errors.New("the category must be set")
)
