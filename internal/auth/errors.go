package auth

import "errors"

var (
	ErrInvalidCredentials = errors.New("the email address or password is wrong")
	ErrInvalidEmail       = errors.New("the email address is not valid")
	ErrPasswordTooShort   = errors.New("the password must be at least 8 characters long")
	ErrMissingToken       = errors.New("no session token was provided")
	ErrInvalidToken       = errors.New("the session token is invalid")
	ErrExpiredToken       = errors.New("the session has expired")
	ErrTokenRevoked       = errors.New("the session has been signed out")
)
