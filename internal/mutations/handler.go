// Package mutations implements every write a user can trigger.
//
// A mutation runs its steps one after the other in a fixed order. The
// first failing step stops the flow, is logged and reported to the user as
// a notification. Steps that already succeeded are not rolled back. After a
// successful mutation, the snapshot of the user is reloaded completely.
package mutations

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/fintrack/backend/internal/notify"
	"github.com/fintrack/backend/internal/store"
	"github.com/rs/zerolog/log"
)

var (
	ErrConfirmationRequired = errors.New("the action needs to be confirmed")
	ErrNoOpenInvoice        = errors.New("the credit card has no open invoice")
	ErrInvoiceAlreadyOpen   = errors.New("the credit card already has an open invoice")
	ErrInvalidTransition    = errors.New("the invoice status cannot be changed this way")
	ErrAlreadyPaid          = errors.New("the fixed expense has already been paid")
)

// ValidationError is returned when the input of a mutation is incomplete
// or invalid. Nothing has been written when it is returned.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

func invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

func isValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

// Confirmation describes a destructive action and everything that is
// deleted or changed along with it.
type Confirmation struct {
	Title   string   `json:"title" example:"Excluir conta"`
	Message string   `json:"message" example:"Excluir a conta Nubank?"`
	Cascade []string `json:"cascade" example:"3 transações serão excluídas"`
}

// Text returns the message followed by the cascade.
func (c Confirmation) Text() string {
	if len(c.Cascade) == 0 {
		return c.Message
	}
	return c.Message + " " + strings.Join(c.Cascade, ", ") + "."
}

// ConfirmationError is returned when the user declines a confirmation.
// Nothing has been changed when it is returned.
type ConfirmationError struct {
	Confirmation Confirmation
}

func (e *ConfirmationError) Error() string {
	return fmt.Sprintf("%s: %s", ErrConfirmationRequired, e.Confirmation.Text())
}

func (e *ConfirmationError) Unwrap() error {
	return ErrConfirmationRequired
}

// Confirmer asks the user to confirm a destructive action.
type Confirmer interface {
	Confirm(ctx context.Context, c Confirmation) bool
}

// Preconfirmed is a Confirmer for when the answer is known in advance,
// e.g. from a request parameter.
type Preconfirmed bool

func (p Preconfirmed) Confirm(context.Context, Confirmation) bool {
	return bool(p)
}

// ConfirmFunc adapts a function to a Confirmer.
type ConfirmFunc func(ctx context.Context, c Confirmation) bool

func (f ConfirmFunc) Confirm(ctx context.Context, c Confirmation) bool {
	return f(ctx, c)
}

// Refresher reloads the snapshot of the user.
type Refresher interface {
	Refresh(ctx context.Context) (bool, error)
}

// Handler runs the mutations of a single user.
type Handler struct {
	data      store.DataAccess
	inbox     notify.Inbox
	confirm   Confirmer
	refresher Refresher
	now       func() time.Time
}

func New(data store.DataAccess, inbox notify.Inbox, confirmer Confirmer, refresher Refresher) *Handler {
	return &Handler{
		data:      data,
		inbox:     inbox,
		confirm:   confirmer,
		refresher: refresher,
		now:       time.Now,
	}
}

// fail logs the error of a failed step and notifies the user about it.
func (h *Handler) fail(title, step string, err error) error {
	log.Error().Err(err).Str("user", h.data.UserID.String()).Str("step", step).Msg(title)
	h.inbox.Warning(title, err.Error())
	return fmt.Errorf("%s: %w", step, err)
}

// succeed notifies the user and reloads the snapshot.
func (h *Handler) succeed(ctx context.Context, title, message string) {
	h.inbox.Success(title, message)

	if _, err := h.refresher.Refresh(ctx); err != nil {
		log.Error().Err(err).Str("user", h.data.UserID.String()).Msg("refresh after mutation")
		h.inbox.Warning("Erro ao atualizar os dados", err.Error())
	}
}

// confirmed asks for confirmation and returns a ConfirmationError if the
// user declines.
func (h *Handler) confirmed(ctx context.Context, c Confirmation) error {
	if h.confirm.Confirm(ctx, c) {
		return nil
	}
	return &ConfirmationError{Confirmation: c}
}

// plural returns "1 singular" or "n plural".
func plural(n int, singular, many string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", singular)
	}
	return fmt.Sprintf("%d %s", n, many)
}
