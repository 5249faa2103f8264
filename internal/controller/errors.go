package controller

import (
	"errors"
	"fmt"

	"github.com/Tanishkag23/xpense/internal/api"
)

var (
	// ErrValidation means required input was missing; no request was sent.
	ErrValidation = errors.New("missing input")
	// ErrRejected means the server answered without ok:true.
	ErrRejected = errors.New("rejected by server")
)

// Alert texts.
const (
	msgLoginFailed   = "Login failed"
	msgSignupOK      = "Signup OK, now login"
	msgSignupFailed  = "Signup failed"
	msgFillExpense   = "Fill amount, date, category"
	msgAddFailed     = "Failed to add"
	msgBudgetFailed  = "Budget update failed"
	msgEnterIncome   = "Enter income amount"
	msgIncomeFailed  = "Failed to set income"
	msgRequestFailed = "Request failed: "
)

// Reported reports whether err has already been shown to the user as an
// alert, so callers need not print it again.
func Reported(err error) bool {
	var apiErr *api.Error
	return errors.Is(err, ErrValidation) || errors.Is(err, ErrRejected) || errors.As(err, &apiErr)
}

// transportFailure alerts a request error and returns it wrapped with op.
func (c *Controller) transportFailure(op string, err error) error {
	c.scr.Alert(msgRequestFailed + err.Error())
	c.log.Warn().Err(err).Str("op", op).Msg("request failed")
	return fmt.Errorf("%s: %w", op, err)
}

// rejected alerts msg and returns ErrRejected wrapped with op.
func (c *Controller) rejected(op, msg string) error {
	c.scr.Alert(msg)
	return fmt.Errorf("%s: %w", op, ErrRejected)
}

// invalid alerts msg and returns ErrValidation wrapped with op.
func (c *Controller) invalid(op, msg string) error {
	c.scr.Alert(msg)
	return fmt.Errorf("%s: %w", op, ErrValidation)
}
