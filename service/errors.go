// file: service/errors.go

package service

import (
	"errors"
	"fmt"
)

// Error kinds. Every error a service returns to the transport layer either is
// one of these or wraps one, so handlers can classify with errors.Is.
var (
	ErrValidation        = errors.New("validation error")
	ErrNotFound          = errors.New("not found")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrUnavailable       = errors.New("service temporarily unavailable")
)

var (
	ErrInvalidCustomerName  = fmt.Errorf("%w: customer name must not be empty", ErrValidation)
	ErrInvalidDeposit       = fmt.Errorf("%w: initial deposit must be zero or greater, below 10^16, with at most 4 decimal places", ErrValidation)
	ErrSameAccountTransfer  = fmt.Errorf("%w: cannot transfer money to the same account", ErrValidation)
	ErrInvalidAmount        = fmt.Errorf("%w: transfer amount must be greater than zero, below 10^16, with at most 4 decimal places", ErrValidation)
	ErrBalanceLimitExceeded = fmt.Errorf("%w: transfer would push the receiving balance to 10^16 or more", ErrValidation)

	ErrCustomerNotFound        = fmt.Errorf("customer %w", ErrNotFound)
	ErrAccountNotFound         = fmt.Errorf("account %w", ErrNotFound)
	ErrSenderAccountNotFound   = fmt.Errorf("sender account %w", ErrNotFound)
	ErrReceiverAccountNotFound = fmt.Errorf("receiver account %w", ErrNotFound)
)
