package service

import "errors"

// Sentinel errors crossing the service boundary. Handlers map these to
// the API envelope; nothing below the handler layer panics or raises
// past its own boundary.
var (
	ErrValidation          = errors.New("validation failed")
	ErrProductNotFound     = errors.New("product not found")
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrInvalidToken        = errors.New("invalid download token")
	ErrPaymentNotVerified  = errors.New("payment has not been verified yet")
	ErrInvalidStatus       = errors.New("status must be success or failed")
	ErrProductGone         = errors.New("product no longer exists")
	ErrInvalidSecret       = errors.New("access denied: invalid admin token")
)
