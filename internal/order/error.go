package order

import "errors"

var (
	ErrOrderNotFound      = errors.New("order not found")
	ErrNotOwner           = errors.New("order belongs to another customer")
	ErrInvalidTransition  = errors.New("status transition not allowed")
	ErrCannotCancel       = errors.New("cannot cancel after shipment")
	ErrAlreadyCancelled   = errors.New("order already cancelled")
	ErrTotalMismatch      = errors.New("total amount does not match line items")
	ErrEmptyOrder         = errors.New("order has no items")
	ErrMissingTransaction = errors.New("transaction id is required for UPI payment")
	ErrMissingFields      = errors.New("name and address are required")
	ErrInvalidPayment     = errors.New("payment method must be COD or UPI")
	ErrInvalidItem        = errors.New("line items need a positive quantity and a non-negative price")
)
