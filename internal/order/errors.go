package order

import "errors"

var (
	ErrMissingField        = errors.New("missing required field")
	ErrNonPositiveQuantity = errors.New("quantity must be positive")
	ErrUnknownProduct      = errors.New("unknown product")
	ErrTotalMismatch       = errors.New("total does not match cart contents")
	ErrBadStatus           = errors.New("unknown order status")
)
