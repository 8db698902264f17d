package errs

import "errors"

// Domain-specific sentinel errors shared across usecase layers
var (
	// Coupon errors
	ErrCouponNotFound      = errors.New("coupon not found")
	ErrDuplicateCouponName = errors.New("coupon name already exists")
)
