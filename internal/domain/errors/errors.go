package errors

import "errors"

var (
	ErrAlreadyExists      = errors.New("already exists")
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidOrderID     = errors.New("invalid order id")
	ErrUnknownTier        = errors.New("unknown ram tier")
	ErrPriceMismatch      = errors.New("price mismatch")
	ErrDomainNotIncluded  = errors.New("domain not included in tier")
	ErrInvalidAddress     = errors.New("invalid network address")
	ErrDeliveryFailed     = errors.New("notification delivery failed")
)
