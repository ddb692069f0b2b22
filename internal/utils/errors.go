package utils

import "errors"

// Common application errors used across services.
var (
	ErrProductNotFound    = errors.New("PRODUCT_NOT_FOUND")
	ErrProductOutOfStock  = errors.New("PRODUCT_OUT_OF_STOCK")
	ErrInvalidQuantity    = errors.New("INVALID_QUANTITY")
	ErrCheckoutExpired    = errors.New("CHECKOUT_SESSION_EXPIRED")
	ErrOrderRejected      = errors.New("ORDER_REJECTED")
	ErrOrderNotFound      = errors.New("ORDER_NOT_FOUND")
	ErrPageNotFound       = errors.New("PAGE_NOT_FOUND")
	ErrInvalidCredentials = errors.New("INVALID_CREDENTIALS")
	ErrInvalidToken       = errors.New("INVALID_TOKEN")
)
