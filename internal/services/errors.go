package services

import "errors"

// Validation errors.
var (
	ErrMissingFields        = errors.New("required fields are missing")
	ErrMissingEmail         = errors.New("email is required")
	ErrInvalidClientType    = errors.New("unknown client type")
	ErrWeakPassword         = errors.New("password must be at least 3 characters")
	ErrInvalidQuantity      = errors.New("quantity must be a positive number")
	ErrInvalidStatus        = errors.New("unknown order status")
	ErrInvalidAmount        = errors.New("amount must be greater than zero")
	ErrInvalidPaymentMethod = errors.New("unknown payment method")
)

// Conflict errors.
var (
	ErrDuplicateUsername = errors.New("username already exists")
	ErrDuplicateEmail    = errors.New("client with this email already exists")
	ErrDuplicateRole     = errors.New("role already exists")
	ErrDuplicatePayment  = errors.New("order already has a payment")
	ErrInsufficientStock = errors.New("not enough stock")
)

// Authorization errors.
var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrForbidden          = errors.New("operation not permitted for this role")
	ErrSelfEdit           = errors.New("cannot edit own account")
	ErrSelfDeletion       = errors.New("cannot delete own account")
)

// Missing-row errors.
var (
	ErrUserNotFound    = errors.New("user not found")
	ErrUnknownRole     = errors.New("role not found")
	ErrClientNotFound  = errors.New("client not found")
	ErrProductNotFound = errors.New("product not found")
	ErrOrderNotFound   = errors.New("order not found")
)
