package domain

import "errors"

// Sentinel errors for the item domain. Use errors.Is() to check these.
var (
	// ErrUnknownKind indicates a kind name outside the catalog.
	ErrUnknownKind = errors.New("unknown item kind")

	// ErrExtrasNotAllowed indicates the item's kind cannot carry extras.
	ErrExtrasNotAllowed = errors.New("extras not allowed")

	// ErrExtrasLimitExceeded indicates the item already holds its maximum number of extras.
	ErrExtrasLimitExceeded = errors.New("extras limit exceeded")

	// ErrInvalidAttribute indicates a construction override that does not name a
	// settable attribute, or carries a value the attribute cannot hold.
	ErrInvalidAttribute = errors.New("invalid attribute")

	// ErrInvalidExtra indicates an extra that cannot be attached (nil, already
	// attached elsewhere, or one that would make the item contain itself).
	ErrInvalidExtra = errors.New("invalid extra")

	// ErrEmptyCart indicates a receipt was requested for zero items.
	ErrEmptyCart = errors.New("cart is empty")
)
