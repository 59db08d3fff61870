package domain

import "errors"

// Domain errors as sentinel values
var (
	// Configuration errors: wiring bugs in the caller, never data conditions
	ErrUnknownSortKey  = errors.New("unknown sort key")
	ErrInvalidPageSize = errors.New("page size must be positive")

	// Item errors
	ErrInvalidItem   = errors.New("invalid item")
	ErrInvalidItemID = errors.New("invalid item id")
	ErrItemNotFound  = errors.New("item not found")

	// Session errors
	ErrSessionNotFound = errors.New("session not found")
)
