package errors

import "errors"

var (
	ErrInvalidID         = errors.New("invalid reservation ID format")
	ErrStoreUnconfigured = errors.New("record store client is not configured")
)
