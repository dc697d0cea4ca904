package internalerr

import "errors"

// Sentinel errors for common cases
var (
	ErrDecode        = errors.New("payload could not be decoded")
	ErrNoData        = errors.New("no analyzable data")
	ErrInvalidConfig = errors.New("invalid configuration")
)
