package domain

import "errors"

// Storage error taxonomy. Repository adapters classify their driver errors
// into one of these so callers can decide between retry and a user-facing
// auth message.
var (
	ErrStorageTransient  = errors.New("storage temporarily unavailable")
	ErrStoragePermission = errors.New("storage permission denied")
)

var (
	ErrIdentityUnavailable = errors.New("no identity could be resolved")
	ErrUnauthorized        = errors.New("unauthorized access")
)
