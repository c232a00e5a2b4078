package contract

import "errors"

// ErrDuplicateKey reports a write rejected by a unique constraint.
var ErrDuplicateKey = errors.New("duplicate key")
