package scoredb

import "errors"

// Sentinel errors for the score repository layer.
// These are infrastructure-level errors that indicate database state, not
// business logic failures.
var (
	// ErrNoRowsAffected indicates a write affected zero rows.
	ErrNoRowsAffected = errors.New("no rows affected")
)
