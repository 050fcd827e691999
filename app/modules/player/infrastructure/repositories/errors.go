package playerdb

import "errors"

// Sentinel errors for the player repository layer.
var (
	// ErrPlayerNotFound indicates the requested player does not exist.
	ErrPlayerNotFound = errors.New("player not found")
)
