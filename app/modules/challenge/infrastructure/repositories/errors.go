package challengedb

import "errors"

// Sentinel errors for the challenge repository layer.
var (
	// ErrChallengeNotFound indicates the requested challenge does not exist.
	ErrChallengeNotFound = errors.New("challenge not found")
)
