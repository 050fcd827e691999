package scoreservice

import "errors"

// Domain validation errors, rejected before any storage call.
var (
	// ErrBatchShape indicates the submission's name and score sequences do
	// not pair up positionally (mismatched lengths or an empty batch).
	ErrBatchShape = errors.New("player names and scores must be non-empty parallel sequences of equal length")
)
