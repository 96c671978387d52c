package textnorm

import "errors"

// Sentinel errors for conditions callers may need to handle differently.
var (
	// ErrSpellingResource indicates the spelling mapping file exists but
	// could not be read.
	ErrSpellingResource = errors.New("textnorm: spelling mapping unreadable")
)
