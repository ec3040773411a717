package shipping

import "errors"

var (
	// -- Validation & Input --
	ErrInvalidCEP = errors.New("cep must be exactly 8 digits")

	// -- External Lookup --
	ErrLookupFailed = errors.New("shipping lookup failed")
)
