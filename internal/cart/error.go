package cart

import "errors"

var (
	// -- Validation & Input --
	ErrIndexOutOfRange = errors.New("cart index out of range")
)
