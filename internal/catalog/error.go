package catalog

import "errors"

var (
	// -- Resource State --
	ErrProductNotFound = errors.New("product not found")

	// -- Catalog File --
	ErrInvalidCatalogFile = errors.New("invalid catalog file")
	ErrInvalidPrice       = errors.New("invalid product price")
)
