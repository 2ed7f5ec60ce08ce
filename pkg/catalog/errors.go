package catalog

import "errors"

// Catalog errors
var (
	// ErrNotFound indicates the catalog document is missing or not decodable
	ErrNotFound = errors.New("catalog document not found or malformed")

	// ErrMissingField indicates the register array key or a required record field is absent
	ErrMissingField = errors.New("catalog document is missing a required field")

	// ErrBadValue indicates a record field holds a value outside its allowed range
	ErrBadValue = errors.New("catalog record field has an invalid value")
)
