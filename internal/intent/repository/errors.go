package repository

import "errors"

var (
	ErrCatalogMissing    = errors.New("catalog source not found")
	ErrCatalogMalformed  = errors.New("catalog source is malformed")
	ErrUnsupportedFormat = errors.New("unsupported catalog format")
)
