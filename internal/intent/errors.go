package intent

import "errors"

var (
	ErrInvalidCatalog    = errors.New("invalid intent catalog")
	ErrComputationFailed = errors.New("classification failed")
)
