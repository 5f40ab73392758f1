package repository

import (
	"context"

	"ecoavobot/internal/intent"
)

// Repository loads the intent catalog from its backing store.
type Repository interface {
	// Load reads and validates the full catalog.
	Load(ctx context.Context) (intent.Catalog, error)
	// Source describes where the catalog lives, for logs.
	Source() string
}
