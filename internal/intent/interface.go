package intent

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Classify resolves a free-text message to an intent and a reply. It never
	// fails the request: every error path degrades to a textual answer.
	Classify(ctx context.Context, input ClassifyInput) (ClassifyOutput, error)
	ListIntents(ctx context.Context, input ListIntentsInput) (ListIntentsOutput, error)
	// Reload rebuilds the engine from the catalog source. The running engine is
	// kept when the new catalog cannot be loaded.
	Reload(ctx context.Context) (ReloadOutput, error)
}
