package usecase

import (
	"context"

	"ecoavobot/internal/intent"
	"ecoavobot/internal/intent/engine"
)

// Reload loads the catalog and swaps in a freshly built engine. On any error
// the running engine stays in place.
func (uc *implUseCase) Reload(ctx context.Context) (intent.ReloadOutput, error) {
	catalog, err := uc.repo.Load(ctx)
	if err != nil {
		uc.l.Warnf(ctx, "%s: keeping current catalog, load from %s failed: %v", LogPrefixReload, uc.repo.Source(), err)
		return intent.ReloadOutput{}, err
	}

	next, err := engine.New(catalog, uc.cfg)
	if err != nil {
		uc.l.Errorf(ctx, "%s: keeping current catalog, build failed: %v", LogPrefixReload, err)
		return intent.ReloadOutput{}, err
	}

	uc.engine.Store(next)

	out := intent.ReloadOutput{
		Intents:  len(catalog.Intents),
		Patterns: next.Entries(),
	}
	uc.l.Infof(ctx, "%s: loaded %d intents with %d patterns from %s", LogPrefixReload, out.Intents, out.Patterns, uc.repo.Source())
	return out, nil
}
