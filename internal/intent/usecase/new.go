package usecase

import (
	"sync/atomic"

	"ecoavobot/internal/intent"
	"ecoavobot/internal/intent/engine"
	"ecoavobot/internal/intent/repository"
	"ecoavobot/pkg/log"
)

// implUseCase is the private implementation of intent.UseCase.
type implUseCase struct {
	repo   repository.Repository
	l      log.Logger
	cfg    engine.Config
	engine atomic.Pointer[engine.Engine]
}

var _ intent.UseCase = (*implUseCase)(nil)

// New creates the intent UseCase. It starts on an empty catalog, so every
// message is unresolved until Reload succeeds.
func New(repo repository.Repository, cfg engine.Config, l log.Logger) (*implUseCase, error) {
	empty, err := engine.New(intent.Catalog{}, cfg)
	if err != nil {
		return nil, err
	}

	uc := &implUseCase{
		repo: repo,
		l:    l,
		cfg:  cfg,
	}
	uc.engine.Store(empty)
	return uc, nil
}

func (uc *implUseCase) current() *engine.Engine {
	return uc.engine.Load()
}
