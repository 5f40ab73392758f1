package usecase

import (
	"context"
	"fmt"

	"ecoavobot/internal/intent"
)

// Classify resolves input.Message with the current engine. A panic in the
// engine is turned into an internal_error answer and ErrComputationFailed.
func (uc *implUseCase) Classify(ctx context.Context, input intent.ClassifyInput) (out intent.ClassifyOutput, err error) {
	defer func() {
		if r := recover(); r != nil {
			uc.l.Errorf(ctx, "%s: recovered panic: %v", LogPrefixClassify, r)
			out = intent.ClassifyOutput{
				Answer:  uc.messages().InternalError,
				Outcome: intent.OutcomeInternalError,
			}
			err = fmt.Errorf("%w: %v", intent.ErrComputationFailed, r)
		}
	}()

	res := uc.current().Classify(input.Message)

	switch res.Outcome {
	case intent.OutcomeUnresolved:
		uc.l.Infof(ctx, "%s: unresolved (best score %.3f)", LogPrefixClassify, res.Confidence)
	case intent.OutcomeEmptyMessage, intent.OutcomeTooShort:
		uc.l.Debugf(ctx, "%s: rejected input: %s", LogPrefixClassify, res.Outcome)
	default:
		uc.l.Infof(ctx, "%s: %s as %s via %s (confidence: %.3f)",
			LogPrefixClassify, res.Outcome, res.Tag, res.Strategy, res.Confidence)
	}

	return intent.ClassifyOutput{
		Tag:        res.Tag,
		Confidence: res.Confidence,
		Answer:     res.Answer,
		Outcome:    res.Outcome,
		Strategy:   res.Strategy,
	}, nil
}

func (uc *implUseCase) messages() intent.Messages {
	return uc.cfg.Messages.WithDefaults()
}
