package usecase

import (
	"context"
	"strings"

	"ecoavobot/internal/intent"
	"ecoavobot/pkg/fuzzy"
)

// ListIntents summarizes the loaded catalog. A non-empty query ranks tags by
// fuzzy match, best first.
func (uc *implUseCase) ListIntents(ctx context.Context, input intent.ListIntentsInput) (intent.ListIntentsOutput, error) {
	intents := uc.current().Intents()

	tags := make([]string, len(intents))
	for i, it := range intents {
		tags[i] = it.Tag
	}

	matches := fuzzy.Filter(strings.TrimSpace(input.Query), tags)
	summaries := make([]intent.IntentSummary, 0, len(matches))
	for _, m := range matches {
		it := intents[m.Index]
		summaries = append(summaries, intent.IntentSummary{
			Tag:           it.Tag,
			PatternCount:  len(it.Patterns),
			ResponseCount: len(it.Responses),
		})
	}

	uc.l.Debugf(ctx, "%s: %d of %d intents for query %q", LogPrefixListIntents, len(summaries), len(intents), input.Query)

	return intent.ListIntentsOutput{
		Intents: summaries,
		Total:   len(summaries),
	}, nil
}
