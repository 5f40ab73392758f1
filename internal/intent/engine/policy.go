package engine

import (
	"math"
	"strings"
	"unicode/utf8"

	"ecoavobot/internal/intent"
)

// Result is the outcome of Classify. Tag is empty when unresolved.
type Result struct {
	Tag        string
	Confidence float64
	Answer     string
	Outcome    intent.Outcome
	Strategy   string
}

// Classify runs message through the two-tier policy:
//  1. primary scorer at or above Threshold;
//  2. fallback scorer above FallbackThreshold, then the greeting whitelist;
//  3. otherwise unresolved with the best score seen.
func (e *Engine) Classify(message string) Result {
	trimmed := strings.TrimSpace(message)
	if trimmed == "" {
		return Result{Answer: e.cfg.Messages.Empty, Outcome: intent.OutcomeEmptyMessage}
	}
	if utf8.RuneCountInString(trimmed) < e.cfg.MinMessageLength {
		return Result{Answer: e.cfg.Messages.TooShort, Outcome: intent.OutcomeTooShort}
	}

	q := NewQuery(trimmed)

	primary := e.primary.Best(q)
	if primary.Index >= 0 && primary.Score >= e.cfg.Threshold {
		return e.resolve(primary.Tag, primary.Score, intent.OutcomeMatched, e.primary.Name())
	}
	bestSeen := primary.Score

	if e.fallback != nil {
		fb := e.fallback.Best(q)
		if fb.Index >= 0 && fb.Score > e.cfg.FallbackThreshold {
			return e.resolve(fb.Tag, fb.Score, intent.OutcomeFallbackMatched, e.fallback.Name())
		}
		bestSeen = math.Max(bestSeen, fb.Score)
	}

	if tag, score, ok := e.greeting(q); ok {
		return e.resolve(tag, math.Max(primary.Score, score), intent.OutcomeGreetingMatched, "greeting")
	}

	return Result{
		Confidence: clamp(bestSeen),
		Answer:     e.cfg.Messages.Fallback,
		Outcome:    intent.OutcomeUnresolved,
		Strategy:   e.primary.Name(),
	}
}

func (e *Engine) resolve(tag string, score float64, outcome intent.Outcome, strategy string) Result {
	answer, ok := e.cfg.Selector.Pick(e.responses[tag])
	if !ok {
		answer = e.cfg.Messages.Apology
	}
	return Result{
		Tag:        tag,
		Confidence: clamp(score),
		Answer:     answer,
		Outcome:    outcome,
		Strategy:   strategy,
	}
}

// greeting accepts the configured greeting tag when any user token is
// whitelisted. The score is the share of distinct user tokens that are greetings.
func (e *Engine) greeting(q Query) (string, float64, bool) {
	if len(e.greetings) == 0 || e.cfg.GreetingTag == "" || len(q.Set) == 0 {
		return "", 0, false
	}
	if _, ok := e.responses[e.cfg.GreetingTag]; !ok {
		return "", 0, false
	}
	hits := 0
	for t := range q.Set {
		if _, ok := e.greetings[t]; ok {
			hits++
		}
	}
	if hits == 0 {
		return "", 0, false
	}
	return e.cfg.GreetingTag, float64(hits) / float64(len(q.Set)), true
}

func clamp(v float64) float64 {
	switch {
	case math.IsNaN(v), v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
