// Package engine is the immutable intent matching engine: a TF-IDF index over
// the catalog patterns, pluggable scorers and the threshold/fallback policy.
//
// An Engine is built once from a validated catalog and is safe for
// concurrent use; nothing in it is written after New returns.
package engine

import (
	"fmt"
	"strings"

	"ecoavobot/internal/intent"
	"ecoavobot/pkg/textnorm"
	"ecoavobot/pkg/tfidf"
)

// Config selects strategies and thresholds for an Engine.
type Config struct {
	Strategy          string
	FallbackStrategy  string
	Threshold         float64
	FallbackThreshold float64
	MinMessageLength  int
	GreetingTag       string
	GreetingKeywords  []string
	Messages          intent.Messages
	Selector          Selector
}

// DefaultConfig mirrors the original service: TF-IDF cosine at 0.3 with a
// keyword overlap fallback.
func DefaultConfig() Config {
	return Config{
		Strategy:          StrategyVector,
		FallbackStrategy:  StrategyKeyword,
		Threshold:         0.3,
		FallbackThreshold: 0,
		MinMessageLength:  2,
		GreetingTag:       "greeting",
		GreetingKeywords:  []string{"ciao", "salve", "buongiorno", "buonasera", "hey", "hello", "hi"},
		Messages:          intent.DefaultMessages(),
	}
}

func (c Config) validate() error {
	if c.Threshold <= 0 || c.Threshold > 1 {
		return fmt.Errorf("threshold must be in (0, 1], got %v", c.Threshold)
	}
	if c.FallbackThreshold < 0 || c.FallbackThreshold >= 1 {
		return fmt.Errorf("fallback threshold must be in [0, 1), got %v", c.FallbackThreshold)
	}
	if c.MinMessageLength < 2 {
		return fmt.Errorf("min message length must be at least 2, got %d", c.MinMessageLength)
	}
	if c.Strategy == StrategyNone || c.Strategy == "" {
		return fmt.Errorf("primary strategy is required")
	}
	return nil
}

// Engine is the immutable matching engine.
type Engine struct {
	cfg       Config
	catalog   intent.Catalog
	responses map[string][]string
	entries   []Entry
	model     *tfidf.Model
	primary   Scorer
	fallback  Scorer
	greetings map[string]struct{}
}

// New indexes catalog. The catalog must pass Validate.
func New(catalog intent.Catalog, cfg Config) (*Engine, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if err := catalog.Validate(); err != nil {
		return nil, err
	}

	cfg.Messages = cfg.Messages.WithDefaults()
	if cfg.Selector == nil {
		cfg.Selector = NewRandomSelector(0)
	}

	e := &Engine{
		cfg:       cfg,
		catalog:   catalog,
		responses: make(map[string][]string, len(catalog.Intents)),
		entries:   make([]Entry, 0, catalog.PatternCount()),
		greetings: make(map[string]struct{}, len(cfg.GreetingKeywords)),
	}

	docs := make([][]string, 0, catalog.PatternCount())
	for _, it := range catalog.Intents {
		e.responses[it.Tag] = it.Responses
		for _, p := range it.Patterns {
			tokens := textnorm.Tokens(p)
			docs = append(docs, tokens)
			set := make(map[string]struct{}, len(tokens))
			for _, t := range tokens {
				set[t] = struct{}{}
			}
			e.entries = append(e.entries, Entry{
				Text:   strings.Join(tokens, " "),
				Tag:    it.Tag,
				Tokens: set,
			})
		}
	}

	e.model = tfidf.Fit(docs)
	for i := range e.entries {
		e.entries[i].Vector = e.model.Vector(docs[i])
	}

	var err error
	if e.primary, err = newScorer(cfg.Strategy, e.model, e.entries); err != nil {
		return nil, err
	}
	if cfg.FallbackStrategy != "" && cfg.FallbackStrategy != StrategyNone {
		if e.fallback, err = newScorer(cfg.FallbackStrategy, e.model, e.entries); err != nil {
			return nil, err
		}
	}

	for _, kw := range cfg.GreetingKeywords {
		if norm := textnorm.Normalize(kw); norm != "" {
			e.greetings[norm] = struct{}{}
		}
	}

	return e, nil
}

// Intents returns the indexed intents in catalog order.
func (e *Engine) Intents() []intent.Intent {
	out := make([]intent.Intent, len(e.catalog.Intents))
	copy(out, e.catalog.Intents)
	return out
}

// Entries returns the number of indexed patterns.
func (e *Engine) Entries() int {
	return len(e.entries)
}

// Model exposes the fitted TF-IDF model for diagnostics.
func (e *Engine) Model() *tfidf.Model {
	return e.model
}

// Strategies returns the primary and fallback scorer names; fallback is
// StrategyNone when disabled.
func (e *Engine) Strategies() (string, string) {
	if e.fallback == nil {
		return e.primary.Name(), StrategyNone
	}
	return e.primary.Name(), e.fallback.Name()
}
