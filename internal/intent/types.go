package intent

import (
	"fmt"
	"strings"
)

// --- Catalog ---

// Intent is a named category of user request with example phrasings and candidate replies.
type Intent struct {
	Tag       string   `json:"tag"       yaml:"tag"`
	Patterns  []string `json:"patterns"  yaml:"patterns"`
	Responses []string `json:"responses" yaml:"responses"`
}

// Catalog is the full set of intents, in file order.
type Catalog struct {
	Intents []Intent `json:"intents" yaml:"intents"`
}

// Validate checks the static schema: unique non-empty tags, at least one
// non-blank pattern and response per intent.
func (c Catalog) Validate() error {
	seen := make(map[string]struct{}, len(c.Intents))
	for i, it := range c.Intents {
		tag := strings.TrimSpace(it.Tag)
		if tag == "" {
			return fmt.Errorf("%w: intent %d has no tag", ErrInvalidCatalog, i)
		}
		if _, dup := seen[tag]; dup {
			return fmt.Errorf("%w: duplicate tag %q", ErrInvalidCatalog, tag)
		}
		seen[tag] = struct{}{}

		if len(it.Patterns) == 0 {
			return fmt.Errorf("%w: intent %q has no patterns", ErrInvalidCatalog, tag)
		}
		for j, p := range it.Patterns {
			if strings.TrimSpace(p) == "" {
				return fmt.Errorf("%w: pattern %d of intent %q is blank", ErrInvalidCatalog, j, tag)
			}
		}

		if len(it.Responses) == 0 {
			return fmt.Errorf("%w: intent %q has no responses", ErrInvalidCatalog, tag)
		}
		for j, r := range it.Responses {
			if strings.TrimSpace(r) == "" {
				return fmt.Errorf("%w: response %d of intent %q is blank", ErrInvalidCatalog, j, tag)
			}
		}
	}
	return nil
}

// PatternCount returns the number of patterns across all intents.
func (c Catalog) PatternCount() int {
	n := 0
	for _, it := range c.Intents {
		n += len(it.Patterns)
	}
	return n
}

// Messages are the generic replies used when no intent response applies.
type Messages struct {
	Empty         string
	TooShort      string
	Fallback      string
	Apology       string
	InternalError string
}

// Outcome says which branch of classification produced a result.
type Outcome string

const (
	OutcomeMatched         Outcome = "matched"
	OutcomeFallbackMatched Outcome = "fallback_matched"
	OutcomeGreetingMatched Outcome = "greeting_matched"
	OutcomeUnresolved      Outcome = "unresolved"
	OutcomeEmptyMessage    Outcome = "empty_message"
	OutcomeTooShort        Outcome = "too_short"
	OutcomeInternalError   Outcome = "internal_error"
)

// --- UseCase Inputs ---

type ClassifyInput struct {
	Message string
}

type ListIntentsInput struct {
	Query string
}

// --- UseCase Outputs ---

// ClassifyOutput is the classify(message) contract. Tag is empty when unresolved.
type ClassifyOutput struct {
	Tag        string
	Confidence float64
	Answer     string
	Outcome    Outcome
	Strategy   string
}

// Resolved reports whether an intent was chosen.
func (o ClassifyOutput) Resolved() bool {
	return o.Tag != ""
}

type IntentSummary struct {
	Tag           string
	PatternCount  int
	ResponseCount int
}

type ListIntentsOutput struct {
	Intents []IntentSummary
	Total   int
}

type ReloadOutput struct {
	Intents  int
	Patterns int
}
