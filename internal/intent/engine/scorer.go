package engine

import (
	"fmt"
	"strings"

	"ecoavobot/pkg/textnorm"
	"ecoavobot/pkg/tfidf"
)

// Strategy names accepted by Config.
const (
	StrategyVector  = "vector"
	StrategyKeyword = "keyword"
	StrategyNone    = "none"
)

// Entry is one indexed (intent, pattern) pair. Built once, never mutated.
type Entry struct {
	Text   string
	Tag    string
	Tokens map[string]struct{}
	Vector tfidf.Vector
}

// Query is a message prepared once and shared by every scorer.
type Query struct {
	Text   string
	Tokens []string
	Set    map[string]struct{}
}

// NewQuery normalizes message into a Query.
func NewQuery(message string) Query {
	text := textnorm.Normalize(message)
	tokens := strings.Fields(text)
	set := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		set[t] = struct{}{}
	}
	return Query{Text: text, Tokens: tokens, Set: set}
}

// Candidate is the best entry a scorer found. Index is -1 when nothing scored above zero.
type Candidate struct {
	Index int
	Tag   string
	Score float64
}

func noCandidate() Candidate {
	return Candidate{Index: -1}
}

// Scorer ranks the indexed entries against a query.
type Scorer interface {
	Name() string
	// Best returns the highest scoring entry. Ties go to the first entry in catalog order.
	Best(q Query) Candidate
}

func newScorer(name string, model *tfidf.Model, entries []Entry) (Scorer, error) {
	switch name {
	case StrategyVector:
		return newVectorScorer(model, entries), nil
	case StrategyKeyword:
		return newKeywordScorer(entries), nil
	default:
		return nil, fmt.Errorf("unknown scoring strategy %q", name)
	}
}

// best walks entries in order and keeps the first strict maximum above zero.
func best(entries []Entry, score func(Entry) float64) Candidate {
	c := noCandidate()
	for i, e := range entries {
		s := score(e)
		if s > c.Score {
			c = Candidate{Index: i, Tag: e.Tag, Score: s}
		}
	}
	return c
}
