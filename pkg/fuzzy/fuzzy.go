// Package fuzzy wraps sahilm/fuzzy for ranking short identifiers such as intent tags.
package fuzzy

import "github.com/sahilm/fuzzy"

// Match is a single ranked hit.
type Match struct {
	Str   string
	Index int
	Score int
}

// Filter ranks items against pattern, best first. An empty pattern keeps
// every item in its original order.
func Filter(pattern string, items []string) []Match {
	if pattern == "" {
		matches := make([]Match, len(items))
		for i, item := range items {
			matches[i] = Match{Str: item, Index: i}
		}
		return matches
	}

	results := fuzzy.Find(pattern, items)
	matches := make([]Match, len(results))
	for i, r := range results {
		matches[i] = Match{Str: r.Str, Index: r.Index, Score: r.Score}
	}
	return matches
}
