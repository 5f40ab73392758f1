package engine

// keywordScorer scores by the share of user tokens found in a pattern:
// |user ∩ pattern| / max(|user|, 1).
type keywordScorer struct {
	entries []Entry
}

func newKeywordScorer(entries []Entry) *keywordScorer {
	return &keywordScorer{entries: entries}
}

func (s *keywordScorer) Name() string { return StrategyKeyword }

func (s *keywordScorer) Best(q Query) Candidate {
	if len(q.Set) == 0 {
		return noCandidate()
	}
	denom := float64(len(q.Set))
	return best(s.entries, func(e Entry) float64 {
		return float64(overlap(q.Set, e.Tokens)) / denom
	})
}

func overlap(a, b map[string]struct{}) int {
	if len(b) < len(a) {
		a, b = b, a
	}
	n := 0
	for t := range a {
		if _, ok := b[t]; ok {
			n++
		}
	}
	return n
}
