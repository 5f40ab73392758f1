package engine

import "ecoavobot/pkg/tfidf"

// vectorScorer scores by TF-IDF cosine similarity.
type vectorScorer struct {
	model   *tfidf.Model
	entries []Entry
}

func newVectorScorer(model *tfidf.Model, entries []Entry) *vectorScorer {
	return &vectorScorer{model: model, entries: entries}
}

func (s *vectorScorer) Name() string { return StrategyVector }

func (s *vectorScorer) Best(q Query) Candidate {
	vec := s.model.Vector(q.Tokens)
	if len(vec) == 0 {
		return noCandidate()
	}
	return best(s.entries, func(e Entry) float64 {
		return tfidf.Cosine(vec, e.Vector)
	})
}
