// Package tfidf implements a small TF-IDF term weighting model over
// pre-tokenized documents and cosine similarity between sparse vectors.
//
// Weights:
//
//	tf(t, d)  = count(t in d) / len(d)
//	idf(t)    = 1 + ln(N / (df(t) + 1))
//	w(t, d)   = tf(t, d) * idf(t)
//
// The vocabulary and idf table are fixed by Fit. Terms unseen at fit time
// weigh zero in Vector.
package tfidf

import (
	"math"
	"sort"
)

// Vector is a sparse term -> weight mapping.
type Vector map[string]float64

// Model holds the idf table computed over a fixed corpus.
type Model struct {
	idf  map[string]float64
	docs int
}

// Fit builds a Model from the given documents.
func Fit(docs [][]string) *Model {
	df := make(map[string]int)
	for _, doc := range docs {
		seen := make(map[string]struct{}, len(doc))
		for _, term := range doc {
			if _, ok := seen[term]; ok {
				continue
			}
			seen[term] = struct{}{}
			df[term]++
		}
	}

	n := float64(len(docs))
	idf := make(map[string]float64, len(df))
	for term, count := range df {
		idf[term] = 1 + math.Log(n/float64(count+1))
	}

	return &Model{idf: idf, docs: len(docs)}
}

// Documents returns the number of documents the model was fit on.
func (m *Model) Documents() int {
	return m.docs
}

// IDF returns the inverse document frequency of term, 0 when unseen.
func (m *Model) IDF(term string) float64 {
	return m.idf[term]
}

// Vocabulary returns the fitted terms in lexical order.
func (m *Model) Vocabulary() []string {
	terms := make([]string, 0, len(m.idf))
	for term := range m.idf {
		terms = append(terms, term)
	}
	sort.Strings(terms)
	return terms
}

// Vector weighs tokens against the fixed vocabulary. Unseen terms still count
// toward the tf denominator but are left out of the result.
func (m *Model) Vector(tokens []string) Vector {
	if len(tokens) == 0 {
		return Vector{}
	}

	counts := make(map[string]int, len(tokens))
	for _, t := range tokens {
		counts[t]++
	}

	total := float64(len(tokens))
	vec := make(Vector, len(counts))
	for term, count := range counts {
		idf, ok := m.idf[term]
		if !ok {
			continue
		}
		vec[term] = (float64(count) / total) * idf
	}
	return vec
}

// Norm returns the euclidean length of v.
func Norm(v Vector) float64 {
	var sum float64
	for _, w := range v {
		sum += w * w
	}
	return math.Sqrt(sum)
}

// Dot returns the dot product of a and b.
func Dot(a, b Vector) float64 {
	if len(b) < len(a) {
		a, b = b, a
	}
	var sum float64
	for term, w := range a {
		sum += w * b[term]
	}
	return sum
}

// Cosine returns dot(a,b) / (|a||b|), or 0 when either norm is 0.
// The result is clamped to [0, 1].
func Cosine(a, b Vector) float64 {
	na, nb := Norm(a), Norm(b)
	if na == 0 || nb == 0 {
		return 0
	}
	return clamp(Dot(a, b) / (na * nb))
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
