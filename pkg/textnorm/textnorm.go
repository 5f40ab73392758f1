// Package textnorm turns free text into the canonical form used for matching:
// lowercase, punctuation (except apostrophes) replaced by spaces, whitespace
// collapsed.
package textnorm

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// nonWord matches anything that is not a letter, mark, digit, underscore,
// whitespace or apostrophe. RE2's \w is ASCII only, so the classes are spelled out.
var nonWord = regexp.MustCompile(`[^\p{L}\p{M}\p{N}_\s']+`)

var apostrophes = strings.NewReplacer("’", "'", "‘", "'", "ʼ", "'")

// Normalize returns the canonical form of s. It is idempotent.
func Normalize(s string) string {
	if s == "" {
		return ""
	}

	// cases.Caser is stateful, one per call.
	s = cases.Lower(language.Und).String(s)
	s = norm.NFC.String(s)
	s = apostrophes.Replace(s)
	s = nonWord.ReplaceAllString(s, " ")

	return strings.Join(strings.Fields(s), " ")
}

// Tokens returns the whitespace separated tokens of Normalize(s), in order.
func Tokens(s string) []string {
	return strings.Fields(Normalize(s))
}

// TokenSet returns the distinct tokens of Normalize(s).
func TokenSet(s string) map[string]struct{} {
	tokens := Tokens(s)
	set := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		set[t] = struct{}{}
	}
	return set
}
