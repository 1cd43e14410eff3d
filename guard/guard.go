// Package guard screens outbound text for medication or diagnostic advice.
// The service must never emit such wording; the guard is the enforcement
// point for that property, and Redact is the last step before display.
package guard

import (
	"log/slog"
	"unicode"

	careerrors "care-lab/errors"

	goahocorasick "github.com/anknown/ahocorasick"
)

type Guard struct {
	matcher     *goahocorasick.Machine
	replacement rune
	log         *slog.Logger
}

// textIndex is a normalized view of an input with a mapping back to the
// original rune positions, so redaction can hit the exact original spans.
type textIndex struct {
	normalized []rune
	origIdx    []int
}

// NewGuard builds the Aho-Corasick automaton over the normalized forbidden
// phrases. Phrases that normalize to nothing (pure punctuation) are dropped.
func NewGuard(phrases []string, replacement rune, log *slog.Logger) (Guard, error) {
	patterns := make([][]rune, 0, len(phrases))
	for _, phrase := range phrases {
		normalized := normalizeRunes([]rune(phrase))
		if len(normalized) == 0 {
			continue
		}
		patterns = append(patterns, normalized)
	}
	if len(patterns) == 0 {
		return Guard{}, careerrors.ErrEmptyDictionary
	}

	m := new(goahocorasick.Machine)
	if err := m.Build(patterns); err != nil {
		return Guard{}, err
	}
	return Guard{matcher: m, replacement: replacement, log: log}, nil
}

// Scan returns every forbidden phrase occurrence found in the text,
// in normalized form. A nil result means the text is clean.
func (g *Guard) Scan(text string) []string {
	idx := g.index(text)
	if len(idx.normalized) == 0 {
		return nil
	}

	spans := g.matcher.MultiPatternSearch(idx.normalized, false)
	if len(spans) == 0 {
		return nil
	}

	found := make([]string, 0, len(spans))
	for _, span := range spans {
		found = append(found, string(span.Word))
	}
	return found
}

// Redact replaces every forbidden span with the replacement rune while
// preserving the surrounding spacing, and reports what was found.
func (g *Guard) Redact(text string) (string, []string) {
	idx := g.index(text)
	if len(idx.normalized) == 0 {
		return text, nil
	}

	spans := g.matcher.MultiPatternSearch(idx.normalized, false)
	if len(spans) == 0 {
		return text, nil
	}

	origRunes := []rune(text)
	found := make([]string, 0, len(spans))
	for _, span := range spans {
		normStart := span.Pos
		normEnd := normStart + len(span.Word)
		if normStart < 0 || normEnd > len(idx.origIdx) {
			continue
		}
		found = append(found, string(span.Word))

		origStart := idx.origIdx[normStart]
		origEnd := idx.origIdx[normEnd-1] + 1
		for i := origStart; i < origEnd; i++ {
			origRunes[i] = g.replacement
		}
	}

	g.log.Warn("Forbidden advice wording redacted", "count", len(found))
	return string(origRunes), found
}

// index normalizes the input and records where each kept rune came from.
func (g *Guard) index(input string) textIndex {
	origRunes := []rune(input)
	idx := textIndex{
		normalized: make([]rune, 0, len(origRunes)),
		origIdx:    make([]int, 0, len(origRunes)),
	}
	for i, r := range origRunes {
		clean := simplifyRune(r)
		if isNoise(clean) {
			continue
		}
		idx.normalized = append(idx.normalized, unicode.ToLower(clean))
		idx.origIdx = append(idx.origIdx, i)
	}
	return idx
}

func normalizeRunes(input []rune) []rune {
	out := make([]rune, 0, len(input))
	for _, r := range input {
		clean := simplifyRune(r)
		if isNoise(clean) {
			continue
		}
		out = append(out, unicode.ToLower(clean))
	}
	return out
}

// simplifyRune maps common Leet speak characters back to their standard
// alphabet counterparts, so "4spirin" still trips the guard.
func simplifyRune(r rune) rune {
	switch r {
	case '4', '@':
		return 'a'
	case '3', '€':
		return 'e'
	case '1', '!', '|':
		return 'i'
	case '0':
		return 'o'
	case '5', '$':
		return 's'
	default:
		return r
	}
}

// isNoise identifies characters ignored during pattern matching.
func isNoise(r rune) bool {
	return unicode.IsPunct(r) || unicode.IsSpace(r) || unicode.IsSymbol(r)
}
