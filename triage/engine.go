package triage

import (
	"log/slog"
	"sort"
	"strings"

	"care-lab/domain"
	careerrors "care-lab/errors"

	"github.com/abadojack/whatlanggo"
	"github.com/samber/lo"
)

// Engine evaluates concern text against the red-flag and suggestion rules.
// It is stateless and safe for concurrent use by HTTP handlers.
type Engine struct {
	redFlags    []RedFlagRule
	suggestions []SuggestionRule
	log         *slog.Logger
}

func NewEngine(log *slog.Logger) *Engine {
	return &Engine{
		redFlags:    redFlagRules,
		suggestions: suggestionRules,
		log:         log,
	}
}

// FindRedFlags returns the labels of every red-flag rule matching the text,
// sorted and de-duplicated.
func (e *Engine) FindRedFlags(text string) []string {
	var hits []string
	for _, rule := range e.redFlags {
		if rule.Pattern.MatchString(text) {
			hits = append(hits, rule.Label)
		}
	}
	if len(hits) == 0 {
		return nil
	}
	hits = lo.Uniq(hits)
	sort.Strings(hits)
	return hits
}

// Suggest returns the suggestion texts matching the concern, in rule order.
// When nothing matches it returns exactly the general fallback.
func (e *Engine) Suggest(text string) []string {
	var suggestions []string
	for _, rule := range e.suggestions {
		if rule.Pattern.MatchString(text) {
			suggestions = append(suggestions, rule.Text)
		}
	}
	if len(suggestions) == 0 {
		suggestions = append(suggestions, FallbackSuggestion)
	}
	return suggestions
}

// Assess runs the full rule pass over a concern text.
// The text must be non-empty once trimmed; the caller enforces length limits.
func (e *Engine) Assess(text string) (domain.Assessment, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return domain.Assessment{}, careerrors.ErrEmptyConcern
	}

	info := whatlanggo.Detect(trimmed)
	langCode := info.Lang.Iso6391()

	redFlags := e.FindRedFlags(trimmed)
	assessment := domain.Assessment{
		RedFlags:    redFlags,
		Suggestions: e.Suggest(trimmed),
		Urgent:      len(redFlags) > 0,
		Lang:        langCode,
	}

	if assessment.Urgent {
		e.log.Warn("Red flags detected",
			"flags", strings.Join(redFlags, ", "),
			"lang", langCode)
	}
	return assessment, nil
}
