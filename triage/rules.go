package triage

import "regexp"

// RedFlagRule maps a conservative keyword pattern to a short label.
// Patterns stay simple on purpose: this is a screening aid, not a classifier.
type RedFlagRule struct {
	Pattern *regexp.Regexp
	Label   string
}

// SuggestionRule maps a keyword pattern to a general, non-medical suggestion.
type SuggestionRule struct {
	Pattern *regexp.Regexp
	Text    string
}

// FallbackSuggestion is returned when no suggestion rule matches.
const FallbackSuggestion = "Consider logging what you observe (when it started, what changed, what helps). If symptoms worsen or feel concerning, contact a clinician."

var redFlagRules = []RedFlagRule{
	// Breathing / consciousness
	{regexp.MustCompile(`(?i)\b(can't breathe|cannot breathe|trouble breathing|difficulty breathing|shortness of breath|blue lips|turning blue)\b`), "Breathing trouble"},
	{regexp.MustCompile(`(?i)\b(unconscious|not waking|won't wake|passed out|fainted)\b`), "Unresponsive / fainting"},
	{regexp.MustCompile(`(?i)\b(seizure|convulsion|fit)\b`), "Seizure"},
	// Stroke-like
	{regexp.MustCompile(`(?i)\b(face droop|slurred speech|can't speak|weakness on one side|one-sided weakness|sudden numbness)\b`), "Possible stroke signs"},
	// Chest pain
	{regexp.MustCompile(`(?i)\b(chest pain|pressure in chest|tightness in chest)\b`), "Chest pain/pressure"},
	// Severe bleeding / injury
	{regexp.MustCompile(`(?i)\b(heavy bleeding|won't stop bleeding|bleeding won't stop)\b`), "Uncontrolled bleeding"},
	{regexp.MustCompile(`(?i)\b(head injury|hit (his|her|their) head|concussion)\b`), "Head injury"},
	// Suicidal / self-harm language
	{regexp.MustCompile(`(?i)\b(suicide|kill myself|self harm|hurt myself)\b`), "Self-harm risk"},
}

var suggestionRules = []SuggestionRule{
	{regexp.MustCompile(`(?i)\b(confused|confusion|disoriented)\b`), "Confusion can have many causes. Consider checking for recent changes (sleep, hydration, stress, new routines). If sudden or severe, contact a clinician."},
	{regexp.MustCompile(`(?i)\b(fever|high temperature)\b`), "Fever can be a sign of infection. If fever is high, persistent, or with worsening symptoms, contact a clinician."},
	{regexp.MustCompile(`(?i)\b(fall|fell|slipped)\b`), "After a fall, watch for pain, dizziness, confusion, or head injury signs. If there's severe pain, head impact, or worsening symptoms, seek urgent care."},
	{regexp.MustCompile(`(?i)\b(vomiting|throwing up)\b`), "If vomiting is persistent, there are signs of dehydration, or blood appears, contact urgent care/clinician."},
	{regexp.MustCompile(`(?i)\b(dehydrated|dehydration|not drinking)\b`), "Encourage small, frequent sips of water if safe. If the person can't keep fluids down or seems very weak, contact a clinician."},
	{regexp.MustCompile(`(?i)\b(agitated|anxious|panic)\b`), "Try a calm environment, slow breathing, reassurance, and reduce noise. If agitation is severe or unsafe, seek professional help."},
	{regexp.MustCompile(`(?i)\b(pain)\b`), "Track pain location, severity (0-10), start time, and what worsens/relieves it. If severe or sudden, contact a clinician."},
}

// RedFlagRules exposes a copy of the rule table for display tooling.
func RedFlagRules() []RedFlagRule {
	out := make([]RedFlagRule, len(redFlagRules))
	copy(out, redFlagRules)
	return out
}

// SuggestionRules exposes a copy of the rule table for display tooling.
func SuggestionRules() []SuggestionRule {
	out := make([]SuggestionRule, len(suggestionRules))
	copy(out, suggestionRules)
	return out
}
