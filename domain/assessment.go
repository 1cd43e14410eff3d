// Package domain contains core concepts of the caregiver support service.
// Assessments are immutable snapshots produced by the triage rules.
package domain

// Assessment is the rule-based outcome for a single concern text.
type Assessment struct {
	RedFlags    []string // sorted, de-duplicated red-flag labels
	Suggestions []string // supportive suggestions in rule order
	Urgent      bool     // true when at least one red flag matched
	Lang        string   // ISO 639-1 code of the detected input language
}
