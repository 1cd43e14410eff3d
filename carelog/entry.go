// Package carelog builds structured, copy-paste friendly observation notes.
// Entries carry no medical claims; they exist so a caregiver can hand a
// clean record to family or a care team.
package carelog

import (
	"fmt"
	"strings"
	"time"

	"care-lab/domain"
	careerrors "care-lab/errors"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var validate = validator.New()

// EntryRequest is the raw form submission for a care log entry.
// Observed is the only mandatory field; severity is caregiver-rated.
type EntryRequest struct {
	PersonName   string `validate:"max=120"`
	Relationship string `validate:"max=120"`
	Severity     int    `validate:"min=0,max=10"`
	Observed     string `validate:"required"`
	Notes        string `validate:"max=4000"`
}

func ValidateEntry(req EntryRequest) error {
	if err := validate.Struct(req); err != nil {
		return err
	}
	// "required" lets whitespace-only through; an all-blank observation is
	// still an empty one.
	if strings.TrimSpace(req.Observed) == "" {
		return careerrors.ErrEmptyConcern
	}
	return nil
}

// NewEntry stamps a validated request into an immutable domain entry.
// redFlags comes from running the triage rules over the observed text.
func NewEntry(sessionID string, req EntryRequest, redFlags []string) domain.CareLogEntry {
	return domain.CareLogEntry{
		ID:           uuid.New(),
		SessionID:    sessionID,
		PersonName:   strings.TrimSpace(req.PersonName),
		Relationship: strings.TrimSpace(req.Relationship),
		Severity:     req.Severity,
		Observed:     strings.TrimSpace(req.Observed),
		Notes:        strings.TrimSpace(req.Notes),
		RedFlags:     redFlags,
		At:           time.Now().UTC(),
	}
}

// Render produces the markdown note for an entry. Blank optional fields
// render as "N/A" so the note keeps a stable shape.
func Render(entry domain.CareLogEntry) string {
	var b strings.Builder

	fmt.Fprintf(&b, "## Care Log Entry (%s)\n\n", entry.At.Format("2006-01-02 15:04"))
	fmt.Fprintf(&b, "**Person:** %s  \n", orNA(entry.PersonName))
	fmt.Fprintf(&b, "**Relationship:** %s  \n", orNA(entry.Relationship))
	fmt.Fprintf(&b, "**Severity (caregiver-rated):** %d/10  \n\n", entry.Severity)
	fmt.Fprintf(&b, "### What I observed\n%s\n\n", orNA(entry.Observed))
	fmt.Fprintf(&b, "### Extra notes\n%s\n", orNA(entry.Notes))

	return b.String()
}

func orNA(s string) string {
	if strings.TrimSpace(s) == "" {
		return "N/A"
	}
	return s
}
