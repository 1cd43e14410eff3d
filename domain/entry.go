package domain

import (
	"time"

	"github.com/google/uuid"
)

// CareLogEntry is a structured observation note a caregiver can share
// with a care team. It makes no medical claims.
type CareLogEntry struct {
	ID           uuid.UUID `json:"id"`
	SessionID    string    `json:"session_id"`
	PersonName   string    `json:"person_name"`
	Relationship string    `json:"relationship"`
	Severity     int       `json:"severity"` // caregiver-rated, 0..10
	Observed     string    `json:"observed"`
	Notes        string    `json:"notes"`
	RedFlags     []string  `json:"red_flags,omitempty"`
	At           time.Time `json:"at"`
}
