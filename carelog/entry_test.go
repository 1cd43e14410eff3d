package carelog

import (
	"testing"
	"time"

	"care-lab/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestValidateEntry(t *testing.T) {
	req := require.New(t)

	tests := []struct {
		name    string
		request EntryRequest
		wantErr bool
	}{
		{
			name:    "Valid minimal entry",
			request: EntryRequest{Severity: 5, Observed: "slept badly, very restless"},
			wantErr: false,
		},
		{
			name:    "Observed is mandatory",
			request: EntryRequest{Severity: 5},
			wantErr: true,
		},
		{
			name:    "Whitespace-only observation rejected",
			request: EntryRequest{Severity: 5, Observed: "   \n"},
			wantErr: true,
		},
		{
			name:    "Severity above scale",
			request: EntryRequest{Severity: 11, Observed: "restless"},
			wantErr: true,
		},
		{
			name:    "Severity below scale",
			request: EntryRequest{Severity: -1, Observed: "restless"},
			wantErr: true,
		},
		{
			name: "Full entry",
			request: EntryRequest{
				PersonName:   "Marie",
				Relationship: "daughter",
				Severity:     7,
				Observed:     "refused lunch and dinner",
				Notes:        "started after the new routine",
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEntry(tt.request)
			if tt.wantErr {
				req.Error(err)
			} else {
				req.NoError(err)
			}
		})
	}
}

func TestRender(t *testing.T) {
	req := require.New(t)
	at := time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)

	t.Run("Full entry keeps every field", func(t *testing.T) {
		note := Render(domain.CareLogEntry{
			ID:           uuid.New(),
			PersonName:   "Marie",
			Relationship: "daughter",
			Severity:     7,
			Observed:     "refused lunch and dinner",
			Notes:        "started after the new routine",
			At:           at,
		})
		req.Contains(note, "## Care Log Entry (2025-03-14 09:30)")
		req.Contains(note, "**Person:** Marie")
		req.Contains(note, "**Relationship:** daughter")
		req.Contains(note, "**Severity (caregiver-rated):** 7/10")
		req.Contains(note, "### What I observed\nrefused lunch and dinner")
		req.Contains(note, "### Extra notes\nstarted after the new routine")
	})

	t.Run("Blank optional fields render as N/A", func(t *testing.T) {
		note := Render(domain.CareLogEntry{
			ID:       uuid.New(),
			Severity: 5,
			Observed: "restless night",
			At:       at,
		})
		req.Contains(note, "**Person:** N/A")
		req.Contains(note, "**Relationship:** N/A")
		req.Contains(note, "### Extra notes\nN/A")
	})
}

func TestNewEntry(t *testing.T) {
	req := require.New(t)

	entry := NewEntry("session-1", EntryRequest{
		PersonName: "  Marie  ",
		Severity:   4,
		Observed:   "  fell in the kitchen  ",
	}, []string{"Head injury"})

	req.Equal("session-1", entry.SessionID)
	req.Equal("Marie", entry.PersonName)
	req.Equal("fell in the kitchen", entry.Observed)
	req.Equal([]string{"Head injury"}, entry.RedFlags)
	req.NotEqual(uuid.Nil, entry.ID)
	req.False(entry.At.IsZero())
}
