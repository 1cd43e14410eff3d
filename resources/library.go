// Package resources holds the static plan & resources library and its
// in-memory search index. Content is general caregiver guidance only.
package resources

import "care-lab/domain"

// Library returns the built-in resource documents, in display order.
func Library() []domain.Resource {
	return []domain.Resource{
		{
			ID:    "caregiver-plan",
			Title: "A simple caregiver plan",
			Body: "Safety first: prevent falls, keep walkways clear, supervise if needed. " +
				"Observe and write it down: when it started, what changed, what helps or worsens. " +
				"Communicate: share the log with family and the care team. " +
				"Escalate when needed: new or worsening symptoms, red flags, or caregiver intuition.",
			Tags: []string{"plan", "safety"},
		},
		{
			ID:    "comfort-checklist",
			Title: "Comfort checklist",
			Body: "Water and fluids available (if safe). Comfortable position and temperature. " +
				"Noise and light reduced. Med list and emergency contacts accessible. " +
				"Recent changes noted (sleep, food, routine, stress).",
			Tags: []string{"checklist", "comfort"},
		},
		{
			ID:    "observation-tips",
			Title: "Observation log tips",
			Body: "Note the time things start and stop. Record triggers, what helped, and what changed today. " +
				"Short, dated notes are easier to share with a care team than memory.",
			Tags: []string{"log", "observation"},
		},
		{
			ID:    "emergency-reminders",
			Title: "Emergency reminders",
			Body: "If severe breathing trouble, chest pain or pressure, stroke signs, seizure, " +
				"uncontrolled bleeding, or unresponsiveness: call emergency services.",
			Tags: []string{"emergency"},
		},
	}
}
