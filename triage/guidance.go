package triage

// Static guidance texts shown alongside assessments. All of it is general,
// non-diagnostic wording; the guard test sweeps every string below.

// DisclaimerLines is displayed on every page of the UI.
var DisclaimerLines = []string{
	"Demo-only caregiver support tool (non-diagnostic).",
	"This app does not provide medical diagnosis or treatment.",
	"It does not recommend starting, stopping, or changing medications.",
	"If you think there is an emergency, call your local emergency number immediately.",
}

// UrgentHeadline introduces the guidance block when red flags matched.
const UrgentHeadline = "Possible emergency (red flag) detected. Based on the text you entered, this may need urgent attention."

// UrgentSteps is the what-to-do-now list for a red-flag result.
var UrgentSteps = []string{
	"If the person is in immediate danger or you suspect stroke, heart attack, or severe breathing trouble: call emergency services now.",
	"If unsure, contact a local nurse line, urgent care, or clinician for guidance.",
	"Stay with the person if it is safe to do so.",
}

// NonUrgentHeadline introduces the guidance block when no red flag matched.
const NonUrgentHeadline = "No emergency keywords detected (based on simple rules). This does not mean everything is fine; this tool is limited and rule-based."

// NonUrgentSteps is the helpful-next-steps list for a calm result.
var NonUrgentSteps = []string{
	"Monitor changes and write down what you observe (time, triggers, what helps).",
	"Consider contacting the person's clinician if symptoms are new, worsening, or concerning.",
	"Focus on comfort, hydration, rest, and safety in the environment (as appropriate).",
}

// EnglishOnlyNotice is shown when the detected input language is not English,
// since the rule tables only know English keywords.
const EnglishOnlyNotice = "The keyword rules only cover English. Results for other languages are unreliable."
