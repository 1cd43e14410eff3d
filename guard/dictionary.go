package guard

// DefaultForbiddenPhrases is the conservative dictionary of advice wording
// the service is never allowed to emit. It covers dosage instructions,
// named over-the-counter drugs, and diagnostic claims.
func DefaultForbiddenPhrases() []string {
	return []string{
		// Medication instructions
		"take aspirin",
		"give aspirin",
		"take ibuprofen",
		"give ibuprofen",
		"take paracetamol",
		"take acetaminophen",
		"increase the dose",
		"decrease the dose",
		"double the dose",
		"adjust the dose",
		"skip the dose",
		"stop the medication",
		"start the medication",
		"stop taking your",
		"start taking your",
		// Diagnostic claims
		"the diagnosis is",
		"you are diagnosed",
		"this is definitely a stroke",
		"this is definitely a heart attack",
		"no need to see a doctor",
	}
}
