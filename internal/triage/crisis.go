package triage

import "strings"

// crisisPhrases are matched as case-insensitive substrings. The list is a
// superset check performed before any classification or model call; callers
// must short-circuit on a hit.
var crisisPhrases = []string{
	"suicide",
	"kill myself",
	"end my life",
	"want to die",
	"harm myself",
	"self harm",
	"cutting",
	"no reason to live",
	"better off without me",
	"can't go on",
	"give up",
}

// CrisisResponse is the fixed reply returned when crisis intent is detected.
const CrisisResponse = "I'm really concerned about what you're saying. Your safety is the most important thing right now."

// DetectCrisis reports whether the message expresses self-harm or suicide
// intent. It is a pure predicate: empty input returns false.
func DetectCrisis(message string) bool {
	if message == "" {
		return false
	}

	lower := strings.ToLower(message)
	for _, phrase := range crisisPhrases {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	return false
}
