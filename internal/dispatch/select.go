package dispatch

import (
	"unicode/utf8"

	"lifecompass/internal/intent"
)

// Message length thresholds, in runes, for unclassified messages.
const (
	shortMessage = 50
	longMessage  = 200
)

var preferredTier = map[intent.Intent]Tier{
	intent.CareerGuidance: Structured,
	intent.Roadmap:        Structured,
	intent.SkillAnalysis:  Structured,
	intent.ResumeCoaching: Structured,
	intent.InterviewPrep:  Structured,
	intent.CasualChat:     Conversational,
	intent.QuickSummary:   Quick,
	intent.Clarification:  Quick,
}

// SelectTier maps an intent to its preferred tier. Intents without an entry
// are routed by message length: short to Quick, long to Structured, the rest
// to Conversational.
func SelectTier(in intent.Intent, messageLength int) Tier {
	if tier, ok := preferredTier[in]; ok {
		return tier
	}
	switch {
	case messageLength < shortMessage:
		return Quick
	case messageLength > longMessage:
		return Structured
	default:
		return Conversational
	}
}

func messageLength(s string) int {
	return utf8.RuneCountInString(s)
}
