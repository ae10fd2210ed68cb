// Package intent classifies free-text chat messages into a fixed set of
// query intents using keyword rules.
package intent

import "strings"

// Intent is the classified purpose of a chat message. The zero value means
// the message has not been classified.
type Intent string

const (
	CareerGuidance Intent = "career_guidance"
	Roadmap        Intent = "roadmap"
	ResumeCoaching Intent = "resume_coaching"
	SkillAnalysis  Intent = "skill_analysis"
	InterviewPrep  Intent = "interview_prep"
	CasualChat     Intent = "casual_chat"
	QuickSummary   Intent = "quick_summary"
	Clarification  Intent = "clarification"
)

// All lists every intent in classification priority order, followed by the
// default.
var All = []Intent{
	CareerGuidance,
	Roadmap,
	ResumeCoaching,
	SkillAnalysis,
	InterviewPrep,
	QuickSummary,
	Clarification,
	CasualChat,
}

func (i Intent) String() string {
	if i == "" {
		return "unclassified"
	}
	return string(i)
}

type rule struct {
	intent Intent
	// every group must have at least one keyword present
	groups [][]string
}

// rules are evaluated top to bottom; the first match wins.
var rules = []rule{
	{CareerGuidance, [][]string{{"career"}, {"path", "guidance", "advice"}}},
	{Roadmap, [][]string{{"roadmap", "learning plan", "study plan"}}},
	{ResumeCoaching, [][]string{{"resume", "cv"}}},
	{SkillAnalysis, [][]string{{"skill"}, {"gap", "analysis", "improve"}}},
	{InterviewPrep, [][]string{{"interview", "preparation", "questions"}}},
	{QuickSummary, [][]string{{"summary", "summarize", "brief"}}},
	{Clarification, [][]string{{"what", "how", "explain"}}},
}

// Classify maps message to an intent. It never fails: messages matching no
// rule are CasualChat.
func Classify(message string) Intent {
	lower := strings.ToLower(message)
	for _, r := range rules {
		if r.matches(lower) {
			return r.intent
		}
	}
	return CasualChat
}

func (r rule) matches(lower string) bool {
	for _, group := range r.groups {
		if !containsAny(lower, group) {
			return false
		}
	}
	return true
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}
