package dispatch

import "lifecompass/internal/intent"

const defaultApology = "I'm here to help with your career questions! I'm experiencing some technical issues right now, but please try asking again in a moment."

var apologies = map[intent.Intent]string{
	intent.CareerGuidance: "I'm here to help with your career guidance! However, I'm experiencing some technical difficulties right now. Could you please try asking your question again in a moment?",
	intent.InterviewPrep:  "I'd love to help you prepare for interviews! I'm having some connection issues at the moment. Please try again shortly, and I'll provide you with detailed interview preparation strategies.",
	intent.SkillAnalysis:  "I can help analyze your skills and suggest improvements! I'm currently unable to access my full capabilities. Please retry your question in a moment.",
}

// Apology returns the static reply used when no tier could answer.
func Apology(in intent.Intent) string {
	if s, ok := apologies[in]; ok {
		return s
	}
	return defaultApology
}
