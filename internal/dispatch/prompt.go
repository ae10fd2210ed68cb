package dispatch

import (
	"fmt"
	"strings"

	"lifecompass/internal/domain"
)

// historyLimit bounds the prior turns forwarded to the model.
const historyLimit = 10

const structuredPersona = `You are an expert career advisor for Indian students. Provide structured, step-by-step analysis and detailed recommendations. Focus on:
1. Multi-step career planning
2. Skill gap analysis
3. Detailed roadmaps
4. Interview preparation strategies
5. Resume optimization

Always be thorough and analytical, and provide actionable steps. Use structured formatting with clear sections and bullet points.`

const conversationalPersona = `You are a friendly career counselor for Indian students. Provide natural, conversational responses that are:
- Warm and encouraging
- Easy to understand
- Personalized to the student's background
- Motivational and supportive

Keep responses flowing naturally while being helpful and practical.`

const quickPersona = `You are a quick career assistant for Indian students. Provide:
- Concise, direct answers
- Key bullet points
- Quick summaries
- Fast clarifications

Keep responses brief but valuable, focusing on the most important information.`

func buildMessages(persona string, profile *domain.StudentProfile, history []domain.Turn, message string) []domain.ChatMessage {
	if len(history) > historyLimit {
		history = history[len(history)-historyLimit:]
	}

	messages := make([]domain.ChatMessage, 0, len(history)+2)
	messages = append(messages, domain.ChatMessage{
		Role:    domain.RoleSystem,
		Content: systemPrompt(persona, profile),
	})
	for _, turn := range history {
		role := domain.RoleAssistant
		if turn.IsUser() {
			role = domain.RoleUser
		}
		messages = append(messages, domain.ChatMessage{Role: role, Content: turn.Content})
	}
	messages = append(messages, domain.ChatMessage{Role: domain.RoleUser, Content: message})
	return messages
}

func systemPrompt(persona string, profile *domain.StudentProfile) string {
	if profile == nil {
		return persona
	}
	return profileText(*profile) + "\n\n" + persona
}

// profileText renders the profile as labelled lines. Empty fields are
// omitted.
func profileText(p domain.StudentProfile) string {
	var b strings.Builder
	b.WriteString("Student Profile:")
	line := func(label, value string) {
		value = strings.TrimSpace(value)
		if value == "" {
			return
		}
		fmt.Fprintf(&b, "\n- %s: %s", label, value)
	}

	if p.Age > 0 {
		line("Age", fmt.Sprint(p.Age))
	}
	line("Education", educationText(p.Education))
	line("Academic strengths", strings.Join(p.AcademicStrengths, ", "))
	line("Interests", strings.Join(p.Interests, ", "))
	line("Location", p.Location)
	line("Socio-economic constraints", p.SocioEconomicConstraints)
	if s := p.AptitudeScores; s != nil {
		line("Aptitude scores", fmt.Sprintf("logical %d, verbal %d, quantitative %d, spatial %d",
			s.Logical, s.Verbal, s.Quantitative, s.Spatial))
	}
	line("Career confusion", p.CareerConfusion)
	line("Additional info", p.AdditionalInfo)
	return b.String()
}

func educationText(e domain.Education) string {
	parts := make([]string, 0, 4)
	for _, v := range []string{e.Level, e.Class, e.Stream, e.Degree} {
		if v = strings.TrimSpace(v); v != "" {
			parts = append(parts, v)
		}
	}
	return strings.Join(parts, ", ")
}
