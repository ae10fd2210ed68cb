package career

import "lifecompass/internal/domain"

func technical(q, context string) domain.MockQuestion {
	return domain.MockQuestion{Type: domain.QuestionTechnical, Question: q, Context: context}
}

func behavioral(q, context string) domain.MockQuestion {
	return domain.MockQuestion{Type: domain.QuestionBehavioral, Question: q, Context: context}
}

var dataScienceQuestions = []domain.MockQuestion{
	technical("How would you explain correlation to a non-technical person?", "Tests communication skills and understanding of statistical concepts"),
	technical("What steps would you take to clean a messy dataset?", "Assesses practical data preprocessing knowledge"),
	technical("Explain the difference between supervised and unsupervised learning with examples.", "Tests fundamental machine learning understanding"),
}

var softwareQuestions = []domain.MockQuestion{
	technical("What is the difference between == and === in JavaScript?", "Tests understanding of JavaScript fundamentals"),
	technical("How would you optimize a slow-loading webpage?", "Assesses web performance optimization knowledge"),
	technical("Explain the concept of RESTful APIs and HTTP methods.", "Tests backend development understanding"),
}

var genericQuestions = []domain.MockQuestion{
	technical("How do you stay updated with industry trends and developments?", "Tests commitment to continuous learning"),
	technical("Describe your approach to learning a new skill or technology.", "Assesses learning methodology and adaptability"),
}

var behavioralQuestions = []domain.MockQuestion{
	behavioral("Tell me about a time you solved a complex problem. What was your approach?", "STAR method: Situation, Task, Action, Result"),
	behavioral("Describe a situation where you had to learn something new quickly.", "Tests adaptability and learning agility"),
	behavioral("How do you handle feedback and criticism?", "Assesses growth mindset and professional maturity"),
	behavioral("Why are you interested in this role and our company?", "Tests preparation and genuine interest"),
}

// MockQuestions returns technical questions for the primary path followed by
// the universal behavioral set.
func MockQuestions(paths []domain.CareerPath) []domain.MockQuestion {
	tech := genericQuestions
	switch title := primaryTitle(paths); {
	case titleHas(title, "Data Science"):
		tech = dataScienceQuestions
	case titleHas(title, "Software Development"):
		tech = softwareQuestions
	}
	out := make([]domain.MockQuestion, 0, len(tech)+len(behavioralQuestions))
	out = append(out, tech...)
	return append(out, behavioralQuestions...)
}
