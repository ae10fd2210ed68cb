package domain

// Confidence levels attached to a recommended career path.
const (
	ConfidenceHigh   = "High"
	ConfidenceMedium = "Medium"
	ConfidenceLow    = "Low"
)

// Mock question kinds.
const (
	QuestionTechnical  = "technical"
	QuestionBehavioral = "behavioral"
)

type CareerPath struct {
	Title            string   `json:"title"`
	Description      string   `json:"description"`
	CoreSkills       []string `json:"coreSkills"`
	SupportingSkills []string `json:"supportingSkills"`
	EntryLevelJobs   []string `json:"entryLevelJobs"`
	SalaryRange      string   `json:"salaryRange"`
	ConfidenceLevel  string   `json:"confidenceLevel"`
}

// LearningMonth is one month of a learning plan.
type LearningMonth struct {
	Month            int      `json:"month"`
	Title            string   `json:"title"`
	Goals            []string `json:"goals"`
	WeeklyObjectives []string `json:"weeklyObjectives"`
	Resources        []string `json:"resources"`
	ProjectIdea      string   `json:"projectIdea"`
}

type MockQuestion struct {
	Type     string `json:"type"`
	Question string `json:"question"`
	Context  string `json:"context,omitempty"`
}

type ResumeImprovement struct {
	Category string `json:"category"`
	Before   string `json:"before"`
	After    string `json:"after"`
}

// MarketInsight is a static job-market snapshot for one skill.
type MarketInsight struct {
	Skill       string   `json:"skill"`
	Demand      string   `json:"demand"`
	SalaryRange string   `json:"salaryRange"`
	Growth      string   `json:"growth"`
	Locations   []string `json:"locations"`
}
