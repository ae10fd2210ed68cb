// Package career maps a student profile to career paths, a six-month
// learning plan, mock interview questions and resume improvements. All
// output is deterministic.
package career

import (
	"strings"

	"lifecompass/internal/domain"
)

// Path titles.
const (
	DataScience         = "Data Science & Analytics"
	SoftwareDevelopment = "Software Development"
	UIUXDesign          = "UI/UX Design"
	DigitalMarketing    = "Digital Marketing"
	Healthcare          = "Healthcare & Medical Technology"
	FinTech             = "Financial Technology (FinTech)"
	BusinessDevelopment = "Business Development"
)

// Profile vocabulary used by the intake form.
const (
	interestTech       = "Technology & Programming"
	interestDesign     = "Design & Creativity"
	interestBusiness   = "Business & Finance"
	interestHealthcare = "Healthcare & Medicine"
	interestMedia      = "Media & Communication"

	strengthMath     = "Mathematics"
	strengthCS       = "Computer Science"
	strengthArts     = "Arts & Drawing"
	strengthBiology  = "Biology"
	strengthEconomic = "Economics"
)

const maxPaths = 5

var stemStrengths = []string{strengthMath, "Physics", "Chemistry", strengthCS}

type signals struct {
	profile    domain.StudentProfile
	stem       bool
	tech       bool
	design     bool
	business   bool
	healthcare bool
}

func readSignals(p domain.StudentProfile) signals {
	s := signals{
		profile:    p,
		tech:       p.HasInterest(interestTech),
		design:     p.HasInterest(interestDesign),
		business:   p.HasInterest(interestBusiness),
		healthcare: p.HasInterest(interestHealthcare),
	}
	for _, st := range stemStrengths {
		if p.HasStrength(st) {
			s.stem = true
			break
		}
	}
	return s
}

// rule returns the confidence for its path, or "" when the path does not
// apply.
type rule struct {
	path  domain.CareerPath
	match func(s signals) string
}

func when(ok bool, confidence string) string {
	if !ok {
		return ""
	}
	return confidence
}

var rules = []rule{
	{paths[DataScience], func(s signals) string {
		return when(s.stem && (s.tech || s.profile.HasStrength(strengthMath)), domain.ConfidenceHigh)
	}},
	{paths[SoftwareDevelopment], func(s signals) string {
		return when(s.tech || s.profile.HasStrength(strengthCS), domain.ConfidenceHigh)
	}},
	{paths[UIUXDesign], func(s signals) string {
		if s.design {
			return domain.ConfidenceHigh
		}
		return when(s.profile.HasStrength(strengthArts), domain.ConfidenceMedium)
	}},
	{paths[DigitalMarketing], func(s signals) string {
		return when(s.business || s.profile.HasInterest(interestMedia), domain.ConfidenceMedium)
	}},
	{paths[Healthcare], func(s signals) string {
		if s.healthcare {
			return domain.ConfidenceHigh
		}
		return when(s.profile.HasStrength(strengthBiology), domain.ConfidenceMedium)
	}},
	{paths[FinTech], func(s signals) string {
		return when(s.business || s.profile.HasStrength(strengthEconomic), domain.ConfidenceMedium)
	}},
}

// Recommend returns up to five career paths in rule order. Business
// Development is appended for school leavers and undergraduates when fewer
// than three rules matched.
func Recommend(p domain.StudentProfile) []domain.CareerPath {
	s := readSignals(p)
	out := make([]domain.CareerPath, 0, maxPaths)
	for _, r := range rules {
		confidence := r.match(s)
		if confidence == "" {
			continue
		}
		out = append(out, withConfidence(r.path, confidence))
	}
	if len(out) < 3 && (p.Education.Level == "12th" || p.Education.Level == "undergraduate") {
		out = append(out, withConfidence(paths[BusinessDevelopment], domain.ConfidenceMedium))
	}
	if len(out) > maxPaths {
		out = out[:maxPaths]
	}
	return out
}

// withConfidence copies p so callers cannot mutate the shared table.
func withConfidence(p domain.CareerPath, confidence string) domain.CareerPath {
	p.CoreSkills = append([]string(nil), p.CoreSkills...)
	p.SupportingSkills = append([]string(nil), p.SupportingSkills...)
	p.EntryLevelJobs = append([]string(nil), p.EntryLevelJobs...)
	p.ConfidenceLevel = confidence
	return p
}

// Bundle is the full recommendation output for one profile.
type Bundle struct {
	CareerPaths        []domain.CareerPath        `json:"careerPaths"`
	LearningPlan       []domain.LearningMonth     `json:"learningPlan"`
	MockQuestions      []domain.MockQuestion      `json:"mockQuestions"`
	ResumeImprovements []domain.ResumeImprovement `json:"resumeImprovements"`
}

// Advise runs every generator against p.
func Advise(p domain.StudentProfile) Bundle {
	paths := Recommend(p)
	var primary *domain.CareerPath
	if len(paths) > 0 {
		primary = &paths[0]
	}
	return Bundle{
		CareerPaths:        paths,
		LearningPlan:       LearningPlan(primary),
		MockQuestions:      MockQuestions(paths),
		ResumeImprovements: ResumeImprovements(paths),
	}
}

func primaryTitle(paths []domain.CareerPath) string {
	if len(paths) == 0 {
		return ""
	}
	return paths[0].Title
}

func titleHas(title, word string) bool {
	return strings.Contains(title, word)
}
