package domain

// Constraint levels selectable in the intake form.
const (
	ConstraintNone     = "none"
	ConstraintModerate = "moderate"
	ConstraintHigh     = "high"
)

// StudentProfile is the intake form payload.
type StudentProfile struct {
	Age                      int             `json:"age"`
	Education                Education       `json:"education"`
	AcademicStrengths        []string        `json:"academicStrengths"`
	Interests                []string        `json:"interests"`
	Location                 string          `json:"location"`
	SocioEconomicConstraints string          `json:"socioEconomicConstraints"`
	AptitudeScores           *AptitudeScores `json:"aptitudeScores,omitempty"`
	CareerConfusion          string          `json:"careerConfusion,omitempty"`
	AdditionalInfo           string          `json:"additionalInfo,omitempty"`
}

type Education struct {
	Level  string `json:"level"`
	Stream string `json:"stream,omitempty"`
	Degree string `json:"degree,omitempty"`
	Class  string `json:"class,omitempty"`
}

type AptitudeScores struct {
	Logical      int `json:"logical"`
	Verbal       int `json:"verbal"`
	Quantitative int `json:"quantitative"`
	Spatial      int `json:"spatial"`
}

// HasStrength reports whether s is one of the profile's academic strengths.
func (p StudentProfile) HasStrength(s string) bool {
	return contains(p.AcademicStrengths, s)
}

// HasInterest reports whether s is one of the profile's interests.
func (p StudentProfile) HasInterest(s string) bool {
	return contains(p.Interests, s)
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
