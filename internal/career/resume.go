package career

import "lifecompass/internal/domain"

var universalImprovements = []domain.ResumeImprovement{
	{
		Category: "Skills Section",
		Before:   "Good at programming",
		After:    "Proficient in Python and JavaScript with 6+ months of hands-on project experience including data analysis and web development",
	},
	{
		Category: "Project Description",
		Before:   "Made a website for college project",
		After:    "Developed a responsive student portal using React.js and Node.js, serving 200+ users with features including authentication, dashboard, and real-time notifications",
	},
	{
		Category: "Achievement Quantification",
		Before:   "Participated in coding competition",
		After:    "Ranked in top 15% among 500+ participants in state-level coding competition, solving 4/5 algorithmic problems within time constraints",
	},
}

var dataScienceImprovement = domain.ResumeImprovement{
	Category: "Data Science Projects",
	Before:   "Analyzed data using Excel",
	After:    "Performed exploratory data analysis on 10,000+ records using Python and Pandas, identified 3 key insights that improved decision-making accuracy by 25%",
}

var designImprovement = domain.ResumeImprovement{
	Category: "Design Portfolio",
	Before:   "Created some designs",
	After:    "Designed 15+ user interface mockups for mobile and web applications using Figma, incorporating user feedback to improve usability scores by 30%",
}

// ResumeImprovements returns before/after pairs: three universal ones plus
// one for a Data Science or Design primary path.
func ResumeImprovements(paths []domain.CareerPath) []domain.ResumeImprovement {
	out := make([]domain.ResumeImprovement, 0, len(universalImprovements)+1)
	out = append(out, universalImprovements...)
	switch title := primaryTitle(paths); {
	case titleHas(title, "Data Science"):
		out = append(out, dataScienceImprovement)
	case titleHas(title, "Design"):
		out = append(out, designImprovement)
	}
	return out
}
