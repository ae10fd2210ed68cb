package career

import "lifecompass/internal/domain"

// LearningPlan returns six months keyed off the primary path. A nil primary
// gets the generic plan.
func LearningPlan(primary *domain.CareerPath) []domain.LearningMonth {
	src := genericPlan
	if primary != nil {
		switch {
		case titleHas(primary.Title, "Data Science"):
			src = dataSciencePlan
		case titleHas(primary.Title, "Software Development"):
			src = softwarePlan
		}
	}
	out := make([]domain.LearningMonth, len(src))
	copy(out, src)
	return out
}

func month(n int, title string, goals, weekly, resources []string, project string) domain.LearningMonth {
	return domain.LearningMonth{
		Month:            n,
		Title:            title,
		Goals:            goals,
		WeeklyObjectives: weekly,
		Resources:        resources,
		ProjectIdea:      project,
	}
}

var dataSciencePlan = []domain.LearningMonth{
	month(1, "Programming Foundations",
		[]string{"Learn Python basics", "Understand data types and structures", "Practice basic programming"},
		[]string{"Week 1: Python syntax", "Week 2: Variables & operators", "Week 3: Control structures", "Week 4: Functions & modules"},
		[]string{"Python.org tutorial", "Codecademy Python", "YouTube - Python for Beginners"},
		"Create a personal expense tracker using Python that reads data from a CSV file"),
	month(2, "Statistics & Mathematics",
		[]string{"Master descriptive statistics", "Learn probability concepts", "Understand correlation and regression"},
		[]string{"Week 1: Descriptive statistics", "Week 2: Probability basics", "Week 3: Distributions", "Week 4: Correlation analysis"},
		[]string{"Khan Academy Statistics", "NPTEL Statistics", "StatQuest YouTube"},
		"Analyze a public dataset (like Indian census data) and create statistical reports"),
	month(3, "Data Manipulation",
		[]string{"Learn Pandas library", "Master data cleaning techniques", "Practice data visualization"},
		[]string{"Week 1: Pandas basics", "Week 2: Data cleaning", "Week 3: Data transformation", "Week 4: Basic visualization"},
		[]string{"Pandas documentation", "Kaggle Learn", "YouTube - Data Analysis with Python"},
		"Clean and analyze real messy dataset, create dashboard showing key insights"),
	month(4, "Machine Learning Basics",
		[]string{"Understand ML concepts", "Learn scikit-learn", "Build first prediction models"},
		[]string{"Week 1: ML theory", "Week 2: Supervised learning", "Week 3: Model evaluation", "Week 4: Project work"},
		[]string{"Coursera ML course", "Scikit-learn docs", "Kaggle competitions"},
		"Build a house price prediction model using Indian real estate data"),
	month(5, "Advanced Skills & Portfolio",
		[]string{"Learn SQL database queries", "Create data visualizations", "Build portfolio website"},
		[]string{"Week 1: SQL basics", "Week 2: Advanced SQL", "Week 3: Tableau/Power BI", "Week 4: Portfolio creation"},
		[]string{"W3Schools SQL", "Tableau Public", "GitHub Pages"},
		"Create an end-to-end data science project analyzing Indian startup ecosystem"),
	month(6, "Job Preparation",
		[]string{"Practice coding interviews", "Apply to internships", "Network with professionals"},
		[]string{"Week 1: Resume building", "Week 2: Interview prep", "Week 3: Job applications", "Week 4: Follow-ups"},
		[]string{"LinkedIn", "AngelList", "Naukri.com", "Data science communities"},
		"Complete a Kaggle competition and document your approach in a detailed blog post"),
}

var softwarePlan = []domain.LearningMonth{
	month(1, "Programming Fundamentals",
		[]string{"Master JavaScript/Python basics", "Understand programming concepts", "Practice problem-solving"},
		[]string{"Week 1: Syntax & basics", "Week 2: Data structures", "Week 3: Algorithms", "Week 4: Practice problems"},
		[]string{"FreeCodeCamp", "MDN Web Docs", "LeetCode easy problems"},
		"Build a simple calculator web app with HTML, CSS, and JavaScript"),
	month(2, "Web Development Basics",
		[]string{"Learn HTML, CSS fundamentals", "Understand responsive design", "Practice with frameworks"},
		[]string{"Week 1: HTML structure", "Week 2: CSS styling", "Week 3: Responsive design", "Week 4: CSS frameworks"},
		[]string{"MDN Web Docs", "CSS-Tricks", "Bootstrap documentation"},
		"Create a responsive personal portfolio website showcasing your projects"),
	month(3, "Frontend Framework",
		[]string{"Learn React.js basics", "Understand component-based architecture", "Build interactive UIs"},
		[]string{"Week 1: React basics", "Week 2: Components & props", "Week 3: State management", "Week 4: API integration"},
		[]string{"React official docs", "YouTube React tutorials", "Create React App"},
		"Build a task management app with CRUD operations and local storage"),
	month(4, "Backend Development",
		[]string{"Learn Node.js/Express", "Understand databases", "Build REST APIs"},
		[]string{"Week 1: Node.js basics", "Week 2: Express framework", "Week 3: Database integration", "Week 4: API development"},
		[]string{"Node.js docs", "Express.js guide", "MongoDB University"},
		"Create a blog API with user authentication and CRUD operations"),
	month(5, "Full-Stack Project",
		[]string{"Combine frontend and backend", "Deploy applications", "Learn version control"},
		[]string{"Week 1: Project planning", "Week 2: Frontend development", "Week 3: Backend integration", "Week 4: Deployment"},
		[]string{"GitHub", "Netlify/Vercel", "Heroku documentation"},
		"Build a complete e-commerce website with product catalog and user accounts"),
	month(6, "Job Market Preparation",
		[]string{"Build strong portfolio", "Practice technical interviews", "Apply to positions"},
		[]string{"Week 1: Portfolio optimization", "Week 2: Coding interview prep", "Week 3: Company research", "Week 4: Applications"},
		[]string{"GitHub showcase", "HackerRank", "Company career pages"},
		"Contribute to an open-source project and document your contributions"),
}

var genericPlan = []domain.LearningMonth{
	month(1, "Skill Foundation",
		[]string{"Identify core competencies", "Start skill building", "Create learning routine"},
		[]string{"Week 1: Skill assessment", "Week 2: Resource gathering", "Week 3: Learning schedule", "Week 4: Practice basics"},
		[]string{"Coursera", "YouTube", "Khan Academy"},
		"Create a learning journal documenting your daily progress and insights"),
	month(2, "Practical Application",
		[]string{"Apply learned concepts", "Start building portfolio", "Get feedback"},
		[]string{"Week 1: First project", "Week 2: Skill practice", "Week 3: Feedback collection", "Week 4: Improvement iteration"},
		[]string{"Industry blogs", "Online communities", "Mentorship platforms"},
		"Complete your first industry-relevant project and get it reviewed by professionals"),
	month(3, "Advanced Concepts",
		[]string{"Learn advanced topics", "Connect with professionals", "Expand knowledge"},
		[]string{"Week 1: Advanced learning", "Week 2: Networking", "Week 3: Industry trends", "Week 4: Skill certification"},
		[]string{"Professional courses", "LinkedIn Learning", "Industry publications"},
		"Work on a challenging project that demonstrates advanced skills in your field"),
	month(4, "Specialization",
		[]string{"Choose specialization", "Develop expertise", "Create unique value"},
		[]string{"Week 1: Specialization research", "Week 2: Deep skill development", "Week 3: Expert interviews", "Week 4: Skill demonstration"},
		[]string{"Specialized courses", "Expert blogs", "Industry forums"},
		"Create a specialized project that showcases your unique expertise"),
	month(5, "Portfolio Development",
		[]string{"Build strong portfolio", "Document achievements", "Create personal brand"},
		[]string{"Week 1: Portfolio design", "Week 2: Project documentation", "Week 3: Personal branding", "Week 4: Online presence"},
		[]string{"Portfolio platforms", "Personal website builders", "Social media guides"},
		"Launch a comprehensive portfolio website featuring all your best work"),
	month(6, "Market Entry",
		[]string{"Apply for opportunities", "Practice interviews", "Build professional network"},
		[]string{"Week 1: Job search strategy", "Week 2: Interview preparation", "Week 3: Active applications", "Week 4: Follow-up and networking"},
		[]string{"Job boards", "Company websites", "Professional networks"},
		"Complete a capstone project that demonstrates all your acquired skills"),
}
