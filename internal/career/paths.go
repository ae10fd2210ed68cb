package career

import "lifecompass/internal/domain"

var paths = map[string]domain.CareerPath{
	DataScience: {
		Title:            DataScience,
		Description:      "Combine mathematics and programming to extract insights from data, helping businesses make informed decisions in the AI-driven economy.",
		CoreSkills:       []string{"Python/R Programming", "Statistics & Mathematics", "SQL & Databases", "Machine Learning", "Data Visualization", "Excel/Power BI"},
		SupportingSkills: []string{"Communication", "Problem Solving", "Critical Thinking", "Business Acumen"},
		EntryLevelJobs:   []string{"Data Analyst", "Junior Data Scientist", "Business Analyst", "Research Analyst", "Marketing Analyst"},
		SalaryRange:      "₹6-12 LPA",
	},
	SoftwareDevelopment: {
		Title:            SoftwareDevelopment,
		Description:      "Build applications, websites, and software solutions that power modern businesses and solve real-world problems.",
		CoreSkills:       []string{"Programming Languages (Python/Java/JavaScript)", "Web Development", "Database Management", "Version Control (Git)", "Problem Solving"},
		SupportingSkills: []string{"Team Collaboration", "Agile Methodologies", "Testing", "Documentation"},
		EntryLevelJobs:   []string{"Software Developer", "Frontend Developer", "Backend Developer", "Full Stack Developer", "Web Developer"},
		SalaryRange:      "₹5-10 LPA",
	},
	UIUXDesign: {
		Title:            UIUXDesign,
		Description:      "Create user-friendly digital experiences by designing interfaces that are both beautiful and functional for apps and websites.",
		CoreSkills:       []string{"Figma/Adobe XD", "User Research", "Wireframing & Prototyping", "Design Principles", "HTML/CSS Basics"},
		SupportingSkills: []string{"Empathy", "Communication", "Creative Thinking", "Attention to Detail"},
		EntryLevelJobs:   []string{"UI Designer", "UX Designer", "Product Designer", "Visual Designer", "Design Intern"},
		SalaryRange:      "₹4-8 LPA",
	},
	DigitalMarketing: {
		Title:            DigitalMarketing,
		Description:      "Help brands reach customers online through social media, content marketing, SEO, and advertising campaigns across digital platforms.",
		CoreSkills:       []string{"Social Media Marketing", "Content Creation", "Google Ads & Analytics", "SEO/SEM", "Email Marketing"},
		SupportingSkills: []string{"Creativity", "Analytics", "Writing", "Communication", "Adaptability"},
		EntryLevelJobs:   []string{"Digital Marketing Executive", "Content Creator", "SEO Specialist", "Social Media Manager", "Marketing Analyst"},
		SalaryRange:      "₹3-7 LPA",
	},
	Healthcare: {
		Title:            Healthcare,
		Description:      "Work in the growing healthtech sector, combining medical knowledge with technology to improve patient care and healthcare delivery.",
		CoreSkills:       []string{"Medical Knowledge", "Healthcare Systems", "Medical Software", "Patient Care", "Regulatory Compliance"},
		SupportingSkills: []string{"Empathy", "Attention to Detail", "Communication", "Ethics", "Continuous Learning"},
		EntryLevelJobs:   []string{"Medical Coder", "Healthcare Analyst", "Clinical Research Associate", "Health Information Technician"},
		SalaryRange:      "₹4-8 LPA",
	},
	FinTech: {
		Title:            FinTech,
		Description:      "Work in the digital finance sector, developing solutions for banking, payments, investments, and financial services using technology.",
		CoreSkills:       []string{"Financial Analysis", "Excel/Financial Modeling", "SQL/Data Analysis", "Regulatory Knowledge", "Risk Management"},
		SupportingSkills: []string{"Problem Solving", "Attention to Detail", "Communication", "Ethical Reasoning"},
		EntryLevelJobs:   []string{"Financial Analyst", "Risk Analyst", "Product Analyst", "Operations Associate", "Compliance Officer"},
		SalaryRange:      "₹5-9 LPA",
	},
	BusinessDevelopment: {
		Title:            BusinessDevelopment,
		Description:      "Help companies grow by identifying opportunities, building partnerships, and developing strategies to enter new markets.",
		CoreSkills:       []string{"Communication", "Market Research", "Sales", "Relationship Building", "Presentation Skills"},
		SupportingSkills: []string{"Negotiation", "Strategic Thinking", "Networking", "Time Management"},
		EntryLevelJobs:   []string{"Business Development Associate", "Sales Executive", "Market Research Analyst", "Account Manager"},
		SalaryRange:      "₹3-6 LPA",
	},
}
