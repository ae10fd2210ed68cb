package canned

// Templates passed through fmt.Sprintf escape literal percent signs as %%.

const careerPathProfileText = `Based on your profile (interests: %s, strengths: %s), here are some personalized career paths:

**Top Recommendations for You:**
1. **Data Science** - High demand, ₹6-15 LPA entry level
2. **Software Development** - Excellent growth, ₹5-12 LPA entry level
3. **UI/UX Design** - Creative + tech, ₹4-10 LPA entry level

**Why these suit you:**
- Your academic strengths align well with analytical roles
- Current market demand is very high (as of %s)
- Good growth potential in Indian tech hubs

Would you like me to create a detailed learning plan for any of these paths?`

const careerPathAnonymousText = `I'd love to suggest personalized career paths! To give you the best recommendations, could you tell me:

1. What subjects do you excel in or enjoy most?
2. What are your main interests or hobbies?
3. What's your current education level?

Based on current market trends (%s), the most in-demand careers in India are:
- Data Science & Analytics
- Software Development
- UI/UX Design
- Digital Marketing
- Cloud Computing`

const salaryText = `**Current Salary Ranges in India (%s):**

**Tech Roles:**
• Data Scientist: ₹6-15 LPA (entry), ₹15-30 LPA (3-5 years)
• Software Developer: ₹5-12 LPA (entry), ₹12-25 LPA (3-5 years)
• UI/UX Designer: ₹4-10 LPA (entry), ₹10-20 LPA (3-5 years)

**Business Roles:**
• Digital Marketing: ₹3-8 LPA (entry), ₹8-15 LPA (3-5 years)
• Business Analyst: ₹4-9 LPA (entry), ₹9-18 LPA (3-5 years)

**Factors affecting salary:**
- Location (Bangalore/Mumbai typically 20-30%% higher)
- Company size (startups vs MNCs)
- Skills & certifications
- Portfolio quality

Which specific role interests you most?`

const skillsText = `**Most In-Demand Skills for 2025:**

**Technical Skills:**
1. **Python Programming** - Essential for data science, automation
2. **JavaScript/React** - Web development, high demand
3. **SQL & Databases** - Data analysis, backend development
4. **Cloud Platforms** (AWS/Azure) - Infrastructure, DevOps
5. **Machine Learning** - AI/ML roles, future-proof

**Soft Skills:**
1. **Communication** - Present ideas clearly
2. **Problem Solving** - Critical thinking
3. **Adaptability** - Learn new technologies
4. **Collaboration** - Work in teams

**Learning Path Recommendation:**
- Start with Python (2-3 months)
- Add SQL for data handling (1 month)
- Choose specialization (web dev/data science/ML)
- Build 3-5 portfolio projects

Want me to create a detailed 6-month learning plan for any specific skill?`

const jobMarketText = `**Indian Job Market Insights (%s):**

**Highest Growth Sectors:**
• **EdTech** - 40%% growth, remote-friendly
• **FinTech** - 35%% growth, good pay scales
• **HealthTech** - 30%% growth, social impact
• **E-commerce** - 25%% growth, diverse roles

**Top Hiring Cities:**
1. **Bangalore** - Tech capital, 35%% of tech jobs
2. **Hyderabad** - Growing fast, lower cost of living
3. **Pune** - Good work-life balance
4. **Mumbai** - Finance + tech hub
5. **Chennai** - Manufacturing + IT

**Remote Work Trends:**
- 60%% companies offer hybrid/remote options
- Fully remote roles increased by 200%% since 2020
- Skills matter more than location now

**Job Search Tips:**
- LinkedIn optimization is crucial
- GitHub portfolio for tech roles
- Networking through communities
- Apply to 50+ companies for better chances

What specific aspect of the job market interests you?`

const cityText = `**%s Career Opportunities (%s):**

**Key Strengths:** %s
**Average Salary:** %s
**Cost of Living:** %s
**Top Opportunities:** %s

**Major Companies Hiring:**
- Tech: Microsoft, Google, Amazon, Flipkart
- Startups: Byju's, Swiggy, Zomato, Ola
- Consulting: Deloitte, EY, PwC, McKinsey

**Networking Opportunities:**
- Tech meetups and conferences
- Professional communities (LinkedIn groups)
- University alumni networks
- Industry associations

Would you like specific advice for job hunting in %s?`

const interviewText = `**Interview Preparation Guide:**

**Technical Interview Tips:**
1. **Practice coding** - LeetCode, HackerRank (2-3 problems daily)
2. **System design** - Understand scalability basics
3. **Portfolio projects** - Be ready to explain your code
4. **Mock interviews** - Practice with friends/online platforms

**Behavioral Interview Prep:**
1. **STAR method** - Situation, Task, Action, Result
2. **Common questions:**
   - "Tell me about yourself"
   - "Why this company?"
   - "Describe a challenging project"
   - "Where do you see yourself in 5 years?"

**Day Before Interview:**
- Research the company thoroughly
- Prepare 3-5 questions to ask them
- Test your tech setup (for virtual interviews)
- Get good sleep!

**Sample Technical Questions:**
- "Explain the difference between SQL and NoSQL"
- "How would you optimize a slow website?"
- "Walk me through your project architecture"

Want me to conduct a mock interview with you?`

const resumeText = `**Resume Optimization for Indian Job Market:**

**Essential Sections:**
1. **Contact Info** - Phone, email, LinkedIn, GitHub
2. **Professional Summary** - 2-3 lines highlighting key skills
3. **Technical Skills** - Programming languages, tools, frameworks
4. **Experience/Projects** - Use action verbs, quantify results
5. **Education** - Degree, college, relevant coursework
6. **Certifications** - Online courses, professional certifications

**Common Mistakes to Avoid:**
❌ "Responsible for managing data"
✅ "Analyzed 10,000+ customer records using Python, improving decision accuracy by 25%"

❌ "Good communication skills"
✅ "Presented project findings to 50+ stakeholders, leading to 15% budget approval"

**ATS-Friendly Tips:**
- Use standard fonts (Arial, Calibri)
- Include keywords from job description
- Save as PDF
- Keep it 1-2 pages maximum

**Portfolio Integration:**
- GitHub link for developers
- Behance/Dribbble for designers
- LinkedIn for all professionals

Want me to review a specific section of your resume?`

const resourcesText = `**Best Free Learning Resources for Indian Students:**

**Programming & Tech:**
• **FreeCodeCamp** - Complete web development
• **Coursera** - University courses (audit for free)
• **YouTube Channels:**
  - Code with Harry (Hindi)
  - Apna College (Hindi)
  - Traversy Media (English)

**Indian Platforms:**
• **NPTEL** - IIT/IISc courses, certificates
• **SWAYAM** - Government initiative, free courses
• **Unacademy** - Tech and competitive programming

**Skill-Specific:**
• **Data Science:** Kaggle Learn, Analytics Vidhya
• **Design:** Figma Academy, Adobe tutorials
• **Business:** Google Digital Marketing, HubSpot Academy

**Practice Platforms:**
• **Coding:** LeetCode, HackerRank, CodeChef
• **Projects:** GitHub, personal website
• **Networking:** LinkedIn, Twitter tech community

**Study Strategy:**
1. Choose one primary resource
2. Practice daily (consistency > intensity)
3. Build projects while learning
4. Join study groups/communities
5. Document your learning journey

Which skill area interests you most?`

const genericMenuText = `I understand you're asking about "%s". As your AI Career Advisor, I'm here to help with:

• **Career Path Guidance** - Find the right career for your skills
• **Skill Development** - Learn what's in demand in 2025
• **Job Market Insights** - Current trends and salary ranges
• **Interview Preparation** - Technical and behavioral questions
• **Resume Optimization** - Stand out to recruiters

%s

What specific aspect would you like to explore?`

const genericUpdateText = `Great question! Let me help you with that. Based on current market trends (%s), here's what I can share:

**Popular Career Queries:**
- "What career suits my skills?"
- "How much do data scientists earn?"
- "Best skills to learn for remote work?"
- "How to prepare for tech interviews?"

**Quick Market Update:**
- Tech hiring is up 25%% this quarter
- Remote work opportunities growing
- AI/ML skills in highest demand
- Soft skills equally important

How can I assist you specifically with your career journey?`
