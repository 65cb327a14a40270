package catalog

import "github.com/jonathan/resume-matcher/internal/types"

const (
	dubai    = "Dubai, UAE"
	fullTime = "Full-time"
)

var defaultPostings = []types.JobPosting{
	{
		Title:           "Senior Software Engineer",
		Company:         "TechCorp Dubai",
		Location:        dubai,
		SalaryRange:     "AED 25,000 - 35,000",
		ExperienceRange: "5-8 years",
		Description:     "We are looking for a Senior Software Engineer with expertise in Python, JavaScript, and cloud technologies. Experience with AWS, Docker, and microservices architecture is required.",
		Requirements:    "Python, JavaScript, AWS, Docker, Microservices, React, Node.js, MongoDB, PostgreSQL",
		JobType:         fullTime,
		Industry:        "Technology",
	},
	{
		Title:           "Data Scientist",
		Company:         "DataFlow Analytics",
		Location:        dubai,
		SalaryRange:     "AED 20,000 - 30,000",
		ExperienceRange: "3-6 years",
		Description:     "Join our data science team to develop machine learning models and analytics solutions. Work with large datasets and implement predictive models.",
		Requirements:    "Python, Machine Learning, Statistics, SQL, Pandas, Scikit-learn, TensorFlow, Data Analysis",
		JobType:         fullTime,
		Industry:        "Technology",
	},
	{
		Title:           "Marketing Manager",
		Company:         "Global Marketing Solutions",
		Location:        dubai,
		SalaryRange:     "AED 18,000 - 25,000",
		ExperienceRange: "4-7 years",
		Description:     "Lead marketing campaigns and strategies for our clients in the MENA region. Experience in digital marketing and brand management required.",
		Requirements:    "Digital Marketing, Brand Management, Social Media, Google Ads, Analytics, Campaign Management",
		JobType:         fullTime,
		Industry:        "Marketing",
	},
	{
		Title:           "Financial Analyst",
		Company:         "Dubai Financial Services",
		Location:        dubai,
		SalaryRange:     "AED 15,000 - 22,000",
		ExperienceRange: "2-5 years",
		Description:     "Analyze financial data, prepare reports, and provide insights for investment decisions. CFA or similar certification preferred.",
		Requirements:    "Financial Analysis, Excel, Financial Modeling, CFA, Investment Analysis, Risk Management",
		JobType:         fullTime,
		Industry:        "Finance",
	},
	{
		Title:           "UX/UI Designer",
		Company:         "Creative Design Studio",
		Location:        dubai,
		SalaryRange:     "AED 16,000 - 24,000",
		ExperienceRange: "3-6 years",
		Description:     "Create user-centered designs for web and mobile applications. Experience with design tools and user research methods required.",
		Requirements:    "Figma, Adobe Creative Suite, User Research, Prototyping, Wireframing, Design Systems",
		JobType:         fullTime,
		Industry:        "Design",
	},
	{
		Title:           "Project Manager",
		Company:         "Construction Solutions Ltd",
		Location:        dubai,
		SalaryRange:     "AED 20,000 - 28,000",
		ExperienceRange: "5-8 years",
		Description:     "Manage construction projects from inception to completion. PMP certification and experience in the UAE market preferred.",
		Requirements:    "Project Management, PMP, Construction, Budget Management, Team Leadership, Risk Management",
		JobType:         fullTime,
		Industry:        "Construction",
	},
	{
		Title:           "Sales Executive",
		Company:         "Dubai Trading Company",
		Location:        dubai,
		SalaryRange:     "AED 8,000 - 15,000",
		ExperienceRange: "1-3 years",
		Description:     "Generate new business opportunities and maintain relationships with existing clients. Strong communication skills required.",
		Requirements:    "Sales, Customer Relationship Management, Communication, Negotiation, B2B Sales",
		JobType:         fullTime,
		Industry:        "Sales",
	},
	{
		Title:           "Human Resources Specialist",
		Company:         "HR Solutions UAE",
		Location:        dubai,
		SalaryRange:     "AED 12,000 - 18,000",
		ExperienceRange: "3-5 years",
		Description:     "Handle recruitment, employee relations, and HR operations. Knowledge of UAE labor law required.",
		Requirements:    "HR Management, Recruitment, Employee Relations, UAE Labor Law, HRIS, Performance Management",
		JobType:         fullTime,
		Industry:        "Human Resources",
	},
	{
		Title:           "Business Development Manager",
		Company:         "Innovation Hub Dubai",
		Location:        dubai,
		SalaryRange:     "AED 22,000 - 32,000",
		ExperienceRange: "4-7 years",
		Description:     "Develop strategic partnerships and identify new business opportunities in the technology sector.",
		Requirements:    "Business Development, Strategic Partnerships, Market Analysis, Negotiation, Technology Industry",
		JobType:         fullTime,
		Industry:        "Business Development",
	},
	{
		Title:           "Content Writer",
		Company:         "Digital Content Agency",
		Location:        dubai,
		SalaryRange:     "AED 8,000 - 12,000",
		ExperienceRange: "2-4 years",
		Description:     "Create engaging content for websites, blogs, and social media platforms. Experience in SEO and content marketing preferred.",
		Requirements:    "Content Writing, SEO, Social Media, Copywriting, Content Marketing, WordPress",
		JobType:         fullTime,
		Industry:        "Marketing",
	},
}

// Default returns a catalog of the built-in postings.
func Default() *Catalog {
	return New(defaultPostings)
}
