package extract

// Fixed vocabularies shared by the extractors. Matching is case-insensitive
// whole-word unless an extractor states otherwise.

var skillVocabulary = map[string][]string{
	"languages": {
		"Python", "Java", "JavaScript", "TypeScript", "Go", "Golang", "C++",
		"C#", "Ruby", "Rust", "Kotlin", "Swift", "PHP", "Scala", "R", "MATLAB",
	},
	"frameworks": {
		"React", "Angular", "Vue", "Next.js", "Node.js", "Express", "Django",
		"Flask", "FastAPI", "Spring", "Rails", ".NET", "GraphQL", "gRPC",
	},
	"databases": {
		"SQL", "MySQL", "PostgreSQL", "MongoDB", "Redis", "Elasticsearch",
		"DynamoDB", "SQLite", "Cassandra", "Oracle",
	},
	"cloud": {
		"AWS", "Azure", "GCP", "Docker", "Kubernetes", "Terraform", "Jenkins",
		"CI/CD", "Linux", "Serverless",
	},
	"tools": {
		"Git", "GitHub", "GitLab", "Jira", "Figma", "Tableau", "Excel",
		"Pandas", "NumPy", "TensorFlow", "PyTorch", "Spark", "Kafka",
	},
}

var benefitKeywords = []string{
	"health insurance", "dental", "vision", "401k", "401(k)", "pto",
	"paid time off", "unlimited pto", "parental leave", "remote work",
	"flexible hours", "flexible schedule", "stock options", "equity",
	"tuition reimbursement", "learning budget", "gym membership",
	"wellness", "free lunch", "free meals", "commuter benefits",
	"relocation assistance", "signing bonus", "housing stipend",
	"mentorship", "return offer",
}

// Common mail providers whose domains never identify an employer.
var genericMailProviders = map[string]struct{}{
	"gmail":      {},
	"yahoo":      {},
	"outlook":    {},
	"hotmail":    {},
	"aol":        {},
	"icloud":     {},
	"protonmail": {},
	"live":       {},
	"msn":        {},
	"me":         {},
}

// Subdomain prefixes stripped before a sender domain becomes a company name.
var mailSubdomainPrefixes = []string{
	"www.", "mail.", "email.", "careers.", "jobs.", "talent.", "recruiting.",
	"hr.", "notify.", "notifications.", "no-reply.", "noreply.",
}

var knownCities = []string{
	"New York", "San Francisco", "Seattle", "Austin", "Boston", "Chicago",
	"Los Angeles", "Denver", "Atlanta", "Toronto", "Vancouver", "London",
	"Dublin", "Berlin", "Amsterdam", "Bangalore", "Singapore", "Sydney",
	"Mountain View", "Palo Alto", "Menlo Park", "Redmond", "Cupertino",
	"San Jose", "Sunnyvale", "Washington",
}
