// Package dictionary holds the static lexical reference data shared by every
// extractor: known technology skills, job role titles, degree and section
// patterns, and a precompiled matcher built from the skill table at startup.
package dictionary

// KnownSkills is the canonical technology dictionary. Entries are stored in
// lower case; matching rules depend on entry length (see SkillMatcher).
var KnownSkills = []string{
	// Languages
	"python", "java", "javascript", "c++", "c", "kotlin", "sql",
	"typescript", "go", "rust", "php", "swift", "r", "scala",

	// Frameworks & libraries
	"react", "reactjs", "react.js", "angular", "vue", "vue.js",
	"node.js", "nodejs", "express", "express.js", "django", "flask",
	"fastapi", "spring", "spring boot", "tensorflow", "pytorch",
	"keras", "scikit-learn", "pandas", "numpy", "matplotlib",
	"next.js", "nextjs", "streamlit", "jetpack compose",
	"ktor", "room", "hilt",

	// Databases
	"mongodb", "mysql", "postgresql", "firebase", "redis",
	"supabase", "oracle", "cassandra", "dynamodb", "firestore",

	// Cloud & DevOps
	"aws", "azure", "gcp", "docker", "kubernetes", "ci/cd",
	"jenkins", "github actions", "terraform", "ansible",

	// Tools
	"git", "github", "gitlab", "postman", "jira", "linux",
	"tableau", "power bi", "powerbi", "excel", "kafka",
	"opencv", "selenium", "websocket", "rest api", "graphql",
	"jwt", "razorpay",

	// AI/ML tooling
	"gemini", "openai", "pinecone", "langchain",

	// Concepts
	"machine learning", "deep learning", "nlp", "data science",
	"data analysis", "cloud computing", "devops", "agile",
	"oop", "oops", "etl", "computer vision", "rag",
}

// categoryLabels are prefixes stripped from delimiter-split skill segments
// before exact dictionary lookup ("Languages: Python, Java" style lines).
var categoryLabels = []string{
	"languages", "frameworks", "tools", "databases", "cloud",
}
