package dictionary

import (
	"regexp"
	"strings"
)

// KnownRoles lists job titles recognized by the experience extractor.
// Stored in lower case.
var KnownRoles = []string{
	// Software development
	"software engineer", "software developer", "full stack developer",
	"frontend developer", "backend developer", "web developer",
	"mobile developer", "android developer", "ios developer",
	"frontend engineer", "backend engineer", "full stack engineer",

	// Data & AI
	"data scientist", "data analyst", "data engineer",
	"machine learning engineer", "ai engineer", "ml engineer",
	"business analyst", "research scientist",

	// Design & product
	"ui/ux designer", "product designer", "graphic designer",
	"product manager", "project manager",

	// Internships & entry level
	"intern", "trainee", "associate", "junior developer",
	"software intern", "data science intern", "sde intern",

	// Leadership
	"team lead", "tech lead", "engineering manager",
	"senior developer", "senior engineer", "lead developer",

	// DevOps & cloud
	"devops engineer", "cloud engineer", "sre", "site reliability engineer",
	"cloud architect", "systems engineer",

	// Other technical
	"qa engineer", "test engineer", "security engineer",
	"database administrator", "network engineer",

	// Student roles
	"contributor", "volunteer", "member", "coordinator",
	"core member", "technical team member", "app developer",
	"research assistant",
}

// DescriptionVerbs start bullet-style achievement lines inside an experience
// block. A line whose first word is one of these is a description, not a role
// header.
var DescriptionVerbs = []string{
	"developed", "implemented", "built", "created", "designed",
	"collaborated", "worked", "improved", "reduced", "increased",
	"achieved", "integrated", "deployed", "automated", "maintained",
	"optimized", "migrated", "contributed", "conducted", "analyzed",
}

// ContinuationPrefixes mark lines that continue a previous sentence and can
// never open a new experience entry.
var ContinuationPrefixes = []string{
	"and ", "with ", "to ", "for ", "using ",
}

// ContainsRole reports whether the text mentions any known role title and
// returns the first one found (dictionary order).
func ContainsRole(text string) (string, bool) {
	lower := strings.ToLower(text)
	for _, role := range KnownRoles {
		if strings.Contains(lower, role) {
			return role, true
		}
	}
	return "", false
}

var roleKeywordRe = regexp.MustCompile(
	`\b(developer|engineer|intern|analyst|designer|manager|lead|architect|scientist|consultant|administrator|contributor|member|coordinator)\b`)

// ContainsRoleKeyword reports whether the text contains a generic role noun
// (used when no full title from KnownRoles matches).
func ContainsRoleKeyword(text string) bool {
	return roleKeywordRe.MatchString(strings.ToLower(text))
}
