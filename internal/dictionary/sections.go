package dictionary

import "regexp"

// Section identifies a labeled resume section.
type Section string

// Resume section labels produced by the segmenter.
const (
	SectionEducation    Section = "education"
	SectionExperience   Section = "experience"
	SectionProjects     Section = "projects"
	SectionSkills       Section = "skills"
	SectionAchievements Section = "achievements"
	SectionUnlabeled    Section = "unlabeled"
)

// sectionPattern pairs a section label with its header pattern. Order matters:
// the first matching pattern wins, so "work experience" is classified before
// a later pattern could claim it.
type sectionPattern struct {
	Section Section
	Pattern *regexp.Regexp
}

// SectionPatterns are the resume header patterns, checked in order against
// lower-cased lines.
var SectionPatterns = []sectionPattern{
	{SectionEducation, regexp.MustCompile(`\b(education|academic|qualification)\b`)},
	{SectionExperience, regexp.MustCompile(`\b(experience|work|employment|internship)\b`)},
	{SectionProjects, regexp.MustCompile(`\b(projects?|portfolio)\b`)},
	{SectionSkills, regexp.MustCompile(`\b(skills?|technical|technologies|competencies)\b`)},
	{SectionAchievements, regexp.MustCompile(`\b(achievements?|certifications?|awards?)\b`)},
}

// HeaderMaxLen is the short-line threshold: lines at or above this length are
// never treated as section headers, so a long sentence that merely mentions
// "skills" stays in its current section.
const HeaderMaxLen = 50

// MatchSectionHeader classifies a line as a section header. The line must
// match a header pattern and be shorter than HeaderMaxLen.
func MatchSectionHeader(lowerLine string) (Section, bool) {
	if len(lowerLine) >= HeaderMaxLen {
		return "", false
	}
	for _, sp := range SectionPatterns {
		if sp.Pattern.MatchString(lowerLine) {
			return sp.Section, true
		}
	}
	return "", false
}

// Job-description tier header pattern sources. The jd parser compiles these
// into line-start and inline variants.
var (
	MustHavePatterns = []string{
		`must\s*have`, `required\s*skills?`, `requirements`, `qualifications`,
		`essential`, `minimum\s*qualifications`, `what\s*you\s*need`,
	}
	GoodToHavePatterns = []string{
		`good\s*to\s*have`, `nice\s*to\s*have`, `preferred`, `desired`,
		`plus`, `bonus`, `additional\s*skills?`,
	}
)
