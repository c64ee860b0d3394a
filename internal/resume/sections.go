package resume

import (
	"strings"

	"github.com/meetoza/resume-analyzer/internal/dictionary"
)

// Sections groups the non-empty resume lines by detected section. Header
// lines themselves are consumed by the switch and appear in no bucket; every
// other non-empty line lands in exactly one bucket.
type Sections struct {
	Education    []string
	Experience   []string
	Projects     []string
	Skills       []string
	Achievements []string
	Unlabeled    []string

	// ProjectTechnologies collects dictionary skills found on project lines
	// while they are being bucketed, so the skill extractor can merge them.
	ProjectTechnologies []string
}

// SplitSections walks the text line by line, switching the current section
// whenever a short header line matches a section pattern. Lines before the
// first header fall into the unlabeled bucket.
func (p *Parser) SplitSections(text string) *Sections {
	s := &Sections{}
	current := dictionary.SectionUnlabeled

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		if section, ok := dictionary.MatchSectionHeader(strings.ToLower(line)); ok {
			current = section
			continue
		}

		s.append(current, line)
		if current == dictionary.SectionProjects {
			s.ProjectTechnologies = append(s.ProjectTechnologies, p.matcher.ExtractTechnologies(line)...)
		}
	}
	return s
}

func (s *Sections) append(section dictionary.Section, line string) {
	switch section {
	case dictionary.SectionEducation:
		s.Education = append(s.Education, line)
	case dictionary.SectionExperience:
		s.Experience = append(s.Experience, line)
	case dictionary.SectionProjects:
		s.Projects = append(s.Projects, line)
	case dictionary.SectionSkills:
		s.Skills = append(s.Skills, line)
	case dictionary.SectionAchievements:
		s.Achievements = append(s.Achievements, line)
	default:
		s.Unlabeled = append(s.Unlabeled, line)
	}
}
