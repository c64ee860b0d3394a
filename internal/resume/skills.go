package resume

import (
	"sort"
	"strings"

	"github.com/meetoza/resume-analyzer/internal/dictionary"
)

// ExtractSkills merges three passes into one sorted, title-cased skill list:
// dictionary matches inside skill-section lines, technologies collected from
// project lines, and — only when both of those produced nothing — a fallback
// scan over the full document. The result is deterministic for a given input.
func (p *Parser) ExtractSkills(skillLines, projectTechs []string, fullText string) []string {
	found := make(map[string]bool)

	for _, line := range skillLines {
		for _, name := range p.matcher.MatchLine(line) {
			found[name] = true
		}
		if dictionary.HasListDelimiter(line) {
			for _, name := range p.matcher.MatchSegments(line) {
				found[name] = true
			}
		}
	}

	for _, tech := range projectTechs {
		found[strings.ToLower(tech)] = true
	}

	if len(found) == 0 {
		for _, name := range p.matcher.MatchLine(fullText) {
			found[name] = true
		}
	}

	skills := make([]string, 0, len(found))
	for name := range found {
		skills = append(skills, dictionary.Title(name))
	}
	sort.Strings(skills)
	return skills
}
