// Package resume turns raw resume text into a structured profile: contact
// details, skills, education history and work experience, plus the sentence
// list downstream scoring runs against.
package resume

import (
	"regexp"
	"strings"
	"time"

	"github.com/meetoza/resume-analyzer/internal/dictionary"
)

var sentenceSplitRe = regexp.MustCompile(`[.\n•]`)

// Parser extracts structured data from resume text. It is safe for
// concurrent use.
type Parser struct {
	matcher *dictionary.SkillMatcher
	now     func() time.Time
}

func NewParser() *Parser {
	return &Parser{
		matcher: dictionary.NewSkillMatcher(),
		now:     time.Now,
	}
}

// Parse partitions the text into sections and runs every extractor over its
// slice of the document. The input is expected to be line-broken plain text;
// layout-extraction artifacts are repaired upstream by the ingestion layer.
func (p *Parser) Parse(text string) *ParsedResume {
	info := ExtractBasicInfo(text)
	sections := p.SplitSections(text)

	return &ParsedResume{
		Name:       info.Name,
		Email:      info.Email,
		Phone:      info.Phone,
		Skills:     p.ExtractSkills(sections.Skills, sections.ProjectTechnologies, text),
		Education:  p.ExtractEducation(sections.Education),
		Experience: p.ExtractExperience(sections.Experience),
		Sentences:  splitSentences(text),
	}
}

// splitSentences breaks the document on periods, newlines and bullet marks.
// Empty fragments are dropped.
func splitSentences(text string) []string {
	parts := sentenceSplitRe.Split(text, -1)
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if s := strings.TrimSpace(part); s != "" {
			out = append(out, s)
		}
	}
	return out
}
