package dictionary

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchSectionHeader(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		section  Section
		isHeader bool
	}{
		{"Education header", "education", SectionEducation, true},
		{"Academic variant", "academic qualifications", SectionEducation, true},
		{"Work experience", "work experience", SectionExperience, true},
		{"Internships", "internship", SectionExperience, true},
		{"Projects", "projects", SectionProjects, true},
		{"Technical skills", "technical skills", SectionSkills, true},
		{"Certifications", "certifications", SectionAchievements, true},
		{"Long line never a header", strings.Repeat("skills and experience ", 4), "", false},
		{"Plain sentence", "built a chat app", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			section, ok := MatchSectionHeader(tt.line)
			assert.Equal(t, tt.isHeader, ok)
			assert.Equal(t, tt.section, section)
		})
	}
}
