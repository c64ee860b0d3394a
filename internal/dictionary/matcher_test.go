package dictionary

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchLineShortEntriesNeedBoundaries(t *testing.T) {
	m := NewSkillMatcherFrom([]string{"r", "go", "c++", "python", "django"})

	tests := []struct {
		name     string
		line     string
		expected []string
	}{
		{"Short entry inside word ignored", "Senior Director of Engineering", nil},
		{"Short entry as word matched", "Statistical analysis in R and Python", []string{"r", "python"}},
		{"Go inside Django ignored", "Django developer", []string{"django"}},
		{"Go as word matched", "Backend services in Go", []string{"go"}},
		{"Long entry substring matched", "Experience with python3", []string{"python"}},
		{"Empty line", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, m.MatchLine(tt.line))
		})
	}
}

func TestMatchSegments(t *testing.T) {
	m := NewSkillMatcher()

	tests := []struct {
		name     string
		line     string
		expected []string
	}{
		{"Comma list", "Python, Java, Kubernetes", []string{"python", "java", "kubernetes"}},
		{"Bullet list", "• Docker • Jenkins", []string{"docker", "jenkins"}},
		{"Category label stripped", "Languages: Python, Java", []string{"python", "java"}},
		{"Non-dictionary segments dropped", "Cooking, Python, Chess", []string{"python"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, m.MatchSegments(tt.line))
		})
	}
}

func TestCategoryLabelStripping(t *testing.T) {
	m := NewSkillMatcher()
	for _, label := range categoryLabels {
		assert.Equal(t, []string{"python"}, m.MatchSegments(label+" python"), "label %q", label)
	}
}

func TestExtractTechnologies(t *testing.T) {
	m := NewSkillMatcher()

	tests := []struct {
		name     string
		line     string
		expected []string
	}{
		{"Tech label", "Tech: Python, Django, PostgreSQL", []string{"python", "django", "postgresql"}},
		{"Built with", "Built with React and Node.js", []string{"react", "node.js"}},
		{"Pipe layout", "Chat App | Python, Redis", []string{"python", "redis"}},
		{"No technologies", "Led a team of five engineers", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, m.ExtractTechnologies(tt.line))
		})
	}
}

func TestTitle(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"Single word", "python", "Python"},
		{"Multi word", "machine learning", "Machine Learning"},
		{"Separator restarts casing", "ci/cd", "Ci/Cd"},
		{"Dotted name", "node.js", "Node.Js"},
		{"Already cased", "PYTHON", "Python"},
		{"Empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Title(tt.input))
		})
	}
}
