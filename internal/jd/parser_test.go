package jd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTieredHeaders(t *testing.T) {
	p := NewParser()

	set := p.Parse(`Requirements:
Python and Django experience
Kubernetes in production

Nice to have:
React and TypeScript`)

	assert.Equal(t, []string{"python", "django", "kubernetes"}, set.MustHave)
	assert.ElementsMatch(t, []string{"react", "typescript"}, set.GoodToHave)
	assert.ElementsMatch(t, []string{"python", "django", "kubernetes", "react", "typescript"}, set.AllKeywords)
}

func TestParseDefaultTierIsMustHave(t *testing.T) {
	p := NewParser()

	set := p.Parse("We are looking for a Python developer with Docker experience.")
	assert.Equal(t, []string{"python", "docker"}, set.MustHave)
	assert.Empty(t, set.GoodToHave)
}

func TestParseInlineHeaderDetected(t *testing.T) {
	p := NewParser()

	set := p.Parse("Strong Python skills. Preferred: experience with AWS and Terraform.")
	assert.Contains(t, set.MustHave, "python")
	assert.Contains(t, set.GoodToHave, "aws")
	assert.Contains(t, set.GoodToHave, "terraform")
	assert.NotContains(t, set.MustHave, "aws")
}

func TestParseInlineHeaderGluedToPunctuation(t *testing.T) {
	p := NewParser()

	set := p.Parse("Strong Python skills.Preferred: experience with AWS.")
	assert.Contains(t, set.MustHave, "python")
	assert.Contains(t, set.GoodToHave, "aws")
	assert.NotContains(t, set.MustHave, "aws")
}

func TestParseHeaderLineTrailingContent(t *testing.T) {
	p := NewParser()

	set := p.Parse("Must have: Java and Spring")
	assert.Equal(t, []string{"java", "spring"}, set.MustHave)
}

func TestParseDeduplicatesWithinTier(t *testing.T) {
	p := NewParser()

	set := p.Parse("Requirements:\nPython, Python and more Python\nPython again")
	assert.Equal(t, []string{"python"}, set.MustHave)
	assert.Equal(t, []string{"python"}, set.AllKeywords)
}

func TestParseEmptyDescription(t *testing.T) {
	p := NewParser()

	set := p.Parse("")
	require.NotNil(t, set)
	assert.Empty(t, set.MustHave)
	assert.Empty(t, set.GoodToHave)
	assert.Empty(t, set.AllKeywords)
}
