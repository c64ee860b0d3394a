// Package jd parses free-text job descriptions into tiered skill
// requirements.
package jd

import (
	"regexp"
	"strings"

	"github.com/meetoza/resume-analyzer/internal/dictionary"
)

// SkillSet is the tiered requirement set extracted from a job description.
// AllKeywords preserves first-seen order across both tiers.
type SkillSet struct {
	MustHave    []string `json:"must_have"`
	GoodToHave  []string `json:"good_to_have"`
	AllKeywords []string `json:"all_keywords"`
}

type tier int

const (
	tierMustHave tier = iota
	tierGoodToHave
)

// Parser segments a job description into must-have and good-to-have tiers
// and extracts dictionary skills from each. Safe for concurrent use.
type Parser struct {
	matcher *dictionary.SkillMatcher

	mustHaveLine   *regexp.Regexp
	goodToHaveLine *regexp.Regexp
	inlineHeader   *regexp.Regexp
}

func NewParser() *Parser {
	must := strings.Join(dictionary.MustHavePatterns, "|")
	good := strings.Join(dictionary.GoodToHavePatterns, "|")
	return &Parser{
		matcher:        dictionary.NewSkillMatcher(),
		mustHaveLine:   regexp.MustCompile(`(?i)^\s*(` + must + `)\b[:\s]*(.*)$`),
		goodToHaveLine: regexp.MustCompile(`(?i)^\s*(` + good + `)\b[:\s]*(.*)$`),
		inlineHeader:   regexp.MustCompile(`(?i)(\S)\s*\b(` + must + `|` + good + `)\b`),
	}
}

// Parse walks the job description line by line. A line opening with a tier
// header switches the active tier and any trailing content on the header line
// is processed under the new tier. Everything else accumulates under the
// active tier, which starts as must-have.
func (p *Parser) Parse(text string) *SkillSet {
	// Break headers buried mid-paragraph onto their own lines so the
	// line-start match below can see them.
	text = p.inlineHeader.ReplaceAllString(text, "$1\n$2")

	set := &SkillSet{
		MustHave:    []string{},
		GoodToHave:  []string{},
		AllKeywords: []string{},
	}
	seen := map[tier]map[string]bool{
		tierMustHave:   {},
		tierGoodToHave: {},
	}
	seenAll := map[string]bool{}

	active := tierMustHave
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if m := p.mustHaveLine.FindStringSubmatch(line); m != nil {
			active = tierMustHave
			line = m[2]
		} else if m := p.goodToHaveLine.FindStringSubmatch(line); m != nil {
			active = tierGoodToHave
			line = m[2]
		}
		if line == "" {
			continue
		}
		for _, skill := range p.matcher.MatchLine(line) {
			if !seen[active][skill] {
				seen[active][skill] = true
				switch active {
				case tierMustHave:
					set.MustHave = append(set.MustHave, skill)
				case tierGoodToHave:
					set.GoodToHave = append(set.GoodToHave, skill)
				}
			}
			if !seenAll[skill] {
				seenAll[skill] = true
				set.AllKeywords = append(set.AllKeywords, skill)
			}
		}
	}
	return set
}
