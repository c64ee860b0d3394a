package dictionary

import (
	"regexp"
	"strings"
	"unicode"
)

// shortEntryLen is the length at or below which a dictionary entry needs a
// word-boundary match. Substring containment for entries like "r" or "go"
// would otherwise fire inside "Director" or "Django".
const shortEntryLen = 3

// SkillMatcher matches text against the skill dictionary. Patterns for short
// entries are compiled once at construction; the matcher is immutable and safe
// for concurrent use.
type SkillMatcher struct {
	entries []matchEntry
	exact   map[string]bool
}

type matchEntry struct {
	name string
	word *regexp.Regexp // non-nil for short entries
}

// NewSkillMatcher builds a matcher over the default skill dictionary.
func NewSkillMatcher() *SkillMatcher {
	return NewSkillMatcherFrom(KnownSkills)
}

// NewSkillMatcherFrom builds a matcher over a custom dictionary. Entries are
// lower-cased; duplicates are dropped.
func NewSkillMatcherFrom(skills []string) *SkillMatcher {
	m := &SkillMatcher{exact: make(map[string]bool, len(skills))}
	for _, skill := range skills {
		name := strings.ToLower(strings.TrimSpace(skill))
		if name == "" || m.exact[name] {
			continue
		}
		m.exact[name] = true
		entry := matchEntry{name: name}
		if len(name) <= shortEntryLen {
			entry.word = regexp.MustCompile(`\b` + regexp.QuoteMeta(name) + `\b`)
		}
		m.entries = append(m.entries, entry)
	}
	return m
}

// MatchLine returns every dictionary entry found in the line, in dictionary
// order. Short entries require a word-boundary match; longer entries use
// case-insensitive substring containment.
func (m *SkillMatcher) MatchLine(line string) []string {
	lower := strings.ToLower(line)
	var found []string
	for _, e := range m.entries {
		if e.word != nil {
			if e.word.MatchString(lower) {
				found = append(found, e.name)
			}
		} else if strings.Contains(lower, e.name) {
			found = append(found, e.name)
		}
	}
	return found
}

// Contains reports exact dictionary membership of a normalized token.
func (m *SkillMatcher) Contains(token string) bool {
	return m.exact[strings.ToLower(strings.TrimSpace(token))]
}

// listDelimiters split skill-section lines into individual segments.
var listDelimiters = regexp.MustCompile(`[,•·:\-]`)

// categoryLabelRe strips a leading category label from a segment.
var categoryLabelRe = regexp.MustCompile(`^(` + strings.Join(categoryLabels, "|") + `)\s*`)

// HasListDelimiter reports whether the line looks like a delimited skill list.
func HasListDelimiter(line string) bool {
	return strings.ContainsAny(line, ",•·:-")
}

// MatchSegments splits a delimited list line and returns the segments that are
// exact dictionary members after trimming and label stripping. Segments of
// two characters or fewer are ignored to avoid stray initials.
func (m *SkillMatcher) MatchSegments(line string) []string {
	var found []string
	for _, part := range listDelimiters.Split(line, -1) {
		seg := strings.ToLower(strings.TrimSpace(part))
		seg = categoryLabelRe.ReplaceAllString(seg, "")
		if len(seg) > 2 && m.exact[seg] {
			found = append(found, seg)
		}
	}
	return found
}

// techLabelRe matches an explicit technology label and captures the list that
// follows it: "Tech: Go, Redis", "Technologies used: ...", "Built with ...",
// "Stack: ...".
var techLabelRe = regexp.MustCompile(`(?i)(tech(?:nologies)?(?:\s+used)?|built\s+with|stack)[:\s]*(.+)`)

// fillerWordRe removes connective words from a technology segment.
var fillerWordRe = regexp.MustCompile(`\b(and|or|with)\b`)

// ExtractTechnologies pulls dictionary skills out of a single project or
// description line. Two layouts are recognized: an explicit label followed by
// a comma/slash-separated list, and the pipe-delimited "title | techlist"
// form. Returned names are lower-case dictionary entries.
func (m *SkillMatcher) ExtractTechnologies(line string) []string {
	var found []string
	if match := techLabelRe.FindStringSubmatch(line); match != nil {
		for _, part := range strings.FieldsFunc(match[2], func(r rune) bool { return r == ',' || r == '/' }) {
			seg := strings.TrimSpace(fillerWordRe.ReplaceAllString(strings.ToLower(part), ""))
			found = append(found, m.MatchLine(seg)...)
		}
		return found
	}
	if strings.Contains(line, "|") {
		for _, part := range strings.Split(line, "|") {
			found = append(found, m.MatchLine(strings.TrimSpace(part))...)
		}
	}
	return found
}

// Title renders a dictionary entry in display case: the first letter of every
// alphabetic run is upper-cased, the rest lowered ("ci/cd" -> "Ci/Cd",
// "machine learning" -> "Machine Learning").
func Title(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	prevLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			if prevLetter {
				b.WriteRune(unicode.ToLower(r))
			} else {
				b.WriteRune(unicode.ToUpper(r))
			}
			prevLetter = true
		} else {
			b.WriteRune(r)
			prevLetter = false
		}
	}
	return b.String()
}
