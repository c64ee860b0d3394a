package resume

import (
	"regexp"
	"strings"

	"github.com/meetoza/resume-analyzer/internal/dictionary"
)

// eduAccumulator is the single open education record being filled while
// scanning section lines. A record is complete (and eligible for emission)
// once a degree line has set its course.
type eduAccumulator struct {
	record EducationRecord
	out    []EducationRecord
}

// flush emits the open record only once a degree line has completed it.
// Partial records keep their institution and year fields so a degree line
// appearing below them can claim those fields.
func (a *eduAccumulator) flush() {
	if a.record.Course != "" {
		a.out = append(a.out, a.record)
		a.record = EducationRecord{}
	}
}

// discard emits any completed record and drops whatever partial fields remain.
func (a *eduAccumulator) discard() {
	a.flush()
	a.record = EducationRecord{}
}

var (
	instYearRe    = regexp.MustCompile(`\b(20\d{2}|19\d{2})\b`)
	instMonthRe   = regexp.MustCompile(`(?i)(jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\s*\d{4}`)
	instPresentRe = regexp.MustCompile(`(?i)[–—-]\s*(present|current).*$`)
	multiSpaceRe  = regexp.MustCompile(`\s+`)
	trailCommaRe  = regexp.MustCompile(`,\s*$`)
)

// ExtractEducation runs the per-line state machine over the education section.
// Degree keywords open a new record (flushing any completed one); institution,
// year and CGPA patterns fill the open record independently; high-school
// indicator lines flush and are discarded. Records without a course are never
// emitted.
func (p *Parser) ExtractEducation(lines []string) []EducationRecord {
	acc := &eduAccumulator{}

	for _, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		lower := strings.ToLower(line)

		if isSchoolLine(lower) {
			acc.discard()
			continue
		}

		if degree := matchDegree(line); degree != "" {
			acc.flush()
			if spec := dictionary.SpecializationRe.FindString(line); spec != "" {
				acc.record.Course = dictionary.Title(degree + " in " + strings.TrimSpace(spec))
			} else {
				acc.record.Course = dictionary.Title(degree)
			}
		}

		if acc.record.College == "" && containsInstitutionKeyword(lower) {
			if name := cleanInstitutionName(dictionary.InstitutionRe.FindString(line)); name != "" {
				acc.record.College = name
			}
		}

		if acc.record.GraduationYear == "" {
			if years := dictionary.GradYearRe.FindAllString(line, -1); len(years) > 0 {
				acc.record.GraduationYear = years[len(years)-1]
			}
		}

		if m := dictionary.CGPARe.FindStringSubmatch(lower); m != nil {
			acc.record.CGPA = m[1]
		}
	}

	acc.flush()
	return acc.out
}

func isSchoolLine(lower string) bool {
	for _, indicator := range dictionary.SchoolIndicators {
		if strings.Contains(lower, indicator) {
			return true
		}
	}
	return false
}

func containsInstitutionKeyword(lower string) bool {
	for _, kw := range dictionary.InstitutionKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// matchDegree tries the word-boundary pattern first, then the loose variant
// that survives concatenated extraction artifacts.
func matchDegree(line string) string {
	if m := dictionary.DegreeRe.FindString(line); m != "" {
		return strings.TrimSpace(m)
	}
	return strings.TrimSpace(dictionary.DegreeLooseRe.FindString(line))
}

// cleanInstitutionName strips embedded years, month-year fragments, trailing
// "present"/"current" ranges and a trailing comma from the captured name.
func cleanInstitutionName(name string) string {
	if name == "" {
		return ""
	}
	name = instYearRe.ReplaceAllString(name, "")
	name = instMonthRe.ReplaceAllString(name, "")
	name = instPresentRe.ReplaceAllString(name, "")
	name = multiSpaceRe.ReplaceAllString(name, " ")
	name = trailCommaRe.ReplaceAllString(strings.TrimSpace(name), "")
	return strings.TrimSpace(name)
}
