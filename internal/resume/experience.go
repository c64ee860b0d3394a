package resume

import (
	"regexp"
	"strings"
	"time"

	"github.com/meetoza/resume-analyzer/internal/dictionary"
)

const monthAlt = `jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec`

var (
	// "Jan'23 - Mar'24", "January 2023 – March 2024" and the abbreviated
	// forms in between. The [a-z]* run absorbs full month names.
	monthRangeRe = regexp.MustCompile(
		`(?i)\b(` + monthAlt + `)[a-z]*[\s.'` + "`" + `’]*(\d{2,4})\s*[-–—]\s*(` + monthAlt + `)[a-z]*[\s.'` + "`" + `’]*(\d{2,4})`)

	// "Jun 2022 - Present"
	monthOpenRe = regexp.MustCompile(
		`(?i)\b(` + monthAlt + `)[a-z]*[\s.'` + "`" + `’]*(\d{2,4})\s*[-–—]\s*(present|current)`)

	// "2020-2022"
	yearRangeRe = regexp.MustCompile(`\b(\d{4})\s*[-–—]\s*(\d{4})\b`)

	percentRe       = regexp.MustCompile(`\d+(\.\d+)?\s*%`)
	trailingMonthRe = regexp.MustCompile(`(?i)[\s,]+(` + monthAlt + `)[a-z]*$`)
)

var monthIndex = map[string]time.Month{
	"jan": time.January, "feb": time.February, "mar": time.March,
	"apr": time.April, "may": time.May, "jun": time.June,
	"jul": time.July, "aug": time.August, "sep": time.September,
	"oct": time.October, "nov": time.November, "dec": time.December,
}

// ExtractExperience scans experience-section lines for role headers. A line
// survives the skip filters and is accepted as a role line when it carries a
// date range, a known role keyword, or a layout indicator (pipe or "remote")
// on a short line. Duration is parsed from the line itself or, failing that,
// from up to two lookahead lines. Records shorter than six characters are
// dropped and duplicates collapse on (role, months).
func (p *Parser) ExtractExperience(lines []string) []ExperienceRecord {
	var out []ExperienceRecord
	seen := make(map[ExperienceRecord]bool)

	for i, raw := range lines {
		line := strings.TrimSpace(raw)
		if skipExperienceLine(line) {
			continue
		}
		if !isRoleLine(line) {
			continue
		}

		months, matched, ok := p.parseDuration(line)
		if !ok {
			for j := i + 1; j <= i+2 && j < len(lines); j++ {
				if months, _, ok = p.parseDuration(strings.TrimSpace(lines[j])); ok {
					break
				}
			}
		}

		next := ""
		if i+1 < len(lines) {
			next = lines[i+1]
		}
		role := deriveRole(line, matched, next)
		role = strings.TrimSpace(trailingMonthRe.ReplaceAllString(role, ""))
		if len(role) <= 5 {
			continue
		}

		rec := ExperienceRecord{Role: role, Months: months}
		if !seen[rec] {
			seen[rec] = true
			out = append(out, rec)
		}
	}
	return out
}

// skipExperienceLine filters out lines that can never open an entry: blanks,
// bullet descriptions, lines led by a description verb, metric lines and
// sentence continuations.
func skipExperienceLine(line string) bool {
	if line == "" {
		return true
	}
	for _, prefix := range []string{"•", "-", "*", "·", "◦"} {
		if strings.HasPrefix(line, prefix) {
			return true
		}
	}
	lower := strings.ToLower(line)
	if fields := strings.Fields(lower); len(fields) > 0 {
		first := strings.Trim(fields[0], ".,:;")
		for _, verb := range dictionary.DescriptionVerbs {
			if first == verb {
				return true
			}
		}
	}
	if percentRe.MatchString(line) || strings.Contains(lower, "accuracy") {
		return true
	}
	for _, prefix := range dictionary.ContinuationPrefixes {
		if strings.HasPrefix(lower, prefix) {
			return true
		}
	}
	return false
}

func isRoleLine(line string) bool {
	if hasDatePattern(line) {
		return true
	}
	if _, ok := dictionary.ContainsRole(line); ok {
		return true
	}
	if dictionary.ContainsRoleKeyword(line) {
		return true
	}
	lower := strings.ToLower(line)
	return (strings.Contains(line, "|") || strings.Contains(lower, "remote")) && len(line) < 100
}

func hasDatePattern(line string) bool {
	return monthRangeRe.MatchString(line) || monthOpenRe.MatchString(line) || yearRangeRe.MatchString(line)
}

// parseDuration extracts a duration in months from the line, trying the
// closed month range, the open-ended month range, then the bare year range.
// Month-level ranges are counted inclusively; bare year ranges are whole
// years times twelve, mirroring the extraction heuristics this parser was
// tuned against. Returns the matched date substring for role derivation.
func (p *Parser) parseDuration(line string) (months int, matched string, ok bool) {
	if m := monthRangeRe.FindStringSubmatch(line); m != nil {
		start, okS := monthYear(m[1], m[2])
		end, okE := monthYear(m[3], m[4])
		if okS && okE && !end.Before(start) {
			return inclusiveMonths(start, end), m[0], true
		}
	}
	if m := monthOpenRe.FindStringSubmatch(line); m != nil {
		start, okS := monthYear(m[1], m[2])
		if okS {
			now := p.now()
			end := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
			if !end.Before(start) {
				return inclusiveMonths(start, end), m[0], true
			}
		}
	}
	if m := yearRangeRe.FindStringSubmatch(line); m != nil {
		startY := atoiYear(m[1])
		endY := atoiYear(m[2])
		if endY >= startY && startY >= 1900 && endY <= 2100 {
			return (endY - startY) * 12, m[0], true
		}
	}
	return 0, "", false
}

func inclusiveMonths(start, end time.Time) int {
	return (end.Year()-start.Year())*12 + int(end.Month()) - int(start.Month()) + 1
}

func monthYear(mon, year string) (time.Time, bool) {
	m, ok := monthIndex[strings.ToLower(mon)[:3]]
	if !ok {
		return time.Time{}, false
	}
	y := atoiYear(year)
	if y == 0 {
		return time.Time{}, false
	}
	return time.Date(y, m, 1, 0, 0, 0, 0, time.UTC), true
}

// atoiYear parses a 2- or 4-digit year; 2-digit years are 2000-based.
func atoiYear(s string) int {
	y := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0
		}
		y = y*10 + int(r-'0')
	}
	if y < 100 {
		y += 2000
	}
	return y
}

// deriveRole strips the matched date substring from the line, then falls back
// to comma-splitting (preferring the segment with a role keyword) and finally
// to the whole line when it has no delimiter but the next line carries the
// layout indicator.
func deriveRole(line, dateMatched, nextLine string) string {
	role := line
	if dateMatched != "" {
		role = strings.Replace(role, dateMatched, "", 1)
	}
	role = strings.Trim(role, " \t,|–—-")
	role = strings.Join(strings.Fields(role), " ")
	if len(role) > 5 {
		return role
	}

	if strings.ContainsAny(line, ",|") {
		parts := strings.FieldsFunc(line, func(r rune) bool { return r == ',' || r == '|' })
		for _, part := range parts {
			if _, ok := dictionary.ContainsRole(part); ok || dictionary.ContainsRoleKeyword(part) {
				return strings.TrimSpace(part)
			}
		}
		if len(parts) > 0 {
			return strings.TrimSpace(parts[0])
		}
		return role
	}

	nextLower := strings.ToLower(nextLine)
	if strings.Contains(nextLine, "|") || strings.Contains(nextLower, "remote") {
		return strings.TrimSpace(line)
	}
	return role
}
