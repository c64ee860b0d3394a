package dictionary

import "regexp"

// DegreeRe matches degree keywords on word boundaries, tolerating embedded
// periods and spacing ("B.Tech", "b tech", "M.Tech").
var DegreeRe = regexp.MustCompile(
	`(?i)\b(b\.?\s*tech|bachelor|b\.?\s*e\.?|m\.?\s*tech|master|mba|bca|mca|phd)\b`)

// DegreeLooseRe is the fallback for concatenated extraction artifacts like
// "btechin computer science" where word boundaries were lost.
var DegreeLooseRe = regexp.MustCompile(
	`(?i)(b\.?tech|btech|b-tech|bachelor|b\.?e\.?|m\.?tech|mtech|master|mba|bca|mca|phd)`)

// SpecializationRe matches the field of study on a degree line.
var SpecializationRe = regexp.MustCompile(
	`(?i)(computer science and engineering|computer science|information technology|data science|electronics|mechanical|electrical|civil|computer engineering)`)

// SchoolIndicators flag high-school / pre-university lines, which the
// education extractor discards.
var SchoolIndicators = []string{
	"xii", "12th", "hsc", "higher secondary", "junior college",
	"senior secondary", "intermediate", "pre-university",
}

// InstitutionKeywords identify a line carrying a college or university name.
var InstitutionKeywords = []string{"institute", "university", "college", "academy"}

// InstitutionRe captures the capitalized run ending in an institution keyword.
var InstitutionRe = regexp.MustCompile(
	`(?i)([A-Z][a-zA-Z\s\.]+(?:institute|university|college|academy)[a-zA-Z\s,\.]*)`)

// CGPARe captures a grade-point figure ("CGPA: 8.9", "cgpa - 9").
var CGPARe = regexp.MustCompile(`cgpa[:\-\s]*([0-9.]+)`)

// GradYearRe matches a graduation year token.
var GradYearRe = regexp.MustCompile(`\b(20\d{2})\b`)
