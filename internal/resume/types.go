// Package resume extracts structured facts from free-form resume text:
// contact details, skills, education records and experience records, plus the
// sentence corpus the scorer uses as matching evidence. Extraction is
// best-effort and heuristic; a miss is an empty field, never an error.
package resume

// ParsedResume is the structured result of one parse. It is built once per
// document and not mutated afterwards.
type ParsedResume struct {
	Name       string             `json:"name"`
	Email      string             `json:"email"`
	Phone      string             `json:"phone"`
	Skills     []string           `json:"skills"`
	Education  []EducationRecord  `json:"education"`
	Experience []ExperienceRecord `json:"experience"`
	Sentences  []string           `json:"sentences"`
}

// EducationRecord describes one detected degree mention. Every record carries
// all four fields so downstream consumers never test for missing keys; absent
// values are empty strings. A record is only emitted when Course is non-empty.
type EducationRecord struct {
	Course         string `json:"course"`
	College        string `json:"college"`
	GraduationYear string `json:"graduation_year"`
	CGPA           string `json:"cgpa"`
}

// ExperienceRecord describes one detected role. Months is the inclusive
// duration in months, 0 when no date range could be parsed. Records are only
// emitted when Role is longer than five characters, deduplicated by
// (Role, Months).
type ExperienceRecord struct {
	Role   string `json:"role"`
	Months int    `json:"months"`
}

// BasicInfo holds contact details pulled from the top of the document.
type BasicInfo struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}
