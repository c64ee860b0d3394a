package scoring

// Verdict labels for the final score.
const (
	VerdictStrongFit   = "Strong Fit"
	VerdictModerateFit = "Moderate Fit"
	VerdictWeakFit     = "Weak Fit"
)

// ContextualMatch is an exact match backed by an action-verb sentence.
type ContextualMatch struct {
	Skill    string `json:"skill"`
	Evidence string `json:"evidence"`
}

// SemanticMatch is a skill absent from the extracted set but recovered from
// sentence text, either literally (confidence 1.0) or via embedding
// similarity.
type SemanticMatch struct {
	Skill      string  `json:"skill"`
	Evidence   string  `json:"evidence"`
	Confidence float64 `json:"confidence"`
}

// Breakdown records how each job-description skill was matched.
type Breakdown struct {
	Exact      []string          `json:"exact"`
	Contextual []ContextualMatch `json:"contextual"`
	Semantic   []SemanticMatch   `json:"semantic"`
	Missing    []string          `json:"missing"`
}

// Details carries the tier sizes the score was computed over.
type Details struct {
	TotalMustHave   int `json:"total_must_have"`
	TotalGoodToHave int `json:"total_good_to_have"`
}

// Result is the outcome of one scoring call.
type Result struct {
	Score     float64   `json:"score"`
	Verdict   string    `json:"verdict"`
	Breakdown Breakdown `json:"breakdown"`
	Details   Details   `json:"details"`
}
