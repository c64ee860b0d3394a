package scoring

// Config holds the scoring weights and thresholds. The defaults are
// empirically tuned values; they are configuration, not invariants.
type Config struct {
	MustHaveWeight   float64 `json:"must_have_weight"`
	GoodToHaveWeight float64 `json:"good_to_have_weight"`

	// ContextualBoost replaces the exact-match multiplier when an action
	// verb backs the skill in a resume sentence.
	ContextualBoost float64 `json:"contextual_boost"`

	// SemanticCredit is the partial-credit multiplier for skills recovered
	// from sentence text rather than the extracted skill set.
	SemanticCredit float64 `json:"semantic_credit"`

	// SemanticThreshold is the minimum cosine similarity for an embedding
	// match to count as recovery.
	SemanticThreshold float64 `json:"semantic_threshold"`

	// MissingPenaltyThreshold is the fraction of missing must-have skills
	// above which MissingPenaltyFactor scales the raw score down.
	MissingPenaltyThreshold float64 `json:"missing_penalty_threshold"`
	MissingPenaltyFactor    float64 `json:"missing_penalty_factor"`

	StrongFitMin   float64 `json:"strong_fit_min"`
	ModerateFitMin float64 `json:"moderate_fit_min"`
}

// DefaultConfig returns the tuned default weights.
func DefaultConfig() Config {
	return Config{
		MustHaveWeight:          1.0,
		GoodToHaveWeight:        0.5,
		ContextualBoost:         1.3,
		SemanticCredit:          0.6,
		SemanticThreshold:       0.60,
		MissingPenaltyThreshold: 0.4,
		MissingPenaltyFactor:    0.6,
		StrongFitMin:            75,
		ModerateFitMin:          50,
	}
}
