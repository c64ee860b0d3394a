// Package scoring computes the match score between a resume's extracted
// skills and a tiered job-description skill set.
package scoring

import (
	"context"
	"math"
	"regexp"
	"strings"

	"github.com/meetoza/resume-analyzer/internal/embedding"
	"github.com/meetoza/resume-analyzer/internal/jd"
)

// actionVerbRe backs the contextual boost: a sentence mentioning the skill
// counts as hands-on evidence only when one of these verbs appears too. No
// trailing boundary, so inflected forms ("building", "deployed") match.
var actionVerbRe = regexp.MustCompile(`\b(?:build|develop|design|implement|optimize|deploy|scale|integrate|maintain|architect|create|manage|lead|engineer|test|debug)`)

// Scorer scores resumes against job descriptions. The embedding provider is
// optional: with a nil provider, or when the provider errors, semantic
// recovery degrades to literal sentence containment only.
type Scorer struct {
	cfg      Config
	provider embedding.Provider
}

func NewScorer(cfg Config, provider embedding.Provider) *Scorer {
	return &Scorer{cfg: cfg, provider: provider}
}

// sentenceVectors lazily embeds the resume sentences once per scoring call
// and reuses the vectors across every missing skill.
type sentenceVectors struct {
	vecs   [][]float32
	loaded bool
	failed bool
}

// Score matches every tiered skill against the resume using three escalating
// strategies: exact set membership (with a contextual verb boost), literal
// sentence containment, and embedding similarity. The score is the achieved
// fraction of the total tier weight, scaled to 0..100.
func (s *Scorer) Score(ctx context.Context, resumeSkills []string, skillSet *jd.SkillSet, sentences []string) *Result {
	have := make(map[string]bool, len(resumeSkills))
	for _, skill := range resumeSkills {
		have[normalize(skill)] = true
	}
	lowerSentences := make([]string, len(sentences))
	for i, sent := range sentences {
		lowerSentences[i] = strings.ToLower(sent)
	}

	result := &Result{
		Verdict: VerdictWeakFit,
		Breakdown: Breakdown{
			Exact:      []string{},
			Contextual: []ContextualMatch{},
			Semantic:   []SemanticMatch{},
			Missing:    []string{},
		},
		Details: Details{
			TotalMustHave:   len(skillSet.MustHave),
			TotalGoodToHave: len(skillSet.GoodToHave),
		},
	}

	var (
		achieved, possible float64
		missingMustHave    int
		cache              sentenceVectors
	)

	tiers := []struct {
		skills []string
		weight float64
		must   bool
	}{
		{skillSet.MustHave, s.cfg.MustHaveWeight, true},
		{skillSet.GoodToHave, s.cfg.GoodToHaveWeight, false},
	}
	for _, t := range tiers {
		for _, skill := range t.skills {
			target := normalize(skill)
			possible += t.weight

			if have[target] {
				multiplier := 1.0
				if idx := contextualEvidence(target, lowerSentences); idx >= 0 {
					multiplier = s.cfg.ContextualBoost
					result.Breakdown.Contextual = append(result.Breakdown.Contextual, ContextualMatch{
						Skill:    target,
						Evidence: sentences[idx],
					})
				}
				achieved += t.weight * multiplier
				result.Breakdown.Exact = append(result.Breakdown.Exact, target)
				continue
			}

			if match, ok := s.recover(ctx, target, sentences, lowerSentences, &cache); ok {
				achieved += t.weight * s.cfg.SemanticCredit
				result.Breakdown.Semantic = append(result.Breakdown.Semantic, match)
				continue
			}

			result.Breakdown.Missing = append(result.Breakdown.Missing, target)
			if t.must {
				missingMustHave++
			}
		}
	}

	if possible == 0 {
		return result
	}

	score := achieved / possible * 100
	if score > 100 {
		score = 100
	}
	if n := len(skillSet.MustHave); n > 0 {
		if float64(missingMustHave)/float64(n) > s.cfg.MissingPenaltyThreshold {
			score *= s.cfg.MissingPenaltyFactor
		}
	}
	result.Score = math.Round(score*100) / 100
	result.Verdict = s.verdict(result.Score)
	return result
}

// contextualEvidence returns the index of the first sentence that mentions
// the skill alongside an action verb, or -1.
func contextualEvidence(target string, lowerSentences []string) int {
	for i, lower := range lowerSentences {
		if strings.Contains(lower, target) && actionVerbRe.MatchString(lower) {
			return i
		}
	}
	return -1
}

// recover attempts semantic recovery for a skill missing from the exact set.
// Literal sentence containment wins with confidence 1.0; otherwise the skill
// is embedded and compared against the cached sentence vectors, accepting the
// best match above the similarity threshold. Embedding failures are treated
// as no match.
func (s *Scorer) recover(ctx context.Context, target string, sentences, lowerSentences []string, cache *sentenceVectors) (SemanticMatch, bool) {
	for i, lower := range lowerSentences {
		if strings.Contains(lower, target) {
			return SemanticMatch{Skill: target, Evidence: sentences[i], Confidence: 1.0}, true
		}
	}

	if s.provider == nil || len(sentences) == 0 {
		return SemanticMatch{}, false
	}
	if !cache.loaded {
		cache.loaded = true
		vecs, err := s.provider.EmbedBatch(ctx, sentences)
		if err != nil {
			cache.failed = true
		} else {
			cache.vecs = vecs
		}
	}
	if cache.failed {
		return SemanticMatch{}, false
	}

	skillVec, err := s.provider.Embed(ctx, target)
	if err != nil {
		return SemanticMatch{}, false
	}

	bestIdx, bestScore := -1, 0.0
	for i, vec := range cache.vecs {
		if sim := embedding.CosineSimilarity(skillVec, vec); sim > bestScore {
			bestIdx, bestScore = i, sim
		}
	}
	if bestIdx < 0 || bestScore <= s.cfg.SemanticThreshold {
		return SemanticMatch{}, false
	}
	return SemanticMatch{
		Skill:      target,
		Evidence:   sentences[bestIdx],
		Confidence: math.Round(bestScore*100) / 100,
	}, true
}

func (s *Scorer) verdict(score float64) string {
	switch {
	case score >= s.cfg.StrongFitMin:
		return VerdictStrongFit
	case score >= s.cfg.ModerateFitMin:
		return VerdictModerateFit
	default:
		return VerdictWeakFit
	}
}

func normalize(skill string) string {
	return strings.ToLower(strings.TrimSpace(skill))
}
