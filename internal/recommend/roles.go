// Package recommend suggests target roles for a resume by comparing its text
// against per-role skill profiles in embedding space.
package recommend

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"
	"sync"

	"github.com/meetoza/resume-analyzer/internal/embedding"
)

// RoleProfile describes a role by the skills typically expected of it.
type RoleProfile struct {
	Role   string   `json:"role"`
	Skills []string `json:"skills"`
}

// Match is one recommended role with its similarity to the resume.
type Match struct {
	Role       string  `json:"role"`
	Similarity float64 `json:"similarity"`
}

// DefaultRoleProfiles returns the built-in role catalog.
func DefaultRoleProfiles() []RoleProfile {
	return []RoleProfile{
		{"Backend Developer", []string{"python", "java", "go", "sql", "rest api", "docker", "microservices"}},
		{"Frontend Developer", []string{"javascript", "typescript", "react", "html", "css", "redux"}},
		{"Full Stack Developer", []string{"javascript", "react", "node.js", "sql", "mongodb", "rest api"}},
		{"Data Scientist", []string{"python", "machine learning", "pandas", "numpy", "statistics", "sql"}},
		{"Machine Learning Engineer", []string{"python", "tensorflow", "pytorch", "machine learning", "docker", "mlops"}},
		{"DevOps Engineer", []string{"docker", "kubernetes", "aws", "ci/cd", "terraform", "linux"}},
		{"Data Engineer", []string{"python", "sql", "spark", "airflow", "etl", "data warehousing"}},
		{"Mobile Developer", []string{"kotlin", "swift", "flutter", "react native", "android", "ios"}},
	}
}

// Recommender ranks role profiles by embedding similarity to a resume. The
// profile vectors are computed once on first use and shared across calls.
type Recommender struct {
	provider embedding.Provider
	profiles []RoleProfile

	mu   sync.Mutex
	vecs [][]float32
}

// NewRecommender builds a recommender over the given profiles; nil profiles
// selects the default catalog.
func NewRecommender(provider embedding.Provider, profiles []RoleProfile) *Recommender {
	if profiles == nil {
		profiles = DefaultRoleProfiles()
	}
	return &Recommender{provider: provider, profiles: profiles}
}

// Recommend returns the topK roles most similar to the resume text, ordered
// by descending similarity.
func (r *Recommender) Recommend(ctx context.Context, resumeText string, topK int) ([]Match, error) {
	if r.provider == nil {
		return nil, fmt.Errorf("no embedding provider configured")
	}
	if topK <= 0 {
		topK = 3
	}

	profileVecs, err := r.profileVectors(ctx)
	if err != nil {
		return nil, err
	}
	resumeVec, err := r.provider.Embed(ctx, resumeText)
	if err != nil {
		return nil, fmt.Errorf("failed to embed resume text: %w", err)
	}

	matches := make([]Match, len(r.profiles))
	for i, profile := range r.profiles {
		sim := embedding.CosineSimilarity(resumeVec, profileVecs[i])
		matches[i] = Match{
			Role:       profile.Role,
			Similarity: math.Round(sim*10000) / 10000,
		}
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Similarity > matches[j].Similarity
	})
	if topK < len(matches) {
		matches = matches[:topK]
	}
	return matches, nil
}

func (r *Recommender) profileVectors(ctx context.Context) ([][]float32, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.vecs != nil {
		return r.vecs, nil
	}

	texts := make([]string, len(r.profiles))
	for i, profile := range r.profiles {
		texts[i] = profile.Role + ": " + strings.Join(profile.Skills, ", ")
	}
	vecs, err := r.provider.EmbedBatch(ctx, texts)
	if err != nil {
		return nil, fmt.Errorf("failed to embed role profiles: %w", err)
	}
	r.vecs = vecs
	return vecs, nil
}
