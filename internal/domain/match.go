package domain

import "context"

// Embedder maps text to a fixed-length semantic vector. Implementations must
// return (nil, nil) for empty input so callers can treat a nil vector as
// "no signal". The provider is constructed once at startup and must be safe
// for concurrent use.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float64, error)
}

// CategoryScores holds the five fixed scoring categories as percentages in
// [0,100]. A closed struct (rather than a map) makes a missing or extra
// category a compile-time error.
type CategoryScores struct {
	RequiredSkills  float64 `json:"required_skills"`
	PreferredSkills float64 `json:"preferred_skills"`
	Qualification   float64 `json:"qualification"`
	WorkExperience  float64 `json:"work_experience"`
	TechStack       float64 `json:"tech_stack"`
}

// MatchResult is the outcome of scoring one job against one candidate.
type MatchResult struct {
	OverallMatchScore float64        `json:"overall_match_score"`
	CategoryScores    CategoryScores `json:"category_scores"`
	MatchingSkills    []string       `json:"matching_skills"`
}

// CandidateMatch pairs a candidate with its score inside a batch result.
type CandidateMatch struct {
	Candidate      Candidate      `json:"candidate"`
	MatchScore     float64        `json:"match_score"`
	CategoryScores CategoryScores `json:"category_scores"`
	MatchingSkills []string       `json:"matching_skills"`
}

// SimilarityScore records how similar a group member is to the primary.
type SimilarityScore struct {
	CandidateIndex int     `json:"candidate_index"`
	Similarity     float64 `json:"similarity"`
}

// DuplicateGroup collects candidates whose pairwise similarity to the primary
// exceeds the detection threshold. Membership is anchored to the primary
// only; it is not transitive across members.
type DuplicateGroup struct {
	PrimaryCandidate Candidate         `json:"primary_candidate"`
	Candidates       []Candidate       `json:"candidates"`
	SimilarityScores []SimilarityScore `json:"similarity_scores"`
}

type MatchUsecase interface {
	MatchCandidate(ctx context.Context, job Job, candidate Candidate) (*MatchResult, error)
	MatchBatch(ctx context.Context, job Job, candidates []Candidate) ([]CandidateMatch, error)
	DetectDuplicates(ctx context.Context, candidates []Candidate, threshold float64) ([]DuplicateGroup, error)
}
