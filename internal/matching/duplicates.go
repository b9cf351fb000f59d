package matching

import (
	"regexp"
	"strings"

	"go-matching-service/internal/domain"
)

// DefaultDuplicateThreshold is the pairwise similarity above which two
// candidate records are considered duplicates.
const DefaultDuplicateThreshold = 0.85

// Weights of the four duplicate signals. They sum to 1.0 and are not
// renormalized when a signal is missing, so e.g. a record without an email
// can never exceed 0.6 similarity.
const (
	duplicateNameWeight   = 0.3
	duplicateEmailWeight  = 0.4
	duplicatePhoneWeight  = 0.2
	duplicateSkillsWeight = 0.1
)

var phoneFormatting = regexp.MustCompile(`[\s\-()+]`)

// DetectDuplicates groups candidates whose pairwise similarity to an earlier
// unassigned candidate exceeds the threshold. Grouping is greedy and anchored
// to the first-seen candidate: a member is added only when it is directly
// similar to the primary, never transitively through other members. Groups
// with a single member are dropped.
func (e *Engine) DetectDuplicates(candidates []domain.Candidate, threshold float64) []domain.DuplicateGroup {
	groups := make([]domain.DuplicateGroup, 0)
	consumed := make([]bool, len(candidates))

	for i := range candidates {
		if consumed[i] {
			continue
		}
		group := domain.DuplicateGroup{
			PrimaryCandidate: candidates[i],
			Candidates:       []domain.Candidate{candidates[i]},
			SimilarityScores: make([]domain.SimilarityScore, 0),
		}
		for j := i + 1; j < len(candidates); j++ {
			if consumed[j] {
				continue
			}
			similarity := compareCandidates(candidates[i], candidates[j])
			if similarity > threshold {
				group.Candidates = append(group.Candidates, candidates[j])
				group.SimilarityScores = append(group.SimilarityScores, domain.SimilarityScore{
					CandidateIndex: j,
					Similarity:     similarity,
				})
				consumed[j] = true
			}
		}
		if len(group.Candidates) > 1 {
			groups = append(groups, group)
			consumed[i] = true
		}
	}
	return groups
}

// compareCandidates computes the multi-factor similarity of two candidate
// records in [0,1]. Each signal contributes 0 when it is missing on either
// side.
func compareCandidates(a, b domain.Candidate) float64 {
	similarity := duplicateNameWeight * sequenceRatio(normalizeName(a.Name), normalizeName(b.Name))

	emailA := strings.ToLower(strings.TrimSpace(a.Email))
	emailB := strings.ToLower(strings.TrimSpace(b.Email))
	if emailA != "" && emailB != "" && emailA == emailB {
		similarity += duplicateEmailWeight
	}

	phoneA := strings.TrimSpace(a.Phone)
	phoneB := strings.TrimSpace(b.Phone)
	if phoneA != "" && phoneB != "" {
		if phoneFormatting.ReplaceAllString(phoneA, "") == phoneFormatting.ReplaceAllString(phoneB, "") {
			similarity += duplicatePhoneWeight
		}
	}

	skillsA := skillSet(a)
	skillsB := skillSet(b)
	if len(skillsA) > 0 && len(skillsB) > 0 {
		intersection := 0
		for skill := range skillsA {
			if _, ok := skillsB[skill]; ok {
				intersection++
			}
		}
		union := len(skillsA) + len(skillsB) - intersection
		if union > 0 {
			similarity += duplicateSkillsWeight * float64(intersection) / float64(union)
		}
	}

	return similarity
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// skillSet is the union of a candidate's technical and soft skills.
func skillSet(candidate domain.Candidate) map[string]struct{} {
	set := make(map[string]struct{}, len(candidate.TechnicalSkills)+len(candidate.SoftSkills))
	for _, skill := range candidate.TechnicalSkills {
		set[skill] = struct{}{}
	}
	for _, skill := range candidate.SoftSkills {
		set[skill] = struct{}{}
	}
	return set
}
