package matching

import (
	"math"
	"strings"
)

// keywordBoostFactor scales the raw Jaccard word overlap when it is used as a
// scoring signal.
const keywordBoostFactor = 0.2

// cosineSimilarity measures directional closeness of two embedding vectors.
// A nil or zero-magnitude vector means no signal and yields 0.
func cosineSimilarity(a, b []float64) float64 {
	if len(a) == 0 || len(b) == 0 || len(a) != len(b) {
		return 0.0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0.0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// keywordSimilarity is the Jaccard overlap of the lower-cased word sets of
// two texts, scaled by boost.
func keywordSimilarity(text1, text2 string, boost float64) float64 {
	if text1 == "" || text2 == "" {
		return 0.0
	}
	words1 := wordSet(text1)
	words2 := wordSet(text2)

	intersection := 0
	for w := range words1 {
		if _, ok := words2[w]; ok {
			intersection++
		}
	}
	union := len(words1) + len(words2) - intersection
	if union == 0 {
		return 0.0
	}
	return float64(intersection) / float64(union) * boost
}

func wordSet(text string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, w := range strings.Fields(strings.ToLower(text)) {
		set[w] = struct{}{}
	}
	return set
}

// directSkillMatch computes the fraction of job skill tokens that literally
// match a candidate skill token. A match is equality or substring containment
// in either direction, case-insensitive; the first candidate match wins per
// job token.
func directSkillMatch(jobSkillsText, candidateSkillsText string) float64 {
	jobSkills := individualSkills(jobSkillsText)
	candidateSkills := individualSkills(candidateSkillsText)
	if len(jobSkills) == 0 || len(candidateSkills) == 0 {
		return 0.0
	}

	matches := 0
	for _, jobSkill := range jobSkills {
		for _, candidateSkill := range candidateSkills {
			if jobSkill == candidateSkill ||
				strings.Contains(candidateSkill, jobSkill) ||
				strings.Contains(jobSkill, candidateSkill) {
				matches++
				break
			}
		}
	}
	return float64(matches) / float64(len(jobSkills))
}

// sequenceRatio is the classic longest-matching-block similarity ratio over
// runes: 2*M / (len(a)+len(b)) where M is the total length of all matching
// blocks. Two empty strings are identical (ratio 1).
func sequenceRatio(a, b string) float64 {
	ra := []rune(a)
	rb := []rune(b)
	total := len(ra) + len(rb)
	if total == 0 {
		return 1.0
	}
	return 2.0 * float64(matchedLength(ra, rb)) / float64(total)
}

// matchedLength sums the lengths of the matching blocks found by recursively
// splitting around the longest common substring.
func matchedLength(a, b []rune) int {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	ai, bi, size := longestMatch(a, b)
	if size == 0 {
		return 0
	}
	return size +
		matchedLength(a[:ai], b[:bi]) +
		matchedLength(a[ai+size:], b[bi+size:])
}

// longestMatch finds the longest common substring of a and b, preferring the
// earliest occurrence in a, then in b, on ties.
func longestMatch(a, b []rune) (bestA, bestB, bestSize int) {
	positions := make(map[rune][]int, len(b))
	for j, r := range b {
		positions[r] = append(positions[r], j)
	}

	runLengths := make(map[int]int)
	for i, r := range a {
		next := make(map[int]int)
		for _, j := range positions[r] {
			k := runLengths[j-1] + 1
			next[j] = k
			if k > bestSize {
				bestA, bestB, bestSize = i-k+1, j-k+1, k
			}
		}
		runLengths = next
	}
	return bestA, bestB, bestSize
}
