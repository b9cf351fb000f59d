package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCosineSimilarity(t *testing.T) {
	t.Run("identical vectors score 1", func(t *testing.T) {
		v := []float64{0.5, 0.2, 0.8}
		assert.InDelta(t, 1.0, cosineSimilarity(v, v), 1e-9)
	})

	t.Run("orthogonal vectors score 0", func(t *testing.T) {
		assert.InDelta(t, 0.0, cosineSimilarity([]float64{1, 0}, []float64{0, 1}), 1e-9)
	})

	t.Run("nil vector means no signal", func(t *testing.T) {
		assert.Equal(t, 0.0, cosineSimilarity(nil, []float64{1, 0}))
		assert.Equal(t, 0.0, cosineSimilarity([]float64{1, 0}, nil))
	})

	t.Run("zero magnitude guarded", func(t *testing.T) {
		assert.Equal(t, 0.0, cosineSimilarity([]float64{0, 0}, []float64{1, 1}))
	})

	t.Run("length mismatch yields 0", func(t *testing.T) {
		assert.Equal(t, 0.0, cosineSimilarity([]float64{1, 2, 3}, []float64{1, 2}))
	})
}

func TestKeywordSimilarity(t *testing.T) {
	t.Run("empty text yields 0", func(t *testing.T) {
		assert.Equal(t, 0.0, keywordSimilarity("", "go developer", keywordBoostFactor))
		assert.Equal(t, 0.0, keywordSimilarity("go developer", "", keywordBoostFactor))
	})

	t.Run("jaccard overlap scaled by boost", func(t *testing.T) {
		// words: {senior go developer} vs {go developer wanted}
		// intersection 2, union 4 -> 0.5 * boost
		got := keywordSimilarity("Senior Go developer", "Go developer wanted", keywordBoostFactor)
		assert.InDelta(t, 0.5*keywordBoostFactor, got, 1e-9)
	})

	t.Run("case insensitive", func(t *testing.T) {
		got := keywordSimilarity("PYTHON", "python", 1.0)
		assert.InDelta(t, 1.0, got, 1e-9)
	})
}

func TestDirectSkillMatch(t *testing.T) {
	t.Run("empty sets yield 0", func(t *testing.T) {
		assert.Equal(t, 0.0, directSkillMatch("", "Go, Python"))
		assert.Equal(t, 0.0, directSkillMatch("Go, Python", ""))
	})

	t.Run("exact token match", func(t *testing.T) {
		assert.InDelta(t, 1.0, directSkillMatch("go, python", "Python, Go, AWS"), 1e-9)
	})

	t.Run("substring containment counts either way", func(t *testing.T) {
		// "java" must match the token "java" split out of "java, spring"
		assert.InDelta(t, 1.0, directSkillMatch("java", "java, spring"), 1e-9)
		// and a broader job token matches a narrower candidate token
		assert.InDelta(t, 1.0, directSkillMatch("python sql", "python"), 1e-9)
	})

	t.Run("partial overlap is a ratio over job tokens", func(t *testing.T) {
		got := directSkillMatch("go, rust, kafka", "Go, PostgreSQL")
		assert.InDelta(t, 1.0/3.0, got, 1e-9)
	})

	t.Run("no overlap yields 0", func(t *testing.T) {
		assert.Equal(t, 0.0, directSkillMatch("cobol", "Go, Python"))
	})
}

func TestSequenceRatio(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
		want float64
	}{
		{"both empty", "", "", 1.0},
		{"identical", "maria garcia", "maria garcia", 1.0},
		{"one empty", "maria", "", 0.0},
		{"classic difflib example", "abcd", "bcde", 0.75},
		{"near identical names", "john smith", "jon smith", 18.0 / 19.0},
		{"disjoint", "abc", "xyz", 0.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, sequenceRatio(tt.a, tt.b), 1e-9)
		})
	}
}
