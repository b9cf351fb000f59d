package usecase_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"go-matching-service/internal/domain"
	"go-matching-service/internal/matching"
	"go-matching-service/internal/usecase"
	"go-matching-service/pkg/apperror"
)

type mockEmbedder struct {
	mock.Mock
}

func (m *mockEmbedder) Embed(ctx context.Context, text string) ([]float64, error) {
	args := m.Called(ctx, text)
	if v := args.Get(0); v != nil {
		return v.([]float64), args.Error(1)
	}
	return nil, args.Error(1)
}

func newUsecase(embedder domain.Embedder) domain.MatchUsecase {
	return usecase.NewMatchUsecase(matching.NewEngine(embedder), 0)
}

func testJob() domain.Job {
	return domain.Job{
		Title: "Backend Engineer",
		Description: domain.JobDescription{
			RequiredSkills: []string{"Go", "PostgreSQL"},
		},
	}
}

func TestMatchCandidate(t *testing.T) {
	t.Run("result carries matching skills", func(t *testing.T) {
		embedder := new(mockEmbedder)
		embedder.On("Embed", mock.Anything, mock.Anything).Return([]float64{1, 0}, nil)

		u := newUsecase(embedder)
		candidate := domain.Candidate{Name: "Maria", TechnicalSkills: []string{"Go", "Rust"}}

		result, err := u.MatchCandidate(context.Background(), testJob(), candidate)
		require.NoError(t, err)
		assert.Greater(t, result.OverallMatchScore, 0.0)
		assert.Equal(t, []string{"Go"}, result.MatchingSkills)
	})

	t.Run("provider failure maps to internal error", func(t *testing.T) {
		embedder := new(mockEmbedder)
		embedder.On("Embed", mock.Anything, mock.Anything).Return(nil, errors.New("connection reset"))

		u := newUsecase(embedder)
		_, err := u.MatchCandidate(context.Background(), testJob(), domain.Candidate{TechnicalSkills: []string{"Go"}})

		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, http.StatusInternalServerError, appErr.Code)
	})
}

func TestMatchBatch(t *testing.T) {
	t.Run("preserves candidate order", func(t *testing.T) {
		embedder := new(mockEmbedder)
		embedder.On("Embed", mock.Anything, mock.Anything).Return([]float64{1, 0}, nil)

		u := newUsecase(embedder)
		candidates := []domain.Candidate{
			{Name: "Alice", TechnicalSkills: []string{"Go", "PostgreSQL"}},
			{Name: "Bob", TechnicalSkills: []string{"Java"}},
			{Name: "Carol", TechnicalSkills: []string{"Go"}},
		}

		matches, err := u.MatchBatch(context.Background(), testJob(), candidates)
		require.NoError(t, err)
		require.Len(t, matches, 3)
		assert.Equal(t, "Alice", matches[0].Candidate.Name)
		assert.Equal(t, "Bob", matches[1].Candidate.Name)
		assert.Equal(t, "Carol", matches[2].Candidate.Name)
		assert.Greater(t, matches[0].MatchScore, matches[1].MatchScore)
	})

	t.Run("empty batch rejected", func(t *testing.T) {
		u := newUsecase(new(mockEmbedder))

		_, err := u.MatchBatch(context.Background(), testJob(), nil)

		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, http.StatusBadRequest, appErr.Code)
	})

	t.Run("single failure fails the batch", func(t *testing.T) {
		embedder := new(mockEmbedder)
		embedder.On("Embed", mock.Anything, mock.Anything).Return(nil, errors.New("quota exceeded"))

		u := newUsecase(embedder)
		_, err := u.MatchBatch(context.Background(), testJob(), []domain.Candidate{{Name: "Alice", TechnicalSkills: []string{"Go"}}})

		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, http.StatusInternalServerError, appErr.Code)
	})
}

func TestDetectDuplicates(t *testing.T) {
	duplicatePair := []domain.Candidate{
		{Name: "John Smith", Email: "john@example.com", Phone: "555-123-4567", TechnicalSkills: []string{"Go"}},
		{Name: "John Smith", Email: "john@example.com", Phone: "5551234567", TechnicalSkills: []string{"Go"}},
	}

	t.Run("zero threshold uses the default", func(t *testing.T) {
		u := newUsecase(new(mockEmbedder))

		groups, err := u.DetectDuplicates(context.Background(), duplicatePair, 0)
		require.NoError(t, err)
		assert.Len(t, groups, 1)
	})

	t.Run("configured default threshold applies when omitted", func(t *testing.T) {
		u := usecase.NewMatchUsecase(matching.NewEngine(new(mockEmbedder)), 0.5)
		// same name, phone and skills but no email: similarity 0.6
		pair := []domain.Candidate{
			{Name: "John Smith", Phone: "555", TechnicalSkills: []string{"Go"}},
			{Name: "John Smith", Phone: "555", TechnicalSkills: []string{"Go"}},
		}

		groups, err := u.DetectDuplicates(context.Background(), pair, 0)
		require.NoError(t, err)
		assert.Len(t, groups, 1)
	})

	t.Run("explicit threshold respected", func(t *testing.T) {
		u := newUsecase(new(mockEmbedder))

		groups, err := u.DetectDuplicates(context.Background(), duplicatePair, 0.999)
		require.NoError(t, err)
		assert.Len(t, groups, 1)
	})

	t.Run("threshold outside (0,1] rejected", func(t *testing.T) {
		u := newUsecase(new(mockEmbedder))

		_, err := u.DetectDuplicates(context.Background(), duplicatePair, 1.5)

		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, http.StatusBadRequest, appErr.Code)
	})

	t.Run("fewer than two candidates rejected", func(t *testing.T) {
		u := newUsecase(new(mockEmbedder))

		_, err := u.DetectDuplicates(context.Background(), duplicatePair[:1], 0)

		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, http.StatusBadRequest, appErr.Code)
	})
}
