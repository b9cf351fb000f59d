package v1_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"go-matching-service/internal/delivery/http/middleware"
	v1 "go-matching-service/internal/delivery/http/v1"
	"go-matching-service/internal/domain"
	"go-matching-service/pkg/apperror"
)

type mockMatchUsecase struct {
	mock.Mock
}

func (m *mockMatchUsecase) MatchCandidate(ctx context.Context, job domain.Job, candidate domain.Candidate) (*domain.MatchResult, error) {
	args := m.Called(ctx, job, candidate)
	if r := args.Get(0); r != nil {
		return r.(*domain.MatchResult), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockMatchUsecase) MatchBatch(ctx context.Context, job domain.Job, candidates []domain.Candidate) ([]domain.CandidateMatch, error) {
	args := m.Called(ctx, job, candidates)
	if r := args.Get(0); r != nil {
		return r.([]domain.CandidateMatch), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockMatchUsecase) DetectDuplicates(ctx context.Context, candidates []domain.Candidate, threshold float64) ([]domain.DuplicateGroup, error) {
	args := m.Called(ctx, candidates, threshold)
	if r := args.Get(0); r != nil {
		return r.([]domain.DuplicateGroup), args.Error(1)
	}
	return nil, args.Error(1)
}

func setupRouter(uc domain.MatchUsecase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())
	group := r.Group("/v1")
	v1.NewMatchHandler(group, group, uc)
	return r
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestMatchEndpoint(t *testing.T) {
	t.Run("returns the match result", func(t *testing.T) {
		uc := new(mockMatchUsecase)
		uc.On("MatchCandidate", mock.Anything, mock.Anything, mock.Anything).Return(&domain.MatchResult{
			OverallMatchScore: 87.5,
			MatchingSkills:    []string{"Go"},
		}, nil)

		w := doRequest(setupRouter(uc), http.MethodPost, "/v1/match", `{
			"job": {"title": "Backend Engineer", "description": {"required_skills": ["Go"]}},
			"candidate": {"name": "Maria", "technicalSkills": ["Go"]}
		}`)

		require.Equal(t, http.StatusOK, w.Code)
		var resp struct {
			Success   bool   `json:"success"`
			RequestID string `json:"request_id"`
			Data      struct {
				OverallMatchScore float64 `json:"overall_match_score"`
			} `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		assert.NotEmpty(t, resp.RequestID)
		assert.InDelta(t, 87.5, resp.Data.OverallMatchScore, 1e-9)
	})

	t.Run("missing job title is a 400", func(t *testing.T) {
		uc := new(mockMatchUsecase)
		w := doRequest(setupRouter(uc), http.MethodPost, "/v1/match", `{"candidate": {"name": "Maria"}}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		uc.AssertNotCalled(t, "MatchCandidate")
	})

	t.Run("root level skills override the description", func(t *testing.T) {
		uc := new(mockMatchUsecase)
		var captured domain.Job
		uc.On("MatchCandidate", mock.Anything, mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) {
				captured = args.Get(1).(domain.Job)
			}).
			Return(&domain.MatchResult{}, nil)

		w := doRequest(setupRouter(uc), http.MethodPost, "/v1/match", `{
			"job": {
				"title": "Backend Engineer",
				"required_skills": ["Rust"],
				"description": {"required_skills": ["Go"], "preferred_skills": ["Docker"]}
			},
			"candidate": {"name": "Maria"}
		}`)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, []string{"Rust"}, captured.Description.RequiredSkills)
		assert.Equal(t, []string{"Docker"}, captured.Description.PreferredSkills)
	})

	t.Run("usecase errors keep their status", func(t *testing.T) {
		uc := new(mockMatchUsecase)
		uc.On("MatchCandidate", mock.Anything, mock.Anything, mock.Anything).
			Return(nil, apperror.Internal(assert.AnError))

		w := doRequest(setupRouter(uc), http.MethodPost, "/v1/match", `{
			"job": {"title": "Backend Engineer"},
			"candidate": {"name": "Maria"}
		}`)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestBatchMatchEndpoint(t *testing.T) {
	t.Run("returns matches with total", func(t *testing.T) {
		uc := new(mockMatchUsecase)
		uc.On("MatchBatch", mock.Anything, mock.Anything, mock.Anything).Return([]domain.CandidateMatch{
			{Candidate: domain.Candidate{Name: "Alice"}, MatchScore: 90},
			{Candidate: domain.Candidate{Name: "Bob"}, MatchScore: 40},
		}, nil)

		w := doRequest(setupRouter(uc), http.MethodPost, "/v1/match/batch", `{
			"job": {"title": "Backend Engineer"},
			"candidates": [{"name": "Alice"}, {"name": "Bob"}]
		}`)

		require.Equal(t, http.StatusOK, w.Code)
		var resp struct {
			Data struct {
				Total   int `json:"total"`
				Matches []struct {
					MatchScore float64 `json:"match_score"`
				} `json:"matches"`
			} `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, 2, resp.Data.Total)
		require.Len(t, resp.Data.Matches, 2)
		assert.InDelta(t, 90.0, resp.Data.Matches[0].MatchScore, 1e-9)
	})

	t.Run("empty candidate list is a 400", func(t *testing.T) {
		uc := new(mockMatchUsecase)
		w := doRequest(setupRouter(uc), http.MethodPost, "/v1/match/batch", `{
			"job": {"title": "Backend Engineer"},
			"candidates": []
		}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		uc.AssertNotCalled(t, "MatchBatch")
	})
}

func TestAppliedMatchEndpoint(t *testing.T) {
	t.Run("converts applicant records before scoring", func(t *testing.T) {
		uc := new(mockMatchUsecase)
		var captured []domain.Candidate
		uc.On("MatchBatch", mock.Anything, mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) {
				captured = args.Get(2).([]domain.Candidate)
			}).
			Return([]domain.CandidateMatch{{}}, nil)

		w := doRequest(setupRouter(uc), http.MethodPost, "/v1/match/applied", `{
			"job": {"title": "Backend Engineer", "company_name": "Acme"},
			"candidates": [{
				"applicantName": "John Smith",
				"applicantEmail": "john@example.com",
				"jobTitle": "Backend Engineer",
				"companyName": "Acme",
				"educations": [{"degree": "BS", "fieldOfStudy": "Computer Science", "institution": "MIT"}],
				"workExperiences": [{"position": "Engineer", "company": "Initech", "durationInMonths": 24}]
			}]
		}`)

		require.Equal(t, http.StatusOK, w.Code)
		require.Len(t, captured, 1)
		assert.Equal(t, "John Smith", captured[0].Name)
		assert.Equal(t, "Applied for Backend Engineer at Acme", captured[0].Summary)
		require.Len(t, captured[0].Educations, 1)
		assert.Equal(t, "Computer Science", captured[0].Educations[0].Field)
		assert.Equal(t, "MIT", captured[0].Educations[0].School)
		require.Len(t, captured[0].WorkExperiences, 1)
		assert.Equal(t, "Engineer", captured[0].WorkExperiences[0].Title)
	})

	t.Run("applicant name is required", func(t *testing.T) {
		uc := new(mockMatchUsecase)
		w := doRequest(setupRouter(uc), http.MethodPost, "/v1/match/applied", `{
			"job": {"title": "Backend Engineer"},
			"candidates": [{"applicantEmail": "john@example.com"}]
		}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		uc.AssertNotCalled(t, "MatchBatch")
	})
}

func TestDuplicateEndpoint(t *testing.T) {
	t.Run("passes the threshold through", func(t *testing.T) {
		uc := new(mockMatchUsecase)
		uc.On("DetectDuplicates", mock.Anything, mock.Anything, 0.9).Return([]domain.DuplicateGroup{}, nil)

		w := doRequest(setupRouter(uc), http.MethodPost, "/v1/candidates/duplicates", `{
			"candidates": [{"applicantName": "Alice Johnson"}, {"applicantName": "Bob Smith"}],
			"similarity_threshold": 0.9
		}`)

		require.Equal(t, http.StatusOK, w.Code)
		var resp struct {
			Data struct {
				TotalGroups int `json:"total_groups"`
			} `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, 0, resp.Data.TotalGroups)
		uc.AssertExpectations(t)
	})

	t.Run("omitted threshold arrives as zero", func(t *testing.T) {
		uc := new(mockMatchUsecase)
		uc.On("DetectDuplicates", mock.Anything, mock.Anything, 0.0).Return([]domain.DuplicateGroup{}, nil)

		w := doRequest(setupRouter(uc), http.MethodPost, "/v1/candidates/duplicates", `{
			"candidates": [{"applicantName": "Alice Johnson"}, {"applicantName": "Bob Smith"}]
		}`)

		assert.Equal(t, http.StatusOK, w.Code)
		uc.AssertExpectations(t)
	})

	t.Run("fewer than two candidates is a 400", func(t *testing.T) {
		uc := new(mockMatchUsecase)
		w := doRequest(setupRouter(uc), http.MethodPost, "/v1/candidates/duplicates", `{
			"candidates": [{"applicantName": "Alice Johnson"}]
		}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		uc.AssertNotCalled(t, "DetectDuplicates")
	})
}
