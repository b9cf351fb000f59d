package usecase

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"golang.org/x/sync/errgroup"

	"go-matching-service/internal/domain"
	"go-matching-service/internal/matching"
	"go-matching-service/pkg/apperror"
)

// batchConcurrency bounds how many candidates are scored in parallel during a
// batch match, keeping pressure on the embedding provider predictable.
const batchConcurrency = 4

type matchUsecase struct {
	engine           *matching.Engine
	validate         *validator.Validate
	defaultThreshold float64
}

// NewMatchUsecase wires the scoring engine. defaultThreshold is used when a
// duplicate check does not specify one; zero falls back to the engine default.
func NewMatchUsecase(engine *matching.Engine, defaultThreshold float64) domain.MatchUsecase {
	if defaultThreshold == 0 {
		defaultThreshold = matching.DefaultDuplicateThreshold
	}
	return &matchUsecase{
		engine:           engine,
		validate:         validator.New(),
		defaultThreshold: defaultThreshold,
	}
}

func (u *matchUsecase) MatchCandidate(ctx context.Context, job domain.Job, candidate domain.Candidate) (*domain.MatchResult, error) {
	result, err := u.engine.Match(ctx, job, candidate)
	if err != nil {
		return nil, apperror.Internal(fmt.Errorf("score candidate: %w", err))
	}
	result.MatchingSkills = u.engine.MatchingSkills(job, candidate)
	return result, nil
}

// MatchBatch scores every candidate against the job concurrently. Results keep
// the input order; a single scoring failure fails the whole batch.
func (u *matchUsecase) MatchBatch(ctx context.Context, job domain.Job, candidates []domain.Candidate) ([]domain.CandidateMatch, error) {
	if len(candidates) == 0 {
		return nil, apperror.BadRequest("At least one candidate is required")
	}

	matches := make([]domain.CandidateMatch, len(candidates))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(batchConcurrency)

	for i, candidate := range candidates {
		g.Go(func() error {
			result, err := u.engine.Match(gctx, job, candidate)
			if err != nil {
				return fmt.Errorf("score candidate %d: %w", i, err)
			}
			matches[i] = domain.CandidateMatch{
				Candidate:      candidate,
				MatchScore:     result.OverallMatchScore,
				CategoryScores: result.CategoryScores,
				MatchingSkills: u.engine.MatchingSkills(job, candidate),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, apperror.Internal(err)
	}
	return matches, nil
}

// DetectDuplicates groups likely duplicate candidate records. A zero threshold
// selects the default; anything else must sit in (0,1].
func (u *matchUsecase) DetectDuplicates(_ context.Context, candidates []domain.Candidate, threshold float64) ([]domain.DuplicateGroup, error) {
	if len(candidates) < 2 {
		return nil, apperror.BadRequest("At least two candidates are required")
	}
	if threshold == 0 {
		threshold = u.defaultThreshold
	}
	if err := u.validate.Var(threshold, "gt=0,lte=1"); err != nil {
		return nil, apperror.BadRequest("similarity_threshold must be in (0, 1]")
	}
	return u.engine.DetectDuplicates(candidates, threshold), nil
}
