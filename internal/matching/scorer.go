// Package matching implements the job↔candidate scoring engine: feature
// extraction, embedding + lexical similarity blending, weighted aggregation
// and duplicate detection. The package is purely computational; it never logs
// and holds no state beyond the injected embedding provider.
package matching

import (
	"context"
	"fmt"
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"go-matching-service/internal/domain"
)

// Category weights. Fixed, sum to 1.0.
const (
	requiredSkillsWeight  = 0.30
	qualificationWeight   = 0.20
	workExperienceWeight  = 0.25
	techStackWeight       = 0.20
	preferredSkillsWeight = 0.05
)

const (
	// Blend between embedding similarity and direct token matching for the
	// skill-based categories. Direct matching is weighted higher on purpose.
	embeddingBlendWeight = 0.3
	directBlendWeight    = 0.7

	// Work-experience blend between requirement text and responsibilities.
	workRequirementWeight  = 0.4
	responsibilitiesWeight = 0.6

	// Floor applied when an explicit boost condition is met (CS degree,
	// sufficient years of experience).
	boostFloor = 0.8

	// Flat bonus when the job type matches a recent work experience.
	jobTypeBonus = 0.05

	// Calibration constant applied to the final percentage. Part of the
	// scoring contract; do not "fix".
	overallScalingFactor = 1.1
)

// Keyword dictionaries for degree matching.
var (
	bachelorKeywords        = []string{"bscs", "bs", "bsc", "bachelor", "undergraduate", "degree"}
	masterKeywords          = []string{"ms", "msc", "master", "graduate"}
	computerScienceKeywords = []string{"computer science", "cs", "software engineering", "information technology", "it"}
)

// Matches "5 years", "3+ yrs", "10 year" etc.; the captured group is the count.
var yearsPattern = regexp.MustCompile(`(\d+)\+?\s*(?:years?|yrs?)`)

// Engine scores candidates against jobs using the injected embedding
// provider. Safe for concurrent use.
type Engine struct {
	embedder domain.Embedder
}

func NewEngine(embedder domain.Embedder) *Engine {
	return &Engine{embedder: embedder}
}

// unitScores holds the five category scores on the [0,1] scale before they
// are expressed as percentages.
type unitScores struct {
	requiredSkills  float64
	preferredSkills float64
	qualification   float64
	workExperience  float64
	techStack       float64
}

// Match computes the overall and per-category scores for one job/candidate
// pair. Missing fields contribute zero signal; only an embedding provider
// failure produces an error.
func (e *Engine) Match(ctx context.Context, job domain.Job, candidate domain.Candidate) (*domain.MatchResult, error) {
	jobRequired := jobRequiredSkillsText(job)
	jobPreferred := jobPreferredSkillsText(job)
	jobResponsibilities := jobResponsibilitiesText(job)
	jobQualifications := jobQualificationsText(job)
	jobTechStack := jobTechStackText(job)
	jobWorkRequirements := jobWorkRequirementsText(job)

	candidateSkills := candidateSkillsText(candidate)
	candidateEducation := candidateEducationText(candidate)
	candidateExperience := candidateExperienceText(candidate)

	var embedErr error
	embed := func(label, text string) []float64 {
		if embedErr != nil {
			return nil
		}
		vector, err := e.embedText(ctx, text)
		if err != nil {
			embedErr = fmt.Errorf("embed %s: %w", label, err)
		}
		return vector
	}

	jobRequiredVec := embed("job required skills", jobRequired)
	jobPreferredVec := embed("job preferred skills", jobPreferred)
	jobResponsibilitiesVec := embed("job responsibilities", jobResponsibilities)
	jobQualificationsVec := embed("job qualifications", jobQualifications)
	jobTechStackVec := embed("job tech stack", jobTechStack)
	jobWorkRequirementsVec := embed("job work requirements", jobWorkRequirements)

	candidateSkillsVec := embed("candidate skills", candidateSkills)
	candidateEducationVec := embed("candidate education", candidateEducation)
	candidateExperienceVec := embed("candidate experience", candidateExperience)

	if embedErr != nil {
		return nil, embedErr
	}

	var scores unitScores

	scores.requiredSkills = embeddingBlendWeight*cosineSimilarity(jobRequiredVec, candidateSkillsVec) +
		directBlendWeight*directSkillMatch(jobRequired, candidateSkills)

	// A job with no preferred skills scores 0 here, which excludes the
	// category from the weighted average rather than penalizing it.
	if jobPreferred != "" {
		scores.preferredSkills = embeddingBlendWeight*cosineSimilarity(jobPreferredVec, candidateSkillsVec) +
			directBlendWeight*directSkillMatch(jobPreferred, candidateSkills)
	}

	scores.qualification = cosineSimilarity(jobQualificationsVec, candidateEducationVec)
	if qualificationBoostApplies(job, candidate, jobQualifications) {
		scores.qualification = math.Max(boostFloor, scores.qualification)
	}

	scores.workExperience = workRequirementWeight*cosineSimilarity(jobWorkRequirementsVec, candidateExperienceVec) +
		responsibilitiesWeight*cosineSimilarity(jobResponsibilitiesVec, candidateExperienceVec)
	if required := requiredYears(job); required > 0 && candidateYears(candidate) >= float64(required) {
		scores.workExperience = math.Max(boostFloor, scores.workExperience)
	}

	scores.techStack = embeddingBlendWeight*cosineSimilarity(jobTechStackVec, candidateSkillsVec) +
		directBlendWeight*directSkillMatch(jobTechStack, candidateSkills)

	overall := aggregate(scores)
	if jobTypeMatches(job, candidate) {
		overall += jobTypeBonus
	}

	return &domain.MatchResult{
		OverallMatchScore: math.Min(100, round2(overall*100*overallScalingFactor)),
		CategoryScores: domain.CategoryScores{
			RequiredSkills:  round2(scores.requiredSkills * 100),
			PreferredSkills: round2(scores.preferredSkills * 100),
			Qualification:   round2(scores.qualification * 100),
			WorkExperience:  round2(scores.workExperience * 100),
			TechStack:       round2(scores.techStack * 100),
		},
	}, nil
}

// MatchingSkills returns the candidate-side skills that literally match a job
// skill (substring containment either way, case-insensitive). The list is
// explanatory output only and independent of the numeric scores.
func (e *Engine) MatchingSkills(job domain.Job, candidate domain.Candidate) []string {
	jobSkills := make([]string, 0, len(job.Description.RequiredSkills)+len(job.Description.PreferredSkills))
	jobSkills = append(jobSkills, job.Description.RequiredSkills...)
	jobSkills = append(jobSkills, job.Description.PreferredSkills...)

	categories := make([]string, 0, len(job.Description.TechnicalSkills))
	for category := range job.Description.TechnicalSkills {
		categories = append(categories, category)
	}
	sort.Strings(categories)
	for _, category := range categories {
		jobSkills = append(jobSkills, job.Description.TechnicalSkills[category]...)
	}

	candidateSkills := make([]string, 0, len(candidate.TechnicalSkills)+len(candidate.SoftSkills))
	candidateSkills = append(candidateSkills, candidate.TechnicalSkills...)
	candidateSkills = append(candidateSkills, candidate.SoftSkills...)

	matching := make([]string, 0)
	seen := make(map[string]struct{})
	for _, jobSkill := range jobSkills {
		jobLower := strings.ToLower(jobSkill)
		for _, candidateSkill := range candidateSkills {
			candidateLower := strings.ToLower(candidateSkill)
			if strings.Contains(candidateLower, jobLower) || strings.Contains(jobLower, candidateLower) {
				if _, ok := seen[candidateSkill]; !ok {
					seen[candidateSkill] = struct{}{}
					matching = append(matching, candidateSkill)
				}
				break
			}
		}
	}
	return matching
}

func (e *Engine) embedText(ctx context.Context, text string) ([]float64, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}
	return e.embedder.Embed(ctx, text)
}

// aggregate computes the weighted average over categories with a strictly
// positive score, renormalizing the weights so zero-signal categories do not
// drag the result down. All-zero input aggregates to 0.
func aggregate(scores unitScores) float64 {
	parts := []struct {
		score  float64
		weight float64
	}{
		{scores.requiredSkills, requiredSkillsWeight},
		{scores.preferredSkills, preferredSkillsWeight},
		{scores.qualification, qualificationWeight},
		{scores.workExperience, workExperienceWeight},
		{scores.techStack, techStackWeight},
	}

	var total, applicableWeight float64
	for _, p := range parts {
		if p.score > 0 {
			total += p.score * p.weight
			applicableWeight += p.weight
		}
	}
	if applicableWeight == 0 {
		return 0.0
	}
	return total / applicableWeight
}

// qualificationBoostApplies reports whether the candidate holds a bachelor
// degree in a computer-science field while the job explicitly asks for one.
func qualificationBoostApplies(job domain.Job, candidate domain.Candidate, jobQualifications string) bool {
	if jobQualifications == "" {
		return false
	}
	qualLower := strings.ToLower(jobQualifications)
	if !strings.Contains(qualLower, "bachelor") || !strings.Contains(qualLower, "computer science") {
		return false
	}
	for _, edu := range candidate.Educations {
		degree := strings.ToLower(edu.Degree)
		field := strings.ToLower(edu.Field)
		if containsAny(degree, bachelorKeywords) && containsAny(field, computerScienceKeywords) {
			return true
		}
	}
	return false
}

// requiredYears extracts the minimum years of experience the job asks for
// from its required-skill entries. The first entry that mentions years of
// experience wins; no match means no requirement.
func requiredYears(job domain.Job) int {
	for _, skill := range job.Description.RequiredSkills {
		lower := strings.ToLower(skill)
		if !strings.Contains(lower, "year") || !strings.Contains(lower, "experience") {
			continue
		}
		if m := yearsPattern.FindStringSubmatch(lower); m != nil {
			years, err := strconv.Atoi(m[1])
			if err == nil {
				return years
			}
		}
	}
	return 0
}

// candidateYears is the larger of the years explicitly claimed in the summary
// and the sum of work-experience durations.
func candidateYears(candidate domain.Candidate) float64 {
	var years float64
	if m := yearsPattern.FindStringSubmatch(strings.ToLower(candidate.Summary)); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			years = float64(n)
		}
	}
	var totalFromExperience float64
	for _, exp := range candidate.WorkExperiences {
		totalFromExperience += float64(exp.DurationInMonths) / 12.0
	}
	return math.Max(years, totalFromExperience)
}

// jobTypeMatches checks the job type against the candidate's two most recent
// work experiences.
func jobTypeMatches(job domain.Job, candidate domain.Candidate) bool {
	if job.JobType == "" || len(candidate.WorkExperiences) == 0 {
		return false
	}
	jobType := strings.ToLower(job.JobType)
	recent := candidate.WorkExperiences
	if len(recent) > 2 {
		recent = recent[:2]
	}
	for _, exp := range recent {
		if exp.JobType != "" && strings.Contains(strings.ToLower(exp.JobType), jobType) {
			return true
		}
	}
	return false
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
