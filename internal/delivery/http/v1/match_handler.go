package v1

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"go-matching-service/internal/delivery/http/response"
	"go-matching-service/internal/domain"
	"go-matching-service/pkg/apperror"
)

type MatchHandler struct {
	matchUC domain.MatchUsecase
}

// NewMatchHandler registers the matching endpoints. Scoring routes go on the
// scoring group so they can carry a stricter rate limit; duplicate detection
// is embedding-free and stays on the public group.
func NewMatchHandler(public *gin.RouterGroup, scoring *gin.RouterGroup, matchUC domain.MatchUsecase) {
	handler := &MatchHandler{matchUC: matchUC}

	match := scoring.Group("/match")
	{
		match.POST("", handler.Match)
		match.POST("/batch", handler.MatchBatch)
		match.POST("/applied", handler.MatchApplied)
	}

	candidates := public.Group("/candidates")
	{
		candidates.POST("/duplicates", handler.DetectDuplicates)
	}
}

// JobDescriptionPayload is the nested description block of a job posting.
type JobDescriptionPayload struct {
	PositionSummary  string              `json:"position_summary"`
	Responsibilities []string            `json:"responsibilities"`
	RequiredSkills   []string            `json:"required_skills"`
	PreferredSkills  []string            `json:"preferred_skills"`
	TechnicalSkills  map[string][]string `json:"technical_skills"`
	WhatWeOffer      []string            `json:"what_we_offer"`
}

// JobPayload accepts both shapes produced upstream: skills nested under
// description, or duplicated at the root. Root-level values win when present.
type JobPayload struct {
	ID           string                `json:"id"`
	Title        string                `json:"title" binding:"required"`
	CompanyName  string                `json:"company_name"`
	Location     string                `json:"location"`
	JobType      string                `json:"job_type"`
	ContractType string                `json:"contract_type"`
	SalaryRange  string                `json:"salary_range"`
	Description  JobDescriptionPayload `json:"description"`

	RequiredSkills   []string            `json:"required_skills"`
	PreferredSkills  []string            `json:"preferred_skills"`
	Responsibilities []string            `json:"responsibilities"`
	TechnicalSkills  map[string][]string `json:"technical_skills"`
}

func (p JobPayload) toDomain() domain.Job {
	description := domain.JobDescription{
		PositionSummary:  p.Description.PositionSummary,
		Responsibilities: p.Description.Responsibilities,
		RequiredSkills:   p.Description.RequiredSkills,
		PreferredSkills:  p.Description.PreferredSkills,
		TechnicalSkills:  p.Description.TechnicalSkills,
		WhatWeOffer:      p.Description.WhatWeOffer,
	}
	if len(p.RequiredSkills) > 0 {
		description.RequiredSkills = p.RequiredSkills
	}
	if len(p.PreferredSkills) > 0 {
		description.PreferredSkills = p.PreferredSkills
	}
	if len(p.Responsibilities) > 0 {
		description.Responsibilities = p.Responsibilities
	}
	if len(p.TechnicalSkills) > 0 {
		description.TechnicalSkills = p.TechnicalSkills
	}

	return domain.Job{
		ID:           p.ID,
		Title:        p.Title,
		CompanyName:  p.CompanyName,
		Location:     p.Location,
		JobType:      p.JobType,
		ContractType: p.ContractType,
		SalaryRange:  p.SalaryRange,
		Description:  description,
	}
}

// AppliedEducationPayload mirrors the education shape of the applicant
// tracking system, which names its fields differently.
type AppliedEducationPayload struct {
	Degree       string `json:"degree"`
	FieldOfStudy string `json:"fieldOfStudy"`
	Institution  string `json:"institution"`
	StartDate    string `json:"startDate"`
	EndDate      string `json:"endDate"`
}

type AppliedExperiencePayload struct {
	Position         string `json:"position"`
	Company          string `json:"company"`
	Description      string `json:"description"`
	JobType          string `json:"jobType"`
	DurationInMonths int    `json:"durationInMonths"`
	StartDate        string `json:"startDate"`
	EndDate          string `json:"endDate"`
}

// AppliedCandidatePayload is a candidate as sent by the application inbox
// rather than the talent pool.
type AppliedCandidatePayload struct {
	ApplicantName   string                     `json:"applicantName" binding:"required"`
	ApplicantEmail  string                     `json:"applicantEmail"`
	ApplicantPhone  string                     `json:"applicantPhone"`
	JobTitle        string                     `json:"jobTitle"`
	CompanyName     string                     `json:"companyName"`
	Summary         string                     `json:"summary"`
	TechnicalSkills []string                   `json:"technicalSkills"`
	SoftSkills      []string                   `json:"softSkills"`
	Educations      []AppliedEducationPayload  `json:"educations"`
	WorkExperiences []AppliedExperiencePayload `json:"workExperiences"`
}

func (p AppliedCandidatePayload) toDomain() domain.Candidate {
	summary := p.Summary
	if summary == "" && p.JobTitle != "" {
		summary = fmt.Sprintf("Applied for %s at %s", p.JobTitle, p.CompanyName)
	}

	educations := make([]domain.Education, 0, len(p.Educations))
	for _, edu := range p.Educations {
		educations = append(educations, domain.Education{
			Degree:    edu.Degree,
			Field:     edu.FieldOfStudy,
			School:    edu.Institution,
			StartDate: edu.StartDate,
			EndDate:   edu.EndDate,
		})
	}

	experiences := make([]domain.WorkExperience, 0, len(p.WorkExperiences))
	for _, exp := range p.WorkExperiences {
		experiences = append(experiences, domain.WorkExperience{
			Title:            exp.Position,
			Company:          exp.Company,
			Description:      exp.Description,
			JobType:          exp.JobType,
			DurationInMonths: exp.DurationInMonths,
			StartDate:        exp.StartDate,
			EndDate:          exp.EndDate,
		})
	}

	return domain.Candidate{
		Name:            p.ApplicantName,
		Email:           p.ApplicantEmail,
		Phone:           p.ApplicantPhone,
		Summary:         summary,
		TechnicalSkills: p.TechnicalSkills,
		SoftSkills:      p.SoftSkills,
		Educations:      educations,
		WorkExperiences: experiences,
	}
}

type MatchRequest struct {
	Job       JobPayload       `json:"job" binding:"required"`
	Candidate domain.Candidate `json:"candidate" binding:"required"`
}

type BatchMatchRequest struct {
	Job        JobPayload         `json:"job" binding:"required"`
	Candidates []domain.Candidate `json:"candidates" binding:"required,min=1"`
}

type AppliedMatchRequest struct {
	Job        JobPayload                `json:"job" binding:"required"`
	Candidates []AppliedCandidatePayload `json:"candidates" binding:"required,min=1,dive"`
}

// DuplicateCheckRequest carries candidates in the applicant-tracking shape,
// which is where duplicate submissions actually show up.
type DuplicateCheckRequest struct {
	Candidates          []AppliedCandidatePayload `json:"candidates" binding:"required,min=2,dive"`
	SimilarityThreshold *float64                  `json:"similarity_threshold"`
}

// Match godoc
// @Summary      Score a candidate against a job
// @Description  Compute the overall and per-category compatibility scores for one job/candidate pair
// @Tags         match
// @Accept       json
// @Produce      json
// @Param        request  body      MatchRequest  true  "Job and candidate"
// @Success      200      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Router       /match [post]
func (h *MatchHandler) Match(c *gin.Context) {
	var req MatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	result, err := h.matchUC.MatchCandidate(c.Request.Context(), req.Job.toDomain(), req.Candidate)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Match computed", result)
}

// MatchBatch godoc
// @Summary      Score multiple candidates against a job
// @Description  Compute match scores for each candidate in order; one failing candidate fails the batch
// @Tags         match
// @Accept       json
// @Produce      json
// @Param        request  body      BatchMatchRequest  true  "Job and candidates"
// @Success      200      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Router       /match/batch [post]
func (h *MatchHandler) MatchBatch(c *gin.Context) {
	var req BatchMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	matches, err := h.matchUC.MatchBatch(c.Request.Context(), req.Job.toDomain(), req.Candidates)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Batch match computed", gin.H{
		"matches": matches,
		"total":   len(matches),
	})
}

// MatchApplied godoc
// @Summary      Score applied candidates against a job
// @Description  Accepts candidates in the applicant-tracking shape, converts them and scores the batch
// @Tags         match
// @Accept       json
// @Produce      json
// @Param        request  body      AppliedMatchRequest  true  "Job and applied candidates"
// @Success      200      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Router       /match/applied [post]
func (h *MatchHandler) MatchApplied(c *gin.Context) {
	var req AppliedMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	candidates := make([]domain.Candidate, 0, len(req.Candidates))
	for _, applied := range req.Candidates {
		candidates = append(candidates, applied.toDomain())
	}

	matches, err := h.matchUC.MatchBatch(c.Request.Context(), req.Job.toDomain(), candidates)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Applied batch match computed", gin.H{
		"matches": matches,
		"total":   len(matches),
	})
}

// DetectDuplicates godoc
// @Summary      Detect duplicate candidate records
// @Description  Groups candidates whose multi-factor similarity exceeds the threshold (default 0.85)
// @Tags         candidates
// @Accept       json
// @Produce      json
// @Param        request  body      DuplicateCheckRequest  true  "Candidates and optional threshold"
// @Success      200      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Router       /candidates/duplicates [post]
func (h *MatchHandler) DetectDuplicates(c *gin.Context) {
	var req DuplicateCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	var threshold float64
	if req.SimilarityThreshold != nil {
		threshold = *req.SimilarityThreshold
	}

	candidates := make([]domain.Candidate, 0, len(req.Candidates))
	for _, applied := range req.Candidates {
		candidates = append(candidates, applied.toDomain())
	}

	groups, err := h.matchUC.DetectDuplicates(c.Request.Context(), candidates, threshold)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Duplicate detection completed", gin.H{
		"duplicate_groups": groups,
		"total_groups":     len(groups),
	})
}
