package domain

// JobDescription holds the structured body of a posting. Upstream systems send
// two shapes (skills nested under description vs. at the record root); the
// delivery layer merges both into this canonical form before scoring.
type JobDescription struct {
	PositionSummary  string              `json:"position_summary"`
	Responsibilities []string            `json:"responsibilities"`
	RequiredSkills   []string            `json:"required_skills"`
	PreferredSkills  []string            `json:"preferred_skills"`
	TechnicalSkills  map[string][]string `json:"technical_skills"`
	WhatWeOffer      []string            `json:"what_we_offer"`
}

// Job is the canonical job posting record used for matching.
type Job struct {
	ID           string         `json:"id"`
	Title        string         `json:"title"`
	CompanyName  string         `json:"company_name"`
	Location     string         `json:"location"`
	JobType      string         `json:"job_type"`
	ContractType string         `json:"contract_type"`
	SalaryRange  string         `json:"salary_range"`
	Description  JobDescription `json:"description"`
}
