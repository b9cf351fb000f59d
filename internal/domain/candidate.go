package domain

type Education struct {
	Degree    string `json:"degree"`
	Field     string `json:"field"`
	School    string `json:"school"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

type WorkExperience struct {
	Title            string `json:"title"`
	Company          string `json:"company"`
	Description      string `json:"description"`
	JobType          string `json:"jobType"`
	DurationInMonths int    `json:"durationInMonths"`
	StartDate        string `json:"startDate"`
	EndDate          string `json:"endDate"`
}

type Certificate struct {
	Name   string `json:"name"`
	Issuer string `json:"issuer"`
}

type Project struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Candidate is the canonical candidate profile used for matching and
// duplicate detection. All fields are optional; the engine treats missing
// data as zero signal rather than an error.
type Candidate struct {
	ID              string           `json:"id"`
	Name            string           `json:"name"`
	Email           string           `json:"email"`
	Phone           string           `json:"phone"`
	Location        string           `json:"location"`
	Summary         string           `json:"summary"`
	TechnicalSkills []string         `json:"technicalSkills"`
	SoftSkills      []string         `json:"softSkills"`
	Languages       []string         `json:"languages"`
	Educations      []Education      `json:"educations"`
	WorkExperiences []WorkExperience `json:"workExperiences"`
	Certificates    []Certificate    `json:"certificates"`
	Projects        []Project        `json:"projects"`
}
