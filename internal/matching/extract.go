package matching

import (
	"fmt"
	"sort"
	"strings"

	"go-matching-service/internal/domain"
)

// Terms that flag a required-skill entry as an education requirement.
var educationTerms = []string{"degree", "education", "bachelor", "master", "phd", "diploma"}

// Terms that flag a required-skill entry as an experience requirement.
var experienceTerms = []string{"experience", "years", "year", "yr", "yrs"}

func jobRequiredSkillsText(job domain.Job) string {
	return strings.Join(job.Description.RequiredSkills, " ")
}

func jobPreferredSkillsText(job domain.Job) string {
	return strings.Join(job.Description.PreferredSkills, " ")
}

// jobSummaryText prefixes the position summary with title and company name so
// the embedding carries that context.
func jobSummaryText(job domain.Job) string {
	summary := job.Description.PositionSummary
	if job.Title != "" {
		summary = job.Title + ": " + summary
	}
	if job.CompanyName != "" {
		summary = job.CompanyName + " - " + summary
	}
	return summary
}

func jobResponsibilitiesText(job domain.Job) string {
	return strings.Join(job.Description.Responsibilities, " ")
}

// jobTechStackText flattens the category→skills map into a single string.
// Categories are visited in sorted order so output is deterministic.
func jobTechStackText(job domain.Job) string {
	if len(job.Description.TechnicalSkills) == 0 {
		return ""
	}
	categories := make([]string, 0, len(job.Description.TechnicalSkills))
	for category := range job.Description.TechnicalSkills {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	var b strings.Builder
	for _, category := range categories {
		b.WriteString(category)
		b.WriteString(": ")
		b.WriteString(strings.Join(job.Description.TechnicalSkills[category], ", "))
		b.WriteString(" ")
	}
	return strings.TrimSpace(b.String())
}

// jobQualificationsText keeps only the required-skill entries that mention an
// education term.
func jobQualificationsText(job domain.Job) string {
	var b strings.Builder
	for _, skill := range job.Description.RequiredSkills {
		if containsAny(strings.ToLower(skill), educationTerms) {
			b.WriteString(skill)
			b.WriteString(" ")
		}
	}
	return strings.TrimSpace(b.String())
}

// jobWorkRequirementsText keeps the required-skill entries that mention an
// experience term and appends the job/contract type for extra signal.
func jobWorkRequirementsText(job domain.Job) string {
	var b strings.Builder
	for _, skill := range job.Description.RequiredSkills {
		if containsAny(strings.ToLower(skill), experienceTerms) {
			b.WriteString(skill)
			b.WriteString(" ")
		}
	}
	if job.JobType != "" {
		fmt.Fprintf(&b, "Job type: %s ", job.JobType)
	}
	if job.ContractType != "" {
		fmt.Fprintf(&b, "Contract: %s ", job.ContractType)
	}
	return strings.TrimSpace(b.String())
}

// candidateSkillsText combines technical skills, soft skills and certificate
// names, each prefixed with its category label.
func candidateSkillsText(candidate domain.Candidate) string {
	var b strings.Builder
	if len(candidate.TechnicalSkills) > 0 {
		b.WriteString("Technical Skills: ")
		b.WriteString(strings.Join(candidate.TechnicalSkills, ", "))
		b.WriteString(" ")
	}
	if len(candidate.SoftSkills) > 0 {
		b.WriteString("Soft Skills: ")
		b.WriteString(strings.Join(candidate.SoftSkills, ", "))
		b.WriteString(" ")
	}
	for _, cert := range candidate.Certificates {
		fmt.Fprintf(&b, "Certificate: %s ", cert.Name)
	}
	return strings.TrimSpace(b.String())
}

func candidateEducationText(candidate domain.Candidate) string {
	var b strings.Builder
	for _, edu := range candidate.Educations {
		fmt.Fprintf(&b, "%s in %s from %s. ", edu.Degree, edu.Field, edu.School)
	}
	return strings.TrimSpace(b.String())
}

// candidateSummaryText prefixes the free-form summary with the candidate's
// name and appends the most recent position title when one exists.
func candidateSummaryText(candidate domain.Candidate) string {
	summary := candidate.Summary
	if candidate.Name != "" {
		summary = candidate.Name + ": " + summary
	}
	if len(candidate.WorkExperiences) > 0 {
		if title := candidate.WorkExperiences[0].Title; title != "" {
			summary += fmt.Sprintf(" Current position: %s", title)
		}
	}
	return summary
}

// candidateExperienceText collects the summary (when it mentions experience),
// every work experience, and every project into one narrative string.
func candidateExperienceText(candidate domain.Candidate) string {
	var b strings.Builder
	if candidate.Summary != "" && strings.Contains(strings.ToLower(candidate.Summary), "experience") {
		b.WriteString(candidate.Summary)
		b.WriteString(" ")
	}
	for _, exp := range candidate.WorkExperiences {
		fmt.Fprintf(&b, "%s at %s. %s ", exp.Title, exp.Company, exp.Description)
	}
	for _, project := range candidate.Projects {
		fmt.Fprintf(&b, "Project: %s. %s ", project.Title, project.Description)
	}
	return strings.TrimSpace(b.String())
}

// individualSkills splits a skills string into lower-cased comma-separated
// tokens, dropping the category labels. Tokens keep first-seen order and are
// de-duplicated. Used for direct matching only, never for embeddings.
func individualSkills(skillsText string) []string {
	if skillsText == "" {
		return nil
	}
	text := strings.ToLower(skillsText)
	text = strings.ReplaceAll(text, "technical skills:", "")
	text = strings.ReplaceAll(text, "soft skills:", "")

	var skills []string
	seen := make(map[string]struct{})
	for _, part := range strings.Split(text, ",") {
		skill := strings.TrimSpace(part)
		if skill == "" {
			continue
		}
		if _, ok := seen[skill]; ok {
			continue
		}
		seen[skill] = struct{}{}
		skills = append(skills, skill)
	}
	return skills
}

func containsAny(s string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(s, term) {
			return true
		}
	}
	return false
}
