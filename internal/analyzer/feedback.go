package analyzer

import (
	"fmt"
	"strings"
)

// generateFeedback turns the four sub-analyses into ordered strength and
// improvement sentences. Branch thresholds and sentence wording are fixed;
// callers display these verbatim.
func generateFeedback(skills SkillsResult, experience ExperienceResult, keywords KeywordResult, education EducationResult, job Job) (strengths, improvements []string) {
	strengths = []string{}
	improvements = []string{}

	switch {
	case skills.MatchPercentage >= 80:
		strengths = append(strengths, fmt.Sprintf(
			"Excellent technical skills match (%d/%d required skills found)",
			len(skills.FoundSkills), len(skills.FoundSkills)+len(skills.MissingSkills)))
	case skills.MatchPercentage >= 60:
		strengths = append(strengths, fmt.Sprintf(
			"Good technical skills foundation with %d relevant skills", len(skills.FoundSkills)))
		improvements = append(improvements, fmt.Sprintf(
			"Consider developing: %s", strings.Join(firstN(skills.MissingSkills, 3), ", ")))
	default:
		improvements = append(improvements, fmt.Sprintf(
			"Significant skills gap - focus on: %s", strings.Join(firstN(skills.MissingSkills, 5), ", ")))
	}

	switch {
	case experience.MatchPercentage >= 80:
		strengths = append(strengths, fmt.Sprintf(
			"Strong experience level (%d years) matching job requirements", experience.Years))
	case experience.Years > 0:
		if experience.Years < 2 {
			improvements = append(improvements,
				"Consider highlighting relevant projects, internships, or coursework to demonstrate practical experience")
		} else {
			improvements = append(improvements,
				"Emphasize specific achievements and impact in previous roles")
		}
	default:
		improvements = append(improvements,
			"Include more details about your professional experience and accomplishments")
	}

	if keywords.MatchPercentage >= 70 {
		strengths = append(strengths, "Resume language aligns well with job requirements")
	} else {
		improvements = append(improvements, "Incorporate more industry-specific terminology from the job description")
	}

	// Additive: can coexist with the terminology improvement above.
	if keywords.IndustryMatch {
		strengths = append(strengths, "Demonstrates relevant industry knowledge")
	}

	if education.HasRelevantEducation {
		strengths = append(strengths, "Educational background supports the role requirements")
	}

	if len(education.Certifications) > 0 {
		strengths = append(strengths, fmt.Sprintf(
			"Professional certifications enhance candidacy: %s",
			strings.Join(firstN(education.Certifications, 3), ", ")))
	} else {
		improvements = append(improvements, "Consider obtaining relevant professional certifications")
	}

	titleLower := strings.ToLower(job.Title)
	if strings.Contains(titleLower, "senior") && experience.Years < 5 {
		improvements = append(improvements, "For senior roles, highlight leadership experience and mentoring capabilities")
	}
	if strings.Contains(titleLower, "qa") && !anyContains(keywords.MatchedKeywords, "test") {
		improvements = append(improvements, "Emphasize testing methodologies, automation tools, and quality assurance processes")
	}

	return strengths, improvements
}

func firstN(items []string, n int) []string {
	if len(items) > n {
		return items[:n]
	}
	return items
}

func anyContains(items []string, substr string) bool {
	for _, item := range items {
		if strings.Contains(item, substr) {
			return true
		}
	}
	return false
}
