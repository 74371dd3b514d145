package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateFeedback_SkillsBranches(t *testing.T) {
	t.Run("excellent match", func(t *testing.T) {
		skills := SkillsResult{
			FoundSkills:     []string{"Go", "SQL", "Docker", "Redis"},
			MissingSkills:   []string{"Kafka"},
			MatchPercentage: 80,
		}
		strengths, _ := generateFeedback(skills, ExperienceResult{}, KeywordResult{}, EducationResult{}, Job{})

		assert.Contains(t, strengths, "Excellent technical skills match (4/5 required skills found)")
	})

	t.Run("good foundation lists up to three missing", func(t *testing.T) {
		skills := SkillsResult{
			FoundSkills:     []string{"Go", "SQL"},
			MissingSkills:   []string{"Kafka", "Redis", "Docker", "Terraform"},
			MatchPercentage: 60,
		}
		strengths, improvements := generateFeedback(skills, ExperienceResult{}, KeywordResult{}, EducationResult{}, Job{})

		assert.Contains(t, strengths, "Good technical skills foundation with 2 relevant skills")
		assert.Contains(t, improvements, "Consider developing: Kafka, Redis, Docker")
	})

	t.Run("significant gap lists up to five missing", func(t *testing.T) {
		skills := SkillsResult{
			MissingSkills:   []string{"A", "B", "C", "D", "E", "F"},
			MatchPercentage: 20,
		}
		_, improvements := generateFeedback(skills, ExperienceResult{}, KeywordResult{}, EducationResult{}, Job{})

		assert.Contains(t, improvements, "Significant skills gap - focus on: A, B, C, D, E")
	})
}

func TestGenerateFeedback_ExperienceBranches(t *testing.T) {
	t.Run("strong experience", func(t *testing.T) {
		experience := ExperienceResult{Years: 6, MatchPercentage: 100}
		strengths, _ := generateFeedback(SkillsResult{}, experience, KeywordResult{}, EducationResult{}, Job{})

		assert.Contains(t, strengths, "Strong experience level (6 years) matching job requirements")
	})

	t.Run("early career suggests projects", func(t *testing.T) {
		experience := ExperienceResult{Years: 1, MatchPercentage: 50}
		_, improvements := generateFeedback(SkillsResult{}, experience, KeywordResult{}, EducationResult{}, Job{})

		assert.Contains(t, improvements,
			"Consider highlighting relevant projects, internships, or coursework to demonstrate practical experience")
	})

	t.Run("mid career suggests achievements", func(t *testing.T) {
		experience := ExperienceResult{Years: 3, MatchPercentage: 50}
		_, improvements := generateFeedback(SkillsResult{}, experience, KeywordResult{}, EducationResult{}, Job{})

		assert.Contains(t, improvements, "Emphasize specific achievements and impact in previous roles")
	})

	t.Run("no experience signal", func(t *testing.T) {
		_, improvements := generateFeedback(SkillsResult{}, ExperienceResult{}, KeywordResult{}, EducationResult{}, Job{})

		assert.Contains(t, improvements,
			"Include more details about your professional experience and accomplishments")
	})
}

func TestGenerateFeedback_IndustryStrengthIsAdditive(t *testing.T) {
	keywords := KeywordResult{MatchPercentage: 30, IndustryMatch: true}

	strengths, improvements := generateFeedback(SkillsResult{}, ExperienceResult{}, keywords, EducationResult{}, Job{})

	// Low keyword percentage yields the terminology improvement, yet the
	// industry strength still appears alongside it.
	assert.Contains(t, improvements, "Incorporate more industry-specific terminology from the job description")
	assert.Contains(t, strengths, "Demonstrates relevant industry knowledge")
}

func TestGenerateFeedback_EducationAndCertifications(t *testing.T) {
	education := EducationResult{
		HasRelevantEducation: true,
		Certifications:       []string{"aws", "certified", "pmp", "itil"},
	}

	strengths, _ := generateFeedback(SkillsResult{}, ExperienceResult{}, KeywordResult{}, education, Job{})

	assert.Contains(t, strengths, "Educational background supports the role requirements")
	assert.Contains(t, strengths, "Professional certifications enhance candidacy: aws, certified, pmp")
}

func TestGenerateFeedback_NoCertifications(t *testing.T) {
	_, improvements := generateFeedback(SkillsResult{}, ExperienceResult{}, KeywordResult{}, EducationResult{}, Job{})

	assert.Contains(t, improvements, "Consider obtaining relevant professional certifications")
}

func TestGenerateFeedback_SeniorRoleWithFewYears(t *testing.T) {
	job := Job{Title: "Senior Backend Engineer"}
	experience := ExperienceResult{Years: 3, MatchPercentage: 50}

	_, improvements := generateFeedback(SkillsResult{}, experience, KeywordResult{}, EducationResult{}, job)

	assert.Contains(t, improvements, "For senior roles, highlight leadership experience and mentoring capabilities")
}

func TestGenerateFeedback_QARoleWithoutTestingKeywords(t *testing.T) {
	job := Job{Title: "QA Analyst"}
	keywords := KeywordResult{MatchedKeywords: []string{"automation", "quality"}, MatchPercentage: 70}

	_, improvements := generateFeedback(SkillsResult{}, ExperienceResult{}, keywords, EducationResult{}, job)

	assert.Contains(t, improvements,
		"Emphasize testing methodologies, automation tools, and quality assurance processes")
}

func TestGenerateFeedback_QARoleWithTestingKeyword(t *testing.T) {
	job := Job{Title: "QA Analyst"}
	keywords := KeywordResult{MatchedKeywords: []string{"test cases"}, MatchPercentage: 70}

	_, improvements := generateFeedback(SkillsResult{}, ExperienceResult{}, keywords, EducationResult{}, job)

	assert.NotContains(t, improvements,
		"Emphasize testing methodologies, automation tools, and quality assurance processes")
}
