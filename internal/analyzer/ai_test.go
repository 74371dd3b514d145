package analyzer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoerceVerdict_ClampsPercentages(t *testing.T) {
	verdict := map[string]any{
		"score":           float64(150),
		"skillsMatch":     float64(-20),
		"experienceMatch": float64(85),
		"keywordMatch":    float64(999),
		"educationMatch":  float64(0),
	}

	result := coerceVerdict(verdict)

	assert.Equal(t, 100, result.Score)
	assert.Equal(t, 0, result.SkillsMatch)
	assert.Equal(t, 85, result.ExperienceMatch)
	assert.Equal(t, 100, result.KeywordMatch)
	assert.Equal(t, 0, result.EducationMatch)
}

func TestCoerceVerdict_MissingFieldsDefault(t *testing.T) {
	result := coerceVerdict(map[string]any{})

	assert.Equal(t, 0, result.Score)
	assert.NotNil(t, result.Strengths)
	assert.Empty(t, result.Strengths)
	assert.NotNil(t, result.Improvements)
	assert.Empty(t, result.Details.FoundSkills)
	assert.Empty(t, result.Details.AIInsights)
	assert.Equal(t, "Unknown", result.Details.ExperienceLevel)
	assert.False(t, result.Details.RelevantExperience)
}

func TestCoerceVerdict_MalformedFieldsDegradeIndividually(t *testing.T) {
	verdict := map[string]any{
		"score":        float64(70),
		"strengths":    "not a list",
		"improvements": []any{"real item", float64(42), "another"},
		"details": map[string]any{
			"experienceYears":    float64(-3),
			"relevantExperience": "yes",
			"foundSkills":        []any{"Go"},
		},
	}

	result := coerceVerdict(verdict)

	assert.Equal(t, 70, result.Score)
	assert.Empty(t, result.Strengths)
	assert.Equal(t, []string{"real item", "another"}, result.Improvements)
	assert.Equal(t, 0, result.Details.ExperienceYears)
	assert.False(t, result.Details.RelevantExperience)
	assert.Equal(t, []string{"Go"}, result.Details.FoundSkills)
}

func TestBuildAnalysisPrompt_IncludesJobAndResume(t *testing.T) {
	job := Job{
		Title:              "Backend Developer",
		Description:        "Build APIs",
		Requirements:       "Strong SQL",
		SkillsRequired:     []string{"Go", "PostgreSQL"},
		ExperienceRequired: "3+ years",
	}

	prompt := buildAnalysisPrompt("resume body here", job)

	assert.Contains(t, prompt, "Title: Backend Developer")
	assert.Contains(t, prompt, "Required Skills: Go, PostgreSQL")
	assert.Contains(t, prompt, "Experience Required: 3+ years")
	assert.Contains(t, prompt, "resume body here")
	assert.True(t, strings.Contains(prompt, `"aiInsights"`))
}
