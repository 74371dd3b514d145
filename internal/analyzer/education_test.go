package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreEducation_EducationAndCertifications(t *testing.T) {
	result := ScoreEducation("bachelor of computer science, aws certified solutions architect")

	assert.True(t, result.HasRelevantEducation)
	assert.Contains(t, result.Certifications, "aws")
	assert.Contains(t, result.Certifications, "certified")
	assert.Equal(t, 90, result.MatchPercentage)
}

func TestScoreEducation_EducationOnly(t *testing.T) {
	result := ScoreEducation("phd in quantum physics from mit")

	assert.True(t, result.HasRelevantEducation)
	assert.Empty(t, result.Certifications)
	assert.Equal(t, 70, result.MatchPercentage)
}

func TestScoreEducation_CertificationsOnly(t *testing.T) {
	result := ScoreEducation("pmp and itil trained project lead")

	assert.False(t, result.HasRelevantEducation)
	assert.Equal(t, []string{"pmp", "itil"}, result.Certifications)
	assert.Equal(t, 60, result.MatchPercentage)
}

func TestScoreEducation_Neither(t *testing.T) {
	result := ScoreEducation("ten winters spent herding goats")

	assert.False(t, result.HasRelevantEducation)
	assert.Empty(t, result.Certifications)
	assert.Equal(t, 30, result.MatchPercentage)
}
