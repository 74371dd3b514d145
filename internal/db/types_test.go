package db

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplication_JSONShape(t *testing.T) {
	app := Application{
		ID:              7,
		CandidateName:   "Ada Lovelace",
		CandidateEmail:  "ada@example.com",
		ResumeScore:     82,
		Status:          StatusQualified,
		AnalysisDetails: json.RawMessage(`{"score":82}`),
	}

	data, err := json.Marshal(app)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, "Ada Lovelace", decoded["candidateName"])
	assert.Equal(t, float64(82), decoded["resumeScore"])
	// The analysis blob must pass through as JSON, not base64 text.
	assert.Equal(t, map[string]any{"score": float64(82)}, decoded["analysisDetails"])
	// Resume text never leaves the API.
	assert.NotContains(t, decoded, "ResumeText")
	assert.NotContains(t, decoded, "resumeText")
}

func TestJobRole_JSONShape(t *testing.T) {
	role := JobRole{
		ID:              1,
		RoleName:        "QA Engineer",
		Category:        "QA",
		RequiredSkills:  []string{"Testing"},
		Keywords:        []string{"quality"},
		ResumeThreshold: 70,
	}

	data, err := json.Marshal(role)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, "QA Engineer", decoded["roleName"])
	assert.Equal(t, float64(70), decoded["resumeThreshold"])
}

func TestAdminUser_PasswordHashNeverSerialized(t *testing.T) {
	data, err := json.Marshal(AdminUser{Username: "admin", PasswordHash: "$2b$10$secret"})
	require.NoError(t, err)

	assert.NotContains(t, string(data), "secret")
}
