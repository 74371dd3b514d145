package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJobFromFlags_RequiresTitle(t *testing.T) {
	analyzeTitle = ""
	defer func() { analyzeTitle = "" }()

	_, err := jobFromFlags()
	assert.Error(t, err)
}

func TestJobFromFlags_InlineDescription(t *testing.T) {
	analyzeTitle = "Backend Developer"
	analyzeDescription = "Build APIs with Go and Postgres"
	analyzeSkills = []string{"Go", "PostgreSQL"}
	analyzeExperience = "3+ years"
	defer func() {
		analyzeTitle, analyzeDescription, analyzeExperience = "", "", ""
		analyzeSkills = nil
	}()

	job, err := jobFromFlags()
	require.NoError(t, err)
	assert.Equal(t, "Backend Developer", job.Title)
	assert.Equal(t, "Build APIs with Go and Postgres", job.Description)
	assert.Equal(t, []string{"Go", "PostgreSQL"}, job.SkillsRequired)
	assert.Equal(t, "3+ years", job.ExperienceRequired)
}

func TestJobFromFlags_DescriptionFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jd.txt")
	require.NoError(t, os.WriteFile(path, []byte("Senior QA role with automation focus"), 0o644))

	analyzeTitle = "QA Engineer"
	analyzeDescription = "@" + path
	defer func() { analyzeTitle, analyzeDescription = "", "" }()

	job, err := jobFromFlags()
	require.NoError(t, err)
	assert.Equal(t, "Senior QA role with automation focus", job.Description)
}

func TestJobFromFlags_MissingDescriptionFile(t *testing.T) {
	analyzeTitle = "QA Engineer"
	analyzeDescription = "@/nonexistent/jd.txt"
	defer func() { analyzeTitle, analyzeDescription = "", "" }()

	_, err := jobFromFlags()
	assert.Error(t, err)
}

func TestReadResume_PlainText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.txt")
	content := "Experienced software engineer with 5 years of experience building web applications in Go."
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	text, err := readResume(path)
	require.NoError(t, err)
	assert.Equal(t, content, text)
}

func TestReadResume_TooShort(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.txt")
	require.NoError(t, os.WriteFile(path, []byte("too short"), 0o644))

	_, err := readResume(path)
	assert.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "extract"))
}

func TestReadResume_MissingFile(t *testing.T) {
	_, err := readResume("/nonexistent/resume.txt")
	assert.Error(t, err)
}
