package analyzer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchKeywords_Deterministic(t *testing.T) {
	job := Job{Title: "Backend Developer"}
	resume := "built microservices with grpc and postgres, deployed on kubernetes"
	desc := strings.ToLower("We need grpc microservices experience. Kubernetes and postgres required. Microservices at scale.")

	first := MatchKeywords(resume, desc, job)
	second := MatchKeywords(resume, desc, job)

	assert.Equal(t, first.MatchedKeywords, second.MatchedKeywords)
	assert.Equal(t, first.MissedKeywords, second.MissedKeywords)
	assert.Equal(t, first.MatchPercentage, second.MatchPercentage)
}

func TestMatchKeywords_StopWordsDropped(t *testing.T) {
	job := Job{Title: "Clerk"}
	desc := "the and or with experience ability skills working"

	result := MatchKeywords("anything", desc, job)

	assert.Empty(t, result.MatchedKeywords)
	assert.Empty(t, result.MissedKeywords)
	assert.Equal(t, 0, result.MatchPercentage)
}

func TestMatchKeywords_IndustryMatchFromTitle(t *testing.T) {
	job := Job{Title: "QA Engineer"}

	result := MatchKeywords("automation of regression testing suites", "", job)

	assert.True(t, result.IndustryMatch)
	assert.Contains(t, result.MatchedKeywords, "testing")
	assert.Contains(t, result.MatchedKeywords, "automation")
}

func TestMatchKeywords_IndustryMatchIndependentOfPercentage(t *testing.T) {
	job := Job{Title: "Developer"}
	desc := "blockchain cryptography distributed ledger consensus protocols validators"

	result := MatchKeywords("software development and coding", strings.ToLower(desc), job)

	// None of the description keywords hit, but the title-derived industry
	// terms do.
	assert.True(t, result.IndustryMatch)
}

func TestExtractImportantKeywords_FrequencyOrder(t *testing.T) {
	text := "redis redis redis kafka kafka postgres"

	keywords := extractImportantKeywords(text)

	assert.Equal(t, []string{"redis", "kafka", "postgres"}, keywords)
}

func TestExtractImportantKeywords_CapsAtFifteen(t *testing.T) {
	words := []string{
		"alpha", "bravo", "charlie", "delta", "echo", "foxtrot", "golf",
		"hotel", "india", "juliett", "kilo", "lima", "mike", "november",
		"oscar", "papa", "quebec", "romeo",
	}

	keywords := extractImportantKeywords(strings.Join(words, " "))

	assert.Len(t, keywords, 15)
	// All frequencies tie, so first-seen order is preserved.
	assert.Equal(t, words[:15], keywords)
}

func TestIndustryKeywordsFor_MultipleCategories(t *testing.T) {
	keywords := industryKeywordsFor("QA Engineer")

	// Qa terms follow engineer terms because category order is fixed.
	assert.Contains(t, keywords, "testing")
	assert.Contains(t, keywords, "engineering")
	assert.Less(t,
		indexOf(keywords, "engineering"), indexOf(keywords, "testing"))
}

func TestIndustryKeywordsFor_NoCategory(t *testing.T) {
	assert.Empty(t, industryKeywordsFor("Accountant"))
}

func indexOf(items []string, target string) int {
	for i, item := range items {
		if item == target {
			return i
		}
	}
	return -1
}
