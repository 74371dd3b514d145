package analyzer

import (
	"regexp"
	"sort"
	"strings"
)

// maxJobKeywords caps how many terms are extracted from the job description.
const maxJobKeywords = 15

// stopWords are dropped during keyword extraction: common English function
// words plus job-posting filler that carries no matching signal.
var stopWords = map[string]bool{
	"the": true, "and": true, "or": true, "but": true, "in": true, "on": true,
	"at": true, "to": true, "for": true, "of": true, "with": true, "by": true,
	"a": true, "an": true, "is": true, "are": true, "was": true, "were": true,
	"be": true, "been": true, "have": true, "has": true, "had": true,
	"do": true, "does": true, "did": true, "will": true, "would": true,
	"could": true, "should": true, "must": true, "can": true, "this": true,
	"that": true, "these": true, "those": true, "we": true, "you": true,
	"they": true, "them": true, "their": true, "our": true, "your": true,
	"his": true, "her": true, "its": true, "who": true, "what": true,
	"when": true, "where": true, "why": true, "how": true, "all": true,
	"any": true, "both": true, "each": true, "few": true, "more": true,
	"most": true, "other": true, "some": true, "such": true, "no": true,
	"nor": true, "not": true, "only": true, "own": true, "same": true,
	"so": true, "than": true, "too": true, "very": true, "just": true,
	"now": true, "work": true, "working": true, "experience": true,
	"ability": true, "skills": true,
}

// industryKeywordTable maps job-title substrings to associated terms. Held as
// an ordered slice so a title matching several categories always unions its
// term lists in the same order.
var industryKeywordTable = []struct {
	titlePart string
	terms     []string
}{
	{"developer", []string{"development", "programming", "coding", "software", "application"}},
	{"engineer", []string{"engineering", "technical", "system", "architecture", "design"}},
	{"qa", []string{"testing", "quality", "automation", "bug", "defect", "test cases"}},
	{"data", []string{"analytics", "database", "sql", "analysis", "reporting"}},
	{"manager", []string{"management", "leadership", "team", "project", "coordination"}},
	{"designer", []string{"design", "ui", "ux", "user interface", "user experience", "visual"}},
}

var nonWordPattern = regexp.MustCompile(`[^\w\s]`)

// MatchKeywords compares terms extracted from the job description plus the
// title-derived industry keywords against lowercased resume text.
func MatchKeywords(resumeText, jobDescription string, job Job) KeywordResult {
	jobKeywords := extractImportantKeywords(jobDescription)
	industryKeywords := industryKeywordsFor(job.Title)

	allKeywords := make([]string, 0, len(jobKeywords)+len(industryKeywords))
	allKeywords = append(allKeywords, jobKeywords...)
	allKeywords = append(allKeywords, industryKeywords...)

	result := KeywordResult{
		MatchedKeywords: []string{},
		MissedKeywords:  []string{},
	}

	for _, keyword := range allKeywords {
		if strings.Contains(resumeText, strings.ToLower(keyword)) {
			result.MatchedKeywords = append(result.MatchedKeywords, keyword)
		} else {
			result.MissedKeywords = append(result.MissedKeywords, keyword)
		}
	}

	if len(allKeywords) > 0 {
		result.MatchPercentage = roundPercent(float64(len(result.MatchedKeywords)) / float64(len(allKeywords)) * 100)
	}

	// Industry alignment is judged on the industry list alone, independent of
	// how the combined percentage came out.
	for _, keyword := range industryKeywords {
		if strings.Contains(resumeText, strings.ToLower(keyword)) {
			result.IndustryMatch = true
			break
		}
	}

	return result
}

// extractImportantKeywords tokenizes the job description, drops short tokens
// and stop words, and returns the top tokens by frequency. Ties keep their
// first-occurrence order so repeated runs produce identical lists.
func extractImportantKeywords(text string) []string {
	cleaned := nonWordPattern.ReplaceAllString(strings.ToLower(text), " ")

	counts := map[string]int{}
	order := []string{}
	for _, word := range strings.Fields(cleaned) {
		if len(word) <= 2 || stopWords[word] {
			continue
		}
		if counts[word] == 0 {
			order = append(order, word)
		}
		counts[word]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	if len(order) > maxJobKeywords {
		order = order[:maxJobKeywords]
	}
	return order
}

// industryKeywordsFor unions the term lists of every category whose name
// appears in the job title ("QA Engineer" matches both qa and engineer).
func industryKeywordsFor(jobTitle string) []string {
	titleLower := strings.ToLower(jobTitle)

	keywords := []string{}
	for _, entry := range industryKeywordTable {
		if strings.Contains(titleLower, entry.titlePart) {
			keywords = append(keywords, entry.terms...)
		}
	}
	return keywords
}
