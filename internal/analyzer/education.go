package analyzer

import "strings"

// educationKeywords mark a relevant academic background: degree names,
// institution words, field names, and common abbreviations.
var educationKeywords = []string{
	"bachelor", "master", "phd", "doctorate", "degree", "university", "college",
	"computer science", "engineering", "information technology",
	"software engineering",
	"bsc", "msc", "btech", "mtech", "be", "me", "bs", "ms",
}

// certificationKeywords mark professional credentials: vendor names and
// credential words.
var certificationKeywords = []string{
	"certified", "certification", "certificate",
	"aws", "google", "microsoft", "oracle", "cisco", "comptia",
	"pmp", "scrum master", "agile", "itil",
}

// ScoreEducation scans lowercased resume text for education and certification
// markers. The percentage is a fixed four-way split: both present 90,
// education only 70, certifications only 60, neither 30.
func ScoreEducation(resumeText string) EducationResult {
	result := EducationResult{Certifications: []string{}}

	for _, keyword := range educationKeywords {
		if strings.Contains(resumeText, keyword) {
			result.HasRelevantEducation = true
			break
		}
	}

	for _, keyword := range certificationKeywords {
		if strings.Contains(resumeText, keyword) {
			result.Certifications = append(result.Certifications, keyword)
		}
	}

	switch {
	case result.HasRelevantEducation && len(result.Certifications) > 0:
		result.MatchPercentage = 90
	case result.HasRelevantEducation:
		result.MatchPercentage = 70
	case len(result.Certifications) > 0:
		result.MatchPercentage = 60
	default:
		result.MatchPercentage = 30
	}

	return result
}
