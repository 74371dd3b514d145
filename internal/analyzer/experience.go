package analyzer

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Experience level labels, keyed off estimated years.
const (
	LevelEntry     = "Entry Level"
	LevelJunior    = "Junior"
	LevelMid       = "Mid Level"
	LevelSenior    = "Senior"
	LevelPrincipal = "Lead/Principal"
)

// Patterns that capture explicit experience mentions like "5+ years of
// experience", "3 yrs exp", "experience: 4 years", "6 years in".
var experienceMentionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(\d+)\+?\s*years?\s*(?:of\s*)?(?:experience|exp)`),
	regexp.MustCompile(`(?i)(\d+)\+?\s*yrs?\s*(?:of\s*)?(?:experience|exp)`),
	regexp.MustCompile(`(?i)experience[:\s]*(\d+)\+?\s*years?`),
	regexp.MustCompile(`(?i)(\d+)\+?\s*years?\s*in`),
}

// Calendar-date shapes used to infer a career span when no explicit years
// mention exists: "Jan 2019", "3/2020", "2018-2022", "2018 to 2022",
// "2019-present".
var employmentDatePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\s+\d{4}`),
	regexp.MustCompile(`\d{1,2}/\d{4}`),
	regexp.MustCompile(`\d{4}\s*-\s*\d{4}`),
	regexp.MustCompile(`(?i)\d{4}\s*to\s*\d{4}`),
	regexp.MustCompile(`(?i)\d{4}\s*-\s*present`),
}

var (
	yearTokenPattern    = regexp.MustCompile(`\d{4}`)
	requiredYearsOfExp  = regexp.MustCompile(`(?i)(\d+)\+?\s*years?`)
	requiredYrsOfExp    = regexp.MustCompile(`(?i)(\d+)\+?\s*yrs?`)
)

// EstimateExperience infers years of relevant experience from resume text and
// scores them against the free-text requirement (e.g. "3-5 years", "Senior").
func EstimateExperience(resumeText, requiredExperience string) ExperienceResult {
	years := extractExplicitYears(resumeText)
	if years == 0 {
		years = inferYearsFromEmploymentDates(resumeText)
	}

	requiredYears := parseRequiredYears(requiredExperience)

	// 20% tolerance band: 4 years qualifies against a 5-year requirement.
	isRelevant := float64(years) >= float64(requiredYears)*0.8

	var matchPercentage int
	if requiredYears > 0 {
		matchPercentage = roundPercent(float64(years) / float64(requiredYears) * 100)
		if matchPercentage > 100 {
			matchPercentage = 100
		}
	} else if years > 0 {
		matchPercentage = 80
	} else {
		matchPercentage = 40
	}

	return ExperienceResult{
		Years:           years,
		IsRelevant:      isRelevant,
		MatchPercentage: matchPercentage,
		Level:           experienceLevel(years),
	}
}

// extractExplicitYears returns the maximum N across all "N years ..." style
// mentions, or 0 when none are present.
func extractExplicitYears(resumeText string) int {
	maxYears := 0
	for _, pattern := range experienceMentionPatterns {
		for _, match := range pattern.FindAllStringSubmatch(resumeText, -1) {
			years, err := strconv.Atoi(match[1])
			if err != nil {
				continue
			}
			if years > maxYears {
				maxYears = years
			}
		}
	}
	return maxYears
}

// inferYearsFromEmploymentDates derives a career span from calendar dates in
// the job-history section. Each date match contributes its first year token;
// the span runs from the earliest year to the latest year seen or the current
// year, whichever is greater. Fewer than two distinct years yields 0.
func inferYearsFromEmploymentDates(resumeText string) int {
	seen := map[int]bool{}
	minYear, maxYear := 0, 0
	for _, pattern := range employmentDatePatterns {
		for _, match := range pattern.FindAllString(resumeText, -1) {
			token := yearTokenPattern.FindString(match)
			if token == "" {
				continue
			}
			year, err := strconv.Atoi(token)
			if err != nil {
				continue
			}
			seen[year] = true
			if minYear == 0 || year < minYear {
				minYear = year
			}
			if year > maxYear {
				maxYear = year
			}
		}
	}

	if len(seen) < 2 {
		return 0
	}

	currentYear := time.Now().Year()
	if currentYear > maxYear {
		maxYear = currentYear
	}
	return maxYear - minYear
}

// parseRequiredYears extracts a year count from the requirement string,
// mapping qualitative terms when no number is present. Defaults to 2.
func parseRequiredYears(requiredExperience string) int {
	for _, pattern := range []*regexp.Regexp{requiredYearsOfExp, requiredYrsOfExp} {
		if match := pattern.FindStringSubmatch(requiredExperience); match != nil {
			if years, err := strconv.Atoi(match[1]); err == nil {
				return years
			}
		}
	}

	lower := strings.ToLower(requiredExperience)
	switch {
	case strings.Contains(lower, "entry") || strings.Contains(lower, "junior"):
		return 1
	case strings.Contains(lower, "mid") || strings.Contains(lower, "intermediate"):
		return 3
	case strings.Contains(lower, "senior"):
		return 5
	case strings.Contains(lower, "lead") || strings.Contains(lower, "principal"):
		return 7
	}
	return 2
}

func experienceLevel(years int) string {
	switch {
	case years <= 1:
		return LevelEntry
	case years <= 3:
		return LevelJunior
	case years <= 5:
		return LevelMid
	case years <= 8:
		return LevelSenior
	default:
		return LevelPrincipal
	}
}
