package analyzer

import (
	"math"
	"strings"
)

// skillAliases maps lowercased skill names to known synonymous spellings.
// A required skill is considered present if the skill itself or any alias
// appears as a substring of the resume text.
var skillAliases = map[string][]string{
	"javascript": {"js", "javascript", "java script", "ecmascript"},
	"typescript": {"ts", "typescript", "type script"},
	"react":      {"react.js", "reactjs", "react js"},
	"node.js":    {"nodejs", "node js", "node"},
	"python":     {"python3", "py"},
	"java":       {"java se", "java ee", "openjdk"},
	"c++":        {"cpp", "c plus plus"},
	"c#":         {"csharp", "c sharp"},
	"sql":        {"mysql", "postgresql", "sqlite", "mssql"},
	"aws":        {"amazon web services", "amazon aws"},
	"docker":     {"containerization", "containers"},
	"kubernetes": {"k8s", "container orchestration"},
}

// skillVariations returns the skill itself plus any known aliases.
// Skills without a table entry match only on their literal spelling.
func skillVariations(skill string) []string {
	variations := []string{skill}
	if aliases, ok := skillAliases[strings.ToLower(skill)]; ok {
		variations = append(variations, aliases...)
	}
	return variations
}

// MatchSkills checks each required skill (and its aliases) against lowercased
// resume text. An empty required list yields a zero result, not an error.
func MatchSkills(resumeText string, requiredSkills []string) SkillsResult {
	result := SkillsResult{
		FoundSkills:   []string{},
		MissingSkills: []string{},
	}

	for _, skill := range requiredSkills {
		found := false
		for _, variation := range skillVariations(skill) {
			if strings.Contains(resumeText, strings.ToLower(variation)) {
				found = true
				break
			}
		}
		if found {
			result.FoundSkills = append(result.FoundSkills, skill)
		} else {
			result.MissingSkills = append(result.MissingSkills, skill)
		}
	}

	if len(requiredSkills) > 0 {
		result.MatchPercentage = roundPercent(float64(len(result.FoundSkills)) / float64(len(requiredSkills)) * 100)
	}

	return result
}

// roundPercent rounds to the nearest whole percentage point.
func roundPercent(v float64) int {
	return int(math.Round(v))
}

// clampPercent constrains a percentage to the [0,100] range.
func clampPercent(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
