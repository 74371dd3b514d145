// Package analyzer scores candidate resumes against job positions. It combines
// four heuristic analyzers (skills, experience, keywords, education) into a
// weighted composite score and optionally enriches the result with an external
// LLM assessment, falling back to the pure heuristic on any AI failure.
package analyzer

// Job carries the position fields the analyzer scores against. Collaborators
// (the persistence layer, the CLI) map their own entities into this value.
type Job struct {
	Title              string
	Description        string
	Requirements       string
	SkillsRequired     []string
	ExperienceRequired string
}

// ResumeAnalysis is the analyzer's sole output. It is constructed fresh per
// request and never mutated afterward; callers persist it as JSON.
type ResumeAnalysis struct {
	Score           int             `json:"score"`
	SkillsMatch     int             `json:"skillsMatch"`
	ExperienceMatch int             `json:"experienceMatch"`
	KeywordMatch    int             `json:"keywordMatch"`
	EducationMatch  int             `json:"educationMatch"`
	Strengths       []string        `json:"strengths"`
	Improvements    []string        `json:"improvements"`
	Details         AnalysisDetails `json:"details"`
}

// AnalysisDetails carries the raw intermediate evidence behind the scores.
type AnalysisDetails struct {
	FoundSkills        []string `json:"foundSkills"`
	MissingSkills      []string `json:"missingSkills"`
	ExperienceYears    int      `json:"experienceYears"`
	RelevantExperience bool     `json:"relevantExperience"`
	EducationMatch     bool     `json:"educationMatch"`
	Certifications     []string `json:"certifications"`
	MatchedKeywords    []string `json:"matchedKeywords"`
	MissedKeywords     []string `json:"missedKeywords"`
	ExperienceLevel    string   `json:"experienceLevel"`
	IndustryMatch      bool     `json:"industryMatch"`
	AIInsights         []string `json:"aiInsights"`
}

// SkillsResult is the outcome of matching required skills against resume text.
type SkillsResult struct {
	FoundSkills     []string
	MissingSkills   []string
	MatchPercentage int
}

// ExperienceResult is the outcome of estimating years of experience.
type ExperienceResult struct {
	Years           int
	IsRelevant      bool
	MatchPercentage int
	Level           string
}

// KeywordResult is the outcome of matching job-description and industry
// keywords against resume text.
type KeywordResult struct {
	MatchedKeywords []string
	MissedKeywords  []string
	MatchPercentage int
	IndustryMatch   bool
}

// EducationResult is the outcome of scanning for education and certification
// markers.
type EducationResult struct {
	HasRelevantEducation bool
	Certifications       []string
	MatchPercentage      int
}
