package analyzer

import (
	"context"
	"log"
	"math"
	"strings"

	"github.com/hexaview/resume-screener/internal/llm"
)

// Composite score weights. Skills dominate, education matters least.
const (
	weightSkills     = 0.35
	weightExperience = 0.25
	weightKeywords   = 0.25
	weightEducation  = 0.15
)

// Analyzer scores resumes against job positions. A nil llm.Client disables the
// AI path entirely; the heuristic result is returned as-is.
type Analyzer struct {
	client llm.Client
}

// New creates an Analyzer. Pass nil to run heuristics only.
func New(client llm.Client) *Analyzer {
	return &Analyzer{client: client}
}

// AnalyzeResume produces the full analysis for one resume against one job.
// The heuristic pass always runs; when an AI client is configured its result
// overlays the heuristic one. Any AI failure falls back to the heuristic
// result, never an error.
func (a *Analyzer) AnalyzeResume(ctx context.Context, resumeText string, job Job) ResumeAnalysis {
	basic := PerformBasicAnalysis(resumeText, job)

	if a.client == nil {
		return basic
	}

	aiResult, err := a.performAIAnalysis(ctx, resumeText, job)
	if err != nil {
		log.Printf("[ANALYZER] AI analysis failed, falling back to basic analysis: %v", err)
		return basic
	}

	return mergeAnalyses(basic, aiResult)
}

// PerformBasicAnalysis runs the four heuristic analyzers and composes their
// percentages into the weighted overall score.
func PerformBasicAnalysis(resumeText string, job Job) ResumeAnalysis {
	resumeLower := strings.ToLower(resumeText)
	jobDescLower := strings.ToLower(job.Description + " " + job.Requirements)

	skills := MatchSkills(resumeLower, job.SkillsRequired)
	experience := EstimateExperience(resumeText, job.ExperienceRequired)
	keywords := MatchKeywords(resumeLower, jobDescLower, job)
	education := ScoreEducation(resumeLower)

	score := compositeScore(skills.MatchPercentage, experience.MatchPercentage,
		keywords.MatchPercentage, education.MatchPercentage)

	strengths, improvements := generateFeedback(skills, experience, keywords, education, job)

	return ResumeAnalysis{
		Score:           score,
		SkillsMatch:     skills.MatchPercentage,
		ExperienceMatch: experience.MatchPercentage,
		KeywordMatch:    keywords.MatchPercentage,
		EducationMatch:  education.MatchPercentage,
		Strengths:       strengths,
		Improvements:    improvements,
		Details: AnalysisDetails{
			FoundSkills:        skills.FoundSkills,
			MissingSkills:      skills.MissingSkills,
			ExperienceYears:    experience.Years,
			RelevantExperience: experience.IsRelevant,
			EducationMatch:     education.HasRelevantEducation,
			Certifications:     education.Certifications,
			MatchedKeywords:    keywords.MatchedKeywords,
			MissedKeywords:     keywords.MissedKeywords,
			ExperienceLevel:    experience.Level,
			IndustryMatch:      keywords.IndustryMatch,
			AIInsights:         []string{},
		},
	}
}

// compositeScore folds the four sub-percentages into the overall 0-100 score.
func compositeScore(skills, experience, keywords, education int) int {
	return int(math.Round(
		float64(skills)*weightSkills +
			float64(experience)*weightExperience +
			float64(keywords)*weightKeywords +
			float64(education)*weightEducation))
}

// mergeAnalyses overlays the AI verdict onto the heuristic baseline. The
// coercion step fills every AI field with a usable default, so the AI side
// wins throughout; strengths and improvements are replaced wholesale rather
// than concatenated, and aiInsights only ever come from the AI side.
func mergeAnalyses(basic, ai ResumeAnalysis) ResumeAnalysis {
	merged := basic
	merged.Score = ai.Score
	merged.SkillsMatch = ai.SkillsMatch
	merged.ExperienceMatch = ai.ExperienceMatch
	merged.KeywordMatch = ai.KeywordMatch
	merged.EducationMatch = ai.EducationMatch
	merged.Strengths = ai.Strengths
	merged.Improvements = ai.Improvements
	merged.Details = ai.Details
	return merged
}
