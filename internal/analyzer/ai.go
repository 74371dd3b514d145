package analyzer

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/hexaview/resume-screener/internal/llm"
)

const analysisSystemPrompt = "You are an expert HR professional specializing in resume analysis and candidate assessment. Provide detailed, accurate, and constructive feedback."

// performAIAnalysis asks the configured model for a full assessment and
// coerces its JSON into a ResumeAnalysis. Any transport, extraction, or parse
// failure is returned to the caller, which falls back to heuristics.
func (a *Analyzer) performAIAnalysis(ctx context.Context, resumeText string, job Job) (ResumeAnalysis, error) {
	prompt := buildAnalysisPrompt(resumeText, job)

	response, err := a.client.Complete(ctx, analysisSystemPrompt, prompt)
	if err != nil {
		return ResumeAnalysis{}, fmt.Errorf("AI completion failed: %w", err)
	}

	raw, err := llm.ExtractJSONObject(response)
	if err != nil {
		return ResumeAnalysis{}, fmt.Errorf("could not extract JSON from AI response: %w", err)
	}

	var verdict map[string]any
	if err := json.Unmarshal([]byte(raw), &verdict); err != nil {
		return ResumeAnalysis{}, fmt.Errorf("could not parse AI response: %w", err)
	}

	return coerceVerdict(verdict), nil
}

func buildAnalysisPrompt(resumeText string, job Job) string {
	return fmt.Sprintf(`
You are an expert HR professional and resume analyzer. Analyze the following resume against the specific job requirements and provide a detailed assessment.

JOB POSITION DETAILS:
- Title: %s
- Description: %s
- Requirements: %s
- Required Skills: %s
- Experience Required: %s

CANDIDATE RESUME:
%s

Please analyze this resume thoroughly and provide a detailed assessment in the following JSON format:

{
  "score": [Overall match score from 0-100 based on how well the resume fits the job],
  "skillsMatch": [Skills match percentage from 0-100],
  "experienceMatch": [Experience match percentage from 0-100],
  "keywordMatch": [Keyword relevance percentage from 0-100],
  "educationMatch": [Education match percentage from 0-100],
  "strengths": [Array of 4-6 specific strengths found in the resume that match the job],
  "improvements": [Array of 4-6 specific areas for improvement or missing elements],
  "details": {
    "foundSkills": [Array of specific technical and soft skills found in the resume],
    "missingSkills": [Array of required skills not clearly demonstrated in the resume],
    "experienceYears": [Estimated years of relevant professional experience],
    "relevantExperience": [true/false - does the experience align with job requirements],
    "educationMatch": [true/false - does education background support the role],
    "certifications": [Array of professional certifications or credentials mentioned],
    "matchedKeywords": [Array of important job-related keywords found in resume],
    "missedKeywords": [Array of important job keywords missing from resume],
    "experienceLevel": [String: "Entry Level", "Junior", "Mid Level", "Senior", or "Lead/Principal"],
    "industryMatch": [true/false - does candidate have relevant industry experience],
    "aiInsights": [Array of 4-6 specific, actionable insights about the candidate's fit for this role]
  }
}

Focus on:
1. Technical skills alignment with job requirements
2. Relevant work experience and achievements
3. Education and certifications relevance
4. Industry knowledge and domain expertise
5. Leadership and soft skills demonstration
6. Career progression and growth potential

Provide honest, constructive feedback that would help both the employer and candidate understand the fit.
`,
		job.Title, job.Description, job.Requirements,
		strings.Join(job.SkillsRequired, ", "), job.ExperienceRequired,
		resumeText)
}

// coerceVerdict converts the loosely-typed AI JSON into a ResumeAnalysis.
// Each field is coerced independently so one malformed field degrades to its
// default instead of rejecting the whole response. Percentages are clamped to
// [0,100], lists default to empty, and experienceYears is floored at 0.
func coerceVerdict(verdict map[string]any) ResumeAnalysis {
	details, _ := verdict["details"].(map[string]any)

	experienceLevel := asString(details["experienceLevel"])
	if experienceLevel == "" {
		experienceLevel = "Unknown"
	}

	experienceYears := asInt(details["experienceYears"])
	if experienceYears < 0 {
		experienceYears = 0
	}

	return ResumeAnalysis{
		Score:           clampPercent(asInt(verdict["score"])),
		SkillsMatch:     clampPercent(asInt(verdict["skillsMatch"])),
		ExperienceMatch: clampPercent(asInt(verdict["experienceMatch"])),
		KeywordMatch:    clampPercent(asInt(verdict["keywordMatch"])),
		EducationMatch:  clampPercent(asInt(verdict["educationMatch"])),
		Strengths:       asStringList(verdict["strengths"]),
		Improvements:    asStringList(verdict["improvements"]),
		Details: AnalysisDetails{
			FoundSkills:        asStringList(details["foundSkills"]),
			MissingSkills:      asStringList(details["missingSkills"]),
			ExperienceYears:    experienceYears,
			RelevantExperience: asBool(details["relevantExperience"]),
			EducationMatch:     asBool(details["educationMatch"]),
			Certifications:     asStringList(details["certifications"]),
			MatchedKeywords:    asStringList(details["matchedKeywords"]),
			MissedKeywords:     asStringList(details["missedKeywords"]),
			ExperienceLevel:    experienceLevel,
			IndustryMatch:      asBool(details["industryMatch"]),
			AIInsights:         asStringList(details["aiInsights"]),
		},
	}
}

func asInt(v any) int {
	switch n := v.(type) {
	case float64:
		return int(n)
	case json.Number:
		if f, err := n.Float64(); err == nil {
			return int(f)
		}
	}
	return 0
}

func asBool(v any) bool {
	b, _ := v.(bool)
	return b
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}

func asStringList(v any) []string {
	items, ok := v.([]any)
	if !ok {
		return []string{}
	}
	result := []string{}
	for _, item := range items {
		if s, ok := item.(string); ok {
			result = append(result, s)
		}
	}
	return result
}
