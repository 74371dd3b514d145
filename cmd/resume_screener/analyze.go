package main

import (
	"encoding/json"
	"fmt"
	"log"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hexaview/resume-screener/internal/analyzer"
	"github.com/hexaview/resume-screener/internal/config"
	"github.com/hexaview/resume-screener/internal/db"
	"github.com/hexaview/resume-screener/internal/extract"
)

var (
	analyzeJobID       int
	analyzeTitle       string
	analyzeDescription string
	analyzeSkills      []string
	analyzeExperience  string
	analyzeUseAI       bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <resume-file>",
	Short: "Score a resume against a job from the command line",
	Long: `Extract text from a resume file (PDF, DOCX, or TXT) and score it against
a job position. The job comes from the database when --job-id is set, otherwise
from the --title, --description, and --skills flags. The analysis is printed as
JSON.`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().IntVar(&analyzeJobID, "job-id", 0, "Job position ID to load from the database")
	analyzeCmd.Flags().StringVar(&analyzeTitle, "title", "", "Job title")
	analyzeCmd.Flags().StringVar(&analyzeDescription, "description", "", "Job description text, or @path to read a file")
	analyzeCmd.Flags().StringSliceVar(&analyzeSkills, "skills", nil, "Required skills (comma-separated)")
	analyzeCmd.Flags().StringVar(&analyzeExperience, "experience", "", "Experience requirement, e.g. '3+ years'")
	analyzeCmd.Flags().BoolVar(&analyzeUseAI, "ai", false, "Augment the heuristic analysis with the configured AI provider")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	resumeText, err := readResume(args[0])
	if err != nil {
		return err
	}

	var job analyzer.Job
	if analyzeJobID != 0 {
		job, err = loadJobFromDB(cmd)
	} else {
		job, err = jobFromFlags()
	}
	if err != nil {
		return err
	}

	resumeAnalyzer := analyzer.New(nil)
	if analyzeUseAI {
		aiAnalyzer, cleanup := buildAnalyzer(ctx)
		defer cleanup()
		resumeAnalyzer = aiAnalyzer
	}

	analysis := resumeAnalyzer.AnalyzeResume(ctx, resumeText, job)

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(analysis)
}

func readResume(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read resume file: %w", err)
	}

	mimeType := mime.TypeByExtension(filepath.Ext(path))
	if idx := strings.IndexByte(mimeType, ';'); idx >= 0 {
		mimeType = mimeType[:idx]
	}

	text, err := extract.ResumeText(filepath.Base(path), mimeType, data)
	if err != nil {
		return "", fmt.Errorf("failed to extract resume text: %w", err)
	}
	return text, nil
}

func loadJobFromDB(cmd *cobra.Command) (analyzer.Job, error) {
	cfg, err := config.Load()
	if err != nil {
		return analyzer.Job{}, err
	}
	if err := cfg.RequireDatabase(); err != nil {
		return analyzer.Job{}, err
	}

	ctx := cmd.Context()
	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return analyzer.Job{}, fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close()

	position, err := database.GetJobPosition(ctx, analyzeJobID)
	if err != nil {
		return analyzer.Job{}, err
	}
	if position == nil {
		return analyzer.Job{}, fmt.Errorf("job position %d not found", analyzeJobID)
	}

	log.Printf("[ANALYZE] loaded job position %d: %s", position.ID, position.Title)

	job := analyzer.Job{
		Title:          position.Title,
		Description:    position.Description,
		SkillsRequired: position.SkillsRequired,
	}
	if position.Requirements != nil {
		job.Requirements = *position.Requirements
	}
	if position.ExperienceRequired != nil {
		job.ExperienceRequired = *position.ExperienceRequired
	}
	return job, nil
}

func jobFromFlags() (analyzer.Job, error) {
	if analyzeTitle == "" {
		return analyzer.Job{}, fmt.Errorf("either --job-id or --title is required")
	}

	description := analyzeDescription
	if strings.HasPrefix(description, "@") {
		data, err := os.ReadFile(strings.TrimPrefix(description, "@"))
		if err != nil {
			return analyzer.Job{}, fmt.Errorf("failed to read description file: %w", err)
		}
		description = string(data)
	}

	return analyzer.Job{
		Title:              analyzeTitle,
		Description:        description,
		SkillsRequired:     analyzeSkills,
		ExperienceRequired: analyzeExperience,
	}, nil
}
