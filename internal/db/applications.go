package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
)

const applicationColumns = `id, candidate_name, candidate_email, candidate_phone,
	job_position_id, resume_file_path, resume_text, resume_score,
	screening_score, final_score, status, analysis_details, submitted_at,
	completed_at, created_at, updated_at`

func scanApplication(row pgx.Row) (*Application, error) {
	var a Application
	var details []byte
	err := row.Scan(&a.ID, &a.CandidateName, &a.CandidateEmail, &a.CandidatePhone,
		&a.JobPositionID, &a.ResumeFilePath, &a.ResumeText, &a.ResumeScore,
		&a.ScreeningScore, &a.FinalScore, &a.Status, &details, &a.SubmittedAt,
		&a.CompletedAt, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	a.AnalysisDetails = details
	return &a, nil
}

// CreateApplication stores a new submission together with its resume analysis
// verdict.
func (db *DB) CreateApplication(ctx context.Context, app *Application, analysis any) (*Application, error) {
	detailsJSON, err := json.Marshal(analysis)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal analysis: %w", err)
	}

	created, err := scanApplication(db.pool.QueryRow(ctx,
		`INSERT INTO applications (candidate_name, candidate_email, candidate_phone,
			job_position_id, resume_file_path, resume_text, resume_score,
			final_score, status, analysis_details)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $7, $8, $9)
		 RETURNING `+applicationColumns,
		app.CandidateName, app.CandidateEmail, app.CandidatePhone,
		app.JobPositionID, app.ResumeFilePath, app.ResumeText, app.ResumeScore,
		app.Status, detailsJSON))
	if err != nil {
		return nil, fmt.Errorf("failed to create application: %w", err)
	}
	return created, nil
}

// GetApplication retrieves one application by ID, or nil when absent.
func (db *DB) GetApplication(ctx context.Context, id int) (*Application, error) {
	app, err := scanApplication(db.pool.QueryRow(ctx,
		`SELECT `+applicationColumns+` FROM applications WHERE id = $1`, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get application: %w", err)
	}
	return app, nil
}

// ListApplications returns all applications, newest first.
func (db *DB) ListApplications(ctx context.Context) ([]Application, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT `+applicationColumns+` FROM applications ORDER BY submitted_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}
	defer rows.Close()

	apps := []Application{}
	for rows.Next() {
		app, err := scanApplication(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan application: %w", err)
		}
		apps = append(apps, *app)
	}
	return apps, rows.Err()
}

// RecordScreeningResult stores the screening score, recomputes the final
// score, and marks the application completed.
func (db *DB) RecordScreeningResult(ctx context.Context, id, screeningScore int, status string) (*Application, error) {
	app, err := scanApplication(db.pool.QueryRow(ctx,
		`UPDATE applications SET
			screening_score = $2,
			final_score = resume_score + $2,
			status = $3,
			completed_at = CURRENT_TIMESTAMP,
			updated_at = CURRENT_TIMESTAMP
		 WHERE id = $1
		 RETURNING `+applicationColumns,
		id, screeningScore, status))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to record screening result: %w", err)
	}
	return app, nil
}
