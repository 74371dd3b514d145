package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

const jobPositionColumns = `id, company_id, job_role_id, title, description,
	requirements, responsibilities, location, employment_type, salary_range,
	experience_required, skills_required, qualifications, benefits,
	application_deadline, is_active, created_at, updated_at`

func scanJobPosition(row pgx.Row) (*JobPosition, error) {
	var p JobPosition
	err := row.Scan(&p.ID, &p.CompanyID, &p.JobRoleID, &p.Title, &p.Description,
		&p.Requirements, &p.Responsibilities, &p.Location, &p.EmploymentType,
		&p.SalaryRange, &p.ExperienceRequired, &p.SkillsRequired,
		&p.Qualifications, &p.Benefits, &p.ApplicationDeadline, &p.IsActive,
		&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if p.SkillsRequired == nil {
		p.SkillsRequired = []string{}
	}
	return &p, nil
}

// ListJobPositions returns active positions, newest first. A non-nil roleID
// narrows the list to one role.
func (db *DB) ListJobPositions(ctx context.Context, roleID *int) ([]JobPosition, error) {
	query := `SELECT ` + jobPositionColumns + ` FROM job_positions
		 WHERE is_active = true`
	args := []any{}
	if roleID != nil {
		query += ` AND job_role_id = $1`
		args = append(args, *roleID)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list job positions: %w", err)
	}
	defer rows.Close()

	positions := []JobPosition{}
	for rows.Next() {
		position, err := scanJobPosition(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan job position: %w", err)
		}
		positions = append(positions, *position)
	}
	return positions, rows.Err()
}

// GetJobPosition retrieves one position by ID, or nil when absent.
func (db *DB) GetJobPosition(ctx context.Context, id int) (*JobPosition, error) {
	position, err := scanJobPosition(db.pool.QueryRow(ctx,
		`SELECT `+jobPositionColumns+` FROM job_positions WHERE id = $1`, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get job position: %w", err)
	}
	return position, nil
}

// CreateJobPosition inserts a position and returns it with generated fields
// filled.
func (db *DB) CreateJobPosition(ctx context.Context, position *JobPosition) (*JobPosition, error) {
	employmentType := position.EmploymentType
	if employmentType == "" {
		employmentType = "Full-time"
	}

	created, err := scanJobPosition(db.pool.QueryRow(ctx,
		`INSERT INTO job_positions (company_id, job_role_id, title, description,
			requirements, responsibilities, location, employment_type, salary_range,
			experience_required, skills_required, qualifications, benefits,
			application_deadline)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		 RETURNING `+jobPositionColumns,
		position.CompanyID, position.JobRoleID, position.Title,
		position.Description, position.Requirements, position.Responsibilities,
		position.Location, employmentType, position.SalaryRange,
		position.ExperienceRequired, position.SkillsRequired,
		position.Qualifications, position.Benefits, position.ApplicationDeadline))
	if err != nil {
		return nil, fmt.Errorf("failed to create job position: %w", err)
	}
	return created, nil
}

// UpdateJobPosition overwrites the mutable fields of a position.
func (db *DB) UpdateJobPosition(ctx context.Context, position *JobPosition) (*JobPosition, error) {
	updated, err := scanJobPosition(db.pool.QueryRow(ctx,
		`UPDATE job_positions SET
			title = $2, description = $3, requirements = $4, responsibilities = $5,
			location = $6, employment_type = $7, salary_range = $8,
			experience_required = $9, skills_required = $10, qualifications = $11,
			benefits = $12, application_deadline = $13, updated_at = CURRENT_TIMESTAMP
		 WHERE id = $1
		 RETURNING `+jobPositionColumns,
		position.ID, position.Title, position.Description, position.Requirements,
		position.Responsibilities, position.Location, position.EmploymentType,
		position.SalaryRange, position.ExperienceRequired,
		position.SkillsRequired, position.Qualifications, position.Benefits,
		position.ApplicationDeadline))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update job position: %w", err)
	}
	return updated, nil
}

// DeactivateJobPosition soft-deletes a position so existing applications keep
// their reference.
func (db *DB) DeactivateJobPosition(ctx context.Context, id int) error {
	tag, err := db.pool.Exec(ctx,
		`UPDATE job_positions SET is_active = false, updated_at = CURRENT_TIMESTAMP WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to deactivate job position: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("job position %d not found", id)
	}
	return nil
}
