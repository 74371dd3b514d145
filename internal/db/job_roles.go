package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

const jobRoleColumns = `id, role_name, category, required_skills, experience_level,
	keywords, resume_threshold, is_active, created_at, updated_at`

func scanJobRole(row pgx.Row) (*JobRole, error) {
	var r JobRole
	err := row.Scan(&r.ID, &r.RoleName, &r.Category, &r.RequiredSkills,
		&r.ExperienceLevel, &r.Keywords, &r.ResumeThreshold, &r.IsActive,
		&r.CreatedAt, &r.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if r.RequiredSkills == nil {
		r.RequiredSkills = []string{}
	}
	if r.Keywords == nil {
		r.Keywords = []string{}
	}
	return &r, nil
}

// ListJobRoles returns all active roles ordered by category and name.
func (db *DB) ListJobRoles(ctx context.Context) ([]JobRole, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT `+jobRoleColumns+` FROM job_roles
		 WHERE is_active = true
		 ORDER BY category, role_name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list job roles: %w", err)
	}
	defer rows.Close()

	roles := []JobRole{}
	for rows.Next() {
		role, err := scanJobRole(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan job role: %w", err)
		}
		roles = append(roles, *role)
	}
	return roles, rows.Err()
}

// GetJobRole retrieves one role by ID, or nil when absent.
func (db *DB) GetJobRole(ctx context.Context, id int) (*JobRole, error) {
	role, err := scanJobRole(db.pool.QueryRow(ctx,
		`SELECT `+jobRoleColumns+` FROM job_roles WHERE id = $1`, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get job role: %w", err)
	}
	return role, nil
}

// FindJobRoleByName retrieves a role by name within a category, matching
// case-insensitively, or nil when absent.
func (db *DB) FindJobRoleByName(ctx context.Context, roleName, category string) (*JobRole, error) {
	role, err := scanJobRole(db.pool.QueryRow(ctx,
		`SELECT `+jobRoleColumns+` FROM job_roles
		 WHERE LOWER(role_name) = LOWER($1) AND LOWER(category) = LOWER($2)`,
		roleName, category))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find job role: %w", err)
	}
	return role, nil
}

// CreateJobRole inserts a role and returns it with generated fields filled.
func (db *DB) CreateJobRole(ctx context.Context, role *JobRole) (*JobRole, error) {
	created, err := scanJobRole(db.pool.QueryRow(ctx,
		`INSERT INTO job_roles (role_name, category, required_skills, experience_level, keywords, resume_threshold)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING `+jobRoleColumns,
		role.RoleName, role.Category, role.RequiredSkills, role.ExperienceLevel,
		role.Keywords, role.ResumeThreshold))
	if err != nil {
		return nil, fmt.Errorf("failed to create job role: %w", err)
	}
	return created, nil
}
