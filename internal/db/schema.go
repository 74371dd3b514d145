package db

import (
	"context"
	"fmt"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS admin_users (
		id SERIAL PRIMARY KEY,
		username VARCHAR(50) NOT NULL UNIQUE,
		password_hash VARCHAR(255) NOT NULL,
		email VARCHAR(255) NOT NULL,
		role VARCHAR(20) DEFAULT 'admin',
		is_active BOOLEAN DEFAULT true,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS companies (
		id SERIAL PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		description TEXT,
		website VARCHAR(255),
		is_active BOOLEAN DEFAULT true,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS job_roles (
		id SERIAL PRIMARY KEY,
		role_name VARCHAR(100) NOT NULL,
		category VARCHAR(50) NOT NULL,
		required_skills TEXT[],
		experience_level VARCHAR(50),
		keywords TEXT[],
		resume_threshold INTEGER DEFAULT 70,
		is_active BOOLEAN DEFAULT true,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		UNIQUE(role_name)
	)`,
	`CREATE TABLE IF NOT EXISTS job_positions (
		id SERIAL PRIMARY KEY,
		company_id INTEGER REFERENCES companies(id),
		job_role_id INTEGER REFERENCES job_roles(id),
		title VARCHAR(255) NOT NULL,
		description TEXT NOT NULL,
		requirements TEXT,
		responsibilities TEXT,
		location VARCHAR(255),
		employment_type VARCHAR(50) DEFAULT 'Full-time',
		salary_range VARCHAR(100),
		experience_required VARCHAR(50),
		skills_required TEXT[],
		qualifications TEXT[],
		benefits TEXT[],
		application_deadline DATE,
		is_active BOOLEAN DEFAULT true,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS applications (
		id SERIAL PRIMARY KEY,
		candidate_name VARCHAR(255) NOT NULL,
		candidate_email VARCHAR(255) NOT NULL,
		candidate_phone VARCHAR(20),
		job_position_id INTEGER REFERENCES job_positions(id),
		resume_file_path VARCHAR(500),
		resume_text TEXT,
		resume_score INTEGER DEFAULT 0,
		screening_score INTEGER DEFAULT 0,
		final_score INTEGER DEFAULT 0,
		status VARCHAR(50) DEFAULT 'pending',
		analysis_details JSONB,
		submitted_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		completed_at TIMESTAMP,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS system_settings (
		id SERIAL PRIMARY KEY,
		setting_key VARCHAR(100) NOT NULL UNIQUE,
		setting_value VARCHAR(255) NOT NULL,
		description TEXT,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`,
}

// SchemaInitialized reports whether the schema already exists, keyed off the
// admin_users table.
func (db *DB) SchemaInitialized(ctx context.Context) (bool, error) {
	var exists bool
	err := db.pool.QueryRow(ctx,
		`SELECT EXISTS (
			SELECT FROM information_schema.tables
			WHERE table_schema = 'public' AND table_name = 'admin_users'
		)`,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check schema: %w", err)
	}
	return exists, nil
}

// InitSchema creates all tables. Statements are idempotent so re-running is
// safe.
func (db *DB) InitSchema(ctx context.Context) error {
	for _, stmt := range schemaStatements {
		if _, err := db.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create table: %w", err)
		}
	}
	return nil
}
