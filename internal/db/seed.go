package db

import (
	"context"
	"fmt"
)

type seedRole struct {
	name      string
	category  string
	skills    []string
	level     string
	keywords  []string
	threshold int
}

var seedRoles = []seedRole{
	{"QA Engineer", "QA", []string{"Testing", "Automation", "Selenium", "API Testing", "Bug Tracking"}, "Mid-level", []string{"quality", "testing", "automation", "selenium", "cypress", "jest"}, 70},
	{"QA Analyst", "QA", []string{"Manual Testing", "Test Cases", "Bug Reporting", "Quality Assurance"}, "Entry-level", []string{"qa", "testing", "quality", "test cases", "bug reporting"}, 65},
	{"QA Automation Engineer", "QA", []string{"Selenium", "Cypress", "TestNG", "CI/CD", "API Testing"}, "Mid-level", []string{"qa", "automation", "selenium", "cypress", "api testing", "ci/cd"}, 75},
	{"Senior QA Engineer", "QA", []string{"Test Strategy", "Team Leadership", "Automation Frameworks", "Performance Testing"}, "Senior", []string{"senior qa", "test strategy", "leadership", "performance testing"}, 80},
	{"Backend Developer", "Developer", []string{"Node.js", "Python", "Java", "Database", "API Development"}, "Mid-level", []string{"backend", "api", "database", "server", "nodejs", "python", "java"}, 75},
	{"Frontend Developer", "Developer", []string{"React", "JavaScript", "HTML", "CSS", "TypeScript"}, "Mid-level", []string{"frontend", "react", "javascript", "html", "css", "ui", "responsive"}, 70},
	{"Full Stack Developer", "Developer", []string{"React", "Node.js", "Database", "API", "JavaScript"}, "Senior", []string{"fullstack", "full-stack", "react", "nodejs", "database", "api"}, 80},
	{"Senior Software Engineer", "Developer", []string{"System Design", "Architecture", "Mentoring", "Code Review"}, "Senior", []string{"senior developer", "system design", "architecture", "mentoring"}, 85},
	{"Data Scientist", "Data & Analytics", []string{"Python", "Machine Learning", "Statistics", "SQL", "Data Analysis"}, "Senior", []string{"data", "python", "machine learning", "statistics", "analytics", "ml"}, 85},
	{"Data Analyst", "Data & Analytics", []string{"SQL", "Excel", "Tableau", "Power BI", "Data Visualization"}, "Mid-level", []string{"data analyst", "sql", "tableau", "power bi", "visualization"}, 70},
	{"Data Engineer", "Data & Analytics", []string{"Python", "Spark", "Hadoop", "ETL", "Data Pipelines"}, "Mid-level", []string{"data engineer", "spark", "hadoop", "etl", "pipelines"}, 80},
	{"DevOps Engineer", "IT", []string{"Docker", "Kubernetes", "AWS", "CI/CD", "Linux"}, "Senior", []string{"devops", "docker", "kubernetes", "aws", "cicd", "deployment"}, 80},
	{"Cloud Engineer", "IT", []string{"AWS", "Azure", "GCP", "Cloud Architecture", "Infrastructure"}, "Mid-level", []string{"cloud", "aws", "azure", "gcp", "infrastructure"}, 80},
	{"Database Administrator", "IT", []string{"SQL Server", "MySQL", "PostgreSQL", "Database Optimization"}, "Mid-level", []string{"dba", "database", "sql server", "mysql", "postgresql"}, 75},
	{"HR Manager", "HR", []string{"Recruitment", "Employee Relations", "Performance Management", "Compensation"}, "Senior", []string{"hr", "human resources", "recruitment", "hiring", "onboarding", "benefits"}, 75},
	{"Product Manager", "Management", []string{"Product Strategy", "Agile", "Analytics", "User Research"}, "Senior", []string{"product", "strategy", "agile", "scrum", "analytics", "roadmap"}, 75},
	{"UI/UX Designer", "Design", []string{"Figma", "Adobe Creative Suite", "User Research", "Prototyping"}, "Mid-level", []string{"design", "ui", "ux", "figma", "adobe", "prototype", "user experience"}, 70},
}

type seedSetting struct {
	key         string
	value       string
	description string
}

var seedSettings = []seedSetting{
	{"resume_threshold", "70", "Minimum resume score to qualify for screening test"},
	{"final_threshold", "140", "Minimum combined score to send to HR"},
	{"test_duration_minutes", "25", "Time limit for screening test in minutes"},
	{"hr_email", "hr@hexaview.com", "HR team email for notifications"},
	{"max_file_size_mb", "10", "Maximum resume file size in MB"},
	{"ai_analysis_enabled", "true", "Enable AI-powered resume analysis"},
	{"company_name", "Hexaview Technologies", "Company name for branding"},
}

// Seed inserts the default company, role catalog, and system settings. Role
// rows are upserted so catalog changes propagate; settings keep any values an
// admin has already changed.
func (db *DB) Seed(ctx context.Context) error {
	_, err := db.pool.Exec(ctx,
		`INSERT INTO companies (name, description, website)
		 SELECT $1, $2, $3
		 WHERE NOT EXISTS (SELECT 1 FROM companies WHERE name = $1)`,
		"Hexaview Technologies",
		"Leading technology solutions provider specializing in AI-powered recruitment and talent management.",
		"https://hexaview.com",
	)
	if err != nil {
		return fmt.Errorf("failed to seed company: %w", err)
	}

	for _, role := range seedRoles {
		_, err := db.pool.Exec(ctx,
			`INSERT INTO job_roles (role_name, category, required_skills, experience_level, keywords, resume_threshold)
			 VALUES ($1, $2, $3, $4, $5, $6)
			 ON CONFLICT (role_name) DO UPDATE SET
			   category = EXCLUDED.category,
			   required_skills = EXCLUDED.required_skills,
			   experience_level = EXCLUDED.experience_level,
			   keywords = EXCLUDED.keywords,
			   resume_threshold = EXCLUDED.resume_threshold,
			   updated_at = CURRENT_TIMESTAMP`,
			role.name, role.category, role.skills, role.level, role.keywords, role.threshold,
		)
		if err != nil {
			return fmt.Errorf("failed to seed job role %q: %w", role.name, err)
		}
	}

	for _, setting := range seedSettings {
		_, err := db.pool.Exec(ctx,
			`INSERT INTO system_settings (setting_key, setting_value, description)
			 VALUES ($1, $2, $3)
			 ON CONFLICT (setting_key) DO NOTHING`,
			setting.key, setting.value, setting.description,
		)
		if err != nil {
			return fmt.Errorf("failed to seed setting %q: %w", setting.key, err)
		}
	}

	return nil
}

// SeedAdmin creates the default admin account when no admin users exist.
// The password hash is produced by the caller so hashing policy stays in one
// place.
func (db *DB) SeedAdmin(ctx context.Context, username, passwordHash, email string) error {
	_, err := db.pool.Exec(ctx,
		`INSERT INTO admin_users (username, password_hash, email)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (username) DO NOTHING`,
		username, passwordHash, email,
	)
	if err != nil {
		return fmt.Errorf("failed to seed admin user: %w", err)
	}
	return nil
}
