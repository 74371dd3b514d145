package db

import (
	"encoding/json"
	"time"
)

// Application status values.
const (
	StatusPending   = "pending"
	StatusQualified = "qualified"
	StatusRejected  = "rejected"
	StatusCompleted = "completed"
)

// AdminUser is an account with access to the admin dashboard.
type AdminUser struct {
	ID           int       `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Email        string    `json:"email"`
	Role         string    `json:"role"`
	IsActive     bool      `json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Company is a hiring organization.
type Company struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	Website     *string   `json:"website,omitempty"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
}

// JobRole is a reusable role template carrying default skills, keywords, and
// the per-role resume score threshold.
type JobRole struct {
	ID              int       `json:"id"`
	RoleName        string    `json:"roleName"`
	Category        string    `json:"category"`
	RequiredSkills  []string  `json:"requiredSkills"`
	ExperienceLevel *string   `json:"experienceLevel,omitempty"`
	Keywords        []string  `json:"keywords"`
	ResumeThreshold int       `json:"resumeThreshold"`
	IsActive        bool      `json:"isActive"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// JobPosition is a concrete opening candidates apply to.
type JobPosition struct {
	ID                  int        `json:"id"`
	CompanyID           *int       `json:"companyId,omitempty"`
	JobRoleID           *int       `json:"jobRoleId,omitempty"`
	Title               string     `json:"title"`
	Description         string     `json:"description"`
	Requirements        *string    `json:"requirements,omitempty"`
	Responsibilities    *string    `json:"responsibilities,omitempty"`
	Location            *string    `json:"location,omitempty"`
	EmploymentType      string     `json:"employmentType"`
	SalaryRange         *string    `json:"salaryRange,omitempty"`
	ExperienceRequired  *string    `json:"experienceRequired,omitempty"`
	SkillsRequired      []string   `json:"skillsRequired"`
	Qualifications      []string   `json:"qualifications,omitempty"`
	Benefits            []string   `json:"benefits,omitempty"`
	ApplicationDeadline *time.Time `json:"applicationDeadline,omitempty"`
	IsActive            bool       `json:"isActive"`
	CreatedAt           time.Time  `json:"createdAt"`
	UpdatedAt           time.Time  `json:"updatedAt"`
}

// Application is one candidate's submission, including resume text, the
// analysis verdict, and screening test scores as they accumulate.
type Application struct {
	ID              int             `json:"id"`
	CandidateName   string          `json:"candidateName"`
	CandidateEmail  string          `json:"candidateEmail"`
	CandidatePhone  *string         `json:"candidatePhone,omitempty"`
	JobPositionID   *int            `json:"jobPositionId,omitempty"`
	ResumeFilePath  *string         `json:"resumeFilePath,omitempty"`
	ResumeText      *string         `json:"-"`
	ResumeScore     int             `json:"resumeScore"`
	ScreeningScore  int             `json:"screeningScore"`
	FinalScore      int             `json:"finalScore"`
	Status          string          `json:"status"`
	AnalysisDetails json.RawMessage `json:"analysisDetails,omitempty"`
	SubmittedAt     time.Time       `json:"submittedAt"`
	CompletedAt     *time.Time      `json:"completedAt,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

// SystemSetting is one key/value policy row, such as score thresholds.
type SystemSetting struct {
	ID           int       `json:"id"`
	SettingKey   string    `json:"settingKey"`
	SettingValue string    `json:"settingValue"`
	Description  *string   `json:"description,omitempty"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
