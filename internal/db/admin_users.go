package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// GetAdminByUsername retrieves an active admin account, or nil when absent.
func (db *DB) GetAdminByUsername(ctx context.Context, username string) (*AdminUser, error) {
	var u AdminUser
	err := db.pool.QueryRow(ctx,
		`SELECT id, username, password_hash, email, role, is_active, created_at, updated_at
		 FROM admin_users
		 WHERE username = $1 AND is_active = true`,
		username,
	).Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Email, &u.Role, &u.IsActive,
		&u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get admin user: %w", err)
	}
	return &u, nil
}

// CountAdmins returns how many admin accounts exist, active or not.
func (db *DB) CountAdmins(ctx context.Context) (int, error) {
	var count int
	err := db.pool.QueryRow(ctx, `SELECT COUNT(*) FROM admin_users`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count admin users: %w", err)
	}
	return count, nil
}

// UpdateAdminPassword replaces the stored hash for a username.
func (db *DB) UpdateAdminPassword(ctx context.Context, username, passwordHash string) error {
	tag, err := db.pool.Exec(ctx,
		`UPDATE admin_users SET password_hash = $2, updated_at = CURRENT_TIMESTAMP
		 WHERE username = $1`,
		username, passwordHash)
	if err != nil {
		return fmt.Errorf("failed to update admin password: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("admin user %q not found", username)
	}
	return nil
}
