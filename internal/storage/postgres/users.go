package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/hmorales/wedplan/internal/models"
	"github.com/hmorales/wedplan/internal/storage"
)

const adminUserColumns = `id, email, display_name, password_hash, created_at`

func scanAdminUser(scanner interface{ Scan(...any) error }) (*models.AdminUser, error) {
	u := &models.AdminUser{}
	err := scanner.Scan(&u.ID, &u.Email, &u.DisplayName, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		return nil, err
	}
	return u, nil
}

// CreateUser persists a planner account. Returns storage.ErrConflict when the
// email is already registered.
func (s *PostgresStore) CreateUser(ctx context.Context, user *models.AdminUser) error {
	_, err := s.exec(ctx,
		`INSERT INTO admin_users (`+adminUserColumns+`) VALUES (?, ?, ?, ?, ?)`,
		user.ID, user.Email, user.DisplayName, user.PasswordHash, user.CreatedAt,
	)
	if isUniqueViolation(err) {
		return fmt.Errorf("email %s already registered: %w", user.Email, storage.ErrConflict)
	}
	if err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}
	return nil
}

// GetUserByEmail retrieves a planner account by login email.
func (s *PostgresStore) GetUserByEmail(ctx context.Context, email string) (*models.AdminUser, error) {
	user, err := scanAdminUser(s.queryRow(ctx,
		`SELECT `+adminUserColumns+` FROM admin_users WHERE email = ?`, email))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("user %s: %w", email, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

// GetUserByID retrieves a planner account by ID.
func (s *PostgresStore) GetUserByID(ctx context.Context, id string) (*models.AdminUser, error) {
	user, err := scanAdminUser(s.queryRow(ctx,
		`SELECT `+adminUserColumns+` FROM admin_users WHERE id = ?`, id))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("user %s: %w", id, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}
