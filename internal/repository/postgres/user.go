package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/abdullah-masud/Doctors-Portal-Server/internal/model"
	"github.com/abdullah-masud/Doctors-Portal-Server/internal/repository"
)

type userRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// Upsert is the account-creation/login write: insert by email, or refresh the
// profile when the email is already registered. The role column is left alone
// on update so a re-login never demotes an admin.
func (r *userRepository) Upsert(ctx context.Context, user *model.User) error {
	query := `
		INSERT INTO users (id, email, name, role, created_at, updated_at)
		VALUES ($1, $2, $3, '', $4, $4)
		ON CONFLICT (email) DO UPDATE
		SET name = EXCLUDED.name, updated_at = EXCLUDED.updated_at
		RETURNING id, role, created_at
	`

	now := time.Now()
	user.UpdatedAt = now

	row := r.db.QueryRowxContext(ctx, query, uuid.New(), user.Email, user.Name, now)
	if err := row.Scan(&user.ID, &user.Role, &user.CreatedAt); err != nil {
		return fmt.Errorf("failed to upsert user: %w", err)
	}

	return nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	query := `
		SELECT id, email, name, role, created_at, updated_at
		FROM users
		WHERE email = $1
	`

	var user model.User
	if err := r.db.GetContext(ctx, &user, query, email); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	return &user, nil
}

func (r *userRepository) List(ctx context.Context) ([]*model.User, error) {
	query := `
		SELECT id, email, name, role, created_at, updated_at
		FROM users
		ORDER BY created_at DESC
	`

	var users []*model.User
	if err := r.db.SelectContext(ctx, &users, query); err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	return users, nil
}

func (r *userRepository) SetRole(ctx context.Context, email, role string) error {
	query := `
		UPDATE users
		SET role = $1, updated_at = NOW()
		WHERE email = $2
	`

	result, err := r.db.ExecContext(ctx, query, role, email)
	if err != nil {
		return fmt.Errorf("failed to set user role: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return repository.ErrNotFound
	}

	return nil
}
