package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pixiplay/platform/internal/domain"
)

// PgUserRepository implements UserRepository using pgx.
type PgUserRepository struct{}

// NewPgUserRepository creates a new PgUserRepository.
func NewPgUserRepository() *PgUserRepository {
	return &PgUserRepository{}
}

const userColumns = `id, name, email, password_hash, role, created_at, updated_at`

// FindByEmail returns a user by lowercased email, or nil if not found.
func (r *PgUserRepository) FindByEmail(ctx context.Context, db DBTX, email string) (*domain.User, error) {
	row := db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = $1`, email)
	return scanUser(row)
}

// FindByID returns a user by ID, or nil if not found.
func (r *PgUserRepository) FindByID(ctx context.Context, db DBTX, id uuid.UUID) (*domain.User, error) {
	row := db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	return scanUser(row)
}

// Create inserts a new user.
func (r *PgUserRepository) Create(ctx context.Context, db DBTX, user *domain.User) error {
	_, err := db.Exec(ctx,
		`INSERT INTO users (id, name, email, password_hash, role) VALUES ($1, $2, $3, $4, $5)`,
		user.ID, user.Name, user.Email, user.PasswordHash, user.Role)
	return err
}

func scanUser(row pgx.Row) (*domain.User, error) {
	u := &domain.User{}
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Role, &u.CreatedAt, &u.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}
