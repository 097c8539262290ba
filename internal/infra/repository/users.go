package repository

import (
	"context"
	"time"

	"bakehouse/internal/domain/user"
	"bakehouse/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserRepository struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

const userColumns = `
	id, tenant_id, email, password_hash, role, last_login, is_active, created_at, updated_at`

func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	query := `
		INSERT INTO users (id, tenant_id, email, password_hash, role, is_active)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.db.Exec(ctx, query, u.ID(), u.TenantID(), u.Email(), u.PasswordHash(), u.Role().String(), u.IsActive())
	if err != nil {
		return classifyPgErr("failed to create user", err)
	}
	return nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, tenantID uuid.UUID, email string) (*user.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE tenant_id = $1 AND email = $2 AND is_active`
	return r.findOne(ctx, query, tenantID, email)
}

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return r.findOne(ctx, query, id)
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	query := `UPDATE users SET last_login = $2, updated_at = now() WHERE id = $1`
	tag, err := r.db.Exec(ctx, query, id, at)
	if err != nil {
		return classifyPgErr("failed to update last login", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "user not found")
	}
	return nil
}

func (r *UserRepository) findOne(ctx context.Context, query string, args ...any) (*user.User, error) {
	row := r.db.QueryRow(ctx, query, args...)

	var (
		id, tenantID        uuid.UUID
		email, passwordHash string
		role                string
		lastLogin           *time.Time
		isActive            bool
		createdAt, updatedAt time.Time
	)
	err := row.Scan(&id, &tenantID, &email, &passwordHash, &role, &lastLogin, &isActive, &createdAt, &updatedAt)
	if err != nil {
		return nil, classifyPgErr("failed to get user", err)
	}
	return user.ReconstructUser(id, tenantID, email, passwordHash, user.Role(role), lastLogin, isActive, createdAt, updatedAt), nil
}
