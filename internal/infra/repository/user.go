package repository

import (
	"context"

	"coupon-api/internal/domain/user"
	"coupon-api/internal/infra"
	"coupon-api/internal/pkg/pgconv"
	"coupon-api/internal/usecase"
	"coupon-api/internal/usecase/readmodel"

	"github.com/jackc/pgx/v5/pgxpool"
)

type userRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) usecase.UserRepository {
	return &userRepository{pool: pool}
}

// FindByUsername returns the user projection plus the stored password
// hash; a missing user yields nil without an error.
func (r *userRepository) FindByUsername(ctx context.Context, username string) (*readmodel.UserRM, string, error) {
	const query = `
		SELECT id, username, password_hash, display_name, role
		FROM users
		WHERE username = $1`

	var (
		rm           readmodel.UserRM
		passwordHash string
	)
	err := r.pool.QueryRow(ctx, query, username).Scan(
		&rm.ID,
		&rm.Username,
		&passwordHash,
		&rm.DisplayName,
		&rm.Role,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, "", nil
		}
		return nil, "", infra.WrapRepoErr("failed to find user by username", err)
	}

	return &rm, passwordHash, nil
}

func (r *userRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM users WHERE username = $1)`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, username).Scan(&exists); err != nil {
		return false, infra.WrapRepoErr("failed to check username existence", err)
	}

	return exists, nil
}

func (r *userRepository) Create(ctx context.Context, u *user.User) (*readmodel.UserRM, error) {
	const query = `
		INSERT INTO users (id, username, password_hash, display_name, role)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, username, display_name, role`

	var rm readmodel.UserRM
	err := r.pool.QueryRow(ctx, query,
		u.ID(),
		u.Username().Value(),
		u.PasswordHash(),
		u.DisplayName(),
		u.Role().String(),
	).Scan(
		&rm.ID,
		&rm.Username,
		&rm.DisplayName,
		&rm.Role,
	)
	if err != nil {
		if pgconv.IsUniqueViolation(err) {
			return nil, infra.WrapRepoErr("username already taken", err, infra.KindDuplicateKey)
		}
		return nil, infra.WrapRepoErr("failed to create user", err)
	}

	return &rm, nil
}
