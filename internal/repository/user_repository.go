package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"socialsphere/internal/domain"
)

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User, hashedPassword string) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return domain.Dependencyf(err, "begin transaction")
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx,
		`INSERT INTO users (id, name, email) VALUES ($1, $2, $3)
		 RETURNING created_at, updated_at`,
		user.ID, user.Name, user.Email,
	).Scan(&user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateEmail
		}
		return domain.Dependencyf(err, "insert user")
	}

	_, err = tx.Exec(ctx,
		"INSERT INTO user_auth (user_id, hashed_password) VALUES ($1, $2)",
		user.ID, hashedPassword,
	)
	if err != nil {
		return domain.Dependencyf(err, "insert user credential")
	}

	if err := tx.Commit(ctx); err != nil {
		return domain.Dependencyf(err, "commit transaction")
	}

	return nil
}

const userColumns = "id, name, email, profile_image, designation, created_at, updated_at"

func scanUser(row pgx.Row) (*domain.User, error) {
	var user domain.User
	err := row.Scan(&user.ID, &user.Name, &user.Email, &user.ProfileImage,
		&user.Designation, &user.CreatedAt, &user.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrUserNotFound
	} else if err != nil {
		return nil, domain.Dependencyf(err, "scan user")
	}
	return &user, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return scanUser(r.pool.QueryRow(ctx,
		"SELECT "+userColumns+" FROM users WHERE id = $1", id))
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return scanUser(r.pool.QueryRow(ctx,
		"SELECT "+userColumns+" FROM users WHERE email = lower($1)", email))
}

func (r *UserRepository) GetCredential(ctx context.Context, userID string) (*domain.Credential, error) {
	var cred domain.Credential
	err := r.pool.QueryRow(ctx,
		"SELECT user_id, hashed_password, created_at, updated_at FROM user_auth WHERE user_id = $1",
		userID,
	).Scan(&cred.UserID, &cred.HashedPassword, &cred.CreatedAt, &cred.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrUserNotFound
	} else if err != nil {
		return nil, domain.Dependencyf(err, "scan credential")
	}
	return &cred, nil
}

func (r *UserRepository) Exists(ctx context.Context, id string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, "SELECT EXISTS(SELECT 1 FROM users WHERE id = $1)", id).Scan(&exists)
	if err != nil {
		return false, domain.Dependencyf(err, "check user exists")
	}
	return exists, nil
}

func (r *UserRepository) UpdateProfile(ctx context.Context, id string, name, designation *string) (*domain.User, error) {
	return scanUser(r.pool.QueryRow(ctx,
		`UPDATE users
		 SET name = COALESCE($2, name),
		     designation = COALESCE($3, designation),
		     updated_at = now()
		 WHERE id = $1
		 RETURNING `+userColumns,
		id, name, designation))
}

func (r *UserRepository) UpdateImage(ctx context.Context, id, imageURL string) (*domain.User, error) {
	return scanUser(r.pool.QueryRow(ctx,
		`UPDATE users SET profile_image = $2, updated_at = now()
		 WHERE id = $1
		 RETURNING `+userColumns,
		id, imageURL))
}
