package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"socialsphere/internal/domain"
)

// FollowRepository stores the normalized follow-edge set. The composite
// primary key on (follower_id, followee_id) makes edge creation atomic
// with its uniqueness check.
type FollowRepository struct {
	pool *pgxpool.Pool
}

func NewFollowRepository(pool *pgxpool.Pool) *FollowRepository {
	return &FollowRepository{pool: pool}
}

func (r *FollowRepository) Create(ctx context.Context, followerID, followeeID string) error {
	ct, err := r.pool.Exec(ctx,
		"INSERT INTO follows (follower_id, followee_id) VALUES ($1, $2) ON CONFLICT DO NOTHING",
		followerID, followeeID,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrUserNotFound
		}
		return domain.Dependencyf(err, "insert follow edge")
	}
	if ct.RowsAffected() == 0 {
		return domain.ErrAlreadyFollowing
	}
	return nil
}

func (r *FollowRepository) Delete(ctx context.Context, followerID, followeeID string) error {
	ct, err := r.pool.Exec(ctx,
		"DELETE FROM follows WHERE follower_id = $1 AND followee_id = $2",
		followerID, followeeID,
	)
	if err != nil {
		return domain.Dependencyf(err, "delete follow edge")
	}
	if ct.RowsAffected() == 0 {
		return domain.ErrNotFollowing
	}
	return nil
}

func (r *FollowRepository) Followers(ctx context.Context, userID string) ([]domain.UserSummary, error) {
	return r.querySummaries(ctx,
		`SELECT u.id, u.name, u.profile_image, u.designation
		 FROM users u
		 INNER JOIN follows f ON u.id = f.follower_id
		 WHERE f.followee_id = $1
		 ORDER BY f.created_at DESC`,
		userID)
}

func (r *FollowRepository) Following(ctx context.Context, userID string) ([]domain.UserSummary, error) {
	return r.querySummaries(ctx,
		`SELECT u.id, u.name, u.profile_image, u.designation
		 FROM users u
		 INNER JOIN follows f ON u.id = f.followee_id
		 WHERE f.follower_id = $1
		 ORDER BY f.created_at DESC`,
		userID)
}

func (r *FollowRepository) querySummaries(ctx context.Context, query, userID string) ([]domain.UserSummary, error) {
	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, domain.Dependencyf(err, "query follow edges")
	}
	defer rows.Close()

	var users []domain.UserSummary
	for rows.Next() {
		var user domain.UserSummary
		if err := rows.Scan(&user.ID, &user.Name, &user.ProfileImage, &user.Designation); err != nil {
			return nil, domain.Dependencyf(err, "scan user summary")
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.Dependencyf(err, "read follow edges")
	}

	return users, nil
}

func (r *FollowRepository) FollowingIDs(ctx context.Context, userID string) ([]string, error) {
	rows, err := r.pool.Query(ctx,
		"SELECT followee_id FROM follows WHERE follower_id = $1", userID)
	if err != nil {
		return nil, domain.Dependencyf(err, "query followees")
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, domain.Dependencyf(err, "scan followee id")
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.Dependencyf(err, "read followees")
	}

	return ids, nil
}

func (r *FollowRepository) Exists(ctx context.Context, followerID, followeeID string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		"SELECT EXISTS(SELECT 1 FROM follows WHERE follower_id = $1 AND followee_id = $2)",
		followerID, followeeID,
	).Scan(&exists)
	if err != nil {
		return false, domain.Dependencyf(err, "check follow edge")
	}
	return exists, nil
}

func (r *FollowRepository) Counts(ctx context.Context, userID string) (int64, int64, error) {
	var followers, following int64
	err := r.pool.QueryRow(ctx,
		`SELECT
		   (SELECT count(*) FROM follows WHERE followee_id = $1),
		   (SELECT count(*) FROM follows WHERE follower_id = $1)`,
		userID,
	).Scan(&followers, &following)
	if err != nil {
		return 0, 0, domain.Dependencyf(err, "count follow edges")
	}
	return followers, following, nil
}
