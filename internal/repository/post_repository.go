package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"socialsphere/internal/domain"
)

type PostRepository struct {
	pool *pgxpool.Pool
}

func NewPostRepository(pool *pgxpool.Pool) *PostRepository {
	return &PostRepository{pool: pool}
}

func (r *PostRepository) Create(ctx context.Context, post *domain.Post) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO posts (id, user_id, text, image) VALUES ($1, $2, $3, $4)
		 RETURNING created_at, updated_at`,
		post.ID, post.UserID, post.Text, post.Image,
	).Scan(&post.CreatedAt, &post.UpdatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrUserNotFound
		}
		return domain.Dependencyf(err, "insert post")
	}
	return nil
}

func (r *PostRepository) GetByID(ctx context.Context, id string) (*domain.Post, error) {
	var post domain.Post
	err := r.pool.QueryRow(ctx,
		"SELECT id, user_id, text, image, created_at, updated_at FROM posts WHERE id = $1",
		id,
	).Scan(&post.ID, &post.UserID, &post.Text, &post.Image, &post.CreatedAt, &post.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrPostNotFound
	} else if err != nil {
		return nil, domain.Dependencyf(err, "scan post")
	}
	return &post, nil
}

// Delete removes the post; likes and comments go with it via cascade.
func (r *PostRepository) Delete(ctx context.Context, id string) error {
	ct, err := r.pool.Exec(ctx, "DELETE FROM posts WHERE id = $1", id)
	if err != nil {
		return domain.Dependencyf(err, "delete post")
	}
	if ct.RowsAffected() == 0 {
		return domain.ErrPostNotFound
	}
	return nil
}

// postViewQuery projects a post with its author, like count and whether
// the viewer ($2) is in the like-set. The author join is LEFT so a
// dangling user id degrades to an id-only summary instead of dropping
// the post.
const postViewQuery = `
	SELECT
		p.id, p.user_id, p.text, p.image, p.created_at, p.updated_at,
		COALESCE(u.name, ''), COALESCE(u.profile_image, ''), COALESCE(u.designation, ''),
		(SELECT count(*) FROM post_likes pl WHERE pl.post_id = p.id),
		EXISTS(SELECT 1 FROM post_likes pl WHERE pl.post_id = p.id AND pl.user_id = $2)
	FROM posts p
	LEFT JOIN users u ON u.id = p.user_id
`

func scanPostView(rows pgx.Rows) (domain.PostView, error) {
	var pv domain.PostView
	err := rows.Scan(
		&pv.ID, &pv.UserID, &pv.Text, &pv.Image, &pv.CreatedAt, &pv.UpdatedAt,
		&pv.Author.Name, &pv.Author.ProfileImage, &pv.Author.Designation,
		&pv.LikeCount, &pv.Liked,
	)
	pv.Author.ID = pv.UserID
	return pv, err
}

func (r *PostRepository) GetView(ctx context.Context, viewerID, postID string) (*domain.PostView, error) {
	rows, err := r.pool.Query(ctx, postViewQuery+" WHERE p.id = $1", postID, viewerID)
	if err != nil {
		return nil, domain.Dependencyf(err, "query post")
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, domain.Dependencyf(err, "read post")
		}
		return nil, domain.ErrPostNotFound
	}
	pv, err := scanPostView(rows)
	if err != nil {
		return nil, domain.Dependencyf(err, "scan post")
	}
	rows.Close()

	if err := r.attachComments(ctx, []*domain.PostView{&pv}); err != nil {
		return nil, err
	}
	return &pv, nil
}

func (r *PostRepository) ListByAuthors(ctx context.Context, viewerID string, authorIDs []string, page domain.Page) ([]domain.PostView, error) {
	rows, err := r.pool.Query(ctx,
		postViewQuery+`
		WHERE p.user_id = ANY($1)
		ORDER BY p.created_at DESC, p.id DESC
		LIMIT $3 OFFSET $4`,
		authorIDs, viewerID, page.Count, page.Cursor,
	)
	if err != nil {
		return nil, domain.Dependencyf(err, "query posts")
	}
	defer rows.Close()

	views := []domain.PostView{}
	for rows.Next() {
		pv, err := scanPostView(rows)
		if err != nil {
			return nil, domain.Dependencyf(err, "scan post")
		}
		views = append(views, pv)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.Dependencyf(err, "read posts")
	}
	rows.Close()

	refs := make([]*domain.PostView, len(views))
	for i := range views {
		refs[i] = &views[i]
	}
	if err := r.attachComments(ctx, refs); err != nil {
		return nil, err
	}

	return views, nil
}

// attachComments loads the comments for a page of posts in one query and
// distributes them, newest first.
func (r *PostRepository) attachComments(ctx context.Context, posts []*domain.PostView) error {
	if len(posts) == 0 {
		return nil
	}

	byID := make(map[string]*domain.PostView, len(posts))
	ids := make([]string, 0, len(posts))
	for _, p := range posts {
		p.Comments = []domain.CommentView{}
		byID[p.ID] = p
		ids = append(ids, p.ID)
	}

	rows, err := r.pool.Query(ctx,
		`SELECT c.id, c.post_id, c.user_id, c.text, c.created_at,
		        COALESCE(u.name, ''), COALESCE(u.profile_image, ''), COALESCE(u.designation, '')
		 FROM comments c
		 LEFT JOIN users u ON u.id = c.user_id
		 WHERE c.post_id = ANY($1)
		 ORDER BY c.created_at DESC, c.id DESC`,
		ids,
	)
	if err != nil {
		return domain.Dependencyf(err, "query comments")
	}
	defer rows.Close()

	for rows.Next() {
		var cv domain.CommentView
		err := rows.Scan(&cv.ID, &cv.PostID, &cv.UserID, &cv.Text, &cv.CreatedAt,
			&cv.Author.Name, &cv.Author.ProfileImage, &cv.Author.Designation)
		if err != nil {
			return domain.Dependencyf(err, "scan comment")
		}
		cv.Author.ID = cv.UserID
		if p, ok := byID[cv.PostID]; ok {
			p.Comments = append(p.Comments, cv)
		}
	}
	if err := rows.Err(); err != nil {
		return domain.Dependencyf(err, "read comments")
	}

	return nil
}

// ToggleLike flips the user's like inside one transaction: delete first,
// insert when nothing was deleted. The primary key on (post_id, user_id)
// keeps the set duplicate-free even if identical toggles race.
func (r *PostRepository) ToggleLike(ctx context.Context, postID, userID string) (*domain.LikeResult, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, domain.Dependencyf(err, "begin transaction")
	}
	defer tx.Rollback(ctx)

	var exists bool
	if err := tx.QueryRow(ctx, "SELECT EXISTS(SELECT 1 FROM posts WHERE id = $1)", postID).Scan(&exists); err != nil {
		return nil, domain.Dependencyf(err, "check post exists")
	}
	if !exists {
		return nil, domain.ErrPostNotFound
	}

	ct, err := tx.Exec(ctx,
		"DELETE FROM post_likes WHERE post_id = $1 AND user_id = $2", postID, userID)
	if err != nil {
		return nil, domain.Dependencyf(err, "remove like")
	}

	result := &domain.LikeResult{PostID: postID}
	if ct.RowsAffected() == 0 {
		_, err = tx.Exec(ctx,
			"INSERT INTO post_likes (post_id, user_id) VALUES ($1, $2) ON CONFLICT DO NOTHING",
			postID, userID)
		if err != nil {
			if isForeignKeyViolation(err) {
				return nil, domain.ErrPostNotFound
			}
			return nil, domain.Dependencyf(err, "add like")
		}
		result.Liked = true
	}

	err = tx.QueryRow(ctx,
		"SELECT count(*) FROM post_likes WHERE post_id = $1", postID,
	).Scan(&result.LikeCount)
	if err != nil {
		return nil, domain.Dependencyf(err, "count likes")
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, domain.Dependencyf(err, "commit transaction")
	}

	return result, nil
}

func (r *PostRepository) AddComment(ctx context.Context, comment *domain.Comment) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO comments (id, post_id, user_id, text) VALUES ($1, $2, $3, $4)
		 RETURNING created_at`,
		comment.ID, comment.PostID, comment.UserID, comment.Text,
	).Scan(&comment.CreatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrPostNotFound
		}
		return domain.Dependencyf(err, "insert comment")
	}
	return nil
}

func (r *PostRepository) GetComment(ctx context.Context, postID, commentID string) (*domain.Comment, error) {
	var c domain.Comment
	err := r.pool.QueryRow(ctx,
		"SELECT id, post_id, user_id, text, created_at FROM comments WHERE id = $1 AND post_id = $2",
		commentID, postID,
	).Scan(&c.ID, &c.PostID, &c.UserID, &c.Text, &c.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrCommentNotFound
	} else if err != nil {
		return nil, domain.Dependencyf(err, "scan comment")
	}
	return &c, nil
}

func (r *PostRepository) DeleteComment(ctx context.Context, postID, commentID string) error {
	ct, err := r.pool.Exec(ctx,
		"DELETE FROM comments WHERE id = $1 AND post_id = $2", commentID, postID)
	if err != nil {
		return domain.Dependencyf(err, "delete comment")
	}
	if ct.RowsAffected() == 0 {
		return domain.ErrCommentNotFound
	}
	return nil
}
