package service

import (
	"context"

	"socialsphere/internal/domain"
)

// Store interfaces are defined here, on the consumer side. The postgres
// implementations live in internal/repository, an in-memory pair in
// internal/repository/memory.

type UserStore interface {
	// Create persists a user and its credential as one unit. Returns
	// domain.ErrDuplicateEmail when the email is already registered;
	// uniqueness is enforced by the store, not by a prior lookup.
	Create(ctx context.Context, user *domain.User, hashedPassword string) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetCredential(ctx context.Context, userID string) (*domain.Credential, error)
	Exists(ctx context.Context, id string) (bool, error)
	UpdateProfile(ctx context.Context, id string, name, designation *string) (*domain.User, error)
	UpdateImage(ctx context.Context, id, imageURL string) (*domain.User, error)
}

type FollowStore interface {
	// Create inserts the edge. The (follower, followee) pair is unique at
	// the storage layer, so a race between identical follow calls yields
	// exactly one edge; the loser gets domain.ErrAlreadyFollowing.
	Create(ctx context.Context, followerID, followeeID string) error
	// Delete removes the edge, domain.ErrNotFollowing when absent.
	Delete(ctx context.Context, followerID, followeeID string) error
	Followers(ctx context.Context, userID string) ([]domain.UserSummary, error)
	Following(ctx context.Context, userID string) ([]domain.UserSummary, error)
	FollowingIDs(ctx context.Context, userID string) ([]string, error)
	// Exists is an indexed lookup, not an edge scan.
	Exists(ctx context.Context, followerID, followeeID string) (bool, error)
	Counts(ctx context.Context, userID string) (followers, following int64, err error)
}

type PostStore interface {
	Create(ctx context.Context, post *domain.Post) error
	GetByID(ctx context.Context, id string) (*domain.Post, error)
	// GetView projects one post with author, like count, viewer's like
	// membership and newest-first comments.
	GetView(ctx context.Context, viewerID, postID string) (*domain.PostView, error)
	Delete(ctx context.Context, id string) error
	// ListByAuthors returns posts owned by any of authorIDs, newest first
	// by creation time with id as the deterministic tie-break.
	ListByAuthors(ctx context.Context, viewerID string, authorIDs []string, page domain.Page) ([]domain.PostView, error)
	// ToggleLike flips the viewer's membership in the post's like-set as
	// one atomic read-modify-write on the post.
	ToggleLike(ctx context.Context, postID, userID string) (*domain.LikeResult, error)
	AddComment(ctx context.Context, comment *domain.Comment) error
	GetComment(ctx context.Context, postID, commentID string) (*domain.Comment, error)
	DeleteComment(ctx context.Context, postID, commentID string) error
}
