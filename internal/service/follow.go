package service

import (
	"context"

	"socialsphere/internal/domain"
)

// Follows owns the follow graph: a normalized directed edge set that is
// the single source of social-graph truth.
type Follows struct {
	users   UserStore
	follows FollowStore
}

func NewFollows(users UserStore, follows FollowStore) *Follows {
	return &Follows{users: users, follows: follows}
}

// Follow creates the follower → followee edge. The uniqueness check and
// the insert are one atomic storage operation, so two identical
// concurrent calls leave exactly one edge behind.
func (s *Follows) Follow(ctx context.Context, followerID, followeeID string) error {
	if followerID == followeeID {
		return domain.ErrSelfFollow
	}

	exists, err := s.users.Exists(ctx, followeeID)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrUserNotFound
	}

	return s.follows.Create(ctx, followerID, followeeID)
}

// Unfollow deletes the edge. Calling it again yields the same
// ErrNotFollowing, never a crash or a second state change.
func (s *Follows) Unfollow(ctx context.Context, followerID, followeeID string) error {
	exists, err := s.users.Exists(ctx, followeeID)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrUserNotFound
	}

	return s.follows.Delete(ctx, followerID, followeeID)
}

func (s *Follows) Followers(ctx context.Context, userID string) ([]domain.UserSummary, error) {
	return s.follows.Followers(ctx, userID)
}

func (s *Follows) Following(ctx context.Context, userID string) ([]domain.UserSummary, error) {
	return s.follows.Following(ctx, userID)
}

func (s *Follows) IsFollowing(ctx context.Context, followerID, followeeID string) (bool, error) {
	return s.follows.Exists(ctx, followerID, followeeID)
}
