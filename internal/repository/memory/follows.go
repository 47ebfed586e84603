package memory

import (
	"context"
	"sort"

	"socialsphere/internal/domain"
)

type Follows struct {
	c *core
}

// Create checks and inserts under one lock, so concurrent identical
// follow calls leave exactly one edge behind.
func (s *Follows) Create(ctx context.Context, followerID, followeeID string) error {
	s.c.mu.Lock()
	defer s.c.mu.Unlock()

	if _, ok := s.c.users[followerID]; !ok {
		return domain.ErrUserNotFound
	}
	if _, ok := s.c.users[followeeID]; !ok {
		return domain.ErrUserNotFound
	}

	key := edgeKey{followerID, followeeID}
	if _, ok := s.c.follows[key]; ok {
		return domain.ErrAlreadyFollowing
	}

	s.c.follows[key] = domain.FollowEdge{
		FollowerID: followerID,
		FolloweeID: followeeID,
		CreatedAt:  s.c.clock(),
	}
	return nil
}

func (s *Follows) Delete(ctx context.Context, followerID, followeeID string) error {
	s.c.mu.Lock()
	defer s.c.mu.Unlock()

	key := edgeKey{followerID, followeeID}
	if _, ok := s.c.follows[key]; !ok {
		return domain.ErrNotFollowing
	}
	delete(s.c.follows, key)
	return nil
}

func (s *Follows) Followers(ctx context.Context, userID string) ([]domain.UserSummary, error) {
	return s.edgeSummaries(userID, false), nil
}

func (s *Follows) Following(ctx context.Context, userID string) ([]domain.UserSummary, error) {
	return s.edgeSummaries(userID, true), nil
}

func (s *Follows) edgeSummaries(userID string, following bool) []domain.UserSummary {
	s.c.mu.Lock()
	defer s.c.mu.Unlock()

	var edges []domain.FollowEdge
	for _, e := range s.c.follows {
		if following && e.FollowerID == userID {
			edges = append(edges, e)
		}
		if !following && e.FolloweeID == userID {
			edges = append(edges, e)
		}
	}
	sort.Slice(edges, func(i, j int) bool {
		return newerFirst(edges[i].CreatedAt, edges[i].FollowerID+edges[i].FolloweeID,
			edges[j].CreatedAt, edges[j].FollowerID+edges[j].FolloweeID)
	})

	var users []domain.UserSummary
	for _, e := range edges {
		id := e.FollowerID
		if following {
			id = e.FolloweeID
		}
		if _, ok := s.c.users[id]; !ok {
			continue
		}
		users = append(users, s.c.summary(id))
	}
	return users
}

func (s *Follows) FollowingIDs(ctx context.Context, userID string) ([]string, error) {
	s.c.mu.Lock()
	defer s.c.mu.Unlock()

	var ids []string
	for key := range s.c.follows {
		if key.follower == userID {
			ids = append(ids, key.followee)
		}
	}
	return ids, nil
}

func (s *Follows) Exists(ctx context.Context, followerID, followeeID string) (bool, error) {
	s.c.mu.Lock()
	defer s.c.mu.Unlock()

	_, ok := s.c.follows[edgeKey{followerID, followeeID}]
	return ok, nil
}

func (s *Follows) Counts(ctx context.Context, userID string) (int64, int64, error) {
	s.c.mu.Lock()
	defer s.c.mu.Unlock()

	var followers, following int64
	for key := range s.c.follows {
		if key.followee == userID {
			followers++
		}
		if key.follower == userID {
			following++
		}
	}
	return followers, following, nil
}
