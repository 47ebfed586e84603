// Package memory implements the service store interfaces with
// mutex-guarded maps. It backs unit tests and the DATABASE_URL=memory
// dev mode, and upholds the same invariants as the Postgres schema:
// edge uniqueness, like-set dedup and newest-first ordering.
package memory

import (
	"sort"
	"sync"
	"time"

	"socialsphere/internal/domain"
)

type edgeKey struct {
	follower string
	followee string
}

type core struct {
	mu       sync.Mutex
	users    map[string]domain.User
	creds    map[string]domain.Credential
	follows  map[edgeKey]domain.FollowEdge
	posts    map[string]domain.Post
	likes    map[string]map[string]struct{}
	comments map[string][]domain.Comment

	clock func() time.Time
}

// Store bundles the three store implementations over one shared state.
type Store struct {
	Users   *Users
	Follows *Follows
	Posts   *Posts
}

func New() *Store {
	c := &core{
		users:    make(map[string]domain.User),
		creds:    make(map[string]domain.Credential),
		follows:  make(map[edgeKey]domain.FollowEdge),
		posts:    make(map[string]domain.Post),
		likes:    make(map[string]map[string]struct{}),
		comments: make(map[string][]domain.Comment),
		clock:    time.Now,
	}
	return &Store{
		Users:   &Users{c},
		Follows: &Follows{c},
		Posts:   &Posts{c},
	}
}

func (c *core) summary(userID string) domain.UserSummary {
	u, ok := c.users[userID]
	if !ok {
		// Dangling ids degrade to an id-only summary.
		return domain.UserSummary{ID: userID}
	}
	return domain.UserSummary{
		ID:           u.ID,
		Name:         u.Name,
		ProfileImage: u.ProfileImage,
		Designation:  u.Designation,
	}
}

// newerFirst orders by creation time descending with id descending as
// the deterministic tie-break, matching the Postgres queries.
func newerFirst(aTime time.Time, aID string, bTime time.Time, bID string) bool {
	if !aTime.Equal(bTime) {
		return aTime.After(bTime)
	}
	return aID > bID
}

func sortCommentsNewestFirst(comments []domain.Comment) {
	sort.SliceStable(comments, func(i, j int) bool {
		return newerFirst(comments[i].CreatedAt, comments[i].ID, comments[j].CreatedAt, comments[j].ID)
	})
}
