package service_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"socialsphere/internal/domain"
	"socialsphere/internal/repository/memory"
	"socialsphere/internal/service"
)

// fakeMedia records deletes so tests can assert the best-effort cleanup
// happened. failDelete simulates an unreachable media backend.
type fakeMedia struct {
	mu         sync.Mutex
	saved      int
	deleted    []string
	failDelete bool
}

func (m *fakeMedia) Save(ctx context.Context, data []byte, contentType string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saved++
	return fmt.Sprintf("/media/file-%d.png", m.saved), nil
}

func (m *fakeMedia) Delete(ctx context.Context, url string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failDelete {
		return domain.Dependencyf(fmt.Errorf("media backend down"), "delete %s", url)
	}
	m.deleted = append(m.deleted, url)
	return nil
}

type env struct {
	store      *memory.Store
	media      *fakeMedia
	users      *service.Users
	follows    *service.Follows
	posts      *service.Posts
	feed       *service.Feed
	engagement *service.Engagement
}

func newEnv(t *testing.T) *env {
	t.Helper()
	store := memory.New()
	m := &fakeMedia{}
	return &env{
		store:      store,
		media:      m,
		users:      service.NewUsers(store.Users, store.Follows),
		follows:    service.NewFollows(store.Users, store.Follows),
		posts:      service.NewPosts(store.Posts, m, zerolog.Nop()),
		feed:       service.NewFeed(store.Follows, store.Posts),
		engagement: service.NewEngagement(store.Posts),
	}
}

func (e *env) register(t *testing.T, name string) *domain.User {
	t.Helper()
	user, err := e.users.Register(context.Background(), domain.RegisterRequest{
		Name:     name,
		Email:    name + "@example.test",
		Password: "secret123",
	})
	require.NoError(t, err)
	return user
}

func (e *env) post(t *testing.T, ownerID, text string) *domain.Post {
	t.Helper()
	post, err := e.posts.Create(context.Background(), ownerID, text, "")
	require.NoError(t, err)
	return post
}
