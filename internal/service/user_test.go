package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"socialsphere/internal/domain"
)

func TestRegisterValidation(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)

	cases := []struct {
		name string
		req  domain.RegisterRequest
	}{
		{"empty name", domain.RegisterRequest{Email: "a@example.test", Password: "secret123"}},
		{"blank name", domain.RegisterRequest{Name: "   ", Email: "a@example.test", Password: "secret123"}},
		{"empty email", domain.RegisterRequest{Name: "a", Password: "secret123"}},
		{"malformed email", domain.RegisterRequest{Name: "a", Email: "not-an-email", Password: "secret123"}},
		{"short password", domain.RegisterRequest{Name: "a", Email: "a@example.test", Password: "12345"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := e.users.Register(ctx, tc.req)
			require.Error(t, err)
			assert.Equal(t, domain.KindValidation, domain.KindOf(err))
		})
	}
}

func TestRegisterNormalizesEmail(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)

	user, err := e.users.Register(ctx, domain.RegisterRequest{
		Name: "Alice", Email: "  Alice@Example.Test ", Password: "secret123",
	})
	require.NoError(t, err)
	assert.Equal(t, "alice@example.test", user.Email)
	assert.NotEmpty(t, user.ID)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	e.register(t, "alice")

	_, err := e.users.Register(ctx, domain.RegisterRequest{
		Name: "Other Alice", Email: "ALICE@example.test", Password: "secret123",
	})
	require.ErrorIs(t, err, domain.ErrDuplicateEmail)
	assert.Equal(t, domain.KindConflict, domain.KindOf(err))
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	registered := e.register(t, "alice")

	user, err := e.users.Login(ctx, domain.LoginRequest{Email: "alice@example.test", Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)

	// Unknown email and wrong password fail identically.
	_, err = e.users.Login(ctx, domain.LoginRequest{Email: "nobody@example.test", Password: "secret123"})
	require.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = e.users.Login(ctx, domain.LoginRequest{Email: "alice@example.test", Password: "wrong-password"})
	require.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestProfileDerivedCounts(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	a := e.register(t, "alice")
	b := e.register(t, "bob")
	c := e.register(t, "carol")

	require.NoError(t, e.follows.Follow(ctx, b.ID, a.ID))
	require.NoError(t, e.follows.Follow(ctx, c.ID, a.ID))
	require.NoError(t, e.follows.Follow(ctx, a.ID, b.ID))

	profile, err := e.users.Profile(ctx, b.ID, a.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), profile.FollowerCount)
	assert.Equal(t, int64(1), profile.FollowingCount)
	assert.True(t, profile.IsFollowing)

	// Counts track the graph, nothing is cached.
	require.NoError(t, e.follows.Unfollow(ctx, c.ID, a.ID))
	profile, err = e.users.Profile(ctx, c.ID, a.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), profile.FollowerCount)
	assert.False(t, profile.IsFollowing)
}

func TestProfileUnknownUser(t *testing.T) {
	e := newEnv(t)
	a := e.register(t, "alice")

	_, err := e.users.Profile(context.Background(), a.ID, "no-such-user")
	require.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestUpdateProfile(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	a := e.register(t, "alice")

	name := "Alice Cooper"
	designation := "Singer"
	user, err := e.users.UpdateProfile(ctx, a.ID, domain.UpdateProfileRequest{
		Name: &name, Designation: &designation,
	})
	require.NoError(t, err)
	assert.Equal(t, "Alice Cooper", user.Name)
	assert.Equal(t, "Singer", user.Designation)

	// Partial update leaves the other field alone.
	bio := "Still a singer"
	user, err = e.users.UpdateProfile(ctx, a.ID, domain.UpdateProfileRequest{Designation: &bio})
	require.NoError(t, err)
	assert.Equal(t, "Alice Cooper", user.Name)
	assert.Equal(t, "Still a singer", user.Designation)

	empty := " "
	_, err = e.users.UpdateProfile(ctx, a.ID, domain.UpdateProfileRequest{Name: &empty})
	require.Error(t, err)
	assert.Equal(t, domain.KindValidation, domain.KindOf(err))
}

func TestUpdateImageReturnsPrevious(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	a := e.register(t, "alice")

	user, previous, err := e.users.UpdateImage(ctx, a.ID, "/media/one.png")
	require.NoError(t, err)
	assert.Empty(t, previous)
	assert.Equal(t, "/media/one.png", user.ProfileImage)

	user, previous, err = e.users.UpdateImage(ctx, a.ID, "/media/two.png")
	require.NoError(t, err)
	assert.Equal(t, "/media/one.png", previous)
	assert.Equal(t, "/media/two.png", user.ProfileImage)
}
