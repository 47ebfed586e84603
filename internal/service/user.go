package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"socialsphere/internal/domain"
)

const bcryptCost = 10

// Users is the identity service: registration, credential checks and
// profile reads with graph-derived counts.
type Users struct {
	users   UserStore
	follows FollowStore
}

func NewUsers(users UserStore, follows FollowStore) *Users {
	return &Users{users: users, follows: follows}
}

func (s *Users) Register(ctx context.Context, req domain.RegisterRequest) (*domain.User, error) {
	name := strings.TrimSpace(req.Name)
	email := strings.ToLower(strings.TrimSpace(req.Email))

	if name == "" {
		return nil, domain.Validationf("name is required")
	}
	if email == "" || !strings.Contains(email, "@") {
		return nil, domain.Validationf("a valid email is required")
	}
	if len(req.Password) < 6 {
		return nil, domain.Validationf("password must be at least 6 characters")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, domain.Dependencyf(err, "hash password")
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, domain.Dependencyf(err, "generate user id")
	}

	user := &domain.User{
		ID:    id.String(),
		Name:  name,
		Email: email,
	}
	if err := s.users.Create(ctx, user, string(hashed)); err != nil {
		return nil, err
	}

	return user, nil
}

// Login verifies the credential and returns the user. Unknown email and
// wrong password are indistinguishable to the caller.
func (s *Users) Login(ctx context.Context, req domain.LoginRequest) (*domain.User, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if domain.KindOf(err) == domain.KindNotFound {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	cred, err := s.users.GetCredential(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(cred.HashedPassword), []byte(req.Password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	return user, nil
}

// Profile projects a user together with counts derived from the follow
// graph and whether the viewer follows them. Counts are computed here on
// every read; nothing is cached on the user record.
func (s *Users) Profile(ctx context.Context, viewerID, userID string) (*domain.Profile, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	followers, following, err := s.follows.Counts(ctx, userID)
	if err != nil {
		return nil, err
	}

	profile := &domain.Profile{
		User:           *user,
		FollowerCount:  followers,
		FollowingCount: following,
	}

	if viewerID != "" && viewerID != userID {
		isFollowing, err := s.follows.Exists(ctx, viewerID, userID)
		if err != nil {
			return nil, err
		}
		profile.IsFollowing = isFollowing
	}

	return profile, nil
}

func (s *Users) UpdateProfile(ctx context.Context, userID string, req domain.UpdateProfileRequest) (*domain.User, error) {
	if req.Name != nil {
		trimmed := strings.TrimSpace(*req.Name)
		if trimmed == "" {
			return nil, domain.Validationf("name cannot be empty")
		}
		req.Name = &trimmed
	}
	return s.users.UpdateProfile(ctx, userID, req.Name, req.Designation)
}

// UpdateImage swaps the profile image reference and returns the previous
// one so the caller can hand it to the media collaborator for deletion.
func (s *Users) UpdateImage(ctx context.Context, userID, imageURL string) (*domain.User, string, error) {
	current, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, "", err
	}

	updated, err := s.users.UpdateImage(ctx, userID, imageURL)
	if err != nil {
		return nil, "", err
	}

	return updated, current.ProfileImage, nil
}
