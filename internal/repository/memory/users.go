package memory

import (
	"context"
	"strings"

	"socialsphere/internal/domain"
)

type Users struct {
	c *core
}

func (s *Users) Create(ctx context.Context, user *domain.User, hashedPassword string) error {
	s.c.mu.Lock()
	defer s.c.mu.Unlock()

	email := strings.ToLower(user.Email)
	for _, existing := range s.c.users {
		if strings.ToLower(existing.Email) == email {
			return domain.ErrDuplicateEmail
		}
	}

	now := s.c.clock()
	user.CreatedAt = now
	user.UpdatedAt = now
	s.c.users[user.ID] = *user
	s.c.creds[user.ID] = domain.Credential{
		UserID:         user.ID,
		HashedPassword: hashedPassword,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	return nil
}

func (s *Users) GetByID(ctx context.Context, id string) (*domain.User, error) {
	s.c.mu.Lock()
	defer s.c.mu.Unlock()

	user, ok := s.c.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return &user, nil
}

func (s *Users) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	s.c.mu.Lock()
	defer s.c.mu.Unlock()

	email = strings.ToLower(email)
	for _, user := range s.c.users {
		if strings.ToLower(user.Email) == email {
			u := user
			return &u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (s *Users) GetCredential(ctx context.Context, userID string) (*domain.Credential, error) {
	s.c.mu.Lock()
	defer s.c.mu.Unlock()

	cred, ok := s.c.creds[userID]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return &cred, nil
}

func (s *Users) Exists(ctx context.Context, id string) (bool, error) {
	s.c.mu.Lock()
	defer s.c.mu.Unlock()

	_, ok := s.c.users[id]
	return ok, nil
}

func (s *Users) UpdateProfile(ctx context.Context, id string, name, designation *string) (*domain.User, error) {
	s.c.mu.Lock()
	defer s.c.mu.Unlock()

	user, ok := s.c.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	if name != nil {
		user.Name = *name
	}
	if designation != nil {
		user.Designation = *designation
	}
	user.UpdatedAt = s.c.clock()
	s.c.users[id] = user
	return &user, nil
}

func (s *Users) UpdateImage(ctx context.Context, id, imageURL string) (*domain.User, error) {
	s.c.mu.Lock()
	defer s.c.mu.Unlock()

	user, ok := s.c.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	user.ProfileImage = imageURL
	user.UpdatedAt = s.c.clock()
	s.c.users[id] = user
	return &user, nil
}
