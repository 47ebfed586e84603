package service

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"socialsphere/internal/domain"
	"socialsphere/internal/media"
)

// Posts owns post lifecycle: creation, retrieval and owner-only deletion.
type Posts struct {
	posts PostStore
	media media.Store
	log   zerolog.Logger
}

func NewPosts(posts PostStore, mediaStore media.Store, log zerolog.Logger) *Posts {
	return &Posts{posts: posts, media: mediaStore, log: log}
}

func (s *Posts) Create(ctx context.Context, ownerID, text, imageURL string) (*domain.Post, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, domain.Validationf("post text is required")
	}
	if utf8.RuneCountInString(text) > domain.MaxPostTextLen {
		return nil, domain.Validationf("post text exceeds %d characters", domain.MaxPostTextLen)
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, domain.Dependencyf(err, "generate post id")
	}

	post := &domain.Post{
		ID:     id.String(),
		UserID: ownerID,
		Text:   text,
		Image:  imageURL,
	}
	if err := s.posts.Create(ctx, post); err != nil {
		return nil, err
	}

	return post, nil
}

func (s *Posts) Get(ctx context.Context, viewerID, postID string) (*domain.PostView, error) {
	return s.posts.GetView(ctx, viewerID, postID)
}

// Delete removes a post owned by requesterID. The image, if any, is
// handed to the media collaborator afterwards; a media failure is logged
// and never surfaces, the post is already gone.
func (s *Posts) Delete(ctx context.Context, postID, requesterID string) error {
	post, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		return err
	}
	if post.UserID != requesterID {
		return domain.ErrForbidden
	}

	if err := s.posts.Delete(ctx, postID); err != nil {
		return err
	}

	if post.Image != "" {
		if err := s.media.Delete(ctx, post.Image); err != nil {
			s.log.Warn().Err(err).Str("post_id", postID).Str("image", post.Image).
				Msg("failed to delete post image")
		}
	}

	return nil
}
