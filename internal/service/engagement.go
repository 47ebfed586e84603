package service

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"socialsphere/internal/domain"
)

// Engagement applies like and comment mutations to posts.
type Engagement struct {
	posts PostStore
}

func NewEngagement(posts PostStore) *Engagement {
	return &Engagement{posts: posts}
}

// ToggleLike flips userID's membership in the post's like-set and
// reports the resulting count and membership. The toggle is a single
// atomic read-modify-write on the post, so concurrent toggles from
// different users never lose updates and the set never holds duplicates.
func (s *Engagement) ToggleLike(ctx context.Context, postID, userID string) (*domain.LikeResult, error) {
	return s.posts.ToggleLike(ctx, postID, userID)
}

// AddComment appends a comment; comments read back newest first.
func (s *Engagement) AddComment(ctx context.Context, postID, authorID, text string) (*domain.Comment, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, domain.Validationf("comment text is required")
	}
	if utf8.RuneCountInString(text) > domain.MaxCommentTextLen {
		return nil, domain.Validationf("comment text exceeds %d characters", domain.MaxCommentTextLen)
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, domain.Dependencyf(err, "generate comment id")
	}

	comment := &domain.Comment{
		ID:     id.String(),
		PostID: postID,
		UserID: authorID,
		Text:   text,
	}
	if err := s.posts.AddComment(ctx, comment); err != nil {
		return nil, err
	}

	return comment, nil
}

// RemoveComment deletes exactly one comment. Only the comment's author
// or the post's owner may remove it.
func (s *Engagement) RemoveComment(ctx context.Context, postID, commentID, requesterID string) error {
	post, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		return err
	}

	comment, err := s.posts.GetComment(ctx, postID, commentID)
	if err != nil {
		return err
	}

	if comment.UserID != requesterID && post.UserID != requesterID {
		return domain.ErrForbidden
	}

	return s.posts.DeleteComment(ctx, postID, commentID)
}
