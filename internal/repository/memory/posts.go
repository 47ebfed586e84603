package memory

import (
	"context"
	"sort"

	"socialsphere/internal/domain"
)

type Posts struct {
	c *core
}

func (s *Posts) Create(ctx context.Context, post *domain.Post) error {
	s.c.mu.Lock()
	defer s.c.mu.Unlock()

	if _, ok := s.c.users[post.UserID]; !ok {
		return domain.ErrUserNotFound
	}

	now := s.c.clock()
	post.CreatedAt = now
	post.UpdatedAt = now
	s.c.posts[post.ID] = *post
	return nil
}

func (s *Posts) GetByID(ctx context.Context, id string) (*domain.Post, error) {
	s.c.mu.Lock()
	defer s.c.mu.Unlock()

	post, ok := s.c.posts[id]
	if !ok {
		return nil, domain.ErrPostNotFound
	}
	return &post, nil
}

func (s *Posts) Delete(ctx context.Context, id string) error {
	s.c.mu.Lock()
	defer s.c.mu.Unlock()

	if _, ok := s.c.posts[id]; !ok {
		return domain.ErrPostNotFound
	}
	delete(s.c.posts, id)
	delete(s.c.likes, id)
	delete(s.c.comments, id)
	return nil
}

// view must be called with the lock held.
func (s *Posts) view(viewerID string, post domain.Post) domain.PostView {
	pv := domain.PostView{
		Post:     post,
		Author:   s.c.summary(post.UserID),
		Comments: []domain.CommentView{},
	}

	likes := s.c.likes[post.ID]
	pv.LikeCount = int64(len(likes))
	_, pv.Liked = likes[viewerID]

	comments := make([]domain.Comment, len(s.c.comments[post.ID]))
	copy(comments, s.c.comments[post.ID])
	sortCommentsNewestFirst(comments)
	for _, c := range comments {
		pv.Comments = append(pv.Comments, domain.CommentView{
			Comment: c,
			Author:  s.c.summary(c.UserID),
		})
	}

	return pv
}

func (s *Posts) GetView(ctx context.Context, viewerID, postID string) (*domain.PostView, error) {
	s.c.mu.Lock()
	defer s.c.mu.Unlock()

	post, ok := s.c.posts[postID]
	if !ok {
		return nil, domain.ErrPostNotFound
	}
	pv := s.view(viewerID, post)
	return &pv, nil
}

func (s *Posts) ListByAuthors(ctx context.Context, viewerID string, authorIDs []string, page domain.Page) ([]domain.PostView, error) {
	s.c.mu.Lock()
	defer s.c.mu.Unlock()

	authors := make(map[string]struct{}, len(authorIDs))
	for _, id := range authorIDs {
		authors[id] = struct{}{}
	}

	var posts []domain.Post
	for _, p := range s.c.posts {
		if _, ok := authors[p.UserID]; ok {
			posts = append(posts, p)
		}
	}
	sort.Slice(posts, func(i, j int) bool {
		return newerFirst(posts[i].CreatedAt, posts[i].ID, posts[j].CreatedAt, posts[j].ID)
	})

	views := []domain.PostView{}
	for i := page.Cursor; i < int64(len(posts)) && int64(len(views)) < page.Count; i++ {
		views = append(views, s.view(viewerID, posts[i]))
	}
	return views, nil
}

func (s *Posts) ToggleLike(ctx context.Context, postID, userID string) (*domain.LikeResult, error) {
	s.c.mu.Lock()
	defer s.c.mu.Unlock()

	if _, ok := s.c.posts[postID]; !ok {
		return nil, domain.ErrPostNotFound
	}

	likes := s.c.likes[postID]
	if likes == nil {
		likes = make(map[string]struct{})
		s.c.likes[postID] = likes
	}

	result := &domain.LikeResult{PostID: postID}
	if _, ok := likes[userID]; ok {
		delete(likes, userID)
	} else {
		likes[userID] = struct{}{}
		result.Liked = true
	}
	result.LikeCount = int64(len(likes))
	return result, nil
}

func (s *Posts) AddComment(ctx context.Context, comment *domain.Comment) error {
	s.c.mu.Lock()
	defer s.c.mu.Unlock()

	if _, ok := s.c.posts[comment.PostID]; !ok {
		return domain.ErrPostNotFound
	}

	comment.CreatedAt = s.c.clock()
	s.c.comments[comment.PostID] = append(s.c.comments[comment.PostID], *comment)
	return nil
}

func (s *Posts) GetComment(ctx context.Context, postID, commentID string) (*domain.Comment, error) {
	s.c.mu.Lock()
	defer s.c.mu.Unlock()

	for _, c := range s.c.comments[postID] {
		if c.ID == commentID {
			comment := c
			return &comment, nil
		}
	}
	return nil, domain.ErrCommentNotFound
}

func (s *Posts) DeleteComment(ctx context.Context, postID, commentID string) error {
	s.c.mu.Lock()
	defer s.c.mu.Unlock()

	comments := s.c.comments[postID]
	for i, c := range comments {
		if c.ID == commentID {
			s.c.comments[postID] = append(comments[:i], comments[i+1:]...)
			return nil
		}
	}
	return domain.ErrCommentNotFound
}
