package service

import (
	"context"

	"socialsphere/internal/domain"
)

// Feed composes time-ordered pages of posts. Pull model: the author set
// is resolved from the follow graph at read time, no fan-out on write.
type Feed struct {
	follows FollowStore
	posts   PostStore
}

func NewFeed(follows FollowStore, posts PostStore) *Feed {
	return &Feed{follows: follows, posts: posts}
}

// Home returns the user's feed: posts by everyone they follow plus their
// own, newest first. A user following nobody still sees their own posts.
func (s *Feed) Home(ctx context.Context, userID string, page domain.Page) (*domain.FeedResponse, error) {
	page = page.Normalize()

	authorIDs, err := s.follows.FollowingIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	authorIDs = append(authorIDs, userID)

	posts, err := s.posts.ListByAuthors(ctx, userID, authorIDs, page)
	if err != nil {
		return nil, err
	}

	return &domain.FeedResponse{
		Posts:      posts,
		Pagination: domain.NewPagination(page, len(posts)),
	}, nil
}

// Author returns one author's posts for their profile page. The follow
// graph is not consulted.
func (s *Feed) Author(ctx context.Context, viewerID, authorID string, page domain.Page) (*domain.FeedResponse, error) {
	page = page.Normalize()

	posts, err := s.posts.ListByAuthors(ctx, viewerID, []string{authorID}, page)
	if err != nil {
		return nil, err
	}

	return &domain.FeedResponse{
		Posts:      posts,
		Pagination: domain.NewPagination(page, len(posts)),
	}, nil
}
