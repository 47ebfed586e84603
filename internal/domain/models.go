package domain

import "time"

// ============================================
// Domain Models
// ============================================

const (
	MaxPostTextLen    = 500
	MaxCommentTextLen = 300
)

type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	ProfileImage string    `json:"profile_image"`
	Designation  string    `json:"designation"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Credential is the auth side of a user record. It never leaves the
// identity store and never serializes.
type Credential struct {
	UserID         string    `json:"-"`
	HashedPassword string    `json:"-"`
	CreatedAt      time.Time `json:"-"`
	UpdatedAt      time.Time `json:"-"`
}

// FollowEdge is a directed, immutable fact: follower follows followee.
// The (FollowerID, FolloweeID) pair is unique at the storage layer.
type FollowEdge struct {
	FollowerID string    `json:"follower_id"`
	FolloweeID string    `json:"followee_id"`
	CreatedAt  time.Time `json:"created_at"`
}

type Post struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Text      string    `json:"text"`
	Image     string    `json:"image,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Comment struct {
	ID        string    `json:"id"`
	PostID    string    `json:"post_id"`
	UserID    string    `json:"user_id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// ============================================
// Projections
// ============================================

// UserSummary is the slice of a user embedded in posts, comments and
// follower lists. A dangling user id projects to a zero summary with
// only the id set, never an error.
type UserSummary struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	ProfileImage string `json:"profile_image"`
	Designation  string `json:"designation"`
}

type CommentView struct {
	Comment
	Author UserSummary `json:"author"`
}

type PostView struct {
	Post
	Author    UserSummary   `json:"author"`
	LikeCount int64         `json:"like_count"`
	Liked     bool          `json:"liked"`
	Comments  []CommentView `json:"comments"`
}

// Profile is a user plus graph-derived counts. Counts are computed from
// the follow edges on every read; they are never stored on the user row.
type Profile struct {
	User
	FollowerCount  int64 `json:"follower_count"`
	FollowingCount int64 `json:"following_count"`
	IsFollowing    bool  `json:"is_following"`
}

// LikeResult is what a like toggle reports back: the resulting count and
// whether the acting user is now a member of the like-set.
type LikeResult struct {
	PostID    string `json:"post_id"`
	LikeCount int64  `json:"like_count"`
	Liked     bool   `json:"liked"`
}

// ============================================
// Pagination
// ============================================

type Page struct {
	Cursor int64
	Count  int64
}

const (
	DefaultPageCount = 20
	MaxPageCount     = 100
)

// Normalize clamps a caller-supplied page to sane bounds.
func (p Page) Normalize() Page {
	if p.Count <= 0 {
		p.Count = DefaultPageCount
	}
	if p.Count > MaxPageCount {
		p.Count = MaxPageCount
	}
	if p.Cursor < 0 {
		p.Cursor = 0
	}
	return p
}

type Pagination struct {
	Count      int64  `json:"count"`
	Cursor     int64  `json:"cursor"`
	NextCursor *int64 `json:"next_cursor"`
}

// NewPagination builds the response-side pagination for a fetched page.
// NextCursor is nil when the page came back short, i.e. there is no
// further page under the current snapshot.
func NewPagination(page Page, fetched int) Pagination {
	pg := Pagination{Count: int64(fetched), Cursor: page.Cursor}
	if int64(fetched) == page.Count {
		next := page.Cursor + page.Count
		pg.NextCursor = &next
	}
	return pg
}

// ============================================
// Request/Response Models
// ============================================

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthResponse struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}

type UpdateProfileRequest struct {
	Name        *string `json:"name"`
	Designation *string `json:"designation"`
}

type CreatePostRequest struct {
	Text string `json:"text"`
}

type AddCommentRequest struct {
	Text string `json:"text"`
}

type FeedResponse struct {
	Posts      []PostView `json:"posts"`
	Pagination Pagination `json:"pagination"`
}

type UserListResponse struct {
	Users []UserSummary `json:"users"`
	Count int           `json:"count"`
}

type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
