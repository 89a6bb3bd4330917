package entity

import (
	"math"
	"time"
)

type PostStatus string

const (
	StatusDraft     PostStatus = "draft"
	StatusPublished PostStatus = "published"
)

func (s PostStatus) Valid() bool {
	return s == StatusDraft || s == StatusPublished
}

type Post struct {
	ID            string     `json:"id"`
	AuthorID      string     `json:"author_id"`
	Title         string     `json:"title"`
	Content       string     `json:"content"`
	ContentText   string     `json:"-"`
	CoverImage    string     `json:"cover_image"`
	Status        PostStatus `json:"status"`
	LikesCount    int        `json:"likes_count"`
	CommentsCount int        `json:"comments_count"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
	Author        *Author    `json:"author,omitempty"`
}

func (p *Post) IsPublished() bool {
	return p.Status == StatusPublished
}

// VisibleTo reports whether userID may read the post. Drafts are private
// to their author.
func (p *Post) VisibleTo(userID string) bool {
	return p.IsPublished() || (userID != "" && p.AuthorID == userID)
}

// SortField names the columns a listing may be ordered by.
type SortField string

const (
	SortCreatedAt     SortField = "createdAt"
	SortUpdatedAt     SortField = "updatedAt"
	SortTitle         SortField = "title"
	SortLikesCount    SortField = "likesCount"
	SortCommentsCount SortField = "commentsCount"
)

func (f SortField) Valid() bool {
	switch f {
	case SortCreatedAt, SortUpdatedAt, SortTitle, SortLikesCount, SortCommentsCount:
		return true
	}
	return false
}

// PostQuery selects a page of posts. Empty fields do not filter. An empty
// SortBy with a Search orders by relevance.
type PostQuery struct {
	AuthorID  string
	Status    PostStatus
	Search    string
	SortBy    SortField
	Ascending bool
	Page      int
	Limit     int
}

// Offset saturates at math.MaxInt instead of overflowing.
func (q PostQuery) Offset() int {
	if q.Page < 1 || q.Limit < 1 {
		return 0
	}
	if q.Page-1 > math.MaxInt/q.Limit {
		return math.MaxInt
	}
	return (q.Page - 1) * q.Limit
}

type AuthorStats struct {
	TotalBlogs    int64 `json:"totalBlogs"`
	TotalLikes    int64 `json:"totalLikes"`
	TotalComments int64 `json:"totalComments"`
	TotalViews    int64 `json:"totalViews"`
}
