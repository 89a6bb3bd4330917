package client

import (
	"io"
	"time"
)

type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Bio       string    `json:"bio"`
	Avatar    string    `json:"avatar"`
	CreatedAt time.Time `json:"createdAt"`
}

type Author struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email,omitempty"`
	Avatar string `json:"avatar"`
	Bio    string `json:"bio,omitempty"`
}

type Post struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Content       string    `json:"content,omitempty"`
	Excerpt       string    `json:"excerpt"`
	CoverImage    string    `json:"coverImage"`
	Status        string    `json:"status"`
	LikesCount    int       `json:"likesCount"`
	CommentsCount int       `json:"commentsCount"`
	Author        *Author   `json:"author"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

type PostDetail struct {
	Post
	Comments []Comment `json:"comments"`
	IsLiked  bool      `json:"isLiked"`
}

type Comment struct {
	ID        string    `json:"id"`
	BlogID    string    `json:"blogId"`
	Content   string    `json:"content"`
	Author    *Author   `json:"author"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type LikeState struct {
	IsLiked    bool `json:"isLiked"`
	LikesCount int  `json:"likesCount"`
}

type Stats struct {
	TotalBlogs    int64 `json:"totalBlogs"`
	TotalLikes    int64 `json:"totalLikes"`
	TotalComments int64 `json:"totalComments"`
	TotalViews    int64 `json:"totalViews"`
}

type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int   `json:"pages"`
}

type PostList struct {
	Items      []Post     `json:"items"`
	Pagination Pagination `json:"pagination"`
}

// ListOptions are the query parameters of the public listing. Zero values
// are left to the server defaults.
type ListOptions struct {
	Page   int
	Limit  int
	Search string
	SortBy string
	Order  string
}

// Cover is an image file to send with a post.
type Cover struct {
	Name   string
	Reader io.Reader
}

type PostInput struct {
	Title   string
	Content string
	Status  string
	Cover   *Cover
}

// PostUpdate carries the fields to replace; nil fields are not sent.
type PostUpdate struct {
	Title   *string
	Content *string
	Status  *string
	Cover   *Cover
}

type ProfileUpdate struct {
	Name     *string `json:"name,omitempty"`
	Bio      *string `json:"bio,omitempty"`
	Avatar   *string `json:"avatar,omitempty"`
	Password *string `json:"password,omitempty"`
}
