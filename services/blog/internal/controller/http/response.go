package http

import (
	"strings"
	"time"

	"blog-platform/services/blog/internal/entity"
	"blog-platform/services/blog/internal/usecase"
)

const excerptLength = 150

type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Bio       string    `json:"bio"`
	Avatar    string    `json:"avatar"`
	CreatedAt time.Time `json:"createdAt"`
}

type AuthResponse struct {
	Token string        `json:"token"`
	User  *UserResponse `json:"user"`
}

type AuthorResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email,omitempty"`
	Avatar string `json:"avatar"`
	Bio    string `json:"bio,omitempty"`
}

type PostResponse struct {
	ID            string          `json:"id"`
	Title         string          `json:"title"`
	Content       string          `json:"content,omitempty"`
	Excerpt       string          `json:"excerpt"`
	CoverImage    string          `json:"coverImage"`
	Status        string          `json:"status"`
	LikesCount    int             `json:"likesCount"`
	CommentsCount int             `json:"commentsCount"`
	Author        *AuthorResponse `json:"author"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

type PostDetailResponse struct {
	PostResponse
	Comments []CommentResponse `json:"comments"`
	IsLiked  bool              `json:"isLiked"`
}

type CommentResponse struct {
	ID        string          `json:"id"`
	BlogID    string          `json:"blogId"`
	Content   string          `json:"content"`
	Author    *AuthorResponse `json:"author"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

type StatsResponse struct {
	TotalBlogs    int64 `json:"totalBlogs"`
	TotalLikes    int64 `json:"totalLikes"`
	TotalComments int64 `json:"totalComments"`
	TotalViews    int64 `json:"totalViews"`
}

func newUserResponse(u *entity.User) *UserResponse {
	return &UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Bio:       u.Bio,
		Avatar:    u.Avatar,
		CreatedAt: u.CreatedAt,
	}
}

// excerpt cuts plain text at a word boundary.
func excerpt(text string) string {
	runes := []rune(text)
	if len(runes) <= excerptLength {
		return text
	}
	cut := string(runes[:excerptLength])
	if i := strings.LastIndexByte(cut, ' '); i > 0 {
		cut = cut[:i]
	}
	return strings.TrimRight(cut, " ,.;:") + "..."
}

func newPostResponse(p *entity.Post, withContent bool) PostResponse {
	resp := PostResponse{
		ID:            p.ID,
		Title:         p.Title,
		Excerpt:       excerpt(p.ContentText),
		CoverImage:    p.CoverImage,
		Status:        string(p.Status),
		LikesCount:    p.LikesCount,
		CommentsCount: p.CommentsCount,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
	if withContent {
		resp.Content = p.Content
	}
	if p.Author != nil {
		resp.Author = &AuthorResponse{ID: p.Author.ID, Name: p.Author.Name, Email: p.Author.Email, Avatar: p.Author.Avatar}
		if withContent {
			resp.Author.Bio = p.Author.Bio
		}
	}
	return resp
}

func newPostList(posts []*entity.Post) []PostResponse {
	items := make([]PostResponse, 0, len(posts))
	for _, p := range posts {
		items = append(items, newPostResponse(p, false))
	}
	return items
}

func newPostDetail(d *usecase.PostDetail) PostDetailResponse {
	return PostDetailResponse{
		PostResponse: newPostResponse(d.Post, true),
		Comments:     newCommentList(d.Comments),
		IsLiked:      d.IsLiked,
	}
}

func newCommentResponse(c *entity.Comment) CommentResponse {
	resp := CommentResponse{
		ID:        c.ID,
		BlogID:    c.PostID,
		Content:   c.Content,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
	if c.Author != nil {
		resp.Author = &AuthorResponse{ID: c.Author.ID, Name: c.Author.Name, Avatar: c.Author.Avatar}
	}
	return resp
}

func newCommentList(comments []*entity.Comment) []CommentResponse {
	items := make([]CommentResponse, 0, len(comments))
	for _, c := range comments {
		items = append(items, newCommentResponse(c))
	}
	return items
}
