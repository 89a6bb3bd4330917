package persistent

import (
	"blog-platform/services/blog/internal/entity"
	"blog-platform/services/blog/internal/model"
)

func ToUserEntity(m *model.UserModel) *entity.User {
	if m == nil {
		return nil
	}

	return &entity.User{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Password:  m.Password,
		Bio:       m.Bio,
		Avatar:    m.Avatar,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func ToUserModel(e *entity.User) *model.UserModel {
	if e == nil {
		return nil
	}

	return &model.UserModel{
		ID:        e.ID,
		Name:      e.Name,
		Email:     e.Email,
		Password:  e.Password,
		Bio:       e.Bio,
		Avatar:    e.Avatar,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

// toAuthor projects a preloaded association. An unloaded one has no ID.
func toAuthor(m *model.UserModel) *entity.Author {
	if m == nil || m.ID == "" {
		return nil
	}
	return ToUserEntity(m).Author()
}

func ToPostEntity(m *model.PostModel) *entity.Post {
	if m == nil {
		return nil
	}

	return &entity.Post{
		ID:            m.ID,
		AuthorID:      m.AuthorID,
		Title:         m.Title,
		Content:       m.Content,
		ContentText:   m.ContentText,
		CoverImage:    m.CoverImage,
		Status:        entity.PostStatus(m.Status),
		LikesCount:    m.LikesCount,
		CommentsCount: m.CommentsCount,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
		Author:        toAuthor(&m.Author),
	}
}

// ToPostModel leaves the Author association empty so writes never touch
// the users table.
func ToPostModel(e *entity.Post) *model.PostModel {
	if e == nil {
		return nil
	}

	return &model.PostModel{
		ID:            e.ID,
		AuthorID:      e.AuthorID,
		Title:         e.Title,
		Content:       e.Content,
		ContentText:   e.ContentText,
		CoverImage:    e.CoverImage,
		Status:        string(e.Status),
		LikesCount:    e.LikesCount,
		CommentsCount: e.CommentsCount,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
}

func ToCommentEntity(m *model.CommentModel) *entity.Comment {
	if m == nil {
		return nil
	}

	return &entity.Comment{
		ID:        m.ID,
		PostID:    m.PostID,
		AuthorID:  m.AuthorID,
		Content:   m.Content,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
		Author:    toAuthor(&m.Author),
	}
}

func ToCommentModel(e *entity.Comment) *model.CommentModel {
	if e == nil {
		return nil
	}

	return &model.CommentModel{
		ID:        e.ID,
		PostID:    e.PostID,
		AuthorID:  e.AuthorID,
		Content:   e.Content,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}
