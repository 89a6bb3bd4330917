package persistent

import (
	"context"
	"errors"
	"time"

	"blog-platform/services/blog/internal/entity"
	"blog-platform/services/blog/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CommentRepository interface {
	ListByPost(ctx context.Context, postID string) ([]*entity.Comment, error)
	GetByID(ctx context.Context, id string) (*entity.Comment, error)
	// Create inserts the comment and refreshes the post's comment count in
	// the same transaction. A missing post yields ErrNotFound.
	Create(ctx context.Context, comment *entity.Comment) error
	Update(ctx context.Context, comment *entity.Comment) error
	// Delete removes the comment and refreshes the post's comment count.
	Delete(ctx context.Context, comment *entity.Comment) error
}

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func commentAuthor(db *gorm.DB) *gorm.DB {
	return db.Select("id", "name", "avatar")
}

func refreshCommentsCount(tx *gorm.DB, postID string) error {
	return tx.Model(&model.PostModel{}).Where("id = ?", postID).
		UpdateColumn("comments_count", gorm.Expr("(SELECT COUNT(*) FROM comments WHERE post_id = ?)", postID)).Error
}

func (r *commentRepository) ListByPost(ctx context.Context, postID string) ([]*entity.Comment, error) {
	var commentModels []model.CommentModel
	if err := r.db.WithContext(ctx).
		Preload("Author", commentAuthor).
		Where("post_id = ?", postID).
		Order("created_at DESC").
		Find(&commentModels).Error; err != nil {
		return nil, err
	}

	comments := make([]*entity.Comment, len(commentModels))
	for i := range commentModels {
		comments[i] = ToCommentEntity(&commentModels[i])
	}
	return comments, nil
}

func (r *commentRepository) GetByID(ctx context.Context, id string) (*entity.Comment, error) {
	var commentModel model.CommentModel
	if err := r.db.WithContext(ctx).
		Preload("Author", commentAuthor).
		Where("id = ?", id).
		First(&commentModel).Error; err != nil {
		return nil, translate(err)
	}
	return ToCommentEntity(&commentModel), nil
}

func (r *commentRepository) Create(ctx context.Context, comment *entity.Comment) error {
	commentModel := ToCommentModel(comment)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockPost(tx, comment.PostID); err != nil {
			return err
		}
		if err := tx.Omit(clause.Associations).Create(commentModel).Error; err != nil {
			return translate(err)
		}
		return refreshCommentsCount(tx, comment.PostID)
	})
	if err != nil {
		return err
	}

	author := comment.Author
	*comment = *ToCommentEntity(commentModel)
	comment.Author = author
	return nil
}

func (r *commentRepository) Update(ctx context.Context, comment *entity.Comment) error {
	now := time.Now()
	result := r.db.WithContext(ctx).Model(&model.CommentModel{ID: comment.ID}).Updates(map[string]interface{}{
		"content":    comment.Content,
		"updated_at": now,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	comment.UpdatedAt = now
	return nil
}

func (r *commentRepository) Delete(ctx context.Context, comment *entity.Comment) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockPost(tx, comment.PostID); err != nil && !errors.Is(err, ErrNotFound) {
			return err
		}
		result := tx.Where("id = ?", comment.ID).Delete(&model.CommentModel{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return refreshCommentsCount(tx, comment.PostID)
	})
}
