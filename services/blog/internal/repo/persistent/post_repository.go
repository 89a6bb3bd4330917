package persistent

import (
	"context"
	"fmt"
	"time"

	"blog-platform/services/blog/internal/entity"
	"blog-platform/services/blog/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PostRepository interface {
	Create(ctx context.Context, post *entity.Post) error
	GetByID(ctx context.Context, id string) (*entity.Post, error)
	List(ctx context.Context, query entity.PostQuery) ([]*entity.Post, int64, error)
	Update(ctx context.Context, post *entity.Post) error
	// DeleteCascade removes the post with its likes and comments in one
	// transaction.
	DeleteCascade(ctx context.Context, id string) error
	// ToggleLike flips userID's membership in the like set and returns the
	// new membership and the recomputed like count.
	ToggleLike(ctx context.Context, postID, userID string) (bool, int, error)
	IsLiked(ctx context.Context, postID, userID string) (bool, error)
	AuthorStats(ctx context.Context, authorID string, includeDrafts bool) (*entity.AuthorStats, error)
}

var sortColumns = map[entity.SortField]string{
	entity.SortCreatedAt:     "created_at",
	entity.SortUpdatedAt:     "updated_at",
	entity.SortTitle:         "title",
	entity.SortLikesCount:    "likes_count",
	entity.SortCommentsCount: "comments_count",
}

const searchQuery = "websearch_to_tsquery('english', ?)"

type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func preloadAuthor(db *gorm.DB) *gorm.DB {
	return db.Select("id", "name", "email", "avatar", "bio")
}

func (r *postRepository) Create(ctx context.Context, post *entity.Post) error {
	postModel := ToPostModel(post)
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(postModel).Error; err != nil {
		return translate(err)
	}

	author := post.Author
	*post = *ToPostEntity(postModel)
	post.Author = author
	return nil
}

func (r *postRepository) GetByID(ctx context.Context, id string) (*entity.Post, error) {
	var postModel model.PostModel
	if err := r.db.WithContext(ctx).
		Preload("Author", preloadAuthor).
		Where("id = ?", id).
		First(&postModel).Error; err != nil {
		return nil, translate(err)
	}
	return ToPostEntity(&postModel), nil
}

func (r *postRepository) List(ctx context.Context, query entity.PostQuery) ([]*entity.Post, int64, error) {
	base := r.db.WithContext(ctx).Model(&model.PostModel{})
	if query.AuthorID != "" {
		base = base.Where("author_id = ?", query.AuthorID)
	}
	if query.Status != "" {
		base = base.Where("status = ?", string(query.Status))
	}
	if query.Search != "" {
		base = base.Where("search_vector @@ "+searchQuery, query.Search)
	}
	base = base.Session(&gorm.Session{})

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var postModels []model.PostModel
	if err := base.
		Preload("Author", preloadAuthor).
		Order(listOrder(query)).
		Limit(query.Limit).
		Offset(query.Offset()).
		Find(&postModels).Error; err != nil {
		return nil, 0, err
	}

	posts := make([]*entity.Post, len(postModels))
	for i := range postModels {
		posts[i] = ToPostEntity(&postModels[i])
	}
	return posts, total, nil
}

func listOrder(query entity.PostQuery) clause.OrderBy {
	if query.SortBy == "" && query.Search != "" {
		return clause.OrderBy{Expression: clause.Expr{
			SQL:                "ts_rank(search_vector, " + searchQuery + ") DESC, created_at DESC, id",
			Vars:               []interface{}{query.Search},
			WithoutParentheses: true,
		}}
	}

	column, ok := sortColumns[query.SortBy]
	if !ok {
		column = "created_at"
	}
	return clause.OrderBy{Columns: []clause.OrderByColumn{
		{Column: clause.Column{Name: column}, Desc: !query.Ascending},
		{Column: clause.Column{Name: "id"}},
	}}
}

// Update writes the author-editable columns only, so concurrent counter
// updates are never overwritten.
func (r *postRepository) Update(ctx context.Context, post *entity.Post) error {
	now := time.Now()
	result := r.db.WithContext(ctx).Model(&model.PostModel{ID: post.ID}).Updates(map[string]interface{}{
		"title":        post.Title,
		"content":      post.Content,
		"content_text": post.ContentText,
		"cover_image":  post.CoverImage,
		"status":       string(post.Status),
		"updated_at":   now,
	})
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	post.UpdatedAt = now
	return nil
}

func (r *postRepository) DeleteCascade(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&model.PostLikeModel{}).Error; err != nil {
			return fmt.Errorf("delete likes: %w", err)
		}
		if err := tx.Where("post_id = ?", id).Delete(&model.CommentModel{}).Error; err != nil {
			return fmt.Errorf("delete comments: %w", err)
		}
		result := tx.Where("id = ?", id).Delete(&model.PostModel{})
		if result.Error != nil {
			return fmt.Errorf("delete post: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

// lockPost takes the row lock that serialises counter updates on one post.
func lockPost(tx *gorm.DB, postID string) error {
	var postModel model.PostModel
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Select("id").
		Where("id = ?", postID).
		First(&postModel).Error
	return translate(err)
}

func (r *postRepository) ToggleLike(ctx context.Context, postID, userID string) (bool, int, error) {
	var (
		liked bool
		count int
	)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockPost(tx, postID); err != nil {
			return err
		}

		result := tx.Where("post_id = ? AND user_id = ?", postID, userID).Delete(&model.PostLikeModel{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			if err := tx.Create(&model.PostLikeModel{PostID: postID, UserID: userID}).Error; err != nil {
				return translate(err)
			}
			liked = true
		}

		if err := tx.Model(&model.PostModel{}).Where("id = ?", postID).
			UpdateColumn("likes_count", gorm.Expr("(SELECT COUNT(*) FROM post_likes WHERE post_id = ?)", postID)).Error; err != nil {
			return err
		}
		return tx.Raw("SELECT likes_count FROM posts WHERE id = ?", postID).Scan(&count).Error
	})
	if err != nil {
		return false, 0, err
	}
	return liked, count, nil
}

func (r *postRepository) IsLiked(ctx context.Context, postID, userID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.PostLikeModel{}).
		Where("post_id = ? AND user_id = ?", postID, userID).
		Count(&count).Error
	return count > 0, err
}

func (r *postRepository) AuthorStats(ctx context.Context, authorID string, includeDrafts bool) (*entity.AuthorStats, error) {
	var row struct {
		TotalBlogs    int64
		TotalLikes    int64
		TotalComments int64
	}

	query := r.db.WithContext(ctx).Model(&model.PostModel{}).
		Select("COUNT(*) AS total_blogs, COALESCE(SUM(likes_count), 0) AS total_likes, COALESCE(SUM(comments_count), 0) AS total_comments").
		Where("author_id = ?", authorID)
	if !includeDrafts {
		query = query.Where("status = ?", string(entity.StatusPublished))
	}
	if err := query.Scan(&row).Error; err != nil {
		return nil, err
	}

	return &entity.AuthorStats{
		TotalBlogs:    row.TotalBlogs,
		TotalLikes:    row.TotalLikes,
		TotalComments: row.TotalComments,
	}, nil
}
