package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PostModel maps the posts table. The search_vector column is generated by
// postgres and never written from here.
type PostModel struct {
	ID            string    `gorm:"type:uuid;primary_key" json:"id"`
	AuthorID      string    `gorm:"type:uuid;not null;index" json:"author_id"`
	Title         string    `gorm:"type:varchar(200);not null" json:"title"`
	Content       string    `gorm:"type:text;not null" json:"content"`
	ContentText   string    `gorm:"type:text;not null" json:"-"`
	CoverImage    string    `gorm:"type:varchar(500);default:''" json:"cover_image"`
	Status        string    `gorm:"type:varchar(20);default:'published'" json:"status"`
	LikesCount    int       `gorm:"default:0" json:"likes_count"`
	CommentsCount int       `gorm:"default:0" json:"comments_count"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
	Author        UserModel `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
}

func (PostModel) TableName() string {
	return "posts"
}

func (p *PostModel) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return nil
}

// PostLikeModel is one member of a post's like set.
type PostLikeModel struct {
	PostID    string    `gorm:"type:uuid;primaryKey" json:"post_id"`
	UserID    string    `gorm:"type:uuid;primaryKey" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

func (PostLikeModel) TableName() string {
	return "post_likes"
}
