package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type NewsModel struct {
	ID          string          `gorm:"type:uuid;primary_key" json:"id"`
	Title       string          `gorm:"type:varchar(255);not null" json:"title"`
	Content     string          `gorm:"type:text;not null" json:"content"`
	Image       string          `gorm:"type:varchar(500);not null" json:"image"`
	AuthorID    string          `gorm:"type:uuid;not null;index" json:"author_id"`
	Author      UserModel       `gorm:"foreignKey:AuthorID" json:"author"`
	IsPublished bool            `gorm:"default:true" json:"is_published"`
	Comments    []CommentModel  `gorm:"foreignKey:NewsID;constraint:OnDelete:CASCADE" json:"comments,omitempty"`
	Likes       []NewsLikeModel `gorm:"foreignKey:NewsID;constraint:OnDelete:CASCADE" json:"likes,omitempty"`
	CreatedAt   time.Time       `gorm:"index" json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

func (NewsModel) TableName() string {
	return "news"
}

func (n *NewsModel) BeforeCreate(tx *gorm.DB) error {
	if n.ID == "" {
		n.ID = uuid.New().String()
	}
	return nil
}

// CommentModel is owned by exactly one news post; replies cascade with it.
type CommentModel struct {
	ID        string       `gorm:"type:uuid;primary_key" json:"id"`
	NewsID    string       `gorm:"type:uuid;not null;index" json:"news_id"`
	UserID    string       `gorm:"type:uuid;not null;index" json:"user_id"`
	User      UserModel    `gorm:"foreignKey:UserID" json:"user"`
	Content   string       `gorm:"type:text;not null" json:"content"`
	Replies   []ReplyModel `gorm:"foreignKey:CommentID;constraint:OnDelete:CASCADE" json:"replies,omitempty"`
	CreatedAt time.Time    `json:"created_at"`
}

func (CommentModel) TableName() string {
	return "comments"
}

func (c *CommentModel) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return nil
}

type ReplyModel struct {
	ID        string    `gorm:"type:uuid;primary_key" json:"id"`
	CommentID string    `gorm:"type:uuid;not null;index" json:"comment_id"`
	UserID    string    `gorm:"type:uuid;not null;index" json:"user_id"`
	User      UserModel `gorm:"foreignKey:UserID" json:"user"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

func (ReplyModel) TableName() string {
	return "replies"
}

func (r *ReplyModel) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	return nil
}

// NewsLikeModel holds one row per (post, user) pair; the unique index keeps
// the likes set membership at most once per user.
type NewsLikeModel struct {
	ID        string    `gorm:"type:uuid;primary_key" json:"id"`
	NewsID    string    `gorm:"type:uuid;not null;uniqueIndex:idx_news_like" json:"news_id"`
	UserID    string    `gorm:"type:uuid;not null;uniqueIndex:idx_news_like" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

func (NewsLikeModel) TableName() string {
	return "news_likes"
}

func (l *NewsLikeModel) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.New().String()
	}
	return nil
}
