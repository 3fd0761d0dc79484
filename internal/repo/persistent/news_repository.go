package persistent

import (
	"mld-backend/internal/entity"
	"mld-backend/internal/model"

	"gorm.io/gorm"
)

type NewsRepository interface {
	ListPublished() ([]*entity.News, error)
	GetByID(id string) (*entity.News, error)
	Exists(id string) (bool, error)
	Create(news *entity.News) error
	Update(id string, updates map[string]interface{}) error
	Delete(id string) error

	HasLike(newsID, userID string) (bool, error)
	AddLike(newsID, userID string) error
	RemoveLike(newsID, userID string) error

	AddComment(newsID, userID, content string) error
	GetComment(newsID, commentID string) (*entity.Comment, error)
	DeleteComment(commentID string) error

	AddReply(commentID, userID, content string) error
	GetReply(commentID, replyID string) (*entity.Reply, error)
	DeleteReply(replyID string) error
}

type newsRepository struct {
	db *gorm.DB
}

func NewNewsRepository(db *gorm.DB) NewsRepository {
	return &newsRepository{db: db}
}

// withAuthors preloads every identity referenced by a post so responses can
// carry resolved display names.
func (r *newsRepository) withAuthors() *gorm.DB {
	return r.db.
		Preload("Author").
		Preload("Likes").
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Order("comments.created_at ASC")
		}).
		Preload("Comments.User").
		Preload("Comments.Replies", func(db *gorm.DB) *gorm.DB {
			return db.Order("replies.created_at ASC")
		}).
		Preload("Comments.Replies.User")
}

func (r *newsRepository) ListPublished() ([]*entity.News, error) {
	var newsModels []model.NewsModel
	err := r.withAuthors().
		Where("is_published = ?", true).
		Order("created_at DESC").
		Find(&newsModels).Error
	if err != nil {
		return nil, err
	}

	news := make([]*entity.News, len(newsModels))
	for i := range newsModels {
		news[i] = ToNewsEntity(&newsModels[i])
	}
	return news, nil
}

func (r *newsRepository) GetByID(id string) (*entity.News, error) {
	var newsModel model.NewsModel
	if err := r.withAuthors().Where("id = ?", id).First(&newsModel).Error; err != nil {
		return nil, err
	}
	return ToNewsEntity(&newsModel), nil
}

func (r *newsRepository) Exists(id string) (bool, error) {
	var count int64
	if err := r.db.Model(&model.NewsModel{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *newsRepository) Create(news *entity.News) error {
	newsModel := &model.NewsModel{
		Title:       news.Title,
		Content:     news.Content,
		Image:       news.Image,
		AuthorID:    news.Author.ID,
		IsPublished: news.IsPublished,
	}
	if err := r.db.Create(newsModel).Error; err != nil {
		return err
	}
	news.ID = newsModel.ID
	news.CreatedAt = newsModel.CreatedAt
	news.UpdatedAt = newsModel.UpdatedAt
	return nil
}

func (r *newsRepository) Update(id string, updates map[string]interface{}) error {
	result := r.db.Model(&model.NewsModel{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete removes the post; comments, replies and likes go with it via the
// cascading foreign keys.
func (r *newsRepository) Delete(id string) error {
	result := r.db.Where("id = ?", id).Delete(&model.NewsModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *newsRepository) HasLike(newsID, userID string) (bool, error) {
	var count int64
	err := r.db.Model(&model.NewsLikeModel{}).
		Where("news_id = ? AND user_id = ?", newsID, userID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *newsRepository) AddLike(newsID, userID string) error {
	return r.db.Create(&model.NewsLikeModel{NewsID: newsID, UserID: userID}).Error
}

func (r *newsRepository) RemoveLike(newsID, userID string) error {
	return r.db.Where("news_id = ? AND user_id = ?", newsID, userID).Delete(&model.NewsLikeModel{}).Error
}

func (r *newsRepository) AddComment(newsID, userID, content string) error {
	return r.db.Create(&model.CommentModel{
		NewsID:  newsID,
		UserID:  userID,
		Content: content,
	}).Error
}

func (r *newsRepository) GetComment(newsID, commentID string) (*entity.Comment, error) {
	var commentModel model.CommentModel
	err := r.db.Preload("User").
		Where("id = ? AND news_id = ?", commentID, newsID).
		First(&commentModel).Error
	if err != nil {
		return nil, err
	}
	return ToCommentEntity(&commentModel), nil
}

func (r *newsRepository) DeleteComment(commentID string) error {
	return r.db.Where("id = ?", commentID).Delete(&model.CommentModel{}).Error
}

func (r *newsRepository) AddReply(commentID, userID, content string) error {
	return r.db.Create(&model.ReplyModel{
		CommentID: commentID,
		UserID:    userID,
		Content:   content,
	}).Error
}

func (r *newsRepository) GetReply(commentID, replyID string) (*entity.Reply, error) {
	var replyModel model.ReplyModel
	err := r.db.Preload("User").
		Where("id = ? AND comment_id = ?", replyID, commentID).
		First(&replyModel).Error
	if err != nil {
		return nil, err
	}
	return ToReplyEntity(&replyModel), nil
}

func (r *newsRepository) DeleteReply(replyID string) error {
	return r.db.Where("id = ?", replyID).Delete(&model.ReplyModel{}).Error
}
