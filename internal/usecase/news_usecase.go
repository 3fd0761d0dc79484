package usecase

import (
	"fmt"

	"mld-backend/internal/entity"
	"mld-backend/internal/repo/persistent"
	"mld-backend/pkg/logger"
)

type NewsUseCase interface {
	ListPublished() ([]*entity.News, error)
	GetNews(id string) (*entity.News, error)
	CreateNews(authorID, title, content, imagePath string, isPublished *bool) (*entity.News, error)
	UpdateNews(id string, title, content, imagePath *string, isPublished *bool) (*entity.News, error)
	DeleteNews(id string) error
	ToggleLike(newsID, userID string) (*entity.News, error)
	AddComment(newsID, userID, content string) (*entity.News, error)
	DeleteComment(newsID, commentID, callerID string, callerRole entity.UserRole) (*entity.News, error)
	AddReply(newsID, commentID, userID, content string) (*entity.News, error)
	DeleteReply(newsID, commentID, replyID, callerID string, callerRole entity.UserRole) (*entity.News, error)
}

type newsUseCase struct {
	newsRepo persistent.NewsRepository
	logger   *logger.Logger
}

func NewNewsUseCase(newsRepo persistent.NewsRepository, logger *logger.Logger) NewsUseCase {
	return &newsUseCase{
		newsRepo: newsRepo,
		logger:   logger,
	}
}

func (uc *newsUseCase) ListPublished() ([]*entity.News, error) {
	return uc.newsRepo.ListPublished()
}

func (uc *newsUseCase) GetNews(id string) (*entity.News, error) {
	news, err := uc.newsRepo.GetByID(id)
	if err != nil {
		if isNotFound(err) {
			return nil, fmt.Errorf("news post %w", ErrNotFound)
		}
		uc.logger.Error("Failed to load news post %s: %v", id, err)
		return nil, fmt.Errorf("failed to load news post")
	}
	return news, nil
}

func (uc *newsUseCase) CreateNews(authorID, title, content, imagePath string, isPublished *bool) (*entity.News, error) {
	if title == "" || content == "" {
		return nil, fmt.Errorf("%w: title and content are required", ErrValidation)
	}
	if imagePath == "" {
		return nil, fmt.Errorf("%w: image is required", ErrValidation)
	}

	published := true
	if isPublished != nil {
		published = *isPublished
	}

	news := &entity.News{
		Title:       title,
		Content:     content,
		Image:       imagePath,
		Author:      entity.UserRef{ID: authorID},
		IsPublished: published,
	}

	if err := uc.newsRepo.Create(news); err != nil {
		uc.logger.Error("Failed to create news post: %v", err)
		return nil, fmt.Errorf("failed to create news post")
	}

	// Re-fetch so the response carries the resolved author.
	return uc.refetch(news.ID)
}

func (uc *newsUseCase) UpdateNews(id string, title, content, imagePath *string, isPublished *bool) (*entity.News, error) {
	updates := map[string]interface{}{}
	if title != nil {
		if *title == "" {
			return nil, fmt.Errorf("%w: title cannot be empty", ErrValidation)
		}
		updates["title"] = *title
	}
	if content != nil {
		if *content == "" {
			return nil, fmt.Errorf("%w: content cannot be empty", ErrValidation)
		}
		updates["content"] = *content
	}
	if imagePath != nil {
		updates["image"] = *imagePath
	}
	if isPublished != nil {
		updates["is_published"] = *isPublished
	}

	if len(updates) > 0 {
		if err := uc.newsRepo.Update(id, updates); err != nil {
			if isNotFound(err) {
				return nil, fmt.Errorf("news post %w", ErrNotFound)
			}
			uc.logger.Error("Failed to update news post %s: %v", id, err)
			return nil, fmt.Errorf("failed to update news post")
		}
	}

	return uc.GetNews(id)
}

func (uc *newsUseCase) DeleteNews(id string) error {
	if err := uc.newsRepo.Delete(id); err != nil {
		if isNotFound(err) {
			return fmt.Errorf("news post %w", ErrNotFound)
		}
		uc.logger.Error("Failed to delete news post %s: %v", id, err)
		return fmt.Errorf("failed to delete news post")
	}
	return nil
}

// ToggleLike flips the caller's membership in the post's likes set: present
// removes, absent adds. Calling it twice restores the original set.
func (uc *newsUseCase) ToggleLike(newsID, userID string) (*entity.News, error) {
	if err := uc.ensureExists(newsID); err != nil {
		return nil, err
	}

	liked, err := uc.newsRepo.HasLike(newsID, userID)
	if err != nil {
		uc.logger.Error("Failed to check like status: %v", err)
		return nil, fmt.Errorf("failed to toggle like")
	}

	if liked {
		err = uc.newsRepo.RemoveLike(newsID, userID)
	} else {
		err = uc.newsRepo.AddLike(newsID, userID)
	}
	if err != nil {
		uc.logger.Error("Failed to toggle like: %v", err)
		return nil, fmt.Errorf("failed to toggle like")
	}

	return uc.refetch(newsID)
}

func (uc *newsUseCase) AddComment(newsID, userID, content string) (*entity.News, error) {
	if content == "" {
		return nil, fmt.Errorf("%w: content is required", ErrValidation)
	}

	if err := uc.ensureExists(newsID); err != nil {
		return nil, err
	}

	if err := uc.newsRepo.AddComment(newsID, userID, content); err != nil {
		uc.logger.Error("Failed to add comment: %v", err)
		return nil, fmt.Errorf("failed to add comment")
	}

	return uc.refetch(newsID)
}

// DeleteComment removes a comment and, through ownership, all its replies.
// Only the comment's author or an admin may delete it.
func (uc *newsUseCase) DeleteComment(newsID, commentID, callerID string, callerRole entity.UserRole) (*entity.News, error) {
	if err := uc.ensureExists(newsID); err != nil {
		return nil, err
	}

	comment, err := uc.newsRepo.GetComment(newsID, commentID)
	if err != nil {
		if isNotFound(err) {
			return nil, fmt.Errorf("comment %w", ErrNotFound)
		}
		uc.logger.Error("Failed to load comment %s: %v", commentID, err)
		return nil, fmt.Errorf("failed to load comment")
	}

	if callerRole != entity.RoleAdmin && comment.User.ID != callerID {
		return nil, fmt.Errorf("%w: not authorized to delete this comment", ErrForbidden)
	}

	if err := uc.newsRepo.DeleteComment(commentID); err != nil {
		uc.logger.Error("Failed to delete comment %s: %v", commentID, err)
		return nil, fmt.Errorf("failed to delete comment")
	}

	return uc.refetch(newsID)
}

func (uc *newsUseCase) AddReply(newsID, commentID, userID, content string) (*entity.News, error) {
	if content == "" {
		return nil, fmt.Errorf("%w: content is required", ErrValidation)
	}

	if err := uc.ensureExists(newsID); err != nil {
		return nil, err
	}

	if _, err := uc.newsRepo.GetComment(newsID, commentID); err != nil {
		if isNotFound(err) {
			return nil, fmt.Errorf("comment %w", ErrNotFound)
		}
		uc.logger.Error("Failed to load comment %s: %v", commentID, err)
		return nil, fmt.Errorf("failed to load comment")
	}

	if err := uc.newsRepo.AddReply(commentID, userID, content); err != nil {
		uc.logger.Error("Failed to add reply: %v", err)
		return nil, fmt.Errorf("failed to add reply")
	}

	return uc.refetch(newsID)
}

func (uc *newsUseCase) DeleteReply(newsID, commentID, replyID, callerID string, callerRole entity.UserRole) (*entity.News, error) {
	if err := uc.ensureExists(newsID); err != nil {
		return nil, err
	}

	if _, err := uc.newsRepo.GetComment(newsID, commentID); err != nil {
		if isNotFound(err) {
			return nil, fmt.Errorf("comment %w", ErrNotFound)
		}
		uc.logger.Error("Failed to load comment %s: %v", commentID, err)
		return nil, fmt.Errorf("failed to load comment")
	}

	reply, err := uc.newsRepo.GetReply(commentID, replyID)
	if err != nil {
		if isNotFound(err) {
			return nil, fmt.Errorf("reply %w", ErrNotFound)
		}
		uc.logger.Error("Failed to load reply %s: %v", replyID, err)
		return nil, fmt.Errorf("failed to load reply")
	}

	if callerRole != entity.RoleAdmin && reply.User.ID != callerID {
		return nil, fmt.Errorf("%w: not authorized to delete this reply", ErrForbidden)
	}

	if err := uc.newsRepo.DeleteReply(replyID); err != nil {
		uc.logger.Error("Failed to delete reply %s: %v", replyID, err)
		return nil, fmt.Errorf("failed to delete reply")
	}

	return uc.refetch(newsID)
}

// ensureExists confirms the post is present before touching any of its
// children. A store failure is not a missing post.
func (uc *newsUseCase) ensureExists(newsID string) error {
	exists, err := uc.newsRepo.Exists(newsID)
	if err != nil {
		uc.logger.Error("Failed to check news post %s: %v", newsID, err)
		return fmt.Errorf("failed to load news post")
	}
	if !exists {
		return fmt.Errorf("news post %w", ErrNotFound)
	}
	return nil
}

// refetch returns the just-mutated post with all identities resolved, so
// every mutating endpoint responds with the state it produced.
func (uc *newsUseCase) refetch(newsID string) (*entity.News, error) {
	news, err := uc.newsRepo.GetByID(newsID)
	if err != nil {
		uc.logger.Error("Failed to reload news post %s: %v", newsID, err)
		return nil, fmt.Errorf("failed to load news post")
	}
	return news, nil
}
