package persistent

import (
	"mld-backend/internal/entity"
	"mld-backend/internal/model"
)

func ToUserEntity(m *model.UserModel) *entity.User {
	if m == nil {
		return nil
	}

	return &entity.User{
		ID:          m.ID,
		Username:    m.Username,
		Email:       m.Email,
		Password:    m.Password,
		FirstName:   m.FirstName,
		LastName:    m.LastName,
		PhoneNumber: m.PhoneNumber,
		Role:        entity.UserRole(m.Role),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func ToUserModel(e *entity.User) *model.UserModel {
	if e == nil {
		return nil
	}

	return &model.UserModel{
		ID:          e.ID,
		Username:    e.Username,
		Email:       e.Email,
		Password:    e.Password,
		FirstName:   e.FirstName,
		LastName:    e.LastName,
		PhoneNumber: e.PhoneNumber,
		Role:        string(e.Role),
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func toUserRef(m *model.UserModel) entity.UserRef {
	if m == nil {
		return entity.UserRef{}
	}

	return entity.UserRef{
		ID:        m.ID,
		FirstName: m.FirstName,
		LastName:  m.LastName,
	}
}

func ToNewsEntity(m *model.NewsModel) *entity.News {
	if m == nil {
		return nil
	}

	likes := make([]string, len(m.Likes))
	for i := range m.Likes {
		likes[i] = m.Likes[i].UserID
	}

	comments := make([]entity.Comment, len(m.Comments))
	for i := range m.Comments {
		comments[i] = *ToCommentEntity(&m.Comments[i])
	}

	return &entity.News{
		ID:          m.ID,
		Title:       m.Title,
		Content:     m.Content,
		Image:       m.Image,
		Author:      toUserRef(&m.Author),
		Likes:       likes,
		Comments:    comments,
		IsPublished: m.IsPublished,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func ToCommentEntity(m *model.CommentModel) *entity.Comment {
	if m == nil {
		return nil
	}

	replies := make([]entity.Reply, len(m.Replies))
	for i := range m.Replies {
		replies[i] = *ToReplyEntity(&m.Replies[i])
	}

	return &entity.Comment{
		ID:        m.ID,
		User:      toUserRef(&m.User),
		Content:   m.Content,
		Replies:   replies,
		CreatedAt: m.CreatedAt,
	}
}

func ToReplyEntity(m *model.ReplyModel) *entity.Reply {
	if m == nil {
		return nil
	}

	return &entity.Reply{
		ID:        m.ID,
		User:      toUserRef(&m.User),
		Content:   m.Content,
		CreatedAt: m.CreatedAt,
	}
}

func ToCatalogEntity(m *model.ProductModel) *entity.CatalogItem {
	if m == nil {
		return nil
	}

	return &entity.CatalogItem{
		ID:             m.ID,
		Kind:           entity.CatalogKind(m.Kind),
		Title:          m.Title,
		Description:    m.Description,
		Price:          m.Price,
		Image:          m.Image,
		TypeDetail:     m.TypeDetail,
		Features:       m.Features,
		Specifications: m.Specifications,
		IsActive:       m.IsActive,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

func ToCatalogModel(e *entity.CatalogItem) *model.ProductModel {
	if e == nil {
		return nil
	}

	return &model.ProductModel{
		ID:             e.ID,
		Kind:           string(e.Kind),
		Title:          e.Title,
		Description:    e.Description,
		Price:          e.Price,
		Image:          e.Image,
		TypeDetail:     e.TypeDetail,
		Features:       e.Features,
		Specifications: e.Specifications,
		IsActive:       e.IsActive,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}
}
