package persistent

import (
	"github.com/PritamDhobale/CreatorHub/services/auth/internal/entity"
	"github.com/PritamDhobale/CreatorHub/services/auth/model"
)

func ToUserEntity(m *model.UserModel) *entity.User {
	if m == nil {
		return nil
	}

	return &entity.User{
		ID:          m.ID,
		Email:       m.Email,
		Username:    m.Username,
		FullName:    m.FullName,
		Password:    m.Password,
		AvatarURL:   m.AvatarURL,
		Role:        entity.UserRole(m.Role),
		IsActive:    m.IsActive,
		LastLoginAt: m.LastLoginAt,
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
		Email:       e.Email,
		Username:    e.Username,
		FullName:    e.FullName,
		Password:    e.Password,
		AvatarURL:   e.AvatarURL,
		Role:        string(e.Role),
		IsActive:    e.IsActive,
		LastLoginAt: e.LastLoginAt,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func ToUserEntities(models []model.UserModel) []*entity.User {
	users := make([]*entity.User, len(models))
	for i := range models {
		users[i] = ToUserEntity(&models[i])
	}
	return users
}
