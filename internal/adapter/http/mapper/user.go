package mapper

import (
	"time"

	"taskdesk/internal/adapter/http/dto"
	"taskdesk/internal/core/domain"
)

func ToUserItems(users []domain.User) []dto.UserItem {
	items := make([]dto.UserItem, 0, len(users))
	for _, user := range users {
		items = append(items, ToUserItem(user))
	}
	return items
}

func ToUserItem(user domain.User) dto.UserItem {
	return dto.UserItem{
		ID:      user.ID,
		Name:    user.Name,
		Email:   user.Email,
		Role:    string(user.Role),
		Created: user.CreatedAt.Format(time.RFC3339),
		Updated: user.UpdatedAt.Format(time.RFC3339),
	}
}
