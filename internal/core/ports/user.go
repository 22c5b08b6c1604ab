package ports

import (
	"context"

	"taskdesk/internal/core/domain"
)

type UserRepository interface {
	List(ctx context.Context) ([]domain.User, error)
	GetByID(ctx context.Context, id int64) (domain.User, error)
	Create(ctx context.Context, user *domain.User) error
	Update(ctx context.Context, id int64, input domain.UpdateUserInput) (domain.User, error)
	Delete(ctx context.Context, id int64) (domain.User, error)
}

type UserService interface {
	ListUsers(ctx context.Context, filter domain.UserFilter, page, limit int) ([]domain.User, domain.Pagination, error)
	GetUser(ctx context.Context, id int64) (domain.User, error)
	CreateUser(ctx context.Context, input domain.CreateUserInput) (domain.User, error)
	UpdateUser(ctx context.Context, id int64, input domain.UpdateUserInput) (domain.User, error)
	DeleteUser(ctx context.Context, id int64) (domain.User, error)
}
