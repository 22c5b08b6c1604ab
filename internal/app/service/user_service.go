package service

import (
	"context"

	"taskdesk/internal/core/domain"
	"taskdesk/internal/core/ports"
)

type UserService struct {
	userRepository ports.UserRepository
}

var _ ports.UserService = (*UserService)(nil)

func NewUserService(userRepository ports.UserRepository) *UserService {
	return &UserService{userRepository: userRepository}
}

// ListUsers keeps insertion order; only tasks are sorted by recency.
func (s *UserService) ListUsers(ctx context.Context, filter domain.UserFilter, page, limit int) ([]domain.User, domain.Pagination, error) {
	users, err := s.userRepository.List(ctx)
	if err != nil {
		return nil, domain.Pagination{}, err
	}

	filtered := domain.FilterUsers(users, filter)
	pageItems, pagination := domain.Paginate(filtered, page, limit)
	return pageItems, pagination, nil
}

func (s *UserService) GetUser(ctx context.Context, id int64) (domain.User, error) {
	return s.userRepository.GetByID(ctx, id)
}

func (s *UserService) CreateUser(ctx context.Context, input domain.CreateUserInput) (domain.User, error) {
	user, err := domain.NewUser(input)
	if err != nil {
		return domain.User{}, err
	}
	if err := s.userRepository.Create(ctx, user); err != nil {
		return domain.User{}, err
	}
	return *user, nil
}

func (s *UserService) UpdateUser(ctx context.Context, id int64, input domain.UpdateUserInput) (domain.User, error) {
	return s.userRepository.Update(ctx, id, input)
}

func (s *UserService) DeleteUser(ctx context.Context, id int64) (domain.User, error) {
	return s.userRepository.Delete(ctx, id)
}
