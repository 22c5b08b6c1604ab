package validation

import (
	"taskdesk/internal/adapter/http/dto"
	"taskdesk/internal/core/domain"
)

func BuildCreateUserInput(req dto.CreateUserRequest) domain.CreateUserInput {
	input := domain.CreateUserInput{
		Name:  req.Name,
		Email: req.Email,
	}
	if req.Role != nil {
		value := domain.UserRole(*req.Role)
		input.Role = &value
	}
	return input
}

func BuildUpdateUserInput(req dto.UpdateUserRequest) domain.UpdateUserInput {
	input := domain.UpdateUserInput{
		Name:  req.Name,
		Email: req.Email,
	}
	if req.Role != nil {
		value := domain.UserRole(*req.Role)
		input.Role = &value
	}
	return input
}
