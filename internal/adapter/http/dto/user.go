package dto

type UserItem struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Role    string `json:"role"`
	Created string `json:"created"`
	Updated string `json:"updated"`
}

type CreateUserRequest struct {
	Name  string  `json:"name" binding:"required,min=2,max=100"`
	Email string  `json:"email" binding:"required"`
	Role  *string `json:"role"`
}

type UpdateUserRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
	Role  *string `json:"role"`
}

type ListUsersResponse struct {
	Data       []UserItem `json:"data"`
	Pagination Pagination `json:"pagination"`
}
