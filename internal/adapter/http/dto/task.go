package dto

type TaskItem struct {
	ID               int64   `json:"id"`
	Title            string  `json:"title"`
	Description      string  `json:"description"`
	Status           string  `json:"status"`
	Priority         string  `json:"priority"`
	AssignedTo       *int64  `json:"assignedTo"`
	DueDate          *string `json:"dueDate"`
	Created          string  `json:"created"`
	Updated          string  `json:"updated"`
	IsOverdue        bool    `json:"isOverdue"`
	DaysSinceCreated int     `json:"daysSinceCreated"`
}

// Enum values are deliberately not constrained by binding tags: the domain
// layer owns enum validation so that create stays fail-loud and update keeps
// its drop-invalid-fields policy.
type CreateTaskRequest struct {
	Title       string  `json:"title" binding:"required,min=3,max=200"`
	Description string  `json:"description" binding:"required,min=10,max=1000"`
	Status      *string `json:"status"`
	Priority    *string `json:"priority"`
	AssignedTo  *int64  `json:"assignedTo" binding:"omitempty,gte=0"`
	DueDate     *string `json:"dueDate"`
}

type UpdateTaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
	Priority    *string `json:"priority"`
	AssignedTo  *int64  `json:"assignedTo"`
	DueDate     *string `json:"dueDate"`
}

type ChangeTaskStatusRequest struct {
	Status *string `json:"status"`
}

type TaskFilters struct {
	Status     *string `json:"status"`
	Priority   *string `json:"priority"`
	AssignedTo *int64  `json:"assignedTo"`
	Overdue    *bool   `json:"overdue"`
}

type ListTasksResponse struct {
	Data       []TaskItem  `json:"data"`
	Pagination Pagination  `json:"pagination"`
	Filters    TaskFilters `json:"filters"`
}
