package ports

import (
	"context"

	"taskdesk/internal/core/domain"
)

type TaskRepository interface {
	List(ctx context.Context) ([]domain.Task, error)
	GetByID(ctx context.Context, id int64) (domain.Task, error)
	Create(ctx context.Context, task *domain.Task) error
	Update(ctx context.Context, id int64, input domain.UpdateTaskInput) (domain.Task, error)
	ChangeStatus(ctx context.Context, id int64, status domain.TaskStatus) (domain.Task, domain.StatusTransition, error)
	Delete(ctx context.Context, id int64) (domain.Task, error)
}

type TaskService interface {
	ListTasks(ctx context.Context, filter domain.TaskFilter, page, limit int) ([]domain.Task, domain.Pagination, error)
	GetTask(ctx context.Context, id int64) (domain.Task, error)
	CreateTask(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error)
	UpdateTask(ctx context.Context, id int64, input domain.UpdateTaskInput) (domain.Task, error)
	ChangeTaskStatus(ctx context.Context, id int64, status domain.TaskStatus) (domain.Task, domain.StatusTransition, error)
	DeleteTask(ctx context.Context, id int64) (domain.Task, error)
}
