package service

import (
	"context"
	"sort"

	"go.uber.org/zap"

	"taskdesk/internal/core/domain"
	"taskdesk/internal/core/ports"
)

type TaskService struct {
	taskRepository ports.TaskRepository
}

var _ ports.TaskService = (*TaskService)(nil)

func NewTaskService(taskRepository ports.TaskRepository) *TaskService {
	return &TaskService{taskRepository: taskRepository}
}

// ListTasks filters, orders newest-first by creation time, then paginates.
func (s *TaskService) ListTasks(ctx context.Context, filter domain.TaskFilter, page, limit int) ([]domain.Task, domain.Pagination, error) {
	tasks, err := s.taskRepository.List(ctx)
	if err != nil {
		return nil, domain.Pagination{}, err
	}

	filtered := domain.FilterTasks(tasks, filter)
	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].CreatedAt.After(filtered[j].CreatedAt)
	})

	pageItems, pagination := domain.Paginate(filtered, page, limit)
	return pageItems, pagination, nil
}

func (s *TaskService) GetTask(ctx context.Context, id int64) (domain.Task, error) {
	return s.taskRepository.GetByID(ctx, id)
}

func (s *TaskService) CreateTask(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error) {
	task, err := domain.NewTask(input)
	if err != nil {
		return domain.Task{}, err
	}
	if err := s.taskRepository.Create(ctx, task); err != nil {
		return domain.Task{}, err
	}
	return *task, nil
}

func (s *TaskService) UpdateTask(ctx context.Context, id int64, input domain.UpdateTaskInput) (domain.Task, error) {
	return s.taskRepository.Update(ctx, id, input)
}

func (s *TaskService) ChangeTaskStatus(ctx context.Context, id int64, status domain.TaskStatus) (domain.Task, domain.StatusTransition, error) {
	task, transition, err := s.taskRepository.ChangeStatus(ctx, id, status)
	if err != nil {
		return domain.Task{}, domain.StatusTransition{}, err
	}

	zap.L().Info("task status changed",
		zap.Int64("task_id", task.ID),
		zap.String("old_status", string(transition.OldStatus)),
		zap.String("new_status", string(transition.NewStatus)),
	)
	return task, transition, nil
}

func (s *TaskService) DeleteTask(ctx context.Context, id int64) (domain.Task, error) {
	return s.taskRepository.Delete(ctx, id)
}
