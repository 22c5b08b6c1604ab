package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"taskdesk/internal/adapter/memory"
	"taskdesk/internal/core/domain"
)

func seedTasks(t *testing.T, repo *memory.TaskRepository, titles ...string) {
	t.Helper()
	for _, title := range titles {
		task, err := domain.NewTask(domain.CreateTaskInput{Title: title, Description: "0123456789"})
		require.NoError(t, err)
		require.NoError(t, repo.Create(context.Background(), task))
		// Creation timestamps must differ for the recency ordering to be
		// observable.
		time.Sleep(time.Millisecond)
	}
}

func TestTaskService_ListTasks_NewestFirst(t *testing.T) {
	repo := memory.NewTaskRepository()
	seedTasks(t, repo, "oldest", "middle", "newest")
	svc := NewTaskService(repo)

	tasks, pagination, err := svc.ListTasks(context.Background(), domain.TaskFilter{}, 1, 10)
	require.NoError(t, err)
	require.Len(t, tasks, 3)
	require.Equal(t, "newest", tasks[0].Title)
	require.Equal(t, "oldest", tasks[2].Title)
	require.Equal(t, 3, pagination.TotalItems)
}

func TestTaskService_ListTasks_FilterThenPaginate(t *testing.T) {
	repo := memory.NewTaskRepository()
	seedTasks(t, repo, "a", "b", "c", "d")
	svc := NewTaskService(repo)

	// Pagination metadata reflects the filtered count, not the whole
	// collection.
	status := domain.TaskStatusPending
	tasks, pagination, err := svc.ListTasks(context.Background(), domain.TaskFilter{Status: &status}, 1, 2)
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	require.Equal(t, 4, pagination.TotalItems)
	require.Equal(t, 2, pagination.TotalPages)
	require.True(t, pagination.HasNext)
}

func TestTaskService_CreateTask_FailLoud(t *testing.T) {
	svc := NewTaskService(memory.NewTaskRepository())

	_, err := svc.CreateTask(context.Background(), domain.CreateTaskInput{Title: "Abcd"})
	require.ErrorIs(t, err, domain.ErrMissingRequiredField)

	status := domain.TaskStatus("bogus")
	_, err = svc.CreateTask(context.Background(), domain.CreateTaskInput{
		Title:       "Abcd",
		Description: "0123456789",
		Status:      &status,
	})
	require.ErrorIs(t, err, domain.ErrInvalidEnumValue)
}

func TestTaskService_ChangeTaskStatus(t *testing.T) {
	repo := memory.NewTaskRepository()
	seedTasks(t, repo, "task")
	svc := NewTaskService(repo)

	task, transition, err := svc.ChangeTaskStatus(context.Background(), 1, domain.TaskStatusCancelled)
	require.NoError(t, err)
	require.Equal(t, domain.TaskStatusCancelled, task.Status)
	require.Equal(t, domain.TaskStatusPending, transition.OldStatus)

	_, _, err = svc.ChangeTaskStatus(context.Background(), 99, domain.TaskStatusCompleted)
	require.ErrorIs(t, err, domain.ErrTaskNotFound)
}

func TestUserService_ListUsers_KeepsInsertionOrder(t *testing.T) {
	repo := memory.NewUserRepository()
	ctx := context.Background()
	for _, email := range []string{"a@example.com", "b@example.com", "c@example.com"} {
		user, err := domain.NewUser(domain.CreateUserInput{Name: "User", Email: email})
		require.NoError(t, err)
		require.NoError(t, repo.Create(ctx, user))
	}
	svc := NewUserService(repo)

	users, pagination, err := svc.ListUsers(ctx, domain.UserFilter{}, 1, 2)
	require.NoError(t, err)
	require.Len(t, users, 2)
	require.Equal(t, "a@example.com", users[0].Email)
	require.Equal(t, "b@example.com", users[1].Email)
	require.True(t, pagination.HasNext)
}

func TestUserService_CreateUser_PropagatesDuplicate(t *testing.T) {
	repo := memory.NewUserRepository()
	svc := NewUserService(repo)
	ctx := context.Background()

	_, err := svc.CreateUser(ctx, domain.CreateUserInput{Name: "John", Email: "john@example.com"})
	require.NoError(t, err)

	_, err = svc.CreateUser(ctx, domain.CreateUserInput{Name: "Clone", Email: "john@example.com"})
	require.ErrorIs(t, err, domain.ErrDuplicateEmail)
}
