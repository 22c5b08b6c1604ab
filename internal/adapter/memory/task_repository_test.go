package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"taskdesk/internal/core/domain"
)

func newTask(t *testing.T, title string) *domain.Task {
	t.Helper()
	task, err := domain.NewTask(domain.CreateTaskInput{Title: title, Description: "0123456789"})
	require.NoError(t, err)
	return task
}

func TestTaskRepository_CreateAssignsSequentialIDs(t *testing.T) {
	repo := NewTaskRepository()
	ctx := context.Background()

	first := newTask(t, "first")
	require.NoError(t, repo.Create(ctx, first))
	require.Equal(t, int64(1), first.ID)

	second := newTask(t, "second")
	require.NoError(t, repo.Create(ctx, second))
	require.Equal(t, int64(2), second.ID)
}

func TestTaskRepository_CreateHonorsCallerID(t *testing.T) {
	repo := NewTaskRepository()
	ctx := context.Background()

	supplied := newTask(t, "supplied")
	supplied.ID = 42
	require.NoError(t, repo.Create(ctx, supplied))

	// The counter moves past caller-supplied ids.
	next := newTask(t, "next")
	require.NoError(t, repo.Create(ctx, next))
	require.Equal(t, int64(43), next.ID)
}

func TestTaskRepository_GetByIDNotFound(t *testing.T) {
	repo := NewTaskRepository()

	_, err := repo.GetByID(context.Background(), 99)
	require.ErrorIs(t, err, domain.ErrTaskNotFound)
}

func TestTaskRepository_ListPreservesInsertionOrder(t *testing.T) {
	repo := NewTaskRepository()
	ctx := context.Background()

	for _, title := range []string{"first", "second", "third"} {
		require.NoError(t, repo.Create(ctx, newTask(t, title)))
	}

	tasks, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 3)
	require.Equal(t, "first", tasks[0].Title)
	require.Equal(t, "third", tasks[2].Title)
}

func TestTaskRepository_ListReturnsCopies(t *testing.T) {
	repo := NewTaskRepository()
	ctx := context.Background()
	require.NoError(t, repo.Create(ctx, newTask(t, "original")))

	tasks, err := repo.List(ctx)
	require.NoError(t, err)
	tasks[0].Title = "mutated"

	stored, err := repo.GetByID(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, "original", stored.Title)
}

func TestTaskRepository_UpdatePersists(t *testing.T) {
	repo := NewTaskRepository()
	ctx := context.Background()
	require.NoError(t, repo.Create(ctx, newTask(t, "before")))

	title := "after"
	updated, err := repo.Update(ctx, 1, domain.UpdateTaskInput{Title: &title})
	require.NoError(t, err)
	require.Equal(t, "after", updated.Title)

	stored, err := repo.GetByID(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, "after", stored.Title)
}

func TestTaskRepository_UpdateNotFound(t *testing.T) {
	repo := NewTaskRepository()

	_, err := repo.Update(context.Background(), 7, domain.UpdateTaskInput{})
	require.ErrorIs(t, err, domain.ErrTaskNotFound)
}

func TestTaskRepository_ChangeStatus(t *testing.T) {
	repo := NewTaskRepository()
	ctx := context.Background()
	require.NoError(t, repo.Create(ctx, newTask(t, "task")))

	updated, transition, err := repo.ChangeStatus(ctx, 1, domain.TaskStatusCompleted)
	require.NoError(t, err)
	require.Equal(t, domain.TaskStatusCompleted, updated.Status)
	require.Equal(t, domain.TaskStatusPending, transition.OldStatus)
	require.Equal(t, domain.TaskStatusCompleted, transition.NewStatus)
}

func TestTaskRepository_ChangeStatusInvalidKeepsStored(t *testing.T) {
	repo := NewTaskRepository()
	ctx := context.Background()
	require.NoError(t, repo.Create(ctx, newTask(t, "task")))

	_, _, err := repo.ChangeStatus(ctx, 1, "bogus")
	require.ErrorIs(t, err, domain.ErrInvalidEnumValue)

	stored, err := repo.GetByID(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, domain.TaskStatusPending, stored.Status)
}

func TestTaskRepository_DeleteReturnsEntity(t *testing.T) {
	repo := NewTaskRepository()
	ctx := context.Background()
	require.NoError(t, repo.Create(ctx, newTask(t, "doomed")))

	deleted, err := repo.Delete(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, "doomed", deleted.Title)

	_, err = repo.Delete(ctx, 1)
	require.ErrorIs(t, err, domain.ErrTaskNotFound)

	tasks, err := repo.List(ctx)
	require.NoError(t, err)
	require.Empty(t, tasks)
}
