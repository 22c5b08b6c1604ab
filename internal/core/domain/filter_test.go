package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"taskdesk/internal/core/domain"
)

func sampleTasks() []domain.Task {
	past := time.Now().Add(-time.Hour)
	future := time.Now().Add(time.Hour)

	return []domain.Task{
		{ID: 1, Title: "a", Status: domain.TaskStatusPending, Priority: domain.TaskPriorityHigh, AssignedTo: int64Ptr(1), DueDate: &past},
		{ID: 2, Title: "b", Status: domain.TaskStatusPending, Priority: domain.TaskPriorityLow, AssignedTo: int64Ptr(2)},
		{ID: 3, Title: "c", Status: domain.TaskStatusCompleted, Priority: domain.TaskPriorityHigh, AssignedTo: int64Ptr(1), DueDate: &past},
		{ID: 4, Title: "d", Status: domain.TaskStatusInProgress, Priority: domain.TaskPriorityMedium, DueDate: &future},
		{ID: 5, Title: "e", Status: domain.TaskStatusPending, Priority: domain.TaskPriorityHigh, AssignedTo: int64Ptr(0)},
	}
}

func taskIDs(tasks []domain.Task) []int64 {
	ids := make([]int64, 0, len(tasks))
	for _, task := range tasks {
		ids = append(ids, task.ID)
	}
	return ids
}

func TestFilterTasks_NoFilterReturnsAllInOrder(t *testing.T) {
	tasks := sampleTasks()
	filtered := domain.FilterTasks(tasks, domain.TaskFilter{})
	require.Equal(t, []int64{1, 2, 3, 4, 5}, taskIDs(filtered))
}

func TestFilterTasks_ByStatus(t *testing.T) {
	filtered := domain.FilterTasks(sampleTasks(), domain.TaskFilter{Status: statusPtr(domain.TaskStatusPending)})
	require.Equal(t, []int64{1, 2, 5}, taskIDs(filtered))
}

func TestFilterTasks_ByAssigneeZero(t *testing.T) {
	// assignedTo=0 is a real filter value and must not match every task.
	filtered := domain.FilterTasks(sampleTasks(), domain.TaskFilter{AssignedTo: int64Ptr(0)})
	require.Equal(t, []int64{5}, taskIDs(filtered))
}

func TestFilterTasks_ByAssigneeSkipsUnassigned(t *testing.T) {
	filtered := domain.FilterTasks(sampleTasks(), domain.TaskFilter{AssignedTo: int64Ptr(1)})
	require.Equal(t, []int64{1, 3}, taskIDs(filtered))
}

func TestFilterTasks_ByOverdue(t *testing.T) {
	// Task 1 is past due and pending; task 3 is past due but completed.
	filtered := domain.FilterTasks(sampleTasks(), domain.TaskFilter{Overdue: boolPtr(true)})
	require.Equal(t, []int64{1}, taskIDs(filtered))

	filtered = domain.FilterTasks(sampleTasks(), domain.TaskFilter{Overdue: boolPtr(false)})
	require.Equal(t, []int64{2, 3, 4, 5}, taskIDs(filtered))
}

func TestFilterTasks_CombinesWithAnd(t *testing.T) {
	filtered := domain.FilterTasks(sampleTasks(), domain.TaskFilter{
		Status:   statusPtr(domain.TaskStatusPending),
		Priority: priorityPtr(domain.TaskPriorityHigh),
	})
	require.Equal(t, []int64{1, 5}, taskIDs(filtered))

	filtered = domain.FilterTasks(sampleTasks(), domain.TaskFilter{
		Status:     statusPtr(domain.TaskStatusPending),
		Priority:   priorityPtr(domain.TaskPriorityHigh),
		AssignedTo: int64Ptr(1),
	})
	require.Equal(t, []int64{1}, taskIDs(filtered))
}

func TestFilterTasks_DoesNotMutateSource(t *testing.T) {
	tasks := sampleTasks()
	filtered := domain.FilterTasks(tasks, domain.TaskFilter{Status: statusPtr(domain.TaskStatusCompleted)})
	require.Len(t, filtered, 1)
	require.Len(t, tasks, 5)
	require.Equal(t, []int64{1, 2, 3, 4, 5}, taskIDs(tasks))
}

func TestFilterUsers_ByRole(t *testing.T) {
	users := []domain.User{
		{ID: 1, Role: domain.UserRoleAdmin},
		{ID: 2, Role: domain.UserRoleUser},
		{ID: 3, Role: domain.UserRoleAdmin},
	}

	filtered := domain.FilterUsers(users, domain.UserFilter{Role: rolePtr(domain.UserRoleAdmin)})
	require.Len(t, filtered, 2)
	require.Equal(t, int64(1), filtered[0].ID)
	require.Equal(t, int64(3), filtered[1].ID)

	all := domain.FilterUsers(users, domain.UserFilter{})
	require.Len(t, all, 3)
}

func boolPtr(b bool) *bool { return &b }
