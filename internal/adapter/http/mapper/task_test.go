package mapper

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"taskdesk/internal/core/domain"
)

func TestToTaskItem(t *testing.T) {
	assignee := int64(2)
	dueDate := time.Date(2026, 2, 20, 0, 0, 0, 0, time.UTC)
	task := domain.Task{
		ID:          7,
		Title:       "Corriger le bug",
		Description: "Le filtre renvoie une liste vide",
		Status:      domain.TaskStatusInProgress,
		Priority:    domain.TaskPriorityHigh,
		AssignedTo:  &assignee,
		DueDate:     &dueDate,
		CreatedAt:   time.Now().Add(-47 * time.Hour),
		UpdatedAt:   time.Now(),
	}

	item := ToTaskItem(task)
	require.Equal(t, int64(7), item.ID)
	require.Equal(t, "in-progress", item.Status)
	require.Equal(t, "high", item.Priority)
	require.Equal(t, int64(2), *item.AssignedTo)
	require.Equal(t, "2026-02-20T00:00:00Z", *item.DueDate)
	require.True(t, item.IsOverdue)
	require.Equal(t, 2, item.DaysSinceCreated)
}

func TestToTaskItem_NilOptionals(t *testing.T) {
	item := ToTaskItem(domain.Task{
		ID:        1,
		Status:    domain.TaskStatusPending,
		Priority:  domain.TaskPriorityMedium,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	})

	require.Nil(t, item.AssignedTo)
	require.Nil(t, item.DueDate)
	require.False(t, item.IsOverdue)
}

func TestToTaskFilters_EchoesOnlyPresentFilters(t *testing.T) {
	status := domain.TaskStatusPending
	assignee := int64(0)
	filters := ToTaskFilters(domain.TaskFilter{Status: &status, AssignedTo: &assignee})

	require.NotNil(t, filters.Status)
	require.Equal(t, "pending", *filters.Status)
	require.NotNil(t, filters.AssignedTo)
	require.Equal(t, int64(0), *filters.AssignedTo)
	require.Nil(t, filters.Priority)
	require.Nil(t, filters.Overdue)
}
