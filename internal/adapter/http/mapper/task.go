package mapper

import (
	"time"

	"taskdesk/internal/adapter/http/dto"
	"taskdesk/internal/core/domain"
)

func ToTaskItems(tasks []domain.Task) []dto.TaskItem {
	items := make([]dto.TaskItem, 0, len(tasks))
	for _, task := range tasks {
		items = append(items, ToTaskItem(task))
	}
	return items
}

func ToTaskItem(task domain.Task) dto.TaskItem {
	item := dto.TaskItem{
		ID:               task.ID,
		Title:            task.Title,
		Description:      task.Description,
		Status:           string(task.Status),
		Priority:         string(task.Priority),
		Created:          task.CreatedAt.Format(time.RFC3339),
		Updated:          task.UpdatedAt.Format(time.RFC3339),
		IsOverdue:        task.IsOverdue(),
		DaysSinceCreated: task.DaysSinceCreated(),
	}

	if task.AssignedTo != nil {
		value := *task.AssignedTo
		item.AssignedTo = &value
	}

	if task.DueDate != nil {
		value := task.DueDate.Format(time.RFC3339)
		item.DueDate = &value
	}

	return item
}

func ToPagination(p domain.Pagination) dto.Pagination {
	return dto.Pagination{
		CurrentPage: p.CurrentPage,
		TotalPages:  p.TotalPages,
		TotalItems:  p.TotalItems,
		HasNext:     p.HasNext,
		HasPrev:     p.HasPrev,
	}
}

func ToTaskFilters(filter domain.TaskFilter) dto.TaskFilters {
	filters := dto.TaskFilters{}
	if filter.Status != nil {
		value := string(*filter.Status)
		filters.Status = &value
	}
	if filter.Priority != nil {
		value := string(*filter.Priority)
		filters.Priority = &value
	}
	if filter.AssignedTo != nil {
		value := *filter.AssignedTo
		filters.AssignedTo = &value
	}
	if filter.Overdue != nil {
		value := *filter.Overdue
		filters.Overdue = &value
	}
	return filters
}
