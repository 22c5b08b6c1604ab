package domain

import (
	"fmt"
	"math"
	"strings"
	"time"
	"unicode/utf8"
)

type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusInProgress TaskStatus = "in-progress"
	TaskStatusCompleted  TaskStatus = "completed"
	TaskStatusCancelled  TaskStatus = "cancelled"
)

type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "low"
	TaskPriorityMedium TaskPriority = "medium"
	TaskPriorityHigh   TaskPriority = "high"
	TaskPriorityUrgent TaskPriority = "urgent"
)

func ValidTaskStatuses() []TaskStatus {
	return []TaskStatus{TaskStatusPending, TaskStatusInProgress, TaskStatusCompleted, TaskStatusCancelled}
}

func ValidTaskPriorities() []TaskPriority {
	return []TaskPriority{TaskPriorityLow, TaskPriorityMedium, TaskPriorityHigh, TaskPriorityUrgent}
}

func IsValidTaskStatus(status TaskStatus) bool {
	for _, s := range ValidTaskStatuses() {
		if s == status {
			return true
		}
	}
	return false
}

func IsValidTaskPriority(priority TaskPriority) bool {
	for _, p := range ValidTaskPriorities() {
		if p == priority {
			return true
		}
	}
	return false
}

const (
	TitleMinLen       = 3
	TitleMaxLen       = 200
	DescriptionMinLen = 10
	DescriptionMaxLen = 1000
)

func isValidTitle(title string) bool {
	if strings.TrimSpace(title) == "" {
		return false
	}
	n := utf8.RuneCountInString(title)
	return n >= TitleMinLen && n <= TitleMaxLen
}

func isValidDescription(description string) bool {
	if strings.TrimSpace(description) == "" {
		return false
	}
	n := utf8.RuneCountInString(description)
	return n >= DescriptionMinLen && n <= DescriptionMaxLen
}

type Task struct {
	ID          int64
	Title       string
	Description string
	Status      TaskStatus
	Priority    TaskPriority
	AssignedTo  *int64
	DueDate     *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type CreateTaskInput struct {
	ID          int64
	Title       string
	Description string
	Status      *TaskStatus
	Priority    *TaskPriority
	AssignedTo  *int64
	DueDate     *time.Time
}

// UpdateTaskInput carries a partial update. Nil pointers mean the field was
// absent from the request; AssignedToSet/DueDateSet distinguish an explicit
// null (clear the field) from an absent field.
type UpdateTaskInput struct {
	Title         *string
	Description   *string
	Status        *TaskStatus
	Priority      *TaskPriority
	AssignedTo    *int64
	AssignedToSet bool
	DueDate       *time.Time
	DueDateSet    bool
}

type StatusTransition struct {
	OldStatus TaskStatus
	NewStatus TaskStatus
	Timestamp time.Time
}

// NewTask validates required fields and explicitly supplied enum values, then
// builds the task with defaults applied. It does not insert anywhere; storage
// is the caller's concern.
func NewTask(input CreateTaskInput) (*Task, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, fmt.Errorf("%w: title", ErrMissingRequiredField)
	}
	if strings.TrimSpace(input.Description) == "" {
		return nil, fmt.Errorf("%w: description", ErrMissingRequiredField)
	}

	status := TaskStatusPending
	if input.Status != nil {
		if !IsValidTaskStatus(*input.Status) {
			return nil, fmt.Errorf("%w: status %q", ErrInvalidEnumValue, *input.Status)
		}
		status = *input.Status
	}

	priority := TaskPriorityMedium
	if input.Priority != nil {
		if !IsValidTaskPriority(*input.Priority) {
			return nil, fmt.Errorf("%w: priority %q", ErrInvalidEnumValue, *input.Priority)
		}
		priority = *input.Priority
	}

	now := time.Now()
	return &Task{
		ID:          input.ID,
		Title:       input.Title,
		Description: input.Description,
		Status:      status,
		Priority:    priority,
		AssignedTo:  input.AssignedTo,
		DueDate:     input.DueDate,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// ApplyUpdate applies each present field independently, dropping invalid
// values while keeping the previous ones. UpdatedAt is refreshed whenever the
// update is applied, even when every field was dropped.
func (t *Task) ApplyUpdate(input UpdateTaskInput) {
	if input.Title != nil && isValidTitle(*input.Title) {
		t.Title = *input.Title
	}
	if input.Description != nil && isValidDescription(*input.Description) {
		t.Description = *input.Description
	}
	if input.Status != nil && IsValidTaskStatus(*input.Status) {
		t.Status = *input.Status
	}
	if input.Priority != nil && IsValidTaskPriority(*input.Priority) {
		t.Priority = *input.Priority
	}
	if input.AssignedToSet {
		t.AssignedTo = input.AssignedTo
	}
	if input.DueDateSet {
		t.DueDate = input.DueDate
	}
	t.UpdatedAt = time.Now()
}

// ChangeStatus is fail-loud: an unknown status leaves the task untouched,
// UpdatedAt included.
func (t *Task) ChangeStatus(newStatus TaskStatus) (StatusTransition, error) {
	if !IsValidTaskStatus(newStatus) {
		return StatusTransition{}, fmt.Errorf("%w: status %q", ErrInvalidEnumValue, newStatus)
	}

	oldStatus := t.Status
	t.Status = newStatus
	t.UpdatedAt = time.Now()

	return StatusTransition{
		OldStatus: oldStatus,
		NewStatus: newStatus,
		Timestamp: t.UpdatedAt,
	}, nil
}

// IsOverdue reports whether the due date has passed for a task that is not
// completed. Tasks without a due date are never overdue.
func (t *Task) IsOverdue() bool {
	if t.DueDate == nil {
		return false
	}
	return time.Now().After(*t.DueDate) && t.Status != TaskStatusCompleted
}

func (t *Task) DaysSinceCreated() int {
	diff := time.Since(t.CreatedAt)
	if diff <= 0 {
		return 0
	}
	return int(math.Ceil(diff.Hours() / 24))
}

func (t *Task) IsCompleted() bool {
	return t.Status == TaskStatusCompleted
}

func (t *Task) IsCancelled() bool {
	return t.Status == TaskStatusCancelled
}
