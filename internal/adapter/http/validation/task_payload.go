package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"time"

	"taskdesk/internal/adapter/http/dto"
	"taskdesk/internal/core/domain"
)

var ErrInvalidPayload = errors.New("invalid payload")

// Due dates are accepted as RFC 3339 or plain dates.
var dueDateLayouts = []string{time.RFC3339, "2006-01-02"}

func BuildCreateTaskInput(req dto.CreateTaskRequest) (domain.CreateTaskInput, error) {
	input := domain.CreateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		AssignedTo:  req.AssignedTo,
	}

	if req.Status != nil {
		value := domain.TaskStatus(*req.Status)
		input.Status = &value
	}
	if req.Priority != nil {
		value := domain.TaskPriority(*req.Priority)
		input.Priority = &value
	}
	if req.DueDate != nil {
		dueDate, err := parseDueDate(*req.DueDate)
		if err != nil {
			return domain.CreateTaskInput{}, ErrInvalidPayload
		}
		input.DueDate = &dueDate
	}

	return input, nil
}

// BuildUpdateTaskInput reads field presence from the raw body so an explicit
// null on assignedTo/dueDate clears the field while an absent key leaves it
// alone. A malformed due date is dropped like any other invalid field.
func BuildUpdateTaskInput(req dto.UpdateTaskRequest, raw map[string]json.RawMessage) domain.UpdateTaskInput {
	input := domain.UpdateTaskInput{
		Title:       req.Title,
		Description: req.Description,
	}

	if req.Status != nil {
		value := domain.TaskStatus(*req.Status)
		input.Status = &value
	}
	if req.Priority != nil {
		value := domain.TaskPriority(*req.Priority)
		input.Priority = &value
	}

	if hasJSONField(raw, "assignedTo") {
		input.AssignedToSet = true
		input.AssignedTo = req.AssignedTo
	}

	if hasJSONField(raw, "dueDate") {
		if isJSONNull(raw["dueDate"]) {
			input.DueDateSet = true
		} else if req.DueDate != nil {
			if dueDate, err := parseDueDate(*req.DueDate); err == nil {
				input.DueDateSet = true
				input.DueDate = &dueDate
			}
		}
	}

	return input
}

func parseDueDate(value string) (time.Time, error) {
	var lastErr error
	for _, layout := range dueDateLayouts {
		parsed, err := time.Parse(layout, value)
		if err == nil {
			return parsed, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

func hasJSONField(raw map[string]json.RawMessage, field string) bool {
	_, ok := raw[field]
	return ok
}

func isJSONNull(value json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(value), []byte("null"))
}
