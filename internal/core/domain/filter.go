package domain

// TaskFilter narrows a task collection. Nil pointers mean the filter is not
// applied; a present pointer always applies, so zero values like
// AssignedTo=0 still filter.
type TaskFilter struct {
	Status     *TaskStatus
	Priority   *TaskPriority
	AssignedTo *int64
	Overdue    *bool
}

// UserFilter narrows a user collection.
type UserFilter struct {
	Role *UserRole
}

// FilterTasks returns the subset of tasks matching every present filter,
// preserving relative order. The source slice is never mutated.
func FilterTasks(tasks []Task, filter TaskFilter) []Task {
	filtered := make([]Task, 0, len(tasks))
	for _, task := range tasks {
		if filter.Status != nil && task.Status != *filter.Status {
			continue
		}
		if filter.Priority != nil && task.Priority != *filter.Priority {
			continue
		}
		if filter.AssignedTo != nil {
			if task.AssignedTo == nil || *task.AssignedTo != *filter.AssignedTo {
				continue
			}
		}
		if filter.Overdue != nil && task.IsOverdue() != *filter.Overdue {
			continue
		}
		filtered = append(filtered, task)
	}
	return filtered
}

func FilterUsers(users []User, filter UserFilter) []User {
	filtered := make([]User, 0, len(users))
	for _, user := range users {
		if filter.Role != nil && user.Role != *filter.Role {
			continue
		}
		filtered = append(filtered, user)
	}
	return filtered
}
