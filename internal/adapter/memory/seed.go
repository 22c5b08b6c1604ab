package memory

import (
	"context"
	"time"

	"go.uber.org/zap"

	"taskdesk/internal/core/domain"
)

// Seed fills both repositories with the demo dataset the service ships with.
// Collections live for the process lifetime; there is no teardown.
func Seed(users *UserRepository, tasks *TaskRepository) {
	ctx := context.Background()

	seedUsers := []domain.CreateUserInput{
		{Name: "John Doe", Email: "john@example.com", Role: rolePtr(domain.UserRoleAdmin)},
		{Name: "Jane Smith", Email: "jane@example.com", Role: rolePtr(domain.UserRoleUser)},
	}
	for _, input := range seedUsers {
		user, err := domain.NewUser(input)
		if err != nil {
			zap.L().Warn("invalid seed user", zap.String("email", input.Email), zap.Error(err))
			continue
		}
		if err := users.Create(ctx, user); err != nil {
			zap.L().Warn("could not seed user", zap.String("email", input.Email), zap.Error(err))
		}
	}

	inSevenDays := time.Now().Add(7 * 24 * time.Hour)
	inThreeDays := time.Now().Add(3 * 24 * time.Hour)
	seedTasks := []domain.CreateTaskInput{
		{
			Title:       "Configurer le pipeline CI/CD",
			Description: "Mettre en place GitHub Actions pour l'automatisation",
			Status:      statusPtr(domain.TaskStatusInProgress),
			Priority:    priorityPtr(domain.TaskPriorityHigh),
			AssignedTo:  idPtr(1),
			DueDate:     &inSevenDays,
		},
		{
			Title:       "Écrire les tests unitaires",
			Description: "Couvrir au moins 80% du code avec des tests",
			Status:      statusPtr(domain.TaskStatusPending),
			Priority:    priorityPtr(domain.TaskPriorityMedium),
			AssignedTo:  idPtr(2),
			DueDate:     &inThreeDays,
		},
	}
	for _, input := range seedTasks {
		task, err := domain.NewTask(input)
		if err != nil {
			zap.L().Warn("invalid seed task", zap.String("title", input.Title), zap.Error(err))
			continue
		}
		if err := tasks.Create(ctx, task); err != nil {
			zap.L().Warn("could not seed task", zap.String("title", input.Title), zap.Error(err))
		}
	}
}

func rolePtr(role domain.UserRole) *domain.UserRole          { return &role }
func statusPtr(status domain.TaskStatus) *domain.TaskStatus  { return &status }
func priorityPtr(p domain.TaskPriority) *domain.TaskPriority { return &p }
func idPtr(id int64) *int64                                  { return &id }
