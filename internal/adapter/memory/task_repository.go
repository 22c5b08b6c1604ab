package memory

import (
	"context"
	"sync"

	"taskdesk/internal/core/domain"
	"taskdesk/internal/core/ports"
)

// TaskRepository keeps tasks in an id-keyed map plus an insertion-order id
// slice. Every operation takes the collection lock, so mutating operations
// are serialized (last-write-wins, nothing stronger).
type TaskRepository struct {
	mtx    sync.RWMutex
	tasks  map[int64]*domain.Task
	ids    []int64
	nextID int64
}

var _ ports.TaskRepository = (*TaskRepository)(nil)

func NewTaskRepository() *TaskRepository {
	return &TaskRepository{
		tasks:  make(map[int64]*domain.Task),
		nextID: 1,
	}
}

func (r *TaskRepository) List(ctx context.Context) ([]domain.Task, error) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	tasks := make([]domain.Task, 0, len(r.ids))
	for _, id := range r.ids {
		tasks = append(tasks, *r.tasks[id])
	}
	return tasks, nil
}

func (r *TaskRepository) GetByID(ctx context.Context, id int64) (domain.Task, error) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	task, ok := r.tasks[id]
	if !ok {
		return domain.Task{}, domain.ErrTaskNotFound
	}
	return *task, nil
}

// Create inserts the task, assigning the next id unless the caller supplied
// one. The counter always moves past the highest id seen so generated ids
// stay unique.
func (r *TaskRepository) Create(ctx context.Context, task *domain.Task) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	if task.ID == 0 {
		task.ID = r.nextID
	}
	if task.ID >= r.nextID {
		r.nextID = task.ID + 1
	}

	stored := *task
	r.tasks[task.ID] = &stored
	r.ids = append(r.ids, task.ID)
	return nil
}

func (r *TaskRepository) Update(ctx context.Context, id int64, input domain.UpdateTaskInput) (domain.Task, error) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	task, ok := r.tasks[id]
	if !ok {
		return domain.Task{}, domain.ErrTaskNotFound
	}

	task.ApplyUpdate(input)
	return *task, nil
}

func (r *TaskRepository) ChangeStatus(ctx context.Context, id int64, status domain.TaskStatus) (domain.Task, domain.StatusTransition, error) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	task, ok := r.tasks[id]
	if !ok {
		return domain.Task{}, domain.StatusTransition{}, domain.ErrTaskNotFound
	}

	transition, err := task.ChangeStatus(status)
	if err != nil {
		return domain.Task{}, domain.StatusTransition{}, err
	}
	return *task, transition, nil
}

func (r *TaskRepository) Delete(ctx context.Context, id int64) (domain.Task, error) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	task, ok := r.tasks[id]
	if !ok {
		return domain.Task{}, domain.ErrTaskNotFound
	}

	delete(r.tasks, id)
	for i, storedID := range r.ids {
		if storedID == id {
			r.ids = append(r.ids[:i], r.ids[i+1:]...)
			break
		}
	}
	return *task, nil
}
