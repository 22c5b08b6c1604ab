package memory

import (
	"context"
	"sync"

	"taskdesk/internal/core/domain"
	"taskdesk/internal/core/ports"
)

// UserRepository mirrors TaskRepository and additionally enforces the
// collection-level email uniqueness invariant.
type UserRepository struct {
	mtx    sync.RWMutex
	users  map[int64]*domain.User
	ids    []int64
	nextID int64
}

var _ ports.UserRepository = (*UserRepository)(nil)

func NewUserRepository() *UserRepository {
	return &UserRepository{
		users:  make(map[int64]*domain.User),
		nextID: 1,
	}
}

func (r *UserRepository) List(ctx context.Context) ([]domain.User, error) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	users := make([]domain.User, 0, len(r.ids))
	for _, id := range r.ids {
		users = append(users, *r.users[id])
	}
	return users, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (domain.User, error) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return domain.User{}, domain.ErrUserNotFound
	}
	return *user, nil
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	if r.emailTaken(user.Email, 0) {
		return domain.ErrDuplicateEmail
	}

	if user.ID == 0 {
		user.ID = r.nextID
	}
	if user.ID >= r.nextID {
		r.nextID = user.ID + 1
	}

	stored := *user
	r.users[user.ID] = &stored
	r.ids = append(r.ids, user.ID)
	return nil
}

// Update rejects the whole operation on an email conflict; any other invalid
// field is dropped by the entity itself. A user keeping their own email is
// not a conflict.
func (r *UserRepository) Update(ctx context.Context, id int64, input domain.UpdateUserInput) (domain.User, error) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	user, ok := r.users[id]
	if !ok {
		return domain.User{}, domain.ErrUserNotFound
	}

	if input.Email != nil && domain.IsValidEmail(*input.Email) && r.emailTaken(*input.Email, id) {
		return domain.User{}, domain.ErrDuplicateEmail
	}

	user.ApplyUpdate(input)
	return *user, nil
}

func (r *UserRepository) Delete(ctx context.Context, id int64) (domain.User, error) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	user, ok := r.users[id]
	if !ok {
		return domain.User{}, domain.ErrUserNotFound
	}

	delete(r.users, id)
	for i, storedID := range r.ids {
		if storedID == id {
			r.ids = append(r.ids[:i], r.ids[i+1:]...)
			break
		}
	}
	return *user, nil
}

// emailTaken must be called with the lock held. excludeID skips the user
// being updated.
func (r *UserRepository) emailTaken(email string, excludeID int64) bool {
	for id, user := range r.users {
		if id == excludeID {
			continue
		}
		if user.Email == email {
			return true
		}
	}
	return false
}
