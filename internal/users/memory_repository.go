package users

import (
	"context"
	"sync"
)

type memoryRepository struct {
	mu      sync.RWMutex
	ordered []User
	byEmail map[string]int
	byID    map[string]int
}

// NewMemoryRepository builds an in-memory user store for tests and local runs.
func NewMemoryRepository() Repository {
	return &memoryRepository{byEmail: make(map[string]int), byID: make(map[string]int)}
}

func (r *memoryRepository) Insert(_ context.Context, user User) InsertOutcome {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.byID[user.ID]; exists {
		return DuplicateKey("id")
	}
	if _, exists := r.byEmail[user.Email]; exists {
		return DuplicateKey("email")
	}
	user.CreatedAt = user.CreatedAt.UTC()
	r.ordered = append(r.ordered, user)
	r.byEmail[user.Email] = len(r.ordered) - 1
	r.byID[user.ID] = len(r.ordered) - 1
	return Created(user)
}

func (r *memoryRepository) ListAll(_ context.Context) ([]User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	users := make([]User, len(r.ordered))
	copy(users, r.ordered)
	return users, nil
}

func (r *memoryRepository) FindByID(_ context.Context, id string) (User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	idx, ok := r.byID[id]
	if !ok {
		return User{}, ErrNotFound
	}
	return r.ordered[idx], nil
}
