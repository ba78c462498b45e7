package repositories

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/mcharewicz/oskplanner/internal/app/models"
)

// GroupRepository owns the course-group collection
type GroupRepository struct {
	mu     sync.RWMutex
	groups []models.Group
}

// NewGroupRepository creates a new group repository
func NewGroupRepository() *GroupRepository {
	return &GroupRepository{}
}

// Create stores a new group and returns it with its generated ID
func (r *GroupRepository) Create(ctx context.Context, name string) (models.Group, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	group := models.Group{
		ID:   uuid.New().String(),
		Name: name,
	}
	r.groups = append(r.groups, group)
	return group, nil
}

// GetByID retrieves a group by ID
func (r *GroupRepository) GetByID(ctx context.Context, id string) (models.Group, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, g := range r.groups {
		if g.ID == id {
			return g, nil
		}
	}
	return models.Group{}, ErrGroupNotFound
}

// List returns a snapshot of all groups in insertion order
func (r *GroupRepository) List(ctx context.Context) ([]models.Group, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Group, len(r.groups))
	copy(out, r.groups)
	return out, nil
}

// Update renames the group with the given ID
func (r *GroupRepository) Update(ctx context.Context, id, name string) (models.Group, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, g := range r.groups {
		if g.ID == id {
			r.groups[i].Name = name
			return r.groups[i], nil
		}
	}
	return models.Group{}, ErrGroupNotFound
}

// Delete removes the group with the given ID. The in-use guard lives in the
// group service, which checks user references before calling this.
func (r *GroupRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, g := range r.groups {
		if g.ID == id {
			r.groups = append(r.groups[:i], r.groups[i+1:]...)
			return nil
		}
	}
	return ErrGroupNotFound
}
