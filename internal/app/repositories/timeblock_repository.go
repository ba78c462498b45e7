package repositories

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/mcharewicz/oskplanner/internal/app/models"
)

// TimeBlockRepository owns the instructor time-block collection
type TimeBlockRepository struct {
	mu     sync.RWMutex
	blocks []models.TimeBlock
}

// NewTimeBlockRepository creates a new time block repository
func NewTimeBlockRepository() *TimeBlockRepository {
	return &TimeBlockRepository{}
}

// Create stores a new time block and returns it with its generated ID
func (r *TimeBlockRepository) Create(ctx context.Context, block models.TimeBlock) (models.TimeBlock, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	block.ID = uuid.New().String()
	r.blocks = append(r.blocks, block)
	return block, nil
}

// GetByID retrieves a time block by ID
func (r *TimeBlockRepository) GetByID(ctx context.Context, id string) (models.TimeBlock, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, b := range r.blocks {
		if b.ID == id {
			return b, nil
		}
	}
	return models.TimeBlock{}, ErrTimeBlockNotFound
}

// List returns a snapshot of all time blocks in insertion order
func (r *TimeBlockRepository) List(ctx context.Context) ([]models.TimeBlock, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.TimeBlock, len(r.blocks))
	copy(out, r.blocks)
	return out, nil
}

// Update replaces the stored time block with the same ID
func (r *TimeBlockRepository) Update(ctx context.Context, block models.TimeBlock) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, b := range r.blocks {
		if b.ID == block.ID {
			r.blocks[i] = block
			return nil
		}
	}
	return ErrTimeBlockNotFound
}

// Delete removes the time block with the given ID
func (r *TimeBlockRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, b := range r.blocks {
		if b.ID == id {
			r.blocks = append(r.blocks[:i], r.blocks[i+1:]...)
			return nil
		}
	}
	return ErrTimeBlockNotFound
}
