package repositories

import (
	"context"
	"sync"

	"github.com/mcharewicz/oskplanner/internal/app/models"
)

// SchoolRepository owns the singleton school-info record
type SchoolRepository struct {
	mu   sync.RWMutex
	info models.SchoolInfo
}

// NewSchoolRepository creates a new school repository
func NewSchoolRepository() *SchoolRepository {
	return &SchoolRepository{}
}

// Get returns a copy of the school record
func (r *SchoolRepository) Get(ctx context.Context) (models.SchoolInfo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.info, nil
}

// Set replaces the school record in place
func (r *SchoolRepository) Set(ctx context.Context, info models.SchoolInfo) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.info = info
	return nil
}
