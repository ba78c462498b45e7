package repositories

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mcharewicz/oskplanner/internal/app/models"
)

// ErrorLogRepository owns the append-only application error log, kept
// newest first.
type ErrorLogRepository struct {
	mu     sync.RWMutex
	errors []models.AppError
}

// NewErrorLogRepository creates a new error log repository
func NewErrorLogRepository() *ErrorLogRepository {
	return &ErrorLogRepository{}
}

// Append prepends a new entry to the log
func (r *ErrorLogRepository) Append(ctx context.Context, message, component string) (models.AppError, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry := models.AppError{
		ID:        uuid.New().String(),
		Timestamp: time.Now(),
		Message:   message,
		Component: component,
	}
	r.errors = append([]models.AppError{entry}, r.errors...)
	return entry, nil
}

// List returns a snapshot of the log, newest first
func (r *ErrorLogRepository) List(ctx context.Context) ([]models.AppError, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.AppError, len(r.errors))
	copy(out, r.errors)
	return out, nil
}
