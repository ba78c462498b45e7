package repositories

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mcharewicz/oskplanner/internal/app/models"
	"github.com/mcharewicz/oskplanner/internal/pkg/helpers"
)

// DayOffRepository owns the day-off collection. At most one record exists
// per calendar date; dates are stored truncated to midnight.
type DayOffRepository struct {
	mu      sync.RWMutex
	daysOff []models.DayOff
}

// NewDayOffRepository creates a new day-off repository
func NewDayOffRepository() *DayOffRepository {
	return &DayOffRepository{}
}

// Toggle flips the day-off state of a calendar date. It returns true when a
// record was added, false when an existing record was removed.
func (r *DayOffRepository) Toggle(ctx context.Context, date time.Time) (bool, error) {
	day := helpers.DayStart(date)

	r.mu.Lock()
	defer r.mu.Unlock()

	for i, d := range r.daysOff {
		if helpers.SameDay(d.Date, day) {
			r.daysOff = append(r.daysOff[:i], r.daysOff[i+1:]...)
			return false, nil
		}
	}

	r.daysOff = append(r.daysOff, models.DayOff{
		ID:   uuid.New().String(),
		Date: day,
	})
	return true, nil
}

// IsDayOff reports whether the given calendar date is marked as a day off
func (r *DayOffRepository) IsDayOff(ctx context.Context, date time.Time) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, d := range r.daysOff {
		if helpers.SameDay(d.Date, date) {
			return true, nil
		}
	}
	return false, nil
}

// List returns a snapshot of all day-off records in insertion order
func (r *DayOffRepository) List(ctx context.Context) ([]models.DayOff, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.DayOff, len(r.daysOff))
	copy(out, r.daysOff)
	return out, nil
}
