package repositories

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/mcharewicz/oskplanner/internal/app/models"
)

// LessonRepository owns the Lessons collection
type LessonRepository struct {
	mu      sync.RWMutex
	lessons []models.Lesson
}

// NewLessonRepository creates a new lesson repository
func NewLessonRepository() *LessonRepository {
	return &LessonRepository{}
}

// Create stores a new lesson and returns it with its generated ID
func (r *LessonRepository) Create(ctx context.Context, lesson models.Lesson) (models.Lesson, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	lesson.ID = uuid.New().String()
	r.lessons = append(r.lessons, lesson)
	return lesson, nil
}

// GetByID retrieves a lesson by ID
func (r *LessonRepository) GetByID(ctx context.Context, id string) (models.Lesson, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, l := range r.lessons {
		if l.ID == id {
			return l, nil
		}
	}
	return models.Lesson{}, ErrLessonNotFound
}

// List returns a snapshot of all lessons ordered by date. Only per-day
// ordering is a contract anywhere; the global sort mirrors how the lesson
// list has always been displayed.
func (r *LessonRepository) List(ctx context.Context) ([]models.Lesson, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Lesson, len(r.lessons))
	copy(out, r.lessons)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

// ListByStudent returns a snapshot of one student's lessons ordered by date
func (r *LessonRepository) ListByStudent(ctx context.Context, studentID string) ([]models.Lesson, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Lesson, 0)
	for _, l := range r.lessons {
		if l.StudentID == studentID {
			out = append(out, l)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

// Update replaces the stored lesson with the same ID
func (r *LessonRepository) Update(ctx context.Context, lesson models.Lesson) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, l := range r.lessons {
		if l.ID == lesson.ID {
			r.lessons[i] = lesson
			return nil
		}
	}
	return ErrLessonNotFound
}

// Confirm sets the confirmed flag on a lesson. Confirming an already
// confirmed lesson leaves it unchanged.
func (r *LessonRepository) Confirm(ctx context.Context, id string) (models.Lesson, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, l := range r.lessons {
		if l.ID == id {
			r.lessons[i].Confirmed = true
			return r.lessons[i], nil
		}
	}
	return models.Lesson{}, ErrLessonNotFound
}

// Delete removes the lesson with the given ID
func (r *LessonRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, l := range r.lessons {
		if l.ID == id {
			r.lessons = append(r.lessons[:i], r.lessons[i+1:]...)
			return nil
		}
	}
	return ErrLessonNotFound
}

// DeleteByStudent removes every lesson referencing the given student and
// returns how many were removed. Used by the user-deletion cascade.
func (r *LessonRepository) DeleteByStudent(ctx context.Context, studentID string) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	kept := r.lessons[:0]
	removed := 0
	for _, l := range r.lessons {
		if l.StudentID == studentID {
			removed++
			continue
		}
		kept = append(kept, l)
	}
	r.lessons = kept
	return removed
}

// CountUnconfirmed returns the number of lessons still awaiting confirmation
func (r *LessonRepository) CountUnconfirmed(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	count := 0
	for _, l := range r.lessons {
		if !l.Confirmed {
			count++
		}
	}
	return count, nil
}
