package repositories

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/mcharewicz/oskplanner/internal/app/models"
)

// UserRepository owns the Users and StudentInfo collections. StudentInfo is
// kept here because it is owned 1:1 by a student user and shares its
// lifecycle.
type UserRepository struct {
	mu    sync.RWMutex
	users []models.User
	infos []models.StudentInfo
}

// NewUserRepository creates a new user repository
func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

// Create stores a new user, enforcing username uniqueness. The identifier is
// generated here; callers must not set one.
func (r *UserRepository) Create(ctx context.Context, user models.User) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Username == user.Username {
			return models.User{}, ErrUsernameExists
		}
	}

	user.ID = uuid.New().String()
	r.users = append(r.users, user)
	return user, nil
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id string) (models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return models.User{}, ErrUserNotFound
}

// GetByUsername retrieves a user by username
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return models.User{}, ErrUserNotFound
}

// List returns a snapshot of all users in insertion order
func (r *UserRepository) List(ctx context.Context) ([]models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.User, len(r.users))
	copy(out, r.users)
	return out, nil
}

// ListStudents returns a snapshot of users with the student role
func (r *UserRepository) ListStudents(ctx context.Context) ([]models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.User, 0, len(r.users))
	for _, u := range r.users {
		if u.Role == models.RoleStudent {
			out = append(out, u)
		}
	}
	return out, nil
}

// Update replaces the stored user with the same ID
func (r *UserRepository) Update(ctx context.Context, user models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, u := range r.users {
		if u.ID == user.ID {
			r.users[i] = user
			return nil
		}
	}
	return ErrUserNotFound
}

// Delete removes the user with the given ID. Cascades are orchestrated by
// the user service, not here.
func (r *UserRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, u := range r.users {
		if u.ID == id {
			r.users = append(r.users[:i], r.users[i+1:]...)
			return nil
		}
	}
	return ErrUserNotFound
}

// AnyInGroup reports whether any user references the given group. This is
// the group-deletion guard scan; collections are small, a linear pass is fine.
func (r *UserRepository) AnyInGroup(ctx context.Context, groupID string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.GroupID == groupID {
			return true, nil
		}
	}
	return false, nil
}

// CreateInfo stores the student info record for a user
func (r *UserRepository) CreateInfo(ctx context.Context, info models.StudentInfo) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, si := range r.infos {
		if si.UserID == info.UserID {
			return ErrStudentInfoExists
		}
	}
	r.infos = append(r.infos, info)
	return nil
}

// InfoByUserID retrieves the student info record owned by a user
func (r *UserRepository) InfoByUserID(ctx context.Context, userID string) (models.StudentInfo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, si := range r.infos {
		if si.UserID == userID {
			return si, nil
		}
	}
	return models.StudentInfo{}, ErrUserNotFound
}

// ListInfos returns a snapshot of all student info records
func (r *UserRepository) ListInfos(ctx context.Context) ([]models.StudentInfo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.StudentInfo, len(r.infos))
	copy(out, r.infos)
	return out, nil
}

// UpdateInfo replaces the stored student info with the same user ID
func (r *UserRepository) UpdateInfo(ctx context.Context, info models.StudentInfo) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, si := range r.infos {
		if si.UserID == info.UserID {
			r.infos[i] = info
			return nil
		}
	}
	return ErrUserNotFound
}

// DeleteInfoByUserID removes the student info owned by a user, if any
func (r *UserRepository) DeleteInfoByUserID(ctx context.Context, userID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, si := range r.infos {
		if si.UserID == userID {
			r.infos = append(r.infos[:i], r.infos[i+1:]...)
			return
		}
	}
}
