// Package repositories holds the in-memory entity store. All application
// state lives here for exactly one process session; there is no persistence.
// Every read returns a fresh snapshot copy, so callers never observe a
// mutation through a previously returned slice or struct.
package repositories

import "errors"

// Repository error types
var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUsernameExists    = errors.New("username already exists")
	ErrStudentInfoExists = errors.New("student info already exists for user")
	ErrLessonNotFound    = errors.New("lesson not found")
	ErrTimeBlockNotFound = errors.New("time block not found")
	ErrGroupNotFound     = errors.New("group not found")
	ErrGroupInUse        = errors.New("group is referenced by at least one user")
)

// Repositories bundles all entity repositories sharing one in-memory store
type Repositories struct {
	UserRepository      *UserRepository
	LessonRepository    *LessonRepository
	TimeBlockRepository *TimeBlockRepository
	DayOffRepository    *DayOffRepository
	GroupRepository     *GroupRepository
	SchoolRepository    *SchoolRepository
	ErrorLogRepository  *ErrorLogRepository
}

// NewRepositories creates all repositories with empty collections
func NewRepositories() *Repositories {
	return &Repositories{
		UserRepository:      NewUserRepository(),
		LessonRepository:    NewLessonRepository(),
		TimeBlockRepository: NewTimeBlockRepository(),
		DayOffRepository:    NewDayOffRepository(),
		GroupRepository:     NewGroupRepository(),
		SchoolRepository:    NewSchoolRepository(),
		ErrorLogRepository:  NewErrorLogRepository(),
	}
}
