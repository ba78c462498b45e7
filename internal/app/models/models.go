package models

// RoleType defines the user role type
type RoleType string

const (
	RoleStudent    RoleType = "STUDENT"
	RoleInstructor RoleType = "INSTRUCTOR"
	RoleAdmin      RoleType = "ADMIN"
)

// IsStaff reports whether the role may manage the schedule and users.
func (r RoleType) IsStaff() bool {
	return r == RoleInstructor || r == RoleAdmin
}

// Valid reports whether the role is one of the known roles.
func (r RoleType) Valid() bool {
	return r == RoleStudent || r == RoleInstructor || r == RoleAdmin
}

// TimeBlockType defines the kind of an instructor time block
type TimeBlockType string

const (
	BlockLecture     TimeBlockType = "LECTURE"
	BlockUnavailable TimeBlockType = "UNAVAILABLE"
)

// Valid reports whether the block type is known.
func (t TimeBlockType) Valid() bool {
	return t == BlockLecture || t == BlockUnavailable
}

// EventKind discriminates calendar event variants
type EventKind string

const (
	EventLesson    EventKind = "LESSON"
	EventTimeBlock EventKind = "TIME_BLOCK"
)
