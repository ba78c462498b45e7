package dto

import "github.com/mcharewicz/oskplanner/internal/app/models"

// UpdateUserRequest carries partial user edits from the management panel.
// Nil fields are left untouched.
type UpdateUserRequest struct {
	Name    *string          `json:"name,omitempty"`
	Surname *string          `json:"surname,omitempty"`
	Role    *models.RoleType `json:"role,omitempty"`
	GroupID *string          `json:"groupId,omitempty"`
}

// StudentProgressRequest updates the billing/progress fields staff may edit
type StudentProgressRequest struct {
	HoursDriven *float64 `json:"hoursDriven,omitempty" binding:"omitempty,min=0"`
	AmountPaid  *float64 `json:"amountPaid,omitempty" binding:"omitempty,min=0"`
}

// StudentOverview joins a student user with its info record for staff listings
type StudentOverview struct {
	User        *models.User        `json:"user"`
	Info        *models.StudentInfo `json:"info,omitempty"`
	LessonCount int                 `json:"lessonCount"`
}
