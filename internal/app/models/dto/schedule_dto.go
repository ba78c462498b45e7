package dto

import (
	"time"

	"github.com/mcharewicz/oskplanner/internal/app/models"
)

// BookLessonRequest is the student booking form
type BookLessonRequest struct {
	Date            time.Time `json:"date" binding:"required"`
	PickupAddress   string    `json:"pickupAddress" binding:"required"`
	DropoffAddress  string    `json:"dropoffAddress" binding:"required"`
	DurationMinutes int       `json:"durationMinutes" binding:"required,min=30,max=240"`
}

// StaffLessonRequest is the staff booking form; the lesson is created confirmed
type StaffLessonRequest struct {
	StudentID       string    `json:"studentId" binding:"required"`
	Date            time.Time `json:"date" binding:"required"`
	PickupAddress   string    `json:"pickupAddress" binding:"required"`
	DropoffAddress  string    `json:"dropoffAddress" binding:"required"`
	DurationMinutes int       `json:"durationMinutes" binding:"required,min=30,max=240"`
}

// RescheduleLessonRequest moves a lesson to a new date-time
type RescheduleLessonRequest struct {
	Date time.Time `json:"date" binding:"required"`
}

// TimeBlockRequest creates an instructor time block
type TimeBlockRequest struct {
	Date      time.Time            `json:"date" binding:"required"`
	StartTime string               `json:"startTime" binding:"required" example:"17:00"`
	EndTime   string               `json:"endTime" binding:"required" example:"20:00"`
	Type      models.TimeBlockType `json:"type" binding:"required" example:"LECTURE"`
	Title     string               `json:"title"`
}

// RescheduleBlockRequest moves a time block
type RescheduleBlockRequest struct {
	Date      time.Time `json:"date" binding:"required"`
	StartTime string    `json:"startTime" binding:"required" example:"09:00"`
	EndTime   string    `json:"endTime" binding:"required" example:"11:00"`
}

// ToggleDayOffRequest toggles the day-off flag for a calendar date
type ToggleDayOffRequest struct {
	Date time.Time `json:"date" binding:"required"`
}

// UnconfirmedCountResponse carries the instructor dashboard badge count
type UnconfirmedCountResponse struct {
	Count int `json:"count" example:"2"`
}
