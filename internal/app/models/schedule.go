package models

import "time"

// Lesson is a scheduled driving session between a student and the instructor
type Lesson struct {
	ID              string    `json:"id"`
	StudentID       string    `json:"studentId"`
	Date            time.Time `json:"date"` // Start of the lesson, minute precision
	PickupAddress   string    `json:"pickupAddress" example:"ul. Glowna 1, Warszawa"`
	DropoffAddress  string    `json:"dropoffAddress" example:"ul. Glowna 1, Warszawa"`
	DurationMinutes int       `json:"durationMinutes" example:"120"`
	Confirmed       bool      `json:"confirmed"` // False until staff accept the booking
}

// TimeBlock is an instructor-defined interval, either a lecture or unavailable time
type TimeBlock struct {
	ID        string        `json:"id"`
	Date      time.Time     `json:"date"` // Calendar day of the block
	StartTime string        `json:"startTime" example:"17:00"` // "HH:mm"
	EndTime   string        `json:"endTime" example:"20:00"`   // "HH:mm"
	Type      TimeBlockType `json:"type" example:"LECTURE"`
	Title     string        `json:"title" example:"Wyklady - teoria"`
}

// DayOff marks a calendar date on which students may not book lessons
type DayOff struct {
	ID   string    `json:"id"`
	Date time.Time `json:"date"` // Truncated to midnight
}

// CalendarEvent is the tagged union of the two event kinds shown in a day cell.
// Exactly one of Lesson and TimeBlock is set, matching Kind.
type CalendarEvent struct {
	Kind        EventKind  `json:"kind" example:"LESSON"`
	Minute      int        `json:"minute"` // Minutes since midnight, the sort key
	Lesson      *Lesson    `json:"lesson,omitempty"`
	TimeBlock   *TimeBlock `json:"timeBlock,omitempty"`
	StudentName string     `json:"studentName,omitempty"` // Resolved for staff viewers only
}

// CalendarDay is one cell of the month grid
type CalendarDay struct {
	Date           time.Time       `json:"date"`
	IsCurrentMonth bool            `json:"isCurrentMonth"`
	IsToday        bool            `json:"isToday"`
	IsDayOff       bool            `json:"isDayOff"`
	Events         []CalendarEvent `json:"events"`
}
