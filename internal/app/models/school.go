package models

import "time"

// Group is a named course group students can be assigned to
type Group struct {
	ID   string `json:"id"`
	Name string `json:"name" example:"Grupa A (Weekendowa)"`
}

// SchoolInfo is the singleton record describing the school itself
type SchoolInfo struct {
	Name           string  `json:"name" example:"Osrodek Szkolenia Kierowcow DZIESIATKA"`
	InstructorName string  `json:"instructorName" example:"Krzysztof Charewicz"`
	Phone          string  `json:"phone" example:"695 022 251"`
	Email          string  `json:"email" example:"kontakt@dziesiatka.pl"`
	CoursePrice    float64 `json:"coursePrice" example:"3000"`
}

// AppError is one entry of the append-only in-session error log
type AppError struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Message   string    `json:"message" example:"Booking failed: missing data."`
	Component string    `json:"component" example:"StudentDashboard"`
}
