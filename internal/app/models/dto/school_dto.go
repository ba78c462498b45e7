package dto

// GroupRequest creates or renames a course group
type GroupRequest struct {
	Name string `json:"name" binding:"required" example:"Grupa C (Wieczorowa)"`
}

// UpdateSchoolInfoRequest carries partial edits of the school record.
// Nil fields are left untouched.
type UpdateSchoolInfoRequest struct {
	Name           *string  `json:"name,omitempty"`
	InstructorName *string  `json:"instructorName,omitempty"`
	Phone          *string  `json:"phone,omitempty"`
	Email          *string  `json:"email,omitempty"`
	CoursePrice    *float64 `json:"coursePrice,omitempty" binding:"omitempty,min=0"`
}

// LogErrorRequest appends an entry to the in-session error log
type LogErrorRequest struct {
	Message   string `json:"message" binding:"required"`
	Component string `json:"component" binding:"required"`
}
