package models

// User defines an account known to the school: student, instructor or admin
type User struct {
	ID       string   `json:"id" example:"6e1f5f3e-945c-4a44-a9d8-0b7a0d3a3a21"` // Unique identifier
	Name     string   `json:"name" example:"Jan"`                                // First name
	Surname  string   `json:"surname" example:"Kowalski"`                        // Last name
	Role     RoleType `json:"role" example:"STUDENT"`                            // User's role
	Username string   `json:"username" example:"jkowalski"`                      // Login name, unique across users
	Password string   `json:"-"`                                                 // Bcrypt hash, excluded from JSON
	GroupID  string   `json:"groupId,omitempty"`                                 // Optional course group reference
}

// FullName returns the display name used on calendar events.
func (u *User) FullName() string {
	return u.Name + " " + u.Surname
}

// StudentInfo holds the course progress and billing record owned 1:1 by a student user
type StudentInfo struct {
	UserID          string  `json:"userId"`
	HoursDriven     float64 `json:"hoursDriven" example:"15"`
	AmountPaid      float64 `json:"amountPaid" example:"1500"`
	TotalCourseCost float64 `json:"totalCourseCost" example:"3000"`
	PKKNumber       string  `json:"pkkNumber" example:"12345678901234567890"` // Official driver-training registration number
}
