package services

import "github.com/mcharewicz/oskplanner/internal/app/models"

// Viewer identifies the authenticated user a read or mutation is performed
// as. Role-based visibility and the cancel rules key off it.
type Viewer struct {
	UserID string
	Role   models.RoleType
}
