package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/mcharewicz/oskplanner/internal/app/models"
	"github.com/mcharewicz/oskplanner/internal/app/services"
	"github.com/mcharewicz/oskplanner/internal/middleware"
)

// currentViewer resolves the authenticated viewer from the request context
// populated by the JWT middleware.
func currentViewer(c *gin.Context) services.Viewer {
	return services.Viewer{
		UserID: c.GetString(middleware.ContextUserID),
		Role:   models.RoleType(c.GetString(middleware.ContextRole)),
	}
}
