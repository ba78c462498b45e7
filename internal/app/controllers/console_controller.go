package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mcharewicz/oskplanner/internal/app/models/dto"
	"github.com/mcharewicz/oskplanner/internal/app/repositories"
	"github.com/mcharewicz/oskplanner/internal/middleware"
	"github.com/mcharewicz/oskplanner/internal/pkg/apperrors"
)

// ConsoleController exposes read-only snapshots of the store collections
// for administrative inspection. It replaces ad hoc debug hooks with a
// proper authenticated surface.
type ConsoleController struct {
	repos *repositories.Repositories
}

// NewConsoleController creates a new ConsoleController
func NewConsoleController(repos *repositories.Repositories) *ConsoleController {
	return &ConsoleController{repos: repos}
}

// Collections returns the names of the inspectable collections
// @Summary List console collections
// @Tags console
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]string} "Collection names"
// @Failure 403 {object} dto.ErrorResponse "Admin role required"
// @Router /console [get]
func (c *ConsoleController) Collections(ctx *gin.Context) {
	names := []string{
		"users", "student-infos", "lessons", "time-blocks",
		"days-off", "groups", "school", "errors",
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(names))
}

// Dump returns a snapshot of one collection
// @Summary Dump a store collection
// @Tags console
// @Produce json
// @Security BearerAuth
// @Param collection path string true "Collection name"
// @Success 200 {object} dto.APIResponse "Collection snapshot"
// @Failure 403 {object} dto.ErrorResponse "Admin role required"
// @Failure 404 {object} dto.ErrorResponse "Unknown collection"
// @Router /console/{collection} [get]
func (c *ConsoleController) Dump(ctx *gin.Context) {
	var (
		data interface{}
		err  error
	)

	switch ctx.Param("collection") {
	case "users":
		data, err = c.repos.UserRepository.List(ctx)
	case "student-infos":
		data, err = c.repos.UserRepository.ListInfos(ctx)
	case "lessons":
		data, err = c.repos.LessonRepository.List(ctx)
	case "time-blocks":
		data, err = c.repos.TimeBlockRepository.List(ctx)
	case "days-off":
		data, err = c.repos.DayOffRepository.List(ctx)
	case "groups":
		data, err = c.repos.GroupRepository.List(ctx)
	case "school":
		data, err = c.repos.SchoolRepository.Get(ctx)
	case "errors":
		data, err = c.repos.ErrorLogRepository.List(ctx)
	default:
		middleware.HandleAPIError(ctx, apperrors.NewResourceNotFoundError("unknown collection"))
		return
	}
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(data))
}
