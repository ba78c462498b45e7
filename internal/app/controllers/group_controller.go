package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mcharewicz/oskplanner/internal/app/models/dto"
	"github.com/mcharewicz/oskplanner/internal/app/services"
	"github.com/mcharewicz/oskplanner/internal/middleware"
)

// GroupController handles course groups
type GroupController struct {
	groupService *services.GroupService
}

// NewGroupController creates a new GroupController
func NewGroupController(groupService *services.GroupService) *GroupController {
	return &GroupController{groupService: groupService}
}

// ListGroups returns every course group
// @Summary List groups
// @Tags groups
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Group} "Groups"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /groups [get]
func (c *GroupController) ListGroups(ctx *gin.Context) {
	groups, err := c.groupService.ListGroups(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(groups))
}

// CreateGroup creates a course group
// @Summary Create a group
// @Tags groups
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.GroupRequest true "Group name"
// @Success 201 {object} dto.APIResponse{data=models.Group} "Group created"
// @Failure 400 {object} dto.ErrorResponse "Invalid group data"
// @Failure 403 {object} dto.ErrorResponse "Staff role required"
// @Router /groups [post]
func (c *GroupController) CreateGroup(ctx *gin.Context) {
	var req dto.GroupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid group data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	group, err := c.groupService.CreateGroup(ctx, req.Name)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(group))
}

// RenameGroup changes a group's name
// @Summary Rename a group
// @Tags groups
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Group ID"
// @Param request body dto.GroupRequest true "New name"
// @Success 200 {object} dto.APIResponse{data=models.Group} "Group renamed"
// @Failure 400 {object} dto.ErrorResponse "Invalid group data"
// @Failure 403 {object} dto.ErrorResponse "Staff role required"
// @Failure 404 {object} dto.ErrorResponse "Group not found"
// @Router /groups/{id} [put]
func (c *GroupController) RenameGroup(ctx *gin.Context) {
	var req dto.GroupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid group data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	group, err := c.groupService.RenameGroup(ctx, ctx.Param("id"), req.Name)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(group))
}

// DeleteGroup removes a group with no assigned members
// @Summary Delete a group
// @Description Fails with a conflict while any user is still assigned to the group
// @Tags groups
// @Produce json
// @Security BearerAuth
// @Param id path string true "Group ID"
// @Success 200 {object} dto.SuccessResponse "Group deleted"
// @Failure 403 {object} dto.ErrorResponse "Staff role required"
// @Failure 404 {object} dto.ErrorResponse "Group not found"
// @Failure 409 {object} dto.ErrorResponse "Group still has members"
// @Router /groups/{id} [delete]
func (c *GroupController) DeleteGroup(ctx *gin.Context) {
	if err := c.groupService.DeleteGroup(ctx, ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Group deleted"})
}
