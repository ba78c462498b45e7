package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mcharewicz/oskplanner/internal/app/models/dto"
	"github.com/mcharewicz/oskplanner/internal/app/services"
	"github.com/mcharewicz/oskplanner/internal/middleware"
)

// UserController handles account management and student progress
type UserController struct {
	userService *services.UserService
}

// NewUserController creates a new UserController
func NewUserController(userService *services.UserService) *UserController {
	return &UserController{userService: userService}
}

// ListUsers returns every account
// @Summary List users
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.User} "Users"
// @Failure 403 {object} dto.ErrorResponse "Staff role required"
// @Router /users [get]
func (c *UserController) ListUsers(ctx *gin.Context) {
	users, err := c.userService.ListUsers(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(users))
}

// ListStudents returns students joined with their course progress
// @Summary List students
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.StudentOverview} "Students"
// @Failure 403 {object} dto.ErrorResponse "Staff role required"
// @Router /students [get]
func (c *UserController) ListStudents(ctx *gin.Context) {
	students, err := c.userService.ListStudents(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(students))
}

// UpdateUser applies a partial update to an account
// @Summary Update a user
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Param request body dto.UpdateUserRequest true "Fields to change"
// @Success 200 {object} dto.APIResponse{data=models.User} "Updated user"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 403 {object} dto.ErrorResponse "Staff role required"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Router /users/{id} [put]
func (c *UserController) UpdateUser(ctx *gin.Context) {
	var req dto.UpdateUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid user data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	user, err := c.userService.UpdateUser(ctx, ctx.Param("id"), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(user))
}

// DeleteUser removes an account together with its progress record and lessons
// @Summary Delete a user
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {object} dto.SuccessResponse "User deleted"
// @Failure 403 {object} dto.ErrorResponse "Staff role required"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Router /users/{id} [delete]
func (c *UserController) DeleteUser(ctx *gin.Context) {
	if err := c.userService.DeleteUser(ctx, ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "User deleted"})
}

// UpdateStudentProgress adjusts driven hours or payments for a student
// @Summary Update student progress
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Student user ID"
// @Param request body dto.StudentProgressRequest true "Progress fields"
// @Success 200 {object} dto.APIResponse{data=models.StudentInfo} "Updated progress"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 403 {object} dto.ErrorResponse "Staff role required"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/{id}/progress [put]
func (c *UserController) UpdateStudentProgress(ctx *gin.Context) {
	var req dto.StudentProgressRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid progress data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	info, err := c.userService.UpdateStudentProgress(ctx, ctx.Param("id"), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(info))
}
