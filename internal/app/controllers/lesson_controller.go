package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mcharewicz/oskplanner/internal/app/models/dto"
	"github.com/mcharewicz/oskplanner/internal/app/services"
	"github.com/mcharewicz/oskplanner/internal/middleware"
)

// LessonController handles lesson booking and the lesson lifecycle
type LessonController struct {
	lessonService   *services.LessonService
	errorLogService *services.ErrorLogService
}

// NewLessonController creates a new LessonController
func NewLessonController(lessonService *services.LessonService, errorLogService *services.ErrorLogService) *LessonController {
	return &LessonController{
		lessonService:   lessonService,
		errorLogService: errorLogService,
	}
}

// ListLessons returns the lessons visible to the viewer
// @Summary List lessons
// @Description Students get their own lessons, staff get all lessons
// @Tags lessons
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Lesson} "Lessons"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /lessons [get]
func (c *LessonController) ListLessons(ctx *gin.Context) {
	lessons, err := c.lessonService.ListForViewer(ctx, currentViewer(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(lessons))
}

// BookLesson creates an unconfirmed lesson for the booking student
// @Summary Book a lesson (student)
// @Description Creates a lesson awaiting confirmation; past dates and days off are rejected
// @Tags lessons
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.BookLessonRequest true "Booking form"
// @Success 201 {object} dto.APIResponse{data=models.Lesson} "Lesson proposed"
// @Failure 400 {object} dto.ErrorResponse "Invalid booking data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /lessons [post]
func (c *LessonController) BookLesson(ctx *gin.Context) {
	var req dto.BookLessonRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		// The original UI logged incomplete booking forms to the error log;
		// the report survives the rejected request.
		_, _ = c.errorLogService.LogError(ctx, "Booking failed: missing data.", "StudentDashboard")
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid booking data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	lesson, err := c.lessonService.StudentBook(ctx, currentViewer(ctx).UserID, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(lesson))
}

// StaffBookLesson creates a confirmed lesson on behalf of a student
// @Summary Book a lesson (staff)
// @Description Creates a lesson that is confirmed from the start
// @Tags lessons
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.StaffLessonRequest true "Booking form"
// @Success 201 {object} dto.APIResponse{data=models.Lesson} "Lesson booked"
// @Failure 400 {object} dto.ErrorResponse "Invalid booking data"
// @Failure 403 {object} dto.ErrorResponse "Staff role required"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /lessons/staff [post]
func (c *LessonController) StaffBookLesson(ctx *gin.Context) {
	var req dto.StaffLessonRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid booking data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	lesson, err := c.lessonService.StaffBook(ctx, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(lesson))
}

// ConfirmLesson confirms a proposed lesson
// @Summary Confirm a lesson
// @Description Marks a lesson as confirmed; confirming twice is a no-op
// @Tags lessons
// @Produce json
// @Security BearerAuth
// @Param id path string true "Lesson ID"
// @Success 200 {object} dto.APIResponse{data=models.Lesson} "Lesson confirmed"
// @Failure 403 {object} dto.ErrorResponse "Staff role required"
// @Failure 404 {object} dto.ErrorResponse "Lesson not found"
// @Router /lessons/{id}/confirm [put]
func (c *LessonController) ConfirmLesson(ctx *gin.Context) {
	lesson, err := c.lessonService.Confirm(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(lesson))
}

// RescheduleLesson moves a lesson to a new date-time
// @Summary Reschedule a lesson
// @Description Changes only the date-time; the confirmed flag is untouched
// @Tags lessons
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Lesson ID"
// @Param request body dto.RescheduleLessonRequest true "New date"
// @Success 200 {object} dto.APIResponse{data=models.Lesson} "Lesson rescheduled"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 403 {object} dto.ErrorResponse "Staff role required"
// @Failure 404 {object} dto.ErrorResponse "Lesson not found"
// @Router /lessons/{id}/reschedule [put]
func (c *LessonController) RescheduleLesson(ctx *gin.Context) {
	var req dto.RescheduleLessonRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid reschedule data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	lesson, err := c.lessonService.Reschedule(ctx, ctx.Param("id"), req.Date)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(lesson))
}

// CancelLesson deletes a lesson
// @Summary Cancel a lesson
// @Description Staff may cancel any lesson; students only their own unconfirmed future lessons
// @Tags lessons
// @Produce json
// @Security BearerAuth
// @Param id path string true "Lesson ID"
// @Success 200 {object} dto.SuccessResponse "Lesson cancelled"
// @Failure 403 {object} dto.ErrorResponse "Cancellation not allowed"
// @Failure 404 {object} dto.ErrorResponse "Lesson not found"
// @Router /lessons/{id} [delete]
func (c *LessonController) CancelLesson(ctx *gin.Context) {
	if err := c.lessonService.Cancel(ctx, ctx.Param("id"), currentViewer(ctx)); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Lesson cancelled"})
}

// UnconfirmedCount returns the number of lessons awaiting confirmation
// @Summary Count unconfirmed lessons
// @Tags lessons
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.UnconfirmedCountResponse} "Count"
// @Failure 403 {object} dto.ErrorResponse "Staff role required"
// @Router /lessons/unconfirmed-count [get]
func (c *LessonController) UnconfirmedCount(ctx *gin.Context) {
	count, err := c.lessonService.UnconfirmedCount(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.UnconfirmedCountResponse{Count: count}))
}
