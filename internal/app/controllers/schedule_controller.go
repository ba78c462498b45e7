package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mcharewicz/oskplanner/internal/app/models/dto"
	"github.com/mcharewicz/oskplanner/internal/app/services"
	"github.com/mcharewicz/oskplanner/internal/middleware"
)

// ScheduleController handles time blocks and days off
type ScheduleController struct {
	scheduleService *services.ScheduleService
}

// NewScheduleController creates a new ScheduleController
func NewScheduleController(scheduleService *services.ScheduleService) *ScheduleController {
	return &ScheduleController{scheduleService: scheduleService}
}

// ListBlocks returns all time blocks
// @Summary List time blocks
// @Tags schedule
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.TimeBlock} "Time blocks"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /schedule/blocks [get]
func (c *ScheduleController) ListBlocks(ctx *gin.Context) {
	blocks, err := c.scheduleService.ListBlocks(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(blocks))
}

// AddBlock creates a lecture or unavailability block
// @Summary Add a time block
// @Tags schedule
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.TimeBlockRequest true "Block form"
// @Success 201 {object} dto.APIResponse{data=models.TimeBlock} "Block created"
// @Failure 400 {object} dto.ErrorResponse "Invalid block data"
// @Failure 403 {object} dto.ErrorResponse "Staff role required"
// @Router /schedule/blocks [post]
func (c *ScheduleController) AddBlock(ctx *gin.Context) {
	var req dto.TimeBlockRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid block data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	block, err := c.scheduleService.AddBlock(ctx, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(block))
}

// RescheduleBlock moves a time block to a new day or time range
// @Summary Reschedule a time block
// @Tags schedule
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Block ID"
// @Param request body dto.RescheduleBlockRequest true "New date and times"
// @Success 200 {object} dto.APIResponse{data=models.TimeBlock} "Block rescheduled"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 403 {object} dto.ErrorResponse "Staff role required"
// @Failure 404 {object} dto.ErrorResponse "Block not found"
// @Router /schedule/blocks/{id}/reschedule [put]
func (c *ScheduleController) RescheduleBlock(ctx *gin.Context) {
	var req dto.RescheduleBlockRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid reschedule data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	block, err := c.scheduleService.RescheduleBlock(ctx, ctx.Param("id"), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(block))
}

// DeleteBlock removes a time block
// @Summary Delete a time block
// @Tags schedule
// @Produce json
// @Security BearerAuth
// @Param id path string true "Block ID"
// @Success 200 {object} dto.SuccessResponse "Block deleted"
// @Failure 403 {object} dto.ErrorResponse "Staff role required"
// @Failure 404 {object} dto.ErrorResponse "Block not found"
// @Router /schedule/blocks/{id} [delete]
func (c *ScheduleController) DeleteBlock(ctx *gin.Context) {
	if err := c.scheduleService.DeleteBlock(ctx, ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Block deleted"})
}

// ListDaysOff returns all days marked as off
// @Summary List days off
// @Tags schedule
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.DayOff} "Days off"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /schedule/days-off [get]
func (c *ScheduleController) ListDaysOff(ctx *gin.Context) {
	days, err := c.scheduleService.ListDaysOff(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(days))
}

// ToggleDayOff marks a day as off or clears the mark
// @Summary Toggle a day off
// @Description Marks the given date as a day off; toggling again restores it
// @Tags schedule
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.ToggleDayOffRequest true "Date to toggle"
// @Success 200 {object} dto.APIResponse{data=map[string]bool} "Toggle result"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 403 {object} dto.ErrorResponse "Staff role required"
// @Router /schedule/days-off/toggle [post]
func (c *ScheduleController) ToggleDayOff(ctx *gin.Context) {
	var req dto.ToggleDayOffRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	added, err := c.scheduleService.ToggleDayOff(ctx, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(gin.H{"dayOff": added}))
}
