package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mcharewicz/oskplanner/internal/app/models/dto"
	"github.com/mcharewicz/oskplanner/internal/app/services"
	"github.com/mcharewicz/oskplanner/internal/middleware"
)

// CalendarController serves the month grid
type CalendarController struct {
	calendarService *services.CalendarService
}

// NewCalendarController creates a new CalendarController
func NewCalendarController(calendarService *services.CalendarService) *CalendarController {
	return &CalendarController{
		calendarService: calendarService,
	}
}

// GetMonthGrid returns the calendar grid for a month
// @Summary Get the month grid
// @Description Returns whole-week rows of days with role-filtered, time-ordered events. Defaults to the current month.
// @Tags calendar
// @Produce json
// @Security BearerAuth
// @Param year query int false "Year (defaults to current)"
// @Param month query int false "Month 1-12 (defaults to current)"
// @Success 200 {object} dto.APIResponse{data=[]models.CalendarDay} "Month grid"
// @Failure 400 {object} dto.ErrorResponse "Invalid year or month"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /calendar [get]
func (c *CalendarController) GetMonthGrid(ctx *gin.Context) {
	now := time.Now()
	year := now.Year()
	month := int(now.Month())

	if yearStr := ctx.Query("year"); yearStr != "" {
		parsed, err := strconv.Atoi(yearStr)
		if err != nil {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid year").WithField("year")
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
			return
		}
		year = parsed
	}
	if monthStr := ctx.Query("month"); monthStr != "" {
		parsed, err := strconv.Atoi(monthStr)
		if err != nil || parsed < 1 || parsed > 12 {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Month must be between 1 and 12").WithField("month")
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
			return
		}
		month = parsed
	}

	grid, err := c.calendarService.MonthGrid(ctx, year, time.Month(month), currentViewer(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(grid))
}
