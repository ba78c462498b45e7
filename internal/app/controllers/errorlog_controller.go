package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mcharewicz/oskplanner/internal/app/models/dto"
	"github.com/mcharewicz/oskplanner/internal/app/services"
	"github.com/mcharewicz/oskplanner/internal/middleware"
)

// ErrorLogController handles the in-app error report log
type ErrorLogController struct {
	errorLogService *services.ErrorLogService
}

// NewErrorLogController creates a new ErrorLogController
func NewErrorLogController(errorLogService *services.ErrorLogService) *ErrorLogController {
	return &ErrorLogController{errorLogService: errorLogService}
}

// LogError appends a report to the error log
// @Summary Report an application error
// @Tags errors
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.LogErrorRequest true "Error report"
// @Success 201 {object} dto.APIResponse{data=models.AppError} "Report stored"
// @Failure 400 {object} dto.ErrorResponse "Invalid report data"
// @Router /errors [post]
func (c *ErrorLogController) LogError(ctx *gin.Context) {
	var req dto.LogErrorRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid report data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	report, err := c.errorLogService.LogError(ctx, req.Message, req.Component)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(report))
}

// ListErrors returns stored reports, newest first
// @Summary List error reports
// @Tags errors
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.AppError} "Reports"
// @Failure 403 {object} dto.ErrorResponse "Staff role required"
// @Router /errors [get]
func (c *ErrorLogController) ListErrors(ctx *gin.Context) {
	reports, err := c.errorLogService.ListErrors(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(reports))
}
