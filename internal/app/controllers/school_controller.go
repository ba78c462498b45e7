package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mcharewicz/oskplanner/internal/app/models/dto"
	"github.com/mcharewicz/oskplanner/internal/app/services"
	"github.com/mcharewicz/oskplanner/internal/middleware"
)

// SchoolController handles the school profile singleton
type SchoolController struct {
	schoolService *services.SchoolService
}

// NewSchoolController creates a new SchoolController
func NewSchoolController(schoolService *services.SchoolService) *SchoolController {
	return &SchoolController{schoolService: schoolService}
}

// GetSchoolInfo returns the school profile
// @Summary Get school info
// @Tags school
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=models.SchoolInfo} "School info"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /school [get]
func (c *SchoolController) GetSchoolInfo(ctx *gin.Context) {
	info, err := c.schoolService.GetSchoolInfo(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(info))
}

// UpdateSchoolInfo applies a partial update to the school profile
// @Summary Update school info
// @Tags school
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UpdateSchoolInfoRequest true "Fields to change"
// @Success 200 {object} dto.APIResponse{data=models.SchoolInfo} "Updated info"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 403 {object} dto.ErrorResponse "Staff role required"
// @Router /school [put]
func (c *SchoolController) UpdateSchoolInfo(ctx *gin.Context) {
	var req dto.UpdateSchoolInfoRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid school data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	info, err := c.schoolService.UpdateSchoolInfo(ctx, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(info))
}
