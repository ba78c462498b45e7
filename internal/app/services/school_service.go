package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/mcharewicz/oskplanner/internal/app/models"
	"github.com/mcharewicz/oskplanner/internal/app/models/dto"
	"github.com/mcharewicz/oskplanner/internal/app/repositories"
)

// SchoolService manages the singleton school record
type SchoolService struct {
	schoolRepo *repositories.SchoolRepository
	logger     zerolog.Logger
}

// NewSchoolService creates a new school service instance
func NewSchoolService(schoolRepo *repositories.SchoolRepository, logger zerolog.Logger) *SchoolService {
	return &SchoolService{
		schoolRepo: schoolRepo,
		logger:     logger,
	}
}

// GetSchoolInfo returns the school record
func (s *SchoolService) GetSchoolInfo(ctx context.Context) (models.SchoolInfo, error) {
	return s.schoolRepo.Get(ctx)
}

// UpdateSchoolInfo applies partial edits to the school record
func (s *SchoolService) UpdateSchoolInfo(ctx context.Context, req dto.UpdateSchoolInfoRequest) (models.SchoolInfo, error) {
	info, err := s.schoolRepo.Get(ctx)
	if err != nil {
		return models.SchoolInfo{}, fmt.Errorf("error reading school info: %w", err)
	}

	if req.Name != nil {
		info.Name = *req.Name
	}
	if req.InstructorName != nil {
		info.InstructorName = *req.InstructorName
	}
	if req.Phone != nil {
		info.Phone = *req.Phone
	}
	if req.Email != nil {
		info.Email = *req.Email
	}
	if req.CoursePrice != nil {
		info.CoursePrice = *req.CoursePrice
	}

	if err := s.schoolRepo.Set(ctx, info); err != nil {
		return models.SchoolInfo{}, fmt.Errorf("error updating school info: %w", err)
	}

	s.logger.Info().Msg("School info updated")
	return info, nil
}
