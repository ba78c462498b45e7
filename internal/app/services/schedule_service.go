package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/mcharewicz/oskplanner/internal/app/models"
	"github.com/mcharewicz/oskplanner/internal/app/models/dto"
	"github.com/mcharewicz/oskplanner/internal/app/repositories"
	"github.com/mcharewicz/oskplanner/internal/pkg/apperrors"
	"github.com/mcharewicz/oskplanner/internal/pkg/helpers"
)

// ScheduleService manages instructor time blocks and days off
type ScheduleService struct {
	timeBlockRepo *repositories.TimeBlockRepository
	dayOffRepo    *repositories.DayOffRepository
	logger        zerolog.Logger
}

// NewScheduleService creates a new schedule service instance
func NewScheduleService(timeBlockRepo *repositories.TimeBlockRepository, dayOffRepo *repositories.DayOffRepository, logger zerolog.Logger) *ScheduleService {
	return &ScheduleService{
		timeBlockRepo: timeBlockRepo,
		dayOffRepo:    dayOffRepo,
		logger:        logger,
	}
}

// validateBlockTimes checks both clock strings and their ordering
func validateBlockTimes(startTime, endTime string) error {
	start, err := helpers.ParseClock(startTime)
	if err != nil {
		return apperrors.NewCustomError(apperrors.ErrInvalidClockTime, "invalid start time")
	}
	end, err := helpers.ParseClock(endTime)
	if err != nil {
		return apperrors.NewCustomError(apperrors.ErrInvalidClockTime, "invalid end time")
	}
	if end <= start {
		return apperrors.NewCustomError(apperrors.ErrValidationFailed, "end time must be after start time")
	}
	return nil
}

// AddBlock creates a time block. When no title is given, a default matching
// the block type is used.
func (s *ScheduleService) AddBlock(ctx context.Context, req dto.TimeBlockRequest) (*models.TimeBlock, error) {
	if !req.Type.Valid() {
		return nil, apperrors.NewCustomError(apperrors.ErrValidationFailed, "unknown block type")
	}
	if err := validateBlockTimes(req.StartTime, req.EndTime); err != nil {
		return nil, err
	}

	title := req.Title
	if title == "" {
		if req.Type == models.BlockLecture {
			title = "Wyklady"
		} else {
			title = "Niedostepny"
		}
	}

	block, err := s.timeBlockRepo.Create(ctx, models.TimeBlock{
		Date:      helpers.DayStart(req.Date),
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Type:      req.Type,
		Title:     title,
	})
	if err != nil {
		return nil, fmt.Errorf("error creating time block: %w", err)
	}

	s.logger.Info().Str("blockId", block.ID).Str("type", string(block.Type)).Msg("Time block added")
	return &block, nil
}

// ListBlocks returns all time blocks
func (s *ScheduleService) ListBlocks(ctx context.Context) ([]models.TimeBlock, error) {
	return s.timeBlockRepo.List(ctx)
}

// RescheduleBlock moves a time block to a new date and interval. Type and
// title are kept as they are.
func (s *ScheduleService) RescheduleBlock(ctx context.Context, id string, req dto.RescheduleBlockRequest) (*models.TimeBlock, error) {
	if err := validateBlockTimes(req.StartTime, req.EndTime); err != nil {
		return nil, err
	}

	block, err := s.timeBlockRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperrors.ErrTimeBlockNotFound
	}

	block.Date = helpers.DayStart(req.Date)
	block.StartTime = req.StartTime
	block.EndTime = req.EndTime

	if err := s.timeBlockRepo.Update(ctx, block); err != nil {
		return nil, fmt.Errorf("error rescheduling time block: %w", err)
	}

	s.logger.Info().Str("blockId", id).Msg("Time block rescheduled")
	return &block, nil
}

// DeleteBlock removes a time block
func (s *ScheduleService) DeleteBlock(ctx context.Context, id string) error {
	if err := s.timeBlockRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrTimeBlockNotFound) {
			return apperrors.ErrTimeBlockNotFound
		}
		return fmt.Errorf("error deleting time block: %w", err)
	}
	return nil
}

// ToggleDayOff flips the day-off state of a date and returns whether the
// date is a day off afterwards.
func (s *ScheduleService) ToggleDayOff(ctx context.Context, req dto.ToggleDayOffRequest) (bool, error) {
	added, err := s.dayOffRepo.Toggle(ctx, req.Date)
	if err != nil {
		return false, fmt.Errorf("error toggling day off: %w", err)
	}

	s.logger.Info().Time("date", req.Date).Bool("dayOff", added).Msg("Day off toggled")
	return added, nil
}

// ListDaysOff returns all day-off records
func (s *ScheduleService) ListDaysOff(ctx context.Context) ([]models.DayOff, error) {
	return s.dayOffRepo.List(ctx)
}
