package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/mcharewicz/oskplanner/internal/app/models"
	"github.com/mcharewicz/oskplanner/internal/app/models/dto"
	"github.com/mcharewicz/oskplanner/internal/app/repositories"
	"github.com/mcharewicz/oskplanner/internal/pkg/apperrors"
	"github.com/mcharewicz/oskplanner/internal/pkg/helpers"
)

// LessonService implements the lesson lifecycle: proposed -> confirmed ->
// cancelled (deleted). There is no unconfirm and no cancellation record.
type LessonService struct {
	lessonRepo *repositories.LessonRepository
	userRepo   *repositories.UserRepository
	dayOffRepo *repositories.DayOffRepository
	logger     zerolog.Logger
}

// NewLessonService creates a new lesson service instance
func NewLessonService(
	lessonRepo *repositories.LessonRepository,
	userRepo *repositories.UserRepository,
	dayOffRepo *repositories.DayOffRepository,
	logger zerolog.Logger,
) *LessonService {
	return &LessonService{
		lessonRepo: lessonRepo,
		userRepo:   userRepo,
		dayOffRepo: dayOffRepo,
		logger:     logger,
	}
}

// ListForViewer returns the lessons a viewer may see: students get their own
// lessons, staff get all of them.
func (s *LessonService) ListForViewer(ctx context.Context, viewer Viewer) ([]models.Lesson, error) {
	if viewer.Role.IsStaff() {
		return s.lessonRepo.List(ctx)
	}
	return s.lessonRepo.ListByStudent(ctx, viewer.UserID)
}

// StudentBook creates an unconfirmed lesson for the booking student. Past
// dates and day-off dates are rejected before any mutation.
func (s *LessonService) StudentBook(ctx context.Context, studentID string, req dto.BookLessonRequest) (*models.Lesson, error) {
	if helpers.DayStart(req.Date).Before(helpers.DayStart(time.Now())) {
		return nil, apperrors.ErrBookingInPast
	}

	dayOff, err := s.dayOffRepo.IsDayOff(ctx, req.Date)
	if err != nil {
		return nil, fmt.Errorf("error checking day off: %w", err)
	}
	if dayOff {
		return nil, apperrors.ErrBookingOnDayOff
	}

	lesson, err := s.lessonRepo.Create(ctx, models.Lesson{
		StudentID:       studentID,
		Date:            req.Date,
		PickupAddress:   req.PickupAddress,
		DropoffAddress:  req.DropoffAddress,
		DurationMinutes: req.DurationMinutes,
		Confirmed:       false,
	})
	if err != nil {
		return nil, fmt.Errorf("error creating lesson: %w", err)
	}

	s.logger.Info().Str("lessonId", lesson.ID).Str("studentId", studentID).Time("date", lesson.Date).Msg("Lesson proposed")
	return &lesson, nil
}

// StaffBook creates a lesson on behalf of a student; staff bookings start
// out confirmed.
func (s *LessonService) StaffBook(ctx context.Context, req dto.StaffLessonRequest) (*models.Lesson, error) {
	student, err := s.userRepo.GetByID(ctx, req.StudentID)
	if err != nil {
		return nil, apperrors.ErrUserNotFound
	}
	if student.Role != models.RoleStudent {
		return nil, apperrors.NewCustomError(apperrors.ErrValidationFailed, "lessons can only be booked for students")
	}

	lesson, err := s.lessonRepo.Create(ctx, models.Lesson{
		StudentID:       req.StudentID,
		Date:            req.Date,
		PickupAddress:   req.PickupAddress,
		DropoffAddress:  req.DropoffAddress,
		DurationMinutes: req.DurationMinutes,
		Confirmed:       true,
	})
	if err != nil {
		return nil, fmt.Errorf("error creating lesson: %w", err)
	}

	s.logger.Info().Str("lessonId", lesson.ID).Str("studentId", req.StudentID).Msg("Lesson booked by staff")
	return &lesson, nil
}

// Confirm transitions a proposed lesson to confirmed. Confirming a lesson
// that is already confirmed leaves it unchanged.
func (s *LessonService) Confirm(ctx context.Context, id string) (*models.Lesson, error) {
	lesson, err := s.lessonRepo.Confirm(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrLessonNotFound) {
			return nil, apperrors.ErrLessonNotFound
		}
		return nil, fmt.Errorf("error confirming lesson: %w", err)
	}
	return &lesson, nil
}

// Cancel deletes a lesson. Staff may cancel any lesson; a student may only
// cancel their own lesson while it is unconfirmed and still in the future.
func (s *LessonService) Cancel(ctx context.Context, id string, viewer Viewer) error {
	lesson, err := s.lessonRepo.GetByID(ctx, id)
	if err != nil {
		return apperrors.ErrLessonNotFound
	}

	if !viewer.Role.IsStaff() {
		if lesson.StudentID != viewer.UserID {
			return apperrors.ErrNotLessonOwner
		}
		if lesson.Confirmed {
			return apperrors.ErrCancelNotAllowed
		}
		if !lesson.Date.After(time.Now()) {
			return apperrors.ErrCancelNotAllowed
		}
	}

	if err := s.lessonRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("error deleting lesson: %w", err)
	}

	s.logger.Info().Str("lessonId", id).Str("cancelledBy", viewer.UserID).Msg("Lesson cancelled")
	return nil
}

// Reschedule moves a lesson to a new date-time. The confirmed flag is never
// touched by a reschedule.
func (s *LessonService) Reschedule(ctx context.Context, id string, newDate time.Time) (*models.Lesson, error) {
	lesson, err := s.lessonRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperrors.ErrLessonNotFound
	}

	lesson.Date = newDate
	if err := s.lessonRepo.Update(ctx, lesson); err != nil {
		return nil, fmt.Errorf("error rescheduling lesson: %w", err)
	}

	s.logger.Info().Str("lessonId", id).Time("newDate", newDate).Msg("Lesson rescheduled")
	return &lesson, nil
}

// UnconfirmedCount returns how many lessons still await confirmation, for
// the instructor dashboard badge.
func (s *LessonService) UnconfirmedCount(ctx context.Context) (int, error) {
	return s.lessonRepo.CountUnconfirmed(ctx)
}
