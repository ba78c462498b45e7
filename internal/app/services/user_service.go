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
)

// UserService handles user management for the staff panels
type UserService struct {
	userRepo   *repositories.UserRepository
	lessonRepo *repositories.LessonRepository
	logger     zerolog.Logger
}

// NewUserService creates a new user service instance
func NewUserService(userRepo *repositories.UserRepository, lessonRepo *repositories.LessonRepository, logger zerolog.Logger) *UserService {
	return &UserService{
		userRepo:   userRepo,
		lessonRepo: lessonRepo,
		logger:     logger,
	}
}

// ListUsers returns all users
func (s *UserService) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.userRepo.List(ctx)
}

// ListStudents joins student users with their info records and lesson counts
// for the management listing.
func (s *UserService) ListStudents(ctx context.Context) ([]dto.StudentOverview, error) {
	students, err := s.userRepo.ListStudents(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing students: %w", err)
	}

	out := make([]dto.StudentOverview, 0, len(students))
	for i := range students {
		student := students[i]
		overview := dto.StudentOverview{User: &student}

		if info, err := s.userRepo.InfoByUserID(ctx, student.ID); err == nil {
			overview.Info = &info
		}

		lessons, err := s.lessonRepo.ListByStudent(ctx, student.ID)
		if err != nil {
			return nil, fmt.Errorf("error listing lessons for student: %w", err)
		}
		overview.LessonCount = len(lessons)

		out = append(out, overview)
	}
	return out, nil
}

// UpdateUser applies partial edits to a user
func (s *UserService) UpdateUser(ctx context.Context, id string, req dto.UpdateUserRequest) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperrors.ErrUserNotFound
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Surname != nil {
		user.Surname = *req.Surname
	}
	if req.Role != nil {
		if !req.Role.Valid() {
			return nil, apperrors.NewCustomError(apperrors.ErrValidationFailed, "unknown role")
		}
		user.Role = *req.Role
	}
	if req.GroupID != nil {
		user.GroupID = *req.GroupID
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("error updating user: %w", err)
	}
	return &user, nil
}

// DeleteUser removes a user together with its student info and all its
// lessons, and nothing else.
func (s *UserService) DeleteUser(ctx context.Context, id string) error {
	if err := s.userRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrUserNotFound
		}
		return fmt.Errorf("error deleting user: %w", err)
	}

	s.userRepo.DeleteInfoByUserID(ctx, id)
	removed := s.lessonRepo.DeleteByStudent(ctx, id)

	s.logger.Info().Str("userId", id).Int("lessonsRemoved", removed).Msg("User deleted")
	return nil
}

// UpdateStudentProgress edits the hours/payment fields staff may change
func (s *UserService) UpdateStudentProgress(ctx context.Context, userID string, req dto.StudentProgressRequest) (*models.StudentInfo, error) {
	info, err := s.userRepo.InfoByUserID(ctx, userID)
	if err != nil {
		return nil, apperrors.NewResourceNotFoundError("student info not found")
	}

	if req.HoursDriven != nil {
		info.HoursDriven = *req.HoursDriven
	}
	if req.AmountPaid != nil {
		info.AmountPaid = *req.AmountPaid
	}

	if err := s.userRepo.UpdateInfo(ctx, info); err != nil {
		return nil, fmt.Errorf("error updating student info: %w", err)
	}
	return &info, nil
}
