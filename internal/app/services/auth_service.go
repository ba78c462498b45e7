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
	"github.com/mcharewicz/oskplanner/internal/pkg/auth"
)

// AuthService handles login and student self-registration
type AuthService struct {
	userRepo   *repositories.UserRepository
	groupRepo  *repositories.GroupRepository
	schoolRepo *repositories.SchoolRepository
	jwtService *auth.JWTService
	logger     zerolog.Logger
}

// NewAuthService creates a new auth service instance
func NewAuthService(
	userRepo *repositories.UserRepository,
	groupRepo *repositories.GroupRepository,
	schoolRepo *repositories.SchoolRepository,
	jwtService *auth.JWTService,
	logger zerolog.Logger,
) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		groupRepo:  groupRepo,
		schoolRepo: schoolRepo,
		jwtService: jwtService,
		logger:     logger,
	}
}

// Login checks the credentials and returns a token response for the matching
// user. A wrong username and a wrong password produce the same error; the
// caller cannot tell which field was at fault.
func (s *AuthService) Login(ctx context.Context, username, password string) (*dto.TokenResponse, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	if !auth.CheckPassword(user.Password, password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, expiresIn, err := s.jwtService.GenerateToken(&user)
	if err != nil {
		return nil, fmt.Errorf("error creating token: %w", err)
	}

	s.logger.Info().Str("username", user.Username).Str("role", string(user.Role)).Msg("User logged in")

	return &dto.TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   expiresIn,
		User:        &user,
	}, nil
}

// Register creates a new student account together with its student info
// record. The course cost is taken from the current school record.
func (s *AuthService) Register(ctx context.Context, req dto.RegisterRequest) (*models.User, error) {
	if req.Password != req.ConfirmPassword {
		return nil, apperrors.NewCustomError(apperrors.ErrValidationFailed, "passwords do not match")
	}

	if _, err := s.groupRepo.GetByID(ctx, req.GroupID); err != nil {
		if errors.Is(err, repositories.ErrGroupNotFound) {
			return nil, apperrors.ErrGroupNotFound
		}
		return nil, fmt.Errorf("error checking group: %w", err)
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user, err := s.userRepo.Create(ctx, models.User{
		Name:     req.Name,
		Surname:  req.Surname,
		Role:     models.RoleStudent,
		Username: req.Username,
		Password: hashed,
		GroupID:  req.GroupID,
	})
	if err != nil {
		if errors.Is(err, repositories.ErrUsernameExists) {
			return nil, apperrors.ErrUsernameExists
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	school, err := s.schoolRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("error reading school info: %w", err)
	}

	info := models.StudentInfo{
		UserID:          user.ID,
		HoursDriven:     0,
		AmountPaid:      0,
		TotalCourseCost: school.CoursePrice,
		PKKNumber:       req.PKKNumber,
	}
	if err := s.userRepo.CreateInfo(ctx, info); err != nil {
		return nil, fmt.Errorf("error creating student info: %w", err)
	}

	s.logger.Info().Str("username", user.Username).Msg("Student registered")
	return &user, nil
}
