package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/mcharewicz/oskplanner/internal/app/models"
	"github.com/mcharewicz/oskplanner/internal/app/repositories"
)

// ErrorLogService manages the in-session application error log. This is a
// domain entity filled by client reports, separate from process logging.
type ErrorLogService struct {
	errorRepo *repositories.ErrorLogRepository
	logger    zerolog.Logger
}

// NewErrorLogService creates a new error log service instance
func NewErrorLogService(errorRepo *repositories.ErrorLogRepository, logger zerolog.Logger) *ErrorLogService {
	return &ErrorLogService{
		errorRepo: errorRepo,
		logger:    logger,
	}
}

// LogError appends an entry to the log
func (s *ErrorLogService) LogError(ctx context.Context, message, component string) (models.AppError, error) {
	entry, err := s.errorRepo.Append(ctx, message, component)
	if err != nil {
		return models.AppError{}, fmt.Errorf("error appending to error log: %w", err)
	}

	s.logger.Warn().Str("component", component).Str("message", message).Msg("Client error reported")
	return entry, nil
}

// ListErrors returns the log, newest first
func (s *ErrorLogService) ListErrors(ctx context.Context) ([]models.AppError, error) {
	return s.errorRepo.List(ctx)
}
