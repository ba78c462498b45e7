package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/mcharewicz/oskplanner/internal/app/models"
	"github.com/mcharewicz/oskplanner/internal/app/repositories"
	"github.com/mcharewicz/oskplanner/internal/pkg/apperrors"
)

// GroupService manages course groups
type GroupService struct {
	groupRepo *repositories.GroupRepository
	userRepo  *repositories.UserRepository
	logger    zerolog.Logger
}

// NewGroupService creates a new group service instance
func NewGroupService(groupRepo *repositories.GroupRepository, userRepo *repositories.UserRepository, logger zerolog.Logger) *GroupService {
	return &GroupService{
		groupRepo: groupRepo,
		userRepo:  userRepo,
		logger:    logger,
	}
}

// ListGroups returns all groups
func (s *GroupService) ListGroups(ctx context.Context) ([]models.Group, error) {
	return s.groupRepo.List(ctx)
}

// CreateGroup creates a new named group
func (s *GroupService) CreateGroup(ctx context.Context, name string) (*models.Group, error) {
	group, err := s.groupRepo.Create(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("error creating group: %w", err)
	}

	s.logger.Info().Str("groupId", group.ID).Str("name", name).Msg("Group created")
	return &group, nil
}

// RenameGroup renames an existing group
func (s *GroupService) RenameGroup(ctx context.Context, id, name string) (*models.Group, error) {
	group, err := s.groupRepo.Update(ctx, id, name)
	if err != nil {
		if errors.Is(err, repositories.ErrGroupNotFound) {
			return nil, apperrors.ErrGroupNotFound
		}
		return nil, fmt.Errorf("error renaming group: %w", err)
	}
	return &group, nil
}

// DeleteGroup removes a group unless any user still references it. This is
// the only referential-integrity check in the system.
func (s *GroupService) DeleteGroup(ctx context.Context, id string) error {
	if _, err := s.groupRepo.GetByID(ctx, id); err != nil {
		return apperrors.ErrGroupNotFound
	}

	inUse, err := s.userRepo.AnyInGroup(ctx, id)
	if err != nil {
		return fmt.Errorf("error checking group references: %w", err)
	}
	if inUse {
		return apperrors.ErrGroupInUse
	}

	if err := s.groupRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("error deleting group: %w", err)
	}

	s.logger.Info().Str("groupId", id).Msg("Group deleted")
	return nil
}
