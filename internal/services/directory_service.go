package services

import (
	"context"
	"fmt"
	"time"

	"github.com/HimeshRasaily/FlowArt/internal/models"
	"github.com/HimeshRasaily/FlowArt/internal/repositories"
)

// DirectoryService handles business logic for browsing and editing user
// profiles.
type DirectoryService struct {
	userRepo repositories.UserRepository
}

// NewDirectoryService creates a new DirectoryService.
func NewDirectoryService(userRepo repositories.UserRepository) *DirectoryService {
	return &DirectoryService{
		userRepo: userRepo,
	}
}

// List returns the users matching the given filters, in insertion order.
func (s *DirectoryService) List(ctx context.Context, filter repositories.UserFilter) ([]models.User, error) {
	users, err := s.userRepo.Query(ctx, repositories.BuildUserQuery(filter))
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// Get returns a single user by ID.
func (s *DirectoryService) Get(ctx context.Context, id string) (*models.User, error) {
	if !s.userRepo.ValidID(id) {
		return nil, ErrInvalidUserID
	}

	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// Update applies a partial profile update to the target user on behalf of
// the actor. Only the owner may edit a profile; absent patch fields are left
// untouched. Returns the refreshed record.
func (s *DirectoryService) Update(ctx context.Context, actorID, targetID string, patch models.UserUpdate) (*models.User, error) {
	if actorID != targetID {
		return nil, ErrForbidden
	}
	if !s.userRepo.ValidID(targetID) {
		return nil, ErrInvalidUserID
	}

	fields := patch.Fields()
	if len(fields) == 0 {
		return nil, ErrEmptyUpdate
	}
	fields["updated_at"] = time.Now().UTC()

	modified, err := s.userRepo.UpdateFields(ctx, targetID, fields)
	if err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	if modified == 0 {
		return nil, ErrUserNotFound
	}

	updated, err := s.userRepo.FindByID(ctx, targetID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload user: %w", err)
	}
	if updated == nil {
		return nil, ErrUserNotFound
	}
	return updated, nil
}
