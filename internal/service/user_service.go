package service

import (
	"context"

	"shareit/internal/models"
	"shareit/internal/repository"

	"github.com/rs/zerolog"
)

// UserService handles business logic for user operations.
type UserService struct {
	repo repository.UserRepository
	log  *zerolog.Logger
}

// NewUserService creates a new UserService.
func NewUserService(repo repository.UserRepository, log *zerolog.Logger) *UserService {
	return &UserService{
		repo: repo,
		log:  log,
	}
}

// CreateUser registers a new user. Emails are unique.
func (s *UserService) CreateUser(ctx context.Context, req *models.CreateUserRequest) (*models.User, error) {
	user := &models.User{
		Name:  req.Name,
		Email: req.Email,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.log.Info().Int64("userId", user.ID).Msg("user created")
	return user, nil
}

// GetUser retrieves a user by ID.
func (s *UserService) GetUser(ctx context.Context, id int64) (*models.User, error) {
	return s.repo.FindByID(ctx, id)
}

// GetAllUsers retrieves all users.
func (s *UserService) GetAllUsers(ctx context.Context) ([]models.User, error) {
	return s.repo.FindAll(ctx)
}

// UpdateUser patches a user's name and/or email.
func (s *UserService) UpdateUser(ctx context.Context, id int64, req *models.UpdateUserRequest) (*models.User, error) {
	user, err := s.repo.Update(ctx, id, req)
	if err != nil {
		return nil, err
	}

	s.log.Info().Int64("userId", id).Msg("user updated")
	return user, nil
}

// DeleteUser removes a user. Their items, bookings and comments are left in place.
func (s *UserService) DeleteUser(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.log.Info().Int64("userId", id).Msg("user deleted")
	return nil
}
