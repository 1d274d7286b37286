package services

import (
	"context"

	"github.com/02priyeshraj/Restaurant_Management_Backend/helper"
	"github.com/02priyeshraj/Restaurant_Management_Backend/models"
	"github.com/02priyeshraj/Restaurant_Management_Backend/pkg/logger"
)

// UserService is the admin-facing account management surface.
type UserService struct {
	users      UserRepository
	bcryptCost int
	log        logger.ILogger
}

func NewUserService(users UserRepository, bcryptCost int, log logger.ILogger) *UserService {
	return &UserService{users: users, bcryptCost: bcryptCost, log: log}
}

func (s *UserService) List(ctx context.Context, page models.Page) ([]models.User, int64, error) {
	return s.users.List(ctx, page)
}

func (s *UserService) Get(ctx context.Context, id string) (*models.User, error) {
	userID, err := parseID("users.Get", "user id", id)
	if err != nil {
		return nil, err
	}
	return s.users.FindByID(ctx, userID)
}

// Create adds an account with an explicit role, typically staff or admin.
func (s *UserService) Create(ctx context.Context, req models.CreateUserRequest) (*models.User, error) {
	const op = "users.Create"

	if err := helper.ValidateStruct(op, req); err != nil {
		return nil, err
	}

	user, err := newUser(ctx, s.users, op, req.RegisterRequest, req.Role, s.bcryptCost)
	if err != nil {
		return nil, err
	}
	s.log.Info("user created", logger.String("user_id", user.ID.Hex()), logger.String("role", string(user.Role)))
	return user, nil
}

// UpdateRole changes the user's role and drops their stored token pair.
// Access tokens already issued keep the old role until they expire.
func (s *UserService) UpdateRole(ctx context.Context, id string, role models.Role) (*models.User, error) {
	const op = "users.UpdateRole"

	if err := helper.ValidateStruct(op, models.UpdateRoleRequest{Role: role}); err != nil {
		return nil, err
	}
	userID, err := parseID(op, "user id", id)
	if err != nil {
		return nil, err
	}

	user, err := s.users.UpdateRole(ctx, userID, role)
	if err != nil {
		return nil, err
	}
	// The next refresh must fail so the new role is picked up at login.
	if err := s.users.UpdateTokens(ctx, userID, "", ""); err != nil {
		return nil, err
	}
	s.log.Info("user role changed", logger.String("user_id", id), logger.String("role", string(role)))
	return user, nil
}
