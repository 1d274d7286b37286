package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/02priyeshraj/Restaurant_Management_Backend/helper"
	"github.com/02priyeshraj/Restaurant_Management_Backend/models"
	"github.com/02priyeshraj/Restaurant_Management_Backend/pkg/apperr"
	"github.com/02priyeshraj/Restaurant_Management_Backend/pkg/logger"
)

type AuthService struct {
	users       UserRepository
	tokens      *helper.TokenManager
	revocations TokenRevoker
	bcryptCost  int
	log         logger.ILogger
}

func NewAuthService(users UserRepository, tokens *helper.TokenManager, revocations TokenRevoker, bcryptCost int, log logger.ILogger) *AuthService {
	return &AuthService{
		users:       users,
		tokens:      tokens,
		revocations: revocations,
		bcryptCost:  bcryptCost,
		log:         log,
	}
}

// Register creates a customer account and signs it in.
func (s *AuthService) Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error) {
	const op = "auth.Register"

	if err := helper.ValidateStruct(op, req); err != nil {
		return nil, err
	}

	user, err := newUser(ctx, s.users, op, req, models.RoleCustomer, s.bcryptCost)
	if err != nil {
		return nil, err
	}
	s.log.Info("customer registered", logger.String("user_id", user.ID.Hex()))

	return s.issue(ctx, op, user)
}

func (s *AuthService) Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	const op = "auth.Login"

	if err := helper.ValidateStruct(op, req); err != nil {
		return nil, err
	}

	user, err := s.users.FindByEmail(ctx, normalizeEmail(req.Email))
	if apperr.IsNotFound(err) {
		return nil, apperr.Unauthorized(op, "Invalid email or password")
	}
	if err != nil {
		return nil, err
	}

	if !helper.VerifyPassword(user.Password, req.Password) {
		return nil, apperr.Unauthorized(op, "Invalid email or password")
	}

	return s.issue(ctx, op, user)
}

// Refresh exchanges the user's current refresh token for a new pair.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*models.AuthResponse, error) {
	const op = "auth.Refresh"

	claims, err := s.tokens.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, apperr.Wrap(apperr.ErrUnauthorized, op, "Invalid refresh token", err)
	}

	id, err := parseID(op, "user id", claims.Uid)
	if err != nil {
		return nil, apperr.Unauthorized(op, "Invalid refresh token")
	}

	user, err := s.users.FindByID(ctx, id)
	if apperr.IsNotFound(err) {
		return nil, apperr.Unauthorized(op, "Invalid refresh token")
	}
	if err != nil {
		return nil, err
	}

	if user.RefreshToken == "" || user.RefreshToken != refreshToken {
		return nil, apperr.Unauthorized(op, "Refresh token has been superseded")
	}

	return s.issue(ctx, op, user)
}

// Logout revokes the presented access token until it expires and clears the
// stored token pair.
func (s *AuthService) Logout(ctx context.Context, claims *helper.SignedDetails) error {
	const op = "auth.Logout"

	var ttl time.Duration
	if claims.ExpiresAt != nil {
		ttl = time.Until(claims.ExpiresAt.Time)
	}
	if s.revocations != nil {
		if err := s.revocations.Revoke(ctx, claims.ID, ttl); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
	}

	actor, err := claims.Actor()
	if err != nil {
		return apperr.Wrap(apperr.ErrUnauthorized, op, "Invalid token", err)
	}
	return s.users.UpdateTokens(ctx, actor.ID, "", "")
}

func (s *AuthService) Me(ctx context.Context, actor models.Actor) (*models.User, error) {
	return s.users.FindByID(ctx, actor.ID)
}

func (s *AuthService) issue(ctx context.Context, op string, user *models.User) (*models.AuthResponse, error) {
	token, refreshToken, err := s.tokens.GenerateAllTokens(user)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := s.users.UpdateTokens(ctx, user.ID, token, refreshToken); err != nil {
		return nil, err
	}
	user.Token = token
	user.RefreshToken = refreshToken

	return &models.AuthResponse{Token: token, RefreshToken: refreshToken, User: user}, nil
}

// newUser hashes the password and inserts a user with the given role,
// rejecting an already registered email.
func newUser(ctx context.Context, users UserRepository, op string, req models.RegisterRequest, role models.Role, cost int) (*models.User, error) {
	email := normalizeEmail(req.Email)

	_, err := users.FindByEmail(ctx, email)
	if err == nil {
		return nil, apperr.Conflict(op, "Email already registered")
	}
	if !apperr.IsNotFound(err) {
		return nil, err
	}

	hash, err := helper.HashPassword(req.Password, cost)
	if err != nil {
		return nil, fmt.Errorf("%s: hash password: %w", op, err)
	}

	now := time.Now().UTC()
	user := &models.User{
		Name:      strings.TrimSpace(req.Name),
		Email:     email,
		Password:  hash,
		Phone:     req.Phone,
		Role:      role,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
