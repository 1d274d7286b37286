package controller

import (
	"net/http"
	"time"

	"github.com/02priyeshraj/Restaurant_Management_Backend/helper"
	middleware "github.com/02priyeshraj/Restaurant_Management_Backend/middlewares"
	"github.com/02priyeshraj/Restaurant_Management_Backend/models"
	"github.com/02priyeshraj/Restaurant_Management_Backend/pkg/apperr"
	"github.com/02priyeshraj/Restaurant_Management_Backend/pkg/logger"
	"github.com/02priyeshraj/Restaurant_Management_Backend/services"
)

type AuthController struct {
	base
	svc services.AuthServiceInterface
}

func NewAuthController(svc services.AuthServiceInterface, timeout time.Duration, log logger.ILogger) *AuthController {
	return &AuthController{base: newBase(timeout, log, helper.SuccessEnvelope), svc: svc}
}

// Register a new customer account
func (c *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := c.context(r)
	defer cancel()

	var req models.RegisterRequest
	if err := helper.DecodeJSON(r, &req); err != nil {
		c.fail(w, r, err)
		return
	}

	resp, err := c.svc.Register(ctx, req)
	if err != nil {
		c.fail(w, r, err)
		return
	}
	c.envelope.OK(w, http.StatusCreated, "User registered successfully", resp)
}

func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := c.context(r)
	defer cancel()

	var req models.LoginRequest
	if err := helper.DecodeJSON(r, &req); err != nil {
		c.fail(w, r, err)
		return
	}

	resp, err := c.svc.Login(ctx, req)
	if err != nil {
		c.fail(w, r, err)
		return
	}
	c.envelope.OK(w, http.StatusOK, "Login successful", resp)
}

func (c *AuthController) Refresh(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := c.context(r)
	defer cancel()

	var req models.RefreshRequest
	if err := helper.DecodeAndValidate(r, "auth.Refresh", &req); err != nil {
		c.fail(w, r, err)
		return
	}

	resp, err := c.svc.Refresh(ctx, req.RefreshToken)
	if err != nil {
		c.fail(w, r, err)
		return
	}
	c.envelope.OK(w, http.StatusOK, "Token refreshed successfully", resp)
}

func (c *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := c.context(r)
	defer cancel()

	claims, ok := middleware.GetUserFromContext(r)
	if !ok {
		c.fail(w, r, apperr.Unauthorized("auth.Logout", "Authentication required"))
		return
	}

	if err := c.svc.Logout(ctx, claims); err != nil {
		c.fail(w, r, err)
		return
	}
	c.envelope.OK(w, http.StatusOK, "Logged out successfully", nil)
}

// Me returns the profile of the authenticated user
func (c *AuthController) Me(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := c.context(r)
	defer cancel()

	user, err := c.svc.Me(ctx, actor(r))
	if err != nil {
		c.fail(w, r, err)
		return
	}
	c.envelope.OK(w, http.StatusOK, "User retrieved successfully", user)
}
