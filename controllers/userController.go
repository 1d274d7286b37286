package controller

import (
	"net/http"
	"time"

	"github.com/02priyeshraj/Restaurant_Management_Backend/helper"
	"github.com/02priyeshraj/Restaurant_Management_Backend/models"
	"github.com/02priyeshraj/Restaurant_Management_Backend/pkg/logger"
	"github.com/02priyeshraj/Restaurant_Management_Backend/services"
)

type UserController struct {
	base
	svc services.UserServiceInterface
}

func NewUserController(svc services.UserServiceInterface, timeout time.Duration, log logger.ILogger) *UserController {
	return &UserController{base: newBase(timeout, log, helper.SuccessEnvelope), svc: svc}
}

func (c *UserController) GetUsers(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := c.context(r)
	defer cancel()

	page := helper.ParsePage(r)
	users, total, err := c.svc.List(ctx, page)
	if err != nil {
		c.fail(w, r, err)
		return
	}
	c.envelope.Page(w, "Users retrieved successfully", users, page, total)
}

func (c *UserController) GetUser(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := c.context(r)
	defer cancel()

	user, err := c.svc.Get(ctx, pathID(r))
	if err != nil {
		c.fail(w, r, err)
		return
	}
	c.envelope.OK(w, http.StatusOK, "User retrieved successfully", user)
}

// CreateUser lets an admin add staff or admin accounts
func (c *UserController) CreateUser(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := c.context(r)
	defer cancel()

	var req models.CreateUserRequest
	if err := helper.DecodeJSON(r, &req); err != nil {
		c.fail(w, r, err)
		return
	}

	user, err := c.svc.Create(ctx, req)
	if err != nil {
		c.fail(w, r, err)
		return
	}
	c.envelope.OK(w, http.StatusCreated, "User created successfully", user)
}

func (c *UserController) UpdateUserRole(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := c.context(r)
	defer cancel()

	var req models.UpdateRoleRequest
	if err := helper.DecodeJSON(r, &req); err != nil {
		c.fail(w, r, err)
		return
	}

	user, err := c.svc.UpdateRole(ctx, pathID(r), req.Role)
	if err != nil {
		c.fail(w, r, err)
		return
	}
	c.envelope.OK(w, http.StatusOK, "User role updated successfully", user)
}
