package controller

import (
	"net/http"
	"strconv"
	"time"

	"github.com/02priyeshraj/Restaurant_Management_Backend/helper"
	"github.com/02priyeshraj/Restaurant_Management_Backend/models"
	"github.com/02priyeshraj/Restaurant_Management_Backend/pkg/apperr"
	"github.com/02priyeshraj/Restaurant_Management_Backend/pkg/logger"
	"github.com/02priyeshraj/Restaurant_Management_Backend/services"
)

type MenuItemController struct {
	base
	svc services.MenuServiceInterface
}

func NewMenuItemController(svc services.MenuServiceInterface, timeout time.Duration, log logger.ILogger) *MenuItemController {
	return &MenuItemController{base: newBase(timeout, log, helper.SuccessEnvelope), svc: svc}
}

// Get all menu items, optionally filtered by category and availability
func (c *MenuItemController) GetMenuItems(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := c.context(r)
	defer cancel()

	filter := models.MenuItemFilter{Category: r.URL.Query().Get("category")}
	if raw := r.URL.Query().Get("available"); raw != "" {
		available, err := strconv.ParseBool(raw)
		if err != nil {
			c.fail(w, r, apperr.Validation("menu.List", "available must be true or false"))
			return
		}
		filter.Available = &available
	}

	page := helper.ParsePage(r)
	items, total, err := c.svc.List(ctx, filter, page)
	if err != nil {
		c.fail(w, r, err)
		return
	}
	c.envelope.Page(w, "Menu items retrieved successfully", items, page, total)
}

// Get a single menu item
func (c *MenuItemController) GetMenuItem(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := c.context(r)
	defer cancel()

	item, err := c.svc.Get(ctx, pathID(r))
	if err != nil {
		c.fail(w, r, err)
		return
	}
	c.envelope.OK(w, http.StatusOK, "Menu item retrieved successfully", item)
}

// Create a menu item
func (c *MenuItemController) CreateMenuItem(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := c.context(r)
	defer cancel()

	var req models.MenuItemRequest
	if err := helper.DecodeJSON(r, &req); err != nil {
		c.fail(w, r, err)
		return
	}

	item, err := c.svc.Create(ctx, req)
	if err != nil {
		c.fail(w, r, err)
		return
	}
	c.envelope.OK(w, http.StatusCreated, "Menu item created successfully", item)
}

// Update a menu item
func (c *MenuItemController) UpdateMenuItem(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := c.context(r)
	defer cancel()

	var update models.MenuItemUpdate
	if err := helper.DecodeJSON(r, &update); err != nil {
		c.fail(w, r, err)
		return
	}

	item, err := c.svc.Update(ctx, pathID(r), update)
	if err != nil {
		c.fail(w, r, err)
		return
	}
	c.envelope.OK(w, http.StatusOK, "Menu item updated successfully", item)
}

// Delete a menu item
func (c *MenuItemController) DeleteMenuItem(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := c.context(r)
	defer cancel()

	if err := c.svc.Delete(ctx, pathID(r)); err != nil {
		c.fail(w, r, err)
		return
	}
	c.envelope.OK(w, http.StatusOK, "Menu item deleted successfully", nil)
}
