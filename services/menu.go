package services

import (
	"context"
	"strings"
	"time"

	"github.com/02priyeshraj/Restaurant_Management_Backend/helper"
	"github.com/02priyeshraj/Restaurant_Management_Backend/models"
	"github.com/02priyeshraj/Restaurant_Management_Backend/pkg/apperr"
	"github.com/02priyeshraj/Restaurant_Management_Backend/pkg/logger"
)

type MenuService struct {
	items MenuItemRepository
	log   logger.ILogger
}

func NewMenuService(items MenuItemRepository, log logger.ILogger) *MenuService {
	return &MenuService{items: items, log: log}
}

// Create adds a menu item. Items are available unless the request says
// otherwise.
func (s *MenuService) Create(ctx context.Context, req models.MenuItemRequest) (*models.MenuItem, error) {
	const op = "menu.Create"

	if err := helper.ValidateStruct(op, req); err != nil {
		return nil, err
	}

	available := true
	if req.Availability != nil {
		available = *req.Availability
	}

	now := time.Now().UTC()
	item := &models.MenuItem{
		Name:         strings.TrimSpace(req.Name),
		Description:  req.Description,
		Price:        roundCents(*req.Price),
		Availability: available,
		Category:     strings.TrimSpace(req.Category),
		ImageURL:     req.ImageURL,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.items.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *MenuService) Get(ctx context.Context, id string) (*models.MenuItem, error) {
	itemID, err := parseID("menu.Get", "menu item id", id)
	if err != nil {
		return nil, err
	}
	return s.items.FindByID(ctx, itemID)
}

func (s *MenuService) List(ctx context.Context, filter models.MenuItemFilter, page models.Page) ([]models.MenuItem, int64, error) {
	return s.items.List(ctx, filter, page)
}

func (s *MenuService) Update(ctx context.Context, id string, update models.MenuItemUpdate) (*models.MenuItem, error) {
	const op = "menu.Update"

	itemID, err := parseID(op, "menu item id", id)
	if err != nil {
		return nil, err
	}
	if update.Empty() {
		return nil, apperr.Validation(op, "No fields to update")
	}
	if err := helper.ValidateStruct(op, update); err != nil {
		return nil, err
	}
	if update.Price != nil {
		price := roundCents(*update.Price)
		update.Price = &price
	}

	return s.items.Update(ctx, itemID, update)
}

func (s *MenuService) Delete(ctx context.Context, id string) error {
	itemID, err := parseID("menu.Delete", "menu item id", id)
	if err != nil {
		return err
	}
	if err := s.items.Delete(ctx, itemID); err != nil {
		return err
	}
	s.log.Info("menu item deleted", logger.String("menu_item_id", id))
	return nil
}
