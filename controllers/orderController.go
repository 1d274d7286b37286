package controller

import (
	"net/http"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/02priyeshraj/Restaurant_Management_Backend/helper"
	"github.com/02priyeshraj/Restaurant_Management_Backend/models"
	"github.com/02priyeshraj/Restaurant_Management_Backend/pkg/apperr"
	"github.com/02priyeshraj/Restaurant_Management_Backend/pkg/logger"
	"github.com/02priyeshraj/Restaurant_Management_Backend/services"
)

type OrderController struct {
	base
	svc services.OrderServiceInterface
}

func NewOrderController(svc services.OrderServiceInterface, timeout time.Duration, log logger.ILogger) *OrderController {
	return &OrderController{base: newBase(timeout, log, helper.SuccessEnvelope), svc: svc}
}

// GetOrders lists all orders for staff, filterable by ?status= and ?customer=
func (c *OrderController) GetOrders(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := c.context(r)
	defer cancel()

	filter := models.OrderFilter{Status: models.OrderStatus(r.URL.Query().Get("status"))}
	if raw := r.URL.Query().Get("customer"); raw != "" {
		customer, err := primitive.ObjectIDFromHex(raw)
		if err != nil {
			c.fail(w, r, apperr.Validation("orders.List", "Invalid customer id"))
			return
		}
		filter.Customer = &customer
	}

	page := helper.ParsePage(r)
	orders, total, err := c.svc.List(ctx, filter, page)
	if err != nil {
		c.fail(w, r, err)
		return
	}
	c.envelope.Page(w, "Orders retrieved successfully", orders, page, total)
}

func (c *OrderController) GetOrderHistory(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := c.context(r)
	defer cancel()

	page := helper.ParsePage(r)
	orders, total, err := c.svc.History(ctx, actor(r), page)
	if err != nil {
		c.fail(w, r, err)
		return
	}
	c.envelope.Page(w, "Order history retrieved successfully", orders, page, total)
}

func (c *OrderController) GetOrder(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := c.context(r)
	defer cancel()

	order, err := c.svc.Get(ctx, actor(r), pathID(r))
	if err != nil {
		c.fail(w, r, err)
		return
	}
	c.envelope.OK(w, http.StatusOK, "Order retrieved successfully", order)
}

func (c *OrderController) CreateOrder(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := c.context(r)
	defer cancel()

	var req models.PlaceOrderRequest
	if err := helper.DecodeJSON(r, &req); err != nil {
		c.fail(w, r, err)
		return
	}

	order, err := c.svc.Place(ctx, actor(r), req)
	if err != nil {
		c.fail(w, r, err)
		return
	}
	c.envelope.OK(w, http.StatusCreated, "Order placed successfully", order)
}

func (c *OrderController) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := c.context(r)
	defer cancel()

	var req models.UpdateOrderStatusRequest
	if err := helper.DecodeJSON(r, &req); err != nil {
		c.fail(w, r, err)
		return
	}

	order, err := c.svc.UpdateStatus(ctx, actor(r), pathID(r), req.Status)
	if err != nil {
		c.fail(w, r, err)
		return
	}
	c.envelope.OK(w, http.StatusOK, "Order status updated successfully", order)
}
