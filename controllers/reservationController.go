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

type ReservationController struct {
	base
	svc services.ReservationServiceInterface
}

func NewReservationController(svc services.ReservationServiceInterface, timeout time.Duration, log logger.ILogger) *ReservationController {
	return &ReservationController{base: newBase(timeout, log, helper.StatusEnvelope), svc: svc}
}

func (c *ReservationController) CreateReservation(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := c.context(r)
	defer cancel()

	var req models.CreateReservationRequest
	if err := helper.DecodeJSON(r, &req); err != nil {
		c.fail(w, r, err)
		return
	}

	reservation, err := c.svc.Create(ctx, actor(r), req)
	if err != nil {
		c.fail(w, r, err)
		return
	}
	c.envelope.OK(w, http.StatusCreated, "", reservation)
}

// GetReservations supports ?status=, ?date=YYYY-MM-DD and ?table=<id>
func (c *ReservationController) GetReservations(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := c.context(r)
	defer cancel()

	q := r.URL.Query()
	filter := models.ReservationFilter{
		Status: models.BookingStatus(q.Get("status")),
		Date:   q.Get("date"),
	}
	if raw := q.Get("table"); raw != "" {
		table, err := primitive.ObjectIDFromHex(raw)
		if err != nil {
			c.fail(w, r, apperr.Validation("reservations.List", "Invalid table id"))
			return
		}
		filter.Table = &table
	}

	page := helper.ParsePage(r)
	reservations, total, err := c.svc.List(ctx, actor(r), filter, page)
	if err != nil {
		c.fail(w, r, err)
		return
	}
	c.envelope.Page(w, "", reservations, page, total)
}

func (c *ReservationController) GetReservation(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := c.context(r)
	defer cancel()

	reservation, err := c.svc.Get(ctx, actor(r), pathID(r))
	if err != nil {
		c.fail(w, r, err)
		return
	}
	c.envelope.OK(w, http.StatusOK, "", reservation)
}

func (c *ReservationController) UpdateReservationStatus(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := c.context(r)
	defer cancel()

	var req models.UpdateReservationStatusRequest
	if err := helper.DecodeJSON(r, &req); err != nil {
		c.fail(w, r, err)
		return
	}

	reservation, err := c.svc.UpdateStatus(ctx, actor(r), pathID(r), req.BookingStatus)
	if err != nil {
		c.fail(w, r, err)
		return
	}
	c.envelope.OK(w, http.StatusOK, "", reservation)
}
