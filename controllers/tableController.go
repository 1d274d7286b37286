package controller

import (
	"net/http"
	"time"

	"github.com/02priyeshraj/Restaurant_Management_Backend/helper"
	"github.com/02priyeshraj/Restaurant_Management_Backend/models"
	"github.com/02priyeshraj/Restaurant_Management_Backend/pkg/logger"
	"github.com/02priyeshraj/Restaurant_Management_Backend/services"
)

type TableController struct {
	base
	svc services.TableServiceInterface
}

func NewTableController(svc services.TableServiceInterface, timeout time.Duration, log logger.ILogger) *TableController {
	return &TableController{base: newBase(timeout, log, helper.SuccessEnvelope), svc: svc}
}

func (c *TableController) GetTables(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := c.context(r)
	defer cancel()

	page := helper.ParsePage(r)
	tables, total, err := c.svc.List(ctx, page)
	if err != nil {
		c.fail(w, r, err)
		return
	}
	c.envelope.Page(w, "Tables retrieved successfully", tables, page, total)
}

// GetAvailableTables answers ?date=YYYY-MM-DD&time=HH:MM&duration=&guests=
func (c *TableController) GetAvailableTables(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := c.context(r)
	defer cancel()

	duration, err := queryInt(r, "duration")
	if err != nil {
		c.fail(w, r, err)
		return
	}
	guests, err := queryInt(r, "guests")
	if err != nil {
		c.fail(w, r, err)
		return
	}

	query := models.AvailabilityQuery{
		Date:     r.URL.Query().Get("date"),
		Time:     r.URL.Query().Get("time"),
		Duration: duration,
		Guests:   guests,
	}
	tables, err := c.svc.Available(ctx, query)
	if err != nil {
		c.fail(w, r, err)
		return
	}
	c.envelope.OK(w, http.StatusOK, "Available tables retrieved successfully", tables)
}

func (c *TableController) GetTable(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := c.context(r)
	defer cancel()

	table, err := c.svc.Get(ctx, pathID(r))
	if err != nil {
		c.fail(w, r, err)
		return
	}
	c.envelope.OK(w, http.StatusOK, "Table retrieved successfully", table)
}

func (c *TableController) CreateTable(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := c.context(r)
	defer cancel()

	var req models.TableRequest
	if err := helper.DecodeJSON(r, &req); err != nil {
		c.fail(w, r, err)
		return
	}

	table, err := c.svc.Create(ctx, req)
	if err != nil {
		c.fail(w, r, err)
		return
	}
	c.envelope.OK(w, http.StatusCreated, "Table created successfully", table)
}

func (c *TableController) UpdateTable(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := c.context(r)
	defer cancel()

	var update models.TableUpdate
	if err := helper.DecodeJSON(r, &update); err != nil {
		c.fail(w, r, err)
		return
	}

	table, err := c.svc.Update(ctx, pathID(r), update)
	if err != nil {
		c.fail(w, r, err)
		return
	}
	c.envelope.OK(w, http.StatusOK, "Table updated successfully", table)
}

func (c *TableController) DeleteTable(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := c.context(r)
	defer cancel()

	if err := c.svc.Delete(ctx, pathID(r)); err != nil {
		c.fail(w, r, err)
		return
	}
	c.envelope.OK(w, http.StatusOK, "Table deleted successfully", nil)
}
