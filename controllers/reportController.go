package controller

import (
	"net/http"
	"time"

	"github.com/02priyeshraj/Restaurant_Management_Backend/helper"
	"github.com/02priyeshraj/Restaurant_Management_Backend/models"
	"github.com/02priyeshraj/Restaurant_Management_Backend/pkg/logger"
	"github.com/02priyeshraj/Restaurant_Management_Backend/services"
)

type ReportController struct {
	base
	svc services.ReportServiceInterface
}

func NewReportController(svc services.ReportServiceInterface, timeout time.Duration, log logger.ILogger) *ReportController {
	return &ReportController{base: newBase(timeout, log, helper.StatusEnvelope), svc: svc}
}

// GenerateReport aggregates the requested range and stores the result.
func (c *ReportController) GenerateReport(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := c.context(r)
	defer cancel()

	var req models.GenerateReportRequest
	if err := helper.DecodeJSON(r, &req); err != nil {
		c.fail(w, r, err)
		return
	}

	report, err := c.svc.Generate(ctx, actor(r), req)
	if err != nil {
		c.fail(w, r, err)
		return
	}
	c.envelope.OK(w, http.StatusCreated, "", report)
}

func (c *ReportController) GetReports(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := c.context(r)
	defer cancel()

	page := helper.ParsePage(r)
	reports, total, err := c.svc.List(ctx, page)
	if err != nil {
		c.fail(w, r, err)
		return
	}
	c.envelope.Page(w, "", reports, page, total)
}

func (c *ReportController) GetReport(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := c.context(r)
	defer cancel()

	report, err := c.svc.Get(ctx, pathID(r))
	if err != nil {
		c.fail(w, r, err)
		return
	}
	c.envelope.OK(w, http.StatusOK, "", report)
}

func (c *ReportController) DeleteReport(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := c.context(r)
	defer cancel()

	if err := c.svc.Delete(ctx, pathID(r)); err != nil {
		c.fail(w, r, err)
		return
	}
	helper.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Report deleted",
	})
}
