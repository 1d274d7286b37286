package controller

import (
	"net/http"
	"time"

	"github.com/02priyeshraj/Restaurant_Management_Backend/helper"
	"github.com/02priyeshraj/Restaurant_Management_Backend/models"
	"github.com/02priyeshraj/Restaurant_Management_Backend/pkg/logger"
	"github.com/02priyeshraj/Restaurant_Management_Backend/services"
)

type FeedbackController struct {
	base
	svc services.FeedbackServiceInterface
}

func NewFeedbackController(svc services.FeedbackServiceInterface, timeout time.Duration, log logger.ILogger) *FeedbackController {
	return &FeedbackController{base: newBase(timeout, log, helper.StatusEnvelope), svc: svc}
}

func (c *FeedbackController) SubmitFeedback(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := c.context(r)
	defer cancel()

	var req models.FeedbackRequest
	if err := helper.DecodeJSON(r, &req); err != nil {
		c.fail(w, r, err)
		return
	}

	feedback, err := c.svc.Submit(ctx, actor(r), req)
	if err != nil {
		c.fail(w, r, err)
		return
	}
	c.envelope.OK(w, http.StatusCreated, "", feedback)
}

func (c *FeedbackController) GetFeedback(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := c.context(r)
	defer cancel()

	page := helper.ParsePage(r)
	feedback, total, err := c.svc.List(ctx, actor(r), page)
	if err != nil {
		c.fail(w, r, err)
		return
	}
	c.envelope.Page(w, "", feedback, page, total)
}
