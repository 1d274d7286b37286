package controller

import (
	"net/http"
	"strconv"

	"github.com/02priyeshraj/Restaurant_Management_Backend/helper"
	"github.com/02priyeshraj/Restaurant_Management_Backend/models"
)

type paymentResponse struct {
	Order   *models.Order   `json:"order"`
	Payment *models.Payment `json:"payment"`
}

// PayOrder records the payment for an order and links it.
func (c *OrderController) PayOrder(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := c.context(r)
	defer cancel()

	var req models.PaymentRequest
	if err := helper.DecodeJSON(r, &req); err != nil {
		c.fail(w, r, err)
		return
	}

	order, payment, err := c.svc.Pay(ctx, actor(r), pathID(r), req.PaymentType)
	if err != nil {
		c.fail(w, r, err)
		return
	}
	c.envelope.OK(w, http.StatusCreated, "Payment recorded successfully", paymentResponse{Order: order, Payment: payment})
}

// GetOrderQRCode streams the receipt QR code as a PNG. ?size= sets the edge in pixels.
func (c *OrderController) GetOrderQRCode(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := c.context(r)
	defer cancel()

	size, err := queryInt(r, "size")
	if err != nil {
		c.fail(w, r, err)
		return
	}

	png, err := c.svc.ReceiptQRCode(ctx, actor(r), pathID(r), size)
	if err != nil {
		c.fail(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(len(png)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(png)
}
