package routes

import (
	"net/http"

	"github.com/gorilla/mux"

	controller "github.com/02priyeshraj/Restaurant_Management_Backend/controllers"
)

// InvoiceProtectedRoutes mounts payment and receipt endpoints. Owners and
// staff both reach them; the order service enforces ownership.
func InvoiceProtectedRoutes(router *mux.Router, c *controller.OrderController) {
	router.HandleFunc("/orders/{id}/payment", c.PayOrder).Methods(http.MethodPost)
	router.HandleFunc("/orders/{id}/qrcode", c.GetOrderQRCode).Methods(http.MethodGet)
}
