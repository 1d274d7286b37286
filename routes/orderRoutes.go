package routes

import (
	"net/http"

	"github.com/gorilla/mux"

	controller "github.com/02priyeshraj/Restaurant_Management_Backend/controllers"
)

func OrderProtectedRoutes(router *mux.Router, c *controller.OrderController) {

	router.Handle("/orders", guard(c.GetOrders, staffOrAdmin...)).Methods(http.MethodGet)
	router.Handle("/orders", guard(c.CreateOrder, customerOnly...)).Methods(http.MethodPost)

	router.Handle("/orders/history", guard(c.GetOrderHistory, customerOnly...)).Methods(http.MethodGet)

	// ownership is checked by the order service
	router.HandleFunc("/orders/{id}", c.GetOrder).Methods(http.MethodGet)
	router.Handle("/orders/{id}/status", guard(c.UpdateOrderStatus, staffOrAdmin...)).Methods(http.MethodPut)
}
