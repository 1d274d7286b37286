package routes

import (
	"net/http"

	"github.com/gorilla/mux"

	controller "github.com/02priyeshraj/Restaurant_Management_Backend/controllers"
)

func ReservationProtectedRoutes(router *mux.Router, c *controller.ReservationController) {
	router.HandleFunc("/reservations", c.GetReservations).Methods(http.MethodGet)
	router.Handle("/reservations", guard(c.CreateReservation, customerOnly...)).Methods(http.MethodPost)

	router.HandleFunc("/reservations/{id}", c.GetReservation).Methods(http.MethodGet)
	router.HandleFunc("/reservations/{id}/status", c.UpdateReservationStatus).Methods(http.MethodPut)
}
