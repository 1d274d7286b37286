package routes

import (
	"net/http"

	"github.com/gorilla/mux"

	controller "github.com/02priyeshraj/Restaurant_Management_Backend/controllers"
)

func TableProtectedRoutes(router *mux.Router, c *controller.TableController) {

	router.HandleFunc("/tables", c.GetTables).Methods(http.MethodGet)
	router.Handle("/tables", guard(c.CreateTable, adminOnly...)).Methods(http.MethodPost)

	// must precede /tables/{id}
	router.HandleFunc("/tables/available", c.GetAvailableTables).Methods(http.MethodGet)

	router.HandleFunc("/tables/{id}", c.GetTable).Methods(http.MethodGet)
	router.Handle("/tables/{id}", guard(c.UpdateTable, adminOnly...)).Methods(http.MethodPut)
	router.Handle("/tables/{id}", guard(c.DeleteTable, adminOnly...)).Methods(http.MethodDelete)
}
