package routes

import (
	"net/http"

	"github.com/gorilla/mux"

	controller "github.com/02priyeshraj/Restaurant_Management_Backend/controllers"
)

func ReportProtectedRoutes(router *mux.Router, c *controller.ReportController) {
	router.Handle("/reports", guard(c.GetReports, adminOnly...)).Methods(http.MethodGet)
	router.Handle("/reports", guard(c.GenerateReport, adminOnly...)).Methods(http.MethodPost)

	router.Handle("/reports/{id}", guard(c.GetReport, adminOnly...)).Methods(http.MethodGet)
	router.Handle("/reports/{id}", guard(c.DeleteReport, adminOnly...)).Methods(http.MethodDelete)
}
