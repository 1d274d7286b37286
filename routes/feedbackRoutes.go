package routes

import (
	"net/http"

	"github.com/gorilla/mux"

	controller "github.com/02priyeshraj/Restaurant_Management_Backend/controllers"
)

func FeedbackProtectedRoutes(router *mux.Router, c *controller.FeedbackController) {
	router.HandleFunc("/feedback", c.GetFeedback).Methods(http.MethodGet)
	router.Handle("/feedback", guard(c.SubmitFeedback, customerOnly...)).Methods(http.MethodPost)
}
