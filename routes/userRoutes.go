package routes

import (
	"net/http"

	"github.com/gorilla/mux"

	controller "github.com/02priyeshraj/Restaurant_Management_Backend/controllers"
)

func PublicRoutes(router *mux.Router, c *controller.AuthController) {
	router.HandleFunc("/auth/register", c.Register).Methods(http.MethodPost)
	router.HandleFunc("/auth/login", c.Login).Methods(http.MethodPost)
	router.HandleFunc("/auth/refresh", c.Refresh).Methods(http.MethodPost)
}

func ProtectedRoutes(router *mux.Router, c *controller.AuthController) {
	router.HandleFunc("/auth/logout", c.Logout).Methods(http.MethodPost)
	router.HandleFunc("/auth/me", c.Me).Methods(http.MethodGet)
}

func UserProtectedRoutes(router *mux.Router, c *controller.UserController) {
	router.Handle("/users", guard(c.GetUsers, adminOnly...)).Methods(http.MethodGet)
	router.Handle("/users", guard(c.CreateUser, adminOnly...)).Methods(http.MethodPost)
	router.Handle("/users/{id}", guard(c.GetUser, adminOnly...)).Methods(http.MethodGet)
	router.Handle("/users/{id}/role", guard(c.UpdateUserRole, adminOnly...)).Methods(http.MethodPut)
}
