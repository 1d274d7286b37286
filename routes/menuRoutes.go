package routes

import (
	"net/http"

	"github.com/gorilla/mux"

	controller "github.com/02priyeshraj/Restaurant_Management_Backend/controllers"
)

func MenuPublicRoutes(router *mux.Router, c *controller.MenuItemController) {
	router.HandleFunc("/menuitems", c.GetMenuItems).Methods(http.MethodGet)
	router.HandleFunc("/menuitems/{id}", c.GetMenuItem).Methods(http.MethodGet)
}

func MenuProtectedRoutes(router *mux.Router, c *controller.MenuItemController) {
	router.Handle("/menuitems", guard(c.CreateMenuItem, staffOrAdmin...)).Methods(http.MethodPost)
	router.Handle("/menuitems/{id}", guard(c.UpdateMenuItem, staffOrAdmin...)).Methods(http.MethodPut)
	router.Handle("/menuitems/{id}", guard(c.DeleteMenuItem, staffOrAdmin...)).Methods(http.MethodDelete)
}
