package routes

import (
	"net/http"

	"github.com/gorilla/mux"

	controller "github.com/02priyeshraj/Restaurant_Management_Backend/controllers"
	middleware "github.com/02priyeshraj/Restaurant_Management_Backend/middlewares"
	"github.com/02priyeshraj/Restaurant_Management_Backend/models"
)

var (
	adminOnly    = []models.Role{models.RoleAdmin}
	staffOrAdmin = []models.Role{models.RoleStaff, models.RoleAdmin}
	customerOnly = []models.Role{models.RoleCustomer}
)

// Controllers bundles the handlers mounted by Register.
type Controllers struct {
	Auth        *controller.AuthController
	Users       *controller.UserController
	MenuItems   *controller.MenuItemController
	Tables      *controller.TableController
	Orders      *controller.OrderController
	Reservation *controller.ReservationController
	Feedback    *controller.FeedbackController
	Reports     *controller.ReportController
	Health      *controller.HealthController
}

// Register mounts the public routes on router and everything else on a
// subrouter guarded by authenticate.
func Register(router *mux.Router, c Controllers, authenticate mux.MiddlewareFunc) {
	router.HandleFunc("/health", c.Health.Health).Methods(http.MethodGet)
	PublicRoutes(router, c.Auth)
	MenuPublicRoutes(router, c.MenuItems)

	securedRoutes := router.PathPrefix("/").Subrouter()
	securedRoutes.Use(authenticate)
	ProtectedRoutes(securedRoutes, c.Auth)
	UserProtectedRoutes(securedRoutes, c.Users)
	MenuProtectedRoutes(securedRoutes, c.MenuItems)
	TableProtectedRoutes(securedRoutes, c.Tables)
	OrderProtectedRoutes(securedRoutes, c.Orders)
	InvoiceProtectedRoutes(securedRoutes, c.Orders)
	ReservationProtectedRoutes(securedRoutes, c.Reservation)
	FeedbackProtectedRoutes(securedRoutes, c.Feedback)
	ReportProtectedRoutes(securedRoutes, c.Reports)
}

func guard(h http.HandlerFunc, roles ...models.Role) http.Handler {
	return middleware.RequireRoles(roles...)(h)
}
