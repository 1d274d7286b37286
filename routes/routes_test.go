package routes

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	controller "github.com/02priyeshraj/Restaurant_Management_Backend/controllers"
	"github.com/02priyeshraj/Restaurant_Management_Backend/helper"
	middleware "github.com/02priyeshraj/Restaurant_Management_Backend/middlewares"
	"github.com/02priyeshraj/Restaurant_Management_Backend/models"
	"github.com/02priyeshraj/Restaurant_Management_Backend/pkg/logger"
	"github.com/02priyeshraj/Restaurant_Management_Backend/services/mocks"
)

type okPinger struct{}

func (okPinger) Ping(context.Context, *readpref.ReadPref) error { return nil }

type fixture struct {
	router *mux.Router
	tokens *helper.TokenManager
	menu   *mocks.MenuService
	tables *mocks.TableService
	orders *mocks.OrderService
}

func newFixture(t *testing.T) *fixture {
	log := logger.NewNop()
	f := &fixture{
		router: mux.NewRouter(),
		tokens: helper.NewTokenManager("routes-secret", time.Hour, time.Hour),
		menu:   mocks.NewMenuService(t),
		tables: mocks.NewTableService(t),
		orders: mocks.NewOrderService(t),
	}
	Register(f.router, Controllers{
		Auth:        controller.NewAuthController(mocks.NewAuthService(t), time.Second, log),
		Users:       controller.NewUserController(mocks.NewUserService(t), time.Second, log),
		MenuItems:   controller.NewMenuItemController(f.menu, time.Second, log),
		Tables:      controller.NewTableController(f.tables, time.Second, log),
		Orders:      controller.NewOrderController(f.orders, time.Second, log),
		Reservation: controller.NewReservationController(mocks.NewReservationService(t), time.Second, log),
		Feedback:    controller.NewFeedbackController(mocks.NewFeedbackService(t), time.Second, log),
		Reports:     controller.NewReportController(mocks.NewReportService(t), time.Second, log),
		Health:      controller.NewHealthController(okPinger{}, time.Second, log),
	}, middleware.Authentication(f.tokens, nil, log))
	return f
}

func (f *fixture) token(t *testing.T, role models.Role) (string, models.Actor) {
	t.Helper()
	user := &models.User{ID: primitive.NewObjectID(), Email: string(role) + "@example.com", Role: role}
	access, _, err := f.tokens.GenerateAllTokens(user)
	require.NoError(t, err)
	return access, models.Actor{ID: user.ID, Email: user.Email, Role: role}
}

func (f *fixture) do(method, target, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func TestRegister_PublicRoutesNeedNoToken(t *testing.T) {
	f := newFixture(t)
	f.menu.On("List", mock.Anything, models.MenuItemFilter{}, mock.Anything).Return([]models.MenuItem{}, int64(0), nil).Once()

	assert.Equal(t, http.StatusOK, f.do(http.MethodGet, "/menuitems", "").Code)
	assert.Equal(t, http.StatusOK, f.do(http.MethodGet, "/health", "").Code)
}

func TestRegister_ProtectedRoutesRequireToken(t *testing.T) {
	f := newFixture(t)

	assert.Equal(t, http.StatusUnauthorized, f.do(http.MethodPost, "/menuitems", "").Code)
	assert.Equal(t, http.StatusUnauthorized, f.do(http.MethodGet, "/tables", "").Code)
	assert.Equal(t, http.StatusUnauthorized, f.do(http.MethodGet, "/orders/history", "garbage").Code)
}

func TestRegister_RoleGuards(t *testing.T) {
	f := newFixture(t)
	customer, _ := f.token(t, models.RoleCustomer)
	staff, _ := f.token(t, models.RoleStaff)

	cases := []struct {
		name   string
		method string
		target string
		token  string
	}{
		{"customer cannot create menu items", http.MethodPost, "/menuitems", customer},
		{"customer cannot list all orders", http.MethodGet, "/orders", customer},
		{"customer cannot advance orders", http.MethodPut, "/orders/abc/status", customer},
		{"staff cannot place orders", http.MethodPost, "/orders", staff},
		{"staff cannot create tables", http.MethodPost, "/tables", staff},
		{"staff cannot read reports", http.MethodGet, "/reports", staff},
		{"staff cannot manage users", http.MethodGet, "/users", staff},
		{"staff cannot book", http.MethodPost, "/reservations", staff},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, http.StatusForbidden, f.do(tc.method, tc.target, tc.token).Code)
		})
	}
}

func TestRegister_StaticSegmentsWinOverIDs(t *testing.T) {
	f := newFixture(t)
	token, actor := f.token(t, models.RoleCustomer)

	f.orders.On("History", mock.Anything, actor, mock.Anything).Return([]models.Order{}, int64(0), nil).Once()
	f.tables.On("Available", mock.Anything, models.AvailabilityQuery{Date: "2026-05-01", Time: "18:00", Guests: 2}).
		Return([]models.Table{}, nil).Once()

	assert.Equal(t, http.StatusOK, f.do(http.MethodGet, "/orders/history", token).Code)
	assert.Equal(t, http.StatusOK, f.do(http.MethodGet, "/tables/available?date=2026-05-01&time=18:00&guests=2", token).Code)
}

func TestRegister_OwnerRoutesReachService(t *testing.T) {
	f := newFixture(t)
	token, actor := f.token(t, models.RoleCustomer)

	f.orders.On("ReceiptQRCode", mock.Anything, actor, "o1", 0).Return([]byte("png"), nil).Once()

	rec := f.do(http.MethodGet, "/orders/o1/qrcode", token)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
}
