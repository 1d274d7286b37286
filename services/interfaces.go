package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/02priyeshraj/Restaurant_Management_Backend/helper"
	"github.com/02priyeshraj/Restaurant_Management_Backend/models"
)

type AuthServiceInterface interface {
	Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error)
	Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error)
	Refresh(ctx context.Context, refreshToken string) (*models.AuthResponse, error)
	Logout(ctx context.Context, claims *helper.SignedDetails) error
	Me(ctx context.Context, actor models.Actor) (*models.User, error)
}

type UserServiceInterface interface {
	List(ctx context.Context, page models.Page) ([]models.User, int64, error)
	Get(ctx context.Context, id string) (*models.User, error)
	Create(ctx context.Context, req models.CreateUserRequest) (*models.User, error)
	UpdateRole(ctx context.Context, id string, role models.Role) (*models.User, error)
}

type MenuServiceInterface interface {
	Create(ctx context.Context, req models.MenuItemRequest) (*models.MenuItem, error)
	Get(ctx context.Context, id string) (*models.MenuItem, error)
	List(ctx context.Context, filter models.MenuItemFilter, page models.Page) ([]models.MenuItem, int64, error)
	Update(ctx context.Context, id string, update models.MenuItemUpdate) (*models.MenuItem, error)
	Delete(ctx context.Context, id string) error
}

type TableServiceInterface interface {
	Create(ctx context.Context, req models.TableRequest) (*models.Table, error)
	Get(ctx context.Context, id string) (*models.Table, error)
	List(ctx context.Context, page models.Page) ([]models.Table, int64, error)
	Update(ctx context.Context, id string, update models.TableUpdate) (*models.Table, error)
	Delete(ctx context.Context, id string) error
	Available(ctx context.Context, query models.AvailabilityQuery) ([]models.Table, error)
}

type OrderServiceInterface interface {
	Place(ctx context.Context, actor models.Actor, req models.PlaceOrderRequest) (*models.Order, error)
	List(ctx context.Context, filter models.OrderFilter, page models.Page) ([]models.Order, int64, error)
	History(ctx context.Context, actor models.Actor, page models.Page) ([]models.Order, int64, error)
	Get(ctx context.Context, actor models.Actor, id string) (*models.Order, error)
	UpdateStatus(ctx context.Context, actor models.Actor, id string, status models.OrderStatus) (*models.Order, error)
	Pay(ctx context.Context, actor models.Actor, id string, method models.PaymentType) (*models.Order, *models.Payment, error)
	ReceiptQRCode(ctx context.Context, actor models.Actor, id string, size int) ([]byte, error)
}

type ReservationServiceInterface interface {
	Create(ctx context.Context, actor models.Actor, req models.CreateReservationRequest) (*models.Reservation, error)
	List(ctx context.Context, actor models.Actor, filter models.ReservationFilter, page models.Page) ([]models.Reservation, int64, error)
	Get(ctx context.Context, actor models.Actor, id string) (*models.Reservation, error)
	UpdateStatus(ctx context.Context, actor models.Actor, id string, status models.BookingStatus) (*models.Reservation, error)
}

type FeedbackServiceInterface interface {
	Submit(ctx context.Context, actor models.Actor, req models.FeedbackRequest) (*models.Feedback, error)
	List(ctx context.Context, actor models.Actor, page models.Page) ([]models.Feedback, int64, error)
}

type ReportServiceInterface interface {
	Generate(ctx context.Context, actor models.Actor, req models.GenerateReportRequest) (*models.Report, error)
	List(ctx context.Context, page models.Page) ([]models.Report, int64, error)
	Get(ctx context.Context, id string) (*models.Report, error)
	Delete(ctx context.Context, id string) error
}

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	List(ctx context.Context, page models.Page) ([]models.User, int64, error)
	UpdateTokens(ctx context.Context, id primitive.ObjectID, token, refreshToken string) error
	UpdateRole(ctx context.Context, id primitive.ObjectID, role models.Role) (*models.User, error)
}

type MenuItemRepository interface {
	Create(ctx context.Context, item *models.MenuItem) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.MenuItem, error)
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.MenuItem, error)
	List(ctx context.Context, filter models.MenuItemFilter, page models.Page) ([]models.MenuItem, int64, error)
	Update(ctx context.Context, id primitive.ObjectID, update models.MenuItemUpdate) (*models.MenuItem, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type TableRepository interface {
	Create(ctx context.Context, table *models.Table) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Table, error)
	List(ctx context.Context, page models.Page) ([]models.Table, int64, error)
	ListSeating(ctx context.Context, guests int) ([]models.Table, error)
	Update(ctx context.Context, id primitive.ObjectID, update models.TableUpdate) (*models.Table, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type OrderRepository interface {
	Create(ctx context.Context, order *models.Order) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Order, error)
	List(ctx context.Context, filter models.OrderFilter, page models.Page) ([]models.Order, int64, error)
	AdvanceStatus(ctx context.Context, id primitive.ObjectID, from, to models.OrderStatus, staff primitive.ObjectID) (*models.Order, error)
	MarkPaid(ctx context.Context, id, paymentID primitive.ObjectID, method models.PaymentType) (*models.Order, error)
	FindCreatedBetween(ctx context.Context, start, end time.Time) ([]models.Order, error)
}

type PaymentRepository interface {
	Create(ctx context.Context, payment *models.Payment) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type ReservationRepository interface {
	Create(ctx context.Context, reservation *models.Reservation) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Reservation, error)
	List(ctx context.Context, filter models.ReservationFilter, page models.Page) ([]models.Reservation, int64, error)
	FindOverlapping(ctx context.Context, table primitive.ObjectID, start, end time.Time, statuses []models.BookingStatus, exclude *primitive.ObjectID) ([]models.Reservation, error)
	BookedTables(ctx context.Context, start, end time.Time) ([]primitive.ObjectID, error)
	TransitionStatus(ctx context.Context, id primitive.ObjectID, from, to models.BookingStatus) (*models.Reservation, error)
	FindStartingBetween(ctx context.Context, start, end time.Time) ([]models.Reservation, error)
}

type FeedbackRepository interface {
	Create(ctx context.Context, feedback *models.Feedback) error
	List(ctx context.Context, filter models.FeedbackFilter, page models.Page) ([]models.Feedback, int64, error)
	FindCreatedBetween(ctx context.Context, start, end time.Time) ([]models.Feedback, error)
}

type ReportRepository interface {
	Create(ctx context.Context, report *models.Report) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Report, error)
	List(ctx context.Context, page models.Page) ([]models.Report, int64, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type TokenRevoker interface {
	Revoke(ctx context.Context, jti string, ttl time.Duration) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

type OrderEventPublisher interface {
	PublishOrderEvent(ctx context.Context, event models.OrderEvent) error
}

var (
	_ AuthServiceInterface        = (*AuthService)(nil)
	_ UserServiceInterface        = (*UserService)(nil)
	_ MenuServiceInterface        = (*MenuService)(nil)
	_ TableServiceInterface       = (*TableService)(nil)
	_ OrderServiceInterface       = (*OrderService)(nil)
	_ ReservationServiceInterface = (*ReservationService)(nil)
	_ FeedbackServiceInterface    = (*FeedbackService)(nil)
	_ ReportServiceInterface      = (*ReportService)(nil)
)
