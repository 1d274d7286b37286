package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/02priyeshraj/Restaurant_Management_Backend/helper"
	"github.com/02priyeshraj/Restaurant_Management_Backend/models"
)

type AuthService struct {
	mock.Mock
}

func NewAuthService(t testingT) *AuthService {
	m := &AuthService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *AuthService) Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error) {
	args := m.Called(ctx, req)
	r0, _ := args.Get(0).(*models.AuthResponse)
	return r0, args.Error(1)
}

func (m *AuthService) Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	args := m.Called(ctx, req)
	r0, _ := args.Get(0).(*models.AuthResponse)
	return r0, args.Error(1)
}

func (m *AuthService) Refresh(ctx context.Context, refreshToken string) (*models.AuthResponse, error) {
	args := m.Called(ctx, refreshToken)
	r0, _ := args.Get(0).(*models.AuthResponse)
	return r0, args.Error(1)
}

func (m *AuthService) Logout(ctx context.Context, claims *helper.SignedDetails) error {
	args := m.Called(ctx, claims)
	return args.Error(0)
}

func (m *AuthService) Me(ctx context.Context, actor models.Actor) (*models.User, error) {
	args := m.Called(ctx, actor)
	r0, _ := args.Get(0).(*models.User)
	return r0, args.Error(1)
}

type UserService struct {
	mock.Mock
}

func NewUserService(t testingT) *UserService {
	m := &UserService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *UserService) List(ctx context.Context, page models.Page) ([]models.User, int64, error) {
	args := m.Called(ctx, page)
	r0, _ := args.Get(0).([]models.User)
	r1, _ := args.Get(1).(int64)
	return r0, r1, args.Error(2)
}

func (m *UserService) Get(ctx context.Context, id string) (*models.User, error) {
	args := m.Called(ctx, id)
	r0, _ := args.Get(0).(*models.User)
	return r0, args.Error(1)
}

func (m *UserService) Create(ctx context.Context, req models.CreateUserRequest) (*models.User, error) {
	args := m.Called(ctx, req)
	r0, _ := args.Get(0).(*models.User)
	return r0, args.Error(1)
}

func (m *UserService) UpdateRole(ctx context.Context, id string, role models.Role) (*models.User, error) {
	args := m.Called(ctx, id, role)
	r0, _ := args.Get(0).(*models.User)
	return r0, args.Error(1)
}

type MenuService struct {
	mock.Mock
}

func NewMenuService(t testingT) *MenuService {
	m := &MenuService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MenuService) Create(ctx context.Context, req models.MenuItemRequest) (*models.MenuItem, error) {
	args := m.Called(ctx, req)
	r0, _ := args.Get(0).(*models.MenuItem)
	return r0, args.Error(1)
}

func (m *MenuService) Get(ctx context.Context, id string) (*models.MenuItem, error) {
	args := m.Called(ctx, id)
	r0, _ := args.Get(0).(*models.MenuItem)
	return r0, args.Error(1)
}

func (m *MenuService) List(ctx context.Context, filter models.MenuItemFilter, page models.Page) ([]models.MenuItem, int64, error) {
	args := m.Called(ctx, filter, page)
	r0, _ := args.Get(0).([]models.MenuItem)
	r1, _ := args.Get(1).(int64)
	return r0, r1, args.Error(2)
}

func (m *MenuService) Update(ctx context.Context, id string, update models.MenuItemUpdate) (*models.MenuItem, error) {
	args := m.Called(ctx, id, update)
	r0, _ := args.Get(0).(*models.MenuItem)
	return r0, args.Error(1)
}

func (m *MenuService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type TableService struct {
	mock.Mock
}

func NewTableService(t testingT) *TableService {
	m := &TableService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *TableService) Create(ctx context.Context, req models.TableRequest) (*models.Table, error) {
	args := m.Called(ctx, req)
	r0, _ := args.Get(0).(*models.Table)
	return r0, args.Error(1)
}

func (m *TableService) Get(ctx context.Context, id string) (*models.Table, error) {
	args := m.Called(ctx, id)
	r0, _ := args.Get(0).(*models.Table)
	return r0, args.Error(1)
}

func (m *TableService) List(ctx context.Context, page models.Page) ([]models.Table, int64, error) {
	args := m.Called(ctx, page)
	r0, _ := args.Get(0).([]models.Table)
	r1, _ := args.Get(1).(int64)
	return r0, r1, args.Error(2)
}

func (m *TableService) Update(ctx context.Context, id string, update models.TableUpdate) (*models.Table, error) {
	args := m.Called(ctx, id, update)
	r0, _ := args.Get(0).(*models.Table)
	return r0, args.Error(1)
}

func (m *TableService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *TableService) Available(ctx context.Context, query models.AvailabilityQuery) ([]models.Table, error) {
	args := m.Called(ctx, query)
	r0, _ := args.Get(0).([]models.Table)
	return r0, args.Error(1)
}

type OrderService struct {
	mock.Mock
}

func NewOrderService(t testingT) *OrderService {
	m := &OrderService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *OrderService) Place(ctx context.Context, actor models.Actor, req models.PlaceOrderRequest) (*models.Order, error) {
	args := m.Called(ctx, actor, req)
	r0, _ := args.Get(0).(*models.Order)
	return r0, args.Error(1)
}

func (m *OrderService) List(ctx context.Context, filter models.OrderFilter, page models.Page) ([]models.Order, int64, error) {
	args := m.Called(ctx, filter, page)
	r0, _ := args.Get(0).([]models.Order)
	r1, _ := args.Get(1).(int64)
	return r0, r1, args.Error(2)
}

func (m *OrderService) History(ctx context.Context, actor models.Actor, page models.Page) ([]models.Order, int64, error) {
	args := m.Called(ctx, actor, page)
	r0, _ := args.Get(0).([]models.Order)
	r1, _ := args.Get(1).(int64)
	return r0, r1, args.Error(2)
}

func (m *OrderService) Get(ctx context.Context, actor models.Actor, id string) (*models.Order, error) {
	args := m.Called(ctx, actor, id)
	r0, _ := args.Get(0).(*models.Order)
	return r0, args.Error(1)
}

func (m *OrderService) UpdateStatus(ctx context.Context, actor models.Actor, id string, status models.OrderStatus) (*models.Order, error) {
	args := m.Called(ctx, actor, id, status)
	r0, _ := args.Get(0).(*models.Order)
	return r0, args.Error(1)
}

func (m *OrderService) Pay(ctx context.Context, actor models.Actor, id string, method models.PaymentType) (*models.Order, *models.Payment, error) {
	args := m.Called(ctx, actor, id, method)
	r0, _ := args.Get(0).(*models.Order)
	r1, _ := args.Get(1).(*models.Payment)
	return r0, r1, args.Error(2)
}

func (m *OrderService) ReceiptQRCode(ctx context.Context, actor models.Actor, id string, size int) ([]byte, error) {
	args := m.Called(ctx, actor, id, size)
	r0, _ := args.Get(0).([]byte)
	return r0, args.Error(1)
}

type ReservationService struct {
	mock.Mock
}

func NewReservationService(t testingT) *ReservationService {
	m := &ReservationService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *ReservationService) Create(ctx context.Context, actor models.Actor, req models.CreateReservationRequest) (*models.Reservation, error) {
	args := m.Called(ctx, actor, req)
	r0, _ := args.Get(0).(*models.Reservation)
	return r0, args.Error(1)
}

func (m *ReservationService) List(ctx context.Context, actor models.Actor, filter models.ReservationFilter, page models.Page) ([]models.Reservation, int64, error) {
	args := m.Called(ctx, actor, filter, page)
	r0, _ := args.Get(0).([]models.Reservation)
	r1, _ := args.Get(1).(int64)
	return r0, r1, args.Error(2)
}

func (m *ReservationService) Get(ctx context.Context, actor models.Actor, id string) (*models.Reservation, error) {
	args := m.Called(ctx, actor, id)
	r0, _ := args.Get(0).(*models.Reservation)
	return r0, args.Error(1)
}

func (m *ReservationService) UpdateStatus(ctx context.Context, actor models.Actor, id string, status models.BookingStatus) (*models.Reservation, error) {
	args := m.Called(ctx, actor, id, status)
	r0, _ := args.Get(0).(*models.Reservation)
	return r0, args.Error(1)
}

type FeedbackService struct {
	mock.Mock
}

func NewFeedbackService(t testingT) *FeedbackService {
	m := &FeedbackService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *FeedbackService) Submit(ctx context.Context, actor models.Actor, req models.FeedbackRequest) (*models.Feedback, error) {
	args := m.Called(ctx, actor, req)
	r0, _ := args.Get(0).(*models.Feedback)
	return r0, args.Error(1)
}

func (m *FeedbackService) List(ctx context.Context, actor models.Actor, page models.Page) ([]models.Feedback, int64, error) {
	args := m.Called(ctx, actor, page)
	r0, _ := args.Get(0).([]models.Feedback)
	r1, _ := args.Get(1).(int64)
	return r0, r1, args.Error(2)
}

type ReportService struct {
	mock.Mock
}

func NewReportService(t testingT) *ReportService {
	m := &ReportService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *ReportService) Generate(ctx context.Context, actor models.Actor, req models.GenerateReportRequest) (*models.Report, error) {
	args := m.Called(ctx, actor, req)
	r0, _ := args.Get(0).(*models.Report)
	return r0, args.Error(1)
}

func (m *ReportService) List(ctx context.Context, page models.Page) ([]models.Report, int64, error) {
	args := m.Called(ctx, page)
	r0, _ := args.Get(0).([]models.Report)
	r1, _ := args.Get(1).(int64)
	return r0, r1, args.Error(2)
}

func (m *ReportService) Get(ctx context.Context, id string) (*models.Report, error) {
	args := m.Called(ctx, id)
	r0, _ := args.Get(0).(*models.Report)
	return r0, args.Error(1)
}

func (m *ReportService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
