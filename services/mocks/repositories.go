package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/02priyeshraj/Restaurant_Management_Backend/models"
)

// testingT is satisfied by *testing.T.
type testingT interface {
	mock.TestingT
	Cleanup(func())
}

type UserRepository struct {
	mock.Mock
}

func NewUserRepository(t testingT) *UserRepository {
	m := &UserRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *UserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *UserRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	args := m.Called(ctx, id)
	r0, _ := args.Get(0).(*models.User)
	return r0, args.Error(1)
}

func (m *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	r0, _ := args.Get(0).(*models.User)
	return r0, args.Error(1)
}

func (m *UserRepository) List(ctx context.Context, page models.Page) ([]models.User, int64, error) {
	args := m.Called(ctx, page)
	r0, _ := args.Get(0).([]models.User)
	r1, _ := args.Get(1).(int64)
	return r0, r1, args.Error(2)
}

func (m *UserRepository) UpdateTokens(ctx context.Context, id primitive.ObjectID, token string, refreshToken string) error {
	args := m.Called(ctx, id, token, refreshToken)
	return args.Error(0)
}

func (m *UserRepository) UpdateRole(ctx context.Context, id primitive.ObjectID, role models.Role) (*models.User, error) {
	args := m.Called(ctx, id, role)
	r0, _ := args.Get(0).(*models.User)
	return r0, args.Error(1)
}

type MenuItemRepository struct {
	mock.Mock
}

func NewMenuItemRepository(t testingT) *MenuItemRepository {
	m := &MenuItemRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MenuItemRepository) Create(ctx context.Context, item *models.MenuItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MenuItemRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.MenuItem, error) {
	args := m.Called(ctx, id)
	r0, _ := args.Get(0).(*models.MenuItem)
	return r0, args.Error(1)
}

func (m *MenuItemRepository) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.MenuItem, error) {
	args := m.Called(ctx, ids)
	r0, _ := args.Get(0).([]models.MenuItem)
	return r0, args.Error(1)
}

func (m *MenuItemRepository) List(ctx context.Context, filter models.MenuItemFilter, page models.Page) ([]models.MenuItem, int64, error) {
	args := m.Called(ctx, filter, page)
	r0, _ := args.Get(0).([]models.MenuItem)
	r1, _ := args.Get(1).(int64)
	return r0, r1, args.Error(2)
}

func (m *MenuItemRepository) Update(ctx context.Context, id primitive.ObjectID, update models.MenuItemUpdate) (*models.MenuItem, error) {
	args := m.Called(ctx, id, update)
	r0, _ := args.Get(0).(*models.MenuItem)
	return r0, args.Error(1)
}

func (m *MenuItemRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type TableRepository struct {
	mock.Mock
}

func NewTableRepository(t testingT) *TableRepository {
	m := &TableRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *TableRepository) Create(ctx context.Context, table *models.Table) error {
	args := m.Called(ctx, table)
	return args.Error(0)
}

func (m *TableRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Table, error) {
	args := m.Called(ctx, id)
	r0, _ := args.Get(0).(*models.Table)
	return r0, args.Error(1)
}

func (m *TableRepository) List(ctx context.Context, page models.Page) ([]models.Table, int64, error) {
	args := m.Called(ctx, page)
	r0, _ := args.Get(0).([]models.Table)
	r1, _ := args.Get(1).(int64)
	return r0, r1, args.Error(2)
}

func (m *TableRepository) ListSeating(ctx context.Context, guests int) ([]models.Table, error) {
	args := m.Called(ctx, guests)
	r0, _ := args.Get(0).([]models.Table)
	return r0, args.Error(1)
}

func (m *TableRepository) Update(ctx context.Context, id primitive.ObjectID, update models.TableUpdate) (*models.Table, error) {
	args := m.Called(ctx, id, update)
	r0, _ := args.Get(0).(*models.Table)
	return r0, args.Error(1)
}

func (m *TableRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type OrderRepository struct {
	mock.Mock
}

func NewOrderRepository(t testingT) *OrderRepository {
	m := &OrderRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *OrderRepository) Create(ctx context.Context, order *models.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *OrderRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Order, error) {
	args := m.Called(ctx, id)
	r0, _ := args.Get(0).(*models.Order)
	return r0, args.Error(1)
}

func (m *OrderRepository) List(ctx context.Context, filter models.OrderFilter, page models.Page) ([]models.Order, int64, error) {
	args := m.Called(ctx, filter, page)
	r0, _ := args.Get(0).([]models.Order)
	r1, _ := args.Get(1).(int64)
	return r0, r1, args.Error(2)
}

func (m *OrderRepository) AdvanceStatus(ctx context.Context, id primitive.ObjectID, from models.OrderStatus, to models.OrderStatus, staff primitive.ObjectID) (*models.Order, error) {
	args := m.Called(ctx, id, from, to, staff)
	r0, _ := args.Get(0).(*models.Order)
	return r0, args.Error(1)
}

func (m *OrderRepository) MarkPaid(ctx context.Context, id primitive.ObjectID, paymentID primitive.ObjectID, method models.PaymentType) (*models.Order, error) {
	args := m.Called(ctx, id, paymentID, method)
	r0, _ := args.Get(0).(*models.Order)
	return r0, args.Error(1)
}

func (m *OrderRepository) FindCreatedBetween(ctx context.Context, start time.Time, end time.Time) ([]models.Order, error) {
	args := m.Called(ctx, start, end)
	r0, _ := args.Get(0).([]models.Order)
	return r0, args.Error(1)
}

type PaymentRepository struct {
	mock.Mock
}

func NewPaymentRepository(t testingT) *PaymentRepository {
	m := &PaymentRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *PaymentRepository) Create(ctx context.Context, payment *models.Payment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}

func (m *PaymentRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type ReservationRepository struct {
	mock.Mock
}

func NewReservationRepository(t testingT) *ReservationRepository {
	m := &ReservationRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *ReservationRepository) Create(ctx context.Context, reservation *models.Reservation) error {
	args := m.Called(ctx, reservation)
	return args.Error(0)
}

func (m *ReservationRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Reservation, error) {
	args := m.Called(ctx, id)
	r0, _ := args.Get(0).(*models.Reservation)
	return r0, args.Error(1)
}

func (m *ReservationRepository) List(ctx context.Context, filter models.ReservationFilter, page models.Page) ([]models.Reservation, int64, error) {
	args := m.Called(ctx, filter, page)
	r0, _ := args.Get(0).([]models.Reservation)
	r1, _ := args.Get(1).(int64)
	return r0, r1, args.Error(2)
}

func (m *ReservationRepository) FindOverlapping(ctx context.Context, table primitive.ObjectID, start time.Time, end time.Time, statuses []models.BookingStatus, exclude *primitive.ObjectID) ([]models.Reservation, error) {
	args := m.Called(ctx, table, start, end, statuses, exclude)
	r0, _ := args.Get(0).([]models.Reservation)
	return r0, args.Error(1)
}

func (m *ReservationRepository) BookedTables(ctx context.Context, start time.Time, end time.Time) ([]primitive.ObjectID, error) {
	args := m.Called(ctx, start, end)
	r0, _ := args.Get(0).([]primitive.ObjectID)
	return r0, args.Error(1)
}

func (m *ReservationRepository) TransitionStatus(ctx context.Context, id primitive.ObjectID, from models.BookingStatus, to models.BookingStatus) (*models.Reservation, error) {
	args := m.Called(ctx, id, from, to)
	r0, _ := args.Get(0).(*models.Reservation)
	return r0, args.Error(1)
}

func (m *ReservationRepository) FindStartingBetween(ctx context.Context, start time.Time, end time.Time) ([]models.Reservation, error) {
	args := m.Called(ctx, start, end)
	r0, _ := args.Get(0).([]models.Reservation)
	return r0, args.Error(1)
}

type FeedbackRepository struct {
	mock.Mock
}

func NewFeedbackRepository(t testingT) *FeedbackRepository {
	m := &FeedbackRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *FeedbackRepository) Create(ctx context.Context, feedback *models.Feedback) error {
	args := m.Called(ctx, feedback)
	return args.Error(0)
}

func (m *FeedbackRepository) List(ctx context.Context, filter models.FeedbackFilter, page models.Page) ([]models.Feedback, int64, error) {
	args := m.Called(ctx, filter, page)
	r0, _ := args.Get(0).([]models.Feedback)
	r1, _ := args.Get(1).(int64)
	return r0, r1, args.Error(2)
}

func (m *FeedbackRepository) FindCreatedBetween(ctx context.Context, start time.Time, end time.Time) ([]models.Feedback, error) {
	args := m.Called(ctx, start, end)
	r0, _ := args.Get(0).([]models.Feedback)
	return r0, args.Error(1)
}

type ReportRepository struct {
	mock.Mock
}

func NewReportRepository(t testingT) *ReportRepository {
	m := &ReportRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *ReportRepository) Create(ctx context.Context, report *models.Report) error {
	args := m.Called(ctx, report)
	return args.Error(0)
}

func (m *ReportRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Report, error) {
	args := m.Called(ctx, id)
	r0, _ := args.Get(0).(*models.Report)
	return r0, args.Error(1)
}

func (m *ReportRepository) List(ctx context.Context, page models.Page) ([]models.Report, int64, error) {
	args := m.Called(ctx, page)
	r0, _ := args.Get(0).([]models.Report)
	r1, _ := args.Get(1).(int64)
	return r0, r1, args.Error(2)
}

func (m *ReportRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type TokenRevoker struct {
	mock.Mock
}

func NewTokenRevoker(t testingT) *TokenRevoker {
	m := &TokenRevoker{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *TokenRevoker) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	args := m.Called(ctx, jti, ttl)
	return args.Error(0)
}

func (m *TokenRevoker) IsRevoked(ctx context.Context, jti string) (bool, error) {
	args := m.Called(ctx, jti)
	r0, _ := args.Get(0).(bool)
	return r0, args.Error(1)
}

type OrderEventPublisher struct {
	mock.Mock
}

func NewOrderEventPublisher(t testingT) *OrderEventPublisher {
	m := &OrderEventPublisher{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *OrderEventPublisher) PublishOrderEvent(ctx context.Context, event models.OrderEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}
