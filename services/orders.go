package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.opentelemetry.io/otel/attribute"

	"github.com/02priyeshraj/Restaurant_Management_Backend/helper"
	"github.com/02priyeshraj/Restaurant_Management_Backend/models"
	"github.com/02priyeshraj/Restaurant_Management_Backend/pkg/apperr"
	"github.com/02priyeshraj/Restaurant_Management_Backend/pkg/logger"
)

type OrderService struct {
	orders       OrderRepository
	items        MenuItemRepository
	reservations ReservationRepository
	payments     PaymentRepository
	publisher    OrderEventPublisher
	receiptBase  string
	log          logger.ILogger
}

type OrderServiceDeps struct {
	Orders       OrderRepository
	MenuItems    MenuItemRepository
	Reservations ReservationRepository
	Payments     PaymentRepository
	Publisher    OrderEventPublisher
	// ReceiptBaseURL prefixes the receipt link encoded in QR codes.
	ReceiptBaseURL string
	Log            logger.ILogger
}

func NewOrderService(deps OrderServiceDeps) *OrderService {
	return &OrderService{
		orders:       deps.Orders,
		items:        deps.MenuItems,
		reservations: deps.Reservations,
		payments:     deps.Payments,
		publisher:    deps.Publisher,
		receiptBase:  strings.TrimRight(deps.ReceiptBaseURL, "/"),
		log:          deps.Log,
	}
}

// Place prices every line from the current menu and stores a Pending,
// Unpaid order. Nothing is written unless every line resolves.
func (s *OrderService) Place(ctx context.Context, actor models.Actor, req models.PlaceOrderRequest) (order *models.Order, err error) {
	const op = "orders.Place"

	ctx, span := startSpan(ctx, op)
	defer func() { endSpan(span, err) }()
	span.SetAttributes(
		attribute.String("order.type", string(req.OrderType)),
		attribute.Int("order.lines", len(req.Items)),
	)

	if err := helper.ValidateStruct(op, req); err != nil {
		return nil, err
	}

	var reservationRef *primitive.ObjectID
	if req.OrderType == models.OrderDineIn && req.Reservation == "" {
		return nil, apperr.Validation(op, "DineIn orders require a reservation")
	}
	if req.OrderType == models.OrderDelivery && strings.TrimSpace(req.DeliveryAddress) == "" {
		return nil, apperr.Validation(op, "Delivery orders require a delivery address")
	}
	if req.Reservation != "" {
		reservationID, err := parseID(op, "reservation id", req.Reservation)
		if err != nil {
			return nil, err
		}
		reservation, err := s.reservations.FindByID(ctx, reservationID)
		if err != nil {
			return nil, err
		}
		if !actor.CanAccess(reservation.Customer) {
			return nil, apperr.NotFound(op, "Reservation not found")
		}
		reservationRef = &reservation.ID
	}

	lines, total, err := s.priceLines(ctx, op, req.Items)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	order = &models.Order{
		Customer:        actor.ID,
		Reservation:     reservationRef,
		OrderType:       req.OrderType,
		PaymentType:     req.PaymentType,
		PaymentStatus:   models.PaymentUnpaid,
		Status:          models.OrderPending,
		Items:           lines,
		TotalAmount:     total,
		DeliveryAddress: req.DeliveryAddress,
		Notes:           req.Notes,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := s.orders.Create(ctx, order); err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.String("order.id", order.ID.Hex()))

	s.log.Info("order placed",
		logger.String("order_id", order.ID.Hex()),
		logger.String("customer_id", actor.ID.Hex()),
		logger.Float64("total_amount", total),
	)
	s.publish(ctx, models.EventOrderPlaced, order)

	return order, nil
}

// priceLines snapshots name and price for each requested line.
func (s *OrderService) priceLines(ctx context.Context, op string, requested []models.OrderLineRequest) ([]models.OrderItem, float64, error) {
	ids := make([]primitive.ObjectID, 0, len(requested))
	for _, line := range requested {
		id, err := parseID(op, "menu item id", line.MenuItem)
		if err != nil {
			return nil, 0, err
		}
		ids = append(ids, id)
	}

	found, err := s.items.FindByIDs(ctx, ids)
	if err != nil {
		return nil, 0, err
	}
	byID := make(map[primitive.ObjectID]models.MenuItem, len(found))
	for _, item := range found {
		byID[item.ID] = item
	}

	lines := make([]models.OrderItem, 0, len(requested))
	var total float64
	for i, line := range requested {
		item, ok := byID[ids[i]]
		if !ok {
			return nil, 0, apperr.NotFound(op, "Menu item %s not found", line.MenuItem)
		}
		if !item.Availability {
			return nil, 0, apperr.Validation(op, "Menu item %s is not available", item.Name)
		}

		subTotal := roundCents(item.Price * float64(line.Quantity))
		lines = append(lines, models.OrderItem{
			MenuItem: item.ID,
			Name:     item.Name,
			Quantity: line.Quantity,
			Price:    item.Price,
			SubTotal: subTotal,
		})
		total += subTotal
	}

	return lines, roundCents(total), nil
}

func (s *OrderService) List(ctx context.Context, filter models.OrderFilter, page models.Page) ([]models.Order, int64, error) {
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, 0, apperr.Validation("orders.List", "Unknown order status %q", filter.Status)
	}
	return s.orders.List(ctx, filter, page)
}

// History lists the actor's own orders, newest first.
func (s *OrderService) History(ctx context.Context, actor models.Actor, page models.Page) ([]models.Order, int64, error) {
	customer := actor.ID
	return s.orders.List(ctx, models.OrderFilter{Customer: &customer}, page)
}

func (s *OrderService) Get(ctx context.Context, actor models.Actor, id string) (*models.Order, error) {
	return s.load(ctx, "orders.Get", actor, id)
}

func (s *OrderService) load(ctx context.Context, op string, actor models.Actor, id string) (*models.Order, error) {
	orderID, err := parseID(op, "order id", id)
	if err != nil {
		return nil, err
	}
	order, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if !actor.CanAccess(order.Customer) {
		return nil, apperr.Forbidden(op, "You do not have access to this order")
	}
	return order, nil
}

// UpdateStatus moves an order forward along Pending, Preparing, Served,
// Completed. Steps may be skipped; going back or staying put may not.
func (s *OrderService) UpdateStatus(ctx context.Context, actor models.Actor, id string, status models.OrderStatus) (order *models.Order, err error) {
	const op = "orders.UpdateStatus"

	ctx, span := startSpan(ctx, op)
	defer func() { endSpan(span, err) }()

	if !actor.IsStaff() {
		return nil, apperr.Forbidden(op, "Only staff can update order status")
	}
	if !status.Valid() {
		return nil, apperr.Validation(op, "Unknown order status %q", status)
	}

	current, err := s.load(ctx, op, actor, id)
	if err != nil {
		return nil, err
	}
	if !current.Status.CanAdvanceTo(status) {
		return nil, apperr.Validation(op, "Cannot change order status from %s to %s", current.Status, status)
	}

	order, err = s.orders.AdvanceStatus(ctx, current.ID, current.Status, status, actor.ID)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.String("order.status", string(status)))

	s.log.Info("order status changed",
		logger.String("order_id", id),
		logger.String("from", string(current.Status)),
		logger.String("to", string(status)),
		logger.String("staff_id", actor.ID.Hex()),
	)
	s.publish(ctx, models.EventOrderStatusChanged, order)

	return order, nil
}

// Pay records a payment for the full order amount and links it to the order.
func (s *OrderService) Pay(ctx context.Context, actor models.Actor, id string, method models.PaymentType) (order *models.Order, payment *models.Payment, err error) {
	const op = "orders.Pay"

	ctx, span := startSpan(ctx, op)
	defer func() { endSpan(span, err) }()

	if err := helper.ValidateStruct(op, models.PaymentRequest{PaymentType: method}); err != nil {
		return nil, nil, err
	}

	current, err := s.load(ctx, op, actor, id)
	if err != nil {
		return nil, nil, err
	}
	if current.PaymentStatus == models.PaymentPaid {
		return nil, nil, apperr.Conflict(op, "Order is already paid")
	}

	now := time.Now().UTC()
	payment = &models.Payment{
		Order:         current.ID,
		Customer:      current.Customer,
		Amount:        current.TotalAmount,
		Method:        method,
		Status:        models.PaymentPaid,
		TransactionID: uuid.NewString(),
		PaidAt:        now,
		CreatedAt:     now,
	}
	if err := s.payments.Create(ctx, payment); err != nil {
		return nil, nil, err
	}

	order, err = s.orders.MarkPaid(ctx, current.ID, payment.ID, method)
	if err != nil {
		if delErr := s.payments.Delete(ctx, payment.ID); delErr != nil {
			s.log.Error("failed to roll back payment",
				logger.String("payment_id", payment.ID.Hex()),
				logger.Error(delErr),
			)
		}
		return nil, nil, err
	}

	s.log.Info("order paid",
		logger.String("order_id", id),
		logger.String("transaction_id", payment.TransactionID),
		logger.Float64("amount", payment.Amount),
	)
	s.publish(ctx, models.EventOrderPaid, order)

	return order, payment, nil
}

// ReceiptURL is the link encoded in an order's receipt QR code.
func (s *OrderService) ReceiptURL(id string) string {
	return fmt.Sprintf("%s/orders/%s", s.receiptBase, id)
}

func (s *OrderService) publish(ctx context.Context, eventType string, order *models.Order) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishOrderEvent(ctx, models.NewOrderEvent(eventType, order)); err != nil {
		s.log.Warning("failed to publish order event",
			logger.String("event", eventType),
			logger.String("order_id", order.ID.Hex()),
			logger.Error(err),
		)
	}
}
