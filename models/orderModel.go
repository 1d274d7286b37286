package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type OrderStatus string

const (
	OrderPending   OrderStatus = "Pending"
	OrderPreparing OrderStatus = "Preparing"
	OrderServed    OrderStatus = "Served"
	OrderCompleted OrderStatus = "Completed"
)

var orderStatusRank = map[OrderStatus]int{
	OrderPending:   0,
	OrderPreparing: 1,
	OrderServed:    2,
	OrderCompleted: 3,
}

func (s OrderStatus) Valid() bool {
	_, ok := orderStatusRank[s]
	return ok
}

// CanAdvanceTo reports whether next lies strictly after s in the
// Pending -> Preparing -> Served -> Completed progression.
func (s OrderStatus) CanAdvanceTo(next OrderStatus) bool {
	from, ok := orderStatusRank[s]
	if !ok {
		return false
	}
	to, ok := orderStatusRank[next]
	return ok && to > from
}

type OrderType string

const (
	OrderTakeaway OrderType = "Takeaway"
	OrderDineIn   OrderType = "DineIn"
	OrderDelivery OrderType = "Delivery"
)

type PaymentType string

const (
	PaymentCash   PaymentType = "Cash"
	PaymentCard   PaymentType = "Card"
	PaymentOnline PaymentType = "Online"
)

type PaymentStatus string

const (
	PaymentUnpaid PaymentStatus = "Unpaid"
	PaymentPaid   PaymentStatus = "Paid"
)

// OrderItem is a snapshot of the menu entry at order time.
type OrderItem struct {
	MenuItem primitive.ObjectID `bson:"menuItem" json:"menuItem"`
	Name     string             `bson:"name" json:"name"`
	Quantity int                `bson:"quantity" json:"quantity"`
	Price    float64            `bson:"price" json:"price"`
	SubTotal float64            `bson:"subTotal" json:"subTotal"`
}

type Order struct {
	ID              primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	Customer        primitive.ObjectID  `bson:"customer" json:"customer"`
	Staff           *primitive.ObjectID `bson:"staff,omitempty" json:"staff,omitempty"`
	Reservation     *primitive.ObjectID `bson:"reservation,omitempty" json:"reservation,omitempty"`
	OrderType       OrderType           `bson:"orderType" json:"orderType"`
	PaymentType     PaymentType         `bson:"paymentType" json:"paymentType"`
	PaymentStatus   PaymentStatus       `bson:"paymentStatus" json:"paymentStatus"`
	Payment         *primitive.ObjectID `bson:"payment,omitempty" json:"payment,omitempty"`
	Status          OrderStatus         `bson:"status" json:"status"`
	Items           []OrderItem         `bson:"items" json:"items"`
	TotalAmount     float64             `bson:"totalAmount" json:"totalAmount"`
	DeliveryAddress string              `bson:"deliveryAddress,omitempty" json:"deliveryAddress,omitempty"`
	Notes           string              `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt       time.Time           `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time           `bson:"updatedAt" json:"updatedAt"`
}

type OrderLineRequest struct {
	MenuItem string `json:"menuItem" validate:"required"`
	Quantity int    `json:"quantity" validate:"required,min=1,max=100"`
}

type PlaceOrderRequest struct {
	Items           []OrderLineRequest `json:"items" validate:"required,min=1,dive"`
	OrderType       OrderType          `json:"orderType" validate:"required,oneof=Takeaway DineIn Delivery"`
	PaymentType     PaymentType        `json:"paymentType" validate:"required,oneof=Cash Card Online"`
	Reservation     string             `json:"reservation"`
	DeliveryAddress string             `json:"deliveryAddress" validate:"max=300"`
	Notes           string             `json:"notes" validate:"max=500"`
}

type UpdateOrderStatusRequest struct {
	Status OrderStatus `json:"status" validate:"required,oneof=Pending Preparing Served Completed"`
}

type PaymentRequest struct {
	PaymentType PaymentType `json:"paymentType" validate:"required,oneof=Cash Card Online"`
}

type OrderFilter struct {
	Customer *primitive.ObjectID
	Status   OrderStatus
}

const (
	EventOrderPlaced        = "order.placed"
	EventOrderStatusChanged = "order.status_changed"
	EventOrderPaid          = "order.paid"
)

// OrderEvent is published to the order topic after a state change is persisted.
type OrderEvent struct {
	Type        string      `json:"type"`
	OrderID     string      `json:"orderId"`
	CustomerID  string      `json:"customerId"`
	Status      OrderStatus `json:"status"`
	OrderType   OrderType   `json:"orderType"`
	TotalAmount float64     `json:"totalAmount"`
	OccurredAt  time.Time   `json:"occurredAt"`
}

func NewOrderEvent(eventType string, order *Order) OrderEvent {
	return OrderEvent{
		Type:        eventType,
		OrderID:     order.ID.Hex(),
		CustomerID:  order.Customer.Hex(),
		Status:      order.Status,
		OrderType:   order.OrderType,
		TotalAmount: order.TotalAmount,
		OccurredAt:  time.Now().UTC(),
	}
}
