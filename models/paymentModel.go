package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Payment struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Order         primitive.ObjectID `bson:"order" json:"order"`
	Customer      primitive.ObjectID `bson:"customer" json:"customer"`
	Amount        float64            `bson:"amount" json:"amount"`
	Method        PaymentType        `bson:"method" json:"method"`
	Status        PaymentStatus      `bson:"status" json:"status"`
	TransactionID string             `bson:"transactionId" json:"transactionId"`
	PaidAt        time.Time          `bson:"paidAt" json:"paidAt"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
}
