package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	ReferenceOrder       = "order"
	ReferenceReservation = "reservation"
)

type Feedback struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Customer      primitive.ObjectID `bson:"customer" json:"customer"`
	ReferenceID   primitive.ObjectID `bson:"referenceId" json:"referenceId"`
	ReferenceType string             `bson:"referenceType" json:"referenceType"`
	Rating        int                `bson:"rating" json:"rating"`
	Comment       string             `bson:"comment,omitempty" json:"comment,omitempty"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
}

type FeedbackRequest struct {
	ReferenceID string `json:"referenceId" validate:"required"`
	Rating      int    `json:"rating" validate:"required,min=1,max=5"`
	Comment     string `json:"comment" validate:"max=1000"`
}

type FeedbackFilter struct {
	Customer *primitive.ObjectID
}
