package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Table struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	TableNumber int                `bson:"tableNumber" json:"tableNumber"`
	Capacity    int                `bson:"capacity" json:"capacity"`
	Location    string             `bson:"location" json:"location"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

type TableRequest struct {
	TableNumber int    `json:"tableNumber" validate:"required,min=1"`
	Capacity    int    `json:"capacity" validate:"required,min=1"`
	Location    string `json:"location" validate:"max=100"`
}

type TableUpdate struct {
	TableNumber *int    `json:"tableNumber" validate:"omitempty,min=1"`
	Capacity    *int    `json:"capacity" validate:"omitempty,min=1"`
	Location    *string `json:"location" validate:"omitempty,max=100"`
}

func (u TableUpdate) Empty() bool {
	return u.TableNumber == nil && u.Capacity == nil && u.Location == nil
}

// AvailabilityQuery asks which tables can seat Guests for Duration minutes
// starting at Date/Time.
type AvailabilityQuery struct {
	Date     string `json:"date" validate:"required"`
	Time     string `json:"time" validate:"required,hhmm"`
	Duration int    `json:"duration" validate:"omitempty,min=30,max=480"`
	Guests   int    `json:"guests" validate:"omitempty,min=1"`
}
