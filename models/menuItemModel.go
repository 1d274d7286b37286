package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MenuItem struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name" json:"name"`
	Description  string             `bson:"description" json:"description"`
	Price        float64            `bson:"price" json:"price"`
	Availability bool               `bson:"availability" json:"availability"`
	Category     string             `bson:"category" json:"category"`
	ImageURL     string             `bson:"imageUrl,omitempty" json:"imageUrl,omitempty"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}

type MenuItemRequest struct {
	Name         string   `json:"name" validate:"required,min=2,max=100"`
	Description  string   `json:"description" validate:"max=500"`
	Price        *float64 `json:"price" validate:"required,gte=0"`
	Availability *bool    `json:"availability"`
	Category     string   `json:"category" validate:"required,min=2,max=50"`
	ImageURL     string   `json:"imageUrl" validate:"omitempty,url"`
}

// MenuItemUpdate is a partial update; nil fields are left untouched.
type MenuItemUpdate struct {
	Name         *string  `json:"name" validate:"omitempty,min=2,max=100"`
	Description  *string  `json:"description" validate:"omitempty,max=500"`
	Price        *float64 `json:"price" validate:"omitempty,gte=0"`
	Availability *bool    `json:"availability"`
	Category     *string  `json:"category" validate:"omitempty,min=2,max=50"`
	ImageURL     *string  `json:"imageUrl" validate:"omitempty,url"`
}

func (u MenuItemUpdate) Empty() bool {
	return u.Name == nil && u.Description == nil && u.Price == nil &&
		u.Availability == nil && u.Category == nil && u.ImageURL == nil
}

type MenuItemFilter struct {
	Category  string
	Available *bool
}
