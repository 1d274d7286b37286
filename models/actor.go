package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Actor is the authenticated caller of a service operation.
type Actor struct {
	ID    primitive.ObjectID
	Email string
	Role  Role
}

func (a Actor) IsStaff() bool {
	return a.Role.IsStaff()
}

// Owns reports whether the actor is the given customer.
func (a Actor) Owns(customer primitive.ObjectID) bool {
	return a.ID == customer
}

// CanAccess reports whether the actor may see a resource owned by customer.
func (a Actor) CanAccess(customer primitive.ObjectID) bool {
	return a.IsStaff() || a.Owns(customer)
}
