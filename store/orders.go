package store

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/02priyeshraj/Restaurant_Management_Backend/models"
	"github.com/02priyeshraj/Restaurant_Management_Backend/pkg/apperr"
)

type OrderRepository struct {
	coll *mongo.Collection
}

func (r *OrderRepository) Create(ctx context.Context, order *models.Order) error {
	res, err := r.coll.InsertOne(ctx, order)
	if err != nil {
		return writeError("orders.Create", "Order already exists", err)
	}
	order.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *OrderRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Order, error) {
	var order models.Order
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&order); err != nil {
		return nil, lookupError("orders.FindByID", "Order", err)
	}
	return &order, nil
}

func (r *OrderRepository) List(ctx context.Context, filter models.OrderFilter, page models.Page) ([]models.Order, int64, error) {
	return findPage[models.Order](ctx, r.coll, "orders.List", orderMatch(filter), bson.D{{Key: "createdAt", Value: -1}}, page)
}

func orderMatch(filter models.OrderFilter) bson.M {
	match := bson.M{}
	if filter.Customer != nil {
		match["customer"] = *filter.Customer
	}
	if filter.Status != "" {
		match["status"] = filter.Status
	}
	return match
}

// AdvanceStatus moves the order from one status to the next, recording the
// staff member. It fails with a conflict if the stored status is no longer
// from.
func (r *OrderRepository) AdvanceStatus(ctx context.Context, id primitive.ObjectID, from, to models.OrderStatus, staff primitive.ObjectID) (*models.Order, error) {
	filter := bson.M{"_id": id, "status": from}
	update := bson.M{"$set": bson.M{
		"status":    to,
		"staff":     staff,
		"updatedAt": time.Now().UTC(),
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var order models.Order
	err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&order)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperr.Conflict("orders.AdvanceStatus", "Order status was changed by another request")
	}
	if err != nil {
		return nil, lookupError("orders.AdvanceStatus", "Order", err)
	}
	return &order, nil
}

// MarkPaid links a payment to an unpaid order.
func (r *OrderRepository) MarkPaid(ctx context.Context, id, paymentID primitive.ObjectID, method models.PaymentType) (*models.Order, error) {
	filter := bson.M{"_id": id, "paymentStatus": bson.M{"$ne": models.PaymentPaid}}
	update := bson.M{"$set": bson.M{
		"paymentStatus": models.PaymentPaid,
		"paymentType":   method,
		"payment":       paymentID,
		"updatedAt":     time.Now().UTC(),
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var order models.Order
	err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&order)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperr.Conflict("orders.MarkPaid", "Order is already paid")
	}
	if err != nil {
		return nil, lookupError("orders.MarkPaid", "Order", err)
	}
	return &order, nil
}

// FindCreatedBetween returns orders created within [start, end].
func (r *OrderRepository) FindCreatedBetween(ctx context.Context, start, end time.Time) ([]models.Order, error) {
	return findAll[models.Order](ctx, r.coll, "orders.FindCreatedBetween", createdBetween("createdAt", start, end))
}
