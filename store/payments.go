package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/02priyeshraj/Restaurant_Management_Backend/models"
)

type PaymentRepository struct {
	coll *mongo.Collection
}

func (r *PaymentRepository) Create(ctx context.Context, payment *models.Payment) error {
	res, err := r.coll.InsertOne(ctx, payment)
	if err != nil {
		return writeError("payments.Create", "Order is already paid", err)
	}
	payment.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *PaymentRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	if _, err := r.coll.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return fmt.Errorf("payments.Delete: %w", err)
	}
	return nil
}
