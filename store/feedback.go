package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/02priyeshraj/Restaurant_Management_Backend/models"
)

type FeedbackRepository struct {
	coll *mongo.Collection
}

func (r *FeedbackRepository) Create(ctx context.Context, feedback *models.Feedback) error {
	res, err := r.coll.InsertOne(ctx, feedback)
	if err != nil {
		return writeError("feedback.Create", "Feedback already submitted", err)
	}
	feedback.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *FeedbackRepository) List(ctx context.Context, filter models.FeedbackFilter, page models.Page) ([]models.Feedback, int64, error) {
	match := bson.M{}
	if filter.Customer != nil {
		match["customer"] = *filter.Customer
	}
	return findPage[models.Feedback](ctx, r.coll, "feedback.List", match, bson.D{{Key: "createdAt", Value: -1}}, page)
}

func (r *FeedbackRepository) FindCreatedBetween(ctx context.Context, start, end time.Time) ([]models.Feedback, error) {
	return findAll[models.Feedback](ctx, r.coll, "feedback.FindCreatedBetween", createdBetween("createdAt", start, end))
}
