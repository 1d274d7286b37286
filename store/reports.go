package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/02priyeshraj/Restaurant_Management_Backend/models"
)

type ReportRepository struct {
	coll *mongo.Collection
}

func (r *ReportRepository) Create(ctx context.Context, report *models.Report) error {
	res, err := r.coll.InsertOne(ctx, report)
	if err != nil {
		return writeError("reports.Create", "Report already exists", err)
	}
	report.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *ReportRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Report, error) {
	var report models.Report
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&report); err != nil {
		return nil, lookupError("reports.FindByID", "Report", err)
	}
	return &report, nil
}

func (r *ReportRepository) List(ctx context.Context, page models.Page) ([]models.Report, int64, error) {
	return findPage[models.Report](ctx, r.coll, "reports.List", bson.M{}, bson.D{{Key: "generatedAt", Value: -1}}, page)
}

func (r *ReportRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return lookupError("reports.Delete", "Report", err)
	}
	if res.DeletedCount == 0 {
		return lookupError("reports.Delete", "Report", mongo.ErrNoDocuments)
	}
	return nil
}
