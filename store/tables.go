package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/02priyeshraj/Restaurant_Management_Backend/models"
)

type TableRepository struct {
	coll *mongo.Collection
}

const duplicateTableMessage = "Table number already exists"

func (r *TableRepository) Create(ctx context.Context, table *models.Table) error {
	res, err := r.coll.InsertOne(ctx, table)
	if err != nil {
		return writeError("tables.Create", duplicateTableMessage, err)
	}
	table.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *TableRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Table, error) {
	var table models.Table
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&table); err != nil {
		return nil, lookupError("tables.FindByID", "Table", err)
	}
	return &table, nil
}

func (r *TableRepository) List(ctx context.Context, page models.Page) ([]models.Table, int64, error) {
	return findPage[models.Table](ctx, r.coll, "tables.List", bson.M{}, bson.D{{Key: "tableNumber", Value: 1}}, page)
}

// ListSeating returns every table with capacity >= guests, ordered by
// table number.
func (r *TableRepository) ListSeating(ctx context.Context, guests int) ([]models.Table, error) {
	filter := bson.M{}
	if guests > 0 {
		filter["capacity"] = bson.M{"$gte": guests}
	}
	opts := options.Find().SetSort(bson.D{{Key: "tableNumber", Value: 1}})
	return findAll[models.Table](ctx, r.coll, "tables.ListSeating", filter, opts)
}

func (r *TableRepository) Update(ctx context.Context, id primitive.ObjectID, update models.TableUpdate) (*models.Table, error) {
	set := bson.M{"updatedAt": time.Now().UTC()}
	if update.TableNumber != nil {
		set["tableNumber"] = *update.TableNumber
	}
	if update.Capacity != nil {
		set["capacity"] = *update.Capacity
	}
	if update.Location != nil {
		set["location"] = *update.Location
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var table models.Table
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&table)
	if mongo.IsDuplicateKeyError(err) {
		return nil, writeError("tables.Update", duplicateTableMessage, err)
	}
	if err != nil {
		return nil, lookupError("tables.Update", "Table", err)
	}
	return &table, nil
}

func (r *TableRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return lookupError("tables.Delete", "Table", err)
	}
	if res.DeletedCount == 0 {
		return lookupError("tables.Delete", "Table", mongo.ErrNoDocuments)
	}
	return nil
}
