package store

import (
	"context"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/02priyeshraj/Restaurant_Management_Backend/models"
)

type MenuItemRepository struct {
	coll *mongo.Collection
}

func (r *MenuItemRepository) Create(ctx context.Context, item *models.MenuItem) error {
	res, err := r.coll.InsertOne(ctx, item)
	if err != nil {
		return writeError("menuItems.Create", "Menu item already exists", err)
	}
	item.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *MenuItemRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.MenuItem, error) {
	var item models.MenuItem
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&item); err != nil {
		return nil, lookupError("menuItems.FindByID", "Menu item", err)
	}
	return &item, nil
}

// FindByIDs returns the items that exist among ids, in no particular order.
func (r *MenuItemRepository) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.MenuItem, error) {
	return findAll[models.MenuItem](ctx, r.coll, "menuItems.FindByIDs", bson.M{"_id": bson.M{"$in": ids}})
}

func (r *MenuItemRepository) List(ctx context.Context, filter models.MenuItemFilter, page models.Page) ([]models.MenuItem, int64, error) {
	sort := bson.D{{Key: "category", Value: 1}, {Key: "name", Value: 1}}
	return findPage[models.MenuItem](ctx, r.coll, "menuItems.List", menuItemMatch(filter), sort, page)
}

func menuItemMatch(filter models.MenuItemFilter) bson.M {
	match := bson.M{}
	if filter.Category != "" {
		match["category"] = primitive.Regex{Pattern: "^" + regexp.QuoteMeta(filter.Category) + "$", Options: "i"}
	}
	if filter.Available != nil {
		match["availability"] = *filter.Available
	}
	return match
}

func (r *MenuItemRepository) Update(ctx context.Context, id primitive.ObjectID, update models.MenuItemUpdate) (*models.MenuItem, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var item models.MenuItem
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": menuItemSet(update)}, opts).Decode(&item)
	if err != nil {
		return nil, lookupError("menuItems.Update", "Menu item", err)
	}
	return &item, nil
}

func menuItemSet(update models.MenuItemUpdate) bson.M {
	set := bson.M{"updatedAt": time.Now().UTC()}
	if update.Name != nil {
		set["name"] = *update.Name
	}
	if update.Description != nil {
		set["description"] = *update.Description
	}
	if update.Price != nil {
		set["price"] = *update.Price
	}
	if update.Availability != nil {
		set["availability"] = *update.Availability
	}
	if update.Category != nil {
		set["category"] = *update.Category
	}
	if update.ImageURL != nil {
		set["imageUrl"] = *update.ImageURL
	}
	return set
}

func (r *MenuItemRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return lookupError("menuItems.Delete", "Menu item", err)
	}
	if res.DeletedCount == 0 {
		return lookupError("menuItems.Delete", "Menu item", mongo.ErrNoDocuments)
	}
	return nil
}
