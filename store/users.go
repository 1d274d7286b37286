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

type UserRepository struct {
	coll *mongo.Collection
}

func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	res, err := r.coll.InsertOne(ctx, user)
	if err != nil {
		return writeError("users.Create", "Email already registered", err)
	}
	user.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *UserRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	var user models.User
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&user); err != nil {
		return nil, lookupError("users.FindByID", "User", err)
	}
	return &user, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&user); err != nil {
		return nil, lookupError("users.FindByEmail", "User", err)
	}
	return &user, nil
}


func (r *UserRepository) List(ctx context.Context, page models.Page) ([]models.User, int64, error) {
	return findPage[models.User](ctx, r.coll, "users.List", bson.M{}, bson.D{{Key: "createdAt", Value: -1}}, page)
}

// UpdateTokens stores the latest token pair. Empty strings clear them.
func (r *UserRepository) UpdateTokens(ctx context.Context, id primitive.ObjectID, token, refreshToken string) error {
	update := bson.M{"$set": bson.M{
		"token":        token,
		"refreshToken": refreshToken,
		"updatedAt":    time.Now().UTC(),
	}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return lookupError("users.UpdateTokens", "User", err)
	}
	if res.MatchedCount == 0 {
		return lookupError("users.UpdateTokens", "User", mongo.ErrNoDocuments)
	}
	return nil
}

func (r *UserRepository) UpdateRole(ctx context.Context, id primitive.ObjectID, role models.Role) (*models.User, error) {
	update := bson.M{"$set": bson.M{"role": role, "updatedAt": time.Now().UTC()}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var user models.User
	if err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&user); err != nil {
		return nil, lookupError("users.UpdateRole", "User", err)
	}
	return &user, nil
}
