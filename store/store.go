package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/02priyeshraj/Restaurant_Management_Backend/models"
	"github.com/02priyeshraj/Restaurant_Management_Backend/pkg/apperr"
)

const (
	UserCollection        = "users"
	MenuItemCollection    = "menuItems"
	TableCollection       = "tables"
	OrderCollection       = "orders"
	PaymentCollection     = "payments"
	ReservationCollection = "reservations"
	FeedbackCollection    = "feedback"
	ReportCollection      = "reports"
)

// Store bundles the repositories over a single database.
type Store struct {
	DB *mongo.Database

	Users        *UserRepository
	MenuItems    *MenuItemRepository
	Tables       *TableRepository
	Orders       *OrderRepository
	Payments     *PaymentRepository
	Reservations *ReservationRepository
	Feedback     *FeedbackRepository
	Reports      *ReportRepository
}

func New(db *mongo.Database) *Store {
	return &Store{
		DB:           db,
		Users:        &UserRepository{coll: db.Collection(UserCollection)},
		MenuItems:    &MenuItemRepository{coll: db.Collection(MenuItemCollection)},
		Tables:       &TableRepository{coll: db.Collection(TableCollection)},
		Orders:       &OrderRepository{coll: db.Collection(OrderCollection)},
		Payments:     &PaymentRepository{coll: db.Collection(PaymentCollection)},
		Reservations: &ReservationRepository{coll: db.Collection(ReservationCollection)},
		Feedback:     &FeedbackRepository{coll: db.Collection(FeedbackCollection)},
		Reports:      &ReportRepository{coll: db.Collection(ReportCollection)},
	}
}

// EnsureIndexes creates the unique and lookup indexes the API relies on.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	indexes := map[string][]mongo.IndexModel{
		UserCollection: {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		TableCollection: {
			{Keys: bson.D{{Key: "tableNumber", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		MenuItemCollection: {
			{Keys: bson.D{{Key: "category", Value: 1}, {Key: "availability", Value: 1}}},
		},
		OrderCollection: {
			{Keys: bson.D{{Key: "customer", Value: 1}, {Key: "createdAt", Value: -1}}},
			{Keys: bson.D{{Key: "createdAt", Value: 1}}},
		},
		PaymentCollection: {
			{Keys: bson.D{{Key: "order", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		ReservationCollection: {
			{Keys: bson.D{{Key: "table", Value: 1}, {Key: "startAt", Value: 1}}},
			{Keys: bson.D{{Key: "customer", Value: 1}, {Key: "startAt", Value: -1}}},
		},
		FeedbackCollection: {
			{Keys: bson.D{{Key: "customer", Value: 1}, {Key: "createdAt", Value: -1}}},
		},
		ReportCollection: {
			{Keys: bson.D{{Key: "generatedAt", Value: -1}}},
		},
	}

	for name, idx := range indexes {
		if _, err := s.DB.Collection(name).Indexes().CreateMany(ctx, idx); err != nil {
			return fmt.Errorf("failed to create indexes on %s: %w", name, err)
		}
	}
	return nil
}

func lookupError(op, what string, err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return apperr.NotFound(op, "%s not found", what)
	}
	return fmt.Errorf("%s: %w", op, err)
}

func writeError(op, conflictMessage string, err error) error {
	if mongo.IsDuplicateKeyError(err) {
		return apperr.Wrap(apperr.ErrConflict, op, conflictMessage, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}

// pagePipeline is the $match/$sort/$skip/$limit pipeline used by every
// paginated listing.
func pagePipeline(match bson.M, sort bson.D, page models.Page) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$sort", Value: sort}},
		{{Key: "$skip", Value: page.Skip()}},
		{{Key: "$limit", Value: page.Limit()}},
	}
}

func findPage[T any](ctx context.Context, coll *mongo.Collection, op string, match bson.M, sort bson.D, page models.Page) ([]T, int64, error) {
	cursor, err := coll.Aggregate(ctx, pagePipeline(match, sort, page))
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}
	defer cursor.Close(ctx)

	items := []T{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}

	total, err := coll.CountDocuments(ctx, match)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}
	return items, total, nil
}

func findAll[T any](ctx context.Context, coll *mongo.Collection, op string, filter interface{}, opts ...*options.FindOptions) ([]T, error) {
	cursor, err := coll.Find(ctx, filter, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer cursor.Close(ctx)

	items := []T{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return items, nil
}

// createdBetween matches documents whose field lies in [start, end].
func createdBetween(field string, start, end time.Time) bson.M {
	return bson.M{field: bson.M{"$gte": start, "$lte": end}}
}
