package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/02priyeshraj/Restaurant_Management_Backend/models"
	"github.com/02priyeshraj/Restaurant_Management_Backend/pkg/apperr"
)

type ReservationRepository struct {
	coll *mongo.Collection
}

func (r *ReservationRepository) Create(ctx context.Context, reservation *models.Reservation) error {
	res, err := r.coll.InsertOne(ctx, reservation)
	if err != nil {
		return writeError("reservations.Create", "Reservation already exists", err)
	}
	reservation.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *ReservationRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Reservation, error) {
	var reservation models.Reservation
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&reservation); err != nil {
		return nil, lookupError("reservations.FindByID", "Reservation", err)
	}
	return &reservation, nil
}

func (r *ReservationRepository) List(ctx context.Context, filter models.ReservationFilter, page models.Page) ([]models.Reservation, int64, error) {
	return findPage[models.Reservation](ctx, r.coll, "reservations.List", reservationMatch(filter), bson.D{{Key: "startAt", Value: -1}}, page)
}

func reservationMatch(filter models.ReservationFilter) bson.M {
	match := bson.M{}
	if filter.Customer != nil {
		match["customer"] = *filter.Customer
	}
	if filter.Table != nil {
		match["table"] = *filter.Table
	}
	if filter.Status != "" {
		match["bookingStatus"] = filter.Status
	}
	if filter.Date != "" {
		match["date"] = filter.Date
	}
	return match
}

// OverlapFilter matches reservations on table, in one of statuses, whose
// [startAt, endAt) window intersects [start, end). exclude, when non-nil,
// drops that reservation from the match.
func OverlapFilter(table primitive.ObjectID, start, end time.Time, statuses []models.BookingStatus, exclude *primitive.ObjectID) bson.M {
	filter := bson.M{
		"table":         table,
		"bookingStatus": bson.M{"$in": statuses},
		"startAt":       bson.M{"$lt": end},
		"endAt":         bson.M{"$gt": start},
	}
	if exclude != nil {
		filter["_id"] = bson.M{"$ne": *exclude}
	}
	return filter
}

func (r *ReservationRepository) FindOverlapping(ctx context.Context, table primitive.ObjectID, start, end time.Time, statuses []models.BookingStatus, exclude *primitive.ObjectID) ([]models.Reservation, error) {
	filter := OverlapFilter(table, start, end, statuses, exclude)
	return findAll[models.Reservation](ctx, r.coll, "reservations.FindOverlapping", filter)
}

// BookedTables returns the ids of tables held by a pending or confirmed
// reservation intersecting [start, end).
func (r *ReservationRepository) BookedTables(ctx context.Context, start, end time.Time) ([]primitive.ObjectID, error) {
	filter := bson.M{
		"bookingStatus": bson.M{"$in": models.HoldingStatuses()},
		"startAt":       bson.M{"$lt": end},
		"endAt":         bson.M{"$gt": start},
	}
	values, err := r.coll.Distinct(ctx, "table", filter)
	if err != nil {
		return nil, fmt.Errorf("reservations.BookedTables: %w", err)
	}

	ids := make([]primitive.ObjectID, 0, len(values))
	for _, v := range values {
		if id, ok := v.(primitive.ObjectID); ok {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

// TransitionStatus applies a booking status change if the stored status is
// still from.
func (r *ReservationRepository) TransitionStatus(ctx context.Context, id primitive.ObjectID, from, to models.BookingStatus) (*models.Reservation, error) {
	filter := bson.M{"_id": id, "bookingStatus": from}
	update := bson.M{"$set": bson.M{"bookingStatus": to, "updatedAt": time.Now().UTC()}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var reservation models.Reservation
	err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&reservation)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperr.Conflict("reservations.TransitionStatus", "Reservation status was changed by another request")
	}
	if err != nil {
		return nil, lookupError("reservations.TransitionStatus", "Reservation", err)
	}
	return &reservation, nil
}

// FindStartingBetween returns reservations whose startAt lies in [start, end].
func (r *ReservationRepository) FindStartingBetween(ctx context.Context, start, end time.Time) ([]models.Reservation, error) {
	return findAll[models.Reservation](ctx, r.coll, "reservations.FindStartingBetween", createdBetween("startAt", start, end))
}
