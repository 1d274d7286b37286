package services

import (
	"context"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/02priyeshraj/Restaurant_Management_Backend/helper"
	"github.com/02priyeshraj/Restaurant_Management_Backend/models"
	"github.com/02priyeshraj/Restaurant_Management_Backend/pkg/apperr"
	"github.com/02priyeshraj/Restaurant_Management_Backend/pkg/logger"
)

type FeedbackService struct {
	feedback     FeedbackRepository
	orders       OrderRepository
	reservations ReservationRepository
	log          logger.ILogger
}

func NewFeedbackService(feedback FeedbackRepository, orders OrderRepository, reservations ReservationRepository, log logger.ILogger) *FeedbackService {
	return &FeedbackService{
		feedback:     feedback,
		orders:       orders,
		reservations: reservations,
		log:          log,
	}
}

// Submit stores a rating against one of the actor's orders or reservations.
func (s *FeedbackService) Submit(ctx context.Context, actor models.Actor, req models.FeedbackRequest) (*models.Feedback, error) {
	const op = "feedback.Submit"

	if err := helper.ValidateStruct(op, req); err != nil {
		return nil, err
	}
	referenceID, err := parseID(op, "reference id", req.ReferenceID)
	if err != nil {
		return nil, err
	}

	referenceType, owner, err := s.resolveReference(ctx, op, referenceID)
	if err != nil {
		return nil, err
	}
	if !actor.CanAccess(owner) {
		return nil, apperr.Forbidden(op, "You can only leave feedback on your own %s", referenceType)
	}

	feedback := &models.Feedback{
		Customer:      actor.ID,
		ReferenceID:   referenceID,
		ReferenceType: referenceType,
		Rating:        req.Rating,
		Comment:       strings.TrimSpace(req.Comment),
		CreatedAt:     time.Now().UTC(),
	}
	if err := s.feedback.Create(ctx, feedback); err != nil {
		return nil, err
	}

	s.log.Info("feedback submitted",
		logger.String("feedback_id", feedback.ID.Hex()),
		logger.String("reference_type", referenceType),
		logger.Int("rating", req.Rating),
	)
	return feedback, nil
}

// resolveReference looks the id up as an order first, then as a reservation.
func (s *FeedbackService) resolveReference(ctx context.Context, op string, id primitive.ObjectID) (string, primitive.ObjectID, error) {
	order, err := s.orders.FindByID(ctx, id)
	if err == nil {
		return models.ReferenceOrder, order.Customer, nil
	}
	if !apperr.IsNotFound(err) {
		return "", primitive.NilObjectID, err
	}

	reservation, err := s.reservations.FindByID(ctx, id)
	if err == nil {
		return models.ReferenceReservation, reservation.Customer, nil
	}
	if !apperr.IsNotFound(err) {
		return "", primitive.NilObjectID, err
	}

	return "", primitive.NilObjectID, apperr.NotFound(op, "Referenced order or reservation not found")
}

func (s *FeedbackService) List(ctx context.Context, actor models.Actor, page models.Page) ([]models.Feedback, int64, error) {
	filter := models.FeedbackFilter{}
	if !actor.IsStaff() {
		customer := actor.ID
		filter.Customer = &customer
	}
	return s.feedback.List(ctx, filter, page)
}
