package services

import (
	"context"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/02priyeshraj/Restaurant_Management_Backend/helper"
	"github.com/02priyeshraj/Restaurant_Management_Backend/models"
	"github.com/02priyeshraj/Restaurant_Management_Backend/pkg/apperr"
	"github.com/02priyeshraj/Restaurant_Management_Backend/pkg/logger"
)

type ReservationService struct {
	reservations   ReservationRepository
	tables         TableRepository
	defaultMinutes int
	loc            *time.Location
	log            logger.ILogger
}

func NewReservationService(reservations ReservationRepository, tables TableRepository, defaultMinutes int, loc *time.Location, log logger.ILogger) *ReservationService {
	if loc == nil {
		loc = time.UTC
	}
	if !models.ValidReservationMinutes(defaultMinutes) {
		defaultMinutes = models.DefaultReservationMinutes
	}
	return &ReservationService{
		reservations:   reservations,
		tables:         tables,
		defaultMinutes: defaultMinutes,
		loc:            loc,
		log:            log,
	}
}

// Create books a table for the actor. The booking starts pending and is
// refused if any pending or confirmed booking on the table overlaps it.
func (s *ReservationService) Create(ctx context.Context, actor models.Actor, req models.CreateReservationRequest) (reservation *models.Reservation, err error) {
	const op = "reservations.Create"

	ctx, span := startSpan(ctx, op)
	defer func() { endSpan(span, err) }()

	if err := helper.ValidateStruct(op, req); err != nil {
		return nil, err
	}
	if req.Duration == 0 {
		req.Duration = s.defaultMinutes
	}

	tableID, err := parseID(op, "table id", req.Table)
	if err != nil {
		return nil, err
	}
	start, end, err := models.ReservationWindow(req.Date, req.Time, req.Duration, s.loc)
	if err != nil {
		return nil, apperr.Validation(op, "%s", err.Error())
	}
	span.SetAttributes(
		attribute.String("reservation.table", req.Table),
		attribute.String("reservation.start", start.Format(time.RFC3339)),
	)

	table, err := s.tables.FindByID(ctx, tableID)
	if err != nil {
		return nil, err
	}
	if req.NumberOfGuests > table.Capacity {
		return nil, apperr.Validation(op, "Table %d seats at most %d guests", table.TableNumber, table.Capacity)
	}

	clashes, err := s.reservations.FindOverlapping(ctx, tableID, start, end, models.HoldingStatuses(), nil)
	if err != nil {
		return nil, err
	}
	if len(clashes) > 0 {
		return nil, apperr.Conflict(op, "Table %d is already booked for the requested time", table.TableNumber)
	}

	now := time.Now().UTC()
	reservation = &models.Reservation{
		Customer:        actor.ID,
		Table:           tableID,
		Date:            req.Date,
		Time:            req.Time,
		NumberOfGuests:  req.NumberOfGuests,
		Duration:        req.Duration,
		BookingStatus:   models.BookingPending,
		SpecialRequests: strings.TrimSpace(req.SpecialRequests),
		StartAt:         start.UTC(),
		EndAt:           end.UTC(),
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := s.reservations.Create(ctx, reservation); err != nil {
		return nil, err
	}

	s.log.Info("reservation created",
		logger.String("reservation_id", reservation.ID.Hex()),
		logger.Int("table_number", table.TableNumber),
		logger.String("start", start.Format(time.RFC3339)),
		logger.Int("duration_minutes", req.Duration),
	)
	return reservation, nil
}

// List returns every reservation to staff and only their own to customers.
func (s *ReservationService) List(ctx context.Context, actor models.Actor, filter models.ReservationFilter, page models.Page) ([]models.Reservation, int64, error) {
	const op = "reservations.List"

	if filter.Status != "" && !filter.Status.Valid() {
		return nil, 0, apperr.Validation(op, "Unknown booking status %q", filter.Status)
	}
	if filter.Date != "" {
		if _, err := time.Parse(models.DateLayout, filter.Date); err != nil {
			return nil, 0, apperr.Validation(op, "date must be YYYY-MM-DD")
		}
	}
	if !actor.IsStaff() {
		customer := actor.ID
		filter.Customer = &customer
	}
	return s.reservations.List(ctx, filter, page)
}

func (s *ReservationService) Get(ctx context.Context, actor models.Actor, id string) (*models.Reservation, error) {
	return s.load(ctx, "reservations.Get", actor, id)
}

func (s *ReservationService) load(ctx context.Context, op string, actor models.Actor, id string) (*models.Reservation, error) {
	reservationID, err := parseID(op, "reservation id", id)
	if err != nil {
		return nil, err
	}
	reservation, err := s.reservations.FindByID(ctx, reservationID)
	if err != nil {
		return nil, err
	}
	if !actor.CanAccess(reservation.Customer) {
		return nil, apperr.Forbidden(op, "You do not have access to this reservation")
	}
	return reservation, nil
}

// UpdateStatus applies a booking transition. Customers may only cancel
// their own bookings; confirming re-checks the table against other
// confirmed bookings.
func (s *ReservationService) UpdateStatus(ctx context.Context, actor models.Actor, id string, status models.BookingStatus) (reservation *models.Reservation, err error) {
	const op = "reservations.UpdateStatus"

	ctx, span := startSpan(ctx, op)
	defer func() { endSpan(span, err) }()

	if err := helper.ValidateStruct(op, models.UpdateReservationStatusRequest{BookingStatus: status}); err != nil {
		return nil, err
	}

	current, err := s.load(ctx, op, actor, id)
	if err != nil {
		return nil, err
	}
	if !actor.IsStaff() && status != models.BookingCanceled {
		return nil, apperr.Forbidden(op, "Customers can only cancel reservations")
	}
	if !current.BookingStatus.CanTransitionTo(status) {
		return nil, apperr.Validation(op, "Cannot change reservation status from %s to %s", current.BookingStatus, status)
	}

	if status == models.BookingConfirmed {
		clashes, err := s.reservations.FindOverlapping(ctx, current.Table, current.StartAt, current.EndAt,
			[]models.BookingStatus{models.BookingConfirmed}, &current.ID)
		if err != nil {
			return nil, err
		}
		if len(clashes) > 0 {
			return nil, apperr.Conflict(op, "Another confirmed reservation overlaps this booking")
		}
	}

	reservation, err = s.reservations.TransitionStatus(ctx, current.ID, current.BookingStatus, status)
	if err != nil {
		return nil, err
	}

	s.log.Info("reservation status changed",
		logger.String("reservation_id", id),
		logger.String("from", string(current.BookingStatus)),
		logger.String("to", string(status)),
		logger.String("actor_id", actor.ID.Hex()),
	)
	return reservation, nil
}
