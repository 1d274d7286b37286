package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/02priyeshraj/Restaurant_Management_Backend/models"
	"github.com/02priyeshraj/Restaurant_Management_Backend/pkg/apperr"
	"github.com/02priyeshraj/Restaurant_Management_Backend/pkg/logger"
	"github.com/02priyeshraj/Restaurant_Management_Backend/services"
	"github.com/02priyeshraj/Restaurant_Management_Backend/services/mocks"
)

func newReservationService(t *testing.T) (*services.ReservationService, *mocks.ReservationRepository, *mocks.TableRepository) {
	reservations := mocks.NewReservationRepository(t)
	tables := mocks.NewTableRepository(t)
	svc := services.NewReservationService(reservations, tables, 120, time.UTC, logger.NewNop())
	return svc, reservations, tables
}

func TestReservationService_Create(t *testing.T) {
	table := &models.Table{ID: primitive.NewObjectID(), TableNumber: 7, Capacity: 4}
	actor := customer()

	baseRequest := func() models.CreateReservationRequest {
		return models.CreateReservationRequest{
			Table:          table.ID.Hex(),
			Date:           "2024-05-10",
			Time:           "19:00",
			NumberOfGuests: 4,
		}
	}

	tests := []struct {
		name         string
		req          func() models.CreateReservationRequest
		prepareMocks func(reservations *mocks.ReservationRepository, tables *mocks.TableRepository)
		expectedKind error
		check        func(t *testing.T, r *models.Reservation)
	}{
		{
			name: "success_default_duration",
			req:  baseRequest,
			prepareMocks: func(reservations *mocks.ReservationRepository, tables *mocks.TableRepository) {
				tables.On("FindByID", mock.Anything, table.ID).Return(table, nil).Once()
				reservations.On("FindOverlapping", mock.Anything, table.ID, mock.Anything, mock.Anything, models.HoldingStatuses(), (*primitive.ObjectID)(nil)).
					Return([]models.Reservation{}, nil).Once()
				reservations.On("Create", mock.Anything, mock.Anything).Return(nil).Once()
			},
			check: func(t *testing.T, r *models.Reservation) {
				assert.Equal(t, 120, r.Duration)
				assert.Equal(t, models.BookingPending, r.BookingStatus)
				assert.Equal(t, actor.ID, r.Customer)
				assert.True(t, r.StartAt.Equal(time.Date(2024, 5, 10, 19, 0, 0, 0, time.UTC)))
				assert.True(t, r.EndAt.Equal(time.Date(2024, 5, 10, 21, 0, 0, 0, time.UTC)))
			},
		},
		{
			name: "success_explicit_duration",
			req: func() models.CreateReservationRequest {
				req := baseRequest()
				req.Duration = 45
				return req
			},
			prepareMocks: func(reservations *mocks.ReservationRepository, tables *mocks.TableRepository) {
				tables.On("FindByID", mock.Anything, table.ID).Return(table, nil).Once()
				reservations.On("FindOverlapping", mock.Anything, table.ID, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
					Return([]models.Reservation{}, nil).Once()
				reservations.On("Create", mock.Anything, mock.Anything).Return(nil).Once()
			},
			check: func(t *testing.T, r *models.Reservation) {
				assert.Equal(t, 45, r.Duration)
				assert.Equal(t, 45*time.Minute, r.EndAt.Sub(r.StartAt))
			},
		},
		{
			name: "error_overlap",
			req:  baseRequest,
			prepareMocks: func(reservations *mocks.ReservationRepository, tables *mocks.TableRepository) {
				tables.On("FindByID", mock.Anything, table.ID).Return(table, nil).Once()
				reservations.On("FindOverlapping", mock.Anything, table.ID, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
					Return([]models.Reservation{{ID: primitive.NewObjectID()}}, nil).Once()
			},
			expectedKind: apperr.ErrConflict,
		},
		{
			name: "error_party_exceeds_capacity",
			req: func() models.CreateReservationRequest {
				req := baseRequest()
				req.NumberOfGuests = 6
				return req
			},
			prepareMocks: func(reservations *mocks.ReservationRepository, tables *mocks.TableRepository) {
				tables.On("FindByID", mock.Anything, table.ID).Return(table, nil).Once()
			},
			expectedKind: apperr.ErrValidation,
		},
		{
			name: "error_unknown_table",
			req:  baseRequest,
			prepareMocks: func(reservations *mocks.ReservationRepository, tables *mocks.TableRepository) {
				tables.On("FindByID", mock.Anything, table.ID).Return(nil, apperr.NotFound("tables.FindByID", "Table not found")).Once()
			},
			expectedKind: apperr.ErrNotFound,
		},
		{
			name: "error_non_24h_time",
			req: func() models.CreateReservationRequest {
				req := baseRequest()
				req.Time = "7:00 PM"
				return req
			},
			prepareMocks: func(reservations *mocks.ReservationRepository, tables *mocks.TableRepository) {},
			expectedKind: apperr.ErrValidation,
		},
		{
			name: "error_bad_date",
			req: func() models.CreateReservationRequest {
				req := baseRequest()
				req.Date = "10/05/2024"
				return req
			},
			prepareMocks: func(reservations *mocks.ReservationRepository, tables *mocks.TableRepository) {},
			expectedKind: apperr.ErrValidation,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			svc, reservations, tables := newReservationService(t)
			testCase.prepareMocks(reservations, tables)

			r, err := svc.Create(context.Background(), actor, testCase.req())
			if testCase.expectedKind != nil {
				assert.ErrorIs(t, err, testCase.expectedKind)
				return
			}
			require.NoError(t, err)
			testCase.check(t, r)
		})
	}
}

func TestReservationService_UpdateStatus(t *testing.T) {
	owner := customer()
	worker := staff()
	id := primitive.NewObjectID()
	tableID := primitive.NewObjectID()

	tests := []struct {
		name         string
		actor        models.Actor
		current      models.BookingStatus
		next         models.BookingStatus
		prepareMocks func(reservations *mocks.ReservationRepository)
		expectedKind error
	}{
		{
			name:    "success_customer_cancels_own",
			actor:   owner,
			current: models.BookingPending,
			next:    models.BookingCanceled,
			prepareMocks: func(reservations *mocks.ReservationRepository) {
				reservations.On("TransitionStatus", mock.Anything, id, models.BookingPending, models.BookingCanceled).
					Return(&models.Reservation{ID: id, BookingStatus: models.BookingCanceled}, nil).Once()
			},
		},
		{
			name:         "error_customer_confirms",
			actor:        owner,
			current:      models.BookingPending,
			next:         models.BookingConfirmed,
			prepareMocks: func(reservations *mocks.ReservationRepository) {},
			expectedKind: apperr.ErrForbidden,
		},
		{
			name:         "error_other_customer_cancels",
			actor:        customer(),
			current:      models.BookingPending,
			next:         models.BookingCanceled,
			prepareMocks: func(reservations *mocks.ReservationRepository) {},
			expectedKind: apperr.ErrForbidden,
		},
		{
			name:    "success_staff_confirms",
			actor:   worker,
			current: models.BookingPending,
			next:    models.BookingConfirmed,
			prepareMocks: func(reservations *mocks.ReservationRepository) {
				reservations.On("FindOverlapping", mock.Anything, tableID, mock.Anything, mock.Anything,
					[]models.BookingStatus{models.BookingConfirmed}, &id).Return([]models.Reservation{}, nil).Once()
				reservations.On("TransitionStatus", mock.Anything, id, models.BookingPending, models.BookingConfirmed).
					Return(&models.Reservation{ID: id, BookingStatus: models.BookingConfirmed}, nil).Once()
			},
		},
		{
			name:    "error_confirm_clashes",
			actor:   worker,
			current: models.BookingPending,
			next:    models.BookingConfirmed,
			prepareMocks: func(reservations *mocks.ReservationRepository) {
				reservations.On("FindOverlapping", mock.Anything, tableID, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
					Return([]models.Reservation{{ID: primitive.NewObjectID()}}, nil).Once()
			},
			expectedKind: apperr.ErrConflict,
		},
		{
			name:         "error_invalid_edge",
			actor:        worker,
			current:      models.BookingCanceled,
			next:         models.BookingConfirmed,
			prepareMocks: func(reservations *mocks.ReservationRepository) {},
			expectedKind: apperr.ErrValidation,
		},
		{
			name:         "error_pending_to_completed",
			actor:        worker,
			current:      models.BookingPending,
			next:         models.BookingCompleted,
			prepareMocks: func(reservations *mocks.ReservationRepository) {},
			expectedKind: apperr.ErrValidation,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			svc, reservations, _ := newReservationService(t)
			start := time.Date(2024, 5, 10, 19, 0, 0, 0, time.UTC)
			reservations.On("FindByID", mock.Anything, id).Return(&models.Reservation{
				ID:            id,
				Customer:      owner.ID,
				Table:         tableID,
				BookingStatus: testCase.current,
				StartAt:       start,
				EndAt:         start.Add(2 * time.Hour),
			}, nil).Once()
			testCase.prepareMocks(reservations)

			r, err := svc.UpdateStatus(context.Background(), testCase.actor, id.Hex(), testCase.next)
			if testCase.expectedKind != nil {
				assert.ErrorIs(t, err, testCase.expectedKind)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, testCase.next, r.BookingStatus)
		})
	}
}

func TestReservationService_List_CustomerSeesOwn(t *testing.T) {
	svc, reservations, _ := newReservationService(t)
	owner := customer()
	page := models.Page{Page: 1, PerPage: 10}

	reservations.On("List", mock.Anything, models.ReservationFilter{Customer: &owner.ID}, page).
		Return([]models.Reservation{}, int64(0), nil).Once()
	reservations.On("List", mock.Anything, models.ReservationFilter{Status: models.BookingConfirmed}, page).
		Return([]models.Reservation{}, int64(0), nil).Once()

	_, _, err := svc.List(context.Background(), owner, models.ReservationFilter{}, page)
	require.NoError(t, err)

	_, _, err = svc.List(context.Background(), staff(), models.ReservationFilter{Status: models.BookingConfirmed}, page)
	require.NoError(t, err)

	_, _, err = svc.List(context.Background(), staff(), models.ReservationFilter{Status: "lost"}, page)
	assert.ErrorIs(t, err, apperr.ErrValidation)
}

func TestReservationService_Create_OutOfRangeDefaultFallsBack(t *testing.T) {
	for _, minutes := range []int{0, 600} {
		reservations := mocks.NewReservationRepository(t)
		tables := mocks.NewTableRepository(t)
		svc := services.NewReservationService(reservations, tables, minutes, time.UTC, logger.NewNop())
		table := &models.Table{ID: primitive.NewObjectID(), TableNumber: 2, Capacity: 2}

		tables.On("FindByID", mock.Anything, table.ID).Return(table, nil).Once()
		reservations.On("FindOverlapping", mock.Anything, table.ID,
			mock.MatchedBy(func(start time.Time) bool { return start.Equal(time.Date(2024, 5, 10, 19, 0, 0, 0, time.UTC)) }),
			mock.MatchedBy(func(end time.Time) bool { return end.Equal(time.Date(2024, 5, 10, 21, 0, 0, 0, time.UTC)) }),
			models.HoldingStatuses(), (*primitive.ObjectID)(nil)).
			Return([]models.Reservation{}, nil).Once()
		reservations.On("Create", mock.Anything, mock.Anything).Return(nil).Once()

		r, err := svc.Create(context.Background(), customer(), models.CreateReservationRequest{
			Table: table.ID.Hex(), Date: "2024-05-10", Time: "19:00", NumberOfGuests: 2,
		})
		require.NoError(t, err)
		assert.Equal(t, models.DefaultReservationMinutes, r.Duration)
	}
}
