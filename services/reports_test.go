package services_test

import (
	"context"
	"encoding/json"
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

func TestReportRange(t *testing.T) {
	start, end, err := services.ReportRange("2024-05-01", "2024-05-01", time.UTC)
	require.NoError(t, err)
	assert.True(t, start.Equal(time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)))
	assert.True(t, end.After(time.Date(2024, 5, 1, 23, 59, 59, 0, time.UTC)))
	assert.True(t, end.Before(time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC)))

	_, _, err = services.ReportRange("2024-05-02", "2024-05-01", time.UTC)
	assert.ErrorIs(t, err, apperr.ErrValidation)

	_, _, err = services.ReportRange("May 1", "2024-05-01", time.UTC)
	assert.ErrorIs(t, err, apperr.ErrValidation)
}

func TestReportService_Generate(t *testing.T) {
	admin := models.Actor{ID: primitive.NewObjectID(), Role: models.RoleAdmin}

	t.Run("sales_report_persisted", func(t *testing.T) {
		reports := mocks.NewReportRepository(t)
		orders := mocks.NewOrderRepository(t)
		svc := services.NewReportService(reports, orders, mocks.NewReservationRepository(t), mocks.NewFeedbackRepository(t), time.UTC, logger.NewNop())

		orders.On("FindCreatedBetween", mock.Anything, mock.Anything, mock.Anything).
			Return([]models.Order{{TotalAmount: 20, Status: models.OrderCompleted, OrderType: models.OrderTakeaway}}, nil).Once()
		reports.On("Create", mock.Anything, mock.MatchedBy(func(r *models.Report) bool {
			return r.GeneratedBy == admin.ID && r.Data.Sales != nil && r.Data.Sales.TotalRevenue == 20
		})).Return(nil).Once()

		report, err := svc.Generate(context.Background(), admin, models.GenerateReportRequest{
			ReportType: models.ReportSales, StartDate: "2024-05-01", EndDate: "2024-05-31",
		})
		require.NoError(t, err)
		assert.Equal(t, models.ReportSales, report.ReportType)
		assert.Nil(t, report.Data.Feedback)
	})

	t.Run("error_start_after_end", func(t *testing.T) {
		svc := services.NewReportService(mocks.NewReportRepository(t), mocks.NewOrderRepository(t),
			mocks.NewReservationRepository(t), mocks.NewFeedbackRepository(t), time.UTC, logger.NewNop())

		_, err := svc.Generate(context.Background(), admin, models.GenerateReportRequest{
			ReportType: models.ReportFeedback, StartDate: "2024-06-01", EndDate: "2024-05-01",
		})
		assert.ErrorIs(t, err, apperr.ErrValidation)
	})

	t.Run("error_unknown_type", func(t *testing.T) {
		svc := services.NewReportService(mocks.NewReportRepository(t), mocks.NewOrderRepository(t),
			mocks.NewReservationRepository(t), mocks.NewFeedbackRepository(t), time.UTC, logger.NewNop())

		_, err := svc.Generate(context.Background(), admin, models.GenerateReportRequest{
			ReportType: "Inventory", StartDate: "2024-05-01", EndDate: "2024-05-01",
		})
		assert.ErrorIs(t, err, apperr.ErrValidation)
	})

	t.Run("reservation_report", func(t *testing.T) {
		reports := mocks.NewReportRepository(t)
		reservations := mocks.NewReservationRepository(t)
		svc := services.NewReportService(reports, mocks.NewOrderRepository(t), reservations, mocks.NewFeedbackRepository(t), time.UTC, logger.NewNop())

		reservations.On("FindStartingBetween", mock.Anything, mock.Anything, mock.Anything).
			Return([]models.Reservation{{NumberOfGuests: 2, BookingStatus: models.BookingConfirmed}}, nil).Once()
		reports.On("Create", mock.Anything, mock.Anything).Return(nil).Once()

		report, err := svc.Generate(context.Background(), admin, models.GenerateReportRequest{
			ReportType: models.ReportReservation, StartDate: "2024-05-01", EndDate: "2024-05-01",
		})
		require.NoError(t, err)
		require.NotNil(t, report.Data.Reservations)
		assert.Equal(t, 1, report.Data.Reservations.TotalReservations)
	})

	t.Run("staff_report_without_handled_orders", func(t *testing.T) {
		reports := mocks.NewReportRepository(t)
		orders := mocks.NewOrderRepository(t)
		svc := services.NewReportService(reports, orders, mocks.NewReservationRepository(t), mocks.NewFeedbackRepository(t), time.UTC, logger.NewNop())

		orders.On("FindCreatedBetween", mock.Anything, mock.Anything, mock.Anything).
			Return([]models.Order{{Status: models.OrderPending, TotalAmount: 5}}, nil).Once()
		reports.On("Create", mock.Anything, mock.Anything).Return(nil).Once()

		report, err := svc.Generate(context.Background(), admin, models.GenerateReportRequest{
			ReportType: models.ReportStaffPerformance, StartDate: "2024-05-01", EndDate: "2024-05-31",
		})
		require.NoError(t, err)
		require.NotNil(t, report.Data.Staff)
		assert.Empty(t, report.Data.Staff.Members)

		raw, err := json.Marshal(report.Data)
		require.NoError(t, err)
		assert.JSONEq(t, `{"staff":{"members":[]}}`, string(raw))
	})
}

func TestSummarizeSales(t *testing.T) {
	pasta := primitive.NewObjectID()
	soup := primitive.NewObjectID()
	orders := []models.Order{
		{
			TotalAmount: 24, Status: models.OrderCompleted, OrderType: models.OrderDineIn,
			Items: []models.OrderItem{
				{MenuItem: pasta, Name: "Pasta", Quantity: 2, Price: 10, SubTotal: 20},
				{MenuItem: soup, Name: "Soup", Quantity: 1, Price: 4, SubTotal: 4},
			},
		},
		{
			TotalAmount: 10, Status: models.OrderPending, OrderType: models.OrderTakeaway,
			Items: []models.OrderItem{{MenuItem: pasta, Name: "Pasta", Quantity: 1, Price: 10, SubTotal: 10}},
		},
	}

	summary := services.SummarizeSales(orders, 1)

	assert.Equal(t, 2, summary.TotalOrders)
	assert.Equal(t, 34.0, summary.TotalRevenue)
	assert.Equal(t, 17.0, summary.AverageOrderValue)
	assert.Equal(t, 1, summary.OrdersByStatus["Completed"])
	assert.Equal(t, 1, summary.OrdersByType["Takeaway"])
	require.Len(t, summary.TopItems, 1)
	assert.Equal(t, "Pasta", summary.TopItems[0].Name)
	assert.Equal(t, 3, summary.TopItems[0].Quantity)
	assert.Equal(t, 30.0, summary.TopItems[0].Revenue)
}

func TestSummarizeSales_Empty(t *testing.T) {
	summary := services.SummarizeSales(nil, 10)
	assert.Zero(t, summary.TotalOrders)
	assert.Zero(t, summary.AverageOrderValue)
	assert.NotNil(t, summary.TopItems)
}

func TestSummarizeReservations(t *testing.T) {
	t1 := primitive.NewObjectID()
	t2 := primitive.NewObjectID()
	summary := services.SummarizeReservations([]models.Reservation{
		{Table: t1, NumberOfGuests: 2, BookingStatus: models.BookingConfirmed},
		{Table: t1, NumberOfGuests: 4, BookingStatus: models.BookingCanceled},
		{Table: t2, NumberOfGuests: 3, BookingStatus: models.BookingConfirmed},
	})

	assert.Equal(t, 3, summary.TotalReservations)
	assert.Equal(t, 9, summary.TotalGuests)
	assert.Equal(t, 3.0, summary.AveragePartySize)
	assert.Equal(t, 2, summary.ByStatus["confirmed"])
	require.Len(t, summary.ByTable, 2)
	assert.Equal(t, t1, summary.ByTable[0].Table)
	assert.Equal(t, 6, summary.ByTable[0].Guests)
}

func TestSummarizeStaff(t *testing.T) {
	alice := primitive.NewObjectID()
	bob := primitive.NewObjectID()
	perf := services.SummarizeStaff([]models.Order{
		{Staff: &alice, Status: models.OrderCompleted, TotalAmount: 15},
		{Staff: &alice, Status: models.OrderServed, TotalAmount: 8},
		{Staff: &bob, Status: models.OrderCompleted, TotalAmount: 12},
		{Status: models.OrderPending, TotalAmount: 99},
	})

	require.Len(t, perf, 2)
	assert.Equal(t, alice, perf[0].Staff)
	assert.Equal(t, 2, perf[0].OrdersHandled)
	assert.Equal(t, 1, perf[0].OrdersCompleted)
	assert.Equal(t, 15.0, perf[0].Revenue)
	assert.Equal(t, 12.0, perf[1].Revenue)
}

func TestSummarizeFeedback(t *testing.T) {
	summary := services.SummarizeFeedback([]models.Feedback{{Rating: 5}, {Rating: 4}, {Rating: 5}})

	assert.Equal(t, 3, summary.TotalFeedback)
	assert.Equal(t, 4.67, summary.AverageRating)
	assert.Equal(t, map[string]int{"1": 0, "2": 0, "3": 0, "4": 1, "5": 2}, summary.Distribution)
}
