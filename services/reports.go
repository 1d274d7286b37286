package services

import (
	"context"
	"sort"
	"strconv"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.opentelemetry.io/otel/attribute"

	"github.com/02priyeshraj/Restaurant_Management_Backend/helper"
	"github.com/02priyeshraj/Restaurant_Management_Backend/models"
	"github.com/02priyeshraj/Restaurant_Management_Backend/pkg/apperr"
	"github.com/02priyeshraj/Restaurant_Management_Backend/pkg/logger"
)

const topItemsLimit = 10

type ReportService struct {
	reports      ReportRepository
	orders       OrderRepository
	reservations ReservationRepository
	feedback     FeedbackRepository
	loc          *time.Location
	log          logger.ILogger
}

func NewReportService(reports ReportRepository, orders OrderRepository, reservations ReservationRepository, feedback FeedbackRepository, loc *time.Location, log logger.ILogger) *ReportService {
	if loc == nil {
		loc = time.UTC
	}
	return &ReportService{
		reports:      reports,
		orders:       orders,
		reservations: reservations,
		feedback:     feedback,
		loc:          loc,
		log:          log,
	}
}

// ReportRange parses inclusive YYYY-MM-DD bounds into [start of startDate,
// end of endDate].
func ReportRange(startDate, endDate string, loc *time.Location) (time.Time, time.Time, error) {
	start, err := time.ParseInLocation(models.DateLayout, startDate, loc)
	if err != nil {
		return time.Time{}, time.Time{}, apperr.Validation("reports.Range", "startDate must be YYYY-MM-DD")
	}
	end, err := time.ParseInLocation(models.DateLayout, endDate, loc)
	if err != nil {
		return time.Time{}, time.Time{}, apperr.Validation("reports.Range", "endDate must be YYYY-MM-DD")
	}
	if start.After(end) {
		return time.Time{}, time.Time{}, apperr.Validation("reports.Range", "startDate must not be after endDate")
	}
	return start, end.AddDate(0, 0, 1).Add(-time.Millisecond), nil
}

func (s *ReportService) Generate(ctx context.Context, actor models.Actor, req models.GenerateReportRequest) (report *models.Report, err error) {
	const op = "reports.Generate"

	ctx, span := startSpan(ctx, op)
	defer func() { endSpan(span, err) }()
	span.SetAttributes(attribute.String("report.type", string(req.ReportType)))

	if err := helper.ValidateStruct(op, req); err != nil {
		return nil, err
	}
	if !req.ReportType.Valid() {
		return nil, apperr.Validation(op, "Unknown report type %q", req.ReportType)
	}
	start, end, err := ReportRange(req.StartDate, req.EndDate, s.loc)
	if err != nil {
		return nil, err
	}

	var data models.ReportData
	switch req.ReportType {
	case models.ReportSales, models.ReportStaffPerformance:
		orders, err := s.orders.FindCreatedBetween(ctx, start.UTC(), end.UTC())
		if err != nil {
			return nil, err
		}
		if req.ReportType == models.ReportSales {
			data.Sales = SummarizeSales(orders, topItemsLimit)
		} else {
			data.Staff = &models.StaffSummary{Members: SummarizeStaff(orders)}
		}
	case models.ReportReservation:
		reservations, err := s.reservations.FindStartingBetween(ctx, start.UTC(), end.UTC())
		if err != nil {
			return nil, err
		}
		data.Reservations = SummarizeReservations(reservations)
	case models.ReportFeedback:
		feedback, err := s.feedback.FindCreatedBetween(ctx, start.UTC(), end.UTC())
		if err != nil {
			return nil, err
		}
		data.Feedback = SummarizeFeedback(feedback)
	}

	report = &models.Report{
		ReportType:  req.ReportType,
		StartDate:   start.UTC(),
		EndDate:     end.UTC(),
		GeneratedAt: time.Now().UTC(),
		GeneratedBy: actor.ID,
		Data:        data,
	}
	if err := s.reports.Create(ctx, report); err != nil {
		return nil, err
	}

	s.log.Info("report generated",
		logger.String("report_id", report.ID.Hex()),
		logger.String("report_type", string(req.ReportType)),
		logger.String("start_date", req.StartDate),
		logger.String("end_date", req.EndDate),
	)
	return report, nil
}

func (s *ReportService) List(ctx context.Context, page models.Page) ([]models.Report, int64, error) {
	return s.reports.List(ctx, page)
}

func (s *ReportService) Get(ctx context.Context, id string) (*models.Report, error) {
	reportID, err := parseID("reports.Get", "report id", id)
	if err != nil {
		return nil, err
	}
	return s.reports.FindByID(ctx, reportID)
}

func (s *ReportService) Delete(ctx context.Context, id string) error {
	reportID, err := parseID("reports.Delete", "report id", id)
	if err != nil {
		return err
	}
	return s.reports.Delete(ctx, reportID)
}

// SummarizeSales aggregates orders in a single pass. TopItems holds at most
// topN entries ordered by quantity sold.
func SummarizeSales(orders []models.Order, topN int) *models.SalesSummary {
	summary := &models.SalesSummary{
		OrdersByStatus: map[string]int{},
		OrdersByType:   map[string]int{},
		TopItems:       []models.ItemSales{},
	}

	items := map[primitive.ObjectID]*models.ItemSales{}
	for _, order := range orders {
		summary.TotalOrders++
		summary.TotalRevenue += order.TotalAmount
		summary.OrdersByStatus[string(order.Status)]++
		summary.OrdersByType[string(order.OrderType)]++

		for _, line := range order.Items {
			agg, ok := items[line.MenuItem]
			if !ok {
				agg = &models.ItemSales{MenuItem: line.MenuItem, Name: line.Name}
				items[line.MenuItem] = agg
			}
			agg.Quantity += line.Quantity
			agg.Revenue += line.SubTotal
		}
	}

	summary.TotalRevenue = roundCents(summary.TotalRevenue)
	if summary.TotalOrders > 0 {
		summary.AverageOrderValue = roundCents(summary.TotalRevenue / float64(summary.TotalOrders))
	}

	for _, agg := range items {
		agg.Revenue = roundCents(agg.Revenue)
		summary.TopItems = append(summary.TopItems, *agg)
	}
	sort.Slice(summary.TopItems, func(i, j int) bool {
		a, b := summary.TopItems[i], summary.TopItems[j]
		if a.Quantity != b.Quantity {
			return a.Quantity > b.Quantity
		}
		return a.Name < b.Name
	})
	if topN > 0 && len(summary.TopItems) > topN {
		summary.TopItems = summary.TopItems[:topN]
	}
	return summary
}

func SummarizeReservations(reservations []models.Reservation) *models.ReservationSummary {
	summary := &models.ReservationSummary{
		ByStatus: map[string]int{},
		ByTable:  []models.TableUsage{},
	}

	tables := map[primitive.ObjectID]*models.TableUsage{}
	for _, r := range reservations {
		summary.TotalReservations++
		summary.TotalGuests += r.NumberOfGuests
		summary.ByStatus[string(r.BookingStatus)]++

		usage, ok := tables[r.Table]
		if !ok {
			usage = &models.TableUsage{Table: r.Table}
			tables[r.Table] = usage
		}
		usage.Reservations++
		usage.Guests += r.NumberOfGuests
	}

	if summary.TotalReservations > 0 {
		summary.AveragePartySize = roundCents(float64(summary.TotalGuests) / float64(summary.TotalReservations))
	}
	for _, usage := range tables {
		summary.ByTable = append(summary.ByTable, *usage)
	}
	sort.Slice(summary.ByTable, func(i, j int) bool {
		a, b := summary.ByTable[i], summary.ByTable[j]
		if a.Reservations != b.Reservations {
			return a.Reservations > b.Reservations
		}
		return a.Table.Hex() < b.Table.Hex()
	})
	return summary
}

// SummarizeStaff credits each order to the staff member who last moved it.
// Orders nobody has handled yet are skipped.
func SummarizeStaff(orders []models.Order) []models.StaffPerformance {
	byStaff := map[primitive.ObjectID]*models.StaffPerformance{}
	for _, order := range orders {
		if order.Staff == nil {
			continue
		}
		perf, ok := byStaff[*order.Staff]
		if !ok {
			perf = &models.StaffPerformance{Staff: *order.Staff}
			byStaff[*order.Staff] = perf
		}
		perf.OrdersHandled++
		if order.Status == models.OrderCompleted {
			perf.OrdersCompleted++
			perf.Revenue += order.TotalAmount
		}
	}

	out := make([]models.StaffPerformance, 0, len(byStaff))
	for _, perf := range byStaff {
		perf.Revenue = roundCents(perf.Revenue)
		out = append(out, *perf)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].OrdersHandled != out[j].OrdersHandled {
			return out[i].OrdersHandled > out[j].OrdersHandled
		}
		return out[i].Staff.Hex() < out[j].Staff.Hex()
	})
	return out
}

func SummarizeFeedback(feedback []models.Feedback) *models.FeedbackSummary {
	summary := &models.FeedbackSummary{Distribution: map[string]int{}}
	for rating := 1; rating <= 5; rating++ {
		summary.Distribution[strconv.Itoa(rating)] = 0
	}

	var sum int
	for _, f := range feedback {
		summary.TotalFeedback++
		sum += f.Rating
		summary.Distribution[strconv.Itoa(f.Rating)]++
	}
	if summary.TotalFeedback > 0 {
		summary.AverageRating = roundCents(float64(sum) / float64(summary.TotalFeedback))
	}
	return summary
}
