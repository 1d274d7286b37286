package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/02priyeshraj/Restaurant_Management_Backend/helper"
	"github.com/02priyeshraj/Restaurant_Management_Backend/models"
	"github.com/02priyeshraj/Restaurant_Management_Backend/pkg/apperr"
	"github.com/02priyeshraj/Restaurant_Management_Backend/pkg/logger"
)

type TableService struct {
	tables         TableRepository
	reservations   ReservationRepository
	defaultMinutes int
	loc            *time.Location
	log            logger.ILogger
}

func NewTableService(tables TableRepository, reservations ReservationRepository, defaultMinutes int, loc *time.Location, log logger.ILogger) *TableService {
	if !models.ValidReservationMinutes(defaultMinutes) {
		defaultMinutes = models.DefaultReservationMinutes
	}
	return &TableService{
		tables:         tables,
		reservations:   reservations,
		defaultMinutes: defaultMinutes,
		loc:            loc,
		log:            log,
	}
}

func (s *TableService) Create(ctx context.Context, req models.TableRequest) (*models.Table, error) {
	if err := helper.ValidateStruct("tables.Create", req); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	table := &models.Table{
		TableNumber: req.TableNumber,
		Capacity:    req.Capacity,
		Location:    req.Location,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.tables.Create(ctx, table); err != nil {
		return nil, err
	}
	return table, nil
}

func (s *TableService) Get(ctx context.Context, id string) (*models.Table, error) {
	tableID, err := parseID("tables.Get", "table id", id)
	if err != nil {
		return nil, err
	}
	return s.tables.FindByID(ctx, tableID)
}

func (s *TableService) List(ctx context.Context, page models.Page) ([]models.Table, int64, error) {
	return s.tables.List(ctx, page)
}

func (s *TableService) Update(ctx context.Context, id string, update models.TableUpdate) (*models.Table, error) {
	const op = "tables.Update"

	tableID, err := parseID(op, "table id", id)
	if err != nil {
		return nil, err
	}
	if update.Empty() {
		return nil, apperr.Validation(op, "No fields to update")
	}
	if err := helper.ValidateStruct(op, update); err != nil {
		return nil, err
	}
	return s.tables.Update(ctx, tableID, update)
}

func (s *TableService) Delete(ctx context.Context, id string) error {
	tableID, err := parseID("tables.Delete", "table id", id)
	if err != nil {
		return err
	}
	if err := s.tables.Delete(ctx, tableID); err != nil {
		return err
	}
	s.log.Info("table deleted", logger.String("table_id", id))
	return nil
}

// Available lists the tables that seat the party and have no pending or
// confirmed reservation intersecting the requested window.
func (s *TableService) Available(ctx context.Context, query models.AvailabilityQuery) ([]models.Table, error) {
	const op = "tables.Available"

	if err := helper.ValidateStruct(op, query); err != nil {
		return nil, err
	}
	if query.Duration == 0 {
		query.Duration = s.defaultMinutes
	}

	start, end, err := models.ReservationWindow(query.Date, query.Time, query.Duration, s.loc)
	if err != nil {
		return nil, apperr.Validation(op, "%s", err.Error())
	}

	candidates, err := s.tables.ListSeating(ctx, query.Guests)
	if err != nil {
		return nil, err
	}

	booked, err := s.reservations.BookedTables(ctx, start, end)
	if err != nil {
		return nil, err
	}
	taken := make(map[primitive.ObjectID]struct{}, len(booked))
	for _, id := range booked {
		taken[id] = struct{}{}
	}

	free := make([]models.Table, 0, len(candidates))
	for _, table := range candidates {
		if _, ok := taken[table.ID]; !ok {
			free = append(free, table)
		}
	}
	return free, nil
}
