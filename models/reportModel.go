package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ReportType string

const (
	ReportSales            ReportType = "Sales"
	ReportReservation      ReportType = "Reservation"
	ReportStaffPerformance ReportType = "Staff Performance"
	ReportFeedback         ReportType = "Feedback"
)

func (t ReportType) Valid() bool {
	switch t {
	case ReportSales, ReportReservation, ReportStaffPerformance, ReportFeedback:
		return true
	}
	return false
}

type Report struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ReportType  ReportType         `bson:"reportType" json:"reportType"`
	StartDate   time.Time          `bson:"startDate" json:"startDate"`
	EndDate     time.Time          `bson:"endDate" json:"endDate"`
	GeneratedAt time.Time          `bson:"generatedAt" json:"generatedAt"`
	GeneratedBy primitive.ObjectID `bson:"generatedBy" json:"generatedBy"`
	Data        ReportData         `bson:"data" json:"data"`
}

// ReportData holds exactly one populated section, matching ReportType.
type ReportData struct {
	Sales        *SalesSummary       `bson:"sales,omitempty" json:"sales,omitempty"`
	Reservations *ReservationSummary `bson:"reservations,omitempty" json:"reservations,omitempty"`
	Staff        *StaffSummary       `bson:"staff,omitempty" json:"staff,omitempty"`
	Feedback     *FeedbackSummary    `bson:"feedback,omitempty" json:"feedback,omitempty"`
}

type SalesSummary struct {
	TotalOrders       int            `bson:"totalOrders" json:"totalOrders"`
	TotalRevenue      float64        `bson:"totalRevenue" json:"totalRevenue"`
	AverageOrderValue float64        `bson:"averageOrderValue" json:"averageOrderValue"`
	OrdersByStatus    map[string]int `bson:"ordersByStatus" json:"ordersByStatus"`
	OrdersByType      map[string]int `bson:"ordersByType" json:"ordersByType"`
	TopItems          []ItemSales    `bson:"topItems" json:"topItems"`
}

type ItemSales struct {
	MenuItem primitive.ObjectID `bson:"menuItem" json:"menuItem"`
	Name     string             `bson:"name" json:"name"`
	Quantity int                `bson:"quantity" json:"quantity"`
	Revenue  float64            `bson:"revenue" json:"revenue"`
}

type ReservationSummary struct {
	TotalReservations int            `bson:"totalReservations" json:"totalReservations"`
	ByStatus          map[string]int `bson:"byStatus" json:"byStatus"`
	TotalGuests       int            `bson:"totalGuests" json:"totalGuests"`
	AveragePartySize  float64        `bson:"averagePartySize" json:"averagePartySize"`
	ByTable           []TableUsage   `bson:"byTable" json:"byTable"`
}

type TableUsage struct {
	Table        primitive.ObjectID `bson:"table" json:"table"`
	Reservations int                `bson:"reservations" json:"reservations"`
	Guests       int                `bson:"guests" json:"guests"`
}

// StaffSummary lists every staff member who handled an order in range.
// Members is empty, never null, when nobody did.
type StaffSummary struct {
	Members []StaffPerformance `bson:"members" json:"members"`
}

type StaffPerformance struct {
	Staff           primitive.ObjectID `bson:"staff" json:"staff"`
	OrdersHandled   int                `bson:"ordersHandled" json:"ordersHandled"`
	OrdersCompleted int                `bson:"ordersCompleted" json:"ordersCompleted"`
	Revenue         float64            `bson:"revenue" json:"revenue"`
}

type FeedbackSummary struct {
	TotalFeedback int            `bson:"totalFeedback" json:"totalFeedback"`
	AverageRating float64        `bson:"averageRating" json:"averageRating"`
	Distribution  map[string]int `bson:"distribution" json:"distribution"`
}

type GenerateReportRequest struct {
	ReportType ReportType `json:"reportType" validate:"required"`
	StartDate  string     `json:"startDate" validate:"required"`
	EndDate    string     `json:"endDate" validate:"required"`
}
