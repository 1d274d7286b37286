package models

import (
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	DateLayout  = "2006-01-02"
	ClockLayout = "15:04"

	MinReservationMinutes     = 30
	MaxReservationMinutes     = 480
	DefaultReservationMinutes = 120
)

var clockPattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// ValidClock reports whether s is a strict 24-hour HH:MM time.
func ValidClock(s string) bool {
	return clockPattern.MatchString(s)
}

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCanceled  BookingStatus = "canceled"
	BookingCompleted BookingStatus = "completed"
)

var bookingTransitions = map[BookingStatus][]BookingStatus{
	BookingPending:   {BookingConfirmed, BookingCanceled},
	BookingConfirmed: {BookingCompleted, BookingCanceled},
}

func (s BookingStatus) Valid() bool {
	switch s {
	case BookingPending, BookingConfirmed, BookingCanceled, BookingCompleted:
		return true
	}
	return false
}

func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	for _, allowed := range bookingTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Holds reports whether a reservation in this state occupies its table.
func (s BookingStatus) Holds() bool {
	return s == BookingPending || s == BookingConfirmed
}

// HoldingStatuses lists the states that block a table.
func HoldingStatuses() []BookingStatus {
	return []BookingStatus{BookingPending, BookingConfirmed}
}

type Reservation struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Customer        primitive.ObjectID `bson:"customer" json:"customer"`
	Table           primitive.ObjectID `bson:"table" json:"table"`
	Date            string             `bson:"date" json:"date"`
	Time            string             `bson:"time" json:"time"`
	NumberOfGuests  int                `bson:"numberOfGuests" json:"numberOfGuests"`
	Duration        int                `bson:"duration" json:"duration"`
	BookingStatus   BookingStatus      `bson:"bookingStatus" json:"bookingStatus"`
	SpecialRequests string             `bson:"specialRequests,omitempty" json:"specialRequests,omitempty"`
	StartAt         time.Time          `bson:"startAt" json:"startAt"`
	EndAt           time.Time          `bson:"endAt" json:"endAt"`
	CreatedAt       time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// Overlaps reports whether the reservation's window intersects [start, end).
func (r Reservation) Overlaps(start, end time.Time) bool {
	return r.StartAt.Before(end) && start.Before(r.EndAt)
}

// ValidReservationMinutes reports whether minutes is an allowed booking length.
func ValidReservationMinutes(minutes int) bool {
	return minutes >= MinReservationMinutes && minutes <= MaxReservationMinutes
}

// ReservationWindow turns a date, clock time and duration into an absolute
// [start, end) interval in loc.
func ReservationWindow(date, clock string, minutes int, loc *time.Location) (time.Time, time.Time, error) {
	if !ValidClock(clock) {
		return time.Time{}, time.Time{}, fmt.Errorf("time %q must be HH:MM in 24-hour format", clock)
	}
	start, err := time.ParseInLocation(DateLayout+" "+ClockLayout, date+" "+clock, loc)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("date %q must be YYYY-MM-DD", date)
	}
	return start, start.Add(time.Duration(minutes) * time.Minute), nil
}

type CreateReservationRequest struct {
	Table           string `json:"table" validate:"required"`
	Date            string `json:"date" validate:"required"`
	Time            string `json:"time" validate:"required,hhmm"`
	NumberOfGuests  int    `json:"numberOfGuests" validate:"required,min=1"`
	Duration        int    `json:"duration" validate:"omitempty,min=30,max=480"`
	SpecialRequests string `json:"specialRequests" validate:"max=500"`
}

type UpdateReservationStatusRequest struct {
	BookingStatus BookingStatus `json:"bookingStatus" validate:"required,oneof=pending confirmed canceled completed"`
}

type ReservationFilter struct {
	Customer *primitive.ObjectID
	Table    *primitive.ObjectID
	Status   BookingStatus
	Date     string
}
