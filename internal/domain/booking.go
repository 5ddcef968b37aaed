package domain

import "time"

// BookingStatus represents the current status of a booking.
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCompleted BookingStatus = "completed"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusRejected  BookingStatus = "rejected"
)

// IsTerminal reports whether the status permits no further transitions.
func (s BookingStatus) IsTerminal() bool {
	switch s {
	case BookingStatusCompleted, BookingStatusCancelled, BookingStatusRejected:
		return true
	}
	return false
}

// Booking represents a tour booking between a tourist and a guide.
type Booking struct {
	ID              string
	TouristID       string
	GuideID         string
	POIID           string
	TourDate        time.Time // calendar date of the tour
	StartTime       time.Time // tour date + start time of day
	EndTime         time.Time // StartTime + DurationHours
	DurationHours   int
	NumberOfPeople  int
	SpecialRequests string
	TotalAmount     float64 // hourly_rate * duration + service fee, fixed at creation
	Status          BookingStatus
	CreatedAt       time.Time
}
