package domain

import "time"

// Presence classifies how fresh a guide's last location report is.
// It is derived at read time from the ping's RecordedAt, never stored.
type Presence string

const (
	PresenceOnline  Presence = "online"  // last ping within 2 minutes
	PresenceRecent  Presence = "recent"  // last ping within 5 minutes
	PresenceOffline Presence = "offline"
)

// LocationPing is a single guide location report tied to a booking.
// Only the latest ping per booking is retained.
type LocationPing struct {
	BookingID  string
	GuideID    string
	Latitude   float64
	Longitude  float64
	Accuracy   float64 // meters, 0 when unreported
	Speed      float64 // km/h, 0 when unreported
	Heading    float64 // degrees, 0 when unreported
	Address    string  // optional reverse-geocoded label
	RecordedAt time.Time
}
