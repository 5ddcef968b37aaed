package domain

// Guide represents a verified tour guide as seen by the booking core.
// The full guide profile (bio, languages, specializations) lives in the
// guide directory; the core only needs identity and the current rate.
type Guide struct {
	ID         string
	Name       string
	HourlyRate float64
	City       string
}
