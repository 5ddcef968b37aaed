package domain

import "time"

// PaymentMethod represents the payment method for a booking.
type PaymentMethod string

const (
	PaymentMethodPayPal   PaymentMethod = "paypal"
	PaymentMethodPayMongo PaymentMethod = "paymongo"
)

// Payment represents the single payment record attached to a booking.
// At most one payment exists per booking, enforced by storage.
type Payment struct {
	ID                string
	BookingID         string
	Method            PaymentMethod
	Amount            float64
	ExternalReference string // opaque reference returned by the gateway
	CreatedAt         time.Time
}
