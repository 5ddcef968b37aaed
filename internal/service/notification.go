package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"gabaylaguna/internal/domain"
)

// NotificationType represents the type of notification.
type NotificationType string

const (
	NotificationBookingCreated   NotificationType = "BOOKING_CREATED"
	NotificationBookingConfirmed NotificationType = "BOOKING_CONFIRMED"
	NotificationBookingRejected  NotificationType = "BOOKING_REJECTED"
	NotificationBookingCompleted NotificationType = "BOOKING_COMPLETED"
	NotificationBookingCancelled NotificationType = "BOOKING_CANCELLED"
	NotificationPaymentRecorded  NotificationType = "PAYMENT_RECORDED"
	NotificationReviewSubmitted  NotificationType = "REVIEW_SUBMITTED"
)

// Notification represents a notification to be sent.
type Notification struct {
	Type        NotificationType
	RecipientID string
	Title       string
	Message     string
	CreatedAt   time.Time
}

// NotificationService handles notification delivery. Actual delivery
// (email, push) is an external collaborator; this service owns the hook
// points and fans out to the log.
type NotificationService struct{}

// NewNotificationService creates a new NotificationService.
func NewNotificationService() *NotificationService {
	return &NotificationService{}
}

// NotifyBookingCreated notifies the guide about a new booking request.
func (s *NotificationService) NotifyBookingCreated(ctx context.Context, booking *domain.Booking) error {
	return s.send(ctx, Notification{
		Type:        NotificationBookingCreated,
		RecipientID: booking.GuideID,
		Title:       "New Booking Request",
		Message: fmt.Sprintf("New tour request for %s, %d hour(s), %d guest(s)",
			booking.TourDate.Format("2006-01-02"), booking.DurationHours, booking.NumberOfPeople),
		CreatedAt: time.Now(),
	})
}

// NotifyBookingTransition notifies the affected party about a status change.
func (s *NotificationService) NotifyBookingTransition(ctx context.Context, booking *domain.Booking) error {
	var n Notification
	switch booking.Status {
	case domain.BookingStatusConfirmed:
		n = Notification{
			Type:        NotificationBookingConfirmed,
			RecipientID: booking.TouristID,
			Title:       "Booking Confirmed",
			Message:     "Your guide has accepted the booking.",
		}
	case domain.BookingStatusRejected:
		n = Notification{
			Type:        NotificationBookingRejected,
			RecipientID: booking.TouristID,
			Title:       "Booking Declined",
			Message:     "Your guide is unable to take this booking.",
		}
	case domain.BookingStatusCompleted:
		n = Notification{
			Type:        NotificationBookingCompleted,
			RecipientID: booking.TouristID,
			Title:       "Tour Completed",
			Message:     "Hope you enjoyed the tour! You can now leave a review.",
		}
	case domain.BookingStatusCancelled:
		n = Notification{
			Type:        NotificationBookingCancelled,
			RecipientID: booking.GuideID,
			Title:       "Booking Cancelled",
			Message:     "The tourist has cancelled the booking.",
		}
	default:
		return nil
	}

	n.CreatedAt = time.Now()
	return s.send(ctx, n)
}

// NotifyPaymentRecorded notifies the guide that the booking has been paid.
func (s *NotificationService) NotifyPaymentRecorded(ctx context.Context, booking *domain.Booking, payment *domain.Payment) error {
	return s.send(ctx, Notification{
		Type:        NotificationPaymentRecorded,
		RecipientID: booking.GuideID,
		Title:       "Payment Received",
		Message:     fmt.Sprintf("Payment of %.2f recorded via %s", payment.Amount, payment.Method),
		CreatedAt:   time.Now(),
	})
}

// NotifyReviewSubmitted notifies the guide about a new review.
func (s *NotificationService) NotifyReviewSubmitted(ctx context.Context, booking *domain.Booking, review *domain.Review) error {
	return s.send(ctx, Notification{
		Type:        NotificationReviewSubmitted,
		RecipientID: booking.GuideID,
		Title:       "New Review",
		Message:     fmt.Sprintf("You received a %d-star review", review.Rating),
		CreatedAt:   time.Now(),
	})
}

// send delivers a notification (log-backed implementation).
func (s *NotificationService) send(ctx context.Context, notification Notification) error {
	log.Printf("[NOTIFICATION] Type=%s, Recipient=%s, Title=%s, Message=%s",
		notification.Type, notification.RecipientID, notification.Title, notification.Message)

	return nil
}
