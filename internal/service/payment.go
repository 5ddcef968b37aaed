package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"gabaylaguna/internal/domain"
	"gabaylaguna/internal/repository"
)

// Gateway is the interface for an external payment gateway.
type Gateway interface {
	// Authorize charges the amount through the given method and returns
	// an opaque external reference for the transaction.
	Authorize(ctx context.Context, method domain.PaymentMethod, amount float64) (string, error)
}

// SimulatedGateway is a stand-in gateway that fabricates references instead
// of calling PayPal or PayMongo.
type SimulatedGateway struct{}

// NewSimulatedGateway creates a new SimulatedGateway.
func NewSimulatedGateway() *SimulatedGateway {
	return &SimulatedGateway{}
}

// Authorize fabricates an external reference. Always succeeds.
func (g *SimulatedGateway) Authorize(ctx context.Context, method domain.PaymentMethod, amount float64) (string, error) {
	return fmt.Sprintf("%s-%s", strings.ToUpper(string(method)), uuid.New().String()), nil
}

// PaymentService records booking payments.
type PaymentService struct {
	paymentRepo         repository.PaymentRepository
	bookingRepo         repository.BookingRepository
	gateway             Gateway
	notificationService *NotificationService
}

// NewPaymentService creates a new PaymentService.
func NewPaymentService(
	paymentRepo repository.PaymentRepository,
	bookingRepo repository.BookingRepository,
	gateway Gateway,
	notificationService *NotificationService,
) *PaymentService {
	return &PaymentService{
		paymentRepo:         paymentRepo,
		bookingRepo:         bookingRepo,
		gateway:             gateway,
		notificationService: notificationService,
	}
}

// PayRequest contains the parameters for recording a payment.
type PayRequest struct {
	BookingID string
	PayerID   string
	Method    domain.PaymentMethod
}

// Pay records the single payment for a booking. The payer must be the
// booking's tourist and the booking must be pending or confirmed. Recording
// a payment never changes the booking's status; confirmation is the guide's
// acceptance alone.
func (s *PaymentService) Pay(ctx context.Context, req PayRequest) (*domain.Payment, error) {
	if req.BookingID == "" {
		return nil, ErrInvalidBookingID
	}

	booking, err := s.bookingRepo.GetByID(ctx, req.BookingID)
	if err != nil {
		return nil, err
	}

	if booking.TouristID != req.PayerID {
		return nil, ErrNotBookingTourist
	}

	if booking.Status != domain.BookingStatusPending && booking.Status != domain.BookingStatusConfirmed {
		return nil, ErrBookingNotPayable
	}

	reference, err := s.gateway.Authorize(ctx, req.Method, booking.TotalAmount)
	if err != nil {
		return nil, err
	}

	payment := &domain.Payment{
		ID:                uuid.New().String(),
		BookingID:         booking.ID,
		Method:            req.Method,
		Amount:            booking.TotalAmount,
		ExternalReference: reference,
		CreatedAt:         time.Now(),
	}

	// The unique constraint on booking_id is the duplicate guard; a
	// concurrent double-submit loses here, not at a read beforehand.
	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		if err == repository.ErrDuplicate {
			return nil, ErrAlreadyPaid
		}
		return nil, err
	}

	if s.notificationService != nil {
		_ = s.notificationService.NotifyPaymentRecorded(ctx, booking, payment)
	}

	return payment, nil
}

// ValidatePaymentMethod validates a payment method string.
func ValidatePaymentMethod(method string) (domain.PaymentMethod, error) {
	switch domain.PaymentMethod(method) {
	case domain.PaymentMethodPayPal, domain.PaymentMethodPayMongo:
		return domain.PaymentMethod(method), nil
	default:
		return "", ErrInvalidPaymentMethod
	}
}
