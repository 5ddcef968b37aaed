package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"gabaylaguna/internal/domain"
	"gabaylaguna/internal/redis"
	"gabaylaguna/internal/repository"
)

const (
	// flatServiceFee is the fixed platform fee added to every booking,
	// in the same currency unit as guide hourly rates.
	flatServiceFee = 50.0

	minDurationHours = 1
	maxDurationHours = 8
	minPartySize     = 1
	maxPartySize     = 20

	// guideLockTTL bounds how long the per-guide scheduling lock can be
	// held across the overlap check and insert.
	guideLockTTL = 5 * time.Second
)

// BookingService handles the booking lifecycle.
type BookingService struct {
	bookingRepo         repository.BookingRepository
	guideRepo           repository.GuideRepository
	poiRepo             repository.POIRepository
	lockStore           redis.LockStoreInterface
	cacheStore          *redis.CacheStore
	notificationService *NotificationService
}

// NewBookingService creates a new BookingService.
func NewBookingService(
	bookingRepo repository.BookingRepository,
	guideRepo repository.GuideRepository,
	poiRepo repository.POIRepository,
	lockStore redis.LockStoreInterface,
	cacheStore *redis.CacheStore,
	notificationService *NotificationService,
) *BookingService {
	return &BookingService{
		bookingRepo:         bookingRepo,
		guideRepo:           guideRepo,
		poiRepo:             poiRepo,
		lockStore:           lockStore,
		cacheStore:          cacheStore,
		notificationService: notificationService,
	}
}

// CreateBookingRequest contains the parameters for creating a booking.
type CreateBookingRequest struct {
	TouristID       string
	GuideID         string
	POIID           string
	TourDate        time.Time // calendar date
	StartTime       time.Time // tour date + start time of day
	DurationHours   int
	NumberOfPeople  int
	SpecialRequests string
}

// CreateBooking creates a new booking in pending state.
// The total amount is fixed at creation from the guide's current hourly rate
// plus the flat service fee. Creation rejects windows that overlap an
// existing pending or confirmed booking for the same guide.
func (s *BookingService) CreateBooking(ctx context.Context, req CreateBookingRequest) (*domain.Booking, error) {
	if err := s.validateCreateRequest(req); err != nil {
		return nil, err
	}

	guide, err := s.getGuide(ctx, req.GuideID)
	if err != nil {
		return nil, err
	}

	if _, err := s.poiRepo.GetByID(ctx, req.POIID); err != nil {
		return nil, err
	}

	endTime := req.StartTime.Add(time.Duration(req.DurationHours) * time.Hour)

	// Serialize the overlap check and insert per guide; without the lock
	// two concurrent creations could both pass the check.
	if s.lockStore != nil {
		acquired, err := s.lockStore.AcquireGuideLock(ctx, req.GuideID, guideLockTTL)
		if err != nil {
			return nil, err
		}
		if !acquired {
			return nil, ErrGuideBusy
		}
		defer func() {
			_ = s.lockStore.ReleaseGuideLock(ctx, req.GuideID)
		}()
	}

	overlap, err := s.bookingRepo.HasOverlap(ctx, req.GuideID, req.StartTime, endTime)
	if err != nil {
		return nil, err
	}
	if overlap {
		return nil, ErrScheduleConflict
	}

	booking := &domain.Booking{
		ID:              uuid.New().String(),
		TouristID:       req.TouristID,
		GuideID:         req.GuideID,
		POIID:           req.POIID,
		TourDate:        req.TourDate,
		StartTime:       req.StartTime,
		EndTime:         endTime,
		DurationHours:   req.DurationHours,
		NumberOfPeople:  req.NumberOfPeople,
		SpecialRequests: req.SpecialRequests,
		TotalAmount:     guide.HourlyRate*float64(req.DurationHours) + flatServiceFee,
		Status:          domain.BookingStatusPending,
		CreatedAt:       time.Now(),
	}

	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, err
	}

	if s.notificationService != nil {
		_ = s.notificationService.NotifyBookingCreated(ctx, booking)
	}

	return booking, nil
}

// validateCreateRequest validates the create booking request.
func (s *BookingService) validateCreateRequest(req CreateBookingRequest) error {
	if req.TouristID == "" {
		return ErrInvalidTouristID
	}

	if req.GuideID == "" {
		return ErrInvalidGuideID
	}

	if req.POIID == "" {
		return ErrInvalidPOIID
	}

	if req.DurationHours < minDurationHours || req.DurationHours > maxDurationHours {
		return ErrInvalidDuration
	}

	if req.NumberOfPeople < minPartySize || req.NumberOfPeople > maxPartySize {
		return ErrInvalidPartySize
	}

	// Calendar comparison happens in the request's own zone; truncating to
	// UTC midnight rejects same-day bookings east of UTC.
	now := time.Now().In(req.TourDate.Location())
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, req.TourDate.Location())
	if req.TourDate.Before(today) {
		return ErrTourDateInPast
	}

	return nil
}

// getGuide resolves a guide through the cache when one is wired.
func (s *BookingService) getGuide(ctx context.Context, guideID string) (*domain.Guide, error) {
	if s.cacheStore != nil {
		cached, err := s.cacheStore.GetGuide(ctx, guideID)
		if err == nil && cached != nil {
			return &domain.Guide{
				ID:         cached.ID,
				Name:       cached.Name,
				HourlyRate: cached.HourlyRate,
				City:       cached.City,
			}, nil
		}
	}

	guide, err := s.guideRepo.GetByID(ctx, guideID)
	if err != nil {
		return nil, err
	}

	if s.cacheStore != nil {
		_ = s.cacheStore.SetGuide(ctx, &redis.CachedGuide{
			ID:         guide.ID,
			Name:       guide.Name,
			HourlyRate: guide.HourlyRate,
			City:       guide.City,
		})
	}

	return guide, nil
}

// TransitionRequest contains the parameters for a booking status change.
type TransitionRequest struct {
	BookingID string
	Actor     domain.Principal
	NewStatus domain.BookingStatus
}

// allowedTransitions enumerates every legal (actor, from, to) combination.
// Guide acceptance is the single pending->confirmed trigger; payment never
// changes booking status.
type transitionKey struct {
	actor domain.UserType
	from  domain.BookingStatus
	to    domain.BookingStatus
}

var allowedTransitions = map[transitionKey]bool{
	{domain.UserTypeGuide, domain.BookingStatusPending, domain.BookingStatusConfirmed}:   true,
	{domain.UserTypeGuide, domain.BookingStatusPending, domain.BookingStatusRejected}:    true,
	{domain.UserTypeGuide, domain.BookingStatusConfirmed, domain.BookingStatusCompleted}: true,
	{domain.UserTypeTourist, domain.BookingStatusPending, domain.BookingStatusCancelled}: true,
}

// Transition applies a status change to a booking on behalf of an actor.
// The persisted update is conditional on the current status, so the loser
// of a concurrent transition race gets ErrInvalidTransition instead of
// silently overwriting.
func (s *BookingService) Transition(ctx context.Context, req TransitionRequest) (*domain.Booking, error) {
	if req.BookingID == "" {
		return nil, ErrInvalidBookingID
	}

	switch req.NewStatus {
	case domain.BookingStatusConfirmed, domain.BookingStatusRejected,
		domain.BookingStatusCompleted, domain.BookingStatusCancelled:
	default:
		return nil, ErrInvalidStatus
	}

	booking, err := s.bookingRepo.GetByID(ctx, req.BookingID)
	if err != nil {
		return nil, err
	}

	switch req.Actor.Type {
	case domain.UserTypeGuide:
		if booking.GuideID != req.Actor.ID {
			return nil, ErrNotBookingGuide
		}
	case domain.UserTypeTourist:
		if booking.TouristID != req.Actor.ID {
			return nil, ErrNotBookingTourist
		}
	default:
		return nil, ErrNotBookingParticipant
	}

	if !allowedTransitions[transitionKey{req.Actor.Type, booking.Status, req.NewStatus}] {
		return nil, ErrInvalidTransition
	}

	if err := s.bookingRepo.UpdateStatus(ctx, booking.ID, booking.Status, req.NewStatus); err != nil {
		// Zero rows: the status moved underneath us between read and update.
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidTransition
		}
		return nil, err
	}

	booking.Status = req.NewStatus

	if s.notificationService != nil {
		_ = s.notificationService.NotifyBookingTransition(ctx, booking)
	}

	return booking, nil
}

// ListBookings retrieves the bookings visible to a principal, optionally
// filtered by a status bucket. Tourists see their own bookings, guides the
// ones assigned to them, admins everything.
func (s *BookingService) ListBookings(ctx context.Context, principal domain.Principal, status domain.BookingStatus) ([]*domain.Booking, error) {
	if status != "" {
		switch status {
		case domain.BookingStatusPending, domain.BookingStatusConfirmed,
			domain.BookingStatusCompleted, domain.BookingStatusCancelled,
			domain.BookingStatusRejected:
		default:
			return nil, ErrInvalidStatus
		}
	}

	filter := repository.BookingFilter{Status: status}
	switch principal.Type {
	case domain.UserTypeTourist:
		filter.TouristID = principal.ID
	case domain.UserTypeGuide:
		filter.GuideID = principal.ID
	case domain.UserTypeAdmin:
		// Unscoped.
	default:
		return nil, ErrNotBookingParticipant
	}

	return s.bookingRepo.List(ctx, filter)
}

// GetBooking retrieves a single booking, scoped to its participants.
func (s *BookingService) GetBooking(ctx context.Context, bookingID string, principal domain.Principal) (*domain.Booking, error) {
	if bookingID == "" {
		return nil, ErrInvalidBookingID
	}

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if principal.Type != domain.UserTypeAdmin &&
		booking.TouristID != principal.ID && booking.GuideID != principal.ID {
		return nil, ErrNotBookingParticipant
	}

	return booking, nil
}
