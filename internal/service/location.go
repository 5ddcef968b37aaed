package service

import (
	"context"
	"time"

	"gabaylaguna/internal/domain"
	"gabaylaguna/internal/redis"
	"gabaylaguna/internal/repository"
)

const (
	// presenceOnlineWindow / presenceRecentWindow classify ping freshness
	// for the tracking view. Derived at read time, never stored.
	presenceOnlineWindow = 2 * time.Minute
	presenceRecentWindow = 5 * time.Minute
)

// LocationService handles guide location pings.
type LocationService struct {
	pingStore   redis.PingStoreInterface
	bookingRepo repository.BookingRepository
}

// NewLocationService creates a new LocationService.
func NewLocationService(pingStore redis.PingStoreInterface, bookingRepo repository.BookingRepository) *LocationService {
	return &LocationService{
		pingStore:   pingStore,
		bookingRepo: bookingRepo,
	}
}

// PublishPingRequest contains the parameters for publishing a location ping.
type PublishPingRequest struct {
	BookingID  string
	GuideID    string
	Latitude   float64
	Longitude  float64
	Accuracy   float64
	Speed      float64
	Heading    float64
	Address    string
	RecordedAt time.Time // zero means now
}

// PublishPing stores the guide's location as the booking's latest ping.
// Only the assigned guide may publish, and only while the booking is
// confirmed or completed. Writes older than the stored ping are discarded.
func (s *LocationService) PublishPing(ctx context.Context, req PublishPingRequest) (*domain.LocationPing, error) {
	if req.BookingID == "" {
		return nil, ErrInvalidBookingID
	}

	if req.GuideID == "" {
		return nil, ErrInvalidGuideID
	}

	if !isValidLatitude(req.Latitude) || !isValidLongitude(req.Longitude) {
		return nil, ErrInvalidCoordinates
	}

	booking, err := s.bookingRepo.GetByID(ctx, req.BookingID)
	if err != nil {
		return nil, err
	}

	if booking.GuideID != req.GuideID {
		return nil, ErrNotBookingGuide
	}

	if booking.Status != domain.BookingStatusConfirmed && booking.Status != domain.BookingStatusCompleted {
		return nil, ErrBookingNotActive
	}

	recordedAt := req.RecordedAt
	if recordedAt.IsZero() {
		recordedAt = time.Now()
	}

	ping := &domain.LocationPing{
		BookingID:  booking.ID,
		GuideID:    booking.GuideID,
		Latitude:   req.Latitude,
		Longitude:  req.Longitude,
		Accuracy:   req.Accuracy,
		Speed:      req.Speed,
		Heading:    req.Heading,
		Address:    req.Address,
		RecordedAt: recordedAt,
	}

	// A stale write (older recorded_at than the stored ping) is dropped by
	// the store; that is still success for the publisher.
	if _, err := s.pingStore.Publish(ctx, ping); err != nil {
		return nil, err
	}

	return ping, nil
}

// LatestPing returns the most recent ping for a booking along with the
// guide's derived presence, or nil when no ping was ever published.
// Only the booking's tourist or guide may read it.
func (s *LocationService) LatestPing(ctx context.Context, bookingID, requesterID string) (*domain.LocationPing, domain.Presence, error) {
	if bookingID == "" {
		return nil, "", ErrInvalidBookingID
	}

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, "", err
	}

	if booking.TouristID != requesterID && booking.GuideID != requesterID {
		return nil, "", ErrNotBookingParticipant
	}

	ping, err := s.pingStore.Latest(ctx, bookingID)
	if err != nil {
		return nil, "", err
	}

	if ping == nil {
		return nil, domain.PresenceOffline, nil
	}

	return ping, PresenceFor(ping.RecordedAt, time.Now()), nil
}

// PresenceFor classifies a ping's freshness relative to now.
func PresenceFor(recordedAt, now time.Time) domain.Presence {
	age := now.Sub(recordedAt)
	switch {
	case age <= presenceOnlineWindow:
		return domain.PresenceOnline
	case age <= presenceRecentWindow:
		return domain.PresenceRecent
	default:
		return domain.PresenceOffline
	}
}

func isValidLatitude(lat float64) bool {
	return lat >= -90 && lat <= 90
}

func isValidLongitude(lng float64) bool {
	return lng >= -180 && lng <= 180
}
