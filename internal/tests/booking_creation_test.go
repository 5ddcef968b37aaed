package tests

import (
	"context"
	"errors"
	"testing"
	"time"

	"gabaylaguna/internal/domain"
	"gabaylaguna/internal/repository"
	"gabaylaguna/internal/service"
)

// ──────────────────────────────────────────────
// 1. BOOKING CREATION
// ──────────────────────────────────────────────

func newBookingFixture() (*service.BookingService, *MockBookingRepository, *MockGuideRepository, *MockPOIRepository, *MockLockStore) {
	bookingRepo := NewMockBookingRepository()
	guideRepo := NewMockGuideRepository()
	poiRepo := NewMockPOIRepository()
	lockStore := NewMockLockStore()

	guideRepo.AddGuide(&domain.Guide{
		ID:         "guide-1",
		Name:       "Maria Santos",
		HourlyRate: 500,
		City:       "Pagsanjan",
	})
	poiRepo.AddPOI(&domain.POI{
		ID:   "poi-1",
		Name: "Pagsanjan Falls",
		City: "Pagsanjan",
	})

	svc := service.NewBookingService(bookingRepo, guideRepo, poiRepo, lockStore, nil, nil)
	return svc, bookingRepo, guideRepo, poiRepo, lockStore
}

func validCreateRequest() service.CreateBookingRequest {
	tourDate := time.Now().AddDate(0, 0, 7).Truncate(24 * time.Hour)
	return service.CreateBookingRequest{
		TouristID:      "tourist-1",
		GuideID:        "guide-1",
		POIID:          "poi-1",
		TourDate:       tourDate,
		StartTime:      tourDate.Add(9 * time.Hour),
		DurationHours:  2,
		NumberOfPeople: 4,
	}
}

func TestCreateBooking_PricingFixedAtCreation(t *testing.T) {
	t.Parallel()

	svc, bookingRepo, _, _, _ := newBookingFixture()

	booking, err := svc.CreateBooking(context.Background(), validCreateRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 500/hour * 2 hours + 50 flat fee
	if booking.TotalAmount != 1050 {
		t.Errorf("expected total 1050, got %.2f", booking.TotalAmount)
	}
	if booking.Status != domain.BookingStatusPending {
		t.Errorf("expected status pending, got %s", booking.Status)
	}
	if booking.ID == "" {
		t.Error("expected a generated booking ID")
	}

	expectedEnd := booking.StartTime.Add(2 * time.Hour)
	if !booking.EndTime.Equal(expectedEnd) {
		t.Errorf("expected end time %v, got %v", expectedEnd, booking.EndTime)
	}

	if bookingRepo.CountBookings() != 1 {
		t.Errorf("expected 1 stored booking, got %d", bookingRepo.CountBookings())
	}
}

func TestCreateBooking_RateChangeDoesNotAffectExistingBooking(t *testing.T) {
	t.Parallel()

	svc, bookingRepo, guideRepo, _, _ := newBookingFixture()

	booking, err := svc.CreateBooking(context.Background(), validCreateRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Guide raises their rate after the booking exists.
	guideRepo.AddGuide(&domain.Guide{ID: "guide-1", Name: "Maria Santos", HourlyRate: 800})

	stored := bookingRepo.GetBooking(booking.ID)
	if stored.TotalAmount != 1050 {
		t.Errorf("expected total to stay 1050, got %.2f", stored.TotalAmount)
	}
}

func TestCreateBooking_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*service.CreateBookingRequest)
		wantErr error
	}{
		{
			name:    "empty tourist id",
			mutate:  func(r *service.CreateBookingRequest) { r.TouristID = "" },
			wantErr: service.ErrInvalidTouristID,
		},
		{
			name:    "empty guide id",
			mutate:  func(r *service.CreateBookingRequest) { r.GuideID = "" },
			wantErr: service.ErrInvalidGuideID,
		},
		{
			name:    "empty poi id",
			mutate:  func(r *service.CreateBookingRequest) { r.POIID = "" },
			wantErr: service.ErrInvalidPOIID,
		},
		{
			name:    "zero duration",
			mutate:  func(r *service.CreateBookingRequest) { r.DurationHours = 0 },
			wantErr: service.ErrInvalidDuration,
		},
		{
			name:    "duration above eight hours",
			mutate:  func(r *service.CreateBookingRequest) { r.DurationHours = 9 },
			wantErr: service.ErrInvalidDuration,
		},
		{
			name:    "zero people",
			mutate:  func(r *service.CreateBookingRequest) { r.NumberOfPeople = 0 },
			wantErr: service.ErrInvalidPartySize,
		},
		{
			name:    "party above twenty",
			mutate:  func(r *service.CreateBookingRequest) { r.NumberOfPeople = 21 },
			wantErr: service.ErrInvalidPartySize,
		},
		{
			name: "tour date in the past",
			mutate: func(r *service.CreateBookingRequest) {
				r.TourDate = time.Now().AddDate(0, 0, -1)
			},
			wantErr: service.ErrTourDateInPast,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc, bookingRepo, _, _, _ := newBookingFixture()
			req := validCreateRequest()
			tt.mutate(&req)

			_, err := svc.CreateBooking(context.Background(), req)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
			if bookingRepo.CountBookings() != 0 {
				t.Error("expected no booking to be stored")
			}
		})
	}
}

func TestCreateBooking_TodayAcceptedEastOfUTC(t *testing.T) {
	t.Parallel()

	svc, _, _, _, _ := newBookingFixture()

	// Midnight today in a zone ahead of UTC is an instant before UTC
	// midnight; the calendar date is still today.
	zone := time.FixedZone("UTC+8", 8*60*60)
	now := time.Now().In(zone)
	tourDate := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, zone)

	req := validCreateRequest()
	req.TourDate = tourDate
	req.StartTime = tourDate.Add(9 * time.Hour)

	if _, err := svc.CreateBooking(context.Background(), req); err != nil {
		t.Errorf("expected a booking dated today to be accepted, got %v", err)
	}
}

func TestCreateBooking_BoundaryValuesAccepted(t *testing.T) {
	t.Parallel()

	svc, _, _, _, _ := newBookingFixture()

	req := validCreateRequest()
	req.DurationHours = 8
	req.NumberOfPeople = 20

	booking, err := svc.CreateBooking(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// 500 * 8 + 50
	if booking.TotalAmount != 4050 {
		t.Errorf("expected total 4050, got %.2f", booking.TotalAmount)
	}
}

func TestCreateBooking_UnknownGuide(t *testing.T) {
	t.Parallel()

	svc, _, _, _, _ := newBookingFixture()

	req := validCreateRequest()
	req.GuideID = "guide-missing"

	_, err := svc.CreateBooking(context.Background(), req)
	if !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestCreateBooking_UnknownPOI(t *testing.T) {
	t.Parallel()

	svc, _, _, _, _ := newBookingFixture()

	req := validCreateRequest()
	req.POIID = "poi-missing"

	_, err := svc.CreateBooking(context.Background(), req)
	if !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestCreateBooking_OverlappingWindowRejected(t *testing.T) {
	t.Parallel()

	svc, bookingRepo, _, _, _ := newBookingFixture()
	req := validCreateRequest()

	if _, err := svc.CreateBooking(context.Background(), req); err != nil {
		t.Fatalf("unexpected error on first booking: %v", err)
	}

	// Second request shifted one hour into the first window.
	second := req
	second.TouristID = "tourist-2"
	second.StartTime = req.StartTime.Add(time.Hour)

	_, err := svc.CreateBooking(context.Background(), second)
	if !errors.Is(err, service.ErrScheduleConflict) {
		t.Errorf("expected ErrScheduleConflict, got %v", err)
	}
	if bookingRepo.CountBookings() != 1 {
		t.Errorf("expected 1 booking, got %d", bookingRepo.CountBookings())
	}
}

func TestCreateBooking_BackToBackWindowsAllowed(t *testing.T) {
	t.Parallel()

	svc, bookingRepo, _, _, _ := newBookingFixture()
	req := validCreateRequest()

	if _, err := svc.CreateBooking(context.Background(), req); err != nil {
		t.Fatalf("unexpected error on first booking: %v", err)
	}

	// [09:00, 11:00) then [11:00, 13:00): shared boundary is not overlap.
	second := req
	second.TouristID = "tourist-2"
	second.StartTime = req.StartTime.Add(2 * time.Hour)

	if _, err := svc.CreateBooking(context.Background(), second); err != nil {
		t.Fatalf("unexpected error on back-to-back booking: %v", err)
	}
	if bookingRepo.CountBookings() != 2 {
		t.Errorf("expected 2 bookings, got %d", bookingRepo.CountBookings())
	}
}

func TestCreateBooking_CancelledBookingDoesNotBlockWindow(t *testing.T) {
	t.Parallel()

	svc, bookingRepo, _, _, _ := newBookingFixture()
	req := validCreateRequest()

	first, err := svc.CreateBooking(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	bookingRepo.GetBooking(first.ID).Status = domain.BookingStatusCancelled

	second := req
	second.TouristID = "tourist-2"
	if _, err := svc.CreateBooking(context.Background(), second); err != nil {
		t.Errorf("expected cancelled booking to free the window, got %v", err)
	}
}

func TestCreateBooking_GuideLockBusy(t *testing.T) {
	t.Parallel()

	svc, bookingRepo, _, _, lockStore := newBookingFixture()
	lockStore.HoldLock("guide-1")

	_, err := svc.CreateBooking(context.Background(), validCreateRequest())
	if !errors.Is(err, service.ErrGuideBusy) {
		t.Errorf("expected ErrGuideBusy, got %v", err)
	}
	if bookingRepo.CountBookings() != 0 {
		t.Error("expected no booking to be stored")
	}
}

func TestCreateBooking_LockReleasedAfterCreation(t *testing.T) {
	t.Parallel()

	svc, _, _, _, lockStore := newBookingFixture()

	if _, err := svc.CreateBooking(context.Background(), validCreateRequest()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if lockStore.ReleaseCallCount != 1 {
		t.Errorf("expected 1 release call, got %d", lockStore.ReleaseCallCount)
	}
}
