package tests

import (
	"context"
	"errors"
	"testing"

	"gabaylaguna/internal/domain"
	"gabaylaguna/internal/repository"
	"gabaylaguna/internal/service"
)

// ──────────────────────────────────────────────
// 5. REVIEWS
// ──────────────────────────────────────────────

func newReviewFixture(status domain.BookingStatus) (*service.ReviewService, *MockReviewRepository, *MockGuideRepository) {
	bookingRepo := NewMockBookingRepository()
	bookingRepo.AddBooking(&domain.Booking{
		ID:        "booking-1",
		TouristID: "tourist-1",
		GuideID:   "guide-1",
		Status:    status,
	})

	guideRepo := NewMockGuideRepository()
	guideRepo.AddGuide(&domain.Guide{ID: "guide-1", Name: "Maria Santos", HourlyRate: 500})

	reviewRepo := NewMockReviewRepository()
	svc := service.NewReviewService(reviewRepo, bookingRepo, guideRepo, nil)
	return svc, reviewRepo, guideRepo
}

func TestSubmitReview_CompletedBookingOnly(t *testing.T) {
	t.Parallel()

	svc, reviewRepo, _ := newReviewFixture(domain.BookingStatusCompleted)

	review, err := svc.SubmitReview(context.Background(), service.SubmitReviewRequest{
		BookingID: "booking-1",
		TouristID: "tourist-1",
		Rating:    5,
		Comment:   "Great tour of the falls",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if review.GuideID != "guide-1" {
		t.Errorf("expected guide-1, got %s", review.GuideID)
	}
	if review.Rating != 5 {
		t.Errorf("expected rating 5, got %d", review.Rating)
	}
	if reviewRepo.CreateCallCount != 1 {
		t.Errorf("expected 1 create call, got %d", reviewRepo.CreateCallCount)
	}
}

func TestSubmitReview_NonCompletedStatesRejected(t *testing.T) {
	t.Parallel()

	for _, status := range []domain.BookingStatus{
		domain.BookingStatusPending,
		domain.BookingStatusConfirmed,
		domain.BookingStatusCancelled,
		domain.BookingStatusRejected,
	} {
		status := status
		t.Run(string(status), func(t *testing.T) {
			t.Parallel()

			svc, _, _ := newReviewFixture(status)

			_, err := svc.SubmitReview(context.Background(), service.SubmitReviewRequest{
				BookingID: "booking-1",
				TouristID: "tourist-1",
				Rating:    4,
			})
			if !errors.Is(err, service.ErrBookingNotCompleted) {
				t.Errorf("expected ErrBookingNotCompleted, got %v", err)
			}
		})
	}
}

func TestSubmitReview_SecondReviewRejected(t *testing.T) {
	t.Parallel()

	svc, _, _ := newReviewFixture(domain.BookingStatusCompleted)
	req := service.SubmitReviewRequest{
		BookingID: "booking-1",
		TouristID: "tourist-1",
		Rating:    4,
	}

	if _, err := svc.SubmitReview(context.Background(), req); err != nil {
		t.Fatalf("unexpected error on first review: %v", err)
	}

	req.Rating = 1
	_, err := svc.SubmitReview(context.Background(), req)
	if !errors.Is(err, service.ErrDuplicateReview) {
		t.Errorf("expected ErrDuplicateReview, got %v", err)
	}
}

func TestSubmitReview_OnlyBookingTourist(t *testing.T) {
	t.Parallel()

	svc, _, _ := newReviewFixture(domain.BookingStatusCompleted)

	_, err := svc.SubmitReview(context.Background(), service.SubmitReviewRequest{
		BookingID: "booking-1",
		TouristID: "tourist-2",
		Rating:    4,
	})
	if !errors.Is(err, service.ErrNotBookingTourist) {
		t.Errorf("expected ErrNotBookingTourist, got %v", err)
	}
}

func TestSubmitReview_RatingRange(t *testing.T) {
	t.Parallel()

	for _, rating := range []int{0, -1, 6, 100} {
		svc, _, _ := newReviewFixture(domain.BookingStatusCompleted)

		_, err := svc.SubmitReview(context.Background(), service.SubmitReviewRequest{
			BookingID: "booking-1",
			TouristID: "tourist-1",
			Rating:    rating,
		})
		if !errors.Is(err, service.ErrInvalidRating) {
			t.Errorf("rating %d: expected ErrInvalidRating, got %v", rating, err)
		}
	}
}

func TestListForGuide_AverageRounding(t *testing.T) {
	t.Parallel()

	svc, reviewRepo, _ := newReviewFixture(domain.BookingStatusCompleted)
	reviewRepo.AddReview(&domain.Review{ID: "r1", BookingID: "b1", GuideID: "guide-1", Rating: 4})
	reviewRepo.AddReview(&domain.Review{ID: "r2", BookingID: "b2", GuideID: "guide-1", Rating: 5})
	reviewRepo.AddReview(&domain.Review{ID: "r3", BookingID: "b3", GuideID: "guide-1", Rating: 5})

	result, err := svc.ListForGuide(context.Background(), "guide-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(result.Reviews) != 3 {
		t.Errorf("expected 3 reviews, got %d", len(result.Reviews))
	}
	// (4+5+5)/3 = 4.666... rounds to 4.7
	if result.AverageRating != 4.7 {
		t.Errorf("expected average 4.7, got %.2f", result.AverageRating)
	}
}

func TestListForGuide_NoReviewsIsZeroAverage(t *testing.T) {
	t.Parallel()

	svc, _, _ := newReviewFixture(domain.BookingStatusCompleted)

	result, err := svc.ListForGuide(context.Background(), "guide-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(result.Reviews) != 0 {
		t.Errorf("expected no reviews, got %d", len(result.Reviews))
	}
	if result.AverageRating != 0 {
		t.Errorf("expected average 0, got %.2f", result.AverageRating)
	}
}

func TestListForGuide_UnknownGuide(t *testing.T) {
	t.Parallel()

	svc, _, _ := newReviewFixture(domain.BookingStatusCompleted)

	_, err := svc.ListForGuide(context.Background(), "guide-missing")
	if !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
