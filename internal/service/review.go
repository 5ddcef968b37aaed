package service

import (
	"context"
	"math"
	"time"

	"github.com/google/uuid"

	"gabaylaguna/internal/domain"
	"gabaylaguna/internal/repository"
)

// ReviewService handles booking reviews.
type ReviewService struct {
	reviewRepo          repository.ReviewRepository
	bookingRepo         repository.BookingRepository
	guideRepo           repository.GuideRepository
	notificationService *NotificationService
}

// NewReviewService creates a new ReviewService.
func NewReviewService(
	reviewRepo repository.ReviewRepository,
	bookingRepo repository.BookingRepository,
	guideRepo repository.GuideRepository,
	notificationService *NotificationService,
) *ReviewService {
	return &ReviewService{
		reviewRepo:          reviewRepo,
		bookingRepo:         bookingRepo,
		guideRepo:           guideRepo,
		notificationService: notificationService,
	}
}

// SubmitReviewRequest contains the parameters for submitting a review.
type SubmitReviewRequest struct {
	BookingID string
	TouristID string
	Rating    int
	Comment   string
}

// SubmitReview attaches a rating to a completed booking, once.
func (s *ReviewService) SubmitReview(ctx context.Context, req SubmitReviewRequest) (*domain.Review, error) {
	if req.BookingID == "" {
		return nil, ErrInvalidBookingID
	}

	if req.Rating < 1 || req.Rating > 5 {
		return nil, ErrInvalidRating
	}

	booking, err := s.bookingRepo.GetByID(ctx, req.BookingID)
	if err != nil {
		return nil, err
	}

	if booking.TouristID != req.TouristID {
		return nil, ErrNotBookingTourist
	}

	if booking.Status != domain.BookingStatusCompleted {
		return nil, ErrBookingNotCompleted
	}

	review := &domain.Review{
		ID:        uuid.New().String(),
		BookingID: booking.ID,
		GuideID:   booking.GuideID,
		TouristID: booking.TouristID,
		Rating:    req.Rating,
		Comment:   req.Comment,
		CreatedAt: time.Now(),
	}

	if err := s.reviewRepo.Create(ctx, review); err != nil {
		if err == repository.ErrDuplicate {
			return nil, ErrDuplicateReview
		}
		return nil, err
	}

	if s.notificationService != nil {
		_ = s.notificationService.NotifyReviewSubmitted(ctx, booking, review)
	}

	return review, nil
}

// GuideReviews bundles a guide's reviews with their average rating.
type GuideReviews struct {
	Reviews       []*domain.Review
	AverageRating float64 // rounded to one decimal, 0.0 with no reviews
}

// ListForGuide retrieves a guide's reviews and their average rating.
func (s *ReviewService) ListForGuide(ctx context.Context, guideID string) (*GuideReviews, error) {
	if guideID == "" {
		return nil, ErrInvalidGuideID
	}

	if _, err := s.guideRepo.GetByID(ctx, guideID); err != nil {
		return nil, err
	}

	reviews, err := s.reviewRepo.ListByGuide(ctx, guideID)
	if err != nil {
		return nil, err
	}

	avg, err := s.reviewRepo.AverageForGuide(ctx, guideID)
	if err != nil {
		return nil, err
	}

	return &GuideReviews{
		Reviews:       reviews,
		AverageRating: math.Round(avg*10) / 10,
	}, nil
}
