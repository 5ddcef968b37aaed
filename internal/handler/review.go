package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"gabaylaguna/internal/domain"
	"gabaylaguna/internal/service"
)

// ReviewHandler handles HTTP requests for reviews.
type ReviewHandler struct {
	reviewService *service.ReviewService
}

// NewReviewHandler creates a new ReviewHandler.
func NewReviewHandler(reviewService *service.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService}
}

// SubmitReviewRequest is the HTTP request body for submitting a review.
type SubmitReviewRequest struct {
	BookingID string `json:"booking_id"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment,omitempty"`
}

// ReviewResponse is the HTTP representation of a review.
type ReviewResponse struct {
	ID        string `json:"id"`
	BookingID string `json:"booking_id"`
	GuideID   string `json:"guide_id"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment,omitempty"`
	CreatedAt string `json:"created_at"`
}

// GuideReviewsResponse is the HTTP representation of a guide's reviews.
type GuideReviewsResponse struct {
	GuideID       string           `json:"guide_id"`
	AverageRating float64          `json:"average_rating"`
	Reviews       []ReviewResponse `json:"reviews"`
}

func toReviewResponse(r *domain.Review) ReviewResponse {
	return ReviewResponse{
		ID:        r.ID,
		BookingID: r.BookingID,
		GuideID:   r.GuideID,
		Rating:    r.Rating,
		Comment:   r.Comment,
		CreatedAt: r.CreatedAt.Format(time.RFC3339),
	}
}

// Submit handles POST /v1/reviews
func (h *ReviewHandler) Submit(c *gin.Context) {
	principal, ok := principalFrom(c)
	if !ok {
		respondUnauthenticated(c)
		return
	}

	if principal.Type != domain.UserTypeTourist {
		respondError(c, service.ErrNotBookingTourist)
		return
	}

	var req SubmitReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	review, err := h.reviewService.SubmitReview(c.Request.Context(), service.SubmitReviewRequest{
		BookingID: req.BookingID,
		TouristID: principal.ID,
		Rating:    req.Rating,
		Comment:   req.Comment,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respondData(c, http.StatusCreated, toReviewResponse(review))
}

// ListForGuide handles GET /v1/guides/:id/reviews
func (h *ReviewHandler) ListForGuide(c *gin.Context) {
	guideID := c.Param("id")

	result, err := h.reviewService.ListForGuide(c.Request.Context(), guideID)
	if err != nil {
		respondError(c, err)
		return
	}

	reviews := make([]ReviewResponse, 0, len(result.Reviews))
	for _, r := range result.Reviews {
		reviews = append(reviews, toReviewResponse(r))
	}

	respondList(c, http.StatusOK, GuideReviewsResponse{
		GuideID:       guideID,
		AverageRating: result.AverageRating,
		Reviews:       reviews,
	}, len(reviews))
}
