package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"gabaylaguna/internal/domain"
	"gabaylaguna/internal/service"
)

const (
	dateLayout  = "2006-01-02"
	clockLayout = "15:04"
)

// BookingHandler handles HTTP requests for bookings.
type BookingHandler struct {
	bookingService *service.BookingService
}

// NewBookingHandler creates a new BookingHandler.
func NewBookingHandler(bookingService *service.BookingService) *BookingHandler {
	return &BookingHandler{bookingService: bookingService}
}

// CreateBookingRequest is the HTTP request body for creating a booking.
type CreateBookingRequest struct {
	GuideID         string `json:"guide_id"`
	POIID           string `json:"poi_id"`
	TourDate        string `json:"tour_date"`  // 2006-01-02
	StartTime       string `json:"start_time"` // 15:04
	DurationHours   int    `json:"duration_hours"`
	NumberOfPeople  int    `json:"number_of_people"`
	SpecialRequests string `json:"special_requests,omitempty"`
}

// UpdateStatusRequest is the HTTP request body for a guide status change.
type UpdateStatusRequest struct {
	Status string `json:"status"` // confirmed, rejected, completed
}

// BookingResponse is the HTTP representation of a booking.
type BookingResponse struct {
	ID              string  `json:"id"`
	TouristID       string  `json:"tourist_id"`
	GuideID         string  `json:"guide_id"`
	POIID           string  `json:"poi_id"`
	TourDate        string  `json:"tour_date"`
	StartTime       string  `json:"start_time"`
	EndTime         string  `json:"end_time"`
	DurationHours   int     `json:"duration_hours"`
	NumberOfPeople  int     `json:"number_of_people"`
	SpecialRequests string  `json:"special_requests,omitempty"`
	TotalAmount     float64 `json:"total_amount"`
	Status          string  `json:"status"`
	CreatedAt       string  `json:"created_at"`
}

func toBookingResponse(b *domain.Booking) BookingResponse {
	return BookingResponse{
		ID:              b.ID,
		TouristID:       b.TouristID,
		GuideID:         b.GuideID,
		POIID:           b.POIID,
		TourDate:        b.TourDate.Format(dateLayout),
		StartTime:       b.StartTime.Format(clockLayout),
		EndTime:         b.EndTime.Format(clockLayout),
		DurationHours:   b.DurationHours,
		NumberOfPeople:  b.NumberOfPeople,
		SpecialRequests: b.SpecialRequests,
		TotalAmount:     b.TotalAmount,
		Status:          string(b.Status),
		CreatedAt:       b.CreatedAt.Format(time.RFC3339),
	}
}

// Create handles POST /v1/bookings
func (h *BookingHandler) Create(c *gin.Context) {
	principal, ok := principalFrom(c)
	if !ok {
		respondUnauthenticated(c)
		return
	}

	if principal.Type != domain.UserTypeTourist {
		respondError(c, service.ErrNotBookingTourist)
		return
	}

	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	tourDate, err := time.ParseInLocation(dateLayout, req.TourDate, time.Local)
	if err != nil {
		respondBadRequest(c, "tour_date must be formatted as 2006-01-02")
		return
	}

	startClock, err := time.Parse(clockLayout, req.StartTime)
	if err != nil {
		respondBadRequest(c, "start_time must be formatted as 15:04")
		return
	}

	startTime := time.Date(
		tourDate.Year(), tourDate.Month(), tourDate.Day(),
		startClock.Hour(), startClock.Minute(), 0, 0, time.Local,
	)

	booking, err := h.bookingService.CreateBooking(c.Request.Context(), service.CreateBookingRequest{
		TouristID:       principal.ID,
		GuideID:         req.GuideID,
		POIID:           req.POIID,
		TourDate:        tourDate,
		StartTime:       startTime,
		DurationHours:   req.DurationHours,
		NumberOfPeople:  req.NumberOfPeople,
		SpecialRequests: req.SpecialRequests,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respondData(c, http.StatusCreated, toBookingResponse(booking))
}

// List handles GET /v1/bookings
func (h *BookingHandler) List(c *gin.Context) {
	principal, ok := principalFrom(c)
	if !ok {
		respondUnauthenticated(c)
		return
	}

	status := domain.BookingStatus(c.Query("status"))

	bookings, err := h.bookingService.ListBookings(c.Request.Context(), principal, status)
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		response = append(response, toBookingResponse(b))
	}

	respondList(c, http.StatusOK, response, len(response))
}

// Get handles GET /v1/bookings/:id
func (h *BookingHandler) Get(c *gin.Context) {
	principal, ok := principalFrom(c)
	if !ok {
		respondUnauthenticated(c)
		return
	}

	booking, err := h.bookingService.GetBooking(c.Request.Context(), c.Param("id"), principal)
	if err != nil {
		respondError(c, err)
		return
	}

	respondData(c, http.StatusOK, toBookingResponse(booking))
}

// UpdateStatus handles PUT /v1/bookings/:id/status
func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	principal, ok := principalFrom(c)
	if !ok {
		respondUnauthenticated(c)
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	booking, err := h.bookingService.Transition(c.Request.Context(), service.TransitionRequest{
		BookingID: c.Param("id"),
		Actor:     principal,
		NewStatus: domain.BookingStatus(req.Status),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respondData(c, http.StatusOK, toBookingResponse(booking))
}

// Cancel handles DELETE /v1/bookings/:id
func (h *BookingHandler) Cancel(c *gin.Context) {
	principal, ok := principalFrom(c)
	if !ok {
		respondUnauthenticated(c)
		return
	}

	booking, err := h.bookingService.Transition(c.Request.Context(), service.TransitionRequest{
		BookingID: c.Param("id"),
		Actor:     principal,
		NewStatus: domain.BookingStatusCancelled,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respondData(c, http.StatusOK, toBookingResponse(booking))
}
