package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"gabaylaguna/internal/domain"
	"gabaylaguna/internal/service"
)

// LocationHandler handles HTTP requests for guide location pings.
type LocationHandler struct {
	locationService *service.LocationService
}

// NewLocationHandler creates a new LocationHandler.
func NewLocationHandler(locationService *service.LocationService) *LocationHandler {
	return &LocationHandler{locationService: locationService}
}

// PublishPingRequest is the HTTP request body for publishing a ping.
type PublishPingRequest struct {
	BookingID  string  `json:"booking_id"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
	Accuracy   float64 `json:"accuracy,omitempty"`
	Speed      float64 `json:"speed,omitempty"`
	Heading    float64 `json:"heading,omitempty"`
	Address    string  `json:"address,omitempty"`
	RecordedAt string  `json:"recorded_at,omitempty"` // RFC3339, defaults to now
}

// PingResponse is the HTTP representation of a location ping.
type PingResponse struct {
	BookingID  string  `json:"booking_id"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
	Accuracy   float64 `json:"accuracy,omitempty"`
	Speed      float64 `json:"speed,omitempty"`
	Heading    float64 `json:"heading,omitempty"`
	Address    string  `json:"address,omitempty"`
	RecordedAt string  `json:"recorded_at"`
	Presence   string  `json:"presence,omitempty"`
}

func toPingResponse(p *domain.LocationPing, presence domain.Presence) PingResponse {
	return PingResponse{
		BookingID:  p.BookingID,
		Latitude:   p.Latitude,
		Longitude:  p.Longitude,
		Accuracy:   p.Accuracy,
		Speed:      p.Speed,
		Heading:    p.Heading,
		Address:    p.Address,
		RecordedAt: p.RecordedAt.Format(time.RFC3339),
		Presence:   string(presence),
	}
}

// Publish handles POST /v1/guide-location
func (h *LocationHandler) Publish(c *gin.Context) {
	principal, ok := principalFrom(c)
	if !ok {
		respondUnauthenticated(c)
		return
	}

	if principal.Type != domain.UserTypeGuide {
		respondError(c, service.ErrNotBookingGuide)
		return
	}

	var req PublishPingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	var recordedAt time.Time
	if req.RecordedAt != "" {
		parsed, err := time.Parse(time.RFC3339, req.RecordedAt)
		if err != nil {
			respondBadRequest(c, "recorded_at must be formatted as RFC3339")
			return
		}
		recordedAt = parsed
	}

	ping, err := h.locationService.PublishPing(c.Request.Context(), service.PublishPingRequest{
		BookingID:  req.BookingID,
		GuideID:    principal.ID,
		Latitude:   req.Latitude,
		Longitude:  req.Longitude,
		Accuracy:   req.Accuracy,
		Speed:      req.Speed,
		Heading:    req.Heading,
		Address:    req.Address,
		RecordedAt: recordedAt,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respondData(c, http.StatusCreated, toPingResponse(ping, ""))
}

// Latest handles GET /v1/bookings/:id/guide-location
// Responds with a null data field when the guide has never published;
// the polling client treats that as "no location yet".
func (h *LocationHandler) Latest(c *gin.Context) {
	principal, ok := principalFrom(c)
	if !ok {
		respondUnauthenticated(c)
		return
	}

	ping, presence, err := h.locationService.LatestPing(c.Request.Context(), c.Param("id"), principal.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	if ping == nil {
		respondData(c, http.StatusOK, nil)
		return
	}

	respondData(c, http.StatusOK, toPingResponse(ping, presence))
}
