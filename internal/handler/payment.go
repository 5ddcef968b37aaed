package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"gabaylaguna/internal/domain"
	"gabaylaguna/internal/service"
)

// PaymentHandler handles HTTP requests for payments.
type PaymentHandler struct {
	paymentService *service.PaymentService
}

// NewPaymentHandler creates a new PaymentHandler.
func NewPaymentHandler(paymentService *service.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

// PayRequest is the HTTP request body for recording a payment.
type PayRequest struct {
	BookingID string `json:"booking_id"`
}

// PaymentResponse is the HTTP representation of a payment.
type PaymentResponse struct {
	ID                string  `json:"id"`
	BookingID         string  `json:"booking_id"`
	Method            string  `json:"method"`
	Amount            float64 `json:"amount"`
	ExternalReference string  `json:"external_reference"`
	CreatedAt         string  `json:"created_at"`
}

// Pay handles POST /v1/payments/:method
func (h *PaymentHandler) Pay(c *gin.Context) {
	principal, ok := principalFrom(c)
	if !ok {
		respondUnauthenticated(c)
		return
	}

	if principal.Type != domain.UserTypeTourist {
		respondError(c, service.ErrNotBookingTourist)
		return
	}

	method, err := service.ValidatePaymentMethod(c.Param("method"))
	if err != nil {
		respondError(c, err)
		return
	}

	var req PayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	payment, err := h.paymentService.Pay(c.Request.Context(), service.PayRequest{
		BookingID: req.BookingID,
		PayerID:   principal.ID,
		Method:    method,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respondData(c, http.StatusCreated, PaymentResponse{
		ID:                payment.ID,
		BookingID:         payment.BookingID,
		Method:            string(payment.Method),
		Amount:            payment.Amount,
		ExternalReference: payment.ExternalReference,
		CreatedAt:         payment.CreatedAt.Format(time.RFC3339),
	})
}
