package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"gabaylaguna/internal/domain"
	"gabaylaguna/internal/repository"
	"gabaylaguna/internal/service"
)

// Envelope is the single response shape for successful calls.
type Envelope struct {
	Data any   `json:"data"`
	Meta *Meta `json:"meta,omitempty"`
}

// Meta carries list metadata.
type Meta struct {
	Count int `json:"count"`
}

// ErrorBody is the single response shape for failed calls.
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

// ErrorResponse wraps an ErrorBody.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// respondData sends a success envelope.
func respondData(c *gin.Context, code int, data any) {
	c.JSON(code, Envelope{Data: data})
}

// respondList sends a success envelope with a count.
func respondList(c *gin.Context, code int, data any, count int) {
	c.JSON(code, Envelope{Data: data, Meta: &Meta{Count: count}})
}

// respondError maps a service/repository error onto the error envelope.
func respondError(c *gin.Context, err error) {
	status, code := mapError(err)
	c.JSON(status, ErrorResponse{Error: ErrorBody{
		Code:    code,
		Message: err.Error(),
		Field:   fieldFor(err),
	}})
}

// respondBadRequest reports a malformed request body or parameter.
func respondBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: ErrorBody{
		Code:    "bad_request",
		Message: message,
	}})
}

// mapError maps service/repository errors to an HTTP status and a stable
// machine-readable code.
func mapError(err error) (int, string) {
	switch {
	// Not found errors
	case errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound, "not_found"

	// Validation errors
	case errors.Is(err, service.ErrInvalidBookingID),
		errors.Is(err, service.ErrInvalidTouristID),
		errors.Is(err, service.ErrInvalidGuideID),
		errors.Is(err, service.ErrInvalidPOIID),
		errors.Is(err, service.ErrTourDateInPast),
		errors.Is(err, service.ErrInvalidDuration),
		errors.Is(err, service.ErrInvalidPartySize),
		errors.Is(err, service.ErrInvalidRating),
		errors.Is(err, service.ErrInvalidCoordinates),
		errors.Is(err, service.ErrInvalidPaymentMethod),
		errors.Is(err, service.ErrInvalidStatus):
		return http.StatusUnprocessableEntity, "validation_error"

	// Principal mismatch
	case errors.Is(err, service.ErrNotBookingTourist),
		errors.Is(err, service.ErrNotBookingGuide),
		errors.Is(err, service.ErrNotBookingParticipant):
		return http.StatusForbidden, "forbidden"

	// State and uniqueness conflicts
	case errors.Is(err, service.ErrInvalidTransition),
		errors.Is(err, service.ErrScheduleConflict),
		errors.Is(err, service.ErrGuideBusy),
		errors.Is(err, service.ErrAlreadyPaid),
		errors.Is(err, service.ErrBookingNotPayable),
		errors.Is(err, service.ErrDuplicateReview),
		errors.Is(err, service.ErrBookingNotCompleted),
		errors.Is(err, service.ErrBookingNotActive):
		return http.StatusConflict, "conflict"

	default:
		return http.StatusInternalServerError, "internal_error"
	}
}

// fieldFor attributes validation errors to the offending request field.
func fieldFor(err error) string {
	switch {
	case errors.Is(err, service.ErrTourDateInPast):
		return "tour_date"
	case errors.Is(err, service.ErrInvalidDuration):
		return "duration_hours"
	case errors.Is(err, service.ErrInvalidPartySize):
		return "number_of_people"
	case errors.Is(err, service.ErrInvalidRating):
		return "rating"
	case errors.Is(err, service.ErrInvalidPaymentMethod):
		return "method"
	case errors.Is(err, service.ErrInvalidCoordinates):
		return "latitude"
	case errors.Is(err, service.ErrInvalidStatus):
		return "status"
	default:
		return ""
	}
}

// principalFrom extracts the authenticated principal placed in the context
// by the auth middleware.
func principalFrom(c *gin.Context) (domain.Principal, bool) {
	id, okID := c.Get("principalID")
	userType, okType := c.Get("userType")
	if !okID || !okType {
		return domain.Principal{}, false
	}

	return domain.Principal{
		ID:   id.(string),
		Type: domain.UserType(userType.(string)),
	}, true
}

// respondUnauthenticated reports a missing principal. The auth middleware
// normally rejects these before a handler runs.
func respondUnauthenticated(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, ErrorResponse{Error: ErrorBody{
		Code:    "unauthorized",
		Message: "authentication required",
	}})
}
