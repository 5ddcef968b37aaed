package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gabaylaguna/internal/repository"
	"gabaylaguna/internal/service"
)

func TestMapError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"not found", repository.ErrNotFound, http.StatusNotFound, "not_found"},
		{"invalid duration", service.ErrInvalidDuration, http.StatusUnprocessableEntity, "validation_error"},
		{"invalid rating", service.ErrInvalidRating, http.StatusUnprocessableEntity, "validation_error"},
		{"tour date in past", service.ErrTourDateInPast, http.StatusUnprocessableEntity, "validation_error"},
		{"invalid payment method", service.ErrInvalidPaymentMethod, http.StatusUnprocessableEntity, "validation_error"},
		{"not the tourist", service.ErrNotBookingTourist, http.StatusForbidden, "forbidden"},
		{"not the guide", service.ErrNotBookingGuide, http.StatusForbidden, "forbidden"},
		{"not a participant", service.ErrNotBookingParticipant, http.StatusForbidden, "forbidden"},
		{"invalid transition", service.ErrInvalidTransition, http.StatusConflict, "conflict"},
		{"schedule conflict", service.ErrScheduleConflict, http.StatusConflict, "conflict"},
		{"already paid", service.ErrAlreadyPaid, http.StatusConflict, "conflict"},
		{"duplicate review", service.ErrDuplicateReview, http.StatusConflict, "conflict"},
		{"booking not completed", service.ErrBookingNotCompleted, http.StatusConflict, "conflict"},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError, "internal_error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, code := mapError(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantCode, code)
		})
	}
}

func TestFieldFor(t *testing.T) {
	tests := []struct {
		err       error
		wantField string
	}{
		{service.ErrTourDateInPast, "tour_date"},
		{service.ErrInvalidDuration, "duration_hours"},
		{service.ErrInvalidPartySize, "number_of_people"},
		{service.ErrInvalidRating, "rating"},
		{service.ErrInvalidPaymentMethod, "method"},
		{service.ErrInvalidStatus, "status"},
		{service.ErrScheduleConflict, ""},
		{repository.ErrNotFound, ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.wantField, fieldFor(tt.err), "error: %v", tt.err)
	}
}

func TestRespondError_Envelope(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)

	respondError(c, service.ErrInvalidDuration)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "validation_error", body.Error.Code)
	assert.Equal(t, "duration_hours", body.Error.Field)
	assert.NotEmpty(t, body.Error.Message)
}

func TestRespondData_Envelope(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)

	respondData(c, http.StatusCreated, gin.H{"id": "booking-1"})

	assert.Equal(t, http.StatusCreated, rec.Code)

	var body map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body, "data")
	assert.NotContains(t, body, "meta")
}

func TestRespondList_Envelope(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)

	respondList(c, http.StatusOK, []string{"a", "b"}, 2)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data []string `json:"data"`
		Meta *Meta    `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Meta)
	assert.Equal(t, 2, body.Meta.Count)
	assert.Len(t, body.Data, 2)
}
