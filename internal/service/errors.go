package service

import "errors"

var (
	// ErrInvalidBookingID is returned when booking ID is empty.
	ErrInvalidBookingID = errors.New("invalid booking id")

	// ErrInvalidTouristID is returned when tourist ID is empty.
	ErrInvalidTouristID = errors.New("invalid tourist id")

	// ErrInvalidGuideID is returned when guide ID is empty.
	ErrInvalidGuideID = errors.New("invalid guide id")

	// ErrInvalidPOIID is returned when POI ID is empty.
	ErrInvalidPOIID = errors.New("invalid poi id")

	// ErrTourDateInPast is returned when the tour date is before today.
	ErrTourDateInPast = errors.New("tour date must be today or later")

	// ErrInvalidDuration is returned when duration is outside 1-8 hours.
	ErrInvalidDuration = errors.New("duration must be between 1 and 8 hours")

	// ErrInvalidPartySize is returned when the party is outside 1-20 people.
	ErrInvalidPartySize = errors.New("number of people must be between 1 and 20")

	// ErrInvalidRating is returned when a rating is outside 1-5.
	ErrInvalidRating = errors.New("rating must be between 1 and 5")

	// ErrInvalidCoordinates is returned when lat/lng are out of range.
	ErrInvalidCoordinates = errors.New("invalid coordinates")

	// ErrInvalidPaymentMethod is returned when the payment method is unknown.
	ErrInvalidPaymentMethod = errors.New("invalid payment method")

	// ErrInvalidStatus is returned when a target status is not a known
	// booking status.
	ErrInvalidStatus = errors.New("invalid booking status")

	// ErrNotBookingTourist is returned when the actor is not the booking's
	// tourist.
	ErrNotBookingTourist = errors.New("not the tourist on this booking")

	// ErrNotBookingGuide is returned when the actor is not the booking's
	// assigned guide.
	ErrNotBookingGuide = errors.New("not the guide on this booking")

	// ErrNotBookingParticipant is returned when the actor is neither the
	// tourist nor the guide on the booking.
	ErrNotBookingParticipant = errors.New("not a participant on this booking")

	// ErrInvalidTransition is returned when the requested status change is
	// not legal for the actor and current status.
	ErrInvalidTransition = errors.New("booking is not in a state that allows this action")

	// ErrScheduleConflict is returned when the guide already has a booking
	// overlapping the requested window.
	ErrScheduleConflict = errors.New("guide already has a booking in this time window")

	// ErrGuideBusy is returned when the guide's schedule lock could not be
	// acquired; the caller should retry.
	ErrGuideBusy = errors.New("guide schedule is busy, try again")

	// ErrAlreadyPaid is returned when a payment already exists for the booking.
	ErrAlreadyPaid = errors.New("booking has already been paid")

	// ErrBookingNotPayable is returned when the booking's status does not
	// allow recording a payment.
	ErrBookingNotPayable = errors.New("booking cannot be paid in its current state")

	// ErrDuplicateReview is returned when a review already exists for the booking.
	ErrDuplicateReview = errors.New("booking has already been reviewed")

	// ErrBookingNotCompleted is returned when a review is submitted before
	// the booking is completed.
	ErrBookingNotCompleted = errors.New("booking is not completed")

	// ErrBookingNotActive is returned when a location ping is published for
	// a booking that is not confirmed or completed.
	ErrBookingNotActive = errors.New("booking is not active for location sharing")
)
