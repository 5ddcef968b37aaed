package tests

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"gabaylaguna/internal/domain"
	"gabaylaguna/internal/repository"
)

// ──────────────────────────────────────────────
// MOCK BOOKING REPOSITORY
// ──────────────────────────────────────────────

// MockBookingRepository is a mock implementation of BookingRepository.
type MockBookingRepository struct {
	mu       sync.RWMutex
	bookings map[string]*domain.Booking

	// Counters for verification
	CreateCallCount       int32
	UpdateStatusCallCount int32
	HasOverlapCallCount   int32

	// Error injection
	CreateError       error
	UpdateStatusError error
	HasOverlapError   error
}

// NewMockBookingRepository creates a new mock booking repository.
func NewMockBookingRepository() *MockBookingRepository {
	return &MockBookingRepository{
		bookings: make(map[string]*domain.Booking),
	}
}

// AddBooking adds a booking to the mock repository.
func (m *MockBookingRepository) AddBooking(booking *domain.Booking) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.bookings[booking.ID] = booking
}

func (m *MockBookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	atomic.AddInt32(&m.CreateCallCount, 1)
	if m.CreateError != nil {
		return m.CreateError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.bookings[booking.ID] = booking
	return nil
}

func (m *MockBookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	booking, ok := m.bookings[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	// Return a copy to avoid mutation issues.
	copy := *booking
	return &copy, nil
}

func (m *MockBookingRepository) List(ctx context.Context, filter repository.BookingFilter) ([]*domain.Booking, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	result := make([]*domain.Booking, 0, len(m.bookings))
	for _, b := range m.bookings {
		if filter.TouristID != "" && b.TouristID != filter.TouristID {
			continue
		}
		if filter.GuideID != "" && b.GuideID != filter.GuideID {
			continue
		}
		if filter.Status != "" && b.Status != filter.Status {
			continue
		}
		copy := *b
		result = append(result, &copy)
	}
	// Newest first, capped, matching the List contract.
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	if len(result) > repository.ListCap {
		result = result[:repository.ListCap]
	}
	return result, nil
}

func (m *MockBookingRepository) UpdateStatus(ctx context.Context, id string, from, to domain.BookingStatus) error {
	atomic.AddInt32(&m.UpdateStatusCallCount, 1)
	if m.UpdateStatusError != nil {
		return m.UpdateStatusError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	booking, ok := m.bookings[id]
	if !ok || booking.Status != from {
		// Same signal the conditional UPDATE gives on zero rows.
		return repository.ErrNotFound
	}
	booking.Status = to
	return nil
}

func (m *MockBookingRepository) HasOverlap(ctx context.Context, guideID string, start, end time.Time) (bool, error) {
	atomic.AddInt32(&m.HasOverlapCallCount, 1)
	if m.HasOverlapError != nil {
		return false, m.HasOverlapError
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, b := range m.bookings {
		if b.GuideID != guideID {
			continue
		}
		if b.Status != domain.BookingStatusPending && b.Status != domain.BookingStatusConfirmed {
			continue
		}
		if b.StartTime.Before(end) && b.EndTime.After(start) {
			return true, nil
		}
	}
	return false, nil
}

// GetBooking returns a booking for test assertions.
func (m *MockBookingRepository) GetBooking(id string) *domain.Booking {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.bookings[id]
}

// CountBookings returns the number of stored bookings.
func (m *MockBookingRepository) CountBookings() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.bookings)
}

// ──────────────────────────────────────────────
// MOCK PAYMENT REPOSITORY
// ──────────────────────────────────────────────

// MockPaymentRepository is a mock implementation of PaymentRepository.
type MockPaymentRepository struct {
	mu       sync.RWMutex
	payments map[string]*domain.Payment // keyed by booking ID

	// Counters for verification
	CreateCallCount int32

	// Error injection
	CreateError error
}

// NewMockPaymentRepository creates a new mock payment repository.
func NewMockPaymentRepository() *MockPaymentRepository {
	return &MockPaymentRepository{
		payments: make(map[string]*domain.Payment),
	}
}

func (m *MockPaymentRepository) Create(ctx context.Context, payment *domain.Payment) error {
	atomic.AddInt32(&m.CreateCallCount, 1)
	if m.CreateError != nil {
		return m.CreateError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.payments[payment.BookingID]; exists {
		// Same signal the unique constraint on booking_id gives.
		return repository.ErrDuplicate
	}
	m.payments[payment.BookingID] = payment
	return nil
}

func (m *MockPaymentRepository) GetByBookingID(ctx context.Context, bookingID string) (*domain.Payment, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	payment, ok := m.payments[bookingID]
	if !ok {
		return nil, nil
	}
	copy := *payment
	return &copy, nil
}

// CountPayments returns the number of stored payments.
func (m *MockPaymentRepository) CountPayments() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.payments)
}

// ──────────────────────────────────────────────
// MOCK REVIEW REPOSITORY
// ──────────────────────────────────────────────

// MockReviewRepository is a mock implementation of ReviewRepository.
type MockReviewRepository struct {
	mu      sync.RWMutex
	reviews map[string]*domain.Review // keyed by booking ID

	// Counters for verification
	CreateCallCount int32

	// Error injection
	CreateError error
}

// NewMockReviewRepository creates a new mock review repository.
func NewMockReviewRepository() *MockReviewRepository {
	return &MockReviewRepository{
		reviews: make(map[string]*domain.Review),
	}
}

// AddReview adds a review to the mock repository.
func (m *MockReviewRepository) AddReview(review *domain.Review) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reviews[review.BookingID] = review
}

func (m *MockReviewRepository) Create(ctx context.Context, review *domain.Review) error {
	atomic.AddInt32(&m.CreateCallCount, 1)
	if m.CreateError != nil {
		return m.CreateError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.reviews[review.BookingID]; exists {
		return repository.ErrDuplicate
	}
	m.reviews[review.BookingID] = review
	return nil
}

func (m *MockReviewRepository) GetByBookingID(ctx context.Context, bookingID string) (*domain.Review, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	review, ok := m.reviews[bookingID]
	if !ok {
		return nil, nil
	}
	copy := *review
	return &copy, nil
}

func (m *MockReviewRepository) ListByGuide(ctx context.Context, guideID string) ([]*domain.Review, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	result := make([]*domain.Review, 0)
	for _, r := range m.reviews {
		if r.GuideID == guideID {
			copy := *r
			result = append(result, &copy)
		}
	}
	return result, nil
}

func (m *MockReviewRepository) AverageForGuide(ctx context.Context, guideID string) (float64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	sum, n := 0, 0
	for _, r := range m.reviews {
		if r.GuideID == guideID {
			sum += r.Rating
			n++
		}
	}
	if n == 0 {
		return 0, nil
	}
	return float64(sum) / float64(n), nil
}

// ──────────────────────────────────────────────
// MOCK GUIDE REPOSITORY
// ──────────────────────────────────────────────

// MockGuideRepository is a mock implementation of GuideRepository.
type MockGuideRepository struct {
	mu     sync.RWMutex
	guides map[string]*domain.Guide
}

// NewMockGuideRepository creates a new mock guide repository.
func NewMockGuideRepository() *MockGuideRepository {
	return &MockGuideRepository{
		guides: make(map[string]*domain.Guide),
	}
}

// AddGuide adds a guide to the mock repository.
func (m *MockGuideRepository) AddGuide(guide *domain.Guide) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.guides[guide.ID] = guide
}

func (m *MockGuideRepository) GetByID(ctx context.Context, id string) (*domain.Guide, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	guide, ok := m.guides[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copy := *guide
	return &copy, nil
}

// ──────────────────────────────────────────────
// MOCK POI REPOSITORY
// ──────────────────────────────────────────────

// MockPOIRepository is a mock implementation of POIRepository.
type MockPOIRepository struct {
	mu   sync.RWMutex
	pois map[string]*domain.POI
}

// NewMockPOIRepository creates a new mock POI repository.
func NewMockPOIRepository() *MockPOIRepository {
	return &MockPOIRepository{
		pois: make(map[string]*domain.POI),
	}
}

// AddPOI adds a POI to the mock repository.
func (m *MockPOIRepository) AddPOI(poi *domain.POI) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pois[poi.ID] = poi
}

func (m *MockPOIRepository) GetByID(ctx context.Context, id string) (*domain.POI, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	poi, ok := m.pois[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copy := *poi
	return &copy, nil
}

// ──────────────────────────────────────────────
// MOCK PING STORE
// ──────────────────────────────────────────────

// MockPingStore is a mock implementation of PingStoreInterface with the same
// last-write-wins-by-recorded-at semantics as the Redis store.
type MockPingStore struct {
	mu    sync.RWMutex
	pings map[string]*domain.LocationPing // keyed by booking ID

	// Counters for verification
	PublishCallCount int32

	// Error injection
	PublishError error
	LatestError  error
}

// NewMockPingStore creates a new mock ping store.
func NewMockPingStore() *MockPingStore {
	return &MockPingStore{
		pings: make(map[string]*domain.LocationPing),
	}
}

func (m *MockPingStore) Publish(ctx context.Context, ping *domain.LocationPing) (bool, error) {
	atomic.AddInt32(&m.PublishCallCount, 1)
	if m.PublishError != nil {
		return false, m.PublishError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if current, ok := m.pings[ping.BookingID]; ok && !ping.RecordedAt.After(current.RecordedAt) {
		return false, nil
	}
	copy := *ping
	m.pings[ping.BookingID] = &copy
	return true, nil
}

func (m *MockPingStore) Latest(ctx context.Context, bookingID string) (*domain.LocationPing, error) {
	if m.LatestError != nil {
		return nil, m.LatestError
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	ping, ok := m.pings[bookingID]
	if !ok {
		return nil, nil
	}
	copy := *ping
	return &copy, nil
}

// ──────────────────────────────────────────────
// MOCK LOCK STORE
// ──────────────────────────────────────────────

// MockLockStore is a mock implementation of LockStoreInterface.
type MockLockStore struct {
	mu    sync.Mutex
	locks map[string]bool

	// Counters for verification
	AcquireCallCount int32
	ReleaseCallCount int32

	// Error injection
	AcquireError error
}

// NewMockLockStore creates a new mock lock store.
func NewMockLockStore() *MockLockStore {
	return &MockLockStore{
		locks: make(map[string]bool),
	}
}

// HoldLock marks a guide's lock as already held by someone else.
func (m *MockLockStore) HoldLock(guideID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.locks[guideID] = true
}

func (m *MockLockStore) AcquireGuideLock(ctx context.Context, guideID string, ttl time.Duration) (bool, error) {
	atomic.AddInt32(&m.AcquireCallCount, 1)
	if m.AcquireError != nil {
		return false, m.AcquireError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.locks[guideID] {
		return false, nil
	}
	m.locks[guideID] = true
	return true, nil
}

func (m *MockLockStore) ReleaseGuideLock(ctx context.Context, guideID string) error {
	atomic.AddInt32(&m.ReleaseCallCount, 1)
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.locks, guideID)
	return nil
}

// ──────────────────────────────────────────────
// MOCK PAYMENT GATEWAY
// ──────────────────────────────────────────────

// MockGateway is a mock payment gateway.
type MockGateway struct {
	// Counters for verification
	AuthorizeCallCount int32

	// Captured arguments
	mu             sync.Mutex
	LastMethod     domain.PaymentMethod
	LastAmount     float64

	// Error injection
	AuthorizeError error
}

// NewMockGateway creates a new mock payment gateway.
func NewMockGateway() *MockGateway {
	return &MockGateway{}
}

func (m *MockGateway) Authorize(ctx context.Context, method domain.PaymentMethod, amount float64) (string, error) {
	atomic.AddInt32(&m.AuthorizeCallCount, 1)
	if m.AuthorizeError != nil {
		return "", m.AuthorizeError
	}
	m.mu.Lock()
	m.LastMethod = method
	m.LastAmount = amount
	m.mu.Unlock()
	return fmt.Sprintf("%s-mock-ref", strings.ToUpper(string(method))), nil
}
