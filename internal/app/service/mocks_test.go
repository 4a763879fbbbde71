//go:build unit

package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/vedantidabholkar/SafarAI/internal/app/dto"
	"github.com/vedantidabholkar/SafarAI/internal/pkg/recommender"
	"github.com/vedantidabholkar/SafarAI/internal/pkg/serpapi"
)

type MockTravelSearcher struct {
	mock.Mock
}

func NewMockTravelSearcher(t *testing.T) *MockTravelSearcher {
	m := &MockTravelSearcher{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockTravelSearcher) SearchFlights(ctx context.Context, query serpapi.FlightQuery) (serpapi.FlightSearchResponse, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(serpapi.FlightSearchResponse), args.Error(1)
}

func (m *MockTravelSearcher) SearchHotels(ctx context.Context, query serpapi.HotelQuery) (serpapi.HotelSearchResponse, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(serpapi.HotelSearchResponse), args.Error(1)
}

type MockRecommender struct {
	mock.Mock
}

func NewMockRecommender(t *testing.T) *MockRecommender {
	m := &MockRecommender{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockRecommender) Recommend(ctx context.Context, kind recommender.Kind, formattedData string) (string, error) {
	args := m.Called(ctx, kind, formattedData)
	return args.String(0), args.Error(1)
}

func (m *MockRecommender) PlanItinerary(ctx context.Context, input recommender.ItineraryInput) (string, error) {
	args := m.Called(ctx, input)
	return args.String(0), args.Error(1)
}

type MockSearchCacher struct {
	mock.Mock
}

func NewMockSearchCacher(t *testing.T) *MockSearchCacher {
	m := &MockSearchCacher{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockSearchCacher) FlightCacheKey(query serpapi.FlightQuery) string {
	args := m.Called(query)
	return args.String(0)
}

func (m *MockSearchCacher) FlightLockKey(query serpapi.FlightQuery) string {
	args := m.Called(query)
	return args.String(0)
}

func (m *MockSearchCacher) HotelCacheKey(query serpapi.HotelQuery) string {
	args := m.Called(query)
	return args.String(0)
}

func (m *MockSearchCacher) HotelLockKey(query serpapi.HotelQuery) string {
	args := m.Called(query)
	return args.String(0)
}

func (m *MockSearchCacher) AcquireLock(ctx context.Context, key string, timeout time.Duration) (bool, error) {
	args := m.Called(ctx, key, timeout)
	return args.Bool(0), args.Error(1)
}

func (m *MockSearchCacher) ReleaseLock(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockSearchCacher) GetFlights(ctx context.Context, key string) ([]dto.Flight, error) {
	args := m.Called(ctx, key)

	flights, _ := args.Get(0).([]dto.Flight)

	return flights, args.Error(1)
}

func (m *MockSearchCacher) SetFlights(ctx context.Context, key string, flights []dto.Flight, expiration time.Duration) error {
	args := m.Called(ctx, key, flights, expiration)
	return args.Error(0)
}

func (m *MockSearchCacher) GetHotels(ctx context.Context, key string) ([]dto.Hotel, error) {
	args := m.Called(ctx, key)

	hotels, _ := args.Get(0).([]dto.Hotel)

	return hotels, args.Error(1)
}

func (m *MockSearchCacher) SetHotels(ctx context.Context, key string, hotels []dto.Hotel, expiration time.Duration) error {
	args := m.Called(ctx, key, hotels, expiration)
	return args.Error(0)
}
