//go:build unit

package travel

import (
	"context"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/mock"
	"github.com/vedantidabholkar/SafarAI/internal/app/dto"
	"github.com/vedantidabholkar/SafarAI/internal/pkg/serpapi"
)

func TestSearchCache_Keys(t *testing.T) {
	c := &SearchCache{}

	flightQuery := serpapi.FlightQuery{
		Origin:       "DEL",
		Destination:  "BOM",
		OutboundDate: "2025-06-01",
		ReturnDate:   "2025-06-05",
	}

	hotelQuery := serpapi.HotelQuery{
		Location:     "Mumbai",
		CheckInDate:  "2025-06-01",
		CheckOutDate: "2025-06-05",
	}

	t.Run("flight_cache_key", func(t *testing.T) {
		got := c.FlightCacheKey(flightQuery)
		if got != "travel:flights:cache:DEL:BOM:2025-06-01:2025-06-05" {
			t.Fatalf("unexpected key %s", got)
		}
	})

	t.Run("flight_lock_key", func(t *testing.T) {
		got := c.FlightLockKey(flightQuery)
		if got != "travel:flights:lock:DEL:BOM:2025-06-01:2025-06-05" {
			t.Fatalf("unexpected key %s", got)
		}
	})

	t.Run("hotel_cache_key", func(t *testing.T) {
		got := c.HotelCacheKey(hotelQuery)
		if got != "travel:hotels:cache:Mumbai:2025-06-01:2025-06-05" {
			t.Fatalf("unexpected key %s", got)
		}
	})

	t.Run("hotel_lock_key", func(t *testing.T) {
		got := c.HotelLockKey(hotelQuery)
		if got != "travel:hotels:lock:Mumbai:2025-06-01:2025-06-05" {
			t.Fatalf("unexpected key %s", got)
		}
	})
}

func TestSearchCache_AcquireLock_Closure(t *testing.T) {
	acquireLockRequest := func(key string, timeout time.Duration, mockSetup func(m *MockRedisClient), want bool) func(t *testing.T) {
		return func(t *testing.T) {
			m := NewMockRedisClient(t)
			mockSetup(m)
			c := NewSearchCache(m)

			got, err := c.AcquireLock(context.Background(), key, timeout)
			if err != nil {
				t.Fatalf("AcquireLock returned error: %v", err)
			}
			if got != want {
				t.Fatalf("expected %v, got %v", want, got)
			}
		}
	}

	t.Run("lock_acquired", acquireLockRequest("test-key", 5*time.Second, func(m *MockRedisClient) {
		m.On("SetNX", mock.Anything, "test-key", "1", 5*time.Second).Return(redis.NewBoolResult(true, nil))
	}, true))

	t.Run("lock_not_acquired", acquireLockRequest("test-key", 5*time.Second, func(m *MockRedisClient) {
		m.On("SetNX", mock.Anything, "test-key", "1", 5*time.Second).Return(redis.NewBoolResult(false, nil))
	}, false))
}

func TestSearchCache_Flights_Closure(t *testing.T) {
	flights := []dto.Flight{{Airline: "IndiGo", Price: "5400", Stops: "Nonstop"}}

	t.Run("set_success", func(t *testing.T) {
		m := NewMockRedisClient(t)
		m.On("Set", mock.Anything, "test-cache", mock.Anything, 10*time.Minute).Return(redis.NewStatusResult("OK", nil))
		c := NewSearchCache(m)

		if err := c.SetFlights(context.Background(), "test-cache", flights, 10*time.Minute); err != nil {
			t.Fatalf("SetFlights returned error: %v", err)
		}
	})

	t.Run("get_success", func(t *testing.T) {
		m := NewMockRedisClient(t)
		m.On("Get", mock.Anything, "test-cache").
			Return(redis.NewStringResult(`[{"airline":"IndiGo","price":"5400","duration":"","stops":"Nonstop","departure":"","arrival":"","travel_class":"","return_date":"","airline_logo":""}]`, nil))
		c := NewSearchCache(m)

		got, err := c.GetFlights(context.Background(), "test-cache")
		if err != nil {
			t.Fatalf("GetFlights returned error: %v", err)
		}

		diff := cmp.Diff(flights, got)
		if diff != "" {
			t.Fatalf("GetFlights mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("get_miss", func(t *testing.T) {
		m := NewMockRedisClient(t)
		m.On("Get", mock.Anything, "test-cache").Return(redis.NewStringResult("", redis.Nil))
		c := NewSearchCache(m)

		if _, err := c.GetFlights(context.Background(), "test-cache"); err == nil {
			t.Fatal("expected error on cache miss")
		}
	})
}

func TestSearchCache_Hotels_Closure(t *testing.T) {
	hotels := []dto.Hotel{{Name: "Taj Palace", Price: "₹12,500", Rating: 4.7, Location: "New Delhi", Link: "https://example.com/taj"}}

	t.Run("set_success", func(t *testing.T) {
		m := NewMockRedisClient(t)
		m.On("Set", mock.Anything, "test-cache", mock.Anything, 10*time.Minute).Return(redis.NewStatusResult("OK", nil))
		c := NewSearchCache(m)

		if err := c.SetHotels(context.Background(), "test-cache", hotels, 10*time.Minute); err != nil {
			t.Fatalf("SetHotels returned error: %v", err)
		}
	})

	t.Run("get_success", func(t *testing.T) {
		m := NewMockRedisClient(t)
		m.On("Get", mock.Anything, "test-cache").
			Return(redis.NewStringResult(`[{"name":"Taj Palace","price":"₹12,500","rating":4.7,"location":"New Delhi","link":"https://example.com/taj"}]`, nil))
		c := NewSearchCache(m)

		got, err := c.GetHotels(context.Background(), "test-cache")
		if err != nil {
			t.Fatalf("GetHotels returned error: %v", err)
		}

		diff := cmp.Diff(hotels, got)
		if diff != "" {
			t.Fatalf("GetHotels mismatch (-want +got):\n%s", diff)
		}
	})
}
