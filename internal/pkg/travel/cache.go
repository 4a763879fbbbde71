package travel

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/vedantidabholkar/SafarAI/internal/app/dto"
	"github.com/vedantidabholkar/SafarAI/internal/pkg/serpapi"
)

type RedisClient interface {
	SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.BoolCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Get(ctx context.Context, key string) *redis.StringCmd
}

// SearchCache stores formatted search results per query so repeated
// identical searches skip the provider. Recommendation and itinerary text is
// never cached; only the record lists are.
type SearchCache struct {
	redis RedisClient
}

func NewSearchCache(redis RedisClient) *SearchCache {
	return &SearchCache{
		redis: redis,
	}
}

func (c *SearchCache) FlightCacheKey(query serpapi.FlightQuery) string {
	return fmt.Sprintf("travel:flights:cache:%s:%s:%s:%s",
		query.Origin, query.Destination, query.OutboundDate, query.ReturnDate)
}

func (c *SearchCache) FlightLockKey(query serpapi.FlightQuery) string {
	return fmt.Sprintf("travel:flights:lock:%s:%s:%s:%s",
		query.Origin, query.Destination, query.OutboundDate, query.ReturnDate)
}

func (c *SearchCache) HotelCacheKey(query serpapi.HotelQuery) string {
	return fmt.Sprintf("travel:hotels:cache:%s:%s:%s",
		query.Location, query.CheckInDate, query.CheckOutDate)
}

func (c *SearchCache) HotelLockKey(query serpapi.HotelQuery) string {
	return fmt.Sprintf("travel:hotels:lock:%s:%s:%s",
		query.Location, query.CheckInDate, query.CheckOutDate)
}

func (c *SearchCache) AcquireLock(ctx context.Context, key string, timeout time.Duration) (bool, error) {
	return c.redis.SetNX(ctx, key, "1", timeout).Result()
}

func (c *SearchCache) ReleaseLock(ctx context.Context, key string) error {
	return c.redis.Del(ctx, key).Err()
}

func (c *SearchCache) SetFlights(ctx context.Context, key string, flights []dto.Flight, expiration time.Duration) error {
	data, err := json.Marshal(flights)
	if err != nil {
		return fmt.Errorf("failed to marshal flights: %w", err)
	}

	if err := c.redis.Set(ctx, key, data, expiration).Err(); err != nil {
		return fmt.Errorf("failed to set flights: %w", err)
	}

	return nil
}

func (c *SearchCache) GetFlights(ctx context.Context, key string) ([]dto.Flight, error) {
	data, err := c.redis.Get(ctx, key).Bytes()
	if err != nil {
		return nil, err
	}

	var flights []dto.Flight
	if err := json.Unmarshal(data, &flights); err != nil {
		return nil, err
	}

	return flights, nil
}

func (c *SearchCache) SetHotels(ctx context.Context, key string, hotels []dto.Hotel, expiration time.Duration) error {
	data, err := json.Marshal(hotels)
	if err != nil {
		return fmt.Errorf("failed to marshal hotels: %w", err)
	}

	if err := c.redis.Set(ctx, key, data, expiration).Err(); err != nil {
		return fmt.Errorf("failed to set hotels: %w", err)
	}

	return nil
}

func (c *SearchCache) GetHotels(ctx context.Context, key string) ([]dto.Hotel, error) {
	data, err := c.redis.Get(ctx, key).Bytes()
	if err != nil {
		return nil, err
	}

	var hotels []dto.Hotel
	if err := json.Unmarshal(data, &hotels); err != nil {
		return nil, err
	}

	return hotels, nil
}
