package serpapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-redis/redis_rate/v10"
	"github.com/vedantidabholkar/SafarAI/internal/pkg/exception"
)

// Fixed query parameters sent to SerpAPI. The provider is asked for INR
// pricing; hotels are additionally sorted by lowest price (sort_by=3) and
// filtered to a 4.0+ guest rating (rating=8).
const (
	flightsEngine = "google_flights"
	hotelsEngine  = "google_hotels"
	currency      = "INR"
	hotelSortBy   = "3"
	hotelRating   = "8"
)

// Config for the SerpAPI client.
type Config struct {
	BaseURL      string
	APIKey       string
	Timeout      time.Duration
	RateLimitRPS int
	Limiter      *redis_rate.Limiter
}

// FlightQuery is a structured flight search request. Dates are passed
// through to the provider uninterpreted.
type FlightQuery struct {
	Origin       string
	Destination  string
	OutboundDate string
	ReturnDate   string
}

// HotelQuery is a structured hotel search request.
type HotelQuery struct {
	Location     string
	CheckInDate  string
	CheckOutDate string
}

// Client wraps the SerpAPI search endpoint. Transport-level failures are
// returned as server errors; a business-level failure reported inside a 200
// body stays on the decoded response and is mapped by the caller.
type Client struct {
	baseURL      string
	apiKey       string
	httpClient   *http.Client
	limiter      *redis_rate.Limiter
	rateLimitRPS int
}

func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:      cfg.BaseURL,
		apiKey:       cfg.APIKey,
		httpClient:   &http.Client{Timeout: cfg.Timeout},
		limiter:      cfg.Limiter,
		rateLimitRPS: cfg.RateLimitRPS,
	}
}

// SearchFlights queries the google_flights engine. Origin and destination
// are normalized to upper-case trimmed IATA codes.
func (c *Client) SearchFlights(ctx context.Context, query FlightQuery) (FlightSearchResponse, error) {
	slog.InfoContext(ctx, "searching flights",
		slog.String("origin", query.Origin),
		slog.String("destination", query.Destination))

	params := url.Values{}
	params.Set("engine", flightsEngine)
	params.Set("hl", "en")
	params.Set("gl", "us")
	params.Set("departure_id", strings.ToUpper(strings.TrimSpace(query.Origin)))
	params.Set("arrival_id", strings.ToUpper(strings.TrimSpace(query.Destination)))
	params.Set("outbound_date", query.OutboundDate)
	params.Set("return_date", query.ReturnDate)
	params.Set("currency", currency)

	var response FlightSearchResponse
	if err := c.search(ctx, params, &response); err != nil {
		return FlightSearchResponse{}, err
	}

	return response, nil
}

// SearchHotels queries the google_hotels engine.
func (c *Client) SearchHotels(ctx context.Context, query HotelQuery) (HotelSearchResponse, error) {
	slog.InfoContext(ctx, "searching hotels", slog.String("location", query.Location))

	params := url.Values{}
	params.Set("engine", hotelsEngine)
	params.Set("q", query.Location)
	params.Set("hl", "en")
	params.Set("gl", "us")
	params.Set("check_in_date", query.CheckInDate)
	params.Set("check_out_date", query.CheckOutDate)
	params.Set("currency", currency)
	params.Set("sort_by", hotelSortBy)
	params.Set("rating", hotelRating)

	var response HotelSearchResponse
	if err := c.search(ctx, params, &response); err != nil {
		return HotelSearchResponse{}, err
	}

	return response, nil
}

func (c *Client) search(ctx context.Context, params url.Values, response interface{}) error {
	if c.limiter != nil {
		res, err := c.limiter.Allow(ctx, "limit:serpapi", redis_rate.PerSecond(c.rateLimitRPS))
		if err != nil {
			return exception.Internal("search API error", fmt.Errorf("rate limiter: %w", err))
		}

		if res.Allowed == 0 {
			return ErrRateLimitExceeded
		}
	}

	params.Set("api_key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return exception.Internal("search API error", fmt.Errorf("build request: %w", err))
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return exception.Internal("search API error", fmt.Errorf("call provider: %w", err))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return exception.Internal("search API error", fmt.Errorf("read response body: %w", err))
	}

	// SerpAPI returns business failures as 4xx with an "error" body; decode
	// those into the response struct so callers see the provider message.
	if err := json.Unmarshal(body, response); err != nil {
		return exception.Internal("search API error",
			fmt.Errorf("decode response (status %d): %w", resp.StatusCode, err))
	}

	return nil
}
