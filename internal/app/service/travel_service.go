package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/vedantidabholkar/SafarAI/internal/app/dto"
	"github.com/vedantidabholkar/SafarAI/internal/pkg/exception"
	"github.com/vedantidabholkar/SafarAI/internal/pkg/recommender"
	"github.com/vedantidabholkar/SafarAI/internal/pkg/serpapi"
	"github.com/vedantidabholkar/SafarAI/internal/pkg/travel"
)

// Fallback strings absorbed into the response instead of failing the
// request. Search/provider failures still propagate as HTTP errors; only
// LLM failures and combined-search branch failures degrade to these.
const (
	flightBranchFallback = "Could not retrieve flights."
	hotelBranchFallback  = "Could not retrieve hotels."
	itineraryFallback    = "Unable to generate itinerary due to an error. Please try again later."
)

func recommendationFallback(kind recommender.Kind) string {
	return fmt.Sprintf("Unable to generate %s recommendation due to an error.", kind)
}

// TravelSearcher is the provider-facing search contract.
type TravelSearcher interface {
	SearchFlights(ctx context.Context, query serpapi.FlightQuery) (serpapi.FlightSearchResponse, error)
	SearchHotels(ctx context.Context, query serpapi.HotelQuery) (serpapi.HotelSearchResponse, error)
}

// Recommender is the completion-backed recommendation contract.
type Recommender interface {
	Recommend(ctx context.Context, kind recommender.Kind, formattedData string) (string, error)
	PlanItinerary(ctx context.Context, input recommender.ItineraryInput) (string, error)
}

// SearchCacher stores formatted record lists per query.
type SearchCacher interface {
	FlightCacheKey(query serpapi.FlightQuery) string
	FlightLockKey(query serpapi.FlightQuery) string
	HotelCacheKey(query serpapi.HotelQuery) string
	HotelLockKey(query serpapi.HotelQuery) string
	AcquireLock(ctx context.Context, key string, timeout time.Duration) (bool, error)
	ReleaseLock(ctx context.Context, key string) error
	GetFlights(ctx context.Context, key string) ([]dto.Flight, error)
	SetFlights(ctx context.Context, key string, flights []dto.Flight, expiration time.Duration) error
	GetHotels(ctx context.Context, key string) ([]dto.Hotel, error)
	SetHotels(ctx context.Context, key string, hotels []dto.Hotel, expiration time.Duration) error
}

// TravelService orchestrates the search, format and recommend pipeline for
// every exposed operation. No state survives a request; the cache holds
// record lists only, never LLM output.
type TravelService struct {
	Searcher        TravelSearcher
	Recommender     Recommender
	Cache           SearchCacher
	CacheExpiration time.Duration
	LockTimeout     time.Duration
}

func NewTravelService(searcher TravelSearcher, rec Recommender, cache SearchCacher,
	cacheExpiration time.Duration, lockTimeout time.Duration) *TravelService {
	return &TravelService{
		Searcher:        searcher,
		Recommender:     rec,
		Cache:           cache,
		CacheExpiration: cacheExpiration,
		LockTimeout:     lockTimeout,
	}
}

// SearchFlights searches flights and attaches an AI recommendation.
// SearchFlights godoc
// @Summary      Search flights with AI recommendation
// @Tags         Travel
// @Param        request  body      dto.FlightSearchRequest  true  "Flight Search Request"
// @Success      200      {object}  dto.TravelResponse
// @Failure      400      {object}  dto.ErrorResponse
// @Failure      404      {object}  dto.ErrorResponse
// @Failure      500      {object}  dto.ErrorResponse
// @Router       /search_flights/ [post]
func (s *TravelService) SearchFlights(
	ctx context.Context,
	req dto.FlightSearchRequest,
) (dto.TravelResponse, error) {
	query := serpapi.FlightQuery{
		Origin:       req.Origin,
		Destination:  req.Destination,
		OutboundDate: req.OutboundDate,
		ReturnDate:   req.ReturnDate,
	}

	flights, err := s.flightRecords(ctx, query)
	if err != nil {
		return dto.TravelResponse{}, err
	}

	flightsText := travel.FormatFlights(flights)

	rec, err := s.Recommender.Recommend(ctx, recommender.KindFlights, flightsText)
	if err != nil {
		slog.ErrorContext(ctx, "flight recommendation failed", slog.Any("error", err))
		rec = recommendationFallback(recommender.KindFlights)
	}

	response := dto.NewTravelResponse()
	response.Flights = flights
	response.AIFlightRecommendation = rec

	return response, nil
}

// SearchHotels searches hotels and attaches an AI recommendation.
// SearchHotels godoc
// @Summary      Search hotels with AI recommendation
// @Tags         Travel
// @Param        request  body      dto.HotelSearchRequest  true  "Hotel Search Request"
// @Success      200      {object}  dto.TravelResponse
// @Failure      400      {object}  dto.ErrorResponse
// @Failure      404      {object}  dto.ErrorResponse
// @Failure      500      {object}  dto.ErrorResponse
// @Router       /search_hotels/ [post]
func (s *TravelService) SearchHotels(
	ctx context.Context,
	req dto.HotelSearchRequest,
) (dto.TravelResponse, error) {
	query := serpapi.HotelQuery{
		Location:     req.Location,
		CheckInDate:  req.CheckInDate,
		CheckOutDate: req.CheckOutDate,
	}

	hotels, err := s.hotelRecords(ctx, query)
	if err != nil {
		return dto.TravelResponse{}, err
	}

	hotelsText := travel.FormatHotels(hotels)

	rec, err := s.Recommender.Recommend(ctx, recommender.KindHotels, hotelsText)
	if err != nil {
		slog.ErrorContext(ctx, "hotel recommendation failed", slog.Any("error", err))
		rec = recommendationFallback(recommender.KindHotels)
	}

	response := dto.NewTravelResponse()
	response.Hotels = hotels
	response.AIHotelRecommendation = rec

	return response, nil
}

type branchResult struct {
	Name     string
	Response dto.TravelResponse
	Err      error
}

// CompleteSearch runs the flight and hotel pipelines concurrently, tolerates
// either branch failing, and generates an itinerary only when both branches
// produced records. A branch failure degrades to an empty list plus a notice
// and never fails the whole operation.
// CompleteSearch godoc
// @Summary      Combined flight and hotel search with itinerary
// @Tags         Travel
// @Param        request  body      dto.CompleteSearchRequest  true  "Complete Search Request"
// @Success      200      {object}  dto.TravelResponse
// @Failure      400      {object}  dto.ErrorResponse
// @Failure      500      {object}  dto.ErrorResponse
// @Router       /complete_search/ [post]
func (s *TravelService) CompleteSearch(
	ctx context.Context,
	req dto.CompleteSearchRequest,
) (dto.TravelResponse, error) {
	flightReq := *req.FlightRequest

	hotelReq := req.HotelRequest
	if hotelReq == nil {
		hotelReq = &dto.HotelSearchRequest{
			Location:     flightReq.Destination,
			CheckInDate:  flightReq.OutboundDate,
			CheckOutDate: flightReq.ReturnDate,
		}
	}

	results := make(chan branchResult, 2)

	var wg sync.WaitGroup

	wg.Add(2)
	go func() {
		defer wg.Done()
		response, err := s.SearchFlights(ctx, flightReq)
		results <- branchResult{Name: "flights", Response: response, Err: err}
	}()
	go func() {
		defer wg.Done()
		response, err := s.SearchHotels(ctx, *hotelReq)
		results <- branchResult{Name: "hotels", Response: response, Err: err}
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	flightBranch := dto.NewTravelResponse()
	hotelBranch := dto.NewTravelResponse()

	for result := range results {
		switch result.Name {
		case "flights":
			if result.Err != nil {
				slog.ErrorContext(ctx, "flight branch failed", slog.Any("error", result.Err))
				flightBranch.AIFlightRecommendation = flightBranchFallback
				continue
			}
			flightBranch = result.Response
		case "hotels":
			if result.Err != nil {
				slog.ErrorContext(ctx, "hotel branch failed", slog.Any("error", result.Err))
				hotelBranch.AIHotelRecommendation = hotelBranchFallback
				continue
			}
			hotelBranch = result.Response
		}
	}

	var itinerary string
	if len(flightBranch.Flights) > 0 && len(hotelBranch.Hotels) > 0 {
		input := recommender.ItineraryInput{
			Destination:  flightReq.Destination,
			FlightsText:  travel.FormatFlights(flightBranch.Flights),
			HotelsText:   travel.FormatHotels(hotelBranch.Hotels),
			CheckInDate:  flightReq.OutboundDate,
			CheckOutDate: flightReq.ReturnDate,
		}

		var err error
		itinerary, err = s.Recommender.PlanItinerary(ctx, input)
		if err != nil {
			slog.ErrorContext(ctx, "itinerary generation failed", slog.Any("error", err))
			itinerary = itineraryFallback
		}
	}

	response := dto.NewTravelResponse()
	response.Flights = flightBranch.Flights
	response.Hotels = hotelBranch.Hotels
	response.AIFlightRecommendation = flightBranch.AIFlightRecommendation
	response.AIHotelRecommendation = hotelBranch.AIHotelRecommendation
	response.Itinerary = itinerary

	return response, nil
}

// GenerateItinerary plans an itinerary from caller-supplied flight and hotel
// text blocks.
// GenerateItinerary godoc
// @Summary      Generate a day-by-day itinerary
// @Tags         Travel
// @Param        request  body      dto.ItineraryRequest  true  "Itinerary Request"
// @Success      200      {object}  dto.TravelResponse
// @Failure      400      {object}  dto.ErrorResponse
// @Failure      500      {object}  dto.ErrorResponse
// @Router       /generate_itinerary/ [post]
func (s *TravelService) GenerateItinerary(
	ctx context.Context,
	req dto.ItineraryRequest,
) (dto.TravelResponse, error) {
	input := recommender.ItineraryInput{
		Destination:  req.Destination,
		FlightsText:  req.Flights,
		HotelsText:   req.Hotels,
		CheckInDate:  req.CheckInDate,
		CheckOutDate: req.CheckOutDate,
	}

	itinerary, err := s.Recommender.PlanItinerary(ctx, input)
	if err != nil {
		slog.ErrorContext(ctx, "itinerary generation failed", slog.Any("error", err))
		itinerary = itineraryFallback
	}

	response := dto.NewTravelResponse()
	response.Itinerary = itinerary

	return response, nil
}

// flightRecords resolves flight records for a query: cache first, then the
// provider. A provider business error maps to a client error carrying the
// provider's message; zero usable records map to not found. Cache failures
// are logged and never fail the search.
func (s *TravelService) flightRecords(ctx context.Context, query serpapi.FlightQuery) ([]dto.Flight, error) {
	cacheKey := s.Cache.FlightCacheKey(query)

	if cached, err := s.Cache.GetFlights(ctx, cacheKey); err == nil {
		slog.InfoContext(ctx, "flight cache hit", slog.String("key", cacheKey))
		return cached, nil
	}

	searchResponse, err := s.Searcher.SearchFlights(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("flight search: %w", err)
	}

	if searchResponse.Error != "" {
		slog.ErrorContext(ctx, "flight search provider error", slog.String("error", searchResponse.Error))
		return nil, exception.BadRequest(searchResponse.Error)
	}

	flights := travel.FlightsFromSearch(ctx, searchResponse, query.ReturnDate)
	if len(flights) == 0 {
		slog.WarnContext(ctx, "no flights found in search results")
		return nil, ErrNoFlightsFound
	}

	s.storeFlights(ctx, cacheKey, s.Cache.FlightLockKey(query), flights)

	return flights, nil
}

func (s *TravelService) hotelRecords(ctx context.Context, query serpapi.HotelQuery) ([]dto.Hotel, error) {
	cacheKey := s.Cache.HotelCacheKey(query)

	if cached, err := s.Cache.GetHotels(ctx, cacheKey); err == nil {
		slog.InfoContext(ctx, "hotel cache hit", slog.String("key", cacheKey))
		return cached, nil
	}

	searchResponse, err := s.Searcher.SearchHotels(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("hotel search: %w", err)
	}

	if searchResponse.Error != "" {
		slog.ErrorContext(ctx, "hotel search provider error", slog.String("error", searchResponse.Error))
		return nil, exception.BadRequest(searchResponse.Error)
	}

	hotels := travel.HotelsFromSearch(ctx, searchResponse)
	if len(hotels) == 0 {
		slog.WarnContext(ctx, "no hotels found in search results")
		return nil, ErrNoHotelsFound
	}

	s.storeHotels(ctx, cacheKey, s.Cache.HotelLockKey(query), hotels)

	return hotels, nil
}

// storeFlights fills the cache under a SetNX lock so concurrent identical
// queries write once.
func (s *TravelService) storeFlights(ctx context.Context, cacheKey, lockKey string, flights []dto.Flight) {
	acquired, err := s.Cache.AcquireLock(ctx, lockKey, s.LockTimeout)
	if err != nil {
		slog.WarnContext(ctx, "failed to acquire cache lock", slog.Any("error", err))
		return
	}

	if !acquired {
		return
	}
	defer s.Cache.ReleaseLock(ctx, lockKey)

	if err := s.Cache.SetFlights(ctx, cacheKey, flights, s.CacheExpiration); err != nil {
		slog.WarnContext(ctx, "failed to cache flights", slog.Any("error", err))
	}
}

func (s *TravelService) storeHotels(ctx context.Context, cacheKey, lockKey string, hotels []dto.Hotel) {
	acquired, err := s.Cache.AcquireLock(ctx, lockKey, s.LockTimeout)
	if err != nil {
		slog.WarnContext(ctx, "failed to acquire cache lock", slog.Any("error", err))
		return
	}

	if !acquired {
		return
	}
	defer s.Cache.ReleaseLock(ctx, lockKey)

	if err := s.Cache.SetHotels(ctx, cacheKey, hotels, s.CacheExpiration); err != nil {
		slog.WarnContext(ctx, "failed to cache hotels", slog.Any("error", err))
	}
}
