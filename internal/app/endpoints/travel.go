package endpoints

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-kit/kit/endpoint"
	"github.com/vedantidabholkar/SafarAI/internal/app/dto"
)

type TravelService interface {
	SearchFlights(ctx context.Context, req dto.FlightSearchRequest) (dto.TravelResponse, error)
	SearchHotels(ctx context.Context, req dto.HotelSearchRequest) (dto.TravelResponse, error)
	CompleteSearch(ctx context.Context, req dto.CompleteSearchRequest) (dto.TravelResponse, error)
	GenerateItinerary(ctx context.Context, req dto.ItineraryRequest) (dto.TravelResponse, error)
}

type TravelEndpoint struct {
	SearchFlights     endpoint.Endpoint
	SearchHotels      endpoint.Endpoint
	CompleteSearch    endpoint.Endpoint
	GenerateItinerary endpoint.Endpoint
}

func MakeTravelEndpoint(service TravelService) TravelEndpoint {
	return TravelEndpoint{
		SearchFlights:     makeSearchFlightsEndpoint(service),
		SearchHotels:      makeSearchHotelsEndpoint(service),
		CompleteSearch:    makeCompleteSearchEndpoint(service),
		GenerateItinerary: makeGenerateItineraryEndpoint(service),
	}
}

func makeSearchFlightsEndpoint(service TravelService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(*dto.FlightSearchRequest)
		if !ok || request == nil {
			return nil, errors.New("invalid type")
		}

		response, err := service.SearchFlights(ctx, *request)
		if err != nil {
			return nil, fmt.Errorf("travel service: %w", err)
		}

		return response, nil
	}
}

func makeSearchHotelsEndpoint(service TravelService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(*dto.HotelSearchRequest)
		if !ok || request == nil {
			return nil, errors.New("invalid type")
		}

		response, err := service.SearchHotels(ctx, *request)
		if err != nil {
			return nil, fmt.Errorf("travel service: %w", err)
		}

		return response, nil
	}
}

func makeCompleteSearchEndpoint(service TravelService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(*dto.CompleteSearchRequest)
		if !ok || request == nil {
			return nil, errors.New("invalid type")
		}

		response, err := service.CompleteSearch(ctx, *request)
		if err != nil {
			return nil, fmt.Errorf("travel service: %w", err)
		}

		return response, nil
	}
}

func makeGenerateItineraryEndpoint(service TravelService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(*dto.ItineraryRequest)
		if !ok || request == nil {
			return nil, errors.New("invalid type")
		}

		response, err := service.GenerateItinerary(ctx, *request)
		if err != nil {
			return nil, fmt.Errorf("travel service: %w", err)
		}

		return response, nil
	}
}

// Endpoints is the set of endpoints wired into the HTTP router.
type Endpoints struct {
	TravelEndpoint TravelEndpoint
}
