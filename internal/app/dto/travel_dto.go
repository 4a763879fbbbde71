package dto

import (
	"fmt"
	"net/http"

	"github.com/vedantidabholkar/SafarAI/internal/pkg/exception"
)

// Flight is one itinerary from the provider's best flights list, flattened
// for display. Price and duration cover the whole itinerary while airline,
// class and airports come from the first leg. Price stays a string because
// the provider mixes currencies and the value is shown, never computed on.
type Flight struct {
	Airline     string `json:"airline"`
	Price       string `json:"price"`
	Duration    string `json:"duration"`
	Stops       string `json:"stops"`
	Departure   string `json:"departure"`
	Arrival     string `json:"arrival"`
	TravelClass string `json:"travel_class"`
	ReturnDate  string `json:"return_date"`
	AirlineLogo string `json:"airline_logo"`
}

// Hotel is one property from the provider's hotel search results.
type Hotel struct {
	Name     string  `json:"name"`
	Price    string  `json:"price"`
	Rating   float64 `json:"rating"`
	Location string  `json:"location"`
	Link     string  `json:"link"`
}

// TravelResponse is the single response shape shared by all operations.
// Unused fields keep their empty defaults; record lists are never null.
type TravelResponse struct {
	Flights                []Flight `json:"flights"`
	Hotels                 []Hotel  `json:"hotels"`
	AIFlightRecommendation string   `json:"ai_flight_recommendation"`
	AIHotelRecommendation  string   `json:"ai_hotel_recommendation"`
	Itinerary              string   `json:"itinerary"`
}

// NewTravelResponse returns a response with non-null record lists.
func NewTravelResponse() TravelResponse {
	return TravelResponse{
		Flights: []Flight{},
		Hotels:  []Hotel{},
	}
}

// FlightSearchRequest is the body of POST /search_flights/. Dates are
// caller-supplied strings forwarded to the provider uninterpreted.
type FlightSearchRequest struct {
	Origin       string `json:"origin" validate:"required"`
	Destination  string `json:"destination" validate:"required"`
	OutboundDate string `json:"outbound_date" validate:"required"`
	ReturnDate   string `json:"return_date" validate:"required"`
}

func (r *FlightSearchRequest) Bind(_ *http.Request) error {
	if err := r.Validate(); err != nil {
		return fmt.Errorf("error validate request: %w", err)
	}

	return nil
}

func (r *FlightSearchRequest) Validate() error {
	if err := ValidateSingleError(r); err != nil {
		return exception.ApplicationError{
			StatusCode: http.StatusBadRequest,
			Message:    err.Error(),
		}
	}

	return nil
}

// HotelSearchRequest is the body of POST /search_hotels/.
type HotelSearchRequest struct {
	Location     string `json:"location" validate:"required"`
	CheckInDate  string `json:"check_in_date" validate:"required"`
	CheckOutDate string `json:"check_out_date" validate:"required"`
}

func (r *HotelSearchRequest) Bind(_ *http.Request) error {
	if err := r.Validate(); err != nil {
		return fmt.Errorf("error validate request: %w", err)
	}

	return nil
}

func (r *HotelSearchRequest) Validate() error {
	if err := ValidateSingleError(r); err != nil {
		return exception.ApplicationError{
			StatusCode: http.StatusBadRequest,
			Message:    err.Error(),
		}
	}

	return nil
}

// CompleteSearchRequest is the body of POST /complete_search/. The hotel
// request is optional; when absent the service derives one from the flight
// request.
type CompleteSearchRequest struct {
	FlightRequest *FlightSearchRequest `json:"flight_request" validate:"required"`
	HotelRequest  *HotelSearchRequest  `json:"hotel_request,omitempty"`
}

func (r *CompleteSearchRequest) Bind(_ *http.Request) error {
	if err := r.Validate(); err != nil {
		return fmt.Errorf("error validate request: %w", err)
	}

	return nil
}

func (r *CompleteSearchRequest) Validate() error {
	if err := ValidateSingleError(r); err != nil {
		return exception.ApplicationError{
			StatusCode: http.StatusBadRequest,
			Message:    err.Error(),
		}
	}

	return nil
}

// ItineraryRequest is the body of POST /generate_itinerary/. Flight and
// hotel details arrive as pre-formatted text blocks supplied by the caller.
type ItineraryRequest struct {
	Destination  string `json:"destination" validate:"required"`
	CheckInDate  string `json:"check_in_date" validate:"required"`
	CheckOutDate string `json:"check_out_date" validate:"required"`
	Flights      string `json:"flights" validate:"required"`
	Hotels       string `json:"hotels" validate:"required"`
}

func (r *ItineraryRequest) Bind(_ *http.Request) error {
	if err := r.Validate(); err != nil {
		return fmt.Errorf("error validate request: %w", err)
	}

	return nil
}

func (r *ItineraryRequest) Validate() error {
	if err := ValidateSingleError(r); err != nil {
		return exception.ApplicationError{
			StatusCode: http.StatusBadRequest,
			Message:    err.Error(),
		}
	}

	return nil
}
