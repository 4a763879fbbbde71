//go:build unit

package travel

import (
	"context"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/vedantidabholkar/SafarAI/internal/app/dto"
	"github.com/vedantidabholkar/SafarAI/internal/pkg/serpapi"
)

func intPtr(i int) *int { return &i }

func TestFlightsFromSearch(t *testing.T) {
	fromSearchRequest := func(resp serpapi.FlightSearchResponse, returnDate string, want []dto.Flight) func(t *testing.T) {
		return func(t *testing.T) {
			got := FlightsFromSearch(context.Background(), resp, returnDate)

			diff := cmp.Diff(want, got)
			if diff != "" {
				t.Fatalf("FlightsFromSearch() mismatch (-want +got):\n%s", diff)
			}
		}
	}

	leg := serpapi.FlightLeg{
		DepartureAirport: serpapi.Airport{Name: "Indira Gandhi International Airport", ID: "DEL", Time: "2025-06-01 08:30"},
		ArrivalAirport:   serpapi.Airport{Name: "Chhatrapati Shivaji International Airport", ID: "BOM", Time: "2025-06-01 10:45"},
		Airline:          "IndiGo",
		AirlineLogo:      "https://example.com/indigo.png",
		TravelClass:      "Economy",
	}

	t.Run("nonstop_flight", fromSearchRequest(
		serpapi.FlightSearchResponse{
			BestFlights: []serpapi.BestFlight{
				{Flights: []serpapi.FlightLeg{leg}, TotalDuration: intPtr(135), Price: intPtr(5400)},
			},
		},
		"2025-06-05",
		[]dto.Flight{
			{
				Airline:     "IndiGo",
				Price:       "5400",
				Duration:    "135 min",
				Stops:       "Nonstop",
				Departure:   "Indira Gandhi International Airport (DEL) at 2025-06-01 08:30",
				Arrival:     "Chhatrapati Shivaji International Airport (BOM) at 2025-06-01 10:45",
				TravelClass: "Economy",
				ReturnDate:  "2025-06-05",
				AirlineLogo: "https://example.com/indigo.png",
			},
		},
	))

	t.Run("multi_leg_counts_stops", fromSearchRequest(
		serpapi.FlightSearchResponse{
			BestFlights: []serpapi.BestFlight{
				{Flights: []serpapi.FlightLeg{leg, leg, leg}, TotalDuration: intPtr(420), Price: intPtr(12000)},
			},
		},
		"2025-06-05",
		[]dto.Flight{
			{
				Airline:     "IndiGo",
				Price:       "12000",
				Duration:    "420 min",
				Stops:       "2 stop(s)",
				Departure:   "Indira Gandhi International Airport (DEL) at 2025-06-01 08:30",
				Arrival:     "Chhatrapati Shivaji International Airport (BOM) at 2025-06-01 10:45",
				TravelClass: "Economy",
				ReturnDate:  "2025-06-05",
				AirlineLogo: "https://example.com/indigo.png",
			},
		},
	))

	t.Run("zero_leg_entry_skipped", fromSearchRequest(
		serpapi.FlightSearchResponse{
			BestFlights: []serpapi.BestFlight{
				{Flights: nil, TotalDuration: intPtr(90), Price: intPtr(3000)},
				{Flights: []serpapi.FlightLeg{leg}, TotalDuration: intPtr(135), Price: intPtr(5400)},
			},
		},
		"2025-06-05",
		[]dto.Flight{
			{
				Airline:     "IndiGo",
				Price:       "5400",
				Duration:    "135 min",
				Stops:       "Nonstop",
				Departure:   "Indira Gandhi International Airport (DEL) at 2025-06-01 08:30",
				Arrival:     "Chhatrapati Shivaji International Airport (BOM) at 2025-06-01 10:45",
				TravelClass: "Economy",
				ReturnDate:  "2025-06-05",
				AirlineLogo: "https://example.com/indigo.png",
			},
		},
	))

	t.Run("missing_fields_get_defaults", fromSearchRequest(
		serpapi.FlightSearchResponse{
			BestFlights: []serpapi.BestFlight{
				{Flights: []serpapi.FlightLeg{{}}},
			},
		},
		"2025-06-05",
		[]dto.Flight{
			{
				Airline:     "Unknown Airline",
				Price:       "N/A",
				Duration:    "N/A min",
				Stops:       "Nonstop",
				Departure:   "Unknown (???) at N/A",
				Arrival:     "Unknown (???) at N/A",
				TravelClass: "Economy",
				ReturnDate:  "2025-06-05",
			},
		},
	))

	t.Run("empty_response", fromSearchRequest(
		serpapi.FlightSearchResponse{}, "2025-06-05", []dto.Flight{},
	))
}

func TestHotelsFromSearch(t *testing.T) {
	fromSearchRequest := func(resp serpapi.HotelSearchResponse, want []dto.Hotel) func(t *testing.T) {
		return func(t *testing.T) {
			got := HotelsFromSearch(context.Background(), resp)

			diff := cmp.Diff(want, got)
			if diff != "" {
				t.Fatalf("HotelsFromSearch() mismatch (-want +got):\n%s", diff)
			}
		}
	}

	t.Run("full_property", fromSearchRequest(
		serpapi.HotelSearchResponse{
			Properties: []serpapi.Property{
				{
					Name:          "Taj Palace",
					RatePerNight:  &serpapi.RatePerNight{Lowest: "₹12,500"},
					OverallRating: 4.7,
					Location:      "New Delhi",
					Link:          "https://example.com/taj",
				},
			},
		},
		[]dto.Hotel{
			{Name: "Taj Palace", Price: "₹12,500", Rating: 4.7, Location: "New Delhi", Link: "https://example.com/taj"},
		},
	))

	t.Run("malformed_entry_skipped_others_kept", fromSearchRequest(
		serpapi.HotelSearchResponse{
			Properties: []serpapi.Property{
				{Name: "Hotel A", RatePerNight: &serpapi.RatePerNight{Lowest: "₹2,000"}, OverallRating: 4.1, Location: "Goa", Link: "https://example.com/a"},
				{RatePerNight: &serpapi.RatePerNight{Lowest: "₹9,999"}}, // no name
				{Name: "Hotel C", RatePerNight: &serpapi.RatePerNight{Lowest: "₹3,000"}, OverallRating: 4.4, Location: "Goa", Link: "https://example.com/c"},
			},
		},
		[]dto.Hotel{
			{Name: "Hotel A", Price: "₹2,000", Rating: 4.1, Location: "Goa", Link: "https://example.com/a"},
			{Name: "Hotel C", Price: "₹3,000", Rating: 4.4, Location: "Goa", Link: "https://example.com/c"},
		},
	))

	t.Run("missing_rate_resolves_na", fromSearchRequest(
		serpapi.HotelSearchResponse{
			Properties: []serpapi.Property{
				{Name: "Budget Inn"},
			},
		},
		[]dto.Hotel{
			{Name: "Budget Inn", Price: "N/A", Rating: 0, Location: "N/A", Link: "N/A"},
		},
	))

	t.Run("empty_response", fromSearchRequest(
		serpapi.HotelSearchResponse{}, []dto.Hotel{},
	))
}

func TestFormatFlights(t *testing.T) {
	t.Run("empty_list", func(t *testing.T) {
		got := FormatFlights(nil)
		if got != "No flights available." {
			t.Fatalf("expected literal empty notice, got %q", got)
		}
	})

	t.Run("numbered_blocks", func(t *testing.T) {
		got := FormatFlights([]dto.Flight{
			{Airline: "IndiGo", Price: "5400", Duration: "135 min", Stops: "Nonstop", Departure: "DEL at 08:30", Arrival: "BOM at 10:45", TravelClass: "Economy"},
			{Airline: "Air India", Price: "7100", Duration: "150 min", Stops: "1 stop(s)", Departure: "DEL at 12:00", Arrival: "BOM at 14:30", TravelClass: "Business"},
		})

		for _, want := range []string{
			"**Available flight options**:",
			"**Flight 1:**",
			"**Flight 2:**",
			"**Airline:** IndiGo",
			"**Price:** $7100",
			"**Stops:** Nonstop",
			"**Class:** Business",
		} {
			if !strings.Contains(got, want) {
				t.Fatalf("formatted text missing %q:\n%s", want, got)
			}
		}

		if strings.HasSuffix(got, "\n") {
			t.Fatalf("formatted text should be trimmed")
		}
	})
}

func TestFormatHotels(t *testing.T) {
	t.Run("empty_list", func(t *testing.T) {
		got := FormatHotels(nil)
		if got != "No hotels available." {
			t.Fatalf("expected literal empty notice, got %q", got)
		}
	})

	t.Run("numbered_blocks", func(t *testing.T) {
		got := FormatHotels([]dto.Hotel{
			{Name: "Taj Palace", Price: "₹12,500", Rating: 4.7, Location: "New Delhi", Link: "https://example.com/taj"},
		})

		for _, want := range []string{
			"**Available Hotel Options**:",
			"**Hotel 1:**",
			"**Name:** Taj Palace",
			"**Price:** ₹₹12,500",
			"**Rating:** 4.7",
			"**More Info:** [Link](https://example.com/taj)",
		} {
			if !strings.Contains(got, want) {
				t.Fatalf("formatted text missing %q:\n%s", want, got)
			}
		}
	})
}
