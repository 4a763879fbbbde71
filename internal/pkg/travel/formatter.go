package travel

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/vedantidabholkar/SafarAI/internal/app/dto"
	"github.com/vedantidabholkar/SafarAI/internal/pkg/serpapi"
)

// FlightsFromSearch maps the provider's best flights list into display
// records. Entries without legs carry nothing displayable and are skipped.
// Airline, class, airports and logo come from the first leg; price and
// duration from the itinerary's top-level fields with "N/A" fallbacks.
func FlightsFromSearch(ctx context.Context, resp serpapi.FlightSearchResponse, returnDate string) []dto.Flight {
	flights := make([]dto.Flight, 0, len(resp.BestFlights))

	for _, best := range resp.BestFlights {
		if len(best.Flights) == 0 {
			continue
		}

		firstLeg := best.Flights[0]

		flights = append(flights, dto.Flight{
			Airline:     defaultString(firstLeg.Airline, "Unknown Airline"),
			Price:       flightPrice(best.Price),
			Duration:    flightDuration(best.TotalDuration),
			Stops:       flightStops(len(best.Flights)),
			Departure:   formatAirport(firstLeg.DepartureAirport),
			Arrival:     formatAirport(firstLeg.ArrivalAirport),
			TravelClass: defaultString(firstLeg.TravelClass, "Economy"),
			ReturnDate:  returnDate,
			AirlineLogo: firstLeg.AirlineLogo,
		})
	}

	slog.InfoContext(ctx, "formatted flight results", slog.Int("count", len(flights)))

	return flights
}

// HotelsFromSearch maps the provider's properties list into display records.
// A property missing its name cannot be built into a record; it is logged
// and dropped without aborting the rest of the batch.
func HotelsFromSearch(ctx context.Context, resp serpapi.HotelSearchResponse) []dto.Hotel {
	hotels := make([]dto.Hotel, 0, len(resp.Properties))

	for _, property := range resp.Properties {
		if property.Name == "" {
			slog.WarnContext(ctx, "error formatting hotel data, skipping entry",
				slog.String("location", property.Location))
			continue
		}

		price := "N/A"
		if property.RatePerNight != nil && property.RatePerNight.Lowest != "" {
			price = property.RatePerNight.Lowest
		}

		hotels = append(hotels, dto.Hotel{
			Name:     property.Name,
			Price:    price,
			Rating:   property.OverallRating,
			Location: defaultString(property.Location, "N/A"),
			Link:     defaultString(property.Link, "N/A"),
		})
	}

	slog.InfoContext(ctx, "formatted hotel results", slog.Int("count", len(hotels)))

	return hotels
}

// FormatFlights renders flight records as a markdown block for the
// recommendation prompt. The currency glyphs are part of the rendered
// contract; consumers of the text expect these exact labels.
func FormatFlights(flights []dto.Flight) string {
	if len(flights) == 0 {
		return "No flights available."
	}

	var b strings.Builder
	b.WriteString("**Available flight options**:\n\n")

	for i, flight := range flights {
		fmt.Fprintf(&b, "**Flight %d:**\n", i+1)
		fmt.Fprintf(&b, "✈️ **Airline:** %s\n", flight.Airline)
		fmt.Fprintf(&b, "₹ **Price:** $%s\n", flight.Price)
		fmt.Fprintf(&b, "⏱️ **Duration:** %s\n", flight.Duration)
		fmt.Fprintf(&b, "🛑 **Stops:** %s\n", flight.Stops)
		fmt.Fprintf(&b, "🕔 **Departure:** %s\n", flight.Departure)
		fmt.Fprintf(&b, "🕖 **Arrival:** %s\n", flight.Arrival)
		fmt.Fprintf(&b, "💺 **Class:** %s\n\n", flight.TravelClass)
	}

	return strings.TrimSpace(b.String())
}

// FormatHotels renders hotel records as a markdown block for the
// recommendation prompt.
func FormatHotels(hotels []dto.Hotel) string {
	if len(hotels) == 0 {
		return "No hotels available."
	}

	var b strings.Builder
	b.WriteString("**Available Hotel Options**:\n\n")

	for i, hotel := range hotels {
		fmt.Fprintf(&b, "**Hotel %d:**\n", i+1)
		fmt.Fprintf(&b, "🏨 **Name:** %s\n", hotel.Name)
		fmt.Fprintf(&b, "₹ **Price:** ₹%s\n", hotel.Price)
		fmt.Fprintf(&b, "⭐ **Rating:** %s\n", formatRating(hotel.Rating))
		fmt.Fprintf(&b, "📍 **Location:** %s\n", hotel.Location)
		fmt.Fprintf(&b, "🔗 **More Info:** [Link](%s)\n\n", hotel.Link)
	}

	return strings.TrimSpace(b.String())
}

func flightPrice(price *int) string {
	if price == nil {
		return "N/A"
	}

	return strconv.Itoa(*price)
}

func flightDuration(minutes *int) string {
	if minutes == nil {
		return "N/A min"
	}

	return fmt.Sprintf("%d min", *minutes)
}

func flightStops(legs int) string {
	if legs == 1 {
		return "Nonstop"
	}

	return fmt.Sprintf("%d stop(s)", legs-1)
}

func formatAirport(airport serpapi.Airport) string {
	return fmt.Sprintf("%s (%s) at %s",
		defaultString(airport.Name, "Unknown"),
		defaultString(airport.ID, "???"),
		defaultString(airport.Time, "N/A"))
}

func formatRating(rating float64) string {
	return strconv.FormatFloat(rating, 'f', 1, 64)
}

func defaultString(value, fallback string) string {
	if value == "" {
		return fallback
	}

	return value
}
