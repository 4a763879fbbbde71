package serpapi

// Response shapes for the SerpAPI engines this service consumes. SerpAPI
// reports business-level failures (bad query, no results for the account)
// inside a 200 body via the "error" key, so both response types carry it
// alongside the payload. All payload fields are optional; absent fields keep
// their zero value and the formatter applies the user-facing defaults.

// FlightSearchResponse is the google_flights engine response.
type FlightSearchResponse struct {
	Error       string       `json:"error,omitempty"`
	BestFlights []BestFlight `json:"best_flights"`
}

// BestFlight is one itinerary from the best_flights list. Price and duration
// belong to the whole itinerary, while airline, class and airports are read
// from the first leg only.
type BestFlight struct {
	Flights       []FlightLeg `json:"flights"`
	TotalDuration *int        `json:"total_duration"`
	Price         *int        `json:"price"`
}

// FlightLeg is one segment of a multi-segment itinerary.
type FlightLeg struct {
	DepartureAirport Airport `json:"departure_airport"`
	ArrivalAirport   Airport `json:"arrival_airport"`
	Airline          string  `json:"airline"`
	AirlineLogo      string  `json:"airline_logo"`
	TravelClass      string  `json:"travel_class"`
}

type Airport struct {
	Name string `json:"name"`
	ID   string `json:"id"`
	Time string `json:"time"`
}

// HotelSearchResponse is the google_hotels engine response.
type HotelSearchResponse struct {
	Error      string     `json:"error,omitempty"`
	Properties []Property `json:"properties"`
}

// Property is one hotel entry from the properties list.
type Property struct {
	Name          string        `json:"name"`
	RatePerNight  *RatePerNight `json:"rate_per_night"`
	OverallRating float64       `json:"overall_rating"`
	Location      string        `json:"location"`
	Link          string        `json:"link"`
}

type RatePerNight struct {
	Lowest string `json:"lowest"`
}
