package transport

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/vedantidabholkar/SafarAI/internal/app/config"
	"github.com/vedantidabholkar/SafarAI/internal/app/dto"
	"github.com/vedantidabholkar/SafarAI/internal/app/endpoints"
	httptransport "github.com/vedantidabholkar/SafarAI/internal/pkg/transport/http"
)

// MakeHTTPRouter builds the HTTP router with all the service endpoints.
func MakeHTTPRouter(
	_ *config.Config,
	endpts endpoints.Endpoints,
) *chi.Mux {
	router := chi.NewRouter()

	router.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	router.Group(func(router chi.Router) {
		router.Use(
			httptransport.RequestID(),
			httptransport.CORSMiddleware(),
			httptransport.Recoverer(slog.Default()),
			render.SetContentType(render.ContentTypeJSON),
		)

		router.Post("/search_flights/", httptransport.MakeHandlerFunc(
			endpts.TravelEndpoint.SearchFlights,
			httptransport.DecodeRequest[dto.FlightSearchRequest],
			httptransport.ResponseWithBody,
		))

		router.Post("/search_hotels/", httptransport.MakeHandlerFunc(
			endpts.TravelEndpoint.SearchHotels,
			httptransport.DecodeRequest[dto.HotelSearchRequest],
			httptransport.ResponseWithBody,
		))

		router.Post("/complete_search/", httptransport.MakeHandlerFunc(
			endpts.TravelEndpoint.CompleteSearch,
			httptransport.DecodeRequest[dto.CompleteSearchRequest],
			httptransport.ResponseWithBody,
		))

		router.Post("/generate_itinerary/", httptransport.MakeHandlerFunc(
			endpts.TravelEndpoint.GenerateItinerary,
			httptransport.DecodeRequest[dto.ItineraryRequest],
			httptransport.ResponseWithBody,
		))
	})

	return router
}
