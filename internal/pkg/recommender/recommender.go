package recommender

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// Kind selects the persona and prompt template for a recommendation.
type Kind string

const (
	KindFlights Kind = "flights"
	KindHotels  Kind = "hotels"
)

const dateLayout = "2006-01-02"

// TextGenerator is a single request/response completion call. No tool use,
// no multi-turn state.
type TextGenerator interface {
	GenerateText(ctx context.Context, model, prompt string) (string, error)
}

// Config for the recommendation engine.
type Config struct {
	APIKey  string
	Model   string
	Timeout time.Duration
}

// Engine composes travel data into one-shot prompts and extracts the
// model's free-text answer. Failures are returned to the caller, which
// decides whether to absorb them into user-facing fallback text; the engine
// itself never panics past this boundary.
type Engine struct {
	model     string
	generator TextGenerator
}

func NewEngine(cfg Config) *Engine {
	return &Engine{
		model:     cfg.Model,
		generator: newGeminiGenerator(cfg.APIKey, cfg.Timeout),
	}
}

// NewEngineWithGenerator builds an engine around an existing generator.
func NewEngineWithGenerator(model string, generator TextGenerator) *Engine {
	return &Engine{
		model:     model,
		generator: generator,
	}
}

// Recommend asks the model for a recommendation over an already-formatted
// data block.
func (e *Engine) Recommend(ctx context.Context, kind Kind, formattedData string) (string, error) {
	slog.InfoContext(ctx, "getting recommendation", slog.String("kind", string(kind)))

	p, ok := personas[kind]
	if !ok {
		return "", fmt.Errorf("unknown recommendation kind %q", kind)
	}

	text, err := e.generator.GenerateText(ctx, e.model, recommendationPrompt(p, kind, formattedData))
	if err != nil {
		return "", fmt.Errorf("%s recommendation: %w", kind, err)
	}

	return text, nil
}

// ItineraryInput carries everything the itinerary prompt embeds. The text
// blocks are already rendered; dates must be calendar dates (YYYY-MM-DD).
type ItineraryInput struct {
	Destination  string
	FlightsText  string
	HotelsText   string
	CheckInDate  string
	CheckOutDate string
}

// PlanItinerary asks the model for a day-by-day plan covering the whole
// stay. The trip length is derived from the dates before the completion
// call; unparseable dates fail without contacting the model.
func (e *Engine) PlanItinerary(ctx context.Context, input ItineraryInput) (string, error) {
	slog.InfoContext(ctx, "generating itinerary", slog.String("destination", input.Destination))

	days, err := TripDays(input.CheckInDate, input.CheckOutDate)
	if err != nil {
		return "", err
	}

	text, err := e.generator.GenerateText(ctx, e.model, itineraryPrompt(input, days))
	if err != nil {
		return "", fmt.Errorf("itinerary: %w", err)
	}

	return text, nil
}

// TripDays returns the whole-day span between two calendar dates.
func TripDays(checkInDate, checkOutDate string) (int, error) {
	checkIn, err := time.Parse(dateLayout, checkInDate)
	if err != nil {
		return 0, fmt.Errorf("parse check-in date %q: %w", checkInDate, err)
	}

	checkOut, err := time.Parse(dateLayout, checkOutDate)
	if err != nil {
		return 0, fmt.Errorf("parse check-out date %q: %w", checkOutDate, err)
	}

	return int(checkOut.Sub(checkIn).Hours() / 24), nil
}
