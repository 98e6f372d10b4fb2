package api

import (
	"context"

	"github.com/neexbeast/tripmuse/internal/engine"
	"github.com/neexbeast/tripmuse/internal/generator"
	"github.com/neexbeast/tripmuse/internal/storage"
)

// ShortlistEngine produces destination shortlists.
type ShortlistEngine interface {
	Recommend(ctx context.Context, req engine.SelectionRequest) (*engine.Shortlist, error)
}

// ItineraryBuilder expands one chosen destination into daily slots.
type ItineraryBuilder interface {
	BuildItinerary(ctx context.Context, city, country string, days int) (*generator.Itinerary, error)
}

// FeedbackRepo defines the storage operations needed by handlers.
type FeedbackRepo interface {
	InsertFeedback(ctx context.Context, fb storage.Feedback) error
}
