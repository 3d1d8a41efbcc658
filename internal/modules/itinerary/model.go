// README: Itinerary domain model: destinations, enriched records, plan results.
package itinerary

import (
	"errors"
	"time"
)

var (
	ErrBadRequest        = errors.New("bad request")
	ErrGeneratorNotReady = errors.New("text generator not ready")
)

// Destination is the caller-supplied unit of planning. Immutable once
// submitted; validated once at the service boundary.
type Destination struct {
	Name      string `json:"name"`
	StartDate string `json:"start_date,omitempty"`
	EndDate   string `json:"end_date,omitempty"`
}

// Attraction is one point of interest in a destination.
type Attraction struct {
	Name    string   `json:"name"`
	Address string   `json:"address"`
	Rating  float32  `json:"rating"`
	Types   []string `json:"types,omitempty"`
	PlaceID string   `json:"place_id"`
}

// EnrichedDestination merges the input destination with everything the
// providers contributed. Each field defaults independently to empty; Images
// holds no duplicates and preserves first-seen order across providers.
// Read-only once built.
type EnrichedDestination struct {
	Destination
	Summary     string       `json:"summary"`
	SourceURL   string       `json:"source_url"`
	Attractions []Attraction `json:"attractions"`
	Tips        []string     `json:"tips"`
	Images      []string     `json:"images"`
}

// DestinationSummary is the per-destination entry of the structured summary.
type DestinationSummary struct {
	Name             string `json:"name"`
	StartDate        string `json:"start_date,omitempty"`
	EndDate          string `json:"end_date,omitempty"`
	AttractionsCount int    `json:"attractions_count"`
}

// Summary is the structured companion of the markdown document.
type Summary struct {
	TotalDestinations int                  `json:"total_destinations"`
	Destinations      []DestinationSummary `json:"destinations"`
	GeneratedAt       time.Time            `json:"generated_at"`
}

// PlanResult is the complete outcome of one planning request.
type PlanResult struct {
	Markdown  string  `json:"markdown"`
	Itinerary Summary `json:"itinerary"`
}

// Record is a persisted itinerary.
type Record struct {
	ID           string    `json:"id"`
	Destinations []string  `json:"destinations"`
	Preferences  string    `json:"preferences"`
	Markdown     string    `json:"markdown"`
	CreatedAt    time.Time `json:"created_at"`
}
