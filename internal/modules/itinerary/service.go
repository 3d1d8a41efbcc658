// README: Itinerary service: orchestrates aggregation, synthesis, persistence.
package itinerary

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"log"
	"strings"
	"time"

	"github.com/msollami/vacabuilder/internal/ai"
)

// Service drives the planning pipeline for one request: validate, aggregate
// each destination sequentially in input order, synthesize once, shape the
// structured summary, persist best-effort.
type Service struct {
	agg   *Aggregator
	synth *Synthesizer
	gen   ai.Generator
	store *Store // optional; history disabled when nil
	now   func() time.Time
}

func NewService(agg *Aggregator, synth *Synthesizer, gen ai.Generator, store *Store) *Service {
	return &Service{agg: agg, synth: synth, gen: gen, store: store, now: time.Now}
}

// Ready reports whether the text-generation capability is usable.
func (s *Service) Ready() bool {
	return s.gen.Ready()
}

// Plan generates a complete itinerary for the given destinations. Destination
// order is preserved everywhere: the aggregation loop, the generated text,
// and the structured summary.
func (s *Service) Plan(ctx context.Context, dests []Destination, preferences string) (*PlanResult, error) {
	if len(dests) == 0 {
		return nil, ErrBadRequest
	}
	for _, d := range dests {
		if strings.TrimSpace(d.Name) == "" {
			return nil, ErrBadRequest
		}
	}

	if !s.gen.Ready() {
		return nil, ErrGeneratorNotReady
	}

	log.Printf("itinerary: planning %d destination(s)", len(dests))

	enriched := make([]EnrichedDestination, 0, len(dests))
	for i, dest := range dests {
		log.Printf("itinerary: [%d/%d] gathering information for %s", i+1, len(dests), dest.Name)
		e := s.agg.Enrich(ctx, dest)
		log.Printf("itinerary: [%d/%d] %s: %d attractions, %d images",
			i+1, len(dests), dest.Name, len(e.Attractions), len(e.Images))
		enriched = append(enriched, e)
	}

	markdown := s.synth.Synthesize(ctx, enriched, preferences)

	summary := Summary{
		TotalDestinations: len(enriched),
		Destinations:      make([]DestinationSummary, 0, len(enriched)),
		GeneratedAt:       s.now(),
	}
	for _, e := range enriched {
		summary.Destinations = append(summary.Destinations, DestinationSummary{
			Name:             e.Name,
			StartDate:        e.StartDate,
			EndDate:          e.EndDate,
			AttractionsCount: len(e.Attractions),
		})
	}

	s.save(ctx, dests, preferences, markdown)

	return &PlanResult{Markdown: markdown, Itinerary: summary}, nil
}

// History returns the most recently saved itineraries, newest first.
func (s *Service) History(ctx context.Context, limit int) ([]Record, error) {
	if s.store == nil {
		return nil, nil
	}
	return s.store.Recent(ctx, limit)
}

// save persists the result best-effort; a storage failure never fails the
// request that produced the document.
func (s *Service) save(ctx context.Context, dests []Destination, preferences, markdown string) {
	if s.store == nil {
		return
	}

	names := make([]string, len(dests))
	for i, d := range dests {
		names[i] = d.Name
	}

	rec := Record{
		ID:           newID(),
		Destinations: names,
		Preferences:  preferences,
		Markdown:     markdown,
		CreatedAt:    s.now(),
	}
	if err := s.store.Save(ctx, rec); err != nil {
		log.Printf("itinerary: saving record %s failed: %v", rec.ID, err)
	}
}

func newID() string {
	var b [16]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
