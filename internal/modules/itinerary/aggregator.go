// README: Destination aggregator: fans out to providers, merges with fallback.
package itinerary

import (
	"context"
	"log"

	"github.com/msollami/vacabuilder/internal/providers"
)

// Provider contracts the aggregator consumes. Each method is a single
// best-effort attempt; an error means an empty contribution, never an aborted
// aggregation.

// GuideSource is the travel-guide provider (Wikivoyage).
type GuideSource interface {
	DestinationInfo(ctx context.Context, destination string) (providers.GuideInfo, error)
}

// SummarySource is the encyclopedic provider (Wikipedia).
type SummarySource interface {
	DestinationInfo(ctx context.Context, destination string) (providers.WikiInfo, error)
}

// ImageSearcher is the image-search provider (Wikimedia Commons).
type ImageSearcher interface {
	SearchImages(ctx context.Context, query string, limit int) ([]string, error)
}

// AttractionSource is the point-of-interest provider (Google Places).
type AttractionSource interface {
	SearchAttractions(ctx context.Context, location string, limit int) ([]providers.Place, error)
}

// TipSource supplies generic travel tips.
type TipSource interface {
	Tips(ctx context.Context, destination string) ([]string, error)
}

const (
	// Image merge priorities: guide photos first, then encyclopedic ones.
	guideImageTake = 5
	wikiImageTake  = 3

	// Below this total the image-search provider is consulted with query
	// variants, since any single source may return nothing for a place.
	imageSearchTarget   = 5
	imagesPerSearchTerm = 3

	maxAttractions = 8
)

// imageSearchSuffixes are appended to the destination name to widen recall;
// the Commons index is keyed on literal title text.
var imageSearchSuffixes = []string{"", " city", " landscape", " architecture", " street"}

// Aggregator merges provider outputs into one enriched destination record.
// Any provider may be nil, in which case its contribution is empty. The cache
// is optional.
type Aggregator struct {
	guide       GuideSource
	wiki        SummarySource
	images      ImageSearcher
	attractions AttractionSource
	tips        TipSource
	cache       *Cache
}

type AggregatorDeps struct {
	Guide       GuideSource
	Wiki        SummarySource
	Images      ImageSearcher
	Attractions AttractionSource
	Tips        TipSource
	Cache       *Cache
}

func NewAggregator(deps AggregatorDeps) *Aggregator {
	return &Aggregator{
		guide:       deps.Guide,
		wiki:        deps.Wiki,
		images:      deps.Images,
		attractions: deps.Attractions,
		tips:        deps.Tips,
		cache:       deps.Cache,
	}
}

// Enrich gathers everything the providers know about one destination. It
// cannot fail: a provider error only empties that provider's contribution,
// with a log line carrying the destination for diagnosis.
func (a *Aggregator) Enrich(ctx context.Context, dest Destination) EnrichedDestination {
	if a.cache != nil {
		if cached, ok := a.cache.GetDestination(ctx, dest.Name); ok {
			cached.Destination = dest
			return *cached
		}
	}

	enriched := EnrichedDestination{Destination: dest}

	var guideInfo providers.GuideInfo
	if a.guide != nil {
		info, err := a.guide.DestinationInfo(ctx, dest.Name)
		if err != nil {
			log.Printf("itinerary: wikivoyage lookup for %q failed: %v", dest.Name, err)
		} else {
			guideInfo = info
		}
	}

	var wikiInfo providers.WikiInfo
	if a.wiki != nil {
		info, err := a.wiki.DestinationInfo(ctx, dest.Name)
		if err != nil {
			log.Printf("itinerary: wikipedia lookup for %q failed: %v", dest.Name, err)
		} else {
			wikiInfo = info
		}
	}

	// The travel guide wins for summary and URL; the encyclopedia is the
	// fallback. Both empty leaves the field empty, never an error.
	enriched.Summary = guideInfo.Summary
	enriched.SourceURL = guideInfo.URL
	if enriched.Summary == "" {
		enriched.Summary = wikiInfo.Summary
	}
	if enriched.SourceURL == "" {
		enriched.SourceURL = wikiInfo.URL
	}

	enriched.Images = a.collectImages(ctx, dest.Name, guideInfo.Images, wikiInfo.Images)
	enriched.Attractions = a.collectAttractions(ctx, dest.Name)
	enriched.Tips = a.collectTips(ctx, dest.Name)

	if a.cache != nil {
		a.cache.SetDestination(ctx, dest.Name, enriched)
	}
	return enriched
}

// collectImages concatenates candidates in fixed priority order (guide, then
// encyclopedia, then image search with query variants until the target is
// met) and returns the deduplicated, capped result.
func (a *Aggregator) collectImages(ctx context.Context, name string, guideImages, wikiImages []string) []string {
	var candidates []string
	candidates = appendPhotoCandidates(candidates, guideImages, guideImageTake)
	candidates = appendPhotoCandidates(candidates, wikiImages, wikiImageTake)

	if a.images != nil && len(candidates) < imageSearchTarget {
		for _, suffix := range imageSearchSuffixes {
			if len(candidates) >= imageSearchTarget {
				break
			}
			found, err := a.images.SearchImages(ctx, name+suffix, imagesPerSearchTerm)
			if err != nil {
				log.Printf("itinerary: image search %q failed: %v", name+suffix, err)
				continue
			}
			candidates = appendPhotoCandidates(candidates, found, imagesPerSearchTerm)
		}
	}

	return dedupImages(candidates, maxImagesPerDestination)
}

func (a *Aggregator) collectAttractions(ctx context.Context, name string) []Attraction {
	if a.attractions == nil {
		return nil
	}
	places, err := a.attractions.SearchAttractions(ctx, name, maxAttractions)
	if err != nil {
		log.Printf("itinerary: attractions lookup for %q failed: %v", name, err)
		return nil
	}
	if len(places) > maxAttractions {
		places = places[:maxAttractions]
	}

	attractions := make([]Attraction, 0, len(places))
	for _, p := range places {
		attractions = append(attractions, Attraction{
			Name:    p.Name,
			Address: p.Address,
			Rating:  p.Rating,
			Types:   p.Types,
			PlaceID: p.PlaceID,
		})
	}
	return attractions
}

func (a *Aggregator) collectTips(ctx context.Context, name string) []string {
	if a.tips == nil {
		return nil
	}
	tips, err := a.tips.Tips(ctx, name)
	if err != nil {
		log.Printf("itinerary: tips lookup for %q failed: %v", name, err)
		return nil
	}
	return tips
}
