package providers

import (
	"context"
	"fmt"
	"log"

	"googlemaps.github.io/maps"
)

// Place represents a simplified attraction result.
type Place struct {
	Name    string
	Address string
	Rating  float32
	Types   []string
	PlaceID string
}

// PlacesClient handles interactions with the Google Places API. A client
// built without an API key is a no-op that returns empty results.
type PlacesClient struct {
	client *maps.Client
}

// NewPlacesClient creates a PlacesClient with the given API key. An empty key
// disables the provider rather than failing startup.
func NewPlacesClient(apiKey string) (*PlacesClient, error) {
	if apiKey == "" {
		log.Printf("providers: GOOGLE_PLACES_API_KEY not set, attractions provider disabled")
		return &PlacesClient{}, nil
	}

	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &PlacesClient{client: client}, nil
}

// SearchAttractions returns up to limit tourist attractions for the location.
func (c *PlacesClient) SearchAttractions(ctx context.Context, location string, limit int) ([]Place, error) {
	if c.client == nil || limit <= 0 {
		return nil, nil
	}

	r := &maps.TextSearchRequest{
		Query: fmt.Sprintf("tourist attractions in %s", location),
		Type:  "tourist_attraction",
	}

	resp, err := c.client.TextSearch(ctx, r)
	if err != nil {
		return nil, fmt.Errorf("places api error: %w", err)
	}

	var results []Place
	for _, result := range resp.Results {
		if len(results) >= limit {
			break
		}
		results = append(results, Place{
			Name:    result.Name,
			Address: result.FormattedAddress,
			Rating:  result.Rating,
			Types:   result.Types,
			PlaceID: result.PlaceID,
		})
	}
	return results, nil
}
