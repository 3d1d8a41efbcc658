// README: CLI demo; plans one itinerary without the HTTP layer.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/msollami/vacabuilder/internal/ai"
	"github.com/msollami/vacabuilder/internal/modules/itinerary"
	"github.com/msollami/vacabuilder/internal/providers"
)

func main() {
	_ = godotenv.Load()

	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "usage: %s <destination> [destination...]\n", os.Args[0])
		os.Exit(2)
	}

	ctx := context.Background()

	generator := ai.NewGeminiGenerator(ctx, os.Getenv("GEMINI_API_KEY"))
	defer generator.Close()

	placesClient, err := providers.NewPlacesClient(os.Getenv("GOOGLE_PLACES_API_KEY"))
	if err != nil {
		log.Fatalf("places init: %v", err)
	}

	opts := providers.Options{}
	aggregator := itinerary.NewAggregator(itinerary.AggregatorDeps{
		Guide:       providers.NewWikivoyageClient(opts),
		Wiki:        providers.NewWikipediaClient(opts),
		Images:      providers.NewCommonsClient(opts),
		Attractions: placesClient,
		Tips:        providers.NewTipsClient(),
	})

	planner := itinerary.NewService(aggregator, itinerary.NewSynthesizer(generator), generator, nil)

	dests := make([]itinerary.Destination, len(os.Args)-1)
	for i, name := range os.Args[1:] {
		dests[i] = itinerary.Destination{Name: name}
	}

	preferences := strings.TrimSpace(os.Getenv("VACAB_PREFERENCES"))
	if preferences == "" {
		preferences = "a relaxed mix of culture, food, and walking"
	}

	result, err := planner.Plan(ctx, dests, preferences)
	if err != nil {
		log.Fatalf("plan failed: %v", err)
	}

	fmt.Println(result.Markdown)
}
