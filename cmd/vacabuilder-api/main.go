// README: Entry point; loads config, wires providers and services, starts HTTP server.
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/msollami/vacabuilder/internal/ai"
	"github.com/msollami/vacabuilder/internal/config"
	httptransport "github.com/msollami/vacabuilder/internal/http"
	"github.com/msollami/vacabuilder/internal/infra"
	"github.com/msollami/vacabuilder/internal/modules/itinerary"
	"github.com/msollami/vacabuilder/internal/providers"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbPool, err := infra.NewDB(ctx, cfg.DB.DSN)
	if err != nil {
		log.Fatalf("postgres init: %v", err)
	}
	defer dbPool.Close()

	redisClient := infra.NewRedis(cfg.Redis.Addr)

	generator := ai.NewGeminiGenerator(ctx, cfg.AI.GeminiKey)
	defer generator.Close()

	placesClient, err := providers.NewPlacesClient(cfg.Places.APIKey)
	if err != nil {
		log.Fatalf("places init: %v", err)
	}

	providerOpts := providers.Options{
		Timeout:     cfg.Providers.Timeout,
		InsecureTLS: cfg.Providers.InsecureTLS,
	}

	aggregator := itinerary.NewAggregator(itinerary.AggregatorDeps{
		Guide:       providers.NewWikivoyageClient(providerOpts),
		Wiki:        providers.NewWikipediaClient(providerOpts),
		Images:      providers.NewCommonsClient(providerOpts),
		Attractions: placesClient,
		Tips:        providers.NewTipsClient(),
		Cache:       itinerary.NewCache(redisClient),
	})

	store := itinerary.NewStore(dbPool)
	synthesizer := itinerary.NewSynthesizer(generator)
	planner := itinerary.NewService(aggregator, synthesizer, generator, store)

	server := &http.Server{Addr: cfg.HTTP.Addr, Handler: httptransport.NewRouter(planner)}

	go func() {
		<-ctx.Done()
		_ = server.Shutdown(context.Background())
	}()

	log.Printf("vacabuilder listening on %s (llm_loaded=%v)", cfg.HTTP.Addr, planner.Ready())
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
}
