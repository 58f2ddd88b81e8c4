package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humaecho"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/carexpo/car-expo/internal/api/handlers"
	"github.com/carexpo/car-expo/internal/api/middleware"
	"github.com/carexpo/car-expo/internal/catalog"
	"github.com/carexpo/car-expo/internal/config"
	"github.com/carexpo/car-expo/internal/deck"
	"github.com/carexpo/car-expo/internal/engine"
	"github.com/carexpo/car-expo/internal/favorites"
	"github.com/carexpo/car-expo/internal/feed"
	"github.com/carexpo/car-expo/pkg/extract"
	"github.com/carexpo/car-expo/pkg/logger"
	"github.com/carexpo/car-expo/pkg/rating"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server and refresh scheduler",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	store, checks, err := buildFavoritesStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer store.Close() //nolint:errcheck // shutdown path

	cat := catalog.New(nil)
	src := buildSource(cfg, log)
	weights := ratingWeights(cfg)

	// The deck serves the ranked view of the catalog; every refresh
	// reseeds it so stale listings never linger in the session.
	session := deck.NewSession(nil, store)
	deckHandler := handlers.NewDeckHandler(session, cat, weights)

	eng := engine.NewEngine(cat, src,
		engine.WithLogger(log),
		engine.WithAfterRefresh(deckHandler.Reseed),
	)
	if err := eng.RunRefresh(ctx); err != nil {
		// The scheduler retries on the next tick; an empty catalog
		// just serves empty results until then.
		log.Error("initial catalog refresh failed", "error", err)
	}

	sched, err := engine.NewScheduler(eng, cfg.Schedule.RefreshInterval, log)
	if err != nil {
		return fmt.Errorf("creating scheduler: %w", err)
	}
	sched.Start()

	extractor := buildExtractor(cfg)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recovery(log))
	e.Use(middleware.RequestLog(log))
	e.Use(middleware.Metrics())

	health := handlers.NewHealthHandler(checks...)
	e.GET("/healthz", health.Healthz)
	e.GET("/readyz", health.Readyz)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := humaecho.New(e, huma.DefaultConfig("Car Expo API", Version))
	handlers.RegisterCarRoutes(api, handlers.NewCarsHandler(cat, weights))
	handlers.RegisterRecommendationRoutes(api, handlers.NewRecommendationsHandler(cat, weights))
	handlers.RegisterParseQueryRoutes(api, handlers.NewParseQueryHandler(extractor, log))
	handlers.RegisterFavoriteRoutes(api, handlers.NewFavoritesHandler(store))
	handlers.RegisterDeckRoutes(api, deckHandler)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Info("starting server",
		"addr", addr,
		"catalog_source", cfg.Catalog.Source,
		"llm_backend", cfg.LLM.Backend,
		"catalog_size", cat.Len(),
	)

	go func() {
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")

	stopCtx := sched.Stop()
	<-stopCtx.Done()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down server: %w", err)
	}

	log.Info("server stopped")
	return nil
}

// buildFavoritesStore returns the configured favorites store plus the
// readiness checks it contributes. Memory is the fallback when no
// database is configured.
func buildFavoritesStore(
	ctx context.Context,
	cfg *config.Config,
) (favorites.Store, []handlers.ReadinessCheck, error) {
	if !cfg.Database.Enabled {
		return favorites.NewMemory(), nil, nil
	}

	pg, err := favorites.NewPostgres(ctx, cfg.Database.DSN())
	if err != nil {
		return nil, nil, fmt.Errorf("connecting to database: %w", err)
	}
	if err := pg.Migrate(ctx); err != nil {
		pg.Close() //nolint:errcheck // connect error path
		return nil, nil, fmt.Errorf("running migrations: %w", err)
	}
	return pg, []handlers.ReadinessCheck{pg.Ping}, nil
}

// buildSource returns the configured listing source.
func buildSource(cfg *config.Config, log *slog.Logger) catalog.Source {
	if cfg.Catalog.Source != "feed" {
		return catalog.Static{}
	}

	limiter := feed.NewRateLimiter(
		cfg.Feed.RateLimit.PerSecond,
		cfg.Feed.RateLimit.Burst,
		cfg.Feed.RateLimit.DailyLimit,
	)

	searches := make([]feed.Search, 0, len(cfg.Feed.Searches))
	for _, s := range cfg.Feed.Searches {
		searches = append(searches, feed.Search{Make: s.Make, Model: s.Model})
	}

	opts := []feed.Option{}
	if len(searches) > 0 {
		opts = append(opts, feed.WithSearches(searches))
	}
	return feed.NewClient(cfg.Feed.URL, limiter, log, opts...)
}

// buildExtractor returns the configured query extractor. The "none"
// backend still serves parse-query via the deterministic parser alone.
func buildExtractor(cfg *config.Config) extract.Extractor {
	switch cfg.LLM.Backend {
	case "ollama":
		backend := extract.NewOllamaBackend(cfg.LLM.Ollama.Endpoint, cfg.LLM.Ollama.Model)
		return extract.NewLLMQueryExtractor(backend, extract.WithCallTimeout(cfg.LLM.Timeout))
	case "openai_compat":
		backend := extract.NewOpenAICompatBackend(
			cfg.LLM.OpenAICompat.Endpoint,
			cfg.LLM.OpenAICompat.Model,
		)
		return extract.NewLLMQueryExtractor(backend, extract.WithCallTimeout(cfg.LLM.Timeout))
	default:
		return extract.NoopExtractor{}
	}
}

// ratingWeights maps the config weight overrides onto the engine's
// weights, falling back to the defaults when unset.
func ratingWeights(cfg *config.Config) rating.Weights {
	w := cfg.Rating.Weights
	if w.Zero() {
		return rating.DefaultWeights()
	}
	return rating.Weights{
		Value:       w.Value,
		Reliability: w.Reliability,
		Features:    w.Features,
		Condition:   w.Condition,
		Performance: w.Performance,
		Efficiency:  w.Efficiency,
		Style:       w.Style,
	}
}
