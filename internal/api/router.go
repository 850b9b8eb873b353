package api

import (
	"github.com/gin-gonic/gin"
	"github.com/tonybolanyo/chordme-sub004/internal/api/handlers"
	"github.com/tonybolanyo/chordme-sub004/internal/api/middleware"
	"github.com/tonybolanyo/chordme-sub004/internal/chords"
	"github.com/tonybolanyo/chordme-sub004/internal/config"
)

func SetupRouter(engine *chords.Engine, cfg *config.Config, version string) *gin.Engine {
	router := gin.New()

	// Recovery middleware (must be first)
	router.Use(middleware.RecoverWithSentry())

	// Sentry middleware for error tracking
	router.Use(middleware.SentryMiddleware())

	// Request tracking and structured logging
	router.Use(middleware.RequestTracking())

	// CORS middleware
	router.Use(middleware.CORS(cfg.AllowedOrigin))

	// Health check
	healthHandler := handlers.NewHealthHandler(engine)
	router.GET("/health", healthHandler.HealthCheck)

	// Metrics endpoint
	metricsHandler := handlers.NewMetricsHandler(version)
	router.GET("/api/metrics", metricsHandler.GetMetrics)

	// Chord engine endpoints
	chordHandler := handlers.NewChordHandler(engine)
	v1 := router.Group("/api/v1")
	{
		v1.POST("/chords/parse", chordHandler.ParseChord)
		v1.POST("/chords/validate", chordHandler.ValidateChords)
		v1.GET("/chords/enharmonics", chordHandler.Enharmonics)

		// Song validation - consumed by the editor to highlight bad chords
		v1.POST("/songs/validate-content", chordHandler.ValidateContent)
	}

	return router
}
