package api

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/pjaos/retirement-finances-sub000/internal/api/handlers"
	"github.com/pjaos/retirement-finances-sub000/internal/api/middleware"
	"github.com/pjaos/retirement-finances-sub000/internal/api/store"
	"github.com/pjaos/retirement-finances-sub000/internal/calculation"
	"go.uber.org/zap"
)

// DefaultPort is used when RETFIN_API_PORT is unset.
const DefaultPort = "8080"

// Port returns the listen port from RETFIN_API_PORT.
func Port() string {
	if port := os.Getenv("RETFIN_API_PORT"); port != "" {
		return port
	}
	return DefaultPort
}

// NewRouter wires the handlers and middleware into a gin engine.
func NewRouter(engine *calculation.CalculationEngine, runs *store.Store, logger *zap.SugaredLogger) *gin.Engine {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	if os.Getenv("RETFIN_API_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(middleware.CORS())
	router.Use(middleware.Logger(logger))
	router.Use(middleware.ErrorHandler(logger))

	taxHandler := handlers.NewTaxHandler(engine)
	projectionHandler := handlers.NewProjectionHandler(engine, runs, logger)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "stored_runs": runs.Len()})
	})

	v1 := router.Group("/api/v1")
	{
		v1.POST("/tax", taxHandler.CalcNetPay)

		v1.POST("/projection", projectionHandler.RunProjection)
		v1.GET("/projection/:id", projectionHandler.GetProjection)
		v1.GET("/projection/:id/rows", projectionHandler.GetRows)
		v1.GET("/projection/:id/charts/:name", projectionHandler.GetChart)
		v1.GET("/projection/:id/reality", projectionHandler.GetReality)
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": gin.H{"code": "NOT_FOUND", "message": "Not found"}})
	})

	return router
}
