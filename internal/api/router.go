// Package api wires the HTTP surface: middleware, routes and static files.
package api

import (
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"inflation-lens/internal/api/handlers"
	"inflation-lens/internal/api/middleware"
	"inflation-lens/internal/api/models"
	"inflation-lens/internal/metrics"
	"inflation-lens/internal/store"

	"github.com/gin-gonic/gin"
)

// Deps is everything the router needs from main.
type Deps struct {
	Simulator      *handlers.Simulator
	Store          store.Store
	AllowedOrigins []string
	// StaticDir holds a built frontend; skipped when it does not exist.
	StaticDir string
	// AccessLog enables the per-request log line.
	AccessLog bool
}

// NewRouter builds the gin engine.
func NewRouter(d Deps) *gin.Engine {
	router := gin.New()

	router.Use(middleware.CORS(d.AllowedOrigins))
	if d.AccessLog {
		router.Use(middleware.Logger())
	}
	router.Use(middleware.ErrorHandler())
	router.Use(metrics.Middleware())

	chartHandler := handlers.NewChartHandler(d.Simulator, d.Store)
	analysisHandler := handlers.NewAnalysisHandler(d.Simulator)
	selectionHandler := handlers.NewSelectionHandler(d.Simulator)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	v1 := router.Group("/api/v1")
	{
		v1.GET("/assets", selectionHandler.ListAssets)
		v1.GET("/inflation-indices", selectionHandler.ListInflationIndices)
		v1.GET("/ranges", selectionHandler.ListRanges)

		v1.GET("/chart", chartHandler.Generate)
		v1.GET("/chart/:id", chartHandler.Get)
		v1.GET("/chart/:id/csv", chartHandler.CSV)
		v1.GET("/chart/:id/pdf", chartHandler.PDF)

		v1.GET("/compare", analysisHandler.Compare)
		v1.GET("/distribution", analysisHandler.Distribution)
	}

	serveStatic(router, d.StaticDir)
	return router
}

// serveStatic serves a single-page frontend, falling back to index.html for
// client-side routes. API paths never fall through to the frontend.
func serveStatic(router *gin.Engine, staticDir string) {
	notFound := func(c *gin.Context) {
		c.JSON(http.StatusNotFound, models.NewError(models.CodeNotFound, "Not found"))
	}

	if staticDir == "" {
		router.NoRoute(notFound)
		return
	}
	if info, err := os.Stat(staticDir); err != nil || !info.IsDir() {
		log.Printf("Static directory %s not found, skipping static file serving", staticDir)
		router.NoRoute(notFound)
		return
	}

	router.Static("/static", filepath.Join(staticDir, "assets"))
	router.StaticFile("/favicon.ico", filepath.Join(staticDir, "favicon.ico"))
	index := filepath.Join(staticDir, "index.html")
	router.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api") {
			notFound(c)
			return
		}
		c.File(index)
	})
	log.Printf("Serving static files from %s", staticDir)
}
