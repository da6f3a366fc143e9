package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"inflation-lens/internal/api"
	"inflation-lens/internal/api/handlers"
	"inflation-lens/internal/config"
	"inflation-lens/internal/store"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := loadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if cfg.Production() {
		gin.SetMode(gin.ReleaseMode)
	}

	table, err := cfg.Table()
	if err != nil {
		log.Fatalf("Failed to build calibration: %v", err)
	}
	sim := &handlers.Simulator{
		Table:         table,
		Options:       cfg.Options(),
		Now:           time.Now,
		DefaultTrials: cfg.Simulation.DefaultTrials,
		MaxTrials:     cfg.Simulation.MaxTrials,
	}

	st, err := openStore(cfg)
	if err != nil {
		log.Fatalf("Failed to open chart store: %v", err)
	}
	defer st.Close()

	router := api.NewRouter(api.Deps{
		Simulator:      sim,
		Store:          st,
		AllowedOrigins: cfg.Server.AllowedOrigins,
		StaticDir:      cfg.Server.StaticDir,
		AccessLog:      true,
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Printf("Starting API server on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Printf("Shutting down API server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}
}

// loadConfig reads CONFIG_PATH when set, then applies environment overrides.
func loadConfig() (*config.Config, error) {
	cfg := config.Default()
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
		log.Printf("Loaded config from %s", path)
	}
	cfg.ApplyEnv(os.Getenv)
	return cfg, nil
}

func openStore(cfg *config.Config) (store.Store, error) {
	if cfg.Store.RedisURL == "" {
		log.Printf("Using in-memory chart store (ttl=%s)", cfg.Store.TTL)
		return store.NewMemoryStore(cfg.Store.TTL, time.Minute), nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	rs, err := store.OpenRedis(ctx, cfg.Store.RedisURL, cfg.Store.TTL)
	if err != nil {
		return nil, err
	}
	log.Printf("Using Redis chart store (ttl=%s)", cfg.Store.TTL)
	return rs, nil
}
