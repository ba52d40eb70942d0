package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	appanalysis "github.com/balagh-app/vision-api/internal/application/analysis"
	"github.com/balagh-app/vision-api/internal/config"
	domain "github.com/balagh-app/vision-api/internal/domain/analysis"
	"github.com/balagh-app/vision-api/internal/infra/ai/gemini"
	aiopenai "github.com/balagh-app/vision-api/internal/infra/ai/openai"
	"github.com/balagh-app/vision-api/internal/infra/httpserver"
	"github.com/balagh-app/vision-api/internal/middleware"
)

func main() {
	// .env is optional; real deployments set env vars directly
	_ = godotenv.Load()

	path := "config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		path = v
	}

	cfg, err := config.Load(path)
	if err != nil {
		log.Fatalf("config load error: %v", err)
	}
	if cfg.AI.APIKey == "" {
		log.Fatalf("no API key configured for provider %s", cfg.AI.Provider)
	}

	ctx := context.Background()

	// one vision client for the process lifetime, shared across requests
	var vision domain.VisionClient
	var probeURL string
	switch cfg.AI.Provider {
	case "openai":
		vision = aiopenai.NewClient(cfg.AI.APIKey, cfg.AI.BaseURL, cfg.AI.Model, cfg.AI.Language)
		probeURL = cfg.AI.BaseURL
		if probeURL == "" {
			probeURL = "https://api.openai.com"
		}
	default:
		gc, err := gemini.NewClient(ctx, cfg.AI.APIKey, cfg.AI.Model, cfg.AI.Language)
		if err != nil {
			log.Fatalf("gemini init error: %v", err)
		}
		defer gc.Close()
		vision = gc
		probeURL = "https://generativelanguage.googleapis.com"
	}

	svc := appanalysis.NewService(vision, cfg.InferenceTimeout())

	checkers := map[string]middleware.HealthChecker{
		"inference": &middleware.InferenceHealthChecker{URL: probeURL},
	}

	webDir := cfg.Server.WebDir
	if webDir == "" {
		webDir = "web"
	}

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      httpserver.NewRouter(svc, checkers, webDir),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: cfg.InferenceTimeout() + 15*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("server listening on %s (provider=%s model=%s)", addr, cfg.AI.Provider, cfg.AI.Model)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	// graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
	log.Println("shutting down server...")

	ctx2, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx2); err != nil {
		log.Printf("shutdown error: %v", err)
	}
}
