package main

import (
	"flag"
	"log"
	"net/http"

	"github.com/joho/godotenv"
	"github.com/maxence-charriere/go-app/v10/pkg/app"

	"futmanager/internal/config"
	"futmanager/internal/logger"
	"futmanager/internal/server"
	"futmanager/internal/ui"
)

func main() {
	// Routes must be registered before either build target starts. In the
	// wasm build RunWhenOnBrowser takes over and never returns; in the
	// native build it is a no-op and the server below runs.
	ui.RegisterRoutes()
	app.RunWhenOnBrowser()

	configPath := flag.String("config", "config/config.yaml", "Path to configuration file")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting FutManager...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Booking API configuration", "base_url", cfg.API.BaseURL, "timeout", cfg.GetAPITimeout())

	router, err := server.NewRouter(cfg)
	if err != nil {
		logger.Error("Failed to build router", "error", err)
		log.Fatalf("Failed to build router: %v", err)
	}

	if err := http.ListenAndServe(cfg.GetServerAddress(), router); err != nil {
		logger.Error("Server stopped", "error", err)
		log.Fatalf("Server stopped: %v", err)
	}
}
