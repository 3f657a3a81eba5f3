package main

import (
	"fmt"

	"github.com/MKhiriev/orbit-bootstrap/internal/config"
	"github.com/MKhiriev/orbit-bootstrap/internal/handler"
	"github.com/MKhiriev/orbit-bootstrap/internal/logger"
	"github.com/MKhiriev/orbit-bootstrap/internal/server"
	"github.com/MKhiriev/orbit-bootstrap/internal/service"
	"github.com/MKhiriev/orbit-bootstrap/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetServerConfig()
	if err != nil {
		logger.NewLogger("orbit-bootstrap", "").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLogger("orbit-bootstrap", cfg.App.LogLevel)
	log.Debug().Any("config", cfg).Msg("received configs")

	services, err := service.NewServices(cfg.App, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit), log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
