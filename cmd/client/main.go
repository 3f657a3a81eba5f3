package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/MKhiriev/orbit-bootstrap/internal/adapter"
	"github.com/MKhiriev/orbit-bootstrap/internal/client"
	"github.com/MKhiriev/orbit-bootstrap/internal/config"
	"github.com/MKhiriev/orbit-bootstrap/internal/logger"
	"github.com/MKhiriev/orbit-bootstrap/internal/service"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	cmd := client.RegisterFlags(flag.CommandLine)

	cfg, err := config.GetClientConfig()
	if err != nil {
		logger.NewClientLogger("orbit-bootstrap-cli", "").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewClientLogger("orbit-bootstrap-cli", cfg.App.LogLevel)
	printBuildInfo()

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	services := service.NewClientServices(serverAdapter, log)

	app, err := client.NewApp(services, *cmd, os.Stdout, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}

// printBuildInfo writes to stderr so that stdout carries only the JSON result.
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

	fmt.Fprintf(os.Stderr, "Build version: %s\n", buildVersion)
	fmt.Fprintf(os.Stderr, "Build date: %s\n", buildDate)
	fmt.Fprintf(os.Stderr, "Build commit: %s\n", buildCommit)
}
