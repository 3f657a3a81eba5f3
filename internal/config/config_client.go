package config

import (
	"fmt"
	"time"
)

const (
	defaultServerAddress  = "localhost:8080"
	defaultRequestTimeout = 10 * time.Second
)

// ServerConfig is the configuration view used by cmd/server.
type ServerConfig struct {
	// App contains the wallet build inputs.
	App App
	// Server contains listener addresses and timeouts.
	Server Server
}

// ClientConfig is the configuration view used by cmd/client.
type ClientConfig struct {
	// App carries the log level for the CLI logger.
	App App
	// Adapter contains the server address and request timeout.
	Adapter Adapter
}

// GetServerConfig builds and validates the server view of the merged
// structured configuration. When no listener is configured the HTTP server
// falls back to localhost:8080.
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newServerConfig(cfg)
}

func newServerConfig(cfg *StructuredConfig) (*ServerConfig, error) {
	serverCfg := &ServerConfig{
		App:    cfg.App,
		Server: cfg.Server,
	}
	if serverCfg.Server.HTTPAddress == "" && serverCfg.Server.GRPCAddress == "" {
		serverCfg.Server.HTTPAddress = defaultServerAddress
	}
	if serverCfg.Server.RequestTimeout == 0 {
		serverCfg.Server.RequestTimeout = defaultRequestTimeout
	}

	return serverCfg, serverCfg.validate()
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the CLI, fills the adapter defaults and validates the
// resulting [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newClientConfig(cfg)
}

func newClientConfig(cfg *StructuredConfig) (*ClientConfig, error) {
	clientCfg := &ClientConfig{
		App:     cfg.App,
		Adapter: cfg.Adapter,
	}
	if clientCfg.Adapter.HTTPAddress == "" {
		clientCfg.Adapter.HTTPAddress = defaultServerAddress
	}
	if clientCfg.Adapter.RequestTimeout == 0 {
		clientCfg.Adapter.RequestTimeout = defaultRequestTimeout
	}

	return clientCfg, clientCfg.validate()
}
