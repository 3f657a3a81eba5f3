// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// orbit-bootstrap service. It aggregates all sub-configurations and is
// populated by merging values from dotenv files, environment variables,
// command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds the wallet build inputs the init config is assembled from.
	App App `envPrefix:"APP_"`

	// Server holds network address and timeout settings for the HTTP and
	// gRPC servers.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the address of a running bootstrap server, used by the
	// CLI client.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds the raw build/deployment inputs of the wallet front-end.
// Absent values stay empty here; defaults are applied when the init config
// is assembled, never at load time.
type App struct {
	// Title is the application name shown by the wallet.
	// Env: APP_TITLE
	Title string `env:"TITLE" json:"title"`

	// Version is the semantic version of the wallet build.
	// Env: APP_VERSION
	Version string `env:"VERSION" json:"version"`

	// LogLevel is the log level for the wallet and for this service.
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL" json:"log_level"`

	// BuildMode selects the dotenv mode files and is echoed in the init
	// config (e.g. "production", "development", "staging").
	// Env: APP_BUILD_MODE
	BuildMode string `env:"BUILD_MODE" json:"build_mode"`

	// MarketingSiteURL is the optional link to the marketing site.
	// Env: APP_MARKETING_SITE_URL
	MarketingSiteURL string `env:"MARKETING_SITE_URL" json:"marketing_site_url"`

	// DerivationOrigin overrides the Internet Identity derivation origin.
	// Env: APP_DERIVATION_ORIGIN
	DerivationOrigin string `env:"DERIVATION_ORIGIN" json:"derivation_origin"`

	// DefaultLocale is the locale used when negotiation finds no match.
	// Env: APP_DEFAULT_LOCALE
	DefaultLocale string `env:"DEFAULT_LOCALE" json:"default_locale"`

	// SupportedLocales is a comma separated list of BCP 47 tags.
	// Env: APP_SUPPORTED_LOCALES
	SupportedLocales []string `env:"SUPPORTED_LOCALES" envSeparator:"," json:"supported_locales"`

	// Providers holds identity provider URLs.
	Providers Providers `envPrefix:"PROVIDER_URL_" json:"providers"`

	// Canisters holds the canister ids the wallet talks to.
	Canisters Canisters `envPrefix:"CANISTER_ID_" json:"canisters"`

	// BaseURL is the public path the wallet is served from.
	// Env: BASE_URL (not prefixed, read by parseEnv)
	BaseURL string `json:"base_url"`

	// Production reports whether the wallet was built for mainnet.
	// Env: PROD (not prefixed, read by parseEnv)
	Production bool `json:"production"`
}

// Providers holds identity provider URLs.
type Providers struct {
	// InternetIdentity is the Internet Identity login URL.
	// Env: APP_PROVIDER_URL_INTERNET_IDENTITY
	InternetIdentity string `env:"INTERNET_IDENTITY" json:"internet_identity"`
}

// Canisters holds the canister ids of the services used by the wallet.
type Canisters struct {
	// Env: APP_CANISTER_ID_APP_WALLET
	AppWallet string `env:"APP_WALLET" json:"app_wallet"`
	// Env: APP_CANISTER_ID_CONTROL_PANEL
	ControlPanel string `env:"CONTROL_PANEL" json:"control_panel"`
	// Env: APP_CANISTER_ID_INTERNET_IDENTITY
	InternetIdentity string `env:"INTERNET_IDENTITY" json:"internet_identity"`
	// Env: APP_CANISTER_ID_ICP_INDEX
	ICPIndex string `env:"ICP_INDEX" json:"icp_index"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// GRPCAddress is the TCP address on which the gRPC health server
	// listens, in "host:port" format (e.g. "0.0.0.0:9090").
	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Adapter holds the settings the CLI uses to reach a bootstrap server.
type Adapter struct {
	// HTTPAddress is the server address, with or without scheme.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds every outbound CLI request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Dotenv mode files from ENV_DIR, selected by the -mode flag or
//     APP_BUILD_MODE (never override the process environment)
//  2. Environment variables
//  3. Command-line flags
//  4. JSON file (path resolved from sources 2 and 3)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDotEnv().
		withEnv().
		withFlags().
		withJSON().
		build()
}
