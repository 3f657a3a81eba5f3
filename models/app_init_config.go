// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"maps"
	"net/url"
	"slices"
)

// Canister names used as keys of [AppInitConfig.Canisters].
const (
	CanisterAppWallet        = "app_wallet"
	CanisterControlPanel     = "controlPanel"
	CanisterInternetIdentity = "internetIdentity"
	CanisterICPIndex         = "icpIndex"
)

// ProviderInternetIdentity is the key of the Internet Identity login URL in
// [AppInitConfig.Providers].
const ProviderInternetIdentity = "internetIdentity"

// GatewayResolver maps a canister id to the URL it is reachable at.
type GatewayResolver func(canisterID string) *url.URL

// LocaleConfig holds the default locale and the full list of locales the
// wallet ships translations for.
type LocaleConfig struct {
	Default          string   `json:"default"`
	SupportedLocales []string `json:"supportedLocales"`
}

// AppInitConfigParams carries the already-defaulted values an
// [AppInitConfig] is built from. Maps and slices are copied by
// [NewAppInitConfig], so the caller may reuse them.
type AppInitConfigParams struct {
	Name             string
	Version          string
	LogLevel         string
	BaseURL          string
	VersionedBaseURL string
	BuildMode        string
	IsProduction     bool
	APIGatewayURL    *url.URL
	HTTPGateway      GatewayResolver
	DerivationOrigin string
	MarketingSiteURL string
	Locale           LocaleConfig
	Providers        map[string]string
	Canisters        map[string]string
}

// AppInitConfig is the configuration record the wallet front-end boots with.
//
// The record is immutable: fields are unexported and every accessor that
// returns a reference type hands out a copy. It is therefore safe to share a
// single value across goroutines.
type AppInitConfig struct {
	name             string
	version          string
	logLevel         string
	baseURL          string
	versionedBaseURL string
	buildMode        string
	isProduction     bool
	apiGatewayURL    url.URL
	httpGateway      GatewayResolver
	derivationOrigin string
	marketingSiteURL string
	locale           LocaleConfig
	providers        map[string]string
	canisters        map[string]string
}

// NewAppInitConfig constructs an [AppInitConfig] from p. Empty provider and
// canister entries are dropped.
func NewAppInitConfig(p AppInitConfigParams) AppInitConfig {
	cfg := AppInitConfig{
		name:             p.Name,
		version:          p.Version,
		logLevel:         p.LogLevel,
		baseURL:          p.BaseURL,
		versionedBaseURL: p.VersionedBaseURL,
		buildMode:        p.BuildMode,
		isProduction:     p.IsProduction,
		httpGateway:      p.HTTPGateway,
		derivationOrigin: p.DerivationOrigin,
		marketingSiteURL: p.MarketingSiteURL,
		locale: LocaleConfig{
			Default:          p.Locale.Default,
			SupportedLocales: slices.Clone(p.Locale.SupportedLocales),
		},
		providers: nonEmpty(p.Providers),
		canisters: nonEmpty(p.Canisters),
	}
	if p.APIGatewayURL != nil {
		cfg.apiGatewayURL = *p.APIGatewayURL
	}

	return cfg
}

// WithVersionedBaseURL returns a copy of c whose versioned base URL is
// replaced. Every other field is shared with c.
func (c AppInitConfig) WithVersionedBaseURL(versionedBaseURL string) AppInitConfig {
	c.versionedBaseURL = versionedBaseURL
	return c
}

// Name returns the application name.
func (c AppInitConfig) Name() string { return c.name }

// Version returns the application version.
func (c AppInitConfig) Version() string { return c.version }

// LogLevel returns the front-end log level.
func (c AppInitConfig) LogLevel() string { return c.logLevel }

// BaseURL returns the path the wallet is served from.
func (c AppInitConfig) BaseURL() string { return c.baseURL }

// VersionedBaseURL returns the base URL qualified with the version segment
// of the navigation path, or the base URL when there is none.
func (c AppInitConfig) VersionedBaseURL() string { return c.versionedBaseURL }

// BuildMode returns the build mode, e.g. "production" or "development".
func (c AppInitConfig) BuildMode() string { return c.buildMode }

// IsProduction reports whether the wallet targets mainnet.
func (c AppInitConfig) IsProduction() bool { return c.isProduction }

// APIGatewayURL returns the boundary node URL the agent talks to.
func (c AppInitConfig) APIGatewayURL() *url.URL {
	u := c.apiGatewayURL
	return &u
}

// HTTPGatewayURL returns the URL the canister with the given id is served
// from, or nil when the record has no resolver.
func (c AppInitConfig) HTTPGatewayURL(canisterID string) *url.URL {
	if c.httpGateway == nil {
		return nil
	}

	return c.httpGateway(canisterID)
}

// DerivationOrigin returns the Internet Identity derivation origin and
// whether one is set.
func (c AppInitConfig) DerivationOrigin() (string, bool) {
	return c.derivationOrigin, c.derivationOrigin != ""
}

// MarketingSiteURL returns the marketing site URL and whether one is set.
func (c AppInitConfig) MarketingSiteURL() (string, bool) {
	return c.marketingSiteURL, c.marketingSiteURL != ""
}

// Locale returns the locale settings.
func (c AppInitConfig) Locale() LocaleConfig {
	return LocaleConfig{
		Default:          c.locale.Default,
		SupportedLocales: slices.Clone(c.locale.SupportedLocales),
	}
}

// Providers returns the identity provider URLs keyed by provider name.
func (c AppInitConfig) Providers() map[string]string { return maps.Clone(c.providers) }

// Canisters returns the canister ids keyed by canister name.
func (c AppInitConfig) Canisters() map[string]string { return maps.Clone(c.canisters) }

// Canister returns the id of the named canister and whether it is set.
func (c AppInitConfig) Canister(name string) (string, bool) {
	id, ok := c.canisters[name]
	return id, ok
}

// AppInitConfigView is the JSON shape of [AppInitConfig] served to the
// front-end.
type AppInitConfigView struct {
	Name             string            `json:"name"`
	Version          string            `json:"version"`
	LogLevel         string            `json:"logLevel"`
	BaseURL          string            `json:"baseUrl"`
	VersionedBaseURL string            `json:"versionedBaseUrl"`
	BuildMode        string            `json:"buildMode"`
	IsProduction     bool              `json:"isProduction"`
	APIGatewayURL    string            `json:"apiGatewayUrl"`
	DerivationOrigin string            `json:"derivationOrigin,omitempty"`
	MarketingSiteURL string            `json:"marketingSiteUrl,omitempty"`
	Locale           LocaleConfig      `json:"locale"`
	Providers        map[string]string `json:"providers"`
	Canisters        map[string]string `json:"canisters"`

	// HTTPGatewayURLs holds the resolved gateway URL of every configured
	// canister, keyed by canister name.
	HTTPGatewayURLs map[string]string `json:"httpGatewayUrls"`

	// NegotiatedLocale is filled by the HTTP layer from Accept-Language.
	NegotiatedLocale string `json:"negotiatedLocale,omitempty"`
}

// View returns the serialisable form of c.
func (c AppInitConfig) View() AppInitConfigView {
	gateways := make(map[string]string, len(c.canisters))
	for name, id := range c.canisters {
		if u := c.HTTPGatewayURL(id); u != nil {
			gateways[name] = u.String()
		}
	}

	return AppInitConfigView{
		Name:             c.name,
		Version:          c.version,
		LogLevel:         c.logLevel,
		BaseURL:          c.baseURL,
		VersionedBaseURL: c.versionedBaseURL,
		BuildMode:        c.buildMode,
		IsProduction:     c.isProduction,
		APIGatewayURL:    c.APIGatewayURL().String(),
		DerivationOrigin: c.derivationOrigin,
		MarketingSiteURL: c.marketingSiteURL,
		Locale:           c.Locale(),
		Providers:        c.Providers(),
		Canisters:        c.Canisters(),
		HTTPGatewayURLs:  gateways,
	}
}

// MarshalJSON encodes c through its [AppInitConfigView].
func (c AppInitConfig) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.View())
}

func nonEmpty(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		if v != "" {
			out[k] = v
		}
	}

	return out
}
