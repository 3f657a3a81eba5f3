// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/MKhiriev/orbit-bootstrap/internal/config"
	"github.com/MKhiriev/orbit-bootstrap/internal/logger"
	"github.com/MKhiriev/orbit-bootstrap/internal/utils"
	"github.com/MKhiriev/orbit-bootstrap/models"
)

// Defaults applied by AssembleInitConfig when an input is absent.
const (
	DefaultAppName   = "Orbit"
	DefaultVersion   = "0.0.0"
	DefaultLogLevel  = "info"
	DefaultBaseURL   = "/"
	DefaultBuildMode = "production"

	ProductionAPIGatewayURL    = "https://icp-api.io"
	LocalAPIGatewayURL         = "http://localhost:4943"
	ProductionDerivationOrigin = "https://orbitwallet.io"

	versionPrefix = "v"
)

var canisterIDRegexp = regexp.MustCompile(`^[a-z0-9-]+$`)

// VersionedBaseURL returns baseURL qualified with the first segment of
// pathname when that segment is a "v"-prefixed semantic version. Any other
// path, including an empty one, yields baseURL unchanged.
//
//	VersionedBaseURL("/v1.3.0/accounts", "/") // "/v1.3.0/"
//	VersionedBaseURL("/accounts", "/")        // "/"
func VersionedBaseURL(pathname, baseURL string) string {
	parsed := utils.RemoveBasePathFromPathname(pathname, baseURL)

	for _, segment := range strings.Split(parsed, "/") {
		if segment == "" {
			continue
		}
		if utils.IsSemanticVersion(segment, versionPrefix) {
			return baseURL + segment + "/"
		}

		break
	}

	return baseURL
}

// HTTPGatewayURL returns the URL a canister is served from: its icp0.io
// subdomain in production, the local replica otherwise.
func HTTPGatewayURL(isProduction bool, canisterID string) *url.URL {
	if isProduction {
		return &url.URL{Scheme: "https", Host: canisterID + ".icp0.io"}
	}

	return &url.URL{
		Scheme:   "http",
		Host:     "localhost:4943",
		RawQuery: "canisterId=" + canisterID,
	}
}

// AssembleInitConfig builds the wallet init config from raw inputs and the
// current navigation path. Every absent input is replaced by its default,
// so the function never fails.
func AssembleInitConfig(app config.App, pathname string) models.AppInitConfig {
	baseURL := orDefault(app.BaseURL, DefaultBaseURL)
	isProduction := app.Production

	apiGateway := LocalAPIGatewayURL
	derivationOrigin := app.DerivationOrigin
	if isProduction {
		apiGateway = ProductionAPIGatewayURL
		derivationOrigin = orDefault(derivationOrigin, ProductionDerivationOrigin)
	}
	apiGatewayURL, _ := url.Parse(apiGateway)

	return models.NewAppInitConfig(models.AppInitConfigParams{
		Name:             orDefault(app.Title, DefaultAppName),
		Version:          orDefault(app.Version, DefaultVersion),
		LogLevel:         orDefault(app.LogLevel, DefaultLogLevel),
		BaseURL:          baseURL,
		VersionedBaseURL: VersionedBaseURL(pathname, baseURL),
		BuildMode:        orDefault(app.BuildMode, DefaultBuildMode),
		IsProduction:     isProduction,
		APIGatewayURL:    apiGatewayURL,
		HTTPGateway: func(canisterID string) *url.URL {
			return HTTPGatewayURL(isProduction, canisterID)
		},
		DerivationOrigin: derivationOrigin,
		MarketingSiteURL: app.MarketingSiteURL,
		Locale:           resolveLocales(app.DefaultLocale, app.SupportedLocales),
		Providers: map[string]string{
			models.ProviderInternetIdentity: app.Providers.InternetIdentity,
		},
		Canisters: map[string]string{
			models.CanisterAppWallet:        app.Canisters.AppWallet,
			models.CanisterControlPanel:     app.Canisters.ControlPanel,
			models.CanisterInternetIdentity: app.Canisters.InternetIdentity,
			models.CanisterICPIndex:         app.Canisters.ICPIndex,
		},
	})
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}

	return value
}

type initConfigService struct {
	base    models.AppInitConfig
	locales *localeMatcher

	logger *logger.Logger
}

// NewInitConfigService assembles the base init config once; later calls only
// re-derive the versioned base URL for the requested path.
func NewInitConfigService(app config.App, logger *logger.Logger) InitConfigService {
	base := AssembleInitConfig(app, DefaultBaseURL)
	locale := base.Locale()

	logger.Info().
		Str("name", base.Name()).
		Str("version", base.Version()).
		Str("build_mode", base.BuildMode()).
		Bool("production", base.IsProduction()).
		Str("base_url", base.BaseURL()).
		Strs("locales", locale.SupportedLocales).
		Msg("init config assembled")

	return &initConfigService{
		base:    base,
		locales: newLocaleMatcher(locale),
		logger:  logger,
	}
}

func (s *initConfigService) InitConfig(ctx context.Context, pathname string) models.AppInitConfig {
	return s.base.WithVersionedBaseURL(VersionedBaseURL(pathname, s.base.BaseURL()))
}

func (s *initConfigService) HTTPGatewayURL(ctx context.Context, canisterID string) (*url.URL, error) {
	if !canisterIDRegexp.MatchString(canisterID) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidCanisterID, canisterID)
	}

	return s.base.HTTPGatewayURL(canisterID), nil
}

func (s *initConfigService) CanisterGatewayURL(ctx context.Context, name string) (string, *url.URL, error) {
	canisterID, ok := s.base.Canister(name)
	if !ok {
		return "", nil, fmt.Errorf("%w: %s", ErrCanisterNotConfigured, name)
	}

	u, err := s.HTTPGatewayURL(ctx, canisterID)
	if err != nil {
		return "", nil, err
	}

	return canisterID, u, nil
}

func (s *initConfigService) NegotiateLocale(ctx context.Context, acceptLanguage string) string {
	locale := s.locales.match(acceptLanguage)
	logger.FromContext(ctx).Debug().
		Str("accept_language", acceptLanguage).
		Str("locale", locale).
		Msg("locale negotiated")

	return locale
}
