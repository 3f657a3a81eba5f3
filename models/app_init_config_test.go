package models

import (
	"encoding/json"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testResolver(canisterID string) *url.URL {
	return &url.URL{Scheme: "https", Host: canisterID + ".icp0.io"}
}

func newTestParams() AppInitConfigParams {
	return AppInitConfigParams{
		Name:             "Orbit",
		Version:          "1.3.0",
		LogLevel:         "info",
		BaseURL:          "/",
		VersionedBaseURL: "/v1.3.0/",
		BuildMode:        "production",
		IsProduction:     true,
		APIGatewayURL:    &url.URL{Scheme: "https", Host: "icp-api.io"},
		HTTPGateway:      testResolver,
		DerivationOrigin: "https://orbitwallet.io",
		Locale:           LocaleConfig{Default: "en", SupportedLocales: []string{"en", "pt", "fr"}},
		Providers:        map[string]string{ProviderInternetIdentity: "https://identity.ic0.app"},
		Canisters: map[string]string{
			CanisterAppWallet:    "wallet-id",
			CanisterControlPanel: "",
		},
	}
}

func TestNewAppInitConfig_Accessors(t *testing.T) {
	cfg := NewAppInitConfig(newTestParams())

	assert.Equal(t, "Orbit", cfg.Name())
	assert.Equal(t, "1.3.0", cfg.Version())
	assert.Equal(t, "info", cfg.LogLevel())
	assert.Equal(t, "/", cfg.BaseURL())
	assert.Equal(t, "/v1.3.0/", cfg.VersionedBaseURL())
	assert.Equal(t, "production", cfg.BuildMode())
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "https://icp-api.io", cfg.APIGatewayURL().String())

	origin, ok := cfg.DerivationOrigin()
	assert.True(t, ok)
	assert.Equal(t, "https://orbitwallet.io", origin)

	_, ok = cfg.MarketingSiteURL()
	assert.False(t, ok)

	assert.Equal(t, LocaleConfig{Default: "en", SupportedLocales: []string{"en", "pt", "fr"}}, cfg.Locale())
	assert.Equal(t, map[string]string{ProviderInternetIdentity: "https://identity.ic0.app"}, cfg.Providers())
}

func TestNewAppInitConfig_DropsEmptyCanisters(t *testing.T) {
	cfg := NewAppInitConfig(newTestParams())

	assert.Equal(t, map[string]string{CanisterAppWallet: "wallet-id"}, cfg.Canisters())

	id, ok := cfg.Canister(CanisterAppWallet)
	assert.True(t, ok)
	assert.Equal(t, "wallet-id", id)

	_, ok = cfg.Canister(CanisterControlPanel)
	assert.False(t, ok)
}

func TestAppInitConfig_Immutable(t *testing.T) {
	params := newTestParams()
	cfg := NewAppInitConfig(params)

	// Mutating the inputs after construction.
	params.Locale.SupportedLocales[0] = "de"
	params.Canisters[CanisterICPIndex] = "index-id"
	params.APIGatewayURL.Host = "evil.example"

	// Mutating values handed out by accessors.
	cfg.Locale().SupportedLocales[1] = "es"
	cfg.Providers()[ProviderInternetIdentity] = "https://evil.example"
	cfg.Canisters()[CanisterAppWallet] = "other"
	cfg.APIGatewayURL().Host = "evil.example"

	assert.Equal(t, []string{"en", "pt", "fr"}, cfg.Locale().SupportedLocales)
	assert.Equal(t, "https://identity.ic0.app", cfg.Providers()[ProviderInternetIdentity])
	assert.Equal(t, map[string]string{CanisterAppWallet: "wallet-id"}, cfg.Canisters())
	assert.Equal(t, "icp-api.io", cfg.APIGatewayURL().Host)
}

func TestAppInitConfig_WithVersionedBaseURL(t *testing.T) {
	base := NewAppInitConfig(newTestParams())

	next := base.WithVersionedBaseURL("/v2.0.0/")

	assert.Equal(t, "/v2.0.0/", next.VersionedBaseURL())
	assert.Equal(t, "/v1.3.0/", base.VersionedBaseURL())
	assert.Equal(t, base.Name(), next.Name())
	assert.Equal(t, base.Canisters(), next.Canisters())
}

func TestAppInitConfig_HTTPGatewayURL(t *testing.T) {
	cfg := NewAppInitConfig(newTestParams())

	assert.Equal(t, "https://abc.icp0.io", cfg.HTTPGatewayURL("abc").String())
	assert.Nil(t, AppInitConfig{}.HTTPGatewayURL("abc"))
}

func TestAppInitConfig_MarshalJSON(t *testing.T) {
	cfg := NewAppInitConfig(newTestParams())

	data, err := json.Marshal(cfg)
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"name": "Orbit",
		"version": "1.3.0",
		"logLevel": "info",
		"baseUrl": "/",
		"versionedBaseUrl": "/v1.3.0/",
		"buildMode": "production",
		"isProduction": true,
		"apiGatewayUrl": "https://icp-api.io",
		"derivationOrigin": "https://orbitwallet.io",
		"locale": {"default": "en", "supportedLocales": ["en", "pt", "fr"]},
		"providers": {"internetIdentity": "https://identity.ic0.app"},
		"canisters": {"app_wallet": "wallet-id"},
		"httpGatewayUrls": {"app_wallet": "https://wallet-id.icp0.io"}
	}`, string(data))
}

func TestAppBuildInfo_Response(t *testing.T) {
	info := NewAppBuildInfo("1.3.0", "2026-10-01", "abc123")

	assert.Equal(t, BuildInfoResponse{Version: "1.3.0", Date: "2026-10-01", Commit: "abc123"}, info.Response())
	assert.Equal(t, "1.3.0", info.BuildVersion())
}
