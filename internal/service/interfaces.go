package service

import (
	"context"
	"net/url"

	"github.com/MKhiriev/orbit-bootstrap/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// InitConfigService serves the wallet init config assembled at startup.
type InitConfigService interface {
	// InitConfig returns the init config with the versioned base URL derived
	// from pathname. All other fields are the same for every call.
	InitConfig(ctx context.Context, pathname string) models.AppInitConfig

	// HTTPGatewayURL resolves the gateway URL of a canister id. Returns
	// ErrInvalidCanisterID when the id is not lowercase alphanumeric with
	// dashes.
	HTTPGatewayURL(ctx context.Context, canisterID string) (*url.URL, error)

	// CanisterGatewayURL resolves a configured canister by name and returns
	// its id together with its gateway URL. Returns ErrCanisterNotConfigured
	// for unknown or unset names.
	CanisterGatewayURL(ctx context.Context, name string) (string, *url.URL, error)

	// NegotiateLocale picks the best supported locale for an Accept-Language
	// header value, falling back to the default locale.
	NegotiateLocale(ctx context.Context, acceptLanguage string) string
}

// AppInfoService reports what build of the wallet and of this service is
// running.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}
