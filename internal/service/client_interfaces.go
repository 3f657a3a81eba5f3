package service

import (
	"context"

	"github.com/MKhiriev/orbit-bootstrap/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ClientBootstrapService defines the client-side contract for reading the
// init config from a running server. Transport errors that carry a known
// server message are translated to the errors of this package.
type ClientBootstrapService interface {
	// InitConfig fetches the init config for pathname. acceptLanguage may be
	// empty.
	InitConfig(ctx context.Context, pathname, acceptLanguage string) (models.AppInitConfigView, error)

	// Version fetches the wallet version and the server build info.
	Version(ctx context.Context) (string, models.BuildInfoResponse, error)

	// Gateway resolves either a canister name from the init config or a raw
	// canister id. Names are tried first.
	Gateway(ctx context.Context, nameOrID string) (models.GatewayResponse, error)
}
