// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// a running orbit-bootstrap server.
//
// The primary abstraction is [ServerAdapter], which decouples the client
// service layer from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrNotFound] for 404, [ErrBadRequest] for 400).
package adapter

import (
	"context"

	"github.com/MKhiriev/orbit-bootstrap/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the
// orbit-bootstrap server. Implementations are responsible for serialisation
// and for mapping transport-level errors to the sentinel values defined in
// this package.
type ServerAdapter interface {
	// FetchInitConfig requests the init config for the given navigation path.
	// A non-empty acceptLanguage is forwarded as the Accept-Language header
	// so the server fills the negotiated locale.
	FetchInitConfig(ctx context.Context, pathname, acceptLanguage string) (models.AppInitConfigView, error)

	// FetchVersion returns the wallet version reported by the server.
	FetchVersion(ctx context.Context) (string, error)

	// FetchBuildInfo returns the build metadata of the server binary.
	FetchBuildInfo(ctx context.Context) (models.BuildInfoResponse, error)

	// ResolveGateway asks the server for the gateway URL of a canister id.
	ResolveGateway(ctx context.Context, canisterID string) (models.GatewayResponse, error)

	// ResolveCanisterGateway asks the server for the gateway URL of a
	// configured canister, looked up by name.
	ResolveCanisterGateway(ctx context.Context, name string) (models.GatewayResponse, error)
}
