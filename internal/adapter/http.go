package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/orbit-bootstrap/internal/config"
	"github.com/MKhiriev/orbit-bootstrap/internal/logger"
	"github.com/MKhiriev/orbit-bootstrap/internal/utils"
	"github.com/MKhiriev/orbit-bootstrap/models"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying HTTP client with the resolved base URL and
// request timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.Adapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// FetchInitConfig implements [ServerAdapter]. It GETs
// /api/init-config?path=<pathname> and decodes the JSON view.
func (h *httpServerAdapter) FetchInitConfig(ctx context.Context, pathname, acceptLanguage string) (models.AppInitConfigView, error) {
	var view models.AppInitConfigView

	req := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		SetQueryParam("path", pathname).
		SetResult(&view)
	if acceptLanguage != "" {
		req.SetHeader("Accept-Language", acceptLanguage)
	}

	resp, err := req.Get("/api/init-config")
	if err != nil {
		return models.AppInitConfigView{}, fmt.Errorf("init config request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AppInitConfigView{}, err
	}

	h.logger.Debug().
		Str("path", pathname).
		Str("versioned_base_url", view.VersionedBaseURL).
		Msg("init config fetched")

	return view, nil
}

// FetchVersion implements [ServerAdapter]. It GETs /api/version/ and returns
// the plain text body.
func (h *httpServerAdapter) FetchVersion(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/api/version/")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}

// FetchBuildInfo implements [ServerAdapter]. It GETs /api/build-info.
func (h *httpServerAdapter) FetchBuildInfo(ctx context.Context) (models.BuildInfoResponse, error) {
	var info models.BuildInfoResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&info).
		Get("/api/build-info")
	if err != nil {
		return models.BuildInfoResponse{}, fmt.Errorf("build info request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.BuildInfoResponse{}, err
	}

	return info, nil
}

// ResolveGateway implements [ServerAdapter]. It GETs
// /api/gateway/{canisterID}.
func (h *httpServerAdapter) ResolveGateway(ctx context.Context, canisterID string) (models.GatewayResponse, error) {
	return h.getGateway(ctx, "/api/gateway/{canisterID}", "canisterID", canisterID)
}

// ResolveCanisterGateway implements [ServerAdapter]. It GETs
// /api/canisters/{name}/gateway.
func (h *httpServerAdapter) ResolveCanisterGateway(ctx context.Context, name string) (models.GatewayResponse, error) {
	return h.getGateway(ctx, "/api/canisters/{name}/gateway", "name", name)
}

func (h *httpServerAdapter) getGateway(ctx context.Context, path, param, value string) (models.GatewayResponse, error) {
	var gateway models.GatewayResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam(param, value).
		SetResult(&gateway).
		Get(path)
	if err != nil {
		return models.GatewayResponse{}, fmt.Errorf("gateway request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.GatewayResponse{}, err
	}

	return gateway, nil
}
