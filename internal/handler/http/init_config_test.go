package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/orbit-bootstrap/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func getInitConfigView(t *testing.T, h *Handler, target, acceptLanguage string) (*httptest.ResponseRecorder, models.AppInitConfigView) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, target, nil)
	if acceptLanguage != "" {
		req.Header.Set("Accept-Language", acceptLanguage)
	}
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)

	var view models.AppInitConfigView
	if rec.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
	}

	return rec, view
}

func TestGetInitConfig_VersionedPath(t *testing.T) {
	rec, view := getInitConfigView(t, newTestRealHandler(t), "/api/init-config?path=/v1.3.0/accounts", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, "Orbit", view.Name)
	assert.Equal(t, "1.3.0", view.Version)
	assert.Equal(t, "/", view.BaseURL)
	assert.Equal(t, "/v1.3.0/", view.VersionedBaseURL)
	assert.False(t, view.IsProduction)
	assert.Equal(t, "http://localhost:4943", view.APIGatewayURL)
	assert.Equal(t, "http://localhost:4943?canisterId=bkyz2-fmaaa-aaaaa-qaaaq-cai", view.HTTPGatewayURLs[models.CanisterAppWallet])
	assert.Equal(t, "en", view.NegotiatedLocale)
}

func TestGetInitConfig_PathVariants(t *testing.T) {
	tests := []struct {
		name   string
		target string
		want   string
	}{
		{name: "no path", target: "/api/init-config", want: "/"},
		{name: "unversioned", target: "/api/init-config?path=/accounts", want: "/"},
		{name: "version without prefix", target: "/api/init-config?path=/1.3.0/", want: "/"},
		{name: "prerelease", target: "/api/init-config?path=/v2.0.0-rc.1", want: "/v2.0.0-rc.1/"},
	}

	h := newTestRealHandler(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, view := getInitConfigView(t, h, tt.target, "")

			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, tt.want, view.VersionedBaseURL)
		})
	}
}

func TestGetInitConfig_NegotiatesLocale(t *testing.T) {
	rec, view := getInitConfigView(t, newTestRealHandler(t), "/api/init-config", "pt-BR,pt;q=0.9,en;q=0.8")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "pt", view.NegotiatedLocale)
	assert.Equal(t, "pt", rec.Header().Get("Content-Language"))
	assert.Contains(t, rec.Header().Values("Vary"), "Accept-Language")
}

func TestGetInitConfig_PassesPathToService(t *testing.T) {
	h, m := newTestMockHandler(t)

	cfg := models.NewAppInitConfig(models.AppInitConfigParams{
		Name:             "Orbit",
		BaseURL:          "/",
		VersionedBaseURL: "/v9.9.9/",
	})

	m.initConfig.EXPECT().NegotiateLocale(gomock.Any(), "fr").Return("fr")
	m.initConfig.EXPECT().InitConfig(gomock.Any(), "/v9.9.9/x").Return(cfg)

	rec, view := getInitConfigView(t, h, "/api/init-config?path=/v9.9.9/x", "fr")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "/v9.9.9/", view.VersionedBaseURL)
	assert.Equal(t, "fr", view.NegotiatedLocale)
}
