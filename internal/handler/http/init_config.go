package http

import (
	"net/http"

	"github.com/MKhiriev/orbit-bootstrap/internal/logger"
	"github.com/MKhiriev/orbit-bootstrap/internal/service"
	"github.com/MKhiriev/orbit-bootstrap/internal/utils"
)

// getInitConfig serves the wallet init config for the navigation path given
// in the "path" query parameter. A missing path is treated as the base URL.
func (h *Handler) getInitConfig(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	pathname := r.URL.Query().Get("path")
	if pathname == "" {
		pathname = service.DefaultBaseURL
	}

	view := h.services.InitConfigService.InitConfig(ctx, pathname).View()
	if locale, ok := utils.GetLocaleFromContext(ctx); ok {
		view.NegotiatedLocale = locale
	}

	log.Debug().
		Str("path", pathname).
		Str("versioned_base_url", view.VersionedBaseURL).
		Msg("serving init config")

	if _, err := utils.WriteJSON(w, view, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing init config")
	}
}
