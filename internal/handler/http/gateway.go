package http

import (
	"net/http"

	"github.com/MKhiriev/orbit-bootstrap/internal/logger"
	"github.com/MKhiriev/orbit-bootstrap/internal/utils"
	"github.com/MKhiriev/orbit-bootstrap/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) getGateway(w http.ResponseWriter, r *http.Request) {
	canisterID := chi.URLParam(r, "canisterID")

	gatewayURL, err := h.services.InitConfigService.HTTPGatewayURL(r.Context(), canisterID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeGateway(w, r, models.GatewayResponse{
		CanisterID: canisterID,
		URL:        gatewayURL.String(),
	})
}

func (h *Handler) getCanisterGateway(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	canisterID, gatewayURL, err := h.services.InitConfigService.CanisterGatewayURL(r.Context(), name)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeGateway(w, r, models.GatewayResponse{
		Name:       name,
		CanisterID: canisterID,
		URL:        gatewayURL.String(),
	})
}

func (h *Handler) writeGateway(w http.ResponseWriter, r *http.Request, gateway models.GatewayResponse) {
	if _, err := utils.WriteJSON(w, gateway, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing gateway")
	}
}
