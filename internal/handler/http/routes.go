package http

import (
	"net/http"

	"github.com/MKhiriev/orbit-bootstrap/internal/app"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, withGZip)

	router.With(h.withLocale).Get("/api/init-config", h.getInitConfig)

	router.Get("/api/gateway/{canisterID}", h.getGateway)
	router.Get("/api/canisters/{name}/gateway", h.getCanisterGateway)

	router.Get("/api/version/", h.getServerVersion)
	router.Get("/api/build-info", h.getBuildInfo)

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, app.MsgNotFound, http.StatusNotFound)
	})
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
