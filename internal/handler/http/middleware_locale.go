package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/orbit-bootstrap/internal/utils"
)

// withLocale negotiates the response locale from Accept-Language and stores
// it in the request context under utils.LocaleCtxKey.
func (h *Handler) withLocale(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		locale := h.services.InitConfigService.NegotiateLocale(ctx, r.Header.Get("Accept-Language"))

		w.Header().Add("Vary", "Accept-Language")
		w.Header().Set("Content-Language", locale)

		next.ServeHTTP(w, r.WithContext(context.WithValue(ctx, utils.LocaleCtxKey, locale)))
	})
}
