package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/orbit-bootstrap/internal/logger"
	"github.com/MKhiriev/orbit-bootstrap/internal/utils"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTraceTestHandler(buf *bytes.Buffer) *Handler {
	l := logger.Nop()
	if buf != nil {
		l = &logger.Logger{Logger: zerolog.New(buf)}
	}
	return &Handler{logger: l, traceIDs: utils.NewUUIDGenerator()}
}

func executeWithTraceID(h *Handler, traceID string, next http.HandlerFunc) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/init-config", nil)
	if traceID != "" {
		req.Header.Set(traceIDHeader, traceID)
	}

	rr := httptest.NewRecorder()
	h.withTraceID(next).ServeHTTP(rr, req)
	return rr
}

func TestWithTraceID_ReusesRequestHeader(t *testing.T) {
	for _, traceID := range []string{
		"my-custom-trace-id",
		"550e8400-e29b-41d4-a716-446655440000",
	} {
		t.Run(traceID, func(t *testing.T) {
			rr := executeWithTraceID(newTraceTestHandler(nil), traceID, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusTeapot)
			})

			assert.Equal(t, traceID, rr.Header().Get(traceIDHeader))
			assert.Equal(t, http.StatusTeapot, rr.Code)
		})
	}
}

func TestWithTraceID_GeneratesUniqueV7(t *testing.T) {
	h := newTraceTestHandler(nil)
	seen := make(map[string]struct{})

	for i := 0; i < 100; i++ {
		rr := executeWithTraceID(h, "", func(w http.ResponseWriter, r *http.Request) {})
		id := rr.Header().Get(traceIDHeader)

		parsed, err := uuid.Parse(id)
		require.NoError(t, err, "trace id must be a valid UUID, got: %s", id)
		assert.Equal(t, uuid.Version(7), parsed.Version())

		_, duplicate := seen[id]
		assert.False(t, duplicate, "duplicate trace id generated: %s", id)
		seen[id] = struct{}{}
	}
}

func TestWithTraceID_LoggerInContextCarriesTraceID(t *testing.T) {
	var buf bytes.Buffer
	h := newTraceTestHandler(&buf)

	executeWithTraceID(h, "trace-context-test", func(w http.ResponseWriter, r *http.Request) {
		logger.FromRequest(r).Info().Msg("inside")
	})

	assert.Contains(t, buf.String(), `"trace_id":"trace-context-test"`)
	assert.Contains(t, buf.String(), `"message":"inside"`)
}
