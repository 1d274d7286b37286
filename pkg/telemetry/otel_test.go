package telemetry

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetup_NoExporter(t *testing.T) {
	shutdown, err := Setup(context.Background(), Config{ServiceName: "restaurant-api"})
	require.NoError(t, err)
	assert.NoError(t, shutdown(context.Background()))
}

func TestSetup_UnknownExporter(t *testing.T) {
	_, err := Setup(context.Background(), Config{ServiceName: "restaurant-api", Exporter: "zipkin"})
	assert.Error(t, err)
}

func TestSetup_OTLPNeedsEndpoint(t *testing.T) {
	_, err := Setup(context.Background(), Config{ServiceName: "restaurant-api", Exporter: "otlp"})
	assert.Error(t, err)
}

func TestMiddleware_PassesThrough(t *testing.T) {
	h := Middleware("restaurant-api", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusTeapot, rec.Code)
}
