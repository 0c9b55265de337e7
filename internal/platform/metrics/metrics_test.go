package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordUpstream_LabelsTransportErrors(t *testing.T) {
	before := testutil.ToFloat64(upstreamRequests.WithLabelValues(http.MethodGet, "transport_error"))
	RecordUpstream(http.MethodGet, 0, 0.01)
	RecordUpstream(http.MethodGet, http.StatusOK, 0.01)

	assert.Equal(t, before+1, testutil.ToFloat64(upstreamRequests.WithLabelValues(http.MethodGet, "transport_error")))
	assert.GreaterOrEqual(t, testutil.ToFloat64(upstreamRequests.WithLabelValues(http.MethodGet, "200")), 1.0)
}

func TestRequestStarted_BalancesInFlight(t *testing.T) {
	before := testutil.ToFloat64(httpInFlight)
	done := RequestStarted(http.MethodPost, "/auth/login")
	assert.Equal(t, before+1, testutil.ToFloat64(httpInFlight))
	done(http.StatusOK, 0.02)
	assert.Equal(t, before, testutil.ToFloat64(httpInFlight))
}

func TestHandler_ExposesPortalMetrics(t *testing.T) {
	RecordSessionExpired()

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "bank_portal_sessions_expired_total")
}
