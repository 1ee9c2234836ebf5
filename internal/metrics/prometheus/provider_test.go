package prometheus_test

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"social-feed-service/internal/metrics/prometheus"
)

func TestPrometheusMetricsProvider_DatabaseQueries(t *testing.T) {
	provider := prometheus.NewPrometheusMetricsProvider()

	successBefore := testutil.ToFloat64(prometheus.DatabaseQueriesTotal.WithLabelValues("test_query", "true"))
	failureBefore := testutil.ToFloat64(prometheus.DatabaseQueriesTotal.WithLabelValues("test_query", "false"))

	provider.IncrementDatabaseQueries("test_query", true)
	provider.IncrementDatabaseQueries("test_query", true)
	provider.IncrementDatabaseQueries("test_query", false)

	assert.Equal(t, successBefore+2, testutil.ToFloat64(prometheus.DatabaseQueriesTotal.WithLabelValues("test_query", "true")))
	assert.Equal(t, failureBefore+1, testutil.ToFloat64(prometheus.DatabaseQueriesTotal.WithLabelValues("test_query", "false")))
}

func TestPrometheusMetricsProvider_DatabaseQueryDuration(t *testing.T) {
	provider := prometheus.NewPrometheusMetricsProvider()

	before := testutil.CollectAndCount(prometheus.DatabaseQueryDuration)
	provider.RecordDatabaseQueryDuration("test_duration_query", 15*time.Millisecond)

	assert.Equal(t, before+1, testutil.CollectAndCount(prometheus.DatabaseQueryDuration),
		"recording a new query type adds a histogram series")
}

func TestPrometheusMetricsProvider_ServiceHealth(t *testing.T) {
	provider := prometheus.NewPrometheusMetricsProvider()

	provider.SetServiceHealth(true)
	assert.Equal(t, float64(1), testutil.ToFloat64(prometheus.ServiceHealth))

	provider.SetServiceHealth(false)
	assert.Equal(t, float64(0), testutil.ToFloat64(prometheus.ServiceHealth))
}
