package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestPrometheus_Counters(t *testing.T) {
	//Arrange
	reg := prometheus.NewRegistry()
	m := NewPrometheusMetrics(reg, "checkout-test")

	//Act
	m.RecordOrderPlaced("success")
	m.RecordOrderPlaced("success")
	m.RecordEventDispatched("CustomerCreatedEvent", false)
	m.IncCacheHit("product")
	m.IncCacheMiss("product")
	m.IncCacheMiss("product")
	m.RecordUseCaseExecution("CreateCustomer", true, 20*time.Millisecond)

	//Assert
	assert.Equal(t, 2.0, testutil.ToFloat64(m.orderPlaced.WithLabelValues("success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.eventsDispatched.WithLabelValues("CustomerCreatedEvent", "failure")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.cacheHits.WithLabelValues("product")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.cacheMisses.WithLabelValues("product")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.useCaseTotal.WithLabelValues("CreateCustomer", "success")))
}

func TestPrometheus_HistogramsAreRegistered(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewPrometheusMetrics(reg, "checkout-test")

	m.ObserveHTTPRequestDuration("GET", "/api/v1/products/{id}", "200", 0.01)

	count, err := testutil.GatherAndCount(reg, "app_http_duration_seconds")
	assert.NoError(t, err)
	assert.Equal(t, 1, count)
}
